package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource for the ID you specified")
)

// Expense errors
var (
	ErrExpenseTitleEmpty         = errors.New("expense titles must not be empty")
	ErrExpenseAmountNotPositive  = errors.New("expense amounts must be larger than zero")
	ErrRecurringFrequencyInvalid = errors.New("the specified recurring frequency is invalid")
)

// Budget errors
var (
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetCategoryInvalid   = errors.New("the specified budget category does not exist")
	ErrBudgetPeriodInvalid     = errors.New("the specified budget period is invalid")
)
