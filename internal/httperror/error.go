// Package httperror provides the error response type for the API.
package httperror

type Error struct {
	Message string `json:"error" example:"You must specify an expense ID"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
