// Package categories provides the fixed expense category reference data.
//
// Categories are not user-editable. An expense referencing an empty or
// unknown category ID is reported as uncategorized.
package categories

// Category is a single entry of the category reference data.
type Category struct {
	ID   string `json:"id" example:"food"`
	Name string `json:"name" example:"Food & Dining"`
	Icon string `json:"icon" example:"🍽️"`
}

// Uncategorized is the fallback for expenses without a valid category.
var Uncategorized = Category{ID: "", Name: "Uncategorized", Icon: "❔"}

var all = []Category{
	{ID: "food", Name: "Food & Dining", Icon: "🍽️"},
	{ID: "transportation", Name: "Transportation", Icon: "🚗"},
	{ID: "housing", Name: "Housing", Icon: "🏠"},
	{ID: "utilities", Name: "Utilities", Icon: "💡"},
	{ID: "entertainment", Name: "Entertainment", Icon: "🎬"},
	{ID: "healthcare", Name: "Healthcare", Icon: "🏥"},
	{ID: "shopping", Name: "Shopping", Icon: "🛍️"},
	{ID: "education", Name: "Education", Icon: "📚"},
	{ID: "travel", Name: "Travel", Icon: "✈️"},
	{ID: "personal", Name: "Personal Care", Icon: "💇"},
	{ID: "other", Name: "Other", Icon: "📦"},
}

// All returns the full category list.
func All() []Category {
	list := make([]Category, len(all))
	copy(list, all)
	return list
}

// ByID returns the category with the given ID. The second return value
// reports whether the ID is known.
func ByID(id string) (Category, bool) {
	for _, category := range all {
		if category.ID == id {
			return category, true
		}
	}

	return Uncategorized, false
}

// Name returns the display name for a category ID, falling back to the
// uncategorized label for empty or unknown IDs.
func Name(id string) string {
	category, _ := ByID(id)
	return category.Name
}

// Valid reports whether the ID references a known category.
func Valid(id string) bool {
	_, ok := ByID(id)
	return ok
}
