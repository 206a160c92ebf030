package dto

// Category is the DTO representation of a category.
type Category struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
