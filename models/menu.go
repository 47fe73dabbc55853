package models

type MenuCategory string

const (
	CategoryAppetizer MenuCategory = "appetizer"
	CategoryMain      MenuCategory = "main"
	CategoryDessert   MenuCategory = "dessert"
	CategoryDrink     MenuCategory = "drink"
)

// MenuCategories lists the fixed set of accepted categories.
var MenuCategories = []MenuCategory{
	CategoryAppetizer,
	CategoryMain,
	CategoryDessert,
	CategoryDrink,
}

func ValidMenuCategory(c MenuCategory) bool {
	for _, known := range MenuCategories {
		if c == known {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    MenuCategory `json:"category"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Available   bool         `json:"available"`
}

func (m MenuItem) Clone() MenuItem {
	return m
}
