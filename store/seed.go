package store

import "github.com/yeremiapane/restaurant-engine/models"

// Seed returns the starting state for a fresh install: the dining room's
// tables plus the opening menu. Tables and menu items are never deleted
// afterwards, only their status fields change.
func Seed() *Snapshot {
	s := NewSnapshot()

	tables := []models.Table{
		{ID: "T01", Capacity: 2},
		{ID: "T02", Capacity: 2},
		{ID: "T03", Capacity: 4},
		{ID: "T04", Capacity: 4},
		{ID: "T05", Capacity: 6},
		{ID: "T06", Capacity: 8},
		{ID: "T07", Capacity: 10},
	}
	for _, t := range tables {
		t.Status = models.TableFree
		s.Tables[t.ID] = t
	}

	menu := []models.MenuItem{
		{ID: "app001", Name: "Calamari", Category: models.CategoryAppetizer, Description: "Crispy fried calamari with lemon aioli", Price: 12.50},
		{ID: "app002", Name: "Bruschetta", Category: models.CategoryAppetizer, Description: "Grilled bread, tomato and basil", Price: 8.99},
		{ID: "app003", Name: "Caesar Salad", Category: models.CategoryAppetizer, Description: "Romaine, parmesan, house dressing", Price: 10.00},
		{ID: "main001", Name: "Grilled Salmon", Category: models.CategoryMain, Description: "Atlantic salmon with seasonal vegetables", Price: 24.99},
		{ID: "main002", Name: "Margherita Pizza", Category: models.CategoryMain, Description: "Tomato, mozzarella, basil", Price: 16.50},
		{ID: "main003", Name: "Ribeye Steak", Category: models.CategoryMain, Description: "12oz ribeye with garlic butter", Price: 34.00},
		{ID: "des001", Name: "Tiramisu", Category: models.CategoryDessert, Description: "Classic espresso-soaked tiramisu", Price: 9.50},
		{ID: "des002", Name: "Cheesecake", Category: models.CategoryDessert, Description: "New York style, berry compote", Price: 8.50},
		{ID: "drk001", Name: "Espresso", Category: models.CategoryDrink, Description: "Double shot", Price: 3.50},
		{ID: "drk002", Name: "House Red Wine", Category: models.CategoryDrink, Description: "Glass of the house red", Price: 9.00},
		{ID: "drk003", Name: "Lemonade", Category: models.CategoryDrink, Description: "Fresh squeezed", Price: 4.50},
	}
	for _, m := range menu {
		m.Available = true
		s.Menu[m.ID] = m
	}

	return s
}
