package engine

import (
	"sort"

	"github.com/yeremiapane/restaurant-engine/models"
)

// Menu returns menu items ordered by id, optionally filtered by category.
// An unknown category yields an empty list, not an error; the accepted
// categories are the fixed set in models.MenuCategories.
func (e *Engine) Menu(category string) []models.MenuItem {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.MenuItem, 0, len(e.snap.Menu))
	for _, m := range e.snap.Menu {
		if category != "" && m.Category != models.MenuCategory(category) {
			continue
		}
		out = append(out, m.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
