// Package catalog holds the fixed menu of the restaurant.
package catalog

import (
	"strings"

	"github.com/joeynweke/restaurant-dashboard/internal/domain"
	"golang.org/x/text/cases"
)

var menu = []domain.MenuItem{
	{ID: 1, Name: "Jollof Rice & Chicken", UnitPrice: 2500, Category: domain.CategoryRice},
	{ID: 2, Name: "Egusi Soup + Pounded Yam", UnitPrice: 3000, Category: domain.CategorySoup},
	{ID: 3, Name: "Fried Rice + Plantain", UnitPrice: 2200, Category: domain.CategoryRice},
	{ID: 4, Name: "Pepper Soup (Goat)", UnitPrice: 3500, Category: domain.CategorySoup},
	{ID: 5, Name: "Chapman Drink", UnitPrice: 800, Category: domain.CategoryDrinks},
	{ID: 6, Name: "Zobo", UnitPrice: 500, Category: domain.CategoryDrinks},
	{ID: 7, Name: "Meat Pie", UnitPrice: 700, Category: domain.CategorySnacks},
	{ID: 8, Name: "Puff Puff (10 pcs)", UnitPrice: 1000, Category: domain.CategorySnacks},
}

// Items returns a copy of the menu in display order.
func Items() []domain.MenuItem {
	items := make([]domain.MenuItem, len(menu))
	copy(items, menu)
	return items
}

func Find(id int) (domain.MenuItem, bool) {
	for _, item := range menu {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

// Search matches query against item names ignoring case. A blank query
// matches every item.
func Search(query string) []domain.MenuItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return Items()
	}

	fold := cases.Fold()
	needle := fold.String(query)

	var found []domain.MenuItem
	for _, item := range menu {
		if strings.Contains(fold.String(item.Name), needle) {
			found = append(found, item)
		}
	}

	return found
}

// Fixed exposes the package-level menu as a value for callers that take
// an interface.
type Fixed struct{}

func (Fixed) Items() []domain.MenuItem { return Items() }

func (Fixed) Find(id int) (domain.MenuItem, bool) { return Find(id) }

func (Fixed) Search(query string) []domain.MenuItem { return Search(query) }
