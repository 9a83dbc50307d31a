package domain

type Category string

const (
	CategoryRice   Category = "rice"
	CategorySoup   Category = "soup"
	CategoryDrinks Category = "drinks"
	CategorySnacks Category = "snacks"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryRice, CategorySoup, CategoryDrinks, CategorySnacks:
		return true
	}
	return false
}

// MenuItem prices are in minor currency units.
type MenuItem struct {
	ID        int
	Name      string
	UnitPrice int64
	Category  Category
}
