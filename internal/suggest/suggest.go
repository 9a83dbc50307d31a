// Package suggest derives an upsell prompt from the cart total.
package suggest

const (
	Drink   = "Complete your meal with a drink?"
	Dessert = "Add dessert?"

	// DessertThreshold is in minor currency units.
	DessertThreshold int64 = 5000
)

// Suggest returns "" for an empty cart.
func Suggest(total int64) string {
	switch {
	case total <= 0:
		return ""
	case total < DessertThreshold:
		return Drink
	default:
		return Dessert
	}
}
