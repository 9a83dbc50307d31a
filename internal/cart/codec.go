package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/joeynweke/restaurant-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// StorageKey is the key the cart snapshot is stored under.
const StorageKey = "restaurantCart"

var ErrMalformedSnapshot = errors.New("malformed cart snapshot")

// maxPrice also bounds every subtotal and the cart total.
var maxPrice = decimal.NewFromInt(math.MaxInt64)

// storedLine keeps the field names of the browser app's snapshots so they
// decode unchanged.
type storedLine struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    int64           `json:"price"`
	Category domain.Category `json:"category"`
	Qty      int             `json:"qty"`
}

// decodedLine accepts the price as a JSON number or a numeric string.
type decodedLine struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category domain.Category `json:"category"`
	Qty      int             `json:"qty"`
}

func Encode(cart domain.Cart) ([]byte, error) {
	lines := make([]storedLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, storedLine{
			ID:       line.Item.ID,
			Name:     line.Item.Name,
			Price:    line.Item.UnitPrice,
			Category: line.Item.Category,
			Qty:      line.Quantity,
		})
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// Decode rejects the whole snapshot if any line breaks a cart invariant.
func Decode(data []byte) (domain.Cart, error) {
	var lines []decodedLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	var cart domain.Cart
	seen := make(map[int]bool, len(lines))
	total := decimal.Zero

	for i, line := range lines {
		switch {
		case seen[line.ID]:
			return domain.Cart{}, fmt.Errorf("%w: line %d: duplicate id %d", ErrMalformedSnapshot, i, line.ID)
		case line.Qty < 1:
			return domain.Cart{}, fmt.Errorf("%w: line %d: qty %d below 1", ErrMalformedSnapshot, i, line.Qty)
		case line.Price.IsNegative():
			return domain.Cart{}, fmt.Errorf("%w: line %d: negative price %s", ErrMalformedSnapshot, i, line.Price)
		case !line.Price.IsInteger():
			return domain.Cart{}, fmt.Errorf("%w: line %d: fractional price %s", ErrMalformedSnapshot, i, line.Price)
		case line.Price.GreaterThan(maxPrice):
			return domain.Cart{}, fmt.Errorf("%w: line %d: price %s out of range", ErrMalformedSnapshot, i, line.Price)
		case !line.Category.Valid():
			return domain.Cart{}, fmt.Errorf("%w: line %d: unknown category %q", ErrMalformedSnapshot, i, line.Category)
		}
		seen[line.ID] = true

		subtotal := line.Price.Mul(decimal.NewFromInt(int64(line.Qty)))
		total = total.Add(subtotal)
		if total.GreaterThan(maxPrice) {
			return domain.Cart{}, fmt.Errorf("%w: line %d: total %s out of range", ErrMalformedSnapshot, i, total)
		}

		cart.Lines = append(cart.Lines, domain.CartLine{
			Item: domain.MenuItem{
				ID:        line.ID,
				Name:      line.Name,
				UnitPrice: line.Price.IntPart(),
				Category:  line.Category,
			},
			Quantity: line.Qty,
		})
	}

	return cart, nil
}
