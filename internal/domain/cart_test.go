package domain_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joeynweke/restaurant-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotal(t *testing.T) {
	tests := []struct {
		name      string
		cart      domain.Cart
		wantTotal int64
		wantCount int
	}{
		{
			name: "empty cart: zero",
		},
		{
			name: "single line: price times quantity",
			cart: domain.Cart{Lines: []domain.CartLine{
				{Item: domain.MenuItem{ID: 1, UnitPrice: 2500}, Quantity: 2},
			}},
			wantTotal: 5000,
			wantCount: 2,
		},
		{
			name: "several lines: sum of subtotals",
			cart: domain.Cart{Lines: []domain.CartLine{
				{Item: domain.MenuItem{ID: 1, UnitPrice: 2500}, Quantity: 2},
				{Item: domain.MenuItem{ID: 6, UnitPrice: 500}, Quantity: 1},
			}},
			wantTotal: 5500,
			wantCount: 3,
		},
		{
			name: "free item: counted but adds nothing",
			cart: domain.Cart{Lines: []domain.CartLine{
				{Item: domain.MenuItem{ID: 9, UnitPrice: 0}, Quantity: 4},
			}},
			wantTotal: 0,
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTotal, tt.cart.Total())
			assert.Equal(t, tt.wantCount, tt.cart.ItemCount())
		})
	}
}

func TestCartTotalRandom(t *testing.T) {
	for range 50 {
		cart := randomCart()

		var want int64
		for _, line := range cart.Lines {
			want += line.Item.UnitPrice * int64(line.Quantity)
		}

		require.Equal(t, want, cart.Total())
	}
}

func TestCartLine(t *testing.T) {
	cart := domain.Cart{Lines: []domain.CartLine{
		{Item: domain.MenuItem{ID: 3, Name: "Fried Rice + Plantain"}, Quantity: 1},
	}}

	line, ok := cart.Line(3)
	require.True(t, ok)
	assert.Equal(t, "Fried Rice + Plantain", line.Item.Name)

	_, ok = cart.Line(4)
	assert.False(t, ok)
}

func TestCartClone(t *testing.T) {
	cart := domain.Cart{Lines: []domain.CartLine{
		{Item: domain.MenuItem{ID: 1}, Quantity: 1},
	}}

	clone := cart.Clone()
	clone.Lines[0].Quantity = 7

	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Nil(t, domain.Cart{}.Clone().Lines)
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, domain.CategoryDrinks.Valid())
	assert.False(t, domain.Category("dessert").Valid())
	assert.False(t, domain.Category("").Valid())
}

func randomCart() domain.Cart {
	var cart domain.Cart

	n := gofakeit.Number(0, 10)
	for i := range n {
		cart.Lines = append(cart.Lines, domain.CartLine{
			Item: domain.MenuItem{
				ID:        i + 1,
				Name:      gofakeit.ProductName(),
				UnitPrice: int64(gofakeit.Number(0, 100_000)),
				Category:  domain.CategorySnacks,
			},
			Quantity: gofakeit.Number(1, 50),
		})
	}

	return cart
}

func TestCartTotalSaturates(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.CartLine
		wantSubtotal int64
		wantTotal    int64
	}{
		{
			name:         "price times quantity past max: saturates",
			lines:        []domain.CartLine{{Item: domain.MenuItem{ID: 1, UnitPrice: math.MaxInt64}, Quantity: 2}},
			wantSubtotal: math.MaxInt64,
			wantTotal:    math.MaxInt64,
		},
		{
			name:         "max quantity: saturates",
			lines:        []domain.CartLine{{Item: domain.MenuItem{ID: 1, UnitPrice: 2500}, Quantity: math.MaxInt}},
			wantSubtotal: math.MaxInt64,
			wantTotal:    math.MaxInt64,
		},
		{
			name: "sum of subtotals past max: saturates",
			lines: []domain.CartLine{
				{Item: domain.MenuItem{ID: 1, UnitPrice: math.MaxInt64 - 10}, Quantity: 1},
				{Item: domain.MenuItem{ID: 2, UnitPrice: 500}, Quantity: 1},
			},
			wantSubtotal: math.MaxInt64 - 10,
			wantTotal:    math.MaxInt64,
		},
		{
			name:         "at max exactly: no saturation",
			lines:        []domain.CartLine{{Item: domain.MenuItem{ID: 1, UnitPrice: math.MaxInt64}, Quantity: 1}},
			wantSubtotal: math.MaxInt64,
			wantTotal:    math.MaxInt64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.Cart{Lines: tt.lines}

			assert.Equal(t, tt.wantSubtotal, cart.Lines[0].Subtotal())
			assert.Equal(t, tt.wantTotal, cart.Total())
			assert.Positive(t, cart.Total())
		})
	}
}
