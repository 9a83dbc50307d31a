package domain

import "math"

type Cart struct {
	Lines []CartLine
}

// CartLine quantity is at least 1 for as long as the line is in a cart.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// Subtotal saturates at math.MaxInt64.
func (l CartLine) Subtotal() int64 {
	return mulAmount(l.Item.UnitPrice, int64(l.Quantity))
}

// Total is recomputed on every call, it is never cached on the cart. It
// saturates at math.MaxInt64.
func (c Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total = addAmount(total, line.Subtotal())
	}
	return total
}

func (c Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Line(itemID int) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.Item.ID == itemID {
			return line, true
		}
	}
	return CartLine{}, false
}

// Clone returns a cart that shares no backing array with c.
func (c Cart) Clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{}
	}

	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)

	return Cart{Lines: lines}
}

// mulAmount and addAmount expect non-negative operands.
func mulAmount(price, quantity int64) int64 {
	if price <= 0 || quantity <= 0 {
		return 0
	}
	if price > math.MaxInt64/quantity {
		return math.MaxInt64
	}
	return price * quantity
}

func addAmount(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
