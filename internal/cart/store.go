// Package cart owns the session cart: mutations, derived values and the
// commit path that hands snapshots to persistence and the view.
package cart

import (
	"math"

	"github.com/joeynweke/restaurant-dashboard/internal/domain"
)

// CommitHook observes the cart after every mutation that changed it. Each
// hook receives its own copy.
type CommitHook func(domain.Cart)

// Store is the single owner of a session cart. It is not safe for
// concurrent use.
type Store struct {
	cart  domain.Cart
	hooks []CommitHook
}

func NewStore(hooks ...CommitHook) *Store {
	return &Store{hooks: hooks}
}

func (s *Store) Subscribe(hook CommitHook) {
	s.hooks = append(s.hooks, hook)
}

// Restore replaces the cart without notifying hooks. Lines with a quantity
// below 1 are dropped and repeated items are merged into the first line.
func (s *Store) Restore(cart domain.Cart) {
	var restored domain.Cart

	for _, line := range cart.Lines {
		if line.Quantity < 1 {
			continue
		}
		if i := indexOf(restored, line.Item.ID); i >= 0 {
			restored.Lines[i].Quantity = addQuantity(restored.Lines[i].Quantity, line.Quantity)
			continue
		}
		restored.Lines = append(restored.Lines, line)
	}

	s.cart = restored
}

func (s *Store) AddItem(item domain.MenuItem) domain.Cart {
	if i := indexOf(s.cart, item.ID); i >= 0 {
		s.cart.Lines[i].Quantity = addQuantity(s.cart.Lines[i].Quantity, 1)
	} else {
		s.cart.Lines = append(s.cart.Lines, domain.CartLine{Item: item, Quantity: 1})
	}

	return s.commit()
}

// ChangeQuantity floors the resulting quantity at 1; removing a line takes
// RemoveItem. An unknown itemID leaves the cart untouched.
func (s *Store) ChangeQuantity(itemID int, delta int) domain.Cart {
	i := indexOf(s.cart, itemID)
	if i < 0 {
		return s.cart.Clone()
	}

	s.cart.Lines[i].Quantity = max(1, addQuantity(s.cart.Lines[i].Quantity, delta))

	return s.commit()
}

func (s *Store) RemoveItem(itemID int) domain.Cart {
	i := indexOf(s.cart, itemID)
	if i < 0 {
		return s.cart.Clone()
	}

	lines := make([]domain.CartLine, 0, len(s.cart.Lines)-1)
	lines = append(lines, s.cart.Lines[:i]...)
	lines = append(lines, s.cart.Lines[i+1:]...)
	s.cart.Lines = lines

	return s.commit()
}

func (s *Store) Clear() domain.Cart {
	if s.cart.IsEmpty() {
		return domain.Cart{}
	}

	s.cart = domain.Cart{}

	return s.commit()
}

func (s *Store) Cart() domain.Cart {
	return s.cart.Clone()
}

func (s *Store) Total() int64 {
	return s.cart.Total()
}

func (s *Store) ItemCount() int {
	return s.cart.ItemCount()
}

func (s *Store) commit() domain.Cart {
	for _, hook := range s.hooks {
		hook(s.cart.Clone())
	}

	return s.cart.Clone()
}

func indexOf(cart domain.Cart, itemID int) int {
	for i, line := range cart.Lines {
		if line.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// addQuantity saturates instead of wrapping around.
func addQuantity(quantity, delta int) int {
	switch {
	case delta > 0 && quantity > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && quantity < math.MinInt-delta:
		return math.MinInt
	}
	return quantity + delta
}
