// Package terminal is a line-oriented view over the cart store. It reads
// commands, calls store operations and prints what changed.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joeynweke/restaurant-dashboard/internal/cart"
	"github.com/joeynweke/restaurant-dashboard/internal/domain"
	"github.com/joeynweke/restaurant-dashboard/internal/order"
	"github.com/joeynweke/restaurant-dashboard/internal/suggest"
)

type Menu interface {
	Items() []domain.MenuItem
	Find(id int) (domain.MenuItem, bool)
	Search(query string) []domain.MenuItem
}

type Session struct {
	store     *cart.Store
	menu      Menu
	formatter *order.Formatter
	out       io.Writer
}

func NewSession(store *cart.Store, menu Menu, formatter *order.Formatter, out io.Writer) *Session {
	return &Session{
		store:     store,
		menu:      menu,
		formatter: formatter,
		out:       out,
	}
}

// Run returns when in is exhausted, on quit, or when ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	s.printf("Mama Put Restaurant. Type help for commands.\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("> ")
		if !scanner.Scan() {
			s.printf("\n")
			return scanner.Err()
		}

		if quit := s.Exec(scanner.Text()); quit {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the session should end.
func (s *Session) Exec(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "help", "?":
		s.help()
	case "menu":
		s.listMenu(s.menu.Items())
	case "search":
		s.listMenu(s.menu.Search(arg))
	case "add":
		if item, ok := s.lookup(arg); ok {
			s.store.AddItem(item)
			s.showCart()
		}
	case "inc", "+":
		s.change(arg, 1)
	case "dec", "-":
		s.change(arg, -1)
	case "rm", "remove":
		if id, ok := s.parseID(arg); ok {
			if _, inCart := s.store.Cart().Line(id); !inCart {
				s.printf("item %d is not in your order\n", id)
				return false
			}
			s.store.RemoveItem(id)
			s.showCart()
		}
	case "cart":
		s.showCart()
	case "send":
		s.send()
	case "clear":
		s.store.Clear()
		s.printf("order cleared\n")
	case "quit", "exit", "q":
		s.printf("Goodbye!\n")
		return true
	default:
		s.printf("unknown command %q, type help\n", cmd)
	}

	return false
}

func (s *Session) help() {
	s.printf(`commands:
  menu            list the menu
  search <text>   filter the menu by name
  add <id>        add one of an item
  inc <id>        one more of an item in the order
  dec <id>        one less (never below 1, use rm)
  rm <id>         remove an item from the order
  cart            show the order
  send            show the order message and link
  clear           empty the order
  quit
`)
}

func (s *Session) listMenu(items []domain.MenuItem) {
	if len(items) == 0 {
		s.printf("no items match\n")
		return
	}

	for _, item := range items {
		s.printf("%3d  %-28s %10s  %s\n", item.ID, item.Name, s.money(item.UnitPrice), item.Category)
	}
}

func (s *Session) change(arg string, delta int) {
	id, ok := s.parseID(arg)
	if !ok {
		return
	}

	if _, inCart := s.store.Cart().Line(id); !inCart {
		s.printf("item %d is not in your order\n", id)
		return
	}

	s.store.ChangeQuantity(id, delta)
	s.showCart()
}

func (s *Session) showCart() {
	c := s.store.Cart()
	if c.IsEmpty() {
		s.printf("your order is empty\n")
		return
	}

	s.printf("Your Order (%d items)\n", s.store.ItemCount())
	for _, line := range c.Lines {
		s.printf("  %dx %-28s %10s\n", line.Quantity, line.Item.Name, s.money(line.Subtotal()))
	}

	total := s.store.Total()
	s.printf("  Total %34s\n", s.money(total))

	if suggestion := suggest.Suggest(total); suggestion != "" {
		s.printf("  Suggestion: %s\n", suggestion)
	}
}

func (s *Session) send() {
	c := s.store.Cart()
	if c.IsEmpty() {
		s.printf("your order is empty\n")
		return
	}

	total := s.store.Total()
	msg := s.formatter.Format(c, total, suggest.Suggest(total))

	s.printf("%s\n\nSend via WhatsApp to +%s:\n%s\n", msg.Text, s.formatter.Destination(), msg.Link)
}

func (s *Session) lookup(arg string) (domain.MenuItem, bool) {
	id, ok := s.parseID(arg)
	if !ok {
		return domain.MenuItem{}, false
	}

	item, ok := s.menu.Find(id)
	if !ok {
		s.printf("no menu item %d\n", id)
		return domain.MenuItem{}, false
	}

	return item, true
}

func (s *Session) parseID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		s.printf("expected an item id, got %q\n", arg)
		return 0, false
	}
	return id, true
}

func (s *Session) money(amount int64) string {
	return domain.NewMoney(amount, domain.Naira).String()
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
