// Package order turns a cart into the text message and deep link used to
// hand the order off to a messaging app.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joeynweke/restaurant-dashboard/internal/domain"
)

const (
	DefaultBaseURL = "https://wa.me"
	greeting       = "Hello! I'd like to order:"
)

type Message struct {
	Text string
	Link string
}

type Option func(*Formatter)

func WithBaseURL(baseURL string) Option {
	return func(f *Formatter) {
		if baseURL != "" {
			f.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

type Formatter struct {
	destination string
	baseURL     string
}

// NewFormatter does not validate destination; a bad one yields a link the
// messaging app rejects.
func NewFormatter(destination string, opts ...Option) *Formatter {
	f := &Formatter{
		destination: destination,
		baseURL:     DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Formatter) Destination() string {
	return f.destination
}

func (f *Formatter) Format(cart domain.Cart, total int64, suggestion string) Message {
	text := f.Text(cart, total, suggestion)

	return Message{
		Text: text,
		Link: f.Link(text),
	}
}

func (f *Formatter) Text(cart domain.Cart, total int64, suggestion string) string {
	var b strings.Builder

	b.WriteString(greeting)
	b.WriteString("\n\n")

	for i, line := range cart.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%dx %s - %s", line.Quantity, line.Item.Name, f.money(line.Subtotal()))
	}

	fmt.Fprintf(&b, "\n\nTotal: %s", f.money(total))

	if suggestion != "" {
		b.WriteString("\n\n")
		b.WriteString(suggestion)
	}

	return b.String()
}

// Link encodes spaces as %20 rather than '+', which some messaging apps
// show literally.
func (f *Formatter) Link(text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return f.baseURL + "/" + url.PathEscape(f.destination) + "?text=" + escaped
}

func (f *Formatter) money(amount int64) string {
	return domain.NewMoney(amount, domain.Naira).String()
}
