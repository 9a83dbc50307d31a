package domain

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Naira = currency.MustParseISO("NGN")

var symbols = map[currency.Unit]string{
	Naira:        "₦",
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
}

var printer = message.NewPrinter(language.English)

// Money is a display value. Amount is in minor units and is rendered
// without fractional digits.
type Money struct {
	Amount   int64
	Currency currency.Unit
}

func NewMoney(amount int64, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func (m Money) Symbol() string {
	if s, ok := symbols[m.Currency]; ok {
		return s
	}
	return m.Currency.String() + " "
}

// String renders the amount thousands-grouped, e.g. ₦5,500.
func (m Money) String() string {
	return m.Symbol() + printer.Sprintf("%d", m.Amount)
}
