// Package currency holds presentation metadata for the currencies the demo
// accounts are denominated in. The engine itself never interprets it; the
// terminal client uses it to format amounts.
package currency

import "fmt"

const (
	// DefaultCurrency is the fallback currency code.
	DefaultCurrency = Code("USD")
	// DefaultDecimals is the number of fraction digits assumed for unknown codes.
	DefaultDecimals = 2
)

// Code represents an ISO 4217 currency code (e.g., "USD", "EUR").
type Code string

// Meta holds currency-specific presentation metadata.
type Meta struct {
	Name     string
	Symbol   string
	Decimals int
}

var registry = map[Code]Meta{
	"USD": {Name: "United States dollar", Symbol: "$", Decimals: 2},
	"EUR": {Name: "Euro", Symbol: "€", Decimals: 2},
	"GBP": {Name: "Pound sterling", Symbol: "£", Decimals: 2},
}

// Get returns the metadata for a currency code.
func Get(code Code) (Meta, error) {
	meta, ok := registry[code]
	if !ok {
		return Meta{}, fmt.Errorf("unsupported currency: %q", code)
	}
	return meta, nil
}

// IsSupported reports whether the code is registered.
func IsSupported(code Code) bool {
	_, ok := registry[code]
	return ok
}

// Format renders an amount with the currency's symbol and fraction digits,
// falling back to a bare format for unregistered codes.
func Format(amount float64, code Code) string {
	meta, err := Get(code)
	if err != nil {
		return fmt.Sprintf("%.*f %s", DefaultDecimals, amount, code)
	}
	return fmt.Sprintf("%s%.*f", meta.Symbol, meta.Decimals, amount)
}
