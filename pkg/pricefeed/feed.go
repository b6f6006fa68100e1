package pricefeed

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vignesh-goutham/papertrade/pkg/trading"
)

// PriceFeed is the interface for resolving a symbol to its current
// tradable price
type PriceFeed interface {
	// GetPrice gets the current price for a given symbol
	GetPrice(symbol string) (decimal.Decimal, error)

	// ListAssets lists all known symbols in lexicographic order
	ListAssets() []string
}

// StaticFeed implements the PriceFeed interface over a fixed price
// table. The table is copied at construction and never mutated, so a
// StaticFeed is safe to share.
type StaticFeed struct {
	prices map[string]decimal.Decimal
}

// NewStaticFeed creates a static feed from the given symbol -> price
// table. Symbols are normalized to uppercase; prices must be positive.
func NewStaticFeed(prices map[string]decimal.Decimal) (*StaticFeed, error) {
	table := make(map[string]decimal.Decimal, len(prices))
	for symbol, price := range prices {
		if !price.IsPositive() {
			return nil, fmt.Errorf("price for %s must be positive, got %s", symbol, price)
		}
		table[strings.ToUpper(symbol)] = price
	}

	return &StaticFeed{prices: table}, nil
}

// GetPrice gets the current price for a given symbol
func (f *StaticFeed) GetPrice(symbol string) (decimal.Decimal, error) {
	price, ok := f.prices[strings.ToUpper(symbol)]
	if !ok {
		return decimal.Zero, &trading.UnknownSymbolError{Symbol: strings.ToUpper(symbol)}
	}

	return price, nil
}

// ListAssets lists all known symbols in lexicographic order
func (f *StaticFeed) ListAssets() []string {
	symbols := make([]string, 0, len(f.prices))
	for symbol := range f.prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	return symbols
}

// DefaultPrices returns the built-in price table used when no table is
// supplied through configuration.
func DefaultPrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"AAPL":  decimal.NewFromFloat(150.00),
		"TSLA":  decimal.NewFromFloat(700.00),
		"GOOGL": decimal.NewFromFloat(2800.00),
		"MSFT":  decimal.NewFromFloat(310.00),
		"AMZN":  decimal.NewFromFloat(135.00),
		"META":  decimal.NewFromFloat(485.00),
		"NFLX":  decimal.NewFromFloat(610.00),
		"NVDA":  decimal.NewFromFloat(875.00),
	}
}
