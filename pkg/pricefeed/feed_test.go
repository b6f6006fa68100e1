package pricefeed

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-goutham/papertrade/pkg/trading"
)

func TestNewStaticFeed(t *testing.T) {
	tests := []struct {
		name      string
		prices    map[string]decimal.Decimal
		expectErr bool
	}{
		{
			name:   "empty table",
			prices: map[string]decimal.Decimal{},
		},
		{
			name: "valid table",
			prices: map[string]decimal.Decimal{
				"AAPL": decimal.NewFromFloat(150.00),
				"TSLA": decimal.NewFromFloat(700.00),
			},
		},
		{
			name: "zero price rejected",
			prices: map[string]decimal.Decimal{
				"AAPL": decimal.Zero,
			},
			expectErr: true,
		},
		{
			name: "negative price rejected",
			prices: map[string]decimal.Decimal{
				"AAPL": decimal.NewFromFloat(-1.00),
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := NewStaticFeed(tt.prices)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, feed)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, feed)
		})
	}
}

func TestGetPrice(t *testing.T) {
	feed, err := NewStaticFeed(map[string]decimal.Decimal{
		"AAPL":  decimal.NewFromFloat(150.00),
		"googl": decimal.NewFromFloat(2800.00),
	})
	require.NoError(t, err)

	tests := []struct {
		name          string
		symbol        string
		expectedPrice decimal.Decimal
		expectUnknown bool
	}{
		{
			name:          "exact match",
			symbol:        "AAPL",
			expectedPrice: decimal.NewFromFloat(150.00),
		},
		{
			name:          "lowercase lookup normalized",
			symbol:        "aapl",
			expectedPrice: decimal.NewFromFloat(150.00),
		},
		{
			name:          "lowercase table key normalized",
			symbol:        "GOOGL",
			expectedPrice: decimal.NewFromFloat(2800.00),
		},
		{
			name:          "unknown symbol",
			symbol:        "ZZZZ",
			expectUnknown: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := feed.GetPrice(tt.symbol)

			if tt.expectUnknown {
				var unknown *trading.UnknownSymbolError
				require.True(t, errors.As(err, &unknown))
				assert.Equal(t, "ZZZZ", unknown.Symbol)
				return
			}

			require.NoError(t, err)
			assert.True(t, price.Equal(tt.expectedPrice), "expected %s, got %s", tt.expectedPrice, price)
		})
	}
}

func TestListAssets(t *testing.T) {
	feed, err := NewStaticFeed(map[string]decimal.Decimal{
		"TSLA":  decimal.NewFromFloat(700.00),
		"aapl":  decimal.NewFromFloat(150.00),
		"GOOGL": decimal.NewFromFloat(2800.00),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "GOOGL", "TSLA"}, feed.ListAssets())
}

func TestDefaultPrices(t *testing.T) {
	feed, err := NewStaticFeed(DefaultPrices())
	require.NoError(t, err)

	assets := feed.ListAssets()
	assert.Len(t, assets, 8)
	assert.Contains(t, assets, "AAPL")
	assert.Contains(t, assets, "NVDA")

	for _, symbol := range assets {
		price, err := feed.GetPrice(symbol)
		require.NoError(t, err)
		assert.True(t, price.IsPositive(), "price for %s must be positive", symbol)
	}
}
