package trading

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TradingError is the base kind shared by every validation failure the
// account or price feed can raise. Callers that only care whether an
// error came from the trading domain can match on this; callers that
// need fields use errors.As with the concrete type.
type TradingError interface {
	error
	TradingError()
}

// UnknownSymbolError reports a symbol that is not in the price feed, or
// a sell/valuation target with no open position.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %s", e.Symbol)
}

func (e *UnknownSymbolError) TradingError() {}

// InvalidQuantityError reports a quantity or cash amount that is not
// strictly positive.
type InvalidQuantityError struct {
	Quantity decimal.Decimal
	Message  string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: got %s", e.Message, e.Quantity)
}

func (e *InvalidQuantityError) TradingError() {}

// InsufficientFundsError reports a debit that would take cash below zero.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %s, have %s", e.Required, e.Available)
}

func (e *InsufficientFundsError) TradingError() {}

// InsufficientSharesError reports a sell for more shares than are held.
type InsufficientSharesError struct {
	Required  int64
	Available int64
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares: need %d, have %d", e.Required, e.Available)
}

func (e *InsufficientSharesError) TradingError() {}
