package trading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeType represents the kind of entry in the account's trade log
type TradeType string

const (
	TradeTypeDeposit    TradeType = "deposit"
	TradeTypeWithdrawal TradeType = "withdrawal"
	TradeTypeBuy        TradeType = "buy"
	TradeTypeSell       TradeType = "sell"
)

// Trade is one immutable entry in the account's chronological history.
// Symbol, Quantity and Price are only set for buy/sell entries; cash
// operations leave them absent. TotalAmount is signed: positive for
// deposits, buy cost and sell revenue, negative for withdrawals.
type Trade struct {
	ID          uuid.UUID        `json:"id"`
	Type        TradeType        `json:"type"`
	Symbol      string           `json:"symbol,omitempty"`
	Quantity    int64            `json:"quantity,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Timestamp   time.Time        `json:"timestamp"`
}
