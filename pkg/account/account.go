package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vignesh-goutham/papertrade/pkg/pricefeed"
	"github.com/vignesh-goutham/papertrade/pkg/trading"
)

// Position represents a held quantity of one symbol with its weighted
// average purchase cost. AvgCost is recomputed on buys only; sells
// reduce Shares and leave AvgCost untouched.
type Position struct {
	Shares  int64           `json:"shares"`
	AvgCost decimal.Decimal `json:"avg_cost"`
}

// PortfolioTotals is the valuation snapshot returned by
// Account.PortfolioTotals.
type PortfolioTotals struct {
	Cash           decimal.Decimal `json:"cash"`
	PositionsValue decimal.Decimal `json:"positions_value"`
	Total          decimal.Decimal `json:"total"`
}

// Account is an in-memory trading account: a cash balance, the open
// positions keyed by symbol, and an append-only trade log. Prices come
// from the injected feed at execution time.
//
// An Account assumes exclusive access during each call. It defines no
// locking of its own; callers sharing one account across goroutines
// must serialize access themselves.
type Account struct {
	cash        decimal.Decimal
	initialCash decimal.Decimal
	positions   map[string]*Position
	trades      []trading.Trade
	feed        pricefeed.PriceFeed

	now func() time.Time
}

// New creates an account with the given starting cash and price feed.
func New(initialCash decimal.Decimal, feed pricefeed.PriceFeed) (*Account, error) {
	if initialCash.IsNegative() {
		return nil, &trading.InvalidQuantityError{
			Quantity: initialCash,
			Message:  "initial cash must not be negative",
		}
	}

	return &Account{
		cash:        initialCash,
		initialCash: initialCash,
		positions:   make(map[string]*Position),
		trades:      make([]trading.Trade, 0),
		feed:        feed,
		now:         time.Now,
	}, nil
}

// Cash returns the current cash balance.
func (a *Account) Cash() decimal.Decimal {
	return a.cash
}

// Quote returns the current feed price for a symbol.
func (a *Account) Quote(symbol string) (decimal.Decimal, error) {
	return a.feed.GetPrice(symbol)
}

// Deposit adds cash to the account and records a deposit trade.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &trading.InvalidQuantityError{
			Quantity: amount,
			Message:  "deposit amount must be positive",
		}
	}

	a.cash = a.cash.Add(amount)
	a.record(trading.Trade{
		Type:        trading.TradeTypeDeposit,
		TotalAmount: amount,
	})

	return nil
}

// Withdraw removes cash from the account and records a withdrawal
// trade. The balance can never go below zero.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &trading.InvalidQuantityError{
			Quantity: amount,
			Message:  "withdrawal amount must be positive",
		}
	}
	if amount.GreaterThan(a.cash) {
		return &trading.InsufficientFundsError{Required: amount, Available: a.cash}
	}

	a.cash = a.cash.Sub(amount)
	a.record(trading.Trade{
		Type:        trading.TradeTypeWithdrawal,
		TotalAmount: amount.Neg(),
	})

	return nil
}

// Buy purchases quantity shares of symbol at the current feed price and
// returns the total cost. The position's average cost is recomputed as
// a weighted average when shares are added to an existing position.
func (a *Account) Buy(symbol string, quantity int64) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, &trading.InvalidQuantityError{
			Quantity: decimal.NewFromInt(quantity),
			Message:  "buy quantity must be positive",
		}
	}

	price, err := a.feed.GetPrice(symbol)
	if err != nil {
		return decimal.Zero, err
	}

	qty := decimal.NewFromInt(quantity)
	totalCost := price.Mul(qty)
	if totalCost.GreaterThan(a.cash) {
		return decimal.Zero, &trading.InsufficientFundsError{Required: totalCost, Available: a.cash}
	}

	// All validation passed; mutate cash, position and log together.
	a.cash = a.cash.Sub(totalCost)

	key := normalize(symbol)
	if existing, ok := a.positions[key]; ok {
		totalShares := existing.Shares + quantity
		totalValue := decimal.NewFromInt(existing.Shares).Mul(existing.AvgCost).Add(totalCost)

		existing.AvgCost = totalValue.Div(decimal.NewFromInt(totalShares))
		existing.Shares = totalShares
	} else {
		a.positions[key] = &Position{
			Shares:  quantity,
			AvgCost: price,
		}
	}

	a.record(trading.Trade{
		Type:        trading.TradeTypeBuy,
		Symbol:      key,
		Quantity:    quantity,
		Price:       &price,
		TotalAmount: totalCost,
	})

	return totalCost, nil
}

// Sell sells quantity shares of an open position at the current feed
// price and returns the total revenue. A position that reaches zero
// shares is removed entirely. AvgCost never changes on a sell.
func (a *Account) Sell(symbol string, quantity int64) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, &trading.InvalidQuantityError{
			Quantity: decimal.NewFromInt(quantity),
			Message:  "sell quantity must be positive",
		}
	}

	key := normalize(symbol)
	existing, ok := a.positions[key]
	if !ok {
		return decimal.Zero, &trading.UnknownSymbolError{Symbol: key}
	}
	if quantity > existing.Shares {
		return decimal.Zero, &trading.InsufficientSharesError{
			Required:  quantity,
			Available: existing.Shares,
		}
	}

	// The symbol may have been delisted from the feed after the
	// position was opened; the sell must fail cleanly in that case.
	price, err := a.feed.GetPrice(symbol)
	if err != nil {
		return decimal.Zero, err
	}

	totalRevenue := price.Mul(decimal.NewFromInt(quantity))
	a.cash = a.cash.Add(totalRevenue)

	existing.Shares -= quantity
	if existing.Shares == 0 {
		delete(a.positions, key)
	}

	a.record(trading.Trade{
		Type:        trading.TradeTypeSell,
		Symbol:      key,
		Quantity:    quantity,
		Price:       &price,
		TotalAmount: totalRevenue,
	})

	return totalRevenue, nil
}

// Positions returns a snapshot of all open positions. Mutating the
// returned map does not affect the account.
func (a *Account) Positions() map[string]Position {
	snapshot := make(map[string]Position, len(a.positions))
	for symbol, pos := range a.positions {
		snapshot[symbol] = *pos
	}

	return snapshot
}

// PortfolioTotals values every open position at the current feed price
// and returns cash, positions value and their sum. If any held symbol
// is no longer in the feed the whole call fails rather than silently
// understating the portfolio.
func (a *Account) PortfolioTotals() (PortfolioTotals, error) {
	positionsValue := decimal.Zero
	for symbol, pos := range a.positions {
		price, err := a.feed.GetPrice(symbol)
		if err != nil {
			return PortfolioTotals{}, err
		}
		positionsValue = positionsValue.Add(price.Mul(decimal.NewFromInt(pos.Shares)))
	}

	return PortfolioTotals{
		Cash:           a.cash,
		PositionsValue: positionsValue,
		Total:          a.cash.Add(positionsValue),
	}, nil
}

// ProfitLoss reports the overall profit or loss: current total value
// minus net contributions (starting cash plus deposits less
// withdrawals). Fails like PortfolioTotals if a held symbol has left
// the feed.
func (a *Account) ProfitLoss() (decimal.Decimal, error) {
	totals, err := a.PortfolioTotals()
	if err != nil {
		return decimal.Zero, err
	}

	contributions := a.initialCash
	for _, t := range a.trades {
		switch t.Type {
		case trading.TradeTypeDeposit, trading.TradeTypeWithdrawal:
			contributions = contributions.Add(t.TotalAmount)
		}
	}

	return totals.Total.Sub(contributions), nil
}

// History returns the trade log in chronological order. The returned
// slice is a copy; the records themselves are never mutated after
// being appended.
func (a *Account) History() []trading.Trade {
	history := make([]trading.Trade, len(a.trades))
	copy(history, a.trades)

	return history
}

// normalize maps a user-supplied symbol to the uppercase form used as
// the positions key and in trade records.
func normalize(symbol string) string {
	return strings.ToUpper(symbol)
}

func (a *Account) record(t trading.Trade) {
	t.ID = uuid.New()
	t.Timestamp = a.now()
	a.trades = append(a.trades, t)
}
