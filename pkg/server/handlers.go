package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vignesh-goutham/papertrade/pkg/trading"
)

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type orderRequest struct {
	Symbol   string `json:"symbol"`
	Quantity int64  `json:"quantity"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"assets": s.feed.ListAssets()})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	price, err := s.feed.GetPrice(symbol)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"symbol": symbol, "price": price})
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	s.mu.Lock()
	err := s.account.Deposit(req.Amount)
	cash := s.account.Cash()
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"cash": cash})
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	s.mu.Lock()
	err := s.account.Withdraw(req.Amount)
	cash := s.account.Cash()
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"cash": cash})
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	s.mu.Lock()
	totalCost, err := s.account.Buy(req.Symbol, req.Quantity)
	cash := s.account.Cash()
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}

	s.log.Info().
		Str("symbol", req.Symbol).
		Int64("quantity", req.Quantity).
		Str("total_cost", totalCost.String()).
		Msg("Executed buy order")

	s.writeJSON(w, http.StatusOK, map[string]any{"total_cost": totalCost, "cash": cash})
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	s.mu.Lock()
	totalRevenue, err := s.account.Sell(req.Symbol, req.Quantity)
	cash := s.account.Cash()
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}

	s.log.Info().
		Str("symbol", req.Symbol).
		Int64("quantity", req.Quantity).
		Str("total_revenue", totalRevenue.String()).
		Msg("Executed sell order")

	s.writeJSON(w, http.StatusOK, map[string]any{"total_revenue": totalRevenue, "cash": cash})
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	positions := s.account.Positions()
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, map[string]any{"positions": positions})
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	totals, err := s.account.PortfolioTotals()
	var profitLoss decimal.Decimal
	if err == nil {
		profitLoss, err = s.account.ProfitLoss()
	}
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"cash":            totals.Cash,
		"positions_value": totals.PositionsValue,
		"total":           totals.Total,
		"profit_loss":     profitLoss,
	})
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	trades := s.account.History()
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, map[string]any{"trades": trades})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError maps the trading error taxonomy onto HTTP statuses:
// invalid input 400, unknown symbol 404, funds/shares shortfalls 422.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		unknownSymbol      *trading.UnknownSymbolError
		invalidQuantity    *trading.InvalidQuantityError
		insufficientFunds  *trading.InsufficientFundsError
		insufficientShares *trading.InsufficientSharesError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &invalidQuantity):
		status = http.StatusBadRequest
	case errors.As(err, &unknownSymbol):
		status = http.StatusNotFound
	case errors.As(err, &insufficientFunds), errors.As(err, &insufficientShares):
		status = http.StatusUnprocessableEntity
	default:
		s.log.Error().Err(err).Msg("Unexpected error")
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
