package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vignesh-goutham/papertrade/pkg/account"
	"github.com/vignesh-goutham/papertrade/pkg/pricefeed"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted trading session",
	Long: `Run a short deposit/buy/sell session against the built-in price
table and print the resulting positions, totals and trade history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		feed, err := pricefeed.NewStaticFeed(pricefeed.DefaultPrices())
		if err != nil {
			return err
		}

		acct, err := account.New(decimal.Zero, feed)
		if err != nil {
			return err
		}

		if err := acct.Deposit(decimal.NewFromInt(10000)); err != nil {
			return err
		}
		fmt.Printf("Deposited $10000.00, cash: $%s\n", acct.Cash().StringFixed(2))

		for _, order := range []struct {
			symbol   string
			quantity int64
		}{
			{"AAPL", 10},
			{"MSFT", 5},
			{"AAPL", 4},
		} {
			cost, err := acct.Buy(order.symbol, order.quantity)
			if err != nil {
				return err
			}
			fmt.Printf("Bought %d %s for $%s\n", order.quantity, order.symbol, cost.StringFixed(2))
		}

		revenue, err := acct.Sell("AAPL", 6)
		if err != nil {
			return err
		}
		fmt.Printf("Sold 6 AAPL for $%s\n", revenue.StringFixed(2))

		fmt.Println("\nPositions:")
		for symbol, pos := range acct.Positions() {
			fmt.Printf("  %-8s %5d shares, avg cost $%s\n", symbol, pos.Shares, pos.AvgCost.StringFixed(2))
		}

		totals, err := acct.PortfolioTotals()
		if err != nil {
			return err
		}
		fmt.Printf("\nCash: $%s  Positions: $%s  Total: $%s\n",
			totals.Cash.StringFixed(2), totals.PositionsValue.StringFixed(2), totals.Total.StringFixed(2))

		fmt.Println("\nHistory:")
		for _, trade := range acct.History() {
			if trade.Symbol == "" {
				fmt.Printf("  %-10s %43s $%s\n", trade.Type, "", trade.TotalAmount.StringFixed(2))
				continue
			}
			fmt.Printf("  %-10s %-8s %5d @ $%-10s total $%s\n",
				trade.Type, trade.Symbol, trade.Quantity, trade.Price.StringFixed(2), trade.TotalAmount.StringFixed(2))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
