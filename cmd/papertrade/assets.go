package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vignesh-goutham/papertrade/pkg/config"
	"github.com/vignesh-goutham/papertrade/pkg/pricefeed"
)

var assetsPricesFile string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List tradable symbols and their prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		prices := pricefeed.DefaultPrices()
		if assetsPricesFile != "" {
			loaded, err := config.LoadPrices(assetsPricesFile)
			if err != nil {
				return err
			}
			prices = loaded
		}

		feed, err := pricefeed.NewStaticFeed(prices)
		if err != nil {
			return err
		}

		for _, symbol := range feed.ListAssets() {
			price, err := feed.GetPrice(symbol)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %12s\n", symbol, price.StringFixed(2))
		}

		return nil
	},
}

func init() {
	assetsCmd.Flags().StringVar(&assetsPricesFile, "prices", "", "YAML price table to use instead of the built-in one")
	rootCmd.AddCommand(assetsCmd)
}
