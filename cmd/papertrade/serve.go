package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vignesh-goutham/papertrade/pkg/account"
	"github.com/vignesh-goutham/papertrade/pkg/config"
	"github.com/vignesh-goutham/papertrade/pkg/logger"
	"github.com/vignesh-goutham/papertrade/pkg/pricefeed"
	"github.com/vignesh-goutham/papertrade/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the trading account over HTTP",
	Long: `Start the JSON API for a fresh trading account. Configuration comes
from the environment (PORT, INITIAL_CASH, LOG_LEVEL, PRICES_FILE); a
.env file in the working directory is honored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		log := logger.New(logger.Config{
			Level:  cfg.LogLevel,
			Pretty: cfg.Pretty,
		})

		prices, err := cfg.Prices()
		if err != nil {
			return err
		}

		feed, err := pricefeed.NewStaticFeed(prices)
		if err != nil {
			return fmt.Errorf("building price feed: %w", err)
		}

		acct, err := account.New(cfg.InitialCash, feed)
		if err != nil {
			return fmt.Errorf("creating account: %w", err)
		}

		srv := server.New(server.Config{
			Port:    cfg.Port,
			Log:     log,
			Account: acct,
			Feed:    feed,
		})

		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}()

		log.Info().
			Int("port", cfg.Port).
			Str("initial_cash", cfg.InitialCash.String()).
			Int("assets", len(prices)).
			Msg("Account ready")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
