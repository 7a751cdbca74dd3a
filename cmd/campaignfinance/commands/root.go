package commands

import (
	"campaignfinance/lib/serviceutil"
	"campaignfinance/lib/telemetry"
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var configPath *string
var verbose *bool

var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:   "campaignfinance",
	Short: "campaignfinance collects the declared campaign budgets of upcoming swiss votations.",
	Long: `campaignfinance reads the political finance register of the swiss federal
audit office and writes the declared budgets of the supporters and opponents of
every upcoming votation into a single json file.

Running it without a subcommand is the same as running "scrape".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "campaignfinance")
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no telemetry.json5 found, telemetry disabled")
		} else if err != nil {
			slog.Warn("failed to setup telemetry", "err", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shutdownTelemetry()
	},
	RunE: runScrape,
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The json5 config file to read, a missing file means defaults.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	registerScrapeFlags(rootCmd)
}

func shutdownTelemetry() {
	err := tel.Shutdown(context.Background())
	if err != nil {
		slog.Warn("failed to shutdown telemetry", "err", err)
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		shutdownTelemetry()
		serviceutil.Fatal("campaignfinance failed", err)
	}
}
