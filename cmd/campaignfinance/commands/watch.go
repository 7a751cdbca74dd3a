package commands

import (
	"campaignfinance/lib/serviceutil"
	"campaignfinance/lib/telemetry"
	"campaignfinance/services/votations"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

var watchInterval *time.Duration

func init() {
	registerScrapeFlags(watchCmd)
	watchInterval = watchCmd.Flags().Duration("interval", time.Hour, "How long to wait between two runs.")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [--interval <duration>]",
	Short: "Scrapes repeatedly, rewriting the output file after every run until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if *watchInterval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", *watchInterval)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newEfkClient(cfg)
		if err != nil {
			return err
		}
		service := votations.NewService(client, votations.ServiceOptions{})

		ctx, cancel := serviceutil.SignalContext(cmd.Context())
		defer cancel()
		telemetry.InstrumentPerfStats(ctx, time.Second*30)

		ticker := time.NewTicker(*watchInterval)
		defer ticker.Stop()

		for {
			// a failed run keeps the previous output file, the next
			// tick simply tries again
			_, err := scrapeOnce(ctx, service, cfg)
			if err != nil {
				slog.ErrorContext(ctx, "scrape failed", "err", err)
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				slog.Info("stopping watch")
				return nil
			}
		}
	},
}
