package commands

import (
	"campaignfinance/lib/financestore"
	"campaignfinance/lib/timezone"
	"campaignfinance/services/votations"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func registerScrapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "data.json", "The json file to write.")
	cmd.Flags().String("history", "", "A sqlite database to append a financing snapshot to after each run.")
	cmd.Flags().String("base-url", "", "Overrides the base url of the finance register api.")
}

func init() {
	registerScrapeFlags(scrapeCmd)
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--output <path/to/data.json>] [--history <path/to/history.db>]",
	Short: "Fetches the finance register once and writes the output file.",
	RunE:  runScrape,
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	client, err := newEfkClient(cfg)
	if err != nil {
		return err
	}

	service := votations.NewService(client, votations.ServiceOptions{})
	doc, err := scrapeOnce(cmd.Context(), service, cfg)
	if err != nil {
		return err
	}
	votations.WriteSummary(os.Stdout, doc.Votations)
	return nil
}

// runs the pipeline and writes the output, the output file is left
// untouched when the run fails
func scrapeOnce(ctx context.Context, service votations.Service, cfg Config) (votations.Document, error) {
	t1 := time.Now()
	doc, err := service.Run(ctx)
	if err != nil {
		return votations.Document{}, err
	}

	err = votations.WriteDocument(cfg.Output, doc)
	if err != nil {
		return votations.Document{}, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	slog.InfoContext(
		ctx, "wrote output",
		"path", cfg.Output,
		"votations", len(doc.Votations),
		"seconds", time.Since(t1).Seconds(),
	)

	if cfg.History.Enabled() {
		err = pushHistory(ctx, cfg.History, doc)
		if err != nil {
			slog.ErrorContext(ctx, "failed to record financing history", "err", err)
		}
	}
	return doc, nil
}

func pushHistory(ctx context.Context, cfg financestore.Config, doc votations.Document) error {
	database, err := cfg.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	store, err := financestore.NewStore(ctx, database)
	if err != nil {
		return err
	}

	snapshots := make([]financestore.VotationSnapshot, len(doc.Votations))
	for i, v := range doc.Votations {
		snapshots[i] = financestore.VotationSnapshot{
			VotationID:      v.ID.String(),
			VoteDate:        v.Date,
			Title:           v.Title[votations.BaseLanguage],
			SupportersTotal: v.SupportersTotal,
			OpponentsTotal:  v.OpponentsTotal,
			SupportersCount: v.SupportersCount,
			OpponentsCount:  v.OpponentsCount,
		}
	}
	return store.Push(ctx, financestore.PushRequest{
		Time:      timezone.Now(),
		Votations: snapshots,
	})
}
