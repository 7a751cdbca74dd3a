package commands

import (
	"campaignfinance/lib/chf"
	"campaignfinance/lib/financestore"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	historyCmd.Flags().String("history", "", "The sqlite database written by scrape --history.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [votation_id]",
	Short: "Lists recorded votations, or the financing history of one votation.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !cfg.History.Enabled() {
			return fmt.Errorf("no history database configured, pass --history or set history.file")
		}

		database, err := cfg.History.OpenDB()
		if err != nil {
			return err
		}
		defer database.Close()
		store, err := financestore.NewStore(cmd.Context(), database)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)

		if len(args) == 0 {
			list, err := store.Votations(cmd.Context())
			if err != nil {
				return err
			}
			t.AppendHeader(table.Row{"ID", "Date", "Title"})
			for _, v := range list {
				t.AppendRow(table.Row{v.ID, v.VoteDate, v.Title})
			}
			t.Render()
			return nil
		}

		snapshots, err := store.Pull(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"Time", "Supporters", "Opponents"})
		for _, s := range snapshots {
			t.AppendRow(table.Row{
				s.Time.Format("2006-01-02 15:04"),
				fmt.Sprintf("%s (%d)", chf.FormatAmount(s.SupportersTotal), s.SupportersCount),
				fmt.Sprintf("%s (%d)", chf.FormatAmount(s.OpponentsTotal), s.OpponentsCount),
			})
		}
		t.Render()
		return nil
	},
}
