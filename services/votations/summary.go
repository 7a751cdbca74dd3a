package votations

import (
	"campaignfinance/lib/chf"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteSummary renders the totals of every votation as a table.
func WriteSummary(w io.Writer, votations []Votation) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Date", "Title", "Supporters", "Opponents", "Unknown"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 60},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	for _, v := range votations {
		unknown := len(v.Actors) - v.SupportersCount - v.OpponentsCount
		t.AppendRow(table.Row{
			v.Date,
			v.Title[BaseLanguage],
			fmt.Sprintf("%s (%d)", chf.FormatAmount(v.SupportersTotal), v.SupportersCount),
			fmt.Sprintf("%s (%d)", chf.FormatAmount(v.OpponentsTotal), v.OpponentsCount),
			unknown,
		})
	}
	if len(votations) == 0 {
		t.AppendRow(table.Row{"", "no upcoming votations", "", "", ""})
	}

	t.Render()
}
