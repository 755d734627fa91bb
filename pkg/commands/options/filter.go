package options

import (
	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/timeutil"
)

// FilterOptions captures common entry selection flags for listing commands.
type FilterOptions struct {
	OnString string
	Term     string
	Since    string
	Table    bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Only entries on a date, example: --on="2026-02-28".`)
	cmd.Flags().StringVarP(&o.Term, "search", "s", "",
		"Only entries whose text, location or tags contain the term.")
	cmd.Flags().StringVar(&o.Since, "since", "",
		Wrap80(`Only entries newer than a window, example: --since=`+
			timeutil.DefaultWindow+` (units: h, d, w, mo, y).`))
}

func AddTableArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVar(&o.Table, "table", false,
		"Render entries as a table instead of cards.")
}
