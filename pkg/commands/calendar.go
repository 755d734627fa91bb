package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	var month string
	var date string

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "show a month grid of entries",
		Example: `
momo calendar
momo calendar --month 2026-02
momo calendar --date 2026-02-28
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			s := calendar.Calendar{
				Month:   month,
				Date:    date,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&month, "month", "",
		`Month to draw, example: --month="2026-02".`)
	cmd.Flags().StringVar(&date, "date", "",
		`Select a day and print its entries, example: --date="2026-02-28".`)

	topLevel.AddCommand(cmd)
}
