package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/momolog/momo/pkg/app"
	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/printers"
)

const layoutMonth = "2006-01"

type Calendar struct {
	// Month selects which month to draw, "YYYY-MM". Empty means the
	// current month.
	Month string
	// Date is the selected day, "YYYY-MM-DD". When set, that day's entries
	// print below the grid.
	Date string

	Service *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}

	on := time.Now()
	if n.Month != "" {
		parsed, err := time.ParseInLocation(layoutMonth, n.Month, time.Local)
		if err != nil {
			return fmt.Errorf("month must be YYYY-MM: %w", err)
		}
		on = parsed
	}

	var selected *entry.Date
	if n.Date != "" {
		d, err := entry.ParseDate(n.Date)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		selected = &d
		on = d.Time
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(on, selected, n.Service.Entries()...)
	return nil
}
