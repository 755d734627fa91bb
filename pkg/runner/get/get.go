package get

import (
	"context"
	"fmt"
	"time"

	"github.com/momolog/momo/pkg/app"
	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/filter"
	"github.com/momolog/momo/pkg/printers"
	"github.com/momolog/momo/pkg/timeutil"
)

type Get struct {
	ShowID bool
	Term   string
	Date   string
	Since  string
	Table  bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}

	f := filter.Filter{Term: n.Term}
	title := "memories"
	if n.Date != "" {
		d, err := entry.ParseDate(n.Date)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		f.Date = &d
		title = d.String()
	}

	all := f.Apply(n.Service.Entries())

	if n.Since != "" {
		cutoff, label, err := timeutil.Cutoff(time.Now(), n.Since)
		if err != nil {
			return err
		}
		recent := make([]*entry.Entry, 0, len(all))
		for _, e := range all {
			if !e.Date.Before(cutoff) {
				recent = append(recent, e)
			}
		}
		all = recent
		title = fmt.Sprintf("%s, last %s", title, label)
	}
	if n.Term != "" {
		title = fmt.Sprintf("%s matching %q", title, n.Term)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount(title, len(all))
	pp.NewLine()
	if n.Table {
		pp.Table(all...)
		return nil
	}
	pp.Entries(all...)
	return nil
}
