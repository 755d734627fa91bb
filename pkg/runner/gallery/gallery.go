package gallery

import (
	"context"
	"fmt"

	"github.com/momolog/momo/pkg/app"
	"github.com/momolog/momo/pkg/filter"
	"github.com/momolog/momo/pkg/printers"
)

// Gallery lists photo entries newest-first. No filtering beyond "has a
// photo".
type Gallery struct {
	ShowID bool

	Service *app.Service
}

func (n *Gallery) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}

	shots := filter.WithImage(n.Service.Entries())

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("gallery", len(shots))
	pp.NewLine()
	pp.Entries(shots...)
	return nil
}
