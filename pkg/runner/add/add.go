package add

import (
	"context"
	"fmt"
	"os"

	"github.com/momolog/momo/pkg/app"
	"github.com/momolog/momo/pkg/caption"
	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/imagex"
	"github.com/momolog/momo/pkg/mood"
	"github.com/momolog/momo/pkg/printers"
)

type Add struct {
	Text      string
	Date      string
	ImagePath string
	Location  string
	Mood      string
	Tags      []string
	Suggest   bool

	Service   *app.Service
	Suggester *caption.Suggester
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}

	var img []byte
	if n.ImagePath != "" {
		f, err := os.Open(n.ImagePath)
		if err != nil {
			return fmt.Errorf("open photo: %w", err)
		}
		img, err = imagex.Downsize(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	var d entry.Date
	if n.Date != "" {
		var err error
		if d, err = entry.ParseDate(n.Date); err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
	}

	text := n.Text
	if text == "" && n.Suggest && n.Suggester != nil {
		// Degrades to a fixed line on failure; never blocks the save.
		text = n.Suggester.Suggest(ctx, img)
	}

	e, err := n.Service.Save(ctx, entry.Draft{
		Date:     d,
		Text:     text,
		Image:    img,
		Location: n.Location,
		Mood:     mood.ForKey(n.Mood),
		Tags:     n.Tags,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(e.Date.String())
	pp.Entries(e)
	return nil
}
