package edit

import (
	"context"
	"fmt"
	"os"

	"github.com/momolog/momo/pkg/app"
	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/imagex"
	"github.com/momolog/momo/pkg/mood"
	"github.com/momolog/momo/pkg/printers"
)

// Edit overwrites fields of an existing entry in place. Nil pointer fields
// are left as they are; the id never changes.
type Edit struct {
	ID        string
	Text      *string
	Date      *string
	Location  *string
	Mood      *string
	Tags      *[]string
	ImagePath *string

	// DropImage removes the photo, turning the entry into a plain note.
	DropImage bool

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}
	cur, err := n.Service.Entry(n.ID)
	if err != nil {
		return err
	}

	d := entry.Draft{
		ID:       cur.ID,
		Date:     cur.Date,
		Text:     cur.Text,
		Image:    cur.Image,
		Location: cur.Location,
		Mood:     cur.Mood,
		Tags:     cur.Tags,
	}

	if n.Text != nil {
		d.Text = *n.Text
	}
	if n.Date != nil {
		parsed, err := entry.ParseDate(*n.Date)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
		d.Date = parsed
	}
	if n.Location != nil {
		d.Location = *n.Location
	}
	if n.Mood != nil {
		d.Mood = mood.ForKey(*n.Mood)
	}
	if n.Tags != nil {
		d.Tags = *n.Tags
	}
	if n.DropImage {
		d.Image = nil
	}
	if n.ImagePath != nil {
		f, err := os.Open(*n.ImagePath)
		if err != nil {
			return fmt.Errorf("open photo: %w", err)
		}
		img, err := imagex.Downsize(f)
		f.Close()
		if err != nil {
			return err
		}
		d.Image = img
	}

	e, err := n.Service.Save(ctx, d)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(e.Date.String())
	pp.Entries(e)
	return nil
}
