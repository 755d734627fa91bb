package entry

import (
	"errors"
	"strings"

	"github.com/momolog/momo/pkg/mood"
)

// DefaultLocation is recorded when the author leaves the location blank.
const DefaultLocation = "Unknown"

// DefaultTags tag entries saved without any of their own.
var DefaultTags = []string{"#daily"}

// ErrEmptyEntry rejects a draft with neither text nor an image.
var ErrEmptyEntry = errors.New("entry: needs text or an image")

// Draft holds user input for one entry before it is validated.
type Draft struct {
	ID       string
	Date     Date
	Text     string
	Image    []byte
	Location string
	Mood     mood.Mood
	Tags     []string
}

// Validate enforces the text-or-image rule and fills defaults: today's date,
// the default location, the default mood (zero value), and the default tag
// set. A draft with an ID keeps it; a blank ID gets a fresh one.
func (d Draft) Validate() (*Entry, error) {
	if strings.TrimSpace(d.Text) == "" && len(d.Image) == 0 {
		return nil, ErrEmptyEntry
	}

	e := &Entry{
		ID:       d.ID,
		Date:     d.Date,
		Text:     d.Text,
		Image:    d.Image,
		Location: strings.TrimSpace(d.Location),
		Mood:     d.Mood,
		Tags:     d.Tags,
	}
	if e.ID == "" {
		e.ID = NewID()
	}
	if e.Date.IsZero() {
		e.Date = Today()
	}
	if e.Location == "" {
		e.Location = DefaultLocation
	}
	if len(e.Tags) == 0 {
		e.Tags = append([]string(nil), DefaultTags...)
	}
	return e, nil
}
