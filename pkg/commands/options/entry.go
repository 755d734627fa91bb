// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/mood"
)

// EntryOptions captures the attributes of a journal entry shared by the
// add and edit commands.
type EntryOptions struct {
	OnString  string
	Location  string
	Mood      string
	Tags      []string
	ImagePath string
	Suggest   bool
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date for the entry, example: --on="2026-02-28".`)
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Specify where the entry happened.")
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		Wrap80("Specify a mood, one of: "+strings.Join(mood.Keys(), ", ")+"."))
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the entry, repeatable.")
	cmd.Flags().StringVarP(&o.ImagePath, "photo", "p", "",
		"Attach a photo from the given path.")
}

func AddSuggestArg(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().BoolVar(&o.Suggest, "suggest", false,
		"Ask the caption service for text when none is given.")
}
