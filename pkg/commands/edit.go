package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/commands/options"
	"github.com/momolog/momo/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	var dropImage bool

	cmd := &cobra.Command{
		Use:   "edit <id> [text]",
		Short: "change fields of an existing entry",
		Long: options.Wrap80("Change fields of an existing entry. " +
			"Only the flags you pass are changed; everything else stays."),
		Example: `
momo edit 1756600000000 a better caption
momo edit 1756600000000 --mood calm --location "Porto"
momo edit 1756600000000 --drop-photo
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Edit{
				ID:        args[0],
				DropImage: dropImage,
				Service:   svc,
			}
			if len(args) > 1 {
				text := strings.Join(args[1:], " ")
				s.Text = &text
			}
			if cmd.Flags().Changed("on") {
				s.Date = &eo.OnString
			}
			if cmd.Flags().Changed("location") {
				s.Location = &eo.Location
			}
			if cmd.Flags().Changed("mood") {
				s.Mood = &eo.Mood
			}
			if cmd.Flags().Changed("tag") {
				s.Tags = &eo.Tags
			}
			if cmd.Flags().Changed("photo") {
				s.ImagePath = &eo.ImagePath
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	cmd.Flags().BoolVar(&dropImage, "drop-photo", false,
		"Remove the photo from the entry.")

	topLevel.AddCommand(cmd)
}
