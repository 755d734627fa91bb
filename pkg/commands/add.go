package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/caption"
	"github.com/momolog/momo/pkg/commands/options"
	"github.com/momolog/momo/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "add a journal entry",
		Example: `
momo add spent the morning at the beach --mood happy
momo add --photo sunset.jpg --location "Lisbon" --tag #travel
momo add --photo sunset.jpg --suggest
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Add{
				Text:      strings.Join(args, " "),
				Date:      eo.OnString,
				ImagePath: eo.ImagePath,
				Location:  eo.Location,
				Mood:      eo.Mood,
				Tags:      eo.Tags,
				Suggest:   eo.Suggest,
				Service:   svc,
			}
			if eo.Suggest {
				s.Suggester = caption.New(caption.LoadSettings(), logger())
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddSuggestArg(cmd, eo)

	topLevel.AddCommand(cmd)
}
