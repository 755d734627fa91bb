package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/caption"
	captionrunner "github.com/momolog/momo/pkg/runner/caption"
)

func addCaption(topLevel *cobra.Command) {
	var photo string

	cmd := &cobra.Command{
		Use:   "caption",
		Short: "ask the caption service for a suggestion",
		Example: `
momo caption --photo sunset.jpg
momo caption
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := captionrunner.Caption{
				ImagePath: photo,
				Suggester: caption.New(caption.LoadSettings(), logger()),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&photo, "photo", "p", "",
		"Suggest a caption for the photo at the given path.")

	topLevel.AddCommand(cmd)
}
