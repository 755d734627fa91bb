package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/commands/options"
	"github.com/momolog/momo/pkg/runner/gallery"
)

func addGallery(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "list only the entries with photos",
		Example: `
momo gallery
momo gallery --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			s := gallery.Gallery{
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
