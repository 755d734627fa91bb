package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the whole journal as JSON",
		Example: `
momo export
momo export --output backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			s := export.Export{
				Output:  output,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Write to a file instead of stdout.")

	topLevel.AddCommand(cmd)
}
