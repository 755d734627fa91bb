package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	var input string
	var yes bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "replace the journal with a JSON backup",
		Long: `Replace every entry with the contents of a JSON backup.
The existing journal is wiped first, so the command asks before it
writes unless --yes is passed.`,
		Example: `
momo import --input backup.json
momo export | momo import --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			s := importer.Import{
				Input:   input,
				Yes:     yes,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "",
		`Read from a file, or "-" for stdin.`)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Skip the confirmation prompt.")

	topLevel.AddCommand(cmd)
}
