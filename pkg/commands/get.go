package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/commands/options"
	"github.com/momolog/momo/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "list journal entries, newest first",
		Example: `
momo get
momo get --on 2026-02-28
momo get --search beach --since 1mo
momo get --table --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Term:    fo.Term,
				Date:    fo.OnString,
				Since:   fo.Since,
				Table:   fo.Table,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddTableArg(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
