package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/momolog/momo/pkg/app"
	"github.com/momolog/momo/pkg/commands/options"
	"github.com/momolog/momo/pkg/logging"
	"github.com/momolog/momo/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "momo",
		Short: options.Wrap80("A daily photo and mood journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addCalendar(topLevel)
	addGallery(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addCaption(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

func logger() logging.Logger {
	if oo.Verbose {
		return logging.NewTextLogger(os.Stderr, slog.LevelDebug)
	}
	return logging.Discard()
}

// loadService opens the store and loads the journal, running the legacy
// migration if a flat journal file is still present.
func loadService(ctx context.Context) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logger()
	p, err := store.Load(cfg, log)
	if err != nil {
		return nil, err
	}
	svc := app.New(p, log)
	svc.LegacyDir = cfg.BasePath()
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
