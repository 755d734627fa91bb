package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/momolog/momo/pkg/app"
)

// Export writes every entry as a JSON array, either to a file or to Out.
type Export struct {
	Output string
	Out    io.Writer

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}
	data, err := n.Service.ExportAll(ctx)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if n.Output != "" {
		if err := os.WriteFile(n.Output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", n.Output, err)
		}
		fmt.Fprintf(n.out(), "exported to %s\n", n.Output)
		return nil
	}
	_, err = n.out().Write(data)
	return err
}

func (n *Export) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}
