package importer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/momolog/momo/pkg/app"
)

// Import replaces the whole journal with the contents of a JSON backup.
// Unless Yes is set it asks for confirmation first, since existing entries
// are wiped before the backup is written.
type Import struct {
	Input string
	Yes   bool

	In  io.Reader
	Out io.Writer

	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}

	var data []byte
	var err error
	if n.Input == "" || n.Input == "-" {
		data, err = io.ReadAll(n.in())
	} else {
		data, err = os.ReadFile(n.Input)
	}
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	if !n.Yes {
		ok, err := n.confirm()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(n.out(), "import cancelled")
			return nil
		}
	}

	count, err := n.Service.ImportReplace(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(n.out(), "imported %d entries\n", count)
	return nil
}

func (n *Import) confirm() (bool, error) {
	fmt.Fprint(n.out(), "this replaces every existing entry, continue? [y/N] ")
	r := bufio.NewReader(n.in())
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

func (n *Import) in() io.Reader {
	if n.In != nil {
		return n.In
	}
	return os.Stdin
}

func (n *Import) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}
