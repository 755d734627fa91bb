package remove

import (
	"context"
	"fmt"

	"github.com/momolog/momo/pkg/app"
)

type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoPersistence
	}
	// Store deletes are no-ops for unknown ids; the CLI still tells the
	// user when they typo one.
	if _, err := n.Service.Entry(n.ID); err != nil {
		return err
	}
	if err := n.Service.Remove(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
