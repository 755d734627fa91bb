package caption

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/momolog/momo/pkg/caption"
	"github.com/momolog/momo/pkg/imagex"
)

// Caption asks the suggester for a caption, with or without a photo.
type Caption struct {
	ImagePath string

	Out       io.Writer
	Suggester *caption.Suggester
}

func (n *Caption) Do(ctx context.Context) error {
	if n.Suggester == nil {
		return fmt.Errorf("no suggester configured")
	}

	var img []byte
	if n.ImagePath != "" {
		f, err := os.Open(n.ImagePath)
		if err != nil {
			return fmt.Errorf("open photo: %w", err)
		}
		img, err = imagex.Downsize(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	text := n.Suggester.Suggest(ctx, img)
	fmt.Fprintln(n.out(), text)
	return nil
}

func (n *Caption) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}
