package cli

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// writeClipboard is swapped out in tests.
var writeClipboard = copyToClipboard

// copyToClipboard places text on the system clipboard. Without a clipboard
// utility (headless or SSH sessions) it emits an OSC 52 sequence so the
// terminal can take the text instead.
func copyToClipboard(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	return copyOSC52(os.Stderr, text)
}

func copyOSC52(w io.Writer, text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(w)
	return err
}
