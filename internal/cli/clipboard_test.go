package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestCopyOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	if err := copyOSC52(&buf, "hello"); err != nil {
		t.Fatalf("copyOSC52() error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Errorf("missing OSC 52 introducer: %q", out)
	}
	if !strings.Contains(out, "aGVsbG8=") {
		t.Errorf("payload should be base64 of the text: %q", out)
	}
}

func TestCopyOSC52Tmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")

	var buf bytes.Buffer
	if err := copyOSC52(&buf, "hello"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Errorf("tmux passthrough expected: %q", buf.String())
	}
}
