package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperr "github.com/matzehuels/releasedeck/pkg/errors"
)

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", apperr.New(apperr.ErrCodeTagNotFound, "tag %q not found", "v9"), `tag "v9" not found`},
		{"coded with cause", apperr.Wrap(apperr.ErrCodeInvalidConfig, errors.New("bad toml"), "parse config"), "parse config: bad toml"},
		{"wrapped coded", fmt.Errorf("open: %w", apperr.New(apperr.ErrCodeInvalidRepo, "use owner/repo")), "use owner/repo"},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			out := buf.String()
			if !strings.HasSuffix(out, " "+tt.want+"\n") {
				t.Errorf("PrintError() = %q, want message %q", out, tt.want)
			}
			if code := apperr.GetCode(tt.err); code != "" && strings.Contains(out, string(code)) {
				t.Errorf("PrintError() should drop the code prefix: %q", out)
			}
		})
	}
}
