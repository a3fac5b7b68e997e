package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/releasedeck/pkg/browser"
	apperr "github.com/matzehuels/releasedeck/pkg/errors"
	"github.com/matzehuels/releasedeck/pkg/release"
)

// showCommand creates the detail view command for a single tag.
func (c *CLI) showCommand() *cobra.Command {
	var (
		copyKind string
		asJSON   bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "show <tag>",
		Short: "Show snippets and download links for one release",
		Example: `  releasedeck show v1.2
  releasedeck show v1.2 --copy gradle
  releasedeck --repo acme/widgets show 2.0.0 --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTags,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tag := args[0]
			if err := apperr.ValidateTagName(tag); err != nil {
				return err
			}
			if copyKind != "" && copyKind != release.Gradle && copyKind != release.Maven {
				return apperr.New(apperr.ErrCodeInvalidInput, "--copy must be %q or %q", release.Gradle, release.Maven)
			}

			d, err := c.openDeck(ctx, nil)
			if err != nil {
				return err
			}
			defer d.Close()

			s, err := c.loadState(ctx, d, refresh)
			if ctx.Err() != nil {
				return err
			}

			r, ok := release.Find(s.Releases, tag)
			if !ok {
				return apperr.New(apperr.ErrCodeTagNotFound, "tag %q not found in %s", tag, d.project.Slug())
			}
			s = browser.Reduce(s, browser.Select{ID: r.ID})

			if copyKind != "" {
				sn, _ := d.project.Snippet(r.Name, copyKind)
				if err := writeClipboard(sn.Code); err != nil {
					s = browser.Reduce(s, browser.CopyFailed{Err: err})
				} else {
					s = browser.Reduce(s, browser.Copied{Label: sn.Label})
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, browser.Snapshot(s, d.project))
			}
			_, err = fmt.Fprint(out, browser.Render(s, d.project, browser.RenderOptions{}))
			return err
		},
	}

	cmd.Flags().StringVar(&copyKind, "copy", "", "copy a snippet to the clipboard (gradle|maven)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	_ = cmd.RegisterFlagCompletionFunc("copy", cobra.FixedCompletions(
		[]string{release.Gradle, release.Maven}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
