package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/releasedeck/pkg/release"
)

// latestCommand prints the newest tag, the way the landing page badge does.
func (c *CLI) latestCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "latest [owner/repo]",
		Short: "Print the latest release name",
		Long: `Print the name of the newest tag.

Prints "No tags found" when the repository has no tags and "Error" when
the fetch failed (the cause is logged to stderr).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			d, err := c.openDeck(ctx, args)
			if err != nil {
				return err
			}
			defer d.Close()

			s, err := c.loadState(ctx, d, refresh)
			if ctx.Err() != nil {
				return err
			}
			_, werr := fmt.Fprintln(cmd.OutOrStdout(), release.Latest(s.Releases, err))
			return werr
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}
