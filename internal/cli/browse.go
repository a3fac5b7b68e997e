package cli

import (
	"bytes"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the interactive browser command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [owner/repo]",
		Short: "Browse releases interactively",
		Long: `Browse the repository's releases in a full-screen view.

Keys:
  /          search (esc or enter leaves the search box)
  ←/→ h/l    previous / next page
  1-6        open the card with that number
  ↑/↓ ⏎      move between cards and open one
  g / m      copy the Gradle / Maven snippet (detail view)
  b / esc    back to the grid
  r          refresh (bypasses the cache)
  q          quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			d, err := c.openDeck(ctx, args)
			if err != nil {
				return err
			}
			defer d.Close()

			// Log lines would tear the alternate screen; hold them until the
			// program has exited.
			var held bytes.Buffer
			c.Logger.SetOutput(&held)
			defer func() {
				c.Logger.SetOutput(c.logOut)
				_, _ = c.logOut.Write(held.Bytes())
			}()

			m := NewBrowseModel(ctx, d.project, d.fetch, c.Logger)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
			return nil
		},
	}
}
