package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/releasedeck/pkg/browser"
	"github.com/matzehuels/releasedeck/pkg/release"
)

// listCommand creates the non-interactive grid command.
func (c *CLI) listCommand() *cobra.Command {
	var (
		query   string
		page    int
		asJSON  bool
		cards   bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "list [owner/repo]",
		Short: "Print one page of releases",
		Long: `Print one page of the release grid.

A failed fetch prints an empty page; the cause is logged to stderr.
Pages outside the available range are ignored and page 1 is shown.`,
		Example: `  releasedeck list
  releasedeck list --query 1. --page 2
  releasedeck list Sandro642/ConnectLib --json`,
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

			s = browser.Reduce(s, browser.QueryChanged{Query: query})
			s = browser.Reduce(s, browser.PageChanged{Page: page})
			if s.Page != page {
				c.Logger.Debug("page out of range", "page", page, "pages", s.PageCount())
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, browser.Snapshot(s, d.project))
			case cards:
				_, err := fmt.Fprint(out, browser.Render(s, d.project, browser.RenderOptions{}))
				return err
			default:
				return writeReleaseTable(out, s, d.project)
			}
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive filter on the version name")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show (6 releases per page)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")
	cmd.Flags().BoolVar(&cards, "cards", false, "print the card grid instead of a table")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")

	return cmd
}

// writeReleaseTable prints the visible page as a table with the page
// indicator below it.
func writeReleaseTable(w io.Writer, s browser.State, p release.Project) error {
	visible := s.Visible()
	if len(visible) == 0 {
		_, err := fmt.Fprintln(w, StyleDim.Render("no releases"))
		return err
	}

	rows := make([][]string, 0, len(visible))
	for i, r := range visible {
		rows = append(rows, []string{strconv.Itoa(i + 1), r.Name, browser.ShortSHA(r.Commit.SHA), r.ArtifactURL})
	}

	headerStyle := lipgloss.NewStyle().Foreground(browser.ColorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(browser.ColorDim)).
		Headers("#", "Version", "Commit", "JAR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 1:
				return base.Foreground(browser.ColorCyan).Bold(true)
			case col == 3:
				return base.Foreground(browser.ColorBlue)
			default:
				return base.Foreground(browser.ColorDim)
			}
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n",
		t.Render(),
		StyleDim.Render(fmt.Sprintf("  page %d/%d · %d of %d releases", s.Page, max(s.PageCount(), 1), len(visible), len(s.Filtered()))))
	return err
}
