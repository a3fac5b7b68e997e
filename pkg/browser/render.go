package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/releasedeck/pkg/release"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	styleLabel   = lipgloss.NewStyle().Foreground(ColorGray).Width(18)
	styleLink    = lipgloss.NewStyle().Foreground(ColorBlue).Underline(true)
	styleNotice  = lipgloss.NewStyle().Foreground(ColorGreen)
	styleVersion = lipgloss.NewStyle().Bold(true).Foreground(ColorWhite)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1).
			Width(cardWidth)
	styleCardActive = styleCard.BorderForeground(ColorCyan)

	styleCode = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)
)

const (
	cardWidth    = 22
	cardsPerRow  = 3
	shortSHALen  = 7
	loadingLabel = "Loading releases..."
	emptyLabel   = "no releases"
)

// RenderOptions tunes [Render] for the interactive program.
type RenderOptions struct {
	// Cursor is the 1-based position of the highlighted card on the
	// current page. Zero highlights nothing.
	Cursor int

	// HideQuery omits the query line when the caller draws its own input.
	HideQuery bool
}

// Render draws the screen for s: the loading line, the card grid with its
// page indicator, or the detail view. Fetch errors are never shown.
func Render(s State, p release.Project, opts RenderOptions) string {
	if s.View() == ViewDetail {
		return renderDetail(s, p)
	}
	return renderGrid(s, p, opts)
}

func renderGrid(s State, p release.Project, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(p.ArtifactID + " releases"))
	b.WriteString("\n")
	if s.Query != "" && !opts.HideQuery {
		b.WriteString(styleDim.Render("search: ") + s.Query + "\n")
	}
	b.WriteString("\n")

	if s.Loading && len(s.Releases) == 0 {
		b.WriteString(styleDim.Render(loadingLabel))
		b.WriteString("\n")
		return b.String()
	}

	visible := s.Visible()
	if len(visible) == 0 {
		b.WriteString(styleDim.Render(emptyLabel))
		b.WriteString("\n")
	} else {
		b.WriteString(renderCards(visible, opts.Cursor))
		b.WriteString("\n\n")
	}

	b.WriteString(styleDim.Render(pageIndicator(s)))
	if s.Loading {
		b.WriteString(styleDim.Render("  ·  refreshing"))
	}
	b.WriteString("\n")
	if s.Notice != "" {
		b.WriteString(styleNotice.Render(s.Notice) + "\n")
	}
	return b.String()
}

func renderCards(visible []release.Release, cursor int) string {
	var rows []string
	for start := 0; start < len(visible); start += cardsPerRow {
		end := min(start+cardsPerRow, len(visible))
		cards := make([]string, 0, cardsPerRow)
		for i := start; i < end; i++ {
			style := styleCard
			if i+1 == cursor {
				style = styleCardActive
			}
			cards = append(cards, style.Render(cardBody(i+1, visible[i])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cardBody(pos int, r release.Release) string {
	head := styleDim.Render(fmt.Sprintf("%d ", pos)) + styleVersion.Render(r.Name)
	return head + "\n" + styleDim.Render("commit "+ShortSHA(r.Commit.SHA))
}

func pageIndicator(s State) string {
	n := len(s.Filtered())
	noun := "releases"
	if n == 1 {
		noun = "release"
	}
	return fmt.Sprintf("page %d/%d  ·  %d %s", s.Page, max(s.PageCount(), 1), n, noun)
}

func renderDetail(s State, p release.Project) string {
	r := *s.Selected
	var b strings.Builder

	b.WriteString(styleTitle.Render(p.ArtifactID+" "+r.Name) + styleDim.Render(fmt.Sprintf("  #%d", r.ID)))
	b.WriteString("\n")
	if r.Commit.SHA != "" {
		b.WriteString(styleDim.Render("commit " + ShortSHA(r.Commit.SHA)))
		b.WriteString("\n")
	}

	for _, sn := range p.Snippets(r.Name) {
		b.WriteString("\n")
		b.WriteString(styleVersion.Render(sn.Label))
		b.WriteString("\n")
		b.WriteString(styleCode.Render(sn.Code))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, l := range p.Links(r) {
		b.WriteString(styleLabel.Render(l.Label) + " " + styleLink.Render(l.URL) + "\n")
	}
	if s.Notice != "" {
		b.WriteString("\n" + styleNotice.Render(s.Notice) + "\n")
	}
	return b.String()
}

// ShortSHA abbreviates a commit SHA to seven characters. An empty SHA is
// shown as "unknown".
func ShortSHA(sha string) string {
	if sha == "" {
		return "unknown"
	}
	if len(sha) > shortSHALen {
		return sha[:shortSHALen]
	}
	return sha
}
