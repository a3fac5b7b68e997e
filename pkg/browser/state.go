package browser

import (
	"slices"
	"strings"

	"github.com/matzehuels/releasedeck/pkg/release"
)

// PageSize is the number of release cards per page.
const PageSize = 6

// View is the screen the browser is showing.
type View string

const (
	ViewGrid   View = "grid"
	ViewDetail View = "detail"
)

// State is the complete view state of the release browser.
type State struct {
	Releases  []release.Release // Full fetch result, replaced wholesale
	Loading   bool
	Err       error // Last fetch error; diagnostic only, never rendered
	Query     string
	Page      int              // 1-based
	Selected  *release.Release // Nil in the grid view
	RequestID string           // Pending fetch; empty when none is accepted
	Notice    string           // Transient status line
}

// New returns the initial state: empty list, grid view, page 1.
func New() State {
	return State{Releases: []release.Release{}, Page: 1}
}

// View reports which screen is active.
func (s State) View() View {
	if s.Selected != nil {
		return ViewDetail
	}
	return ViewGrid
}

// Filtered returns the releases whose name contains the query,
// ignoring case. An empty query matches everything.
func (s State) Filtered() []release.Release {
	if s.Query == "" {
		return slices.Clip(s.Releases)
	}
	q := strings.ToLower(s.Query)
	out := make([]release.Release, 0, len(s.Releases))
	for _, r := range s.Releases {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// PageCount is ceil(len(Filtered()) / PageSize). It is zero for an empty
// result.
func (s State) PageCount() int {
	return pageCount(len(s.Filtered()))
}

// Visible returns the slice of Filtered shown on the current page.
func (s State) Visible() []release.Release {
	filtered := s.Filtered()
	start := (s.Page - 1) * PageSize
	if start < 0 || start >= len(filtered) {
		return nil
	}
	end := min(start+PageSize, len(filtered))
	return filtered[start:end:end]
}

func pageCount(n int) int {
	return (n + PageSize - 1) / PageSize
}

// clampPage keeps page within [1, pageCount], treating an empty result as
// a single page.
func clampPage(page, count int) int {
	return max(1, min(page, count))
}
