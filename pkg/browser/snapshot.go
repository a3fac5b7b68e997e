package browser

import "github.com/matzehuels/releasedeck/pkg/release"

// ViewSnapshot is the JSON form of a rendered screen.
type ViewSnapshot struct {
	View      View              `json:"view"`
	Loading   bool              `json:"loading"`
	Query     string            `json:"query,omitempty"`
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Total     int               `json:"total"`    // Filtered count
	Releases  []release.Release `json:"releases"` // Current page only
	Detail    *Detail           `json:"detail,omitempty"`
	Notice    string            `json:"notice,omitempty"`
}

// Detail is the content of the detail view for one release.
type Detail struct {
	Release  release.Release   `json:"release"`
	Snippets []release.Snippet `json:"snippets"`
	Links    []release.Link    `json:"links"`
}

// Snapshot captures what [Render] would draw for s.
func Snapshot(s State, p release.Project) ViewSnapshot {
	visible := s.Visible()
	if visible == nil {
		visible = []release.Release{}
	}
	snap := ViewSnapshot{
		View:      s.View(),
		Loading:   s.Loading,
		Query:     s.Query,
		Page:      s.Page,
		PageCount: s.PageCount(),
		Total:     len(s.Filtered()),
		Releases:  visible,
		Notice:    s.Notice,
	}
	if s.Selected != nil {
		d := NewDetail(p, *s.Selected)
		snap.Detail = &d
	}
	return snap
}

// NewDetail assembles the snippets and links for r.
func NewDetail(p release.Project, r release.Release) Detail {
	return Detail{Release: r, Snippets: p.Snippets(r.Name), Links: p.Links(r)}
}
