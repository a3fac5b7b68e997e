package browser

import (
	"fmt"

	"github.com/matzehuels/releasedeck/pkg/release"
)

// Reduce returns the state that follows s after a. It never modifies s;
// unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FetchStarted:
		s.Loading = true
		s.RequestID = a.RequestID
		s.Notice = ""

	case FetchSucceeded:
		if !s.pending(a.RequestID) {
			return s
		}
		s.Releases = a.Releases
		if s.Releases == nil {
			s.Releases = []release.Release{}
		}
		s.Loading = false
		s.Err = nil
		s.RequestID = ""
		s.Page = clampPage(s.Page, s.PageCount())
		s.Selected = reselect(s.Selected, s.Releases)

	case FetchFailed:
		if !s.pending(a.RequestID) {
			return s
		}
		s.Releases = []release.Release{}
		s.Loading = false
		s.Err = a.Err
		s.RequestID = ""
		s.Page = 1
		s.Selected = nil

	case QueryChanged:
		if a.Query != s.Query {
			s.Query = a.Query
			s.Page = 1
		}
		s.Notice = ""

	case PageChanged:
		s = s.goTo(a.Page)

	case NextPage:
		s = s.goTo(s.Page + 1)

	case PrevPage:
		s = s.goTo(s.Page - 1)

	case Select:
		r, ok := release.ByID(s.Releases, a.ID)
		if !ok {
			return s
		}
		s.Selected = &r
		s.Notice = ""

	case Back:
		s.Selected = nil
		s.Notice = ""

	case Copied:
		s.Notice = fmt.Sprintf("Copied %s snippet", a.Label)

	case CopyFailed:
		s.Notice = fmt.Sprintf("Copy failed: %v", a.Err)

	case Disposed:
		s.RequestID = ""
		s.Loading = false
	}
	return s
}

// pending reports whether id is the fetch the state is waiting for.
func (s State) pending(id string) bool {
	return s.RequestID != "" && id == s.RequestID
}

func (s State) goTo(page int) State {
	if page < 1 || page > s.PageCount() {
		return s
	}
	s.Page = page
	s.Notice = ""
	return s
}

// reselect rebinds a selection to the matching release in a fresh list,
// or clears it when the tag is gone.
func reselect(sel *release.Release, releases []release.Release) *release.Release {
	if sel == nil {
		return nil
	}
	if r, ok := release.Find(releases, sel.Name); ok {
		return &r
	}
	return nil
}
