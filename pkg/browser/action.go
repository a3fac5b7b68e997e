package browser

import "github.com/matzehuels/releasedeck/pkg/release"

// Action is an input to [Reduce].
type Action interface {
	action()
}

// FetchStarted marks a fetch as pending under RequestID.
type FetchStarted struct{ RequestID string }

// FetchSucceeded delivers the releases of the fetch identified by RequestID.
type FetchSucceeded struct {
	RequestID string
	Releases  []release.Release
}

// FetchFailed reports that the fetch identified by RequestID failed.
type FetchFailed struct {
	RequestID string
	Err       error
}

// QueryChanged replaces the search query.
type QueryChanged struct{ Query string }

// PageChanged moves to Page if it is within range.
type PageChanged struct{ Page int }

// NextPage and PrevPage step one page forward or back.
type (
	NextPage struct{}
	PrevPage struct{}
)

// Select opens the detail view for the release with ID.
type Select struct{ ID int }

// Back returns to the grid.
type Back struct{}

// Copied records that a snippet was placed on the clipboard.
type Copied struct{ Label string }

// CopyFailed records a clipboard failure.
type CopyFailed struct{ Err error }

// Disposed detaches the browser from any pending fetch.
type Disposed struct{}

func (FetchStarted) action()   {}
func (FetchSucceeded) action() {}
func (FetchFailed) action()    {}
func (QueryChanged) action()   {}
func (PageChanged) action()    {}
func (NextPage) action()       {}
func (PrevPage) action()       {}
func (Select) action()         {}
func (Back) action()           {}
func (Copied) action()         {}
func (CopyFailed) action()     {}
func (Disposed) action()       {}
