// Package browser holds the release browser's view state and the single
// transition function that drives it.
//
// # State and Actions
//
// [State] is a plain value. Every change goes through [Reduce], which takes
// the current state and an [Action] and returns the next state without
// touching its input:
//
//	s := browser.New()
//	s = browser.Reduce(s, browser.FetchStarted{RequestID: id})
//	s = browser.Reduce(s, browser.FetchSucceeded{RequestID: id, Releases: rs})
//	s = browser.Reduce(s, browser.QueryChanged{Query: "1."})
//
// Nothing here depends on a UI runtime. The interactive program in
// internal/cli feeds key presses and fetch results through [Reduce] and
// calls [Render] after each transition; scripting commands use [Snapshot].
//
// # Views
//
// There are two views, [ViewGrid] and [ViewDetail]. [Select] moves to the
// detail view and [Back] returns to the grid with query and page intact.
//
// # Fetch Identity
//
// Each fetch carries a request ID. Results whose ID does not match the
// pending one are dropped, which covers both a refresh that superseded an
// older fetch and a browser that was [Disposed] while a fetch was in flight.
package browser
