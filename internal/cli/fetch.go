package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/releasedeck/pkg/browser"
)

// loadState runs one fetch through the browser reducer behind a spinner.
// A failed fetch yields the empty-list state together with the error;
// only cancellation is fatal.
func (c *CLI) loadState(ctx context.Context, d *deck, refresh bool) (browser.State, error) {
	id := uuid.NewString()
	s := browser.Reduce(browser.New(), browser.FetchStarted{RequestID: id})

	spinner := newSpinnerWithContext(ctx, "Fetching releases of "+d.project.Slug()+"...")
	spinner.Start()
	prog := newProgress(c.Logger)
	releases, err := d.fetchOrEmpty(ctx, refresh)
	spinner.Stop()

	if ctx.Err() != nil {
		return s, ctx.Err()
	}
	if err != nil {
		return browser.Reduce(s, browser.FetchFailed{RequestID: id, Err: err}), err
	}
	prog.done(fmt.Sprintf("Fetched %d releases", len(releases)))
	return browser.Reduce(s, browser.FetchSucceeded{RequestID: id, Releases: releases}), nil
}
