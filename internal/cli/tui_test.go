package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/releasedeck/pkg/browser"
	"github.com/matzehuels/releasedeck/pkg/integrations/github"
	"github.com/matzehuels/releasedeck/pkg/release"
)

func testReleases(n int) []release.Release {
	tags := make([]github.Tag, n)
	for i := range tags {
		tags[i] = github.Tag{Name: fmt.Sprintf("v%d.0", n-i)}
	}
	return release.FromTags(release.DefaultProject(), tags)
}

func staticFetch(rels []release.Release, err error) fetchFunc {
	return func(context.Context, bool) ([]release.Release, error) { return rels, err }
}

func newTestModel(fetch fetchFunc, logs *bytes.Buffer) BrowseModel {
	return NewBrowseModel(context.Background(), release.DefaultProject(), fetch, newLogger(logs, log.InfoLevel))
}

func update(t *testing.T, m BrowseModel, msg tea.Msg) (BrowseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(BrowseModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedModel returns a model that has completed one fetch of n releases.
func loadedModel(t *testing.T, n int) BrowseModel {
	t.Helper()
	m := newTestModel(staticFetch(testReleases(n), nil), &bytes.Buffer{})
	m, cmd := m.startFetch(false)
	m, _ = update(t, m, cmd())
	if m.State.Loading || len(m.State.Releases) != n {
		t.Fatalf("fetch did not complete: %+v", m.State)
	}
	return m
}

func TestBrowseModelInit(t *testing.T) {
	m := newTestModel(staticFetch(nil, nil), &bytes.Buffer{})

	msg := m.Init()()
	if _, ok := msg.(fetchStartMsg); !ok {
		t.Fatalf("Init should request a fetch, got %T", msg)
	}

	m, cmd := update(t, m, msg)
	if !m.State.Loading || m.State.RequestID == "" {
		t.Errorf("fetch should be pending: %+v", m.State)
	}
	if cmd == nil {
		t.Error("expected fetch command")
	}
	if !strings.Contains(m.View(), "Loading releases...") {
		t.Errorf("view should show loading line:\n%s", m.View())
	}
}

func TestBrowseModelFetchFailure(t *testing.T) {
	var logs bytes.Buffer
	m := newTestModel(staticFetch(nil, errors.New("boom")), &logs)

	m, cmd := m.startFetch(false)
	m, _ = update(t, m, cmd())

	if m.State.Loading || len(m.State.Releases) != 0 {
		t.Errorf("failure should leave an empty, settled list: %+v", m.State)
	}
	if !strings.Contains(logs.String(), "fetch releases failed") {
		t.Errorf("expected warning, got %q", logs.String())
	}
	if strings.Contains(m.View(), "boom") {
		t.Error("error text should not appear in the view")
	}
}

func TestBrowseModelRefreshSupersedes(t *testing.T) {
	var ctxs []context.Context
	calls := 0
	fetch := func(ctx context.Context, refresh bool) ([]release.Release, error) {
		ctxs = append(ctxs, ctx)
		calls++
		return testReleases(calls), nil
	}
	m := newTestModel(fetch, &bytes.Buffer{})

	m, first := m.startFetch(false)
	m, second := m.startFetch(true)

	firstMsg := first()
	if ctxs[0].Err() == nil {
		t.Error("superseded fetch should be cancelled")
	}
	m, _ = update(t, m, firstMsg)
	if !m.State.Loading || len(m.State.Releases) != 0 {
		t.Errorf("stale result should be ignored: %+v", m.State)
	}

	m, _ = update(t, m, second())
	if m.State.Loading || len(m.State.Releases) != 2 {
		t.Errorf("current result should apply: %+v", m.State)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	var fetchCtx context.Context
	fetch := func(ctx context.Context, refresh bool) ([]release.Release, error) {
		fetchCtx = ctx
		return testReleases(3), nil
	}
	m := newTestModel(fetch, &bytes.Buffer{})
	m, pending := m.startFetch(false)

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.State.RequestID != "" || m.State.Loading {
		t.Errorf("quit should dispose the pending fetch: %+v", m.State)
	}

	m, _ = update(t, m, pending())
	if fetchCtx.Err() == nil {
		t.Error("pending fetch should be cancelled on quit")
	}
	if len(m.State.Releases) != 0 {
		t.Error("result after quit should be discarded")
	}
}

func TestBrowseModelPaging(t *testing.T) {
	m := loadedModel(t, 13)

	steps := []struct {
		msg  tea.Msg
		page int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 2},
		{runes("l"), 3},
		{tea.KeyMsg{Type: tea.KeyRight}, 3},
		{tea.KeyMsg{Type: tea.KeyLeft}, 2},
		{runes("h"), 1},
		{runes("h"), 1},
	}
	for i, step := range steps {
		m, _ = update(t, m, step.msg)
		if m.State.Page != step.page {
			t.Fatalf("step %d: page = %d, want %d", i, m.State.Page, step.page)
		}
	}
}

func TestBrowseModelSearch(t *testing.T) {
	m := loadedModel(t, 13)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, _ = update(t, m, runes("/"))
	if !m.searching {
		t.Fatal("/ should focus search")
	}
	m, _ = update(t, m, runes("1"))
	if m.State.Query != "1" || m.State.Page != 1 {
		t.Errorf("query = %q page = %d", m.State.Query, m.State.Page)
	}
	// q is text while searching
	m, _ = update(t, m, runes("q"))
	if m.State.Query != "1q" {
		t.Errorf("query = %q, want 1q", m.State.Query)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Error("esc should leave search")
	}
	if m.State.Query != "1q" {
		t.Error("leaving search keeps the query")
	}
	if !strings.Contains(m.View(), "no releases") {
		t.Errorf("view:\n%s", m.View())
	}
}

func TestBrowseModelSelectAndCopy(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })

	m := loadedModel(t, 8)
	m, _ = update(t, m, runes("2"))
	if m.State.View() != browser.ViewDetail || m.State.Selected.Name != "v7.0" {
		t.Fatalf("2 should open the second card: %+v", m.State.Selected)
	}

	m, _ = update(t, m, runes("g"))
	if !strings.Contains(copied, "implementation 'fr.sandro642.github:ConnectLib:v7.0'") {
		t.Errorf("clipboard = %q", copied)
	}
	if m.State.Notice != "Copied Gradle snippet" {
		t.Errorf("notice = %q", m.State.Notice)
	}
	if !strings.Contains(m.View(), "Copied Gradle snippet") {
		t.Error("view should show the notice")
	}

	stubClipboard(t, func(string) error { return errors.New("no display") })
	m, _ = update(t, m, runes("m"))
	if !strings.HasPrefix(m.State.Notice, "Copy failed") {
		t.Errorf("notice = %q", m.State.Notice)
	}

	m, _ = update(t, m, runes("b"))
	if m.State.View() != browser.ViewGrid {
		t.Error("b should return to the grid")
	}
}

func TestBrowseModelCursor(t *testing.T) {
	m := loadedModel(t, 8)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State.View() != browser.ViewGrid {
		t.Fatal("enter without a cursor should do nothing")
	}

	for range 3 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State.Selected == nil || m.State.Selected.ID != 2 {
		t.Errorf("selected = %+v, want ID 2", m.State.Selected)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State.View() != browser.ViewGrid || m.cursor != 2 {
		t.Errorf("esc should go back keeping the cursor, cursor = %d", m.cursor)
	}

	m, _ = update(t, m, runes("9"))
	if m.State.View() != browser.ViewGrid {
		t.Error("9 is not a card key")
	}
}

func TestBrowseModelRefreshKeepsDetail(t *testing.T) {
	m := loadedModel(t, 4)
	m, _ = update(t, m, runes("3"))
	name := m.State.Selected.Name

	m, cmd := update(t, m, runes("r"))
	if !m.State.Loading || cmd == nil {
		t.Fatal("r should start a refresh")
	}
	if m.State.Selected == nil || m.State.Selected.Name != name {
		t.Error("refresh should keep the detail view")
	}
}
