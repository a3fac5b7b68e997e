package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/releasedeck/pkg/browser"
	"github.com/matzehuels/releasedeck/pkg/release"
)

// =============================================================================
// Key Maps
// =============================================================================

type gridKeyMap struct {
	Search  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Pick    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k gridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Prev, k.Next, k.Pick, k.Refresh, k.Quit}
}

func (k gridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Prev, k.Next},
		{k.Up, k.Down, k.Open, k.Pick},
		{k.Refresh, k.Quit},
	}
}

type detailKeyMap struct {
	Gradle  key.Binding
	Maven   key.Binding
	Back    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Gradle, k.Maven, k.Back, k.Refresh, k.Quit}
}

func (k detailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var gridKeys = gridKeyMap{
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "open")),
	Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "open card")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var detailKeys = detailKeyMap{
	Gradle:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "copy gradle")),
	Maven:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "copy maven")),
	Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back")),
	Refresh: gridKeys.Refresh,
	Quit:    gridKeys.Quit,
}

var searchKeys = struct {
	Leave key.Binding
	Quit  key.Binding
}{
	Leave: key.NewBinding(key.WithKeys("esc", "enter")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c")),
}

// =============================================================================
// BrowseModel - Interactive release browser
// =============================================================================

// fetchFunc loads the release list.
type fetchFunc func(ctx context.Context, refresh bool) ([]release.Release, error)

// fetchStartMsg asks the model to begin a fetch.
type fetchStartMsg struct{ refresh bool }

// fetchResultMsg carries the outcome of the fetch identified by id.
type fetchResultMsg struct {
	id       string
	releases []release.Release
	err      error
}

// BrowseModel is the bubbletea model wrapping [browser.Reduce].
type BrowseModel struct {
	State   browser.State
	project release.Project
	fetch   fetchFunc
	logger  *log.Logger

	search    textinput.Model
	searching bool
	spin      spinner.Model
	help      help.Model
	cursor    int // 1-based card on the current page, 0 for none

	parent context.Context
	cancel context.CancelFunc
}

// NewBrowseModel creates a browser for project. Fetches run under ctx and
// are cancelled on quit or when a refresh supersedes them.
func NewBrowseModel(ctx context.Context, project release.Project, fetch fetchFunc, logger *log.Logger) BrowseModel {
	search := textinput.New()
	search.Prompt = "search: "
	search.Placeholder = "filter by version"
	search.CharLimit = 100
	search.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleIconSpinner

	return BrowseModel{
		State:   browser.New(),
		project: project,
		fetch:   fetch,
		logger:  logger,
		search:  search,
		spin:    sp,
		help:    help.New(),
		parent:  ctx,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return func() tea.Msg { return fetchStartMsg{} }
}

// startFetch supersedes any fetch in flight and returns the command that
// performs the new one.
func (m BrowseModel) startFetch(refresh bool) (BrowseModel, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.parent)
	m.cancel = cancel

	id := uuid.NewString()
	m.State = browser.Reduce(m.State, browser.FetchStarted{RequestID: id})

	fetch := m.fetch
	return m, func() tea.Msg {
		releases, err := fetch(ctx, refresh)
		return fetchResultMsg{id: id, releases: releases, err: err}
	}
}

func (m BrowseModel) quit() (BrowseModel, tea.Cmd) {
	m.State = browser.Reduce(m.State, browser.Disposed{})
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchStartMsg:
		m, cmd := m.startFetch(msg.refresh)
		return m, tea.Batch(cmd, m.spin.Tick)

	case fetchResultMsg:
		return m.handleResult(msg), nil

	case spinner.TickMsg:
		if !m.State.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.State.View() == browser.ViewDetail {
			return m.updateDetail(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m BrowseModel) handleResult(msg fetchResultMsg) BrowseModel {
	if msg.err != nil {
		// Superseded and cancelled fetches are expected; only the pending
		// one is worth a diagnostic.
		if msg.id == m.State.RequestID && !errors.Is(msg.err, context.Canceled) {
			m.logger.Warn("fetch releases failed", "repo", m.project.Slug(), "err", msg.err)
		}
		m.State = browser.Reduce(m.State, browser.FetchFailed{RequestID: msg.id, Err: msg.err})
	} else {
		m.State = browser.Reduce(m.State, browser.FetchSucceeded{RequestID: msg.id, Releases: msg.releases})
	}
	m.cursor = min(m.cursor, len(m.State.Visible()))
	return m
}

func (m BrowseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, searchKeys.Quit):
		return m.quit()
	case key.Matches(msg, searchKeys.Leave):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.State.Query {
		m.State = browser.Reduce(m.State, browser.QueryChanged{Query: q})
		m.cursor = 0
	}
	return m, cmd
}

func (m BrowseModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := len(m.State.Visible())

	switch {
	case key.Matches(msg, gridKeys.Quit):
		return m.quit()

	case key.Matches(msg, gridKeys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, gridKeys.Refresh):
		m, cmd := m.startFetch(true)
		return m, tea.Batch(cmd, m.spin.Tick)

	case key.Matches(msg, gridKeys.Prev):
		m = m.turnPage(browser.PrevPage{})

	case key.Matches(msg, gridKeys.Next):
		m = m.turnPage(browser.NextPage{})

	case key.Matches(msg, gridKeys.Up):
		if m.cursor > 1 {
			m.cursor--
		}

	case key.Matches(msg, gridKeys.Down):
		if m.cursor < visible {
			m.cursor++
		}

	case key.Matches(msg, gridKeys.Open):
		m = m.open(m.cursor)

	case key.Matches(msg, gridKeys.Pick):
		m = m.open(int(msg.Runes[0] - '0'))
	}
	return m, nil
}

func (m BrowseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, detailKeys.Quit):
		return m.quit()

	case key.Matches(msg, detailKeys.Back):
		m.State = browser.Reduce(m.State, browser.Back{})

	case key.Matches(msg, detailKeys.Refresh):
		m, cmd := m.startFetch(true)
		return m, tea.Batch(cmd, m.spin.Tick)

	case key.Matches(msg, detailKeys.Gradle):
		m = m.copySnippet(release.Gradle)

	case key.Matches(msg, detailKeys.Maven):
		m = m.copySnippet(release.Maven)
	}
	return m, nil
}

func (m BrowseModel) turnPage(a browser.Action) BrowseModel {
	before := m.State.Page
	m.State = browser.Reduce(m.State, a)
	if m.State.Page != before {
		m.cursor = 0
	}
	return m
}

// open selects the card at 1-based position pos on the current page.
func (m BrowseModel) open(pos int) BrowseModel {
	visible := m.State.Visible()
	if pos < 1 || pos > len(visible) {
		return m
	}
	m.cursor = pos
	m.State = browser.Reduce(m.State, browser.Select{ID: visible[pos-1].ID})
	return m
}

func (m BrowseModel) copySnippet(kind string) BrowseModel {
	sn, ok := m.project.Snippet(m.State.Selected.Name, kind)
	if !ok {
		return m
	}
	if err := writeClipboard(sn.Code); err != nil {
		m.logger.Debug("clipboard write failed", "err", err)
		m.State = browser.Reduce(m.State, browser.CopyFailed{Err: err})
		return m
	}
	m.State = browser.Reduce(m.State, browser.Copied{Label: sn.Label})
	return m
}

func (m BrowseModel) View() string {
	var b strings.Builder

	if m.State.View() == browser.ViewGrid && (m.searching || m.State.Query != "") {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString(browser.Render(m.State, m.project, browser.RenderOptions{
		Cursor:    m.cursor,
		HideQuery: true,
	}))

	if m.State.Loading {
		b.WriteString(m.spin.View() + " " + StyleDim.Render("fetching "+m.project.Slug()) + "\n")
	}

	b.WriteString("\n")
	keys := help.KeyMap(gridKeys)
	if m.State.View() == browser.ViewDetail {
		keys = detailKeys
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(1).Render(m.help.View(keys)))
	return b.String()
}
