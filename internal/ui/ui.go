package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cocktaildb"
	"github.com/five82/cocktaildb/internal/prefs"
	"github.com/five82/cocktaildb/internal/state"
)

// Browser is the part of the cocktaildb client the UI calls.
type Browser interface {
	Search(ctx context.Context, name string) []cocktaildb.Drink
	SearchByLetter(ctx context.Context, letter string) []cocktaildb.Drink
	FilterByIngredient(ctx context.Context, name string) []cocktaildb.Drink
	LookupDrink(ctx context.Context, id int) cocktaildb.Drink
	Random(ctx context.Context) cocktaildb.Drink
}

// searchMode selects which endpoint the search bar queries.
type searchMode int

const (
	modeName searchMode = iota
	modeLetter
	modeIngredient
	numModes
)

func (s searchMode) String() string {
	switch s {
	case modeLetter:
		return "First letter"
	case modeIngredient:
		return "Ingredient"
	default:
		return "Name"
	}
}

// key is the name a mode is saved under in prefs.
func (s searchMode) key() string {
	switch s {
	case modeLetter:
		return "letter"
	case modeIngredient:
		return "ingredient"
	default:
		return "name"
	}
}

// parseSearchMode maps a saved key back to its mode. Unknown keys search by name.
func parseSearchMode(key string) searchMode {
	for s := modeName; s < numModes; s++ {
		if s.key() == strings.ToLower(strings.TrimSpace(key)) {
			return s
		}
	}
	return modeName
}

func (s searchMode) next() searchMode {
	return (s + 1) % numModes
}

func (s searchMode) placeholder() string {
	switch s {
	case modeLetter:
		return "a letter, e.g. m"
	case modeIngredient:
		return "an ingredient, e.g. Gin"
	default:
		return "a drink name, e.g. Margarita"
	}
}

type pane int

const (
	paneList pane = iota
	paneDetail
)

const (
	minListWidth    = 24
	logOverlayLines = 200
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    Browser
	Store     *state.Store
	PollTick  time.Duration
	ThemeName string
	LastQuery string
	LastMode  string // saved mode key of LastQuery
	PrefsPath string
	LogPath   string // session log shown by the log overlay; empty disables it
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    Browser
	store     *state.Store
	prefsPath string
	logPath   string
	pollTick  time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	focus    pane
	showHelp bool
	showLogs bool
	logLines []string

	// Search state
	input     textinput.Model
	searching bool
	mode      searchMode
	lastQuery string
	lastMode  searchMode

	// Results and recipe
	results  []cocktaildb.Drink
	selected int
	current  cocktaildb.Drink
	detail   viewport.Model

	// Requests in flight carry seq; replies for an older seq are dropped.
	seq     int
	loading bool
	status  string

	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	mode := parseSearchMode(opts.LastMode)

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	input.Placeholder = mode.placeholder()
	input.SetValue(opts.LastQuery)

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		pollTick:  pollTick,
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		mode:      mode,
		lastQuery: strings.TrimSpace(opts.LastQuery),
		lastMode:  mode,
		detail:    viewport.New(0, 0),
		status:    "Press / to search",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	// Reopen the last search so the list is not empty on start.
	if m.lastQuery != "" && m.client != nil {
		cmds = append(cmds, searchCmd(m.ctx, m.client, m.lastMode, m.lastQuery, m.seq))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.showLogs {
			cmds = append(cmds, loadLogsCmd(m.logPath, logOverlayLines))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case logsMsg:
		if msg.err != nil {
			m.logLines = []string{"Could not read " + m.logPath + ": " + msg.err.Error()}
			return m, nil
		}
		m.logLines = msg.lines
		return m, nil

	case resultsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.results = msg.drinks
		m.selected = 0
		if len(msg.drinks) == 0 {
			m.status = fmt.Sprintf("No drinks for %q (not found or API unreachable)", msg.query)
			m.setCurrent(nil)
			return m, nil
		}
		m.status = fmt.Sprintf("%d drinks for %s %q", len(msg.drinks), strings.ToLower(msg.mode.String()), msg.query)
		m.setCurrent(msg.drinks[0])
		return m, nil

	case detailMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.drink == nil {
			m.status = fmt.Sprintf("Could not load %s", msg.what)
			return m, nil
		}
		m.status = fmt.Sprintf("Showing %s", msg.drink.Name())
		m.setCurrent(msg.drink)
		m.focus = paneDetail
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSearchBar(),
		m.renderBody(),
		m.renderFooter(),
	)
}

// layout splits the terminal into the list and recipe panes.
func (m Model) layout() (listWidth, detailWidth, bodyHeight int) {
	bodyHeight = max(m.height-3, 3)
	listWidth = min(max(m.width/3, minListWidth), m.width)
	detailWidth = max(m.width-listWidth, 0)
	return listWidth, detailWidth, bodyHeight
}

func (m *Model) resize() {
	_, detailWidth, bodyHeight := m.layout()
	m.detail.Width = max(detailWidth-2, 0)
	m.detail.Height = max(bodyHeight-2, 0)
	m.input.Width = max(m.width-len(m.mode.String())-8, 10)
	m.help.Width = m.width
	m.refreshDetail()
}

func (m *Model) setCurrent(d cocktaildb.Drink) {
	m.current = d
	m.refreshDetail()
	m.detail.GotoTop()
}

func (m *Model) refreshDetail() {
	m.detail.SetContent(renderDrinkDetail(m.current, m.theme.Styles(), m.detail.Width))
}

func (m *Model) savePrefs() {
	err := prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:     m.theme.Name,
		LastQuery: m.lastQuery,
		LastMode:  m.lastMode.key(),
	})
	if err != nil {
		m.status = fmt.Sprintf("Could not save preferences: %v", err)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
