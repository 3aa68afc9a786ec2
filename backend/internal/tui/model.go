// Package tui is the terminal front-end of the tool grid.
package tui

import (
	"strings"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/grid"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// filterResultMsg carries a recomputed list back into Update
type filterResultMsg struct {
	result grid.Result
}

// filterCmd runs a grid request off the update loop. The view drops the
// result if a newer request was issued meanwhile.
func filterCmd(src grid.Source, req grid.Request) tea.Cmd {
	return func() tea.Msg {
		return filterResultMsg{result: grid.Compute(src, req)}
	}
}

// Model is the bubbletea model of the browser
type Model struct {
	registry *catalog.Registry
	view     *grid.View
	search   textinput.Model
	baseURL  string

	tabs      []catalog.Category
	tab       int
	searching bool
	detail    *catalog.Descriptor
	status    string
	statusErr bool

	// lastReq is the newest filter request issued; applied is the seq of
	// the newest result accepted
	lastReq grid.Request
	applied uint64

	width  int
	height int

	// copy writes to the system clipboard; replaced in tests
	copy func(string) error
}

// New creates a browser over registry. baseURL prefixes copied links.
func New(registry *catalog.Registry, baseURL string) Model {
	ti := textinput.New()
	ti.Placeholder = "search tools"
	ti.Prompt = "🔎 "
	ti.CharLimit = 80

	return Model{
		registry: registry,
		view:     grid.NewView(registry),
		search:   ti,
		baseURL:  strings.TrimRight(baseURL, "/"),
		tabs:     append([]catalog.Category{catalog.All}, catalog.Categories()...),
		width:    100,
		height:   30,
		copy:     clipboard.WriteAll,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// columns is the number of cards per grid row for the current width
func (m Model) columns() int {
	switch {
	case m.width >= 110:
		return 3
	case m.width >= 70:
		return 2
	default:
		return 1
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case filterResultMsg:
		if m.view.Apply(msg.result) {
			m.applied = msg.result.Seq
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		if m.view.Query() != "" {
			cmd := m.filter(m.view.SetQuery(""))
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.view.Query() {
		filter := m.filter(m.view.SetQuery(v))
		return m, tea.Batch(cmd, filter)
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "backspace":
		m.detail = nil
	case "y":
		m.copyLink(*m.detail)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	cols := m.columns()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case "tab":
		return m.selectTab(m.tab + 1)
	case "shift+tab":
		return m.selectTab(m.tab - 1)

	case "n", "pgdown", "]":
		m.view.NextPage()
	case "p", "pgup", "[":
		m.view.PrevPage()

	case "right", "l":
		m.moveHover(1)
	case "left", "h":
		m.moveHover(-1)
	case "down", "j":
		m.moveHover(cols)
	case "up", "k":
		m.moveHover(-cols)

	case "enter":
		if d, ok := m.view.HoveredTool(); ok {
			m.detail = &d
		}
	case "y":
		if d, ok := m.view.HoveredTool(); ok {
			m.copyLink(d)
		}
	case "esc":
		m.view.SetHover(-1)
	}
	return m, nil
}

func (m Model) selectTab(i int) (tea.Model, tea.Cmd) {
	n := len(m.tabs)
	m.tab = ((i % n) + n) % n
	cmd := m.filter(m.view.SetCategory(m.tabs[m.tab]))
	return m, cmd
}

// filter records req as the newest request and schedules it
func (m *Model) filter(req grid.Request) tea.Cmd {
	m.lastReq = req
	return filterCmd(m.registry, req)
}

// pending reports whether a filter request is still in flight
func (m Model) pending() bool {
	return m.lastReq.Seq > m.applied
}

// moveHover steps the hover cursor, entering the grid at the first card
func (m Model) moveHover(delta int) {
	count := len(m.view.Items())
	if count == 0 {
		return
	}
	cur := m.view.Hover()
	if cur < 0 {
		m.view.SetHover(0)
		return
	}
	next := cur + delta
	if next < 0 || next >= count {
		return
	}
	m.view.SetHover(next)
}

func (m *Model) copyLink(d catalog.Descriptor) {
	link := m.baseURL + d.Path
	if err := m.copy(link); err != nil {
		m.status = "clipboard unavailable: " + err.Error()
		m.statusErr = true
		return
	}
	m.status = "copied " + link
	m.statusErr = false
}

// Run starts the browser on the terminal and blocks until it exits
func Run(registry *catalog.Registry, baseURL string) error {
	_, err := tea.NewProgram(New(registry, baseURL), tea.WithAltScreen()).Run()
	return err
}
