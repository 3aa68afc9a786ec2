package tui

import (
	"errors"
	"testing"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/grid"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func newTestModel() Model {
	m := New(catalog.Builtin(), "https://tools.example.com/")
	m.copy = func(string) error { return nil }
	return m
}

func TestModel_StartsOnAll(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, catalog.All, m.view.Category())
	assert.Equal(t, 1, m.view.CurrentPage())
	assert.Len(t, m.view.Items(), grid.PageSize)
	assert.False(t, m.pending())
	assert.Contains(t, m.View(), "Page 1/")
}

func TestModel_TabSelectsCategory(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, runes("n"))
	require.Equal(t, 2, m.view.CurrentPage())

	m, cmd := send(t, m, key(tea.KeyTab))
	require.NotNil(t, cmd)
	assert.True(t, m.pending())
	assert.Equal(t, 1, m.view.CurrentPage())

	m, _ = send(t, m, cmd())
	assert.False(t, m.pending())
	assert.Equal(t, catalog.CategoryUtilities, m.view.Category())
	for _, d := range m.view.Items() {
		assert.Equal(t, catalog.CategoryUtilities, d.Category)
	}

	// shift+tab from the first category wraps back to All
	m, cmd = send(t, m, key(tea.KeyShiftTab))
	m, _ = send(t, m, cmd())
	assert.Equal(t, catalog.All, m.view.Category())
	m, cmd = send(t, m, key(tea.KeyShiftTab))
	m, _ = send(t, m, cmd())
	assert.Equal(t, catalog.CategoryMiscellaneous, m.view.Category())
}

func TestModel_SearchDropsStaleResults(t *testing.T) {
	m := newTestModel()
	reg := catalog.Builtin()

	m, _ = send(t, m, runes("/"))
	require.True(t, m.searching)

	m, _ = send(t, m, runes("p"))
	first := m.lastReq
	m, _ = send(t, m, runes("a"))
	assert.Equal(t, "pa", m.view.Query())
	assert.True(t, m.pending())

	// the answer to "p" arrives after "pa" was issued
	m, _ = send(t, m, filterResultMsg{result: grid.Compute(reg, first)})
	assert.True(t, m.pending())

	m, _ = send(t, m, filterResultMsg{result: grid.Compute(reg, m.lastReq)})
	assert.False(t, m.pending())
	assert.Equal(t, grid.Filter(reg, "pa", catalog.All), m.view.Items())

	m, _ = send(t, m, key(tea.KeyEnter))
	assert.False(t, m.searching)
	assert.Equal(t, "pa", m.view.Query())
}

func TestModel_SearchEscClears(t *testing.T) {
	m := newTestModel()
	reg := catalog.Builtin()

	m, _ = send(t, m, runes("/"))
	m, _ = send(t, m, runes("qr"))
	m, _ = send(t, m, filterResultMsg{result: grid.Compute(reg, m.lastReq)})
	require.NotEqual(t, reg.Len(), m.view.Total())

	m, cmd := send(t, m, key(tea.KeyEsc))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.False(t, m.searching)
	assert.Equal(t, "", m.view.Query())
	assert.Equal(t, reg.Len(), m.view.Total())
}

func TestModel_EmptySearch(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, runes("/"))
	m, _ = send(t, m, runes("zzzz"))
	m, _ = send(t, m, filterResultMsg{result: grid.Compute(catalog.Builtin(), m.lastReq)})

	assert.Equal(t, 0, m.view.Total())
	assert.Contains(t, m.View(), `No tools match "zzzz"`)
	assert.Contains(t, m.View(), "Page 1/1")
}

func TestModel_HoverAndDetail(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 3, m.columns())

	m, _ = send(t, m, key(tea.KeyDown))
	assert.Equal(t, 0, m.view.Hover())
	m, _ = send(t, m, key(tea.KeyDown))
	assert.Equal(t, 3, m.view.Hover())
	m, _ = send(t, m, runes("l"))
	assert.Equal(t, 4, m.view.Hover())
	m, _ = send(t, m, key(tea.KeyUp))
	m, _ = send(t, m, key(tea.KeyUp))
	assert.Equal(t, 1, m.view.Hover())

	want, ok := m.view.HoveredTool()
	require.True(t, ok)

	m, _ = send(t, m, key(tea.KeyEnter))
	require.NotNil(t, m.detail)
	assert.Equal(t, want.ID, m.detail.ID)
	assert.Contains(t, m.View(), "https://tools.example.com"+want.Path)

	// paging keys are ignored while the detail is open
	m, _ = send(t, m, runes("n"))
	assert.Equal(t, 1, m.view.CurrentPage())

	m, _ = send(t, m, key(tea.KeyEsc))
	assert.Nil(t, m.detail)

	m, _ = send(t, m, key(tea.KeyEsc))
	assert.Equal(t, -1, m.view.Hover())
}

func TestModel_PagingClamps(t *testing.T) {
	m := newTestModel()
	total := grid.TotalPages(catalog.Builtin().Len(), grid.PageSize)

	m, _ = send(t, m, runes("p"))
	assert.Equal(t, 1, m.view.CurrentPage())

	for i := 0; i < total+2; i++ {
		m, _ = send(t, m, runes("]"))
	}
	assert.Equal(t, total, m.view.CurrentPage())
	assert.Equal(t, -1, m.view.Hover())
}

func TestModel_CopyLink(t *testing.T) {
	m := newTestModel()
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m, _ = send(t, m, runes("y"))
	assert.Empty(t, copied)

	m, _ = send(t, m, key(tea.KeyRight))
	d, ok := m.view.HoveredTool()
	require.True(t, ok)

	m, _ = send(t, m, runes("y"))
	assert.Equal(t, "https://tools.example.com"+d.Path, copied)
	assert.Contains(t, m.status, "copied")
	assert.False(t, m.statusErr)

	m.copy = func(string) error { return errors.New("no display") }
	m, _ = send(t, m, runes("y"))
	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), "clipboard unavailable")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel()
	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = send(t, m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijkl", 10))
	assert.Equal(t, "abc", truncate("abc", 2))
}
