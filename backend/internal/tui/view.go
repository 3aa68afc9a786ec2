package tui

import (
	"fmt"
	"strings"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	"toolshelf/backend/internal/icons"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render("🧰 Toolshelf"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n\n")

	if m.detail != nil {
		sb.WriteString(m.renderDetail(*m.detail))
	} else {
		sb.WriteString(m.renderGrid())
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	return sb.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.tabs))
	for i, c := range m.tabs {
		label := icons.ForCategory(c) + " " + string(c)
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) cardWidth() int {
	cols := m.columns()
	w := m.width/cols - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderCard(d catalog.Descriptor, hovered bool) string {
	width := m.cardWidth()

	title := icons.ForTool(d) + " " + cardTitleStyle.Render(d.Name)
	var b []string
	if d.IsNew {
		b = append(b, "new")
	}
	if d.Featured {
		b = append(b, "featured")
	}
	if len(b) > 0 {
		title += " " + badgeStyle.Render("["+strings.Join(b, ", ")+"]")
	}

	desc := cardDescStyle.Render(truncate(d.Description, width-4))
	style := cardStyle
	if hovered {
		style = hoverCardStyle
	}
	return style.Width(width).Render(title + "\n" + desc)
}

func (m Model) renderGrid() string {
	items := m.view.Items()
	if len(items) == 0 {
		msg := "No tools in this category."
		if q := strings.TrimSpace(m.view.Query()); q != "" {
			msg = fmt.Sprintf("No tools match %q.", q)
		}
		return cardDescStyle.Render(msg) + "\n"
	}

	cols := m.columns()
	var rows []string
	for start := 0; start < len(items); start += cols {
		end := start + cols
		if end > len(items) {
			end = len(items)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(items[i], i == m.view.Hover()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) renderDetail(d catalog.Descriptor) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(icons.ForTool(d) + " " + d.Name))
	sb.WriteString("\n\n")
	sb.WriteString(d.Description)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Category: %s %s\n", icons.ForCategory(d.Category), d.Category)
	fmt.Fprintf(&sb, "Link:     %s%s\n", m.baseURL, d.Path)
	if len(d.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags:     %s\n", strings.Join(d.Tags, ", "))
	}
	if related, err := m.registry.Related(d.ID, constants.DefaultRelatedLimit); err == nil && len(related) > 0 {
		names := make([]string, 0, len(related))
		for _, r := range related {
			names = append(names, r.Name)
		}
		fmt.Fprintf(&sb, "Related:  %s\n", strings.Join(names, ", "))
	}
	return detailStyle.Width(m.width - 4).Render(sb.String()) + "\n"
}

func (m Model) renderStatus() string {
	left := fmt.Sprintf("Page %d/%d · %d tools", m.view.CurrentPage(), m.view.TotalPages(), m.view.Total())
	if m.pending() {
		left += " · filtering…"
	}

	var help string
	switch {
	case m.searching:
		help = "enter: done · esc: clear"
	case m.detail != nil:
		help = "y: copy link · esc: back · q: quit"
	default:
		help = "/: search · tab: category · n/p: page · arrows: move · enter: open · y: copy · q: quit"
	}

	line := statusBarStyle.Render(left + "   " + help)
	if m.status != "" {
		style := statusBarStyle
		if m.statusErr {
			style = errorStyle
		}
		line += "\n" + style.Render(m.status)
	}
	return line
}

func truncate(s string, l int) string {
	r := []rune(s)
	if l < 4 || len(r) <= l {
		return s
	}
	return string(r[:l-3]) + "..."
}
