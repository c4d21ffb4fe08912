package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cocktaildb"
)

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("cocktaildb")
	var featured string
	switch snap := m.snapshot; {
	case snap.IsOffline():
		featured = styles.WarningText.Render("API unreachable")
		if snap.HasFeatured {
			featured += styles.FaintText.Render("  last featured: " + snap.Featured.Name())
		}
	case snap.HasFeatured:
		featured = styles.MutedText.Render("Featured: ") + styles.Text.Render(snap.Featured.Name())
		if a := snap.Featured.Alcoholic(); a != "" {
			featured += " " + styles.BadgeStyle(a).Render(a)
		}
	default:
		featured = styles.FaintText.Render("Featured: loading...")
	}

	return styles.Header.Width(m.width).Render(title + "  " + featured)
}

func (m Model) renderSearchBar() string {
	styles := m.theme.Styles()
	label := styles.AccentText.Render("[" + m.mode.String() + "]")
	return styles.Header.Width(m.width).Render(label + " " + m.input.View())
}

func (m Model) renderBody() string {
	styles := m.theme.Styles()
	listWidth, detailWidth, bodyHeight := m.layout()
	innerHeight := max(bodyHeight-2, 0)

	listStyle, detailStyle := styles.Pane, styles.Pane
	if !m.searching {
		if m.focus == paneList {
			listStyle = styles.FocusedPane
		} else {
			detailStyle = styles.FocusedPane
		}
	}

	list := listStyle.
		Width(max(listWidth-2, 0)).
		Height(innerHeight).
		Render(m.renderList(max(listWidth-2, 0), innerHeight))
	if detailWidth <= 2 {
		return list
	}
	detail := detailStyle.
		Width(detailWidth - 2).
		Height(innerHeight).
		Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

func (m Model) renderList(width, height int) string {
	styles := m.theme.Styles()
	if len(m.results) == 0 {
		if m.loading {
			return styles.FaintText.Render("Searching...")
		}
		return styles.FaintText.Render("No results")
	}

	start := visibleStart(m.selected, len(m.results), height)
	end := min(start+height, len(m.results))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := truncate(m.results[i].Name(), width)
		if i == m.selected {
			lines = append(lines, styles.Selected.Width(width).Render(name))
			continue
		}
		lines = append(lines, styles.Text.Render(name))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	status := m.status
	if m.loading {
		status = styles.WarningText.Render(status)
	}
	return styles.Footer.Width(m.width).Render(status + "  " + m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderLogs renders the session log overlay, newest lines at the bottom.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	innerHeight := max(m.height-4, 1)
	innerWidth := max(m.width-4, 3)
	textWidth := innerWidth - 2

	lines := m.logLines
	if len(lines) > innerHeight-1 {
		lines = lines[len(lines)-(innerHeight-1):]
	}
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Session log"))
	b.WriteString(styles.FaintText.Render("  " + m.logPath))
	if len(lines) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Nothing logged yet."))
	}
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(truncate(line, textWidth)))
	}

	return styles.FocusedPane.
		Width(innerWidth).
		Height(innerHeight).
		Padding(0, 1).
		Render(b.String())
}

// renderDrinkDetail formats a drink as a recipe card. Width wraps the
// instructions; zero disables wrapping.
func renderDrinkDetail(d cocktaildb.Drink, styles Styles, width int) string {
	if d == nil {
		return styles.FaintText.Render("Select a drink to see its recipe.")
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(d.Name()))
	b.WriteString("\n")

	if meta := joinNonEmpty(" / ", d.Category(), d.Glass()); meta != "" {
		b.WriteString(styles.MutedText.Render(meta))
	}
	if a := d.Alcoholic(); a != "" {
		b.WriteString(" ")
		b.WriteString(styles.BadgeStyle(a).Render(a))
	}
	b.WriteString("\n")

	if isSummary(d) {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Press enter to load the full recipe."))
		return b.String()
	}

	if components := d.Components(); len(components) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Text.Bold(true).Render("Ingredients"))
		b.WriteString("\n")
		for _, c := range components {
			line := c.Ingredient
			if c.Measure != "" {
				line = c.Measure + " " + c.Ingredient
			}
			b.WriteString("  - ")
			b.WriteString(styles.Text.Render(line))
			b.WriteString("\n")
		}
	}

	if instructions := strings.TrimSpace(d.Instructions()); instructions != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Bold(true).Render("Instructions"))
		b.WriteString("\n")
		wrap := lipgloss.NewStyle()
		if width > 0 {
			wrap = wrap.Width(width)
		}
		b.WriteString(wrap.Render(instructions))
		b.WriteString("\n")
	}

	if thumb := d.Thumbnail(); thumb != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(thumb))
	}
	return b.String()
}

// isSummary reports whether d came from a filter endpoint, which only
// carries id, name and thumbnail.
func isSummary(d cocktaildb.Drink) bool {
	return d.Instructions() == "" && d.Category() == "" && d.Glass() == ""
}

// visibleStart returns the first list row to draw so selected stays on screen.
func visibleStart(selected, total, height int) int {
	if height <= 0 || total <= height || selected < height {
		return 0
	}
	return min(selected-height+1, total-height)
}

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
