package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes an overlay
	if m.showHelp || m.showLogs {
		m.showHelp = false
		m.showLogs = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		if m.logPath == "" {
			m.status = "No session log"
			return m, nil
		}
		m.showLogs = true
		return m, loadLogsCmd(m.logPath, logOverlayLines)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.refreshDetail()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.CycleMode):
		m.mode = m.mode.next()
		m.input.Placeholder = m.mode.placeholder()
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Random):
		if m.client == nil {
			return m, nil
		}
		m.seq++
		m.loading = true
		m.status = "Shaking a random drink..."
		return m, randomCmd(m.ctx, m.client, m.seq)

	case key.Matches(msg, m.keys.Featured):
		if !m.snapshot.HasFeatured {
			m.status = "No featured drink yet"
			return m, nil
		}
		m.setCurrent(m.snapshot.Featured)
		m.focus = paneDetail
		m.status = fmt.Sprintf("Featured: %s", m.snapshot.Featured.Name())
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focus == paneList {
			m.focus = paneDetail
		} else {
			m.focus = paneList
		}
		return m, nil
	}

	if m.focus == paneDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m.handleListKey(msg)
}

// handleSearchKey processes input while the search bar has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.input.Blur()
		return m.submitSearch()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if m.mode == modeLetter {
		query = firstLetter(query)
		m.input.SetValue(query)
	}
	if query == "" {
		m.status = "Type something to search"
		return m, nil
	}
	if m.client == nil {
		return m, nil
	}

	m.lastQuery = query
	m.lastMode = m.mode
	m.savePrefs()

	m.seq++
	m.loading = true
	m.focus = paneList
	m.status = fmt.Sprintf("Searching by %s for %q...", strings.ToLower(m.mode.String()), query)
	return m, searchCmd(m.ctx, m.client, m.mode, query, m.seq)
}

// handleListKey processes keyboard input for the result list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.results)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.Confirm):
		return m.openSelected()
	default:
		return m, nil
	}

	m.setCurrent(m.results[m.selected])
	return m, nil
}

// openSelected shows the selected recipe, fetching it first when the list
// only holds a summary.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	drink := m.results[m.selected]
	if !isSummary(drink) {
		m.focus = paneDetail
		return m, nil
	}
	id, err := strconv.Atoi(drink.ID())
	if err != nil || m.client == nil {
		m.status = fmt.Sprintf("Cannot look up %q", drink.Name())
		return m, nil
	}
	m.seq++
	m.loading = true
	m.status = fmt.Sprintf("Loading %s...", drink.Name())
	return m, lookupCmd(m.ctx, m.client, id, drink.Name(), m.seq)
}

// firstLetter returns the first character of s, or "".
func firstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(s))
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
