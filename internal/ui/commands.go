package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cocktaildb"
	"github.com/five82/cocktaildb/internal/logtail"
	"github.com/five82/cocktaildb/internal/state"
)

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type resultsMsg struct {
	seq    int
	mode   searchMode
	query  string
	drinks []cocktaildb.Drink
}

type detailMsg struct {
	seq   int
	what  string
	drink cocktaildb.Drink
}

type logsMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func searchCmd(ctx context.Context, client Browser, mode searchMode, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		var drinks []cocktaildb.Drink
		switch mode {
		case modeLetter:
			drinks = client.SearchByLetter(ctx, query)
		case modeIngredient:
			drinks = client.FilterByIngredient(ctx, query)
		default:
			drinks = client.Search(ctx, query)
		}
		return resultsMsg{seq: seq, mode: mode, query: query, drinks: drinks}
	}
}

func lookupCmd(ctx context.Context, client Browser, id int, name string, seq int) tea.Cmd {
	return func() tea.Msg {
		return detailMsg{seq: seq, what: name, drink: client.LookupDrink(ctx, id)}
	}
}

func randomCmd(ctx context.Context, client Browser, seq int) tea.Cmd {
	return func() tea.Msg {
		return detailMsg{seq: seq, what: "a random drink", drink: client.Random(ctx)}
	}
}

func loadLogsCmd(path string, n int) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.File(path, n)
		return logsMsg{lines: lines, err: err}
	}
}
