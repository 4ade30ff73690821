package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const requestTimeout = 60 * time.Second

// analyze sends the text for analysis and remembers the resulting record id.
func (m Model) analyze(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()

		result, err := m.config.Client.Analyze(ctx, text)
		if err != nil {
			return analysisDoneMsg{err: err}
		}

		if result.RecordID != "" {
			_ = m.config.Session.SetLastRecordID(result.RecordID)
		}

		return analysisDoneMsg{result: result}
	}
}

// loadHistory fetches the account's history records.
func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()

		records, err := m.config.Client.History(ctx, "")
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{records: records}
	}
}

// loadRecord fetches one record in full for the results pane.
func (m Model) loadRecord(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()

		result, err := m.config.Client.GetRecord(ctx, id)
		if err != nil {
			return recordLoadedMsg{err: err}
		}
		return recordLoadedMsg{result: result}
	}
}

// toggleFavorite flips the star on a record.
func (m Model) toggleFavorite(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()

		favorited, err := m.config.Client.ToggleFavorite(ctx, id)
		if err != nil {
			return favoriteToggledMsg{id: id, err: err}
		}
		return favoriteToggledMsg{id: id, favorited: favorited}
	}
}
