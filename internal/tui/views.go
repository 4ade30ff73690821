package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/toxctl/toxctl/internal/render"
)

const inputHeight = 5

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(render.WarningColor).
			Padding(0, 1)

	sessionBadgeStyle = lipgloss.NewStyle().
				Foreground(render.SubtleColor).
				Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.SubtleColor).
			Padding(0, 1)

	inputBoxFocusedStyle = inputBoxStyle.
				BorderForeground(render.WarningColor)

	historyPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(render.SubtleColor).
				Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(render.CrisisColor).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(render.SubtleColor)
)

// View renders the full panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	main := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderInput(),
		m.renderResults(),
	)

	if m.showHistory {
		main = lipgloss.JoinHorizontal(
			lipgloss.Top,
			main,
			m.renderHistory(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	badge := "guest"
	if m.authenticated {
		badge = m.email
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		headerStyle.Render("toxctl"),
		sessionBadgeStyle.Render(badge),
	)
}

func (m Model) renderInput() string {
	box := inputBoxStyle
	if m.focus == focusInput {
		box = inputBoxFocusedStyle
	}

	content := m.input.View()
	if m.analyzing {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			content,
			m.spinner.View()+" Analyzing...",
		)
	}

	return box.Render(content)
}

func (m Model) renderResults() string {
	return m.results.View()
}

func (m Model) renderHistory() string {
	if m.historyBusy {
		return historyPaneStyle.Render(m.spinner.View() + " Loading history...")
	}
	if m.historyErr != "" {
		return historyPaneStyle.Render(render.HistoryError(m.historyErr))
	}
	if len(m.historyList.Items()) == 0 {
		return historyPaneStyle.Render(render.EmptyHistory())
	}
	return historyPaneStyle.Render(m.historyList.View())
}

func (m Model) renderFooter() string {
	if m.toast.visible {
		return toastStyle.Render(m.toast.message)
	}

	return helpStyle.Render("ctrl+s analyze • ctrl+h history • ctrl+f favorite • ctrl+r refresh • tab focus • ctrl+c quit")
}
