package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toxctl/toxctl/internal/common"
	"github.com/toxctl/toxctl/internal/model"
	"github.com/toxctl/toxctl/internal/render"
)

// focusArea tracks which pane receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusHistory
)

// Model holds the interactive panel state.
type Model struct {
	ctx           context.Context
	config        Config
	keymap        KeyMap
	email         string
	lastResult    *model.AnalysisResult
	input         textarea.Model
	results       viewport.Model
	historyList   list.Model
	spinner       spinner.Model
	toast         toast
	historyErr    string
	width         int
	height        int
	focus         focusArea
	analyzing     bool
	historyBusy   bool
	showHistory   bool
	authenticated bool
	ready         bool
	quitting      bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	input := textarea.New()
	input.Placeholder = "Type or paste text to analyze..."
	input.ShowLineNumbers = false
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(render.WarningColor)

	delegate := list.NewDefaultDelegate()
	historyList := list.New(nil, delegate, 0, 0)
	historyList.Title = "History"
	historyList.SetShowStatusBar(false)
	historyList.SetFilteringEnabled(false)
	historyList.SetShowHelp(false)

	m := Model{
		ctx:         ctx,
		config:      cfg,
		keymap:      DefaultKeyMap(),
		input:       input,
		results:     viewport.New(0, 0),
		historyList: historyList,
		spinner:     sp,
		focus:       focusInput,
	}

	if current := cfg.Session.Current(); current != nil {
		m.authenticated = true
		m.email = current.Email
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case analysisDoneMsg:
		m.analyzing = false
		if msg.err != nil {
			cmd := m.handleFlowError(msg.err)
			return m, cmd
		}
		m.lastResult = msg.result
		m.results.SetContent(render.Results(msg.result, render.Options{Authenticated: m.authenticated}))
		m.results.GotoTop()
		return m, nil

	case historyLoadedMsg:
		m.historyBusy = false
		if msg.err != nil {
			if errors.Is(msg.err, common.ErrSessionExpired) {
				cmd := m.handleFlowError(msg.err)
				return m, cmd
			}
			// Failed loads render in the panel itself; ctrl+r retries.
			m.historyErr = "Press ctrl+r to retry."
			return m, nil
		}
		m.historyErr = ""
		cmd := m.historyList.SetItems(newHistoryItems(msg.records))
		return m, cmd

	case recordLoadedMsg:
		if msg.err != nil {
			cmd := m.handleFlowError(msg.err)
			return m, cmd
		}
		m.lastResult = msg.result
		m.input.SetValue(msg.result.OriginalText)
		m.results.SetContent(render.Results(msg.result, render.Options{Authenticated: m.authenticated}))
		m.results.GotoTop()
		m.focus = focusInput
		m.input.Focus()
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			cmd := m.handleFlowError(msg.err)
			return m, cmd
		}
		// Only the toggled entry changes; the list is not re-fetched.
		setCmd := m.applyFavorite(msg.id, msg.favorited)
		var toastCmd tea.Cmd
		switch {
		case msg.favorited == nil:
			toastCmd = m.toast.show("Favorite toggled.")
		case *msg.favorited:
			toastCmd = m.toast.show("★ Added to favorites.")
		default:
			toastCmd = m.toast.show("Removed from favorites.")
		}
		return m, tea.Batch(setCmd, toastCmd)

	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.analyzing && !m.historyBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Analyze):
		// The analyze control is disabled while a call is in flight.
		if m.analyzing {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			cmd := m.toast.show("Please enter some text to analyze.")
			return m, cmd
		}
		m.analyzing = true
		return m, tea.Batch(m.analyze(text), m.spinner.Tick)

	case key.Matches(msg, m.keymap.ToggleHistory):
		if !m.authenticated {
			cmd := m.toast.show("Please login to view your history.")
			return m, cmd
		}
		m.showHistory = !m.showHistory
		m.layout()
		if !m.showHistory {
			m.focus = focusInput
			m.input.Focus()
			return m, nil
		}
		m.focus = focusHistory
		m.input.Blur()
		m.historyBusy = true
		return m, tea.Batch(m.loadHistory(), m.spinner.Tick)

	case key.Matches(msg, m.keymap.Refresh):
		if !m.showHistory || m.historyBusy {
			return m, nil
		}
		m.historyBusy = true
		return m, tea.Batch(m.loadHistory(), m.spinner.Tick)

	case key.Matches(msg, m.keymap.Favorite):
		if !m.authenticated {
			cmd := m.toast.show("Please login to favorite analyses.")
			return m, cmd
		}
		id := m.favoriteTarget()
		if id == "" {
			cmd := m.toast.show("Nothing to favorite yet.")
			return m, cmd
		}
		return m, m.toggleFavorite(id)

	case key.Matches(msg, m.keymap.FocusNext):
		if !m.showHistory {
			break
		}
		if m.focus == focusInput {
			m.focus = focusHistory
			m.input.Blur()
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Select):
		if m.focus != focusHistory {
			break
		}
		item, ok := m.historyList.SelectedItem().(historyItem)
		if !ok {
			return m, nil
		}
		return m, m.loadRecord(item.record.ID)
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to the pane holding focus.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.focus == focusHistory {
		m.historyList, cmd = m.historyList.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.results, cmd = m.results.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleFlowError converts an operation error into UI state. A stale token
// drops the panel back to guest mode no matter which flow hit it.
func (m *Model) handleFlowError(err error) tea.Cmd {
	if errors.Is(err, common.ErrSessionExpired) {
		m.authenticated = false
		m.email = ""
		m.showHistory = false
		m.focus = focusInput
		m.input.Focus()
		m.layout()
		return m.toast.show("Session expired. Please login again.")
	}

	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return m.toast.show(userErr.UserMessage)
	}
	return m.toast.show("Something went wrong. Please try again.")
}

// applyFavorite updates the favorite star on a single list entry. When the
// server did not report the new state, the local state is flipped.
func (m *Model) applyFavorite(id string, favorited *bool) tea.Cmd {
	for i, it := range m.historyList.Items() {
		item, ok := it.(historyItem)
		if !ok || item.record.ID != id {
			continue
		}
		if favorited != nil {
			item.record.IsFavorite = *favorited
		} else {
			item.record.IsFavorite = !item.record.IsFavorite
		}
		return m.historyList.SetItem(i, item)
	}
	return nil
}

// favoriteTarget picks the record the favorite key applies to: the selected
// history entry when the panel has focus, otherwise the latest analysis.
func (m *Model) favoriteTarget() string {
	if m.focus == focusHistory {
		if item, ok := m.historyList.SelectedItem().(historyItem); ok {
			return item.record.ID
		}
	}
	if m.lastResult != nil && m.lastResult.RecordID != "" {
		return m.lastResult.RecordID
	}
	return m.config.Session.LastRecordID()
}

// layout recomputes component sizes for the current terminal and panel state.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	mainWidth := m.width
	if m.showHistory {
		historyWidth := m.width / 3
		m.historyList.SetSize(historyWidth-2, m.height-4)
		mainWidth = m.width - historyWidth
	}

	m.input.SetWidth(mainWidth - 4)
	m.input.SetHeight(inputHeight)
	m.results.Width = mainWidth - 2
	m.results.Height = m.height - inputHeight - 7
}
