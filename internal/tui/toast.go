package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastHold is how long a toast stays on screen before dismissing itself.
const toastHold = 3 * time.Second

// toast is a transient notification with a show/hold/dismiss schedule.
// Each show bumps a sequence number so a stale dismiss tick from an
// earlier toast cannot hide a newer one.
type toast struct {
	message string
	seq     int
	visible bool
}

// show displays a message and schedules its dismissal.
func (t *toast) show(message string) tea.Cmd {
	t.seq++
	t.message = message
	t.visible = true

	seq := t.seq
	return tea.Tick(toastHold, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// expire hides the toast if the tick belongs to the toast still showing.
func (t *toast) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.visible = false
	}
}
