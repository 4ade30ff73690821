package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toxctl/toxctl/internal/model"
)

const historyPreviewWidth = 60

// HistoryList renders the history panel contents.
func HistoryList(records []model.HistoryRecord) string {
	if len(records) == 0 {
		return EmptyHistory()
	}

	var b strings.Builder
	for _, record := range records {
		b.WriteString(HistoryItem(record))
		b.WriteString("\n")
	}
	return b.String()
}

// HistoryItem renders one history entry: verdict, timestamp, favorite
// marker, id and a truncated text preview.
func HistoryItem(record model.HistoryRecord) string {
	verdict := SuccessStyle.Render(SafeIcon + " Safe")
	if record.IsToxic {
		verdict = ErrorStyle.Render(WarnIcon + " Toxic")
	}

	star := " "
	if record.IsFavorite {
		star = lipgloss.NewStyle().Foreground(CautionColor).Render(StarIcon)
	}

	when := "unknown date"
	if !record.CreatedAt.IsZero() {
		when = record.CreatedAt.Local().Format("2006-01-02 15:04")
	}

	return fmt.Sprintf("%s %s  %s  %s\n  %s",
		star,
		verdict,
		SubtleStyle.Render(when),
		SubtleStyle.Render(record.ID),
		Truncate(record.OriginalText, historyPreviewWidth))
}

// EmptyHistory renders the empty-state message.
func EmptyHistory() string {
	return SubtleStyle.Render("No analysis history yet\nStart analyzing text to build your history!")
}

// HistoryError renders the failed-load state with a retry hint.
func HistoryError(hint string) string {
	return FormatError("Failed to load history") + "\n" +
		SubtleStyle.Render(hint)
}
