package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/toxctl/toxctl/internal/model"
	"github.com/toxctl/toxctl/internal/render"
)

// historyItem adapts a HistoryRecord to the bubbles list.
type historyItem struct {
	record model.HistoryRecord
}

func (i historyItem) Title() string {
	star := "  "
	if i.record.IsFavorite {
		star = render.StarIcon + " "
	}

	verdict := render.SafeIcon
	if i.record.IsToxic {
		verdict = render.ToxicIcon
	}

	return star + verdict + " " + render.Truncate(i.record.OriginalText, 40)
}

func (i historyItem) Description() string {
	if i.record.CreatedAt.IsZero() {
		return i.record.ID
	}
	return i.record.CreatedAt.Local().Format("2006-01-02 15:04")
}

func (i historyItem) FilterValue() string {
	return i.record.OriginalText
}

func newHistoryItems(records []model.HistoryRecord) []list.Item {
	items := make([]list.Item, 0, len(records))
	for _, r := range records {
		items = append(items, historyItem{record: r})
	}
	return items
}
