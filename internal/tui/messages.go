package tui

import (
	"github.com/toxctl/toxctl/internal/model"
)

// Async operation results.
type analysisDoneMsg struct {
	result *model.AnalysisResult
	err    error
}

type historyLoadedMsg struct {
	err     error
	records []model.HistoryRecord
}

type recordLoadedMsg struct {
	result *model.AnalysisResult
	err    error
}

type favoriteToggledMsg struct {
	favorited *bool
	err       error
	id        string
}

// Toast lifecycle.
type toastExpiredMsg struct {
	seq int
}
