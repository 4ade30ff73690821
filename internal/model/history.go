package model

import (
	"encoding/json"
	"time"
)

// HistoryRecord is the summary shape the history list endpoint returns.
// The full AnalysisResult shape is used when a single record is fetched.
type HistoryRecord struct {
	ID           string
	OriginalText string
	CreatedAt    time.Time
	IsToxic      bool
	IsFavorite   bool
}

// historyRecordJSON mirrors the wire shape. The backend emits both old and
// new field names depending on when the record was written, so aliases are
// resolved here rather than at every call site.
type historyRecordJSON struct {
	ID           string `json:"id"`
	LegacyID     string `json:"_id"`
	OriginalText string `json:"original_text"`
	CreatedAt    string `json:"created_at"`
	Timestamp    string `json:"timestamp"`
	IsToxic      bool   `json:"is_toxic"`
	IsFavorite   bool   `json:"is_favorite"`
	Favorite     bool   `json:"favorite"`
}

// UnmarshalJSON resolves the id, favorite and timestamp aliases.
func (h *HistoryRecord) UnmarshalJSON(data []byte) error {
	var raw historyRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	h.ID = raw.ID
	if h.ID == "" {
		h.ID = raw.LegacyID
	}
	h.OriginalText = raw.OriginalText
	h.IsToxic = raw.IsToxic
	h.IsFavorite = raw.IsFavorite || raw.Favorite

	created := raw.CreatedAt
	if created == "" {
		created = raw.Timestamp
	}
	if t, ok := ParseAPITime(created); ok {
		h.CreatedAt = t
	}

	return nil
}

// HistoryPage is the response envelope of the history list endpoint.
type HistoryPage struct {
	History []HistoryRecord `json:"history"`
	Count   int             `json:"count"`
}

// History filter tokens accepted by the list endpoint.
const (
	FilterAll       = "all"
	FilterToxic     = "toxic"
	FilterSafe      = "safe"
	FilterFavorites = "favorites"
)

// ValidFilter reports whether the given filter token is one the server
// understands.
func ValidFilter(filter string) bool {
	switch filter {
	case FilterAll, FilterToxic, FilterSafe, FilterFavorites:
		return true
	}
	return false
}
