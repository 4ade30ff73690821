package model

// UploadLineResult is the per-line verdict in a batch upload response.
type UploadLineResult struct {
	Text          string  `json:"text"`
	ToxicityScore float64 `json:"toxicity_score"`
	LineNumber    int     `json:"line_number"`
	IsToxic       bool    `json:"is_toxic"`
}

// UploadBatchResult is the aggregate response of the upload endpoint.
type UploadBatchResult struct {
	Filename      string             `json:"filename"`
	Results       []UploadLineResult `json:"results"`
	AnalyzedLines int                `json:"analyzed_lines"`
	ToxicCount    int                `json:"toxic_count"`
}

// SafeCount returns the number of lines that were not flagged toxic.
func (u *UploadBatchResult) SafeCount() int {
	return u.AnalyzedLines - u.ToxicCount
}

// ToxicPercent returns the toxic share of analyzed lines as a percentage.
func (u *UploadBatchResult) ToxicPercent() float64 {
	if u.AnalyzedLines == 0 {
		return 0
	}
	return float64(u.ToxicCount) / float64(u.AnalyzedLines) * 100
}
