// Package model defines the view models returned by the moderation API.
package model

import (
	"sort"
	"time"
)

// SentimentResult describes the sentiment of a piece of text as scored by
// the remote classifier.
type SentimentResult struct {
	Label        string  `json:"label"`
	Emoji        string  `json:"emoji"`
	Color        string  `json:"color"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Confidence   float64 `json:"confidence"`
	Score        float64 `json:"score"`
}

// AnalysisResult is the full payload returned by the analyze endpoint, and
// by the history endpoint when a single record is fetched.
type AnalysisResult struct {
	Timestamp            string             `json:"timestamp"`
	OriginalText         string             `json:"original_text"`
	CleanedText          string             `json:"cleaned_text"`
	RewriteSuggestion    string             `json:"rewrite_suggestion"`
	RewriteMethod        string             `json:"rewrite_method"`
	RecordID             string             `json:"record_id"`
	ToxicityScores       map[string]float64 `json:"toxicity_scores"`
	CategoriesFlagged    []string           `json:"categories_flagged"`
	ToxicWordsFound      []string           `json:"toxic_words_found"`
	SentimentOriginal    *SentimentResult   `json:"sentiment_original"`
	SentimentCleaned     *SentimentResult   `json:"sentiment_cleaned"`
	CrisisRisk           *CrisisRisk        `json:"crisis_risk"`
	CrisisResources      *CrisisResources   `json:"crisis_resources"`
	SentimentImprovement float64            `json:"sentiment_improvement"`
	OverallToxicity      float64            `json:"overall_toxicity"`
	TextLength           int                `json:"text_length"`
	ToxicWordCount       int                `json:"toxic_word_count"`
	IsToxic              bool               `json:"is_toxic"`
	SentimentImproved    bool               `json:"sentiment_improved"`
	MentalHealthWarning  bool               `json:"mental_health_warning"`
	Success              bool               `json:"success"`
}

// ScoreEntry pairs a toxicity category with its score.
type ScoreEntry struct {
	Category string
	Score    float64
}

// SortedScores returns the toxicity scores ordered by score descending.
// Ties break alphabetically so rendering is deterministic.
func (r *AnalysisResult) SortedScores() []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(r.ToxicityScores))
	for category, score := range r.ToxicityScores {
		entries = append(entries, ScoreEntry{Category: category, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// HasCrisisWarning reports whether the crisis banner should be shown: the
// server must have returned both a risk assessment and the warning flag.
func (r *AnalysisResult) HasCrisisWarning() bool {
	return r.CrisisRisk != nil && r.MentalHealthWarning
}

// ParseAPITime parses the timestamp formats the API emits. The backend is
// not consistent about timezone suffixes, so try a few layouts.
func ParseAPITime(value string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
