package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toxctl/toxctl/internal/model"
)

func TestShowCleanedCard(t *testing.T) {
	tests := []struct {
		original *model.SentimentResult
		cleaned  *model.SentimentResult
		name     string
		want     bool
	}{
		{
			name:     "same label, delta within threshold",
			original: &model.SentimentResult{Label: "Negative", Polarity: -0.5},
			cleaned:  &model.SentimentResult{Label: "Negative", Polarity: -0.45},
			want:     false,
		},
		{
			name:     "same label, delta beyond threshold",
			original: &model.SentimentResult{Label: "Negative", Polarity: -0.5},
			cleaned:  &model.SentimentResult{Label: "Negative", Polarity: -0.1},
			want:     true,
		},
		{
			name:     "label changed, tiny delta",
			original: &model.SentimentResult{Label: "Negative", Polarity: -0.11},
			cleaned:  &model.SentimentResult{Label: "Neutral", Polarity: -0.09},
			want:     true,
		},
		{
			name:     "delta exactly at threshold",
			original: &model.SentimentResult{Label: "Neutral", Polarity: 0.0},
			cleaned:  &model.SentimentResult{Label: "Neutral", Polarity: 0.1},
			want:     false,
		},
		{
			name:     "missing cleaned sentiment",
			original: &model.SentimentResult{Label: "Negative", Polarity: -0.5},
			cleaned:  nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShowCleanedCard(tt.original, tt.cleaned))
		})
	}
}

func TestSentiment_CardCount(t *testing.T) {
	original := &model.SentimentResult{Label: "Negative", Polarity: -0.5, Confidence: 50}

	t.Run("only original card when unchanged", func(t *testing.T) {
		cleaned := &model.SentimentResult{Label: "Negative", Polarity: -0.45, Confidence: 45}
		out := Sentiment(original, cleaned)
		assert.Contains(t, out, "Original Text")
		assert.NotContains(t, out, "After Cleaning")
	})

	t.Run("both cards when sentiment moved", func(t *testing.T) {
		cleaned := &model.SentimentResult{Label: "Negative", Polarity: -0.1, Confidence: 10}
		out := Sentiment(original, cleaned)
		assert.Contains(t, out, "Original Text")
		assert.Contains(t, out, "After Cleaning")
		assert.Less(t, strings.Index(out, "Original Text"), strings.Index(out, "After Cleaning"))
	})
}
