package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "single word", category: "toxicity", want: "Toxicity"},
		{name: "two words", category: "severe_toxicity", want: "Severe Toxicity"},
		{name: "three words", category: "identity_attack_x", want: "Identity Attack X"},
		{name: "already capitalized", category: "Threat", want: "Threat"},
		{name: "non-ascii first rune", category: "übergriff_verbal", want: "Übergriff Verbal"},
		{name: "empty", category: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCategory(tt.category))
		})
	}
}

func TestScoreColorBands(t *testing.T) {
	assert.Equal(t, SafeColor, ScoreColor(0.0))
	assert.Equal(t, SafeColor, ScoreColor(0.3))
	assert.Equal(t, CautionColor, ScoreColor(0.31))
	assert.Equal(t, CautionColor, ScoreColor(0.5))
	assert.Equal(t, WarningColor, ScoreColor(0.51))
	assert.Equal(t, WarningColor, ScoreColor(0.7))
	assert.Equal(t, DangerColor, ScoreColor(0.71))
	assert.Equal(t, DangerColor, ScoreColor(1.0))
}

func TestScoreIconBands(t *testing.T) {
	assert.Equal(t, SafeIcon, ScoreIcon(0.1))
	assert.Equal(t, CautionIcon, ScoreIcon(0.4))
	assert.Equal(t, WarnIcon, ScoreIcon(0.6))
	assert.Equal(t, ToxicIcon, ScoreIcon(0.9))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long…", Truncate("longer", 5))
	assert.Equal(t, "…", Truncate("ab", 1))
	assert.Equal(t, "héllo wo…", Truncate("héllo world", 9))
}
