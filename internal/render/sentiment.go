package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toxctl/toxctl/internal/model"
)

// ShowCleanedCard decides whether the "after cleaning" sentiment card is
// rendered alongside the original: only when the label changed or the
// polarity moved by more than 0.1.
func ShowCleanedCard(original, cleaned *model.SentimentResult) bool {
	if original == nil || cleaned == nil {
		return false
	}
	return cleaned.Label != original.Label ||
		math.Abs(cleaned.Polarity-original.Polarity) > 0.1
}

// Sentiment renders the sentiment comparison section.
func Sentiment(original, cleaned *model.SentimentResult) string {
	if original == nil {
		return ""
	}

	cards := []string{sentimentCard("Original Text", original)}
	if ShowCleanedCard(original, cleaned) {
		cards = append(cards, sentimentCard("After Cleaning", cleaned))
	}

	return TitleStyle.Render("Sentiment Analysis") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n"
}

func sentimentCard(heading string, s *model.SentimentResult) string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color))

	var b strings.Builder
	b.WriteString(SubtleStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", s.Emoji, labelStyle.Render(s.Label)))
	b.WriteString(fmt.Sprintf("Polarity:   %.2f\n", s.Polarity))
	b.WriteString(fmt.Sprintf("Confidence: %.1f%%", s.Confidence))

	return PaneStyle.Render(b.String())
}
