package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toxctl/toxctl/internal/model"
)

const scoreBarWidth = 30

// ScoreBars renders the toxicity score bars, highest score first.
func ScoreBars(result *model.AnalysisResult) string {
	entries := result.SortedScores()
	if len(entries) == 0 {
		return ""
	}

	labelWidth := 0
	for _, entry := range entries {
		if w := lipgloss.Width(FormatCategory(entry.Category)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Toxicity Scores"))
	b.WriteString("\n")
	for _, entry := range entries {
		color := ScoreColor(entry.Score)
		style := lipgloss.NewStyle().Foreground(color)

		filled := int(entry.Score*scoreBarWidth + 0.5)
		if filled > scoreBarWidth {
			filled = scoreBarWidth
		}
		bar := style.Render(strings.Repeat("█", filled)) +
			SubtleStyle.Render(strings.Repeat("░", scoreBarWidth-filled))

		label := FormatCategory(entry.Category)
		padding := strings.Repeat(" ", labelWidth-lipgloss.Width(label))

		b.WriteString(fmt.Sprintf("%s %s%s %s %s\n",
			style.Render(ScoreIcon(entry.Score)),
			label,
			padding,
			bar,
			style.Render(fmt.Sprintf("%6.2f%%", entry.Score*100))))
	}
	return b.String()
}

// FlaggedCategories renders the flagged-category tags. The section is
// omitted entirely when nothing was flagged.
func FlaggedCategories(flagged []string) string {
	if len(flagged) == 0 {
		return ""
	}

	tags := make([]string, 0, len(flagged))
	for _, category := range flagged {
		tags = append(tags, TagStyle.Render(FormatCategory(category)))
	}

	return TitleStyle.Render("Flagged Categories") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tags...) + "\n"
}

// ToxicWords renders the redacted toxic-word badges. The section is omitted
// entirely when no words were found.
func ToxicWords(words []string) string {
	if len(words) == 0 {
		return ""
	}

	badges := make([]string, 0, len(words))
	for _, word := range words {
		badges = append(badges, BadgeStyle.Render(word))
	}

	return TitleStyle.Render("Detected Toxic Words") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, badges...) + "\n" +
		SubtleStyle.Render("These words were replaced with [REDACTED] in the cleaned text.") + "\n"
}
