// Package render turns API view models into styled terminal output.
// Every function is pure: data in, string out, no document to traverse.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	// SafeColor indicates content below every toxicity threshold.
	SafeColor = lipgloss.Color("#38ef7d")
	// CautionColor indicates scores in the 0.3..0.5 band.
	CautionColor = lipgloss.Color("#ffa726")
	// WarningColor indicates scores in the 0.5..0.7 band.
	WarningColor = lipgloss.Color("#f5576c")
	// DangerColor indicates scores above the flagging threshold.
	DangerColor = lipgloss.Color("#ff6a00")
	// CrisisColor is used for the crisis resources banner.
	CrisisColor = lipgloss.Color("#b388ff")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// SafeBannerStyle formats the "content is safe" banner.
	SafeBannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SafeColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SafeColor).
			Padding(0, 2)

	// ToxicBannerStyle formats the "toxic content detected" banner.
	ToxicBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(DangerColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DangerColor).
				Padding(0, 2)

	// CrisisBannerStyle frames the crisis resources grid.
	CrisisBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(CrisisColor).
				Padding(1, 2)

	// CrisisPrimaryCardStyle emphasizes the suicide prevention hotline.
	CrisisPrimaryCardStyle = lipgloss.NewStyle().
				Bold(true).
				Border(lipgloss.ThickBorder()).
				BorderForeground(CrisisColor).
				Padding(0, 2)

	// CrisisCardStyle formats the secondary hotline cards.
	CrisisCardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	// PaneStyle frames the original and rewrite text panes.
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	// TagStyle formats flagged-category tags.
	TagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1a1a")).
			Background(WarningColor).
			Padding(0, 1).
			MarginRight(1)

	// BadgeStyle formats redacted toxic-word badges.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(DangerColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(DangerColor).
			Padding(0, 1).
			MarginRight(1)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SafeColor)
)

// Icons.
const (
	SafeIcon    = "✓"
	ToxicIcon   = "✗"
	WarnIcon    = "⚠"
	CautionIcon = "!"
	StarIcon    = "★"
	CrisisIcon  = "☎"
)

// Fixed banner copy, reproduced verbatim in reports.
const (
	ToxicBannerText = "TOXIC CONTENT DETECTED"
	SafeBannerText  = "CONTENT IS SAFE"

	// RewriteFallback is shown in the rewrite pane when the server offered
	// no suggestion.
	RewriteFallback = "No toxic content detected. Original text is appropriate."
)

// ScoreColor maps a toxicity score onto its severity color band.
func ScoreColor(score float64) lipgloss.Color {
	switch {
	case score > 0.7:
		return DangerColor
	case score > 0.5:
		return WarningColor
	case score > 0.3:
		return CautionColor
	default:
		return SafeColor
	}
}

// ScoreIcon maps a toxicity score onto its severity icon.
func ScoreIcon(score float64) string {
	switch {
	case score > 0.7:
		return ToxicIcon
	case score > 0.5:
		return WarnIcon
	case score > 0.3:
		return CautionIcon
	default:
		return SafeIcon
	}
}

// FormatCategory turns an API category token into display form:
// "severe_toxicity" becomes "Severe Toxicity".
func FormatCategory(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// FormatError formats an error message for the terminal.
func FormatError(message string) string {
	return ErrorStyle.Render(ToxicIcon + " " + message)
}

// FormatSuccess formats a success message for the terminal.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SafeIcon + " " + message)
}

// Truncate shortens text to max runes, appending an ellipsis when cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
