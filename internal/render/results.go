package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toxctl/toxctl/internal/model"
)

// Options controls the parts of the result view that depend on who is
// looking at it.
type Options struct {
	// Authenticated gates the favorite hint: it only renders for an active
	// session with a record id to favorite.
	Authenticated bool
}

// Results renders the full analysis view. Section order is fixed: crisis
// banner, status banner, text panes, sentiment, score bars, flagged
// categories, toxic words, favorite hint. Sections with nothing to show are
// omitted entirely rather than rendered empty.
func Results(result *model.AnalysisResult, opts Options) string {
	var sections []string

	if result.HasCrisisWarning() {
		sections = append(sections, CrisisBanner(result.CrisisRisk, result.CrisisResources))
	}

	sections = append(sections, StatusBanner(result.IsToxic))
	sections = append(sections, TextPanes(result.OriginalText, result.RewriteSuggestion))

	if result.SentimentOriginal != nil {
		sections = append(sections, Sentiment(result.SentimentOriginal, result.SentimentCleaned))
	}

	if len(result.ToxicityScores) > 0 {
		sections = append(sections, ScoreBars(result))
	}

	if section := FlaggedCategories(result.CategoriesFlagged); section != "" {
		sections = append(sections, section)
	}

	if section := ToxicWords(result.ToxicWordsFound); section != "" {
		sections = append(sections, section)
	}

	if opts.Authenticated && result.RecordID != "" {
		sections = append(sections, SubtleStyle.Render(StarIcon+" Saved to history — run 'toxctl favorite' to favorite this analysis."))
	}

	return strings.Join(sections, "\n")
}

// StatusBanner renders the toxic/safe verdict with its fixed copy.
func StatusBanner(isToxic bool) string {
	if isToxic {
		return ToxicBannerStyle.Render(WarnIcon+" "+ToxicBannerText) + "\n"
	}
	return SafeBannerStyle.Render(SafeIcon+" "+SafeBannerText) + "\n"
}

// TextPanes renders the original text beside the rewrite suggestion, with
// the fixed fallback string when no rewrite exists.
func TextPanes(original, rewrite string) string {
	if rewrite == "" {
		rewrite = RewriteFallback
	}

	originalPane := SubtleStyle.Render("Original") + "\n" + PaneStyle.Render(original)
	rewritePane := SubtleStyle.Render("Suggested Rewrite") + "\n" + PaneStyle.Render(rewrite)

	return lipgloss.JoinVertical(lipgloss.Left, originalPane, rewritePane) + "\n"
}
