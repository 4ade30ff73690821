package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/toxctl/toxctl/internal/model"
)

const reportRule = "═══════════════════════════════════════════════════════════════"

// Report assembles the plain-text export of an analysis: a fixed banner,
// the original text, the status line, the toxicity score block, and the
// flagged-categories and sentiment blocks when those sections rendered.
// The format is stable; people archive these files.
func Report(result *model.AnalysisResult, now time.Time) string {
	var b strings.Builder

	b.WriteString(reportRule + "\n")
	b.WriteString("         TOXICITY DETECTION REPORT\n")
	b.WriteString(reportRule + "\n")
	b.WriteString("Generated: " + now.Format("2006-01-02 15:04:05") + "\n\n")

	b.WriteString("ORIGINAL TEXT:\n")
	b.WriteString(result.OriginalText + "\n\n")

	if result.IsToxic {
		b.WriteString(ToxicBannerText + "\n\n")
	} else {
		b.WriteString(SafeBannerText + "\n\n")
	}

	b.WriteString("TOXICITY SCORES:\n")
	for _, entry := range result.SortedScores() {
		b.WriteString(fmt.Sprintf("%s: %.2f%%\n", FormatCategory(entry.Category), entry.Score*100))
	}
	b.WriteString("\n")

	if len(result.CategoriesFlagged) > 0 {
		b.WriteString("FLAGGED CATEGORIES:\n")
		for _, category := range result.CategoriesFlagged {
			b.WriteString(FormatCategory(category) + "\n")
		}
		b.WriteString("\n")
	}

	if result.SentimentOriginal != nil {
		b.WriteString("SENTIMENT ANALYSIS:\n")
		b.WriteString(reportSentiment("Original Text", result.SentimentOriginal))
		if ShowCleanedCard(result.SentimentOriginal, result.SentimentCleaned) {
			b.WriteString(reportSentiment("After Cleaning", result.SentimentCleaned))
		}
		b.WriteString("\n")
	}

	b.WriteString(reportRule + "\n")
	b.WriteString("Report generated by toxctl\n")
	b.WriteString(reportRule + "\n")

	return b.String()
}

func reportSentiment(heading string, s *model.SentimentResult) string {
	return fmt.Sprintf("%s: %s (polarity %.2f, confidence %.1f%%)\n",
		heading, s.Label, s.Polarity, s.Confidence)
}
