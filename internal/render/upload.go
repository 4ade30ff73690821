package render

import (
	"fmt"
	"strings"

	"github.com/toxctl/toxctl/internal/model"
)

const uploadPreviewWidth = 48

// UploadStats renders the aggregate block of a batch upload result.
func UploadStats(result *model.UploadBatchResult) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Batch Analysis"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("File:        %s\n", result.Filename))
	b.WriteString(fmt.Sprintf("Total lines: %d\n", result.AnalyzedLines))
	b.WriteString(fmt.Sprintf("Toxic:       %d (%.1f%%)\n", result.ToxicCount, result.ToxicPercent()))
	b.WriteString(fmt.Sprintf("Safe:        %d\n", result.SafeCount()))
	return b.String()
}

// UploadTable renders the per-line results table.
func UploadTable(results []model.UploadLineResult) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%4s  %-*s  %7s  %s\n", "#", uploadPreviewWidth, "Text Preview", "Score", "Status"))
	b.WriteString(strings.Repeat("─", 4+2+uploadPreviewWidth+2+7+2+8) + "\n")

	for _, line := range results {
		status := SuccessStyle.Render(SafeIcon + " Safe")
		if line.IsToxic {
			status = ErrorStyle.Render(WarnIcon + " Toxic")
		}
		b.WriteString(fmt.Sprintf("%4d  %-*s  %7.3f  %s\n",
			line.LineNumber,
			uploadPreviewWidth,
			Truncate(line.Text, uploadPreviewWidth),
			line.ToxicityScore,
			status))
	}
	return b.String()
}
