package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toxctl/toxctl/internal/model"
)

// CrisisBanner renders the crisis resources banner: the risk assessment
// verbatim from the server plus up to three hotline cards, with the suicide
// prevention line emphasized above the other two. The controller performs
// no risk classification of its own.
func CrisisBanner(risk *model.CrisisRisk, resources *model.CrisisResources) string {
	if risk == nil {
		return ""
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(CrisisColor).
		Render("You are not alone — support is available")

	confidence := int(math.Round(risk.Confidence * 100))
	assessment := fmt.Sprintf("Risk level: %s (confidence %d%%)", risk.RiskLevel, confidence)

	parts := []string{heading, assessment}

	if resources != nil {
		if card := hotlineCard(resources.Hotlines.SuicidePrevention, true); card != "" {
			parts = append(parts, card)
		}

		secondary := make([]string, 0, 2)
		if card := hotlineCard(resources.Hotlines.Emergency, false); card != "" {
			secondary = append(secondary, card)
		}
		if card := hotlineCard(resources.Hotlines.MentalHealth, false); card != "" {
			secondary = append(secondary, card)
		}
		if len(secondary) > 0 {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, secondary...))
		}
	}

	return CrisisBannerStyle.Render(strings.Join(parts, "\n")) + "\n"
}

func hotlineCard(h *model.Hotline, primary bool) string {
	if h == nil {
		return ""
	}

	content := fmt.Sprintf("%s %s\ntel:%s", CrisisIcon, h.Name, h.Number)
	if primary {
		return CrisisPrimaryCardStyle.Render(content)
	}
	return CrisisCardStyle.Render(content)
}
