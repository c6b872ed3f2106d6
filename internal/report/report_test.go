package report

import (
	"strings"
	"testing"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/scoring"
	"github.com/imoreno/wellscreen/internal/triage"
)

func sampleRecord(tier scoring.Tier, alert bool) *result.Record {
	return &result.Record{
		SessionID:  "20250101000000-test",
		TotalScore: 30,
		MaxScore:   45,
		CategoryScores: map[catalog.Category]int{
			catalog.CategoryStress:     10,
			catalog.CategoryMood:       10,
			catalog.CategoryConfidence: 10,
		},
		SubscaleStatus: map[catalog.Category]scoring.Tier{
			catalog.CategoryStress:     scoring.TierRed,
			catalog.CategoryMood:       scoring.TierRed,
			catalog.CategoryConfidence: scoring.TierRed,
		},
		Tier:        tier,
		Triage:      triage.ForTier(tier),
		SafetyAlert: alert,
	}
}

func TestTextsForTierCoversAllTiers(t *testing.T) {
	for _, tier := range scoring.Tiers {
		tx := TextsForTier(tier)
		if tx.Interpretation == "" || tx.Professional == "" || tx.Recommendation == "" {
			t.Errorf("TextsForTier(%q) has empty sections", tier)
		}
	}
	// Unknown tiers fall back to red rather than an empty narrative.
	if TextsForTier(scoring.Tier("magenta")) != TextsForTier(scoring.TierRed) {
		t.Error("unknown tier should fall back to the red narrative")
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleRecord(scoring.TierYellow, false))

	for _, want := range []string{
		"# Tu Semáforo Emocional",
		"AMARILLO – Desgaste en Proceso",
		"**Puntuación total:** 30 de 45",
		"Estrés y nerviosismo | 10",
		"## Interpretación técnica",
		"## Lectura profesional",
		"## Recomendación",
		"Prioridad de contacto: medium (structured)",
		"no constituye un diagnóstico clínico",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q", want)
		}
	}

	if strings.Contains(md, "Importante:") {
		t.Error("Markdown() includes the safety notice without an alert")
	}
}

func TestMarkdownSafetyNotice(t *testing.T) {
	md := Markdown(sampleRecord(scoring.TierGreen, true))
	if !strings.Contains(md, "Importante:") {
		t.Error("Markdown() missing the safety notice for an alerted record")
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(sampleRecord(scoring.TierRed, false))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	got := string(html)
	for _, want := range []string{
		"<h1", "Tu Semáforo Emocional",
		"<table>", "Confianza y disfrute",
		"ROJO – Alerta Emocional",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() missing %q", want)
		}
	}
}
