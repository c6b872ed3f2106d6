// Package report renders a completed screening result as a Markdown
// document and converts it to HTML for export. The rendered report mirrors
// the original results screen: tier headline, total score, subscale
// breakdown, narrative sections, and the safety notice when the alert is
// raised.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/scoring"
)

// statusWord maps a subscale status tier to its display word.
func statusWord(t scoring.Tier) string {
	switch t {
	case scoring.TierGreen:
		return "verde"
	case scoring.TierYellow:
		return "amarillo"
	case scoring.TierOrange:
		return "naranja"
	case scoring.TierRed:
		return "rojo"
	default:
		return string(t)
	}
}

// Markdown renders the result record as a Markdown document.
func Markdown(rec *result.Record) string {
	tx := TextsForTier(rec.Tier)

	var sb strings.Builder
	sb.WriteString("# Tu Semáforo Emocional\n\n")
	fmt.Fprintf(&sb, "## %s %s\n\n", tx.Emoji, rec.Tier.Label())
	fmt.Fprintf(&sb, "**Puntuación total:** %d de %d puntos posibles\n\n", rec.TotalScore, rec.MaxScore)

	sb.WriteString("| Subescala | Puntaje | Estado |\n")
	sb.WriteString("|-----------|---------|--------|\n")
	for _, cat := range catalog.Categories {
		fmt.Fprintf(&sb, "| %s | %d | %s |\n",
			cat.Label(), rec.CategoryScores[cat], statusWord(rec.SubscaleStatus[cat]))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## Interpretación técnica\n\n%s\n\n", tx.Interpretation)
	fmt.Fprintf(&sb, "## Lectura profesional\n\n%s\n\n", tx.Professional)
	fmt.Fprintf(&sb, "## Recomendación\n\n%s\n\n", tx.Recommendation)
	fmt.Fprintf(&sb, "*Prioridad de contacto: %s (%s)*\n", rec.Triage.Priority, rec.Triage.Type)

	if rec.SafetyAlert {
		sb.WriteString("\n> **Importante:** tus respuestas sugieren que podrías estar pasando por un momento difícil. ")
		sb.WriteString("Busca apoyo de inmediato con un profesional o una línea de ayuda de tu país.\n")
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString("Este resultado es una orientación y no constituye un diagnóstico clínico.\n")

	return sb.String()
}

// HTML renders the result record as a standalone HTML fragment via
// goldmark (GFM tables enabled for the subscale breakdown).
func HTML(rec *result.Record) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(rec)), &buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
