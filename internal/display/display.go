// Package display renders the terminal presentation of the questionnaire:
// question cards, the Likert option menu, progress, and the colorized
// results panel. It is a thin layer over the engine; all output goes
// through io.Writer for testability, and color is only enabled for TTYs.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/report"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/scoring"
	"github.com/imoreno/wellscreen/internal/session"
)

// OptionLabels are the Likert scale labels, indexed by answer value.
var OptionLabels = [4]string{"Nunca", "A veces", "Casi siempre", "Siempre"}

// Renderer writes questionnaire screens to a writer.
type Renderer struct {
	w        io.Writer
	colorize bool
}

// NewRenderer creates a Renderer. Color output is enabled only when the
// writer is a terminal.
func NewRenderer(w io.Writer) *Renderer {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) && !color.NoColor
	}
	return &Renderer{w: w, colorize: colorize}
}

// tierColor returns the color attribute for a tier.
func tierColor(t scoring.Tier) *color.Color {
	switch t {
	case scoring.TierGreen:
		return color.New(color.FgGreen, color.Bold)
	case scoring.TierYellow:
		return color.New(color.FgYellow, color.Bold)
	case scoring.TierOrange:
		return color.New(color.FgHiYellow, color.Bold)
	case scoring.TierRed:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Bold)
	}
}

// sprintTier renders a tier label, colorized when enabled.
func (r *Renderer) sprintTier(t scoring.Tier, text string) string {
	if r.colorize {
		return tierColor(t).Sprint(text)
	}
	return text
}

// QuestionCard renders the active question with its progress position,
// category, options, and the currently recorded answer if any.
func (r *Renderer) QuestionCard(q *session.Question, current *int) {
	fmt.Fprintf(r.w, "\nPregunta %d de %d", q.Number, q.Total)
	if q.Category != "" {
		fmt.Fprintf(r.w, "  ·  %s", q.Category)
	}
	fmt.Fprintf(r.w, "\n%s\n\n%s\n\n", r.progressBar(q.Number, q.Total), q.Text)

	for value, label := range OptionLabels {
		marker := " "
		if current != nil && *current == value {
			marker = ">"
		}
		fmt.Fprintf(r.w, " %s [%d] %s\n", marker, value, label)
	}
	fmt.Fprintf(r.w, "\nResponde 0-3")
	fmt.Fprintf(r.w, ", [a]nterior, [s]iguiente, [q] salir: ")
}

// progressBar renders a fixed-width bar like "[#####.........]".
func (r *Renderer) progressBar(current, total int) string {
	const width = 30
	filled := current * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// Results renders the final panel: tier headline, scores, subscale
// breakdown, narrative, and the safety notice when the alert is raised.
func (r *Renderer) Results(rec *result.Record) {
	tx := report.TextsForTier(rec.Tier)

	fmt.Fprintf(r.w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(r.w, "  Tu Semáforo Emocional\n")
	fmt.Fprintf(r.w, "  %s %s\n", tx.Emoji, r.sprintTier(rec.Tier, rec.Tier.Label()))
	fmt.Fprintf(r.w, "%s\n\n", strings.Repeat("=", 60))

	fmt.Fprintf(r.w, "Puntuación total: %d de %d puntos posibles\n\n", rec.TotalScore, rec.MaxScore)

	for _, cat := range catalog.Categories {
		status := rec.SubscaleStatus[cat]
		fmt.Fprintf(r.w, "  %-24s %2d  %s\n",
			cat.Label(), rec.CategoryScores[cat], r.sprintTier(status, strings.ToUpper(string(status))))
	}

	fmt.Fprintf(r.w, "\nInterpretación técnica:\n%s\n", wrap(tx.Interpretation, 72))
	fmt.Fprintf(r.w, "\nLectura profesional:\n%s\n", wrap(tx.Professional, 72))
	fmt.Fprintf(r.w, "\nRecomendación:\n%s\n", wrap(tx.Recommendation, 72))
	fmt.Fprintf(r.w, "\nPrioridad de contacto: %s (%s)\n", rec.Triage.Priority, rec.Triage.Type)

	if rec.SafetyAlert {
		notice := "IMPORTANTE: tus respuestas sugieren que podrías estar pasando por un momento difícil. Busca apoyo de inmediato con un profesional o una línea de ayuda de tu país."
		if r.colorize {
			notice = color.New(color.FgRed, color.Bold).Sprint(notice)
		}
		fmt.Fprintf(r.w, "\n%s\n", notice)
	}

	fmt.Fprintf(r.w, "\nEste resultado es una orientación y no constituye un diagnóstico clínico.\n")
}

// wrap breaks text into lines of at most width runes, on word boundaries.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		runes := len([]rune(word))
		if i > 0 {
			if lineLen+1+runes > width {
				sb.WriteString("\n")
				lineLen = 0
			} else {
				sb.WriteString(" ")
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += runes
	}
	return sb.String()
}
