package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/scoring"
	"github.com/imoreno/wellscreen/internal/session"
	"github.com/imoreno/wellscreen/internal/triage"
)

func testRecord(tier scoring.Tier, alert bool) *result.Record {
	return &result.Record{
		SessionID:  "test",
		TotalScore: 24,
		MaxScore:   45,
		CategoryScores: map[catalog.Category]int{
			catalog.CategoryStress:     8,
			catalog.CategoryMood:       8,
			catalog.CategoryConfidence: 8,
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

func TestQuestionCard(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	q := &session.Question{Number: 3, Total: 16, Text: "¿Te cuesta relajarte?", Category: "Estrés y nerviosismo"}
	two := 2
	r.QuestionCard(q, &two)

	out := buf.String()
	for _, want := range []string{
		"Pregunta 3 de 16",
		"Estrés y nerviosismo",
		"¿Te cuesta relajarte?",
		"[0] Nunca",
		"[3] Siempre",
		"> [2] Casi siempre",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("QuestionCard output missing %q", want)
		}
	}
}

func TestQuestionCardSafetyHasNoCategory(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	q := &session.Question{Number: 16, Total: 16, Text: "¿Pregunta de seguridad?", Safety: true}
	r.QuestionCard(q, nil)

	out := buf.String()
	if strings.Contains(out, "·") {
		t.Error("safety question card should not render a category separator")
	}
	if strings.Contains(out, ">") {
		t.Error("unanswered question should not render a selection marker")
	}
}

func TestResults(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Results(testRecord(scoring.TierYellow, false))

	out := buf.String()
	for _, want := range []string{
		"Tu Semáforo Emocional",
		"AMARILLO – Desgaste en Proceso",
		"Puntuación total: 24 de 45",
		"Estrés y nerviosismo",
		"Prioridad de contacto: medium (structured)",
		"no constituye un diagnóstico clínico",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Results output missing %q", want)
		}
	}
	if strings.Contains(out, "IMPORTANTE") {
		t.Error("Results rendered the safety notice without an alert")
	}
	// Buffers are not TTYs: no ANSI escapes.
	if strings.Contains(out, "\x1b[") {
		t.Error("Results output contains ANSI escapes for a non-TTY writer")
	}
}

func TestResultsSafetyNotice(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Results(testRecord(scoring.TierGreen, true))

	if !strings.Contains(buf.String(), "IMPORTANTE") {
		t.Error("Results missing the safety notice for an alerted record")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
	}{
		{"short text", "hola mundo", 20},
		{"long text wraps", strings.Repeat("palabra ", 30), 40},
		{"empty", "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := wrap(tt.text, tt.width)
			for _, line := range strings.Split(out, "\n") {
				// A single word longer than the width is allowed to overflow.
				if len([]rune(line)) > tt.width && strings.Contains(line, " ") {
					t.Errorf("line %q exceeds width %d", line, tt.width)
				}
			}
			if strings.Join(strings.Fields(out), " ") != strings.Join(strings.Fields(tt.text), " ") {
				t.Error("wrap lost or reordered words")
			}
		})
	}
}
