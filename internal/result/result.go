// Package result composes the derived outcome of a completed session: the
// total and per-category scores, the severity tier, the triage outcome, and
// the safety alert. Records are computed on demand and never stored.
package result

import (
	"errors"
	"fmt"
	"time"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/scoring"
	"github.com/imoreno/wellscreen/internal/session"
	"github.com/imoreno/wellscreen/internal/triage"
)

// ErrNotCompleted is returned when a record is requested for a session that
// has not reached the terminal state.
var ErrNotCompleted = errors.New("session is not completed")

// Identity carries the respondent fields collected by registration. Both
// fields are required for the external submission; a record itself never
// needs them.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Complete reports whether both identity fields are present.
func (id Identity) Complete() bool {
	return id.Name != "" && id.Email != ""
}

// Record is the full computed outcome for one completed session.
type Record struct {
	SessionID      string                           `json:"sessionId"`
	TotalScore     int                              `json:"totalScore"`
	MaxScore       int                              `json:"maxScore"`
	CategoryScores map[catalog.Category]int         `json:"categoryScores"`
	SubscaleStatus map[catalog.Category]scoring.Tier `json:"subscaleStatus"`
	Tier           scoring.Tier                     `json:"tier"`
	Triage         triage.Outcome                   `json:"triage"`
	SafetyAlert    bool                             `json:"safetyAlert"`
}

// Build computes the record for a completed session under the given
// profile. Every main item must have an answer by the time the session is
// completed; Build reports a defect otherwise rather than producing a
// partial score.
func Build(s *session.Session, profile *scoring.Profile) (*Record, error) {
	if !s.Completed() {
		return nil, ErrNotCompleted
	}

	cat := s.Catalog()
	answers := s.Answers()
	if len(answers) != cat.NumMain() {
		return nil, fmt.Errorf("completed session has %d answers for %d items", len(answers), cat.NumMain())
	}

	total, err := scoring.Total(cat, answers)
	if err != nil {
		return nil, err
	}
	perCategory, err := scoring.CategoryScores(cat, answers)
	if err != nil {
		return nil, err
	}

	tier := profile.Classify(total)
	status := make(map[catalog.Category]scoring.Tier, len(perCategory))
	for c, score := range perCategory {
		status[c] = profile.SubscaleStatus(c, score)
	}

	return &Record{
		SessionID:      s.ID(),
		TotalScore:     total,
		MaxScore:       cat.MaxScore(),
		CategoryScores: perCategory,
		SubscaleStatus: status,
		Tier:           tier,
		Triage:         triage.Evaluate(profile, tier, s.SafetyAlert()),
		SafetyAlert:    s.SafetyAlert(),
	}, nil
}

// Submission is the flattened row handed to the external results sink. The
// field names mirror the sink's expected form fields.
type Submission struct {
	Timestamp          string
	Nombre             string
	Email              string
	SessionID          string
	UserAgent          string
	ScoreTotal         int
	ScoreEstres        int
	ScoreAnimo         int
	ScoreConfianza     int
	SafetyQuestionAnswer string
}

// NewSubmission flattens a record into a sink row. The safety answer is
// transmitted raw (empty string when unanswered); userAgent describes the
// submitting client.
func NewSubmission(rec *Record, id Identity, safetyAnswer *int, userAgent string) Submission {
	safety := ""
	if safetyAnswer != nil {
		safety = fmt.Sprintf("%d", *safetyAnswer)
	}
	return Submission{
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
		Nombre:               id.Name,
		Email:                id.Email,
		SessionID:            rec.SessionID,
		UserAgent:            userAgent,
		ScoreTotal:           rec.TotalScore,
		ScoreEstres:          rec.CategoryScores[catalog.CategoryStress],
		ScoreAnimo:           rec.CategoryScores[catalog.CategoryMood],
		ScoreConfianza:       rec.CategoryScores[catalog.CategoryConfidence],
		SafetyQuestionAnswer: safety,
	}
}
