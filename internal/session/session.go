// Package session implements the questionnaire state machine: one
// respondent's answer store, position, and completion status, advanced
// strictly through the guarded operations Answer, Advance, Retreat and
// Reset.
//
// A Session is owned by a single caller and is not safe for concurrent use;
// callers that share a session across goroutines (the HTTP transport does)
// must serialize access themselves.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/scoring"
)

// State names the navigation states of a session.
type State string

const (
	// StateMain means a main catalog item is active.
	StateMain State = "main"
	// StateSafety means the standalone safety item is active.
	StateSafety State = "safety"
	// StateCompleted is the single terminal state. Only Reset leaves it.
	StateCompleted State = "completed"
)

// Navigation and input errors.
var (
	ErrValueOutOfRange = errors.New("answer value must be between 0 and 3")
	ErrUnanswered      = errors.New("current question has no answer yet")
	ErrCompleted       = errors.New("session is already completed")
)

// Question is the respondent-facing view of the active item: its position
// within the full battery (safety item included), its text, and the
// category label for display. Safety questions carry no category.
type Question struct {
	Number   int    `json:"number"` // 1-based
	Total    int    `json:"total"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	Safety   bool   `json:"safety"`
}

// Session is one respondent's end-to-end questionnaire state.
type Session struct {
	id           string
	cat          *catalog.Catalog
	answers      map[int]int
	safetyAnswer *int
	idx          int
	state        State
	safetyAlert  bool
	dispatched   bool
	startedAt    time.Time
}

// New creates a session positioned at the first main item with an empty
// answer store and a freshly generated id.
func New(cat *catalog.Catalog) *Session {
	return &Session{
		id:        newSessionID(),
		cat:       cat,
		answers:   make(map[int]int, cat.NumMain()),
		state:     StateMain,
		startedAt: time.Now().UTC(),
	}
}

// newSessionID generates an opaque correlation token: a UTC timestamp
// prefix plus a random UUID suffix. Unique with overwhelming probability
// and never reused across resets.
func newSessionID() string {
	return fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102150405"), uuid.NewString())
}

// ID returns the session's correlation token.
func (s *Session) ID() string { return s.id }

// StartedAt returns when the session (or its latest reset) began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// State returns the current navigation state.
func (s *Session) State() State { return s.state }

// Completed reports whether the session reached the terminal state.
func (s *Session) Completed() bool { return s.state == StateCompleted }

// SafetyAlert reports the cached safety monitor outcome. It is only ever
// set at the transition into the completed state and cleared by Reset.
func (s *Session) SafetyAlert() bool { return s.safetyAlert }

// Current returns the active question, or nil when the session is
// completed.
func (s *Session) Current() *Question {
	switch s.state {
	case StateMain:
		item := s.cat.Items[s.idx]
		return &Question{
			Number:   s.idx + 1,
			Total:    s.cat.TotalQuestions(),
			Text:     item.Text,
			Category: item.Category.Label(),
		}
	case StateSafety:
		return &Question{
			Number: s.cat.TotalQuestions(),
			Total:  s.cat.TotalQuestions(),
			Text:   s.cat.Safety.Text,
			Safety: true,
		}
	default:
		return nil
	}
}

// CurrentAnswer returns the recorded value for the active question, or nil
// when it has not been answered (or the session is completed).
func (s *Session) CurrentAnswer() *int {
	switch s.state {
	case StateMain:
		if v, ok := s.answers[s.cat.Items[s.idx].ID]; ok {
			value := v
			return &value
		}
	case StateSafety:
		if s.safetyAnswer != nil {
			value := *s.safetyAnswer
			return &value
		}
	}
	return nil
}

// Answer records a value for the active question. Recording twice for the
// same question replaces the previous value (upsert). Values outside the
// 0-3 scale are rejected with no state change, and answering a completed
// session is an error.
func (s *Session) Answer(value int) error {
	if value < catalog.ValueMin || value > catalog.ValueMax {
		return fmt.Errorf("%w: got %d", ErrValueOutOfRange, value)
	}

	switch s.state {
	case StateMain:
		s.answers[s.cat.Items[s.idx].ID] = value
	case StateSafety:
		v := value
		s.safetyAnswer = &v
	default:
		return ErrCompleted
	}
	return nil
}

// CanGoNext reports whether the active question has a recorded answer,
// which is the guard for Advance.
func (s *Session) CanGoNext() bool {
	return s.state != StateCompleted && s.CurrentAnswer() != nil
}

// CanGoPrevious reports whether Retreat would move: anywhere except the
// very first main item and the terminal state.
func (s *Session) CanGoPrevious() bool {
	switch s.state {
	case StateMain:
		return s.idx > 0
	case StateSafety:
		return true
	default:
		return false
	}
}

// Advance moves to the next question. It refuses to move past an
// unanswered question. The transition out of the safety item evaluates the
// safety monitor once, caches the alert on the session, and enters the
// terminal state.
func (s *Session) Advance() error {
	if s.state == StateCompleted {
		return ErrCompleted
	}
	if !s.CanGoNext() {
		return ErrUnanswered
	}

	switch s.state {
	case StateMain:
		if s.idx < s.cat.NumMain()-1 {
			s.idx++
		} else {
			s.state = StateSafety
		}
	case StateSafety:
		s.safetyAlert = scoring.SafetyAlert(s.safetyAnswer)
		s.state = StateCompleted
	}
	return nil
}

// Retreat moves back one question. At the first main item it is a no-op;
// from the terminal state it is an error, since reaching results ends
// navigation.
func (s *Session) Retreat() error {
	switch s.state {
	case StateMain:
		if s.idx > 0 {
			s.idx--
		}
	case StateSafety:
		s.state = StateMain
		s.idx = s.cat.NumMain() - 1
	default:
		return ErrCompleted
	}
	return nil
}

// Reset discards all progress: empty answer store, cleared safety answer
// and alert, cleared dispatch token, position back at the first main item,
// and a newly generated session id. The previous id is never reused.
func (s *Session) Reset() {
	s.id = newSessionID()
	s.answers = make(map[int]int, s.cat.NumMain())
	s.safetyAnswer = nil
	s.idx = 0
	s.state = StateMain
	s.safetyAlert = false
	s.dispatched = false
	s.startedAt = time.Now().UTC()
}

// Answers returns a copy of the recorded main-item answers keyed by item
// id.
func (s *Session) Answers() map[int]int {
	out := make(map[int]int, len(s.answers))
	for id, v := range s.answers {
		out[id] = v
	}
	return out
}

// SafetyAnswer returns a copy of the safety item's recorded value, or nil
// when unanswered.
func (s *Session) SafetyAnswer() *int {
	if s.safetyAnswer == nil {
		return nil
	}
	v := *s.safetyAnswer
	return &v
}

// Catalog returns the catalog this session runs against.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Dispatched reports whether the result submission for this completed
// session has already been claimed.
func (s *Session) Dispatched() bool { return s.dispatched }

// MarkDispatched claims the one-shot result submission for a completed
// session. It returns true exactly once per completed session; repeated
// calls and calls on an incomplete session return false. This is the
// idempotency guard for the external sink: it keys on session completion,
// not on any caller lifecycle.
func (s *Session) MarkDispatched() bool {
	if s.state != StateCompleted || s.dispatched {
		return false
	}
	s.dispatched = true
	return true
}
