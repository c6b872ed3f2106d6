package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imoreno/wellscreen/internal/report"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/session"
)

// handler implements the questionnaire endpoints.
type handler struct {
	c *Container
}

func newHandler(c *Container) *handler {
	return &handler{c: c}
}

// CreateSessionRequest is the request body for starting a session. The
// identity fields come from the registration form and may be empty; an
// incomplete identity only disables the external result submission.
type CreateSessionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// stateResponse is the navigation view returned by most endpoints.
type stateResponse struct {
	SessionID     string            `json:"sessionId"`
	State         session.State     `json:"state"`
	Completed     bool              `json:"completed"`
	Question      *session.Question `json:"question,omitempty"`
	CurrentAnswer *int              `json:"currentAnswer,omitempty"`
	CanGoNext     bool              `json:"canGoNext"`
	CanGoPrevious bool              `json:"canGoPrevious"`
}

func stateView(s *session.Session) stateResponse {
	return stateResponse{
		SessionID:     s.ID(),
		State:         s.State(),
		Completed:     s.Completed(),
		Question:      s.Current(),
		CurrentAnswer: s.CurrentAnswer(),
		CanGoNext:     s.CanGoNext(),
		CanGoPrevious: s.CanGoPrevious(),
	}
}

// GetCatalog handles GET /v1/catalog
func (h *handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":          h.c.Catalog.Items,
		"safety":         h.c.Catalog.Safety,
		"totalQuestions": h.c.Catalog.TotalQuestions(),
	})
}

// CreateSession handles POST /v1/sessions
func (h *handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	s := h.c.Registry.Create(result.Identity{Name: req.Name, Email: req.Email})
	h.c.Log.Debugf("session %s created", s.ID())
	writeJSON(w, http.StatusCreated, stateView(s))
}

// GetSession handles GET /v1/sessions/{id}
func (h *handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *session.Session, _ result.Identity) error {
		writeJSON(w, http.StatusOK, stateView(s))
		return nil
	})
}

// AnswerRequest is the request body for answering the active question.
type AnswerRequest struct {
	Value int `json:"value"`
}

// Answer handles POST /v1/sessions/{id}/answer
func (h *handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.withSession(w, r, func(s *session.Session, _ result.Identity) error {
		if err := s.Answer(req.Value); err != nil {
			switch {
			case errors.Is(err, session.ErrValueOutOfRange):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, session.ErrCompleted):
				writeError(w, http.StatusConflict, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return nil
		}
		writeJSON(w, http.StatusOK, stateView(s))
		return nil
	})
}

// Advance handles POST /v1/sessions/{id}/advance
func (h *handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *session.Session, _ result.Identity) error {
		if err := s.Advance(); err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return nil
		}
		writeJSON(w, http.StatusOK, stateView(s))
		return nil
	})
}

// Retreat handles POST /v1/sessions/{id}/retreat
func (h *handler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *session.Session, _ result.Identity) error {
		if err := s.Retreat(); err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return nil
		}
		writeJSON(w, http.StatusOK, stateView(s))
		return nil
	})
}

// Reset handles POST /v1/sessions/{id}/reset. The response carries the
// newly generated session id; the old id is gone.
func (h *handler) Reset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s, err := h.c.Registry.Reset(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	h.c.Log.Debugf("session %s reset (was %s)", s.ID(), id)
	writeJSON(w, http.StatusOK, stateView(s))
}

// GetResult handles GET /v1/sessions/{id}/result. The first successful
// read of a completed session triggers the one-shot result submission;
// re-reads return the same record without re-dispatching. With
// ?format=html the rendered report is returned instead of JSON.
func (h *handler) GetResult(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(s *session.Session, identity result.Identity) error {
		rec, err := result.Build(s, h.c.Profile)
		if err != nil {
			if errors.Is(err, result.ErrNotCompleted) {
				writeError(w, http.StatusConflict, "session is not completed")
				return nil
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return nil
		}

		// Fire-and-forget: never awaited, never reflected in the response.
		h.c.Dispatcher.Dispatch(s, rec, identity, h.c.UserAgent)

		if r.URL.Query().Get("format") == "html" {
			html, err := report.HTML(rec)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return nil
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(html)
			return nil
		}

		writeJSON(w, http.StatusOK, rec)
		return nil
	})
}

// withSession resolves the path id and runs fn under the registry lock,
// mapping unknown ids to 404.
func (h *handler) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session, result.Identity) error) {
	id := mux.Vars(r)["id"]
	if err := h.c.Registry.With(id, fn); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
