// Package sink delivers completed results to the external spreadsheet
// endpoint as a form-encoded POST. Delivery is fire-and-forget by design:
// the response is never read, failures are logged locally and never
// surfaced to the respondent, and nothing is ever retried. The dispatch
// guard keys on the session's completion token, so a result is submitted at
// most once per completed session no matter how often the results are
// re-read.
package sink

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/imoreno/wellscreen/internal/logger"
	"github.com/imoreno/wellscreen/internal/result"
	"github.com/imoreno/wellscreen/internal/session"
)

// Submitter sends one flattened submission to the results sink.
// Implementations must be safe for concurrent use.
type Submitter interface {
	Submit(sub result.Submission)
}

// FormSubmitter posts submissions to a configured web endpoint using the
// application/x-www-form-urlencoded encoding the sink expects.
type FormSubmitter struct {
	endpoint string
	client   *http.Client
	log      *logger.ConsoleLogger
}

// NewFormSubmitter creates a FormSubmitter for the given endpoint URL.
// If client is nil, http.DefaultClient is used.
func NewFormSubmitter(endpoint string, client *http.Client, log *logger.ConsoleLogger) *FormSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &FormSubmitter{endpoint: endpoint, client: client, log: log}
}

// Submit performs the one-shot POST. The sink's response is opaque to us:
// the status is not branched on and the body is discarded. Transport
// errors are logged and swallowed.
func (f *FormSubmitter) Submit(sub result.Submission) {
	body := url.Values{
		"timestamp":            {sub.Timestamp},
		"nombre":               {sub.Nombre},
		"email":                {sub.Email},
		"sessionId":            {sub.SessionID},
		"userAgent":            {sub.UserAgent},
		"scoreTotal":           {fmt.Sprintf("%d", sub.ScoreTotal)},
		"scoreEstres":          {fmt.Sprintf("%d", sub.ScoreEstres)},
		"scoreAnimo":           {fmt.Sprintf("%d", sub.ScoreAnimo)},
		"scoreConfianza":       {fmt.Sprintf("%d", sub.ScoreConfianza)},
		"safetyQuestionAnswer": {sub.SafetyQuestionAnswer},
	}.Encode()

	req, err := http.NewRequest(http.MethodPost, f.endpoint, strings.NewReader(body))
	if err != nil {
		f.logError("building sink request failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logError("result submission to sink failed: %v", err)
		return
	}
	// Opaque dispatch: status and body are intentionally ignored.
	resp.Body.Close()

	if f.log != nil {
		f.log.Debugf("result for session %s submitted to sink", sub.SessionID)
	}
}

func (f *FormSubmitter) logError(format string, args ...interface{}) {
	if f.log != nil {
		f.log.Errorf(format, args...)
	}
}

// NopSubmitter discards submissions. Used when no sink URL is configured.
type NopSubmitter struct{}

// Submit does nothing.
func (NopSubmitter) Submit(result.Submission) {}

// Dispatcher owns the one-shot dispatch decision for completed sessions.
type Dispatcher struct {
	submitter Submitter
	log       *logger.ConsoleLogger
	inflight  sync.WaitGroup
}

// NewDispatcher creates a Dispatcher over the given submitter.
func NewDispatcher(submitter Submitter, log *logger.ConsoleLogger) *Dispatcher {
	return &Dispatcher{submitter: submitter, log: log}
}

// Dispatch submits the record for a completed session exactly once.
//
// The submission is skipped entirely when the identity fields are missing
// (never sent with blank identity), and suppressed when the session's
// dispatch token was already claimed; neither case is an error. The actual
// delivery happens on its own goroutine and is never awaited, so Dispatch
// returns as soon as the decision is made. The return value reports
// whether a delivery was started.
func (d *Dispatcher) Dispatch(s *session.Session, rec *result.Record, id result.Identity, userAgent string) bool {
	if !id.Complete() {
		if d.log != nil {
			d.log.Debugf("skipping result submission for session %s: missing identity", s.ID())
		}
		return false
	}
	if !s.MarkDispatched() {
		return false
	}

	sub := result.NewSubmission(rec, id, s.SafetyAnswer(), userAgent)
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.submitter.Submit(sub)
	}()
	return true
}

// Wait blocks until in-flight submissions finish. Navigation never calls
// this; it exists so short-lived processes can flush the single attempt
// before exiting. The submitter's client timeout bounds the wait.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}
