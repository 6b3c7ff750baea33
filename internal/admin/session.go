package admin

import (
	"context"
	"sync"

	"github.com/featherworks/aviary/internal/platform/apperr"
)

// State of an edit session.
type State string

const (
	// StateIdle means no record is being edited.
	StateIdle State = "idle"
	// StateEditing means a form is open, either for a new record or for
	// an existing one (EditingID set).
	StateEditing State = "editing"
)

// Session tracks one console user's edit lifecycle.
//
// The machine is Idle -> Editing -> Idle. A successful submit or an
// explicit cancel returns to Idle; a failed submit stays in Editing with
// the form intact so nothing the user typed is lost. While an image
// upload is in flight the session refuses to submit.
type Session struct {
	mu        sync.Mutex
	state     State
	kind      Kind
	editingID *int64
	form      []byte
	uploading bool
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

// State returns the current machine state.
func (session *Session) State() State {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state
}

// Form returns the last staged form payload.
func (session *Session) Form() []byte {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.form
}

// EditingID returns the id of the record being edited, or nil for a new
// record.
func (session *Session) EditingID() *int64 {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.editingID
}

// Begin opens an edit form. A nil id starts a new record; a set id edits
// an existing one.
func (session *Session) Begin(kind Kind, id *int64, form []byte) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.state = StateEditing
	session.kind = kind
	session.editingID = id
	session.form = form
}

// Stage replaces the form payload while editing.
func (session *Session) Stage(form []byte) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.form = form
}

// Cancel abandons the edit and returns to Idle.
func (session *Session) Cancel() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.reset()
}

// StartUpload marks an image upload in flight.
func (session *Session) StartUpload() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.uploading = true
}

// FinishUpload clears the upload flag.
func (session *Session) FinishUpload() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.uploading = false
}

// Uploading reports whether an upload is in flight.
func (session *Session) Uploading() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.uploading
}

// Submit pushes the staged form through the registry.
//
// A submit while an upload is in flight is refused. On success the
// session returns to Idle; on failure it stays in Editing with the form
// untouched.
func (session *Session) Submit(ctx context.Context, registry *Registry) (any, error) {
	session.mu.Lock()
	if session.uploading {
		session.mu.Unlock()
		return nil, apperr.Conflict("An image upload is still in progress")
	}
	if session.state != StateEditing {
		session.mu.Unlock()
		return nil, apperr.ValidationError("No edit in progress")
	}
	kind := session.kind
	editingID := session.editingID
	form := session.form
	session.mu.Unlock()

	result, err := registry.Submit(ctx, kind, form, editingID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.reset()
	session.mu.Unlock()
	return result, nil
}

// reset returns to Idle. Caller holds the lock.
func (session *Session) reset() {
	session.state = StateIdle
	session.kind = ""
	session.editingID = nil
	session.form = nil
}

// Sessions hands out one [Session] per console session ID.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: map[string]*Session{}}
}

// Get returns the session for an ID, creating it on first use.
func (s *Sessions) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		session = NewSession()
		s.sessions[id] = session
	}
	return session
}
