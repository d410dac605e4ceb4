package document

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event does not apply to the
// editor's current state.
var ErrInvalidTransition = errors.New("document: invalid state transition")

// State is a step of the create/update flow for one user.
type State int

const (
	StateNoDocument State = iota
	StateSubmitting
	StatePending
	StateVerified
	StateActionRequired
	StateEditingResubmit
)

func (s State) String() string {
	switch s {
	case StateNoDocument:
		return "NoDocument"
	case StateSubmitting:
		return "Submitting"
	case StatePending:
		return "Pending"
	case StateVerified:
		return "Verified"
	case StateActionRequired:
		return "ActionRequired"
	case StateEditingResubmit:
		return "EditingResubmit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func stateFor(st Status) State {
	switch st {
	case StatusVerified:
		return StateVerified
	case StatusActionRequired:
		return StateActionRequired
	case StatusPending:
		return StatePending
	}
	return StateNoDocument
}

// Editor tracks the flow for one fetched document. It is not safe for
// concurrent use; the per-browser submission gate serialises submits.
type Editor struct {
	state  State
	before State
	doc    *Document
}

// NewEditor starts from the state the server reports for doc.
func NewEditor(doc *Document) *Editor {
	return &Editor{state: stateFor(StatusOf(doc)), doc: doc}
}

func (e *Editor) State() State { return e.state }

// Document is the last server copy the editor saw, nil before the first
// submission.
func (e *Editor) Document() *Document { return e.doc }

// Editing reports whether the form is shown rather than the status view.
func (e *Editor) Editing() bool {
	return e.state == StateNoDocument || e.state == StateEditingResubmit
}

// UsesUpdate reports whether the next submission must PATCH the existing
// document instead of creating one.
func (e *Editor) UsesUpdate() bool { return e.doc != nil && e.doc.ID != "" }

// BeginEdit reopens a submitted document for changes.
func (e *Editor) BeginEdit() error {
	switch e.state {
	case StatePending, StateVerified, StateActionRequired:
		e.state = StateEditingResubmit
		return nil
	}
	return fmt.Errorf("%w: edit from %s", ErrInvalidTransition, e.state)
}

// CancelEdit leaves EditingResubmit without submitting.
func (e *Editor) CancelEdit() error {
	if e.state != StateEditingResubmit {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, e.state)
	}
	e.state = stateFor(StatusOf(e.doc))
	return nil
}

func (e *Editor) BeginSubmit() error {
	switch e.state {
	case StateNoDocument, StateEditingResubmit:
		e.before = e.state
		e.state = StateSubmitting
		return nil
	}
	return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, e.state)
}

// SubmitSucceeded moves to whatever the refetched document reports. A nil
// refetch lands back in NoDocument.
func (e *Editor) SubmitSucceeded(refetched *Document) error {
	if e.state != StateSubmitting {
		return fmt.Errorf("%w: success from %s", ErrInvalidTransition, e.state)
	}
	e.doc = refetched
	e.state = stateFor(StatusOf(refetched))
	return nil
}

// SubmitFailed returns to the state the submission started from so the
// user can retry.
func (e *Editor) SubmitFailed() error {
	if e.state != StateSubmitting {
		return fmt.Errorf("%w: failure from %s", ErrInvalidTransition, e.state)
	}
	e.state = e.before
	return nil
}
