package document

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	MessageCreated = "Registration details submitted successfully!"
	MessageUpdated = "Details updated successfully!"
)

// Gateway is the slice of the backend client the flow needs.
type Gateway interface {
	GetMyDocument(ctx context.Context, token string) (*Document, error)
	CreateDocument(ctx context.Context, token string, body map[string]any) error
	UpdateDocument(ctx context.Context, token, id string, body map[string]any) error
}

type Service struct {
	gw  Gateway
	log logrus.FieldLogger
}

func NewService(gw Gateway, log logrus.FieldLogger) *Service {
	return &Service{gw: gw, log: log}
}

// Result is the single success outcome of Submit.
type Result struct {
	Message string
	Updated bool
	// Document is the copy re-fetched after the mutation. It is nil when the
	// refetch failed; the mutation itself still succeeded and State stays
	// Submitting until the next fetch reports the server's view.
	Document *Document
	State    State
}

// Current fetches the user's document; nil means none submitted yet.
func (s *Service) Current(ctx context.Context, token string) (*Document, error) {
	return s.gw.GetMyDocument(ctx, token)
}

// Submit validates the required fields, then updates the user's existing
// document or creates a new one, and re-fetches it. The create/update choice
// is made against the server's current copy, not against what the form
// believes.
func (s *Service) Submit(ctx context.Context, token string, form Document) (Result, error) {
	if err := form.CheckRequired(); err != nil {
		return Result{}, err
	}
	current, err := s.gw.GetMyDocument(ctx, token)
	if err != nil {
		return Result{}, fmt.Errorf("load current document: %w", err)
	}
	ed := NewEditor(current)
	if current != nil {
		if err := ed.BeginEdit(); err != nil {
			return Result{}, err
		}
	}
	if err := ed.BeginSubmit(); err != nil {
		return Result{}, err
	}

	res := Result{Message: MessageCreated}
	if ed.UsesUpdate() {
		res.Message, res.Updated = MessageUpdated, true
		err = s.gw.UpdateDocument(ctx, token, current.ID, form.PatchBody())
	} else {
		err = s.gw.CreateDocument(ctx, token, form.CreateBody())
	}
	if err != nil {
		_ = ed.SubmitFailed()
		return Result{}, err
	}

	fresh, err := s.gw.GetMyDocument(ctx, token)
	if err != nil {
		s.log.WithError(err).Warn("document: refetch after submit failed")
		res.State = StateSubmitting
		return res, nil
	}
	_ = ed.SubmitSucceeded(fresh)
	res.Document, res.State = fresh, ed.State()
	return res, nil
}
