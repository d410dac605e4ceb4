package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
	"github.com/iliyamo/register-my-marriage/internal/middleware"
	"github.com/iliyamo/register-my-marriage/internal/model"
	"github.com/iliyamo/register-my-marriage/internal/queue"
	"github.com/iliyamo/register-my-marriage/internal/validation"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

type ContactSender interface {
	SubmitContact(ctx context.Context, in model.ContactInquiry) error
}

type EventPublisher interface {
	PublishContactSubmitted(ctx context.Context, ev queue.ContactSubmittedEvent) error
}

// ContactHandler serves the contact form. An accepted inquiry is also
// announced on the contact queue; a failed publish never changes the
// outcome the user sees.
type ContactHandler struct {
	API    ContactSender
	Events EventPublisher
	Now    func() time.Time
}

func NewContactHandler(api ContactSender, events EventPublisher) *ContactHandler {
	if api == nil || events == nil {
		panic("nil dependency passed to NewContactHandler")
	}
	return &ContactHandler{API: api, Events: events, Now: time.Now}
}

func (h *ContactHandler) ShowContact(c echo.Context) error {
	form := validation.ContactForm{PreferredContact: "email"}
	p := page(c, "Contact")
	if p.Theme != nil {
		form.Religion = p.Theme.Label
	}
	p.Data = view.NewContact(form)
	return c.Render(http.StatusOK, view.PageContact, p)
}

func (h *ContactHandler) Contact(c echo.Context) error {
	var form validation.ContactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	errs := form.Validate()
	p := page(c, "Contact")
	if strings.TrimSpace(form.Religion) == "" && p.Theme != nil {
		form.Religion = p.Theme.Label
	}
	p.Data = view.NewContact(form)

	if !errs.Ok() {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, view.PageContact, p)
	}

	s, err := store(c)
	if err != nil {
		return err
	}
	done, ok := s.BeginSubmit("contact")
	if !ok {
		p.Error = BusyMessage
		return c.Render(http.StatusConflict, view.PageContact, p)
	}
	defer done()

	inquiry := model.ContactInquiry{
		Name:             form.Name,
		Email:            form.Email,
		Phone:            form.Phone,
		Religion:         form.Religion,
		QueryType:        form.QueryType,
		MarriageDate:     form.MarriageDate,
		State:            form.State,
		Message:          strings.TrimSpace(form.Message),
		PreferredContact: form.PreferredContact,
	}
	ctx := c.Request().Context()
	if err := h.API.SubmitContact(ctx, inquiry); err != nil {
		p.Error = apiclient.UserMessage(err)
		return c.Render(statusFor(err), view.PageContact, p)
	}

	tenant := ""
	if p.Theme != nil {
		tenant = p.Theme.Slug()
	}
	ev := queue.NewContactSubmitted(tenant, inquiry, h.Now())
	if err := h.Events.PublishContactSubmitted(context.WithoutCancel(ctx), ev); err != nil {
		middleware.Logger(c).WithError(err).WithField("inquiry_id", ev.InquiryID).Debug("contact event not published")
	}
	return c.Render(http.StatusOK, view.PageContactOK, p)
}
