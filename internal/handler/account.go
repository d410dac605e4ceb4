package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
	"github.com/iliyamo/register-my-marriage/internal/document"
	"github.com/iliyamo/register-my-marriage/internal/validation"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

const (
	msgNotImage   = "Please upload an image file"
	msgTooLarge   = "Image must be 5 MB or smaller"
	pendingSuffix = "_pending"
)

// AccountHandler serves the signed-in account page and the registration
// document form. Both routes sit behind RequireLogin.
type AccountHandler struct {
	Documents *document.Service
}

func NewAccountHandler(docs *document.Service) *AccountHandler {
	if docs == nil {
		panic("nil document service passed to NewAccountHandler")
	}
	return &AccountHandler{Documents: docs}
}

// Account shows the stored document and its status, or the empty form when
// nothing was submitted yet. ?edit=1 opens the form over an existing
// document.
func (h *AccountHandler) Account(c echo.Context) error {
	s, err := store(c)
	if err != nil {
		return err
	}
	snap := s.Snapshot()
	p := page(c, "My account")

	doc, err := h.Documents.Current(c.Request().Context(), snap.Token)
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		return redirectLogin(c, s)
	case err != nil:
		p.Error = apiclient.UserMessage(err)
		p.Data = view.Account{Unavailable: true}
		return c.Render(statusFor(err), view.PageAccount, p)
	}

	ed := document.NewEditor(doc)
	if c.QueryParam("edit") == "1" {
		_ = ed.BeginEdit()
	}
	form := document.EditableFrom(doc)
	p.Data = view.NewAccount(doc, &form, ed.State() == document.StateEditingResubmit)
	return c.Render(http.StatusOK, view.PageAccount, p)
}

// SubmitDocument creates or updates the user's document. Every failure
// re-renders the form with the submitted values, including pending images.
func (h *AccountHandler) SubmitDocument(c echo.Context) error {
	s, err := store(c)
	if err != nil {
		return err
	}
	form, errs := parseDocumentForm(c)
	editing := c.FormValue("editing") == "1"
	p := page(c, "My account")

	p.Data = view.NewAccount(nil, &form, editing)

	if err := form.CheckRequired(); err != nil {
		p.Error = document.MissingRequiredMessage
		return c.Render(http.StatusUnprocessableEntity, view.PageAccount, p)
	}
	for k, v := range validation.Document(&form) {
		errs[k] = v
	}
	if !errs.Ok() {
		p.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, view.PageAccount, p)
	}

	done, ok := s.BeginSubmit("document")
	if !ok {
		p.Error = BusyMessage
		return c.Render(http.StatusConflict, view.PageAccount, p)
	}
	defer done()

	res, err := h.Documents.Submit(c.Request().Context(), s.Snapshot().Token, form)
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		return redirectLogin(c, s)
	case errors.Is(err, document.ErrMissingRequired):
		p.Error = document.MissingRequiredMessage
		return c.Render(http.StatusUnprocessableEntity, view.PageAccount, p)
	case err != nil:
		p.Error = apiclient.UserMessage(err)
		return c.Render(statusFor(err), view.PageAccount, p)
	}

	p.Flash = res.Message
	if res.Document == nil {
		p.Data = view.Account{Unavailable: true}
	} else {
		fresh := document.EditableFrom(res.Document)
		p.Data = view.NewAccount(res.Document, &fresh, false)
	}
	return c.Render(http.StatusOK, view.PageAccount, p)
}

// parseDocumentForm reads the text fields and images of the account form.
// A new file upload wins over an image carried from a previous attempt in
// the <key>_pending hidden field.
func parseDocumentForm(c echo.Context) (document.Document, validation.Errors) {
	var d document.Document
	errs := validation.Errors{}
	for _, f := range document.TextFields {
		d.SetText(f.Key, c.FormValue(f.Key))
	}
	for _, f := range document.ImageFields {
		img, err := uploadedImage(c, f.Key)
		if err == nil && img.IsEmpty() {
			img, err = document.ParseDataURI(c.FormValue(f.Key + pendingSuffix))
			if errors.Is(err, document.ErrBadDataURI) {
				img, err = document.Image{}, nil
			}
		}
		switch {
		case errors.Is(err, document.ErrImageTooLarge):
			errs[f.Key] = msgTooLarge
		case err != nil:
			errs[f.Key] = msgNotImage
		default:
			d.SetImage(f.Key, img)
		}
	}
	return d, errs
}

func uploadedImage(c echo.Context, key string) (document.Image, error) {
	fh, err := c.FormFile(key)
	if err != nil || fh.Size == 0 {
		return document.Image{}, nil
	}
	if fh.Size > document.MaxImageBytes {
		return document.Image{}, document.ErrImageTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return document.Image{}, fmt.Errorf("open upload %s: %w", key, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, document.MaxImageBytes+1))
	if err != nil {
		return document.Image{}, fmt.Errorf("read upload %s: %w", key, err)
	}
	return document.PendingImage(data)
}
