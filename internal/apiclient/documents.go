package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/document"
)

// GetMyDocument returns the caller's document, or nil when none has been
// submitted yet. The backend answers with a list; when it holds more than
// one document the first is used and the ambiguity is logged and counted.
func (c *Client) GetMyDocument(ctx context.Context, token string) (*document.Document, error) {
	const op = "get_document"
	if err := checkToken(token, c.now()); err != nil {
		return nil, c.record(op, err)
	}
	r, err := c.do(ctx, op, http.MethodGet, "/document/getByUser", token, nil)
	if err != nil {
		return nil, c.record(op, err)
	}
	switch {
	case unauthorizedStatus(r.status):
		return nil, c.record(op, ErrUnauthorized)
	case r.status == http.StatusNotFound:
		return nil, c.record(op, nil)
	case !r.ok():
		return nil, c.record(op, &RequestError{Op: op, Status: r.status, Reason: r.message()})
	}

	var out struct {
		Data []document.Document `json:"data"`
	}
	if err := json.Unmarshal(r.body, &out); err != nil {
		return nil, c.record(op, &RequestError{Op: op, Status: r.status, Err: err})
	}
	if len(out.Data) == 0 {
		return nil, c.record(op, nil)
	}
	if n := len(out.Data); n > 1 {
		c.metrics.DocumentsAmbiguous.Inc()
		c.log.WithFields(logrus.Fields{"count": n, "using": out.Data[0].ID}).
			Warn("apiclient: backend returned several documents for one user")
	}
	d := out.Data[0]
	return &d, c.record(op, nil)
}

func (c *Client) CreateDocument(ctx context.Context, token string, body map[string]any) error {
	return c.mutateDocument(ctx, "create_document", http.MethodPost, "/document/", token, body, false)
}

func (c *Client) UpdateDocument(ctx context.Context, token, id string, body map[string]any) error {
	if id == "" {
		return &ValidationFailedError{Reason: "document id is required", Update: true}
	}
	return c.mutateDocument(ctx, "update_document", http.MethodPatch, "/document/updateById/"+url.PathEscape(id), token, body, true)
}

func (c *Client) mutateDocument(ctx context.Context, op, method, path, token string, body map[string]any, update bool) error {
	if err := checkToken(token, c.now()); err != nil {
		return c.record(op, err)
	}
	r, err := c.do(ctx, op, method, path, token, body)
	if err != nil {
		return c.record(op, err)
	}
	switch {
	case r.ok():
		return c.record(op, nil)
	case unauthorizedStatus(r.status):
		return c.record(op, ErrUnauthorized)
	case r.status >= http.StatusInternalServerError:
		return c.record(op, &RequestError{Op: op, Status: r.status, Reason: r.message()})
	}
	return c.record(op, &ValidationFailedError{Reason: r.message(), Update: update})
}
