package apiclient

import (
	"context"
	"net/http"

	"github.com/iliyamo/register-my-marriage/internal/model"
)

// SubmitContact posts an inquiry to the backend's contact endpoint.
func (c *Client) SubmitContact(ctx context.Context, in model.ContactInquiry) error {
	const op = "submit_contact"
	r, err := c.do(ctx, op, http.MethodPost, "/contact/", "", in)
	if err != nil {
		return c.record(op, err)
	}
	if !r.ok() {
		return c.record(op, &RequestError{Op: op, Status: r.status, Reason: r.message()})
	}
	return c.record(op, nil)
}
