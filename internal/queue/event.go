// Package queue defines message payloads exchanged over the message broker
// and the worker that consumes them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/register-my-marriage/internal/model"
)

// ContactQueue carries one message per accepted contact form.
const ContactQueue = "contact.submitted"

// ContactSubmittedEvent is published after a contact form passed local
// validation. InquiryID makes redelivery idempotent for the worker.
type ContactSubmittedEvent struct {
	InquiryID        string `json:"inquiry_id"`
	Tenant           string `json:"tenant"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Religion         string `json:"religion"`
	QueryType        string `json:"query_type"`
	MarriageDate     string `json:"marriage_date,omitempty"`
	State            string `json:"state"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferred_contact"`
	SubmittedAt      string `json:"submitted_at"`
}

// NewContactSubmitted stamps an inquiry with a fresh id and the current
// UTC time.
func NewContactSubmitted(tenant string, in model.ContactInquiry, now time.Time) ContactSubmittedEvent {
	return ContactSubmittedEvent{
		InquiryID:        uuid.NewString(),
		Tenant:           tenant,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Religion:         in.Religion,
		QueryType:        in.QueryType,
		MarriageDate:     in.MarriageDate,
		State:            in.State,
		Message:          in.Message,
		PreferredContact: in.PreferredContact,
		SubmittedAt:      now.UTC().Format(time.RFC3339),
	}
}
