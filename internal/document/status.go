package document

import "strings"

// Status is the display state derived from server-reported fields only.
type Status int

const (
	StatusNoDocument Status = iota
	StatusPending
	StatusVerified
	StatusActionRequired
)

// StatusOf derives the display state of a fetched document. The verified
// flag wins over a remark.
func StatusOf(d *Document) Status {
	switch {
	case d == nil:
		return StatusNoDocument
	case d.Verified:
		return StatusVerified
	case strings.TrimSpace(d.Remark) != "":
		return StatusActionRequired
	default:
		return StatusPending
	}
}

// Label is the badge text shown on the account page.
func (s Status) Label() string {
	switch s {
	case StatusVerified:
		return "Verified"
	case StatusActionRequired:
		return "Action Required"
	case StatusPending:
		return "Under Review"
	}
	return ""
}

func (s Status) String() string {
	if s == StatusNoDocument {
		return "no-document"
	}
	return strings.ToLower(strings.ReplaceAll(s.Label(), " ", "-"))
}
