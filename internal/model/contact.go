package model

// ContactInquiry is the contact form payload. It is sent to the backend once
// and published as an event; the web tier does not keep it after success.
type ContactInquiry struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Religion         string `json:"religion"`
	QueryType        string `json:"queryType"`
	MarriageDate     string `json:"marriageDate,omitempty"`
	State            string `json:"state"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferredContact"`
}
