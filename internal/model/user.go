package model

import "strings"

// AuthUser is the user record the backend returns on login. It is stored
// verbatim (as JSON) next to the bearer token in the session store.
//
// Fields:
//
//	ID    – backend identifier (_id).
//	Name  – display name.
//	Email – login email.
//	Phone – 10-digit mobile number.
//	Role  – backend role name, informational only.
type AuthUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// FirstName returns the first word of Name, used in the account greeting.
func (u AuthUser) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Valid reports whether the record carries enough to identify a user.
// A persisted record failing this check is treated as malformed.
func (u AuthUser) Valid() bool {
	return strings.TrimSpace(u.ID) != "" || strings.TrimSpace(u.Email) != ""
}
