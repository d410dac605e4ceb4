package validation

import (
	"strings"
	"unicode"

	"github.com/iliyamo/register-my-marriage/internal/document"
)

const (
	msgEmail = "Valid email required"
	msgPhone = "Valid 10-digit Indian mobile number required"
)

type RegisterForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"simple_email"`
	Phone           string `form:"phone" validate:"indian_mobile"`
	Password        string `form:"password" validate:"min=8,has_upper"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
	AgreeToTerms    bool   `form:"agreeToTerms" validate:"required"`
}

var registerMessages = messages{
	"name":  {"*": "Full name is required"},
	"email": {"*": msgEmail},
	"phone": {"*": msgPhone},
	"password": {
		"min":       "Password must be at least 8 characters",
		"has_upper": "Must contain at least one uppercase letter",
	},
	"confirmPassword": {"*": "Passwords do not match"},
	"agreeToTerms":    {"*": "You must agree to continue"},
}

func (f *RegisterForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
}

func (f *RegisterForm) Validate() Errors {
	f.Normalize()
	return check(f, registerMessages)
}

type LoginForm struct {
	Email    string `form:"email" validate:"simple_email"`
	Password string `form:"password" validate:"required"`
}

var loginMessages = messages{
	"email":    {"*": msgEmail},
	"password": {"*": "Password is required"},
}

func (f *LoginForm) Validate() Errors {
	f.Email = strings.TrimSpace(f.Email)
	return check(f, loginMessages)
}

type ContactForm struct {
	Name             string `form:"name" validate:"required"`
	Email            string `form:"email" validate:"simple_email"`
	Phone            string `form:"phone" validate:"indian_mobile"`
	Religion         string `form:"religion"`
	QueryType        string `form:"queryType" validate:"query_type"`
	MarriageDate     string `form:"marriageDate" validate:"omitempty,datetime=2006-01-02"`
	State            string `form:"state" validate:"indian_state"`
	Message          string `form:"message" validate:"trimmed_min=20,max=1000"`
	PreferredContact string `form:"preferredContact" validate:"oneof=email phone whatsapp"`
}

var contactMessages = messages{
	"name":         {"*": "Name is required"},
	"email":        {"*": msgEmail},
	"phone":        {"*": msgPhone},
	"queryType":    {"*": "Please select a query type"},
	"marriageDate": {"*": "Enter a valid date"},
	"state":        {"*": "Please select your state"},
	"message": {
		"trimmed_min": "Please describe your query in at least 20 characters",
		"max":         "Please keep your message under 1000 characters",
	},
	"preferredContact": {"*": "Please choose how we should reply"},
}

func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	if f.PreferredContact == "" {
		f.PreferredContact = "email"
	}
}

func (f *ContactForm) Validate() Errors {
	f.Normalize()
	return check(f, contactMessages)
}

// documentRules are format checks on the account form. Presence of the
// required fields is enforced by document.CheckRequired.
var documentRules = []struct {
	key, tag, msg string
}{
	{"mobileNumber", "omitempty,indian_mobile", msgPhone},
	{"emailId", "omitempty,simple_email", msgEmail},
	{"selectedState", "omitempty,indian_state", "Please select your state"},
	{"dateOfMarriage", "omitempty,datetime=2006-01-02", "Enter a valid date"},
	{"groomEmail", "omitempty,simple_email", msgEmail},
	{"groomMobile", "omitempty,indian_mobile", msgPhone},
	{"groomOtherInfoReligion", "omitempty,religion", "Please select a religion"},
	{"groomOtherInfoMaritalStatus", "omitempty,marital_status", "Please select a marital status"},
	{"brideOtherInfoReligion", "omitempty,religion", "Please select a religion"},
	{"brideOtherInfoMaritalStatus", "omitempty,marital_status", "Please select a marital status"},
	{"witness1PhoneNumber", "omitempty,indian_mobile", msgPhone},
	{"witness2PhoneNumber", "omitempty,indian_mobile", msgPhone},
	{"witness3PhoneNumber", "omitempty,indian_mobile", msgPhone},
}

// Document checks the formats of the filled-in account form fields.
func Document(d *document.Document) Errors {
	out := Errors{}
	for _, r := range documentRules {
		if err := Validate.Var(d.Text(r.key), r.tag); err != nil {
			out[r.key] = r.msg
		}
	}
	return out
}

// Strength scores a password 0-4: length of at least 8, an uppercase
// letter, a digit and a symbol each add one.
func Strength(pwd string) int {
	if pwd == "" {
		return 0
	}
	score := 0
	if len(pwd) >= 8 {
		score++
	}
	if strings.IndexFunc(pwd, unicode.IsUpper) >= 0 {
		score++
	}
	if strings.IndexFunc(pwd, unicode.IsDigit) >= 0 {
		score++
	}
	if strings.IndexFunc(pwd, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }) >= 0 {
		score++
	}
	return score
}

// StrengthLabel names a Strength score.
func StrengthLabel(score int) string {
	switch score {
	case 1:
		return "Weak"
	case 2:
		return "Fair"
	case 3:
		return "Good"
	case 4:
		return "Strong"
	}
	return ""
}
