package view

import (
	"github.com/iliyamo/register-my-marriage/internal/blog"
	"github.com/iliyamo/register-my-marriage/internal/document"
	"github.com/iliyamo/register-my-marriage/internal/model"
	"github.com/iliyamo/register-my-marriage/internal/theme"
	"github.com/iliyamo/register-my-marriage/internal/validation"
)

type Picker struct {
	Themes []theme.Theme
}

type BlogList struct {
	Articles   []model.Blog
	Categories []string
	Query      blog.Query
}

type Contact struct {
	Form       validation.ContactForm
	QueryTypes []string
	States     []string
	Channels   []validation.ContactChannel
}

func NewContact(form validation.ContactForm) Contact {
	return Contact{
		Form:       form,
		QueryTypes: validation.QueryTypes,
		States:     validation.IndianStates,
		Channels:   validation.ContactChannels,
	}
}

// ChannelLabel names the channel a reply will come through.
func (c Contact) ChannelLabel() string {
	for _, ch := range c.Channels {
		if ch.Value == c.Form.PreferredContact {
			return ch.Label
		}
	}
	return c.Form.PreferredContact
}

type Register struct {
	Form          validation.RegisterForm
	Strength      int
	StrengthLabel string
}

func NewRegister(form validation.RegisterForm) Register {
	score := validation.Strength(form.Password)
	return Register{Form: form, Strength: score, StrengthLabel: validation.StrengthLabel(score)}
}

type Login struct {
	Email string
}

// Section groups account form fields under one heading.
type Section struct {
	Name   string
	Fields []document.Field
}

// Account is the account page: the stored document with its status badge,
// and the form when the user is submitting or editing.
type Account struct {
	// Unavailable hides both summary and form when the stored document could
	// not be loaded.
	Unavailable bool

	Document *document.Document
	Status   document.Status
	Editing  bool
	Form     *document.Document
	Sections []Section
	Images   []document.Field

	States          []string
	Religions       []string
	MaritalStatuses []string
}

func NewAccount(doc *document.Document, form *document.Document, editing bool) Account {
	return Account{
		Document:        doc,
		Status:          document.StatusOf(doc),
		Editing:         editing,
		Form:            form,
		Sections:        sections(document.TextFields),
		Images:          document.ImageFields,
		States:          validation.IndianStates,
		Religions:       validation.Religions,
		MaritalStatuses: validation.MaritalStatuses,
	}
}

// ShowForm reports whether the form is rendered instead of the summary.
func (a Account) ShowForm() bool { return !a.Unavailable && (a.Document == nil || a.Editing) }

func sections(fields []document.Field) []Section {
	var out []Section
	for _, f := range fields {
		if n := len(out); n > 0 && out[n-1].Name == f.Section {
			out[n-1].Fields = append(out[n-1].Fields, f)
			continue
		}
		out = append(out, Section{Name: f.Section, Fields: []document.Field{f}})
	}
	return out
}

// Choices returns the option list for a select-backed document field, or
// nil for free text inputs.
func (a Account) Choices(key string) []string {
	switch key {
	case "selectedState":
		return a.States
	case "groomOtherInfoReligion", "brideOtherInfoReligion":
		return a.Religions
	case "groomOtherInfoMaritalStatus", "brideOtherInfoMaritalStatus":
		return a.MaritalStatuses
	}
	return nil
}

// InputType is the HTML input type for a text field.
func InputType(key string) string {
	switch key {
	case "dateOfMarriage":
		return "date"
	case "emailId", "groomEmail":
		return "email"
	case "mobileNumber", "groomMobile", "witness1PhoneNumber", "witness2PhoneNumber", "witness3PhoneNumber":
		return "tel"
	}
	return "text"
}
