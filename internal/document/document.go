// Package document models a user's marriage-registration case and the
// create-or-update flow around it. The backend owns the record; this package
// holds the transient editable copy.
package document

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingRequired is returned before any network call when a required
// field is blank. MissingRequiredMessage is what the account page shows.
var ErrMissingRequired = errors.New("document: required fields missing")

const MissingRequiredMessage = "Please fill in all required fields: Mobile, State, Marriage Date, and Venue."

type Document struct {
	ID     string `json:"_id,omitempty"`
	UserID string `json:"userId,omitempty"`

	MobileNumber    string `json:"mobileNumber"`
	EmailID         string `json:"emailId"`
	SelectedState   string `json:"selectedState"`
	DateOfMarriage  string `json:"dateOfMarriage"`
	VenueOfMarriage string `json:"venueOfMarriage"`

	GroomEmail                  string `json:"groomEmail"`
	GroomMobile                 string `json:"groomMobile"`
	GroomOtherInfoOccupation    string `json:"groomOtherInfoOccupation"`
	GroomOtherInfoReligion      string `json:"groomOtherInfoReligion"`
	GroomOtherInfoMaritalStatus string `json:"groomOtherInfoMaritalStatus"`

	BrideOtherInfoOccupation    string `json:"brideOtherInfoOccupation"`
	BrideOtherInfoReligion      string `json:"brideOtherInfoReligion"`
	BrideOtherInfoMaritalStatus string `json:"brideOtherInfoMaritalStatus"`

	Witness1PhoneNumber            string `json:"witness1PhoneNumber"`
	Witness2PhoneNumber            string `json:"witness2PhoneNumber"`
	Witness3PhoneNumber            string `json:"witness3PhoneNumber"`
	AdditionalDocumentWitness1Name string `json:"additionalDocumentWitness1Name"`
	AdditionalDocumentWitness2Name string `json:"additionalDocumentWitness2Name"`
	AdditionalDocumentWitness3Name string `json:"additionalDocumentWitness3Name"`

	GroomAadharFront         Image `json:"groomAadharFront"`
	GroomAadharBack          Image `json:"groomAadharBack"`
	BrideAadharFront         Image `json:"brideAadharFront"`
	BrideAadharBack          Image `json:"brideAadharBack"`
	MarriageProofPhoto       Image `json:"marriageProofPhoto"`
	MarriageProofCoupleImage Image `json:"marriageProofCoupleImage"`

	Verified  bool       `json:"isDocumentVerified,omitempty"`
	Remark    string     `json:"remark,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Field describes one editable field, keyed by its wire name.
type Field struct {
	Key      string
	Label    string
	Section  string
	Required bool
}

// Sections in form order.
const (
	SectionBasic     = "Basic Information"
	SectionGroom     = "Groom Details"
	SectionBride     = "Bride Details"
	SectionWitnesses = "Witnesses"
	SectionDocuments = "Document Uploads"
)

var TextFields = []Field{
	{"mobileNumber", "Mobile Number", SectionBasic, true},
	{"emailId", "Email ID", SectionBasic, false},
	{"selectedState", "State", SectionBasic, true},
	{"dateOfMarriage", "Date of Marriage", SectionBasic, true},
	{"venueOfMarriage", "Venue of Marriage", SectionBasic, true},
	{"groomEmail", "Groom Email", SectionGroom, false},
	{"groomMobile", "Groom Mobile", SectionGroom, false},
	{"groomOtherInfoOccupation", "Occupation", SectionGroom, false},
	{"groomOtherInfoReligion", "Religion", SectionGroom, false},
	{"groomOtherInfoMaritalStatus", "Marital Status", SectionGroom, false},
	{"brideOtherInfoOccupation", "Occupation", SectionBride, false},
	{"brideOtherInfoReligion", "Religion", SectionBride, false},
	{"brideOtherInfoMaritalStatus", "Marital Status", SectionBride, false},
	{"additionalDocumentWitness1Name", "Witness 1 Name", SectionWitnesses, false},
	{"witness1PhoneNumber", "Witness 1 Phone", SectionWitnesses, false},
	{"additionalDocumentWitness2Name", "Witness 2 Name", SectionWitnesses, false},
	{"witness2PhoneNumber", "Witness 2 Phone", SectionWitnesses, false},
	{"additionalDocumentWitness3Name", "Witness 3 Name", SectionWitnesses, false},
	{"witness3PhoneNumber", "Witness 3 Phone", SectionWitnesses, false},
}

var ImageFields = []Field{
	{"groomAadharFront", "Groom Aadhaar (Front)", SectionDocuments, false},
	{"groomAadharBack", "Groom Aadhaar (Back)", SectionDocuments, false},
	{"brideAadharFront", "Bride Aadhaar (Front)", SectionDocuments, false},
	{"brideAadharBack", "Bride Aadhaar (Back)", SectionDocuments, false},
	{"marriageProofPhoto", "Marriage Proof Photo", SectionDocuments, false},
	{"marriageProofCoupleImage", "Couple Photograph", SectionDocuments, false},
}

func (d *Document) text(key string) *string {
	switch key {
	case "mobileNumber":
		return &d.MobileNumber
	case "emailId":
		return &d.EmailID
	case "selectedState":
		return &d.SelectedState
	case "dateOfMarriage":
		return &d.DateOfMarriage
	case "venueOfMarriage":
		return &d.VenueOfMarriage
	case "groomEmail":
		return &d.GroomEmail
	case "groomMobile":
		return &d.GroomMobile
	case "groomOtherInfoOccupation":
		return &d.GroomOtherInfoOccupation
	case "groomOtherInfoReligion":
		return &d.GroomOtherInfoReligion
	case "groomOtherInfoMaritalStatus":
		return &d.GroomOtherInfoMaritalStatus
	case "brideOtherInfoOccupation":
		return &d.BrideOtherInfoOccupation
	case "brideOtherInfoReligion":
		return &d.BrideOtherInfoReligion
	case "brideOtherInfoMaritalStatus":
		return &d.BrideOtherInfoMaritalStatus
	case "witness1PhoneNumber":
		return &d.Witness1PhoneNumber
	case "witness2PhoneNumber":
		return &d.Witness2PhoneNumber
	case "witness3PhoneNumber":
		return &d.Witness3PhoneNumber
	case "additionalDocumentWitness1Name":
		return &d.AdditionalDocumentWitness1Name
	case "additionalDocumentWitness2Name":
		return &d.AdditionalDocumentWitness2Name
	case "additionalDocumentWitness3Name":
		return &d.AdditionalDocumentWitness3Name
	}
	return nil
}

func (d *Document) image(key string) *Image {
	switch key {
	case "groomAadharFront":
		return &d.GroomAadharFront
	case "groomAadharBack":
		return &d.GroomAadharBack
	case "brideAadharFront":
		return &d.BrideAadharFront
	case "brideAadharBack":
		return &d.BrideAadharBack
	case "marriageProofPhoto":
		return &d.MarriageProofPhoto
	case "marriageProofCoupleImage":
		return &d.MarriageProofCoupleImage
	}
	return nil
}

// Text returns a text field by wire name; unknown keys read as "".
func (d *Document) Text(key string) string {
	if p := d.text(key); p != nil {
		return *p
	}
	return ""
}

// SetText sets a text field by wire name and reports whether the key exists.
func (d *Document) SetText(key, v string) bool {
	p := d.text(key)
	if p == nil {
		return false
	}
	*p = strings.TrimSpace(v)
	return true
}

func (d *Document) Image(key string) Image {
	if p := d.image(key); p != nil {
		return *p
	}
	return Image{}
}

func (d *Document) SetImage(key string, img Image) bool {
	p := d.image(key)
	if p == nil {
		return false
	}
	*p = img
	return true
}

// MarriageDate is the date part of DateOfMarriage, suitable for a date input.
func (d *Document) MarriageDate() string {
	s, _, _ := strings.Cut(d.DateOfMarriage, "T")
	return s
}

// CheckRequired enforces mobile, state, date and venue.
func (d *Document) CheckRequired() error {
	for _, f := range TextFields {
		if f.Required && strings.TrimSpace(d.Text(f.Key)) == "" {
			return ErrMissingRequired
		}
	}
	return nil
}

// EditableFrom copies the editable text fields of a fetched document into a
// fresh form copy. Images keep their remote references so the form can show
// "already uploaded".
func EditableFrom(src *Document) Document {
	var d Document
	if src == nil {
		return d
	}
	for _, f := range TextFields {
		d.SetText(f.Key, src.Text(f.Key))
	}
	d.DateOfMarriage = src.MarriageDate()
	for _, f := range ImageFields {
		d.SetImage(f.Key, src.Image(f.Key))
	}
	return d
}

// CreateBody is the full field set for POST /document/. Only pending images
// are sent; remote references and empty images go out as "".
func (d *Document) CreateBody() map[string]any {
	body := make(map[string]any, len(TextFields)+len(ImageFields))
	for _, f := range TextFields {
		body[f.Key] = d.Text(f.Key)
	}
	for _, f := range ImageFields {
		img := d.Image(f.Key)
		if img.IsPending() {
			body[f.Key] = img.DataURI()
		} else {
			body[f.Key] = ""
		}
	}
	return body
}

// PatchBody is the partial field set for PATCH /document/updateById/{id}:
// non-empty text fields and pending images only, so stored files are never
// overwritten with blanks.
func (d *Document) PatchBody() map[string]any {
	body := make(map[string]any)
	for _, f := range TextFields {
		if v := d.Text(f.Key); v != "" {
			body[f.Key] = v
		}
	}
	for _, f := range ImageFields {
		if img := d.Image(f.Key); img.IsPending() {
			body[f.Key] = img.DataURI()
		}
	}
	return body
}
