package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() Document {
	return Document{
		MobileNumber:    "9876543210",
		SelectedState:   "Kerala",
		DateOfMarriage:  "2024-02-14",
		VenueOfMarriage: "Kochi",
	}
}

func TestFieldTablesCoverEveryAccessor(t *testing.T) {
	var d Document
	for _, f := range TextFields {
		require.Truef(t, d.SetText(f.Key, "x"), "text field %s", f.Key)
	}
	for _, f := range ImageFields {
		require.Truef(t, d.SetImage(f.Key, RemoteImage("r")), "image field %s", f.Key)
	}
	assert.False(t, d.SetText("remark", "x"))
	assert.False(t, d.SetImage("nope", Image{}))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, f := range TextFields {
		assert.Equal(t, "x", m[f.Key], f.Key)
	}
	for _, f := range ImageFields {
		assert.Equal(t, "r", m[f.Key], f.Key)
	}
}

func TestCheckRequired(t *testing.T) {
	d := filledForm()
	assert.NoError(t, d.CheckRequired())

	for _, key := range []string{"mobileNumber", "selectedState", "dateOfMarriage", "venueOfMarriage"} {
		d := filledForm()
		d.SetText(key, "  ")
		assert.ErrorIsf(t, d.CheckRequired(), ErrMissingRequired, key)
	}
}

func TestEditableFrom(t *testing.T) {
	src := &Document{
		ID:               "d1",
		Verified:         true,
		DateOfMarriage:   "2024-02-14T00:00:00.000Z",
		GroomMobile:      "9123456789",
		GroomAadharFront: RemoteImage("front.png"),
	}
	d := EditableFrom(src)
	assert.Equal(t, "2024-02-14", d.DateOfMarriage)
	assert.Equal(t, "9123456789", d.GroomMobile)
	assert.True(t, d.GroomAadharFront.IsRemote())
	assert.Empty(t, d.ID)
	assert.False(t, d.Verified)
	assert.Equal(t, Document{}, EditableFrom(nil))
}

func TestBodies(t *testing.T) {
	pending, err := PendingImage(pngBytes)
	require.NoError(t, err)
	d := filledForm()
	d.GroomAadharFront = pending
	d.BrideAadharFront = RemoteImage("stored.png")

	create := d.CreateBody()
	assert.Len(t, create, len(TextFields)+len(ImageFields))
	assert.Equal(t, pending.DataURI(), create["groomAadharFront"])
	assert.Equal(t, "", create["brideAadharFront"])
	assert.Equal(t, "", create["groomEmail"])

	patch := d.PatchBody()
	assert.Equal(t, "9876543210", patch["mobileNumber"])
	assert.Equal(t, pending.DataURI(), patch["groomAadharFront"])
	assert.NotContains(t, patch, "brideAadharFront")
	assert.NotContains(t, patch, "groomEmail")
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name  string
		doc   *Document
		want  Status
		label string
	}{
		{"none", nil, StatusNoDocument, ""},
		{"fresh", &Document{ID: "d"}, StatusPending, "Under Review"},
		{"remark", &Document{ID: "d", Remark: "Aadhaar blurry"}, StatusActionRequired, "Action Required"},
		{"verified", &Document{ID: "d", Verified: true}, StatusVerified, "Verified"},
		{"verified wins over remark", &Document{ID: "d", Verified: true, Remark: "old note"}, StatusVerified, "Verified"},
		{"whitespace remark", &Document{ID: "d", Remark: "  "}, StatusPending, "Under Review"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusOf(tt.doc)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
		})
	}
}
