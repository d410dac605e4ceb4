package view

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/register-my-marriage/internal/blog"
	"github.com/iliyamo/register-my-marriage/internal/document"
	"github.com/iliyamo/register-my-marriage/internal/model"
	"github.com/iliyamo/register-my-marriage/internal/theme"
	"github.com/iliyamo/register-my-marriage/internal/validation"
)

func render(t *testing.T, r *Renderer, name string, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, p, nil))
	return buf.String()
}

func islam(t *testing.T) *theme.Theme {
	th, err := theme.Lookup(theme.KeyIslam)
	require.NoError(t, err)
	return &th
}

func TestNew_ParsesEveryPage(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)
	for _, name := range []string{
		PagePicker, PageHome, PageBlog, PageBlogDetail, PageContact,
		PageContactOK, PageRegister, PageLogin, PageAccount,
	} {
		assert.True(t, r.Has(name), name)
	}

	versioned := render(t, MustNew("42"), PagePicker, Page{Data: Picker{}})
	assert.Contains(t, versioned, `/static/site.css?v=42`)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing", Page{}, nil))
}

func TestRender_PickerListsTenants(t *testing.T) {
	r := MustNew("")
	out := render(t, r, PagePicker, Page{Data: Picker{Themes: theme.All()}})
	for _, th := range theme.All() {
		assert.Contains(t, out, `href="`+th.Path("")+`"`)
	}
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestRender_HomeUsesTheme(t *testing.T) {
	r := MustNew("")
	th := islam(t)
	out := render(t, r, PageHome, Page{Title: th.Label, Theme: th})
	assert.Contains(t, out, th.HeroHeading)
	assert.Contains(t, out, "linear-gradient")
	assert.Contains(t, out, `href="/islam/register"`)
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestRender_NavFollowsSession(t *testing.T) {
	r := MustNew("")
	th := islam(t)
	out := render(t, r, PageHome, Page{Theme: th})
	assert.Contains(t, out, `href="/islam/login"`)
	assert.NotContains(t, out, `action="/islam/logout"`)

	out = render(t, r, PageHome, Page{Theme: th, User: &model.AuthUser{Name: "Alice"}})
	assert.Contains(t, out, `action="/islam/logout"`)
	assert.Contains(t, out, `href="/islam/account"`)
}

func TestRender_BannerOnlyOne(t *testing.T) {
	r := MustNew("")
	out := render(t, r, PageLogin, Page{Theme: islam(t), Error: "Invalid credentials", Data: Login{Email: "a@b.co"}})
	assert.Equal(t, 1, strings.Count(out, `class="banner`))
	assert.Contains(t, out, "Invalid credentials")
	assert.Contains(t, out, `value="a@b.co"`)
}

func TestRender_ContactKeepsValuesAndErrors(t *testing.T) {
	r := MustNew("")
	form := validation.ContactForm{Name: "<b>Ravi</b>", State: "Kerala", PreferredContact: "whatsapp"}
	out := render(t, r, PageContact, Page{
		Theme:  islam(t),
		Errors: map[string]string{"message": "Please describe your query in at least 20 characters"},
		Data:   NewContact(form),
	})
	assert.Contains(t, out, "&lt;b&gt;Ravi&lt;/b&gt;")
	assert.Contains(t, out, `<option value="Kerala" selected>`)
	assert.Contains(t, out, `value="whatsapp" checked`)
	assert.Contains(t, out, "at least 20 characters")

	out = render(t, r, PageContactOK, Page{Theme: islam(t), Data: NewContact(form)})
	assert.Contains(t, out, "Message Received")
	assert.Contains(t, out, "WhatsApp")
}

func TestRender_BlogList(t *testing.T) {
	r := MustNew("")
	out := render(t, r, PageBlog, Page{Theme: islam(t), Data: BlogList{
		Articles:   blog.Fallback(),
		Categories: blog.Categories,
		Query:      blog.Query{Category: "Legal"},
	}})
	for _, a := range blog.Fallback() {
		assert.Contains(t, out, `/islam/blog/`+a.Slug)
	}
	assert.Contains(t, out, `<option value="Legal" selected>`)

	out = render(t, r, PageBlog, Page{Theme: islam(t), Data: BlogList{Categories: blog.Categories}})
	assert.Contains(t, out, "No articles match")
}

func TestRender_AccountSummaryAndForm(t *testing.T) {
	r := MustNew("")
	user := &model.AuthUser{Name: "Alice Rao"}
	doc := &document.Document{ID: "d1", MobileNumber: "9876543210", SelectedState: "Goa", Remark: "Blurry photo"}

	out := render(t, r, PageAccount, Page{Theme: islam(t), User: user, Data: NewAccount(doc, nil, false)})
	assert.Contains(t, out, "Welcome, Alice")
	assert.Contains(t, out, "Action Required")
	assert.Contains(t, out, "Blurry photo")
	assert.Contains(t, out, `/islam/account?edit=1`)
	assert.NotContains(t, out, "<form method=\"post\" action=\"/islam/account/document\"")

	img, err := document.PendingImage(pngBytes)
	require.NoError(t, err)
	form := document.EditableFrom(doc)
	form.GroomAadharFront = img
	form.BrideAadharBack = document.RemoteImage("https://cdn.example.com/b.png")

	out = render(t, r, PageAccount, Page{Theme: islam(t), User: user, Data: NewAccount(doc, &form, true)})
	assert.Contains(t, out, `action="/islam/account/document"`)
	assert.Contains(t, out, `name="editing" value="1"`)
	assert.Contains(t, out, `name="groomAadharFront_pending" value="data:image/png;base64,`)
	assert.Contains(t, out, `href="https://cdn.example.com/b.png"`)
	assert.Contains(t, out, `<option value="Goa" selected>`)
	assert.Contains(t, out, `value="9876543210"`)
	assert.NotContains(t, out, "ZgotmplZ")
}

func TestSections_GroupInOrder(t *testing.T) {
	got := sections(document.TextFields)
	var names []string
	total := 0
	for _, s := range got {
		names = append(names, s.Name)
		total += len(s.Fields)
	}
	assert.Equal(t, []string{document.SectionBasic, document.SectionGroom, document.SectionBride, document.SectionWitnesses}, names)
	assert.Equal(t, len(document.TextFields), total)
}

func TestStatic_ServesThemeAssets(t *testing.T) {
	st := Static()
	_, err := fs.Stat(st, "site.css")
	require.NoError(t, err)
	for _, th := range theme.All() {
		_, err := fs.Stat(st, strings.TrimPrefix(th.BannerImage, "/static/"))
		assert.NoError(t, err, th.BannerImage)
	}
}

// 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}
