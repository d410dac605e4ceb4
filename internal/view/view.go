// Package view renders the server-side pages. Templates are embedded in the
// binary; every page is parsed on top of its own clone of the shared layout
// so page-level "content" blocks never collide.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/register-my-marriage/internal/blog"
	"github.com/iliyamo/register-my-marriage/internal/model"
	"github.com/iliyamo/register-my-marriage/internal/theme"
)

//go:embed templates/*.html templates/pages/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Static is the embedded asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page names.
const (
	PagePicker     = "picker"
	PageHome       = "home"
	PageBlog       = "blog"
	PageBlogDetail = "blog_detail"
	PageContact    = "contact"
	PageContactOK  = "contact_sent"
	PageRegister   = "register"
	PageLogin      = "login"
	PageAccount    = "account"
)

// Page is the data every template receives. Data carries the page specific
// view model.
type Page struct {
	Title  string
	Theme  *theme.Theme
	User   *model.AuthUser
	Flash  string
	Error  string
	Errors map[string]string
	Data   any
}

// Field returns the inline error for a form field.
func (p Page) Field(name string) string { return p.Errors[name] }

// funcs are the template helpers. Theme colours and gradients are
// compiled-in constants, so "css" marks them safe for style contexts.
func funcs(assetVersion string) template.FuncMap {
	return template.FuncMap{
		"css":        func(s string) template.CSS { return template.CSS(s) },
		"formatDate": blog.FormatDate,
		"lower":      strings.ToLower,
		"kb":         func(n int) int { return (n + 1023) / 1024 },
		"inputType":  InputType,
		"asset": func(p string) string {
			if assetVersion == "" {
				return p
			}
			return p + "?v=" + assetVersion
		},
	}
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates. assetVersion is appended to asset
// URLs so a deploy invalidates browser caches.
func New(assetVersion string) (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs(assetVersion)).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse layout: %w", err)
	}
	names, err := fs.Glob(templateFiles, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, file := range names {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFiles, file); err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return r, nil
}

// MustNew is New for program start-up.
func MustNew(assetVersion string) *Renderer {
	r, err := New(assetVersion)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
