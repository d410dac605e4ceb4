// Package theme is the tenant registry: a closed set of religion/category
// keys, each bound to one immutable bundle of copy, colours and legal
// references. Lookups never fail other than with ErrNotFound.
package theme

import (
	"errors"
	"strings"
)

// ErrNotFound is returned for slugs that do not name a tenant. Callers treat
// it as a navigational dead end, never as something to retry.
var ErrNotFound = errors.New("theme: tenant not found")

// Key identifies a tenant. The zero value is not a tenant.
type Key int

const (
	keyInvalid Key = iota
	KeyDharmic
	KeyIslam
	KeyChristianity
	KeyOther
	keySentinel // keep last; used to enumerate keys
)

// Keys returns every tenant key in display order.
func Keys() []Key {
	keys := make([]Key, 0, int(keySentinel)-1)
	for k := keyInvalid + 1; k < keySentinel; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Slug is the URL segment of a tenant.
func (k Key) Slug() string {
	switch k {
	case KeyDharmic:
		return "hinduism-sikhism-buddhism-jainism"
	case KeyIslam:
		return "islam"
	case KeyChristianity:
		return "christianity"
	case KeyOther:
		return "other"
	}
	return ""
}

func (k Key) String() string { return k.Slug() }

// Valid reports whether k is one of the declared tenants.
func (k Key) Valid() bool { return k > keyInvalid && k < keySentinel }

// Parse maps a URL slug to its Key.
func Parse(slug string) (Key, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, k := range Keys() {
		if k.Slug() == slug {
			return k, nil
		}
	}
	return keyInvalid, ErrNotFound
}

// HelpItem is one "how we help" card.
type HelpItem struct {
	Title string
	Body  string
}

// Colors are the per-tenant colour tokens used by the page templates.
type Colors struct {
	Accent string
	Light  string
	Dark   string
	Border string
}

// Theme is the configuration bundle of one tenant.
type Theme struct {
	Key         Key
	Label       string
	ShortLabel  string
	Subtitle    string
	HeroHeading string
	HeroSubtext string
	Description string
	BannerBg    string
	BannerImage string
	Colors      Colors
	LegalActs   []string
	HowWeHelp   []HelpItem
}

// Slug is shorthand for t.Key.Slug().
func (t Theme) Slug() string { return t.Key.Slug() }

// Path joins the tenant slug with the given page path, e.g. Path("login")
// on the islam tenant yields "/islam/login".
func (t Theme) Path(page string) string {
	page = strings.Trim(page, "/")
	if page == "" {
		return "/" + t.Slug()
	}
	return "/" + t.Slug() + "/" + page
}

// registry is built once at package init from bundle and never mutated.
var registry = func() map[Key]Theme {
	m := make(map[Key]Theme, int(keySentinel)-1)
	for _, k := range Keys() {
		m[k] = bundle(k)
	}
	return m
}()

// Lookup returns the theme for a declared key.
func Lookup(k Key) (Theme, error) {
	t, ok := registry[k]
	if !ok {
		return Theme{}, ErrNotFound
	}
	return t.clone(), nil
}

func (t Theme) clone() Theme {
	t.LegalActs = append([]string(nil), t.LegalActs...)
	t.HowWeHelp = append([]HelpItem(nil), t.HowWeHelp...)
	return t
}

// Resolve parses slug and returns its theme.
func Resolve(slug string) (Theme, error) {
	k, err := Parse(slug)
	if err != nil {
		return Theme{}, err
	}
	return Lookup(k)
}

// All returns every theme in display order.
func All() []Theme {
	out := make([]Theme, 0, len(registry))
	for _, k := range Keys() {
		out = append(out, registry[k].clone())
	}
	return out
}
