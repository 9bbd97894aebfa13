// Package i18n resolves the picker's user-facing strings by locale.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

// Message keys used outside of category titles.
const (
	KeyNotFound      = "emojiNotFound"
	KeySearchResults = "emojiSearchResults"
	KeyLoading       = "emojiLoading"
)

// Translator looks up a message by key. Unknown keys come back unchanged.
type Translator interface {
	T(key string) string
}

type localeFile struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

// Bundle holds every loaded locale.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

// LoadEmbedded loads the locales bundled with the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: glob locales: %w", err)
	}
	sort.Strings(paths)

	b := &Bundle{
		locales: map[string]map[string]string{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", p, err)
		}
		var f localeFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", p, err)
		}
		if err := b.add(p, f); err != nil {
			return nil, err
		}
	}
	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("i18n: base locale %s is not defined", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) add(p string, f localeFile) error {
	want := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if f.Locale != want {
		return fmt.Errorf("i18n: %s: locale %q must match file name %q", p, f.Locale, want)
	}
	if _, exists := b.locales[f.Locale]; exists {
		return fmt.Errorf("i18n: %s: locale %q defined twice", p, f.Locale)
	}
	if _, err := language.Parse(f.Locale); err != nil {
		return fmt.Errorf("i18n: %s: %w", p, err)
	}
	messages := make(map[string]string, len(f.Messages))
	for key, value := range f.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("i18n: %s: blank message key", p)
		}
		messages[key] = value
	}
	b.locales[f.Locale] = messages
	return nil
}

// Locales returns the loaded locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for l := range b.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Message returns key in locale, falling back to the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if m, ok := b.locales[locale]; ok {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	v, ok := b.locales[BaseLocale][key]
	return v, ok
}

// Printer is a Translator bound to one locale.
type Printer struct {
	bundle *Bundle
	locale string
}

// Printer matches locale against the loaded locales. Unknown or malformed
// locales use the base locale.
func (b *Bundle) Printer(locale string) *Printer {
	supported := []string{BaseLocale}
	for _, l := range b.Locales() {
		if l != BaseLocale {
			supported = append(supported, l)
		}
	}
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = language.MustParse(l)
	}

	matched := BaseLocale
	if tag, err := language.Parse(locale); err == nil {
		if _, idx, conf := language.NewMatcher(tags).Match(tag); conf != language.No {
			matched = supported[idx]
		}
	}
	return &Printer{bundle: b, locale: matched}
}

// Locale is the loaded locale the printer resolved to.
func (p *Printer) Locale() string {
	return p.locale
}

// T returns the message text verbatim; messages are not format strings.
func (p *Printer) T(key string) string {
	if v, ok := p.bundle.Message(p.locale, key); ok {
		return v
	}
	return key
}

// Identity is a Translator that returns every key unchanged.
type Identity struct{}

func (Identity) T(key string) string { return key }
