package locale

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Catalog stores message templates per language and error code.
type Catalog struct {
	mu       sync.RWMutex
	fallback string
	langs    map[string]map[string]string
}

// New creates an empty catalog that falls back to the given language when a
// template is missing for the requested one.
func New(fallback language.Tag) *Catalog {
	return &Catalog{
		fallback: normalize(fallback.String()),
		langs:    make(map[string]map[string]string),
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared built-in catalog (English fallback, with
// Spanish, German and French translations preloaded). Registering templates
// on it affects every validator using the defaults.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(language.English)
		for lang, templates := range builtin {
			defaultCatalog.register(lang, templates)
		}
	})
	return defaultCatalog
}

// Register merges templates for a language into the catalog, overwriting
// existing codes.
func (c *Catalog) Register(tag language.Tag, templates map[string]string) {
	c.register(tag.String(), templates)
}

func (c *Catalog) register(lang string, templates map[string]string) {
	lang = normalize(lang)

	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.langs[lang]
	if !ok {
		m = make(map[string]string, len(templates))
		c.langs[lang] = m
	}
	for code, tpl := range templates {
		m[code] = tpl
	}
}

// Template returns the message template registered for the given language and
// code, or "" when none is found. Lookup tries the exact tag, the tag's base
// language, then the catalog fallback.
func (c *Catalog) Template(tag language.Tag, code string) string {
	keys := []string{normalize(tag.String())}
	if base, conf := tag.Base(); conf != language.No {
		keys = append(keys, normalize(base.String()))
	}
	keys = append(keys, c.fallback)

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, key := range keys {
		if m, ok := c.langs[key]; ok {
			if tpl, ok := m[code]; ok {
				return tpl
			}
		}
	}
	return ""
}

// Languages returns the language codes present in the catalog, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langs := make([]string, 0, len(c.langs))
	for lang := range c.langs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
