package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Catalog is an in-memory Translator backed by per-locale message tables.
// Messages are pongo2 templates rendered with the values passed as the first
// argument to Translate.
type Catalog struct {
	mu        sync.RWMutex
	fallback  string
	messages  map[string]map[string]string
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

var _ Translator = (*Catalog)(nil)

// NewCatalog returns an empty catalog that falls back to fallbackLocale.
func NewCatalog(fallbackLocale string) *Catalog {
	return &Catalog{
		fallback:  normalize(fallbackLocale),
		messages:  make(map[string]map[string]string),
		set:       pongo2.NewSet("i18n", pongo2.MustNewLocalFileSystemLoader("")),
		templates: make(map[string]*pongo2.Template),
	}
}

// Add merges messages into the table for locale.
func (c *Catalog) Add(locale string, messages map[string]string) {
	locale = normalize(locale)
	c.mu.Lock()
	defer c.mu.Unlock()

	table := c.messages[locale]
	if table == nil {
		table = make(map[string]string, len(messages))
		c.messages[locale] = table
	}
	for id, msg := range messages {
		table[id] = msg
		delete(c.templates, locale+"\x00"+id)
	}
}

// Locales lists the locales with at least one message.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	return out
}

// Translate renders key for locale. The lookup tries the full locale, its
// base language, then the fallback locale. An optional map[string]any first
// argument supplies template values.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}
	found, msg, ok := c.lookup(locale, key)
	if !ok {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
	}

	var values map[string]any
	if len(args) > 0 {
		if m, isMap := args[0].(map[string]any); isMap {
			values = m
		}
	}
	return c.render(found+"\x00"+key, msg, values)
}

// Message resolves id for locale, falling back to defaultMessage rendered
// with the same values.
func (c *Catalog) Message(locale, id, defaultMessage string, values map[string]any) string {
	if out, err := c.Translate(locale, id, values); err == nil {
		return out
	}
	if defaultMessage == "" {
		return id
	}
	out, err := c.render("default\x00"+id, defaultMessage, values)
	if err != nil {
		return defaultMessage
	}
	return out
}

func (c *Catalog) lookup(locale, key string) (string, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range candidates(locale, c.fallback) {
		if msg, ok := c.messages[candidate][key]; ok {
			return candidate, msg, true
		}
	}
	return "", "", false
}

func (c *Catalog) render(cacheKey, msg string, values map[string]any) (string, error) {
	if !strings.Contains(msg, "{{") && !strings.Contains(msg, "{%") {
		return msg, nil
	}

	c.mu.RLock()
	tpl, ok := c.templates[cacheKey]
	c.mu.RUnlock()
	if !ok {
		compiled, err := c.set.FromString("{% autoescape off %}" + msg + "{% endautoescape %}")
		if err != nil {
			return "", fmt.Errorf("i18n: compile %q: %w", cacheKey, err)
		}
		c.mu.Lock()
		c.templates[cacheKey] = compiled
		c.mu.Unlock()
		tpl = compiled
	}

	if values == nil {
		values = map[string]any{}
	}
	out, err := tpl.Execute(pongo2.Context(values))
	if err != nil {
		return "", fmt.Errorf("i18n: render %q: %w", cacheKey, err)
	}
	return out, nil
}

func candidates(locale, fallback string) []string {
	locale = normalize(locale)
	out := make([]string, 0, 3)
	if locale != "" {
		out = append(out, locale)
		if i := strings.IndexByte(locale, '-'); i > 0 {
			out = append(out, locale[:i])
		}
	}
	if fallback != "" {
		out = append(out, fallback)
	}
	return out
}

func normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	return strings.ReplaceAll(locale, "_", "-")
}
