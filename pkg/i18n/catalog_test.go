package i18n_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-datefield/pkg/i18n"
)

func TestCatalogFallbackChain(t *testing.T) {
	c := i18n.NewCatalog("en")
	c.Add("en", map[string]string{"greeting": "Hello", "only.en": "English only"})
	c.Add("pt", map[string]string{"greeting": "Olá"})
	c.Add("pt-BR", map[string]string{"greeting": "Oi"})

	cases := []struct {
		locale string
		key    string
		want   string
	}{
		{"pt-BR", "greeting", "Oi"},
		{"pt_PT", "greeting", "Olá"},
		{"PT", "greeting", "Olá"},
		{"de", "greeting", "Hello"},
		{"pt", "only.en", "English only"},
	}
	for _, tc := range cases {
		got, err := c.Translate(tc.locale, tc.key)
		if err != nil {
			t.Fatalf("Translate(%q, %q): %v", tc.locale, tc.key, err)
		}
		if got != tc.want {
			t.Fatalf("Translate(%q, %q) = %q, want %q", tc.locale, tc.key, got, tc.want)
		}
	}

	if _, err := c.Translate("en", "missing"); !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestCatalogRendersPlaceholders(t *testing.T) {
	got := i18n.Text("en", i18n.IDTooShort, map[string]any{"minLength": 5})
	if got != "Minimum input length is 5." {
		t.Fatalf("unexpected message %q", got)
	}
	got = i18n.Text("es", i18n.IDTimezoneIndicator, map[string]any{"timezone": "CET"})
	if got != "Horas en CET" {
		t.Fatalf("unexpected message %q", got)
	}
	got = i18n.Text("en", i18n.IDDateOutOfBounds, map[string]any{"date": "Q&A day"})
	if got != "Q&A day is not available." {
		t.Fatalf("expected unescaped output, got %q", got)
	}
}

func TestCatalogMessageDefault(t *testing.T) {
	c := i18n.NewCatalog("en")
	got := c.Message("fr", "custom.id", "Pick {{ count }} days", map[string]any{"count": 2})
	if got != "Pick 2 days" {
		t.Fatalf("unexpected default rendering %q", got)
	}
	if got := c.Message("fr", "custom.id", "", nil); got != "custom.id" {
		t.Fatalf("expected id when no default, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	if got := i18n.Resolve(nil, "en", "k", "fallback", nil, nil); got != "fallback" {
		t.Fatalf("expected fallback without translator, got %q", got)
	}

	var gotErr error
	onMissing := func(locale, key string, args []any, err error) string {
		gotErr = err
		return "missing:" + key
	}
	if got := i18n.Resolve(nil, "en", "k", "fallback", nil, onMissing); got != "missing:k" {
		t.Fatalf("expected handler output, got %q", got)
	}
	if !errors.Is(gotErr, i18n.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}

	tr := i18n.TranslatorFunc(func(locale, key string, args ...any) (string, error) {
		return "[" + locale + "]" + key, nil
	})
	if got := i18n.Resolve(tr, "es", "k", "fallback", nil, nil); got != "[es]k" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestNewCatalogRendersPlaceholders(t *testing.T) {
	c := i18n.NewCatalog("en")
	c.Add("en", map[string]string{"too_short": "Minimum input length is {{ minLength }}."})

	got, err := c.Translate("en", "too_short", map[string]any{"minLength": 5})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Minimum input length is 5." {
		t.Fatalf("unexpected message %q", got)
	}
	if got := i18n.Text("es", i18n.IDTimeLabel, nil); got != "Hora" {
		t.Fatalf("unexpected default catalog message %q", got)
	}
}
