// Package i18n resolves user-facing messages by identifier. Messages carry an
// English default so an unknown locale or a missing translation still yields
// readable text; placeholders use pongo2 syntax ({{ minLength }}).
package i18n

import (
	"errors"
	"strings"
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls fn.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

var (
	// ErrMissingTranslator is passed to the missing handler when no
	// Translator is configured.
	ErrMissingTranslator = errors.New("i18n: translator is nil")
	// ErrMissingTranslation is returned when neither the locale nor the
	// fallback locale has the key.
	ErrMissingTranslation = errors.New("i18n: missing translation")
)

// Resolve translates key through t, falling back to fallback and finally to
// the key itself.
func Resolve(t Translator, locale, key, fallback string, values map[string]any, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	var err error
	if t == nil {
		err = ErrMissingTranslator
	} else {
		var result string
		result, err = t.Translate(locale, key, values)
		if err == nil && strings.TrimSpace(result) != "" {
			return result
		}
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{values}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
