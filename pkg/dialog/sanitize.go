package dialog

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-datefield/pkg/model"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from integration-supplied text. Entities the
// policy escapes are decoded again so the result is plain text.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(trimmed)))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// Sanitize returns a copy of d with markup removed from every display string.
// Names, values and defaults are left untouched.
func Sanitize(d model.Dialog) model.Dialog {
	out := d
	out.Title = sanitizeText(d.Title)
	out.IntroductionText = sanitizeText(d.IntroductionText)
	out.SubmitLabel = sanitizeText(d.SubmitLabel)

	out.Elements = make([]model.Element, len(d.Elements))
	for i, el := range d.Elements {
		el.DisplayName = sanitizeText(el.DisplayName)
		el.HelpText = sanitizeText(el.HelpText)
		el.Placeholder = sanitizeText(el.Placeholder)
		if len(el.Options) > 0 {
			options := make([]model.Option, len(el.Options))
			for j, opt := range el.Options {
				options[j] = model.Option{Text: sanitizeText(opt.Text), Value: opt.Value}
			}
			el.Options = options
		}
		if el.DateTimeConfig != nil {
			cfg := *el.DateTimeConfig
			el.DateTimeConfig = &cfg
		}
		out.Elements[i] = el
	}
	return out
}
