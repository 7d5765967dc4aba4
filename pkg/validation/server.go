package validation

import (
	"sort"
	"strings"

	"github.com/goliatone/go-datefield/pkg/model"
)

// SubmitResponse is the body an integration returns for a dialog submission.
type SubmitResponse struct {
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// SubmitOutcome is the client's reading of a SubmitResponse.
type SubmitOutcome struct {
	// Fields holds messages for elements present in the dialog.
	Fields map[string]string
	// Form holds the generic error and form-level messages.
	Form []string
	// Dropped lists error keys that matched no element, sorted.
	Dropped []string
	// Complete reports whether the dialog may close.
	Complete bool
}

// ErrorsMatchElements reports whether any key of errors names one of the
// elements.
func ErrorsMatchElements(errors map[string]string, elements []model.Element) bool {
	for name := range errors {
		for _, el := range elements {
			if el.Name == name {
				return true
			}
		}
	}
	return false
}

// FilterServerErrors returns the subset of errors that address an element of
// d, keyed by element name.
func FilterServerErrors(d model.Dialog, errors map[string]string) map[string]string {
	return InterpretResponse(d, SubmitResponse{Errors: errors}).Fields
}

// InterpretResponse maps a submission response onto d. Error keys are
// normalised first, so "submission.start_date", "/submission/start_date" and
// "start_date" all address the start_date element. Keys that address no
// element are dropped. The dialog completes when no field error survives and
// the response carries no generic error.
func InterpretResponse(d model.Dialog, resp SubmitResponse) SubmitOutcome {
	out := SubmitOutcome{}

	names := make(map[string]struct{}, len(d.Elements))
	for _, el := range d.Elements {
		names[el.Name] = struct{}{}
	}

	var form []string
	for rawKey, message := range resp.Errors {
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if isFormLevelKey(rawKey) {
			form = append(form, message)
			continue
		}
		name, ok := mapErrorKey(rawKey, names)
		if !ok {
			out.Dropped = append(out.Dropped, rawKey)
			continue
		}
		if out.Fields == nil {
			out.Fields = make(map[string]string)
		}
		if existing, dup := out.Fields[name]; dup && existing != message {
			message = existing + " " + message
		}
		out.Fields[name] = message
	}
	sort.Strings(out.Dropped)
	sort.Strings(form)

	out.Form = normalizeMessages(append([]string{resp.Error}, form...))
	out.Complete = len(out.Fields) == 0 && strings.TrimSpace(resp.Error) == ""
	return out
}

func mapErrorKey(raw string, names map[string]struct{}) (string, bool) {
	if _, ok := names[raw]; ok {
		return raw, true
	}
	segments := dropWrapperSegments(parsePathSegments(raw))
	if len(segments) == 0 {
		return "", false
	}
	// Range sub-paths such as "trip.start" address the "trip" element.
	if _, ok := names[segments[0]]; ok {
		return segments[0], true
	}
	return "", false
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$.")
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if segment := strings.TrimSpace(part); segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	wrappers := map[string]struct{}{
		"submission": {},
		"body":       {},
		"payload":    {},
		"data":       {},
	}

	out := segments
	for len(out) > 0 {
		if _, ok := wrappers[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}
