package datetime

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLocale is used when a locale has no month table.
const DefaultLocale = "en"

var monthShortNames = map[string][]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	"fr": {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	"de": {"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	"ru": {"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
}

// RangeSeparator joins the start and end of a displayed range.
const RangeSeparator = " - "

func normalizeLocale(locale string) string {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if _, ok := monthShortNames[lang]; !ok {
		return DefaultLocale
	}
	return lang
}

// FormatDate renders a day for display, e.g. "Jan 10, 2026" in English or
// "10 janv. 2026" in French. The output is never parsed back.
func FormatDate(d Date, locale string) string {
	lang := normalizeLocale(locale)
	month := monthShortNames[lang][int(d.Month)-1]
	if lang == DefaultLocale {
		return fmt.Sprintf("%s %d, %d", month, d.Day, d.Year)
	}
	return fmt.Sprintf("%d %s %d", d.Day, month, d.Year)
}

// FormatTime renders a time of day on the 12-hour ("2:30 PM") or 24-hour
// ("14:30") clock.
func FormatTime(t TimeOfDay, use24Hour bool) string {
	if use24Hour {
		return t.String()
	}
	meridiem := "AM"
	hour := t.Hour
	if hour >= 12 {
		meridiem = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, meridiem)
}

// FormatDateTime renders t with its date and time, e.g. "Jan 10, 2026 2:30 PM".
func FormatDateTime(t time.Time, locale string, use24Hour bool) string {
	return FormatDate(DateOf(t), locale) + " " + FormatTime(ClockOf(t), use24Hour)
}

// FormatRange renders "start - end", or just the start while the end is
// missing.
func FormatRange(start string, end string, hasEnd bool) string {
	if !hasEnd || end == "" {
		return start
	}
	return start + RangeSeparator + end
}
