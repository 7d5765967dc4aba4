package model

import "strings"

// ElementType enumerates the dialog element kinds.
type ElementType string

const (
	ElementTypeText     ElementType = "text"
	ElementTypeTextarea ElementType = "textarea"
	ElementTypeSelect   ElementType = "select"
	ElementTypeRadio    ElementType = "radio"
	ElementTypeBool     ElementType = "bool"
	ElementTypeDate     ElementType = "date"
	ElementTypeDateTime ElementType = "datetime"
)

// Known reports whether the element type is supported.
func (t ElementType) Known() bool {
	switch t {
	case ElementTypeText, ElementTypeTextarea, ElementTypeSelect, ElementTypeRadio,
		ElementTypeBool, ElementTypeDate, ElementTypeDateTime:
		return true
	}
	return false
}

// Kind distinguishes date-only fields from date+time fields.
type Kind int

const (
	KindNone Kind = iota
	KindDate
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	default:
		return "none"
	}
}

// Text element subtypes that carry extra validation.
const (
	SubtypeEmail    = "email"
	SubtypeNumber   = "number"
	SubtypeURL      = "url"
	SubtypePassword = "password"
	SubtypeTel      = "tel"
)

// DataSourceDynamic marks select elements whose options are fetched from
// DataSourceURL.
const DataSourceDynamic = "dynamic"

// RangeLayout controls how the start and end inputs of a range are arranged.
type RangeLayout string

const (
	RangeLayoutHorizontal RangeLayout = "horizontal"
	RangeLayoutVertical   RangeLayout = "vertical"
)

// DefaultTimeInterval is the time menu step in minutes when none is configured.
const DefaultTimeInterval = 60

// DateTimeConfig groups the date/datetime specific options of an element.
type DateTimeConfig struct {
	IsRange              bool        `json:"is_range,omitempty" yaml:"is_range,omitempty"`
	AllowSingleDayRange  bool        `json:"allow_single_day_range,omitempty" yaml:"allow_single_day_range,omitempty"`
	RangeLayout          RangeLayout `json:"range_layout,omitempty" yaml:"range_layout,omitempty"`
	TimeInterval         int         `json:"time_interval,omitempty" yaml:"time_interval,omitempty"`
	AllowManualTimeEntry bool        `json:"allow_manual_time_entry,omitempty" yaml:"allow_manual_time_entry,omitempty"`
	LocationTimezone     string      `json:"location_timezone,omitempty" yaml:"location_timezone,omitempty"`
}

// Option is a static choice for select and radio elements.
type Option struct {
	Text  string `json:"text" yaml:"text"`
	Value string `json:"value" yaml:"value"`
}

// Element describes a single dialog input. Field names follow the interactive
// dialog wire format so definitions can be shared with chat integrations.
type Element struct {
	Name           string          `json:"name" yaml:"name"`
	DisplayName    string          `json:"display_name" yaml:"display_name"`
	Type           ElementType     `json:"type" yaml:"type"`
	Subtype        string          `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Default        string          `json:"default,omitempty" yaml:"default,omitempty"`
	Placeholder    string          `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText       string          `json:"help_text,omitempty" yaml:"help_text,omitempty"`
	Optional       bool            `json:"optional,omitempty" yaml:"optional,omitempty"`
	MinLength      int             `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength      int             `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	DataSource     string          `json:"data_source,omitempty" yaml:"data_source,omitempty"`
	DataSourceURL  string          `json:"data_source_url,omitempty" yaml:"data_source_url,omitempty"`
	Options        []Option        `json:"options,omitempty" yaml:"options,omitempty"`
	DateTimeConfig *DateTimeConfig `json:"datetime_config,omitempty" yaml:"datetime_config,omitempty"`
	MinDate        string          `json:"min_date,omitempty" yaml:"min_date,omitempty"`
	MaxDate        string          `json:"max_date,omitempty" yaml:"max_date,omitempty"`

	// TimeIntervalMinutes is the legacy top-level interval, used when
	// DateTimeConfig does not set one.
	TimeIntervalMinutes int `json:"time_interval,omitempty" yaml:"time_interval,omitempty"`
}

// Required reports whether the element must carry a value on submit.
func (e Element) Required() bool { return !e.Optional }

// Kind returns the date kind of the element, KindNone for non-date elements.
func (e Element) Kind() Kind {
	switch e.Type {
	case ElementTypeDate:
		return KindDate
	case ElementTypeDateTime:
		return KindDateTime
	default:
		return KindNone
	}
}

// IsDateKind reports whether the element holds a date or datetime value.
func (e Element) IsDateKind() bool { return e.Kind() != KindNone }

// IsRange reports whether a date element collects a start/end pair. The flag is
// ignored on non-date elements.
func (e Element) IsRange() bool {
	return e.IsDateKind() && e.DateTimeConfig != nil && e.DateTimeConfig.IsRange
}

// AllowSingleDayRange reports whether start and end may fall on the same day.
// Always false for non-range elements.
func (e Element) AllowSingleDayRange() bool {
	return e.IsRange() && e.DateTimeConfig.AllowSingleDayRange
}

// AllowManualTimeEntry reports whether the time is typed instead of picked.
func (e Element) AllowManualTimeEntry() bool {
	return e.DateTimeConfig != nil && e.DateTimeConfig.AllowManualTimeEntry
}

// LocationTimezone returns the IANA zone the field is pinned to, if any.
func (e Element) LocationTimezone() string {
	if e.DateTimeConfig == nil {
		return ""
	}
	return strings.TrimSpace(e.DateTimeConfig.LocationTimezone)
}

// Layout returns the configured range layout, horizontal by default.
func (e Element) Layout() RangeLayout {
	if e.DateTimeConfig != nil && e.DateTimeConfig.RangeLayout == RangeLayoutVertical {
		return RangeLayoutVertical
	}
	return RangeLayoutHorizontal
}

// TimeInterval returns the time menu step in minutes. The datetime config wins
// over the top-level field, and both fall back to DefaultTimeInterval.
func (e Element) TimeInterval() int {
	if e.DateTimeConfig != nil && e.DateTimeConfig.TimeInterval > 0 {
		return e.DateTimeConfig.TimeInterval
	}
	if e.TimeIntervalMinutes > 0 {
		return e.TimeIntervalMinutes
	}
	return DefaultTimeInterval
}

// HasOption reports whether value matches one of the static options.
func (e Element) HasOption(value string) bool {
	for _, opt := range e.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Label returns the display name, falling back to the element name.
func (e Element) Label() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return e.Name
}

// Dialog is the top-level interactive dialog definition.
type Dialog struct {
	CallbackID       string    `json:"callback_id,omitempty" yaml:"callback_id,omitempty"`
	Title            string    `json:"title" yaml:"title"`
	IntroductionText string    `json:"introduction_text,omitempty" yaml:"introduction_text,omitempty"`
	SubmitLabel      string    `json:"submit_label,omitempty" yaml:"submit_label,omitempty"`
	NotifyOnCancel   bool      `json:"notify_on_cancel,omitempty" yaml:"notify_on_cancel,omitempty"`
	State            string    `json:"state,omitempty" yaml:"state,omitempty"`
	Elements         []Element `json:"elements" yaml:"elements"`
}

// Element returns the element with the given name.
func (d Dialog) Element(name string) (Element, bool) {
	for _, el := range d.Elements {
		if el.Name == name {
			return el, true
		}
	}
	return Element{}, false
}
