package i18n

import "sync"

// Message identifiers shared with chat clients.
const (
	IDRequired          = "interactive_dialog.error.required"
	IDRangeIncomplete   = "interactive_dialog.error.range_incomplete"
	IDBadFormat         = "interactive_dialog.error.bad_format"
	IDBadDateFormat     = "interactive_dialog.error.bad_date_format"
	IDBadDateTimeFormat = "interactive_dialog.error.bad_datetime_format"
	IDTooShort          = "interactive_dialog.error.too_short"
	IDBadEmail          = "interactive_dialog.error.bad_email"
	IDBadNumber         = "interactive_dialog.error.bad_number"
	IDBadURL            = "interactive_dialog.error.bad_url"
	IDInvalidOption     = "interactive_dialog.error.invalid_option"
	IDInvalidTime       = "datetime.manual_time.invalid"

	IDRangeStartLabel    = "datetime.range.start_label"
	IDRangeEndLabel      = "datetime.range.end_label"
	IDDatePlaceholder    = "apps_form.date_field.placeholder"
	IDTimezoneIndicator  = "datetime.timezone_indicator"
	IDDateOutOfBounds    = "datetime.day_disabled"
	IDSubmitDefaultLabel = "interactive_dialog.submit"
	IDTimeLabel          = "datetime.time_label"
	IDEndBeforeStart     = "datetime.range.end_before_start"
)

var english = map[string]string{
	IDRequired:          "This field is required.",
	IDRangeIncomplete:   "Both start and end dates are required.",
	IDBadFormat:         "Invalid date format",
	IDBadDateFormat:     "Date field must be in YYYY-MM-DD format",
	IDBadDateTimeFormat: "DateTime field must be in YYYY-MM-DDTHH:mm:ssZ format",
	IDTooShort:          "Minimum input length is {{ minLength }}.",
	IDBadEmail:          "Must be a valid email address.",
	IDBadNumber:         "Must be a number.",
	IDBadURL:            "URL must include http:// or https://.",
	IDInvalidOption:     "Must be a valid option",
	IDInvalidTime:       "Enter a time like 9:30 AM or 14:30.",

	IDRangeStartLabel:    "Start Date & Time",
	IDRangeEndLabel:      "End Date & Time",
	IDDatePlaceholder:    "Select a date",
	IDTimezoneIndicator:  "Times in {{ timezone }}",
	IDDateOutOfBounds:    "{{ date }} is not available.",
	IDSubmitDefaultLabel: "Submit",
	IDTimeLabel:          "Time",
	IDEndBeforeStart:     "The end must be after the start.",
}

var spanish = map[string]string{
	IDRequired:          "Este campo es obligatorio.",
	IDRangeIncomplete:   "Se requieren las fechas de inicio y fin.",
	IDBadFormat:         "Formato de fecha no válido",
	IDBadDateFormat:     "El campo de fecha debe tener el formato AAAA-MM-DD",
	IDBadDateTimeFormat: "El campo de fecha y hora debe tener el formato AAAA-MM-DDTHH:mm:ssZ",
	IDTooShort:          "La longitud mínima es {{ minLength }}.",
	IDBadEmail:          "Debe ser un correo electrónico válido.",
	IDBadNumber:         "Debe ser un número.",
	IDBadURL:            "La URL debe incluir http:// o https://.",
	IDInvalidOption:     "Debe ser una opción válida",
	IDInvalidTime:       "Introduce una hora como 9:30 AM o 14:30.",

	IDRangeStartLabel:    "Fecha y hora de inicio",
	IDRangeEndLabel:      "Fecha y hora de fin",
	IDDatePlaceholder:    "Selecciona una fecha",
	IDTimezoneIndicator:  "Horas en {{ timezone }}",
	IDDateOutOfBounds:    "{{ date }} no está disponible.",
	IDSubmitDefaultLabel: "Enviar",
	IDTimeLabel:          "Hora",
	IDEndBeforeStart:     "El fin debe ser posterior al inicio.",
}

// DefaultLocale is the fallback locale of the built-in catalog.
const DefaultLocale = "en"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog (English and Spanish, English
// fallback). Callers may Add to it to register more locales.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog(DefaultLocale)
		defaultCatalog.Add(DefaultLocale, english)
		defaultCatalog.Add("es", spanish)
	})
	return defaultCatalog
}

// Text resolves id through the default catalog.
func Text(locale, id string, values map[string]any) string {
	return Default().Message(locale, id, english[id], values)
}
