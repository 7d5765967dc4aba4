// Package openapi derives dialog elements from the JSON request body of an
// OpenAPI 3 operation.
//
// Properties map onto elements by type and format: "date" and "date-time"
// strings become date and datetime elements, enums become selects, booleans
// become bool elements and email/uri/number shapes become text subtypes. The
// "x-datefield" schema extension carries the datetime configuration and date
// bounds that OpenAPI has no vocabulary for.
package openapi
