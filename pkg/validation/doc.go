// Package validation checks dialog values before submission and interprets
// the error payloads a server returns afterwards.
//
// Validate applies the rules for one element in a fixed order and reports the
// first failure: required, range completeness, date/datetime format, then the
// text and radio rules. Each failure is a *FieldError carrying the message
// identifier clients translate and wrapping one of the package sentinels.
package validation
