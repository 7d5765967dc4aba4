// Package dialog loads dialog definitions from JSON or YAML, sanitises the
// integration-supplied text they carry and checks their structure before any
// controller is built from them. FromOpenAPI derives a definition from an
// OpenAPI operation instead.
package dialog
