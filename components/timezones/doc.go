// Package timezones provides the IANA zone list, the location resolution used
// by date fields, and a small net/http handler that serves zone options to
// dynamic select elements.
//
// The handler answers GET and HEAD with query and limit parameters, and POST
// with a JSON lookup body. Responses use the dynamic select shape
// {"items":[{"text":...,"value":...}]}. The backing data is loaded from the
// embedded list under data/iana_timezones.txt.
package timezones
