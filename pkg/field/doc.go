// Package field implements the state machines behind date and datetime
// dialog elements.
//
// Single drives a one-value field, Range drives a start/end pair with separate
// calendars and time inputs, and RangePicker drives a single calendar that
// collects a date range in two clicks. Each controller owns its value,
// resolves configured defaults once at Mount, and reports every accepted
// event exactly once through its ChangeFunc. Rejected events (disabled days,
// time changes without a date, end selection without a start) leave the value
// untouched and emit nothing.
//
// The wall clock and the user's timezone come from Env so tests and hosts can
// pin both.
package field
