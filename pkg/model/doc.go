// Package model defines the dialog element definitions and the tagged value
// type exchanged between field controllers, the validator and the host dialog.
// Date values are stored as canonical strings: `YYYY-MM-DD` for dates and
// `YYYY-MM-DDTHH:mm:ssZ` (UTC, seconds zeroed) for datetimes. Ranges wrap two of
// those under `start` and an optional `end`; a missing end is distinct from an
// empty one and survives JSON round trips.
package model
