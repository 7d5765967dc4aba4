// Package session fills a dialog interactively. It asks each element through
// a prompt.Driver, routes date and datetime answers through the field
// controllers so bounds, defaults and range ordering apply exactly as they do
// in a graphical client, and revisits elements until the dialog validates.
package session
