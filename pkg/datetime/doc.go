// Package datetime holds the value codec and time arithmetic shared by the
// date and datetime fields: canonical parse/serialize, relative date
// resolution, rounded time defaults, time menu generation and display
// formatting. Every function takes "now" and the field timezone explicitly;
// nothing here reads the wall clock or the process timezone.
package datetime
