// Package logtail reads the end of carlot's log file for the in-app log view.
//
// Read keeps a ring buffer of the last maxLines lines so large files are
// scanned once without being held in memory. A non-positive maxLines returns
// every line. A missing file is not an error: the log view simply shows
// nothing until the logger has written something.
//
// Parse splits a line written by the zap console encoder
//
//	2026-01-02T15:04:05.000Z	INFO	app/loader.go:42	listings loaded	{"count": 3}
//
// or by the JSON encoder into an Entry, so the UI can colour the level and
// dim the timestamp. Lines in neither shape come back as a bare message.
package logtail
