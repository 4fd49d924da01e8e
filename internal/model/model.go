package model

import "time"

// EventType tags an event with the category a caller filed it under.
// Extraction always produces EventTypeDefault; callers may override it
// before handing events on.
type EventType string

const EventTypeDefault EventType = "default"

// Event is a single calendar-relevant item extracted from a note.
//
// ID is deterministic for a given first date and line index, so it is
// unique only within one file's extraction. Callers needing a globally
// unique key compose ID with Path.
type Event struct {
	ID    string
	Title string

	// Start / End are the matched calendar date at day granularity
	// whenever AllDay is true.
	Start  time.Time
	End    time.Time
	AllDay bool

	Type EventType

	// Path identifies the source note (vault-relative), used for
	// jump-to-source.
	Path string

	// BlockLink is the trailing ^id anchor of the source line, if any.
	BlockLink string
}
