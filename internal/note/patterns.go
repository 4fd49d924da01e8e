package note

import "regexp"

// Recognized lexical patterns for note text. All patterns are package-level
// compiled regexps applied freshly per call; no pattern carries scan state
// between invocations.
//
// Date fragments are always strict 4-digit-year / 2-digit-month / 2-digit-day.
// The checkbox accepts any single character between the brackets; mapping that
// character to a status is the status table's job, not the pattern's.
var (
	// ListItemPattern matches a plain list line: indentation, a marker
	// (-, *, + or an ordered "1."), then text.
	ListItemPattern = regexp.MustCompile(`^([ \t]*)([-*+]|\d+\.)[ \t]+(.*)$`)

	// ChecklistPattern matches a task line: indentation, list marker,
	// a checkbox holding exactly one status character, then text.
	ChecklistPattern = regexp.MustCompile(`^([ \t]*)([-*+]|\d+\.)[ \t]+\[(.)\][ \t]?(.*)$`)

	// TimePattern matches a plain clock time, seconds optional.
	TimePattern = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?::(\d{2}))?\b`)

	// TaggedTimePattern matches a time annotated with a leading @.
	TaggedTimePattern = regexp.MustCompile(`@(\d{1,2}):(\d{2})(?::(\d{2}))?\b`)

	// EndTimePattern matches the ~HH:MM end-of-slot variant.
	EndTimePattern = regexp.MustCompile(`~(\d{1,2}):(\d{2})(?::(\d{2}))?\b`)

	// TimeRangePattern matches HH:MM-HH:MM style ranges.
	TimeRangePattern = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*[-~]\s*(\d{1,2}):(\d{2})\b`)

	// DueDatePattern matches the @{YYYY-MM-DD} due annotation. The optional
	// single leading space is part of the match so cleanup removes it too.
	DueDatePattern = regexp.MustCompile(`( ?)@\{(\d{4})-(\d{2})-(\d{2})\}`)

	// Alternate due-date notations. Recognized but not wired into event
	// synthesis; extraction uses DueDatePattern only.
	DueSymbolPattern  = regexp.MustCompile(`📅\s?(\d{4})-(\d{2})-(\d{2})`)
	DueBracketPattern = regexp.MustCompile(`\[due::\s*(\d{4})-(\d{2})-(\d{2})\]`)

	StartDatePattern     = regexp.MustCompile(`🛫\s?(\d{4})-(\d{2})-(\d{2})`)
	ScheduledDatePattern = regexp.MustCompile(`⏳\s?(\d{4})-(\d{2})-(\d{2})`)
	DoneDatePattern      = regexp.MustCompile(`✅\s?(\d{4})-(\d{2})-(\d{2})`)

	// RecurrencePattern matches a trailing 🔁 rule, stopping before an
	// optional trailing block reference.
	RecurrencePattern = regexp.MustCompile(`(?m)🔁\s*([^^\n]*?)\s*(?:\^[A-Za-z0-9-]+\s*)?$`)

	// BlockLinkPattern matches a trailing ^id block reference anchor.
	BlockLinkPattern = regexp.MustCompile(`(?m)\s*\^([A-Za-z0-9-]+)[ \t]*$`)
)
