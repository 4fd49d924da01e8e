package note

import (
	"strings"

	appLog "notecal/internal/log"
	"notecal/internal/model"
)

// GroupedEntry pairs a parsed entry with the line index of its header
// line in the source note. Line indices are zero-based.
type GroupedEntry struct {
	Entry ParsedEntry
	Line  int
}

// GroupEntries partitions a note's lines into logical entries.
//
// A checklist line opens an entry; the lines immediately following it
// that are indented and are not themselves checklist lines become the
// entry's body, trimmed and newline-joined. Any other line is an entry
// of its own. Output order follows line order.
func GroupEntries(lines []string) []GroupedEntry {
	out := make([]GroupedEntry, 0, len(lines))

	i := 0
	for i < len(lines) {
		line := lines[i]

		m := ChecklistPattern.FindStringSubmatch(line)
		if m == nil {
			entry := ParseEntry(RawEntry{Body: line})
			entry.Indentation = leadingWhitespace(line)
			if lm := ListItemPattern.FindStringSubmatch(line); lm != nil {
				entry.IsListItem = true
				entry.ListMarker = lm[2]
			}
			out = append(out, GroupedEntry{Entry: entry, Line: i})
			i++
			continue
		}

		indent, marker, statusChar, header := m[1], m[2], m[3], m[4]

		// Greedily take indented continuation lines. Consumption stops at
		// the first un-indented line or the next checklist line.
		var body []string
		j := i + 1
		for j < len(lines) {
			next := lines[j]
			if leadingWhitespace(next) == "" || ChecklistPattern.MatchString(next) {
				break
			}
			body = append(body, strings.TrimSpace(next))
			j++
		}

		entry := ParseEntry(RawEntry{Header: header, Body: strings.Join(body, "\n")})
		entry.Indentation = indent
		entry.IsListItem = true
		entry.ListMarker = marker
		entry.IsTask = true
		entry.StatusChar = statusChar
		entry.TaskStatus = StatusForChar([]rune(statusChar)[0])

		out = append(out, GroupedEntry{Entry: entry, Line: i})
		i = j
	}

	return out
}

// ExtractEvents scans a note's full text and returns the events embedded
// in it, in line order. path identifies the source note and is carried
// onto every event.
//
// A single entry that cannot be synthesized is reported as a warning and
// skipped; it never aborts the rest of the note.
func ExtractEvents(text, path string) []model.Event {
	lines := strings.Split(normalizeNewlines(text), "\n")

	events := make([]model.Event, 0)
	for _, g := range GroupEntries(lines) {
		ev, ok, err := Synthesize(g.Entry, g.Line, path)
		if err != nil {
			appLog.Warn("event synthesis failed; entry skipped",
				"path", path,
				"line", g.Line,
				"entry", g.Entry.OriginalText,
				"reason", err,
			)
			continue
		}
		if ok {
			events = append(events, ev)
		}
	}
	return events
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
