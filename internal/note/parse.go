package note

import (
	"strconv"
	"strings"
	"time"
)

// RawEntry is one logical unit of note text as assembled by the line
// grouper: the checklist text after the checkbox (header) plus the joined,
// trimmed continuation lines (body). A plain line arrives with an empty
// header and the whole line as body.
type RawEntry struct {
	Header string
	Body   string
}

// TimeOfDay is a clock time parsed from an entry. Second is only
// meaningful when HasSecond is set.
type TimeOfDay struct {
	Hour      int
	Minute    int
	Second    int
	HasSecond bool
	IsEndTime bool
}

// DateRef is one matched date annotation in order of appearance.
// Moment is zero when the digits matched but do not form a real calendar
// date; such a reference still occupies its slot in the sequence.
type DateRef struct {
	Date   string    // YYYY-MM-DD as written
	Moment time.Time // resolved day, local midnight
	Raw    string    // exact matched substring, incl. optional leading space
}

// ParsedEntry is the canonical representation of one entry.
type ParsedEntry struct {
	OriginalText string
	Content      string
	Indentation  string

	IsTask     bool
	TaskStatus TaskStatus
	StatusChar string

	StartTime *TimeOfDay
	EndTime   *TimeOfDay

	// Dates holds every matched date annotation in source order,
	// duplicates included. Never inferred; zero matches means empty.
	Dates []DateRef

	HasRecurrence  bool
	RecurrenceRule string
	BlockLink      string

	IsListItem bool
	ListMarker string
}

// ParseEntry extracts metadata from a raw entry. It never fails: text
// that matches nothing produces an entry with the text as content and no
// task or date information. Task and list classification is attached by
// the grouper, which sees the original line; ParseEntry leaves those
// fields zeroed.
func ParseEntry(raw RawEntry) ParsedEntry {
	original := raw.Header
	if raw.Body != "" {
		if original != "" {
			original += "\n"
		}
		original += raw.Body
	}

	entry := ParsedEntry{
		OriginalText: original,
		Dates:        extractDates(original),
	}

	content := raw.Header
	if content == "" {
		content = raw.Body
	}

	if m := BlockLinkPattern.FindStringSubmatch(original); m != nil {
		entry.BlockLink = m[1]
	}
	if m := RecurrencePattern.FindStringSubmatch(original); m != nil {
		entry.HasRecurrence = true
		entry.RecurrenceRule = m[1]
	}
	entry.StartTime, entry.EndTime = extractTimes(original)

	// Remove matched metadata from the display text. Each date's raw
	// substring is removed once per occurrence; trailing markers are cut
	// wherever the content carries them.
	content = BlockLinkPattern.ReplaceAllString(content, "")
	content = RecurrencePattern.ReplaceAllString(content, "")
	for _, d := range entry.Dates {
		content = strings.Replace(content, d.Raw, "", 1)
	}
	entry.Content = strings.TrimSpace(content)

	return entry
}

// extractDates returns every due-date annotation in text, in order of
// appearance, duplicates preserved. A match whose digits do not resolve
// to a real calendar date keeps its place with a zero Moment.
func extractDates(text string) []DateRef {
	matches := DueDatePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]DateRef, 0, len(matches))
	for _, m := range matches {
		date := m[2] + "-" + m[3] + "-" + m[4]
		ref := DateRef{Date: date, Raw: m[0]}
		if t, err := time.ParseInLocation("2006-01-02", date, time.Local); err == nil {
			ref.Moment = t
		}
		out = append(out, ref)
	}
	return out
}

// extractTimes picks up to two plain clock times from the entry text.
// The first becomes the start time, the second the end time. Times are
// informational on the parsed entry; they do not feed event synthesis.
func extractTimes(text string) (start, end *TimeOfDay) {
	for _, m := range TimePattern.FindAllStringSubmatch(text, 2) {
		tod, ok := timeOfDay(m)
		if !ok {
			continue
		}
		if start == nil {
			start = tod
			continue
		}
		tod.IsEndTime = true
		end = tod
		break
	}
	return start, end
}

func timeOfDay(m []string) (*TimeOfDay, bool) {
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return nil, false
	}
	tod := &TimeOfDay{Hour: hour, Minute: minute}
	if m[3] != "" {
		sec, _ := strconv.Atoi(m[3])
		if sec > 59 {
			return nil, false
		}
		tod.Second = sec
		tod.HasSecond = true
	}
	return tod, true
}
