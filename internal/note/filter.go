package note

import (
	"regexp"
	"strings"

	appLog "notecal/internal/log"
	"notecal/internal/model"
)

// Query narrows a set of extracted events. Zero-valued fields impose no
// constraint; set fields combine with AND.
type Query struct {
	// Type, when non-empty, requires an exact event type match.
	Type model.EventType

	// ContentPattern is a regular expression matched against the title.
	// A pattern that does not compile is ignored rather than rejecting
	// everything.
	ContentPattern string

	// Folders restricts events to notes under any of the given path
	// prefixes. Events without a path are exempt.
	Folders []string
}

// MatchesFilter reports whether ev satisfies every constraint in q.
func MatchesFilter(ev model.Event, q Query) bool {
	if q.Type != "" && ev.Type != q.Type {
		return false
	}

	if q.ContentPattern != "" {
		re, err := regexp.Compile(q.ContentPattern)
		if err != nil {
			appLog.Warn("invalid content pattern ignored", "pattern", q.ContentPattern, "reason", err)
		} else if !re.MatchString(ev.Title) {
			return false
		}
	}

	if len(q.Folders) > 0 && ev.Path != "" {
		matched := false
		for _, folder := range q.Folders {
			if folder != "" && strings.HasPrefix(ev.Path, folder) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
