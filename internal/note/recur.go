package note

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrNoRecurrence is returned when an entry carries no recurrence marker.
var ErrNoRecurrence = errors.New("entry has no recurrence rule")

const defaultOccurrenceCount = 3

// NextOccurrences resolves an entry's recurrence rule and returns its
// next count occurrences at or after from. The rule text is RRULE
// grammar, with or without the "RRULE:" prefix. The entry's first date
// anchors the series; entries without a usable date anchor at from.
//
// Recurrence never feeds event synthesis; this is a lookup for callers
// that want to project a recurring entry forward.
func NextOccurrences(entry ParsedEntry, from time.Time, count int) ([]time.Time, error) {
	rule := strings.TrimSpace(entry.RecurrenceRule)
	if !entry.HasRecurrence || rule == "" {
		return nil, ErrNoRecurrence
	}
	rule = strings.TrimPrefix(rule, "RRULE:")

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("parse recurrence rule %q: %w", entry.RecurrenceRule, err)
	}

	anchor := from
	if len(entry.Dates) > 0 && !entry.Dates[0].Moment.IsZero() {
		anchor = entry.Dates[0].Moment
	}
	r.DTStart(anchor)

	if count <= 0 {
		count = defaultOccurrenceCount
	}

	out := make([]time.Time, 0, count)
	next := r.Iterator()
	for len(out) < count {
		t, ok := next()
		if !ok {
			break
		}
		if t.Before(from) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
