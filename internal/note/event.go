package note

import (
	"fmt"
	"strconv"

	"notecal/internal/model"
)

// Synthesize converts a parsed entry into at most one event.
//
// An event exists only when the entry matched at least one date; undated
// entries return ok=false, which is not an error. Only the first matched
// date shapes the event: later dates on the same entry never widen it
// into a range, and a parsed time-of-day never attaches, so the event is
// always all-day. Both behaviors are deliberate.
//
// The id is the start date formatted to minute precision, a fixed "00"
// suffix, and the raw line index. Two entries can only collide when they
// share both first date and line index, which cannot happen within one
// note. Across notes the id must be qualified with the path.
func Synthesize(entry ParsedEntry, lineIndex int, path string) (model.Event, bool, error) {
	if len(entry.Dates) == 0 {
		return model.Event{}, false, nil
	}

	first := entry.Dates[0]
	if first.Moment.IsZero() {
		return model.Event{}, false, fmt.Errorf("first date %q is not a calendar date", first.Date)
	}

	start := first.Moment
	ev := model.Event{
		ID:        start.Format("200601021504") + "00" + strconv.Itoa(lineIndex),
		Title:     entry.Content,
		Start:     start,
		End:       start,
		AllDay:    true,
		Type:      model.EventTypeDefault,
		Path:      path,
		BlockLink: entry.BlockLink,
	}
	return ev, true, nil
}
