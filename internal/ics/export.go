package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"notecal/internal/model"
)

// Export serializes extracted events into an iCalendar feed. name, when
// non-empty, becomes the calendar's display name.
//
// Event ids are only unique within one note, so the VEVENT UID is the
// event id qualified with the source path. All-day events get DATE-typed
// DTSTART/DTEND with the exclusive end on the following day, matching
// how every consumer interprets date-only spans.
func Export(events []model.Event, name string) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	now := time.Now().UTC()
	for _, ev := range events {
		uid := ev.ID
		if ev.Path != "" {
			uid = ev.ID + "@" + ev.Path
		}

		ve := cal.AddEvent(uid)
		ve.SetDtStampTime(now)
		ve.SetSummary(ev.Title)
		if ev.AllDay {
			ve.SetAllDayStartAt(ev.Start)
			ve.SetAllDayEndAt(ev.End.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(ev.Start)
			ve.SetEndAt(ev.End)
		}
		if ev.Path != "" {
			desc := ev.Path
			if ev.BlockLink != "" {
				desc += "#^" + ev.BlockLink
			}
			ve.SetDescription(desc)
		}
	}

	return cal.Serialize()
}
