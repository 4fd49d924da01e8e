package note

import (
	"errors"
	"testing"
	"time"
)

func TestNextOccurrencesWeekly(t *testing.T) {
	entry := ParseEntry(RawEntry{Header: "Standup @{2024-01-01} 🔁 FREQ=WEEKLY;COUNT=10"})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	occs, err := NextOccurrences(entry, from, 3)
	if err != nil {
		t.Fatalf("NextOccurrences: %v", err)
	}
	want := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
	}
	if len(occs) != len(want) {
		t.Fatalf("got %d occurrences, want %d", len(occs), len(want))
	}
	for i := range want {
		if !occs[i].Equal(want[i]) {
			t.Errorf("occ[%d] = %v, want %v", i, occs[i], want[i])
		}
	}
}

func TestNextOccurrencesSkipsPast(t *testing.T) {
	entry := ParseEntry(RawEntry{Header: "Daily @{2024-01-01} 🔁 FREQ=DAILY;COUNT=5"})

	from := time.Date(2024, 1, 4, 0, 0, 0, 0, time.Local)
	occs, err := NextOccurrences(entry, from, 5)
	if err != nil {
		t.Fatalf("NextOccurrences: %v", err)
	}
	// Series is Jan 1..5 anchored at the entry's date; only 4 and 5 remain.
	if len(occs) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(occs))
	}
	if occs[0].Day() != 4 || occs[1].Day() != 5 {
		t.Errorf("occurrences = %v", occs)
	}
}

func TestNextOccurrencesNoRecurrence(t *testing.T) {
	entry := ParseEntry(RawEntry{Header: "plain @{2024-01-01}"})
	if _, err := NextOccurrences(entry, time.Now(), 3); !errors.Is(err, ErrNoRecurrence) {
		t.Errorf("err = %v, want ErrNoRecurrence", err)
	}
}

func TestNextOccurrencesBadRule(t *testing.T) {
	entry := ParseEntry(RawEntry{Header: "odd @{2024-01-01} 🔁 every second tuesday"})
	if _, err := NextOccurrences(entry, time.Now(), 3); err == nil {
		t.Error("expected error for unparseable rule")
	}
}
