package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"notecal/internal/note"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <note>",
	Short: "Show how one note parses, entry by entry",
	Long: `inspect dumps the parsed form of every entry in a vault-relative note:
list/task classification, status, dates, times, block references, and the
next occurrences of any recurrence rule. Useful for debugging why an
annotation does or does not produce an event.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, v, err := loadSetup()
	if err != nil {
		return err
	}

	rel := args[0]
	text, err := v.ReadNote(rel)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for _, g := range note.GroupEntries(lines) {
		printEntry(g, rel)
	}
	return nil
}

func printEntry(g note.GroupedEntry, path string) {
	e := g.Entry

	fmt.Printf("line %d: %q\n", g.Line, e.Content)
	if e.IsTask {
		fmt.Printf("  task: [%s] %s\n", e.StatusChar, e.TaskStatus)
	} else if e.IsListItem {
		fmt.Printf("  list item: %s\n", e.ListMarker)
	}
	for i, d := range e.Dates {
		state := d.Date
		if d.Moment.IsZero() {
			state += " (not a calendar date)"
		}
		fmt.Printf("  date[%d]: %s\n", i, state)
	}
	if e.StartTime != nil {
		fmt.Printf("  start time: %02d:%02d\n", e.StartTime.Hour, e.StartTime.Minute)
	}
	if e.EndTime != nil {
		fmt.Printf("  end time: %02d:%02d\n", e.EndTime.Hour, e.EndTime.Minute)
	}
	if e.BlockLink != "" {
		fmt.Printf("  block link: ^%s\n", e.BlockLink)
	}
	if e.HasRecurrence {
		fmt.Printf("  recurrence: %s\n", e.RecurrenceRule)
		occs, err := note.NextOccurrences(e, time.Now(), 3)
		switch {
		case errors.Is(err, note.ErrNoRecurrence):
			// Marker present but empty rule; nothing to project.
		case err != nil:
			fmt.Printf("    (rule does not parse: %v)\n", err)
		default:
			for _, t := range occs {
				fmt.Printf("    next: %s\n", t.Format("2006-01-02"))
			}
		}
	}

	if ev, ok, err := note.Synthesize(e, g.Line, path); err != nil {
		fmt.Printf("  event: skipped (%v)\n", err)
	} else if ok {
		fmt.Printf("  event: %s on %s\n", ev.ID, ev.Start.Format("2006-01-02"))
	}
}
