package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"notecal/internal/config"
	"notecal/internal/model"
	"notecal/internal/note"
	"notecal/internal/vault"
)

var (
	scanJSON    bool
	scanType    string
	scanMatch   string
	scanFolders []string
	scanMeta    string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the vault and list extracted events",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Emit events as JSON")
	scanCmd.Flags().StringVar(&scanType, "type", "", "Keep only events of this type")
	scanCmd.Flags().StringVar(&scanMatch, "match", "", "Keep only events whose title matches this regexp")
	scanCmd.Flags().StringSliceVar(&scanFolders, "folder", nil, "Keep only events from notes under these folder prefixes")
	scanCmd.Flags().StringVar(&scanMeta, "meta", "", "Keep only notes whose front-matter has key[=value]")
}

func runScan(cmd *cobra.Command, args []string) error {
	conf, v, err := loadSetup()
	if err != nil {
		return err
	}

	result := v.ScanAll()
	events := filterEvents(result.Events, buildQuery(conf))

	if scanMeta != "" {
		events, err = applyMetaFilter(v, events, scanMeta)
		if err != nil {
			return err
		}
	}

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(events); err != nil {
			return err
		}
	} else {
		printEvents(events)
	}

	for _, f := range result.Failures {
		fmt.Fprintf(os.Stderr, "warning: %s\n", f.Error())
	}
	return nil
}

// buildQuery combines the config's filter with the scan flags; flags win.
func buildQuery(conf *config.Config) note.Query {
	q := note.Query{
		Type:           model.EventType(conf.EventType),
		ContentPattern: conf.ContentFilter,
		Folders:        conf.Folders,
	}
	if scanType != "" {
		q.Type = model.EventType(scanType)
	}
	if scanMatch != "" {
		q.ContentPattern = scanMatch
	}
	if len(scanFolders) > 0 {
		q.Folders = scanFolders
	}
	return q
}

func filterEvents(events []model.Event, q note.Query) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if note.MatchesFilter(ev, q) {
			out = append(out, ev)
		}
	}
	return out
}

// applyMetaFilter keeps events whose source note's front-matter carries
// the given key (and value, with key=value syntax).
func applyMetaFilter(v *vault.Vault, events []model.Event, meta string) ([]model.Event, error) {
	key, want, _ := strings.Cut(meta, "=")
	if key == "" {
		return nil, fmt.Errorf("invalid --meta %q: expected key or key=value", meta)
	}

	notes, err := v.ListNotes()
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]bool)
	for _, rel := range v.FilterNotesByMetadata(notes, key, want) {
		allowed[rel] = true
	}

	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if allowed[ev.Path] {
			out = append(out, ev)
		}
	}
	return out, nil
}

func printEvents(events []model.Event) {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}
	events = append([]model.Event(nil), events...)
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Start.Equal(events[j].Start) {
			return events[i].Start.Before(events[j].Start)
		}
		return events[i].Path < events[j].Path
	})
	var currentDay string
	for _, ev := range events {
		day := ev.Start.Format("2006-01-02")
		if day != currentDay {
			fmt.Println(day)
			currentDay = day
		}
		anchor := ""
		if ev.BlockLink != "" {
			anchor = " ^" + ev.BlockLink
		}
		fmt.Printf("  %s  (%s)%s\n", ev.Title, ev.Path, anchor)
	}
}
