package vault

import (
	appLog "notecal/internal/log"
	"notecal/internal/model"
	"notecal/internal/note"
)

// FileError records a per-note failure during a vault-wide scan.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// ScanResult is the outcome of one full vault scan: every extracted
// event in note order, plus the notes that could not be read. A failed
// note contributes zero events and never aborts the scan.
type ScanResult struct {
	Events   []model.Event
	Failures []FileError
}

// ScanAll extracts events from every note in the vault. Within each note
// events keep line order; across notes they follow the sorted note list.
func (v *Vault) ScanAll() ScanResult {
	res := ScanResult{Events: []model.Event{}}

	notes, err := v.ListNotes()
	if err != nil {
		appLog.Error("vault listing failed", err, "root", v.Root)
		res.Failures = append(res.Failures, FileError{Path: v.Root, Err: err})
		return res
	}

	for _, rel := range notes {
		text, err := v.ReadNote(rel)
		if err != nil {
			appLog.Error("note read failed", err, "path", rel)
			res.Failures = append(res.Failures, FileError{Path: rel, Err: err})
			continue
		}
		res.Events = append(res.Events, note.ExtractEvents(text, rel)...)
	}

	appLog.Info("vault scan completed",
		"root", v.Root,
		"notes", len(notes),
		"events", len(res.Events),
		"failures", len(res.Failures),
	)
	return res
}
