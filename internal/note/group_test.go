package note

import (
	"strings"
	"testing"
)

func TestGroupEntriesChecklistWithBody(t *testing.T) {
	lines := []string{
		"- [x] Ship release",
		"  wrap up the changelog",
		"  @{2024-04-10}",
		"un-indented line",
	}
	groups := GroupEntries(lines)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	first := groups[0]
	if first.Line != 0 {
		t.Errorf("first group line = %d, want 0", first.Line)
	}
	if !first.Entry.IsTask || first.Entry.TaskStatus != Done {
		t.Errorf("first entry status = %v (isTask=%v), want Done task", first.Entry.TaskStatus, first.Entry.IsTask)
	}
	if first.Entry.StatusChar != "x" {
		t.Errorf("statusChar = %q, want x", first.Entry.StatusChar)
	}
	wantOriginal := "Ship release\nwrap up the changelog\n@{2024-04-10}"
	if first.Entry.OriginalText != wantOriginal {
		t.Errorf("originalText = %q, want %q", first.Entry.OriginalText, wantOriginal)
	}

	second := groups[1]
	if second.Line != 3 {
		t.Errorf("second group line = %d, want 3", second.Line)
	}
	if second.Entry.IsTask {
		t.Error("plain line classified as task")
	}
	if second.Entry.Content != "un-indented line" {
		t.Errorf("second content = %q", second.Entry.Content)
	}
}

func TestGroupEntriesBodyStopsAtNextChecklist(t *testing.T) {
	lines := []string{
		"- [ ] first",
		"  continuation",
		"  - [ ] nested task", // indented but a checklist line: new entry
		"- [ ] third",
	}
	groups := GroupEntries(lines)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Entry.OriginalText != "first\ncontinuation" {
		t.Errorf("first originalText = %q", groups[0].Entry.OriginalText)
	}
	if groups[1].Line != 2 || groups[1].Entry.Content != "nested task" {
		t.Errorf("nested task group = %+v", groups[1])
	}
	if groups[1].Entry.Indentation != "  " {
		t.Errorf("nested indentation = %q, want two spaces", groups[1].Entry.Indentation)
	}
	if groups[2].Line != 3 {
		t.Errorf("third group line = %d, want 3", groups[2].Line)
	}
}

func TestGroupEntriesChecklistWithoutBody(t *testing.T) {
	groups := GroupEntries([]string{"- [ ] lone task"})
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	e := groups[0].Entry
	if e.OriginalText != "lone task" || e.Content != "lone task" {
		t.Errorf("entry = %+v", e)
	}
	if e.ListMarker != "-" || !e.IsListItem {
		t.Errorf("listMarker = %q isListItem = %v", e.ListMarker, e.IsListItem)
	}
}

func TestGroupEntriesPlainLinesOnePerLine(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma"}
	groups := GroupEntries(lines)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	for i, g := range groups {
		if g.Line != i {
			t.Errorf("group %d line = %d", i, g.Line)
		}
		if g.Entry.Content != lines[i] {
			t.Errorf("group %d content = %q", i, g.Entry.Content)
		}
	}
}

func TestGroupEntriesWhitespaceOnlyLineJoinsBody(t *testing.T) {
	lines := []string{
		"- [ ] task",
		"   ", // indentation-only: consumed into the body as an empty string
		"  tail",
	}
	groups := GroupEntries(lines)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Entry.OriginalText != "task\n\ntail" {
		t.Errorf("originalText = %q", groups[0].Entry.OriginalText)
	}
}

func TestGroupEntriesOrderedListMarker(t *testing.T) {
	groups := GroupEntries([]string{"1. [ ] numbered task"})
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Entry.ListMarker != "1." {
		t.Errorf("listMarker = %q, want 1.", groups[0].Entry.ListMarker)
	}
}

func TestGroupEntriesPlainListItemIsNotATask(t *testing.T) {
	groups := GroupEntries([]string{"* bullet without checkbox"})
	e := groups[0].Entry
	if e.IsTask {
		t.Error("bullet without checkbox classified as task")
	}
	if !e.IsListItem || e.ListMarker != "*" {
		t.Errorf("isListItem = %v listMarker = %q", e.IsListItem, e.ListMarker)
	}
	if e.TaskStatus != NotATask {
		t.Errorf("taskStatus = %v, want NotATask", e.TaskStatus)
	}
}

func TestGroupEntriesStatusChars(t *testing.T) {
	tests := []struct {
		line string
		want TaskStatus
	}{
		{"- [ ] open", Todo},
		{"- [x] closed", Done},
		{"- [/] underway", InProgress},
		{"- [?] unsure", Question},
		{"- [z] whoknows", Unknown},
	}
	for _, tt := range tests {
		groups := GroupEntries([]string{tt.line})
		if got := groups[0].Entry.TaskStatus; got != tt.want {
			t.Errorf("%q: status = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestGroupEntriesCRLFHandledByExtract(t *testing.T) {
	events := ExtractEvents("- [ ] a @{2024-02-02}\r\n- [ ] b @{2024-02-03}\r\n", "n.md")
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if strings.Contains(events[0].Title, "\r") {
		t.Errorf("title carries CR: %q", events[0].Title)
	}
}
