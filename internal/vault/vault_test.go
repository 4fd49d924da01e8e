package vault

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeNote(t *testing.T, root, rel, text string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenRejectsMissingAndNonDir(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing root")
	}

	root := t.TempDir()
	file := filepath.Join(root, "a.md")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(file); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestListNotes(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "b.md", "")
	writeNote(t, root, "a.md", "")
	writeNote(t, root, "sub/deep/c.md", "")
	writeNote(t, root, "notes.txt", "")
	writeNote(t, root, ".obsidian/workspace.md", "")
	writeNote(t, root, "templates/daily.md", "")

	v, err := Open(root, "templates/")
	if err != nil {
		t.Fatal(err)
	}
	got, err := v.ListNotes()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a.md", "b.md", "sub/deep/c.md"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListNotes = %v, want %v", got, want)
	}
}

func TestReadNoteRejectsEscape(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a.md", "hello")

	v, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}

	if text, err := v.ReadNote("a.md"); err != nil || text != "hello" {
		t.Fatalf("ReadNote = %q, %v", text, err)
	}
	for _, rel := range []string{"../a.md", "..", "sub/../../a.md", "/etc/passwd"} {
		if _, err := v.ReadNote(rel); err == nil {
			t.Errorf("ReadNote(%q) succeeded, want escape error", rel)
		}
	}
}

func TestNoteMetadata(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "meta.md", "---\nstatus: active\npriority: 2\n---\n\nbody\n")
	writeNote(t, root, "plain.md", "no fence here\n")
	writeNote(t, root, "open.md", "---\nstatus: active\nnever closed\n")

	v, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}

	fm, err := v.NoteMetadata("meta.md")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := fm.GetString("status"); got != "active" {
		t.Fatalf("status = %q", got)
	}
	if got, _ := fm.GetString("priority"); got != "2" {
		t.Fatalf("priority = %q", got)
	}
	if fm.Has("missing") {
		t.Fatal("Has(missing) = true")
	}

	for _, rel := range []string{"plain.md", "open.md"} {
		fm, err := v.NoteMetadata(rel)
		if err != nil || fm != nil {
			t.Fatalf("NoteMetadata(%s) = %v, %v; want nil, nil", rel, fm, err)
		}
	}
}

func TestFilterNotesByMetadata(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a.md", "---\nproject: home\n---\nx\n")
	writeNote(t, root, "b.md", "---\nproject: work\n---\nx\n")
	writeNote(t, root, "c.md", "plain\n")

	v, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}
	all := []string{"a.md", "b.md", "c.md"}

	if got := v.FilterNotesByMetadata(all, "project", ""); !reflect.DeepEqual(got, []string{"a.md", "b.md"}) {
		t.Fatalf("key-only filter = %v", got)
	}
	if got := v.FilterNotesByMetadata(all, "project", "work"); !reflect.DeepEqual(got, []string{"b.md"}) {
		t.Fatalf("key=value filter = %v", got)
	}
}

func TestScanAll(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "planning.md", "- [ ] review budget @{2024-03-01}\n- [ ] no date here\n")
	writeNote(t, root, "sub/trip.md", "notes\n- [x] book flights @{2024-04-02}\n")

	v, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}
	res := v.ScanAll()

	if len(res.Failures) != 0 {
		t.Fatalf("failures = %v", res.Failures)
	}
	if len(res.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(res.Events))
	}
	if res.Events[0].Path != "planning.md" || res.Events[0].Title != "review budget" {
		t.Fatalf("first event = %+v", res.Events[0])
	}
	if res.Events[1].Path != "sub/trip.md" || res.Events[1].Title != "book flights" {
		t.Fatalf("second event = %+v", res.Events[1])
	}
}

func TestScanAllRecordsReadFailures(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "good.md", "- [ ] alpha @{2024-05-05}\n")
	writeNote(t, root, "bad.md", "- [ ] beta @{2024-05-06}\n")
	if err := os.Chmod(filepath.Join(root, "bad.md"), 0o000); err != nil {
		t.Fatal(err)
	}
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	t.Cleanup(func() { os.Chmod(filepath.Join(root, "bad.md"), 0o644) })

	v, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}
	res := v.ScanAll()

	if len(res.Failures) != 1 || res.Failures[0].Path != "bad.md" {
		t.Fatalf("failures = %v", res.Failures)
	}
	if len(res.Events) != 1 || res.Events[0].Title != "alpha" {
		t.Fatalf("events = %+v", res.Events)
	}
	if !strings.Contains(res.Failures[0].Error(), "bad.md") {
		t.Fatalf("failure error = %q", res.Failures[0].Error())
	}
}
