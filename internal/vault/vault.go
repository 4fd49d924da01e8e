package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	appLog "notecal/internal/log"
)

// Vault is a directory of markdown notes. All note paths handed out and
// accepted by Vault are slash-separated and relative to the root.
type Vault struct {
	Root string

	// ignore holds path prefixes excluded from enumeration, e.g.
	// ".obsidian/" or "templates/".
	ignore []string
}

// Open validates root and returns a Vault over it. It reads nothing yet.
func Open(root string, ignore ...string) (*Vault, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open vault: %s is not a directory", root)
	}
	return &Vault{Root: root, ignore: ignore}, nil
}

// ListNotes enumerates every markdown note in the vault, sorted. Hidden
// directories and ignored prefixes are skipped; unreadable subtrees are
// logged and skipped rather than failing the listing.
func (v *Vault) ListNotes() ([]string, error) {
	var out []string
	err := filepath.WalkDir(v.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			appLog.Warn("vault walk error; subtree skipped", "path", path, "reason", err)
			return nil
		}
		rel, rerr := filepath.Rel(v.Root, path)
		if rerr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || v.ignored(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") || v.ignored(rel) {
			return nil
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

func (v *Vault) ignored(rel string) bool {
	for _, prefix := range v.ignore {
		if prefix != "" && strings.HasPrefix(rel, prefix) {
			return true
		}
	}
	return false
}

// ReadNote returns a note's full text. I/O failures are surfaced to the
// caller, not swallowed.
func (v *Vault) ReadNote(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("read note %s: path escapes vault", rel)
	}
	b, err := os.ReadFile(filepath.Join(v.Root, clean))
	if err != nil {
		return "", fmt.Errorf("read note %s: %w", rel, err)
	}
	return string(b), nil
}

// Frontmatter is a note's YAML front-matter as an opaque key-value map.
// No key is assumed to exist; callers probe with Has/Get.
type Frontmatter map[string]any

func (f Frontmatter) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f Frontmatter) Get(key string) (any, bool) {
	val, ok := f[key]
	return val, ok
}

// GetString returns the value under key rendered as a string.
func (f Frontmatter) GetString(key string) (string, bool) {
	val, ok := f[key]
	if !ok {
		return "", false
	}
	return fmt.Sprint(val), true
}

// NoteMetadata parses a note's front-matter block. Notes without one
// yield (nil, nil). Event extraction never consults metadata; this feeds
// the metadata note filter only.
func (v *Vault) NoteMetadata(rel string) (Frontmatter, error) {
	text, err := v.ReadNote(rel)
	if err != nil {
		return nil, err
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, nil
	}
	parts := strings.SplitN(text, "\n---\n", 2)
	if len(parts) != 2 {
		// Unterminated front-matter fence; treat as plain text.
		return nil, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(strings.TrimPrefix(parts[0], "---\n")), &fm); err != nil {
		return nil, fmt.Errorf("parse front-matter of %s: %w", rel, err)
	}
	return fm, nil
}

// FilterNotesByMetadata keeps the notes whose front-matter holds key, and
// when want is non-empty, whose value for key renders equal to it. Notes
// with broken front-matter are logged and dropped from the result.
func (v *Vault) FilterNotesByMetadata(paths []string, key, want string) []string {
	out := make([]string, 0, len(paths))
	for _, rel := range paths {
		fm, err := v.NoteMetadata(rel)
		if err != nil {
			appLog.Warn("metadata filter skipped note", "path", rel, "reason", err)
			continue
		}
		if fm == nil || !fm.Has(key) {
			continue
		}
		if want != "" {
			got, _ := fm.GetString(key)
			if got != want {
				continue
			}
		}
		out = append(out, rel)
	}
	return out
}
