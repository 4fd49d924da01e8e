package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	appLog "notecal/internal/log"
)

// Watch blocks watching the vault for markdown changes and invokes
// onChange after a burst of filesystem events has settled for debounce.
// Newly created directories are added to the watch set. Returns when ctx
// is cancelled.
func (v *Vault) Watch(ctx context.Context, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch vault: %w", err)
	}
	defer watcher.Close()

	if err := addDirs(watcher, v.Root); err != nil {
		return fmt.Errorf("watch vault: %w", err)
	}

	// Timer starts stopped; the first relevant event arms it.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	appLog.Info("vault watch started", "root", v.Root, "debounce", debounce)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, serr := os.Stat(ev.Name); serr == nil && info.IsDir() {
					if err := addDirs(watcher, ev.Name); err != nil {
						appLog.Warn("failed to watch new directory", "path", ev.Name, "reason", err)
					}
				}
			}
			if !isNoteEvent(ev) {
				continue
			}
			appLog.Debug("vault change", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLog.Error("vault watch error", werr, "root", v.Root)

		case <-timer.C:
			onChange()
		}
	}
}

func isNoteEvent(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasSuffix(strings.ToLower(ev.Name), ".md")
}

func addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if werr := watcher.Add(path); werr != nil {
			appLog.Warn("failed to watch directory", "path", path, "reason", werr)
		}
		return nil
	})
}
