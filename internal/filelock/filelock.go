// Package filelock coordinates concurrent access to the JSON/JSONL
// artifacts under the data root: an exclusive advisory lock per path,
// plus a temp-file-then-rename write so a reader never observes a
// half-written file.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock is an exclusive, cross-process advisory lock backed by
// gofrs/flock. It guards a path, not the lock file itself — callers
// conventionally lock "<path>.lock" rather than the data file.
type FileLock struct {
	inner *flock.Flock
	path  string
}

// NewFileLock builds a lock for path. The lock file is created lazily
// by the first Lock/TryLock call.
func NewFileLock(path string) *FileLock {
	return &FileLock{inner: flock.New(path), path: path}
}

// Lock blocks until the exclusive lock on fl's path is held.
func (fl *FileLock) Lock() error {
	if err := fl.inner.Lock(); err != nil {
		return fmt.Errorf("acquire lock %s: %w", fl.path, err)
	}
	return nil
}

// TryLock attempts the lock without blocking. A false, nil result
// means another holder currently owns it.
func (fl *FileLock) TryLock() (bool, error) {
	held, err := fl.inner.TryLock()
	if err != nil {
		return false, fmt.Errorf("try lock %s: %w", fl.path, err)
	}
	return held, nil
}

// Unlock releases fl's lock.
func (fl *FileLock) Unlock() error {
	if err := fl.inner.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", fl.path, err)
	}
	return nil
}

// lockPathFor derives the lock-file path guarding a given data path.
// Writing "timeline.json" locks "timeline.json.lock" so the lock file
// never collides with, or gets overwritten by, the data it protects.
func lockPathFor(path string) string {
	return path + ".lock"
}

// withExclusiveLock runs fn while holding the lock guarding path,
// releasing it unconditionally afterward. path's directory is created
// first so the sibling lock file can be opened. Every exported helper
// below that needs mutual exclusion funnels through this.
func withExclusiveLock(path string, fn func() error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	lock := NewFileLock(lockPathFor(path))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}

// AtomicWrite replaces path's contents with data without ever exposing
// a partially written file to a concurrent reader. It writes to a
// sibling temp file in path's own directory (so the final rename stays
// within one filesystem and is therefore atomic on Unix), fsyncs
// before renaming, and removes the temp file on any failure short of
// the rename itself.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}

	committed = true
	return nil
}

// LockAndWrite holds the exclusive lock guarding path for the duration
// of an AtomicWrite. It replaces a file wholesale (per-task logs, a
// rewritten feedback queue); artifacts that merge into existing
// content (task index, queue appends, timelines) use LockAndModify.
func LockAndWrite(path string, data []byte) error {
	return withExclusiveLock(path, func() error {
		return AtomicWrite(path, data)
	})
}

// LockAndModify holds path's lock for a full read-modify-write cycle:
// it reads the file's current bytes (nil if the file does not yet
// exist), passes them to modify, and atomically writes back whatever
// modify returns. Holding the lock across the read means no writer can
// observe a state another writer is mid-update on, which is what lets
// the task index, feedback queues, and per-goal timelines do
// append-or-merge updates safely from multiple goroutines or
// processes.
func LockAndModify(path string, modify func(current []byte) ([]byte, error)) error {
	return withExclusiveLock(path, func() error {
		current, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", path, err)
		}

		next, err := modify(current)
		if err != nil {
			return err
		}
		return AtomicWrite(path, next)
	})
}

// LockAndAppendLine holds path's lock and appends line plus a trailing
// newline, creating the file if it doesn't exist yet. Used for
// append-only JSONL logs such as planner-memory history, where a full
// read-modify-write would be wasteful.
func LockAndAppendLine(path string, line []byte) error {
	return withExclusiveLock(path, func() error {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open %s for append: %w", path, err)
		}
		defer f.Close()

		if _, err := f.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("append to %s: %w", path, err)
		}
		return nil
	})
}
