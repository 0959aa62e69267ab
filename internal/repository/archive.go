package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"wsjf/pkg/schema"
)

const (
	archiveInterval  = 100 // archive a snapshot copy every 100 events
	archiveDirName   = "archive"
	archiveTimestamp = "2006-01-02T15-04-05"
)

// Archiver keeps timestamped copies of the planning snapshot alongside
// the changelog, so the audit trail always has a nearby full-state
// anchor.
type Archiver struct {
	baseDir string
}

// NewArchiver creates an archiver rooted at the planning directory.
func NewArchiver(baseDir string) *Archiver {
	return &Archiver{baseDir: baseDir}
}

// ShouldArchive reports whether enough events have accumulated since the
// last archived copy.
func (a *Archiver) ShouldArchive(eventsSinceArchive int) bool {
	return eventsSinceArchive >= archiveInterval
}

// Write stores a timestamped copy of the snapshot in the archive
// directory and returns the timestamp tag.
func (a *Archiver) Write(snap schema.Snapshot) (string, error) {
	dir := filepath.Join(a.baseDir, archiveDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return "", fmt.Errorf("marshal archive: %w", err)
	}

	tag := archiveTag()
	if err := os.WriteFile(filepath.Join(dir, tag+".yaml"), data, 0o644); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	return tag, nil
}

// archiveTag returns the timestamp tag used to name archive files.
func archiveTag() string {
	return time.Now().UTC().Format(archiveTimestamp)
}

// Latest loads the most recent archived snapshot. The second return is
// false when no archive exists yet.
func (a *Archiver) Latest() (schema.Snapshot, bool, error) {
	dir := filepath.Join(a.baseDir, archiveDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return schema.Snapshot{}, false, nil
		}
		return schema.Snapshot{}, false, fmt.Errorf("read archive directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return schema.Snapshot{}, false, nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	data, err := os.ReadFile(filepath.Join(dir, names[0]))
	if err != nil {
		return schema.Snapshot{}, false, fmt.Errorf("read archive: %w", err)
	}

	var snap schema.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return schema.Snapshot{}, false, fmt.Errorf("parse archive: %w", err)
	}
	return snap, true, nil
}
