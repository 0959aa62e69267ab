// Package repository handles file I/O for the .wsjf/ planning directory:
// the current snapshot, an append-only planning changelog, and periodic
// snapshot archives. Every load runs the schema migration before the
// data reaches any other component.
package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wsjf/internal/core"
	"wsjf/internal/migrate"
	"wsjf/pkg/schema"
)

const (
	snapshotFile  = "planning.yaml"
	changelogFile = "changelog.yaml"
	lockFileName  = ".lock"
)

// Repository reads and writes the planning directory.
type Repository struct {
	baseDir  string
	migrator *migrate.Engine
	archiver *Archiver
}

// New creates a repository rooted at baseDir. The logger receives
// migration diagnostics; nil discards them.
func New(baseDir string, logger core.Logger) *Repository {
	return &Repository{
		baseDir:  baseDir,
		migrator: migrate.NewEngine(logger),
		archiver: NewArchiver(baseDir),
	}
}

// LockPath returns the path callers lock before mutating the directory.
func (r *Repository) LockPath() string {
	return filepath.Join(r.baseDir, lockFileName)
}

// Load reads the current snapshot and migrates it to the current schema
// version. A missing directory or snapshot file yields an empty,
// current-version snapshot: first run is not an error.
func (r *Repository) Load() (schema.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(r.baseDir, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return schema.Snapshot{SchemaVersion: migrate.CurrentSchemaVersion}, nil
		}
		return schema.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap schema.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return schema.Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}

	return r.migrator.Migrate(snap), nil
}

// Save writes the snapshot, stamped with the current schema version,
// through an atomic transaction.
func (r *Repository) Save(snap schema.Snapshot) error {
	return r.SaveWithEvents(snap, nil)
}

// SaveWithEvents writes the snapshot and appends planning events to the
// changelog in one atomic transaction. When enough events have
// accumulated an archive copy of the snapshot is written as well.
func (r *Repository) SaveWithEvents(snap schema.Snapshot, events []schema.PlanningEvent) error {
	snap.SchemaVersion = migrate.CurrentSchemaVersion

	snapData, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tx := NewCopyOnWriteTx(r.baseDir)
	if err := tx.Begin(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := r.writeInTx(tx, snap, snapData, events); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("rollback failed: %v", rbErr)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type changelogDoc struct {
	Events             []map[string]interface{} `yaml:"events"`
	LastArchive        string                   `yaml:"last_archive"`
	EventsSinceArchive int                      `yaml:"events_since_archive"`
}

func (r *Repository) writeInTx(tx *CopyOnWriteTx, snap schema.Snapshot, snapData []byte, events []schema.PlanningEvent) error {
	if err := tx.WriteFile(snapshotFile, snapData); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	var changelog changelogDoc
	data, err := tx.ReadFile(changelogFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read changelog: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &changelog); err != nil {
			return fmt.Errorf("parse changelog: %w", err)
		}
	}

	for _, event := range events {
		changelog.Events = append(changelog.Events, eventToMap(event))
		changelog.EventsSinceArchive++
	}

	if r.archiver.ShouldArchive(changelog.EventsSinceArchive) {
		tag, err := writeArchiveInTx(tx, snapData)
		if err != nil {
			return err
		}
		changelog.LastArchive = tag
		changelog.EventsSinceArchive = 0
	}

	data, err = yaml.Marshal(&changelog)
	if err != nil {
		return fmt.Errorf("marshal changelog: %w", err)
	}
	if err := tx.WriteFile(changelogFile, data); err != nil {
		return fmt.Errorf("write changelog: %w", err)
	}
	return nil
}

func writeArchiveInTx(tx *CopyOnWriteTx, snapData []byte) (string, error) {
	tag := archiveTag()
	if err := tx.WriteFile(filepath.Join(archiveDirName, tag+".yaml"), snapData); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	return tag, nil
}

// eventToMap flattens a planning event for YAML serialization, tagging it
// with its type so readers can dispatch.
func eventToMap(event schema.PlanningEvent) map[string]interface{} {
	m := map[string]interface{}{
		"event_type": event.EventType(),
		"event_id":   event.EventID(),
		"timestamp":  event.Timestamp(),
	}
	switch e := event.(type) {
	case *schema.RequirementAdded:
		m["requirement"] = e.Requirement
	case *schema.RequirementUpdated:
		m["requirement_id"] = e.RequirementID
	case *schema.RequirementDeleted:
		m["requirement_id"] = e.RequirementID
		m["requirement"] = e.Requirement
	case *schema.RequirementMoved:
		m["requirement_id"] = e.RequirementID
		m["from"] = e.From
		m["to"] = e.To
	case *schema.PoolAdded:
		m["pool"] = e.Pool
	case *schema.PoolUpdated:
		m["pool_id"] = e.PoolID
	case *schema.PoolDeleted:
		m["pool_id"] = e.PoolID
		m["member_ids"] = e.MemberIDs
	}
	return m
}

// ReadChangelog returns the raw changelog events, oldest first. Used by
// reporting tooling; the planner never replays them.
func (r *Repository) ReadChangelog() ([]map[string]interface{}, error) {
	data, err := os.ReadFile(filepath.Join(r.baseDir, changelogFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read changelog: %w", err)
	}

	var changelog changelogDoc
	if err := yaml.Unmarshal(data, &changelog); err != nil {
		return nil, fmt.Errorf("parse changelog: %w", err)
	}
	return changelog.Events, nil
}
