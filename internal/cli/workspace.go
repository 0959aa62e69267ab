// Package cli implements the wsjf command tree. Every mutating command
// follows the same shape: take the directory lock, load and migrate the
// snapshot, apply the change through the planner board, and persist the
// new snapshot together with its planning events in one transaction.
package cli

import (
	"errors"
	"fmt"
	"os"

	"wsjf/internal/core"
	"wsjf/internal/planner"
	"wsjf/internal/repository"
	"wsjf/pkg/schema"
)

type workspace struct {
	cfg  *core.Config
	log  core.Logger
	repo *repository.Repository
}

func openWorkspace() (*workspace, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := core.NewLogger(cfg.LogLevel)
	return &workspace{
		cfg:  cfg,
		log:  logger,
		repo: repository.New(cfg.BaseDir, logger),
	}, nil
}

// view loads the snapshot read-only. No lock is taken; the snapshot file
// is swapped atomically so a reader never sees a torn write.
func (w *workspace) view(fn func(schema.Snapshot) error) error {
	snap, err := w.repo.Load()
	if err != nil {
		return err
	}
	return fn(snap)
}

// mutate runs fn against a board under the directory lock and persists
// the result. If fn returns an error nothing is written.
func (w *workspace) mutate(fn func(*planner.Board) error) error {
	if err := os.MkdirAll(w.cfg.BaseDir, 0o755); err != nil {
		return fmt.Errorf("create planning directory: %w", err)
	}

	lock := repository.NewFileLock(w.repo.LockPath(), "cli")
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	snap, err := w.repo.Load()
	if err != nil {
		return err
	}

	board := planner.NewBoard(snap)
	if err := fn(board); err != nil {
		return err
	}
	return w.repo.SaveWithEvents(board.Snapshot(), board.DrainEvents())
}

// friendlyError rewrites planner errors into user-facing messages. Other
// errors pass through unchanged.
func friendlyError(err error) error {
	var notReady *core.NotReadyError
	if errors.As(err, &notReady) {
		return fmt.Errorf("%s cannot be scheduled yet: complete technical evaluation first (current stage: %s)",
			notReady.RequirementID, notReady.Stage)
	}
	var notFound *core.NotFoundError
	if errors.As(err, &notFound) {
		if notFound.Location != "" {
			return fmt.Errorf("%s not found in %s", notFound.RequirementID, notFound.Location)
		}
		return fmt.Errorf("%s not found", notFound.RequirementID)
	}
	return err
}

// parseLocation maps the user-facing location argument to a planner
// location. "backlog" addresses the backlog; anything else is a pool ID.
func parseLocation(arg string) planner.Location {
	if arg == "backlog" {
		return planner.LocationBacklog
	}
	return planner.Location(arg)
}
