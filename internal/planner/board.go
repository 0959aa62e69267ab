// Package planner owns the partition of requirements across the
// unscheduled backlog and named sprint pools. Every mutation is
// validate-then-commit: a rejected operation leaves the board untouched.
// The board is not safe for concurrent use; callers serialize.
package planner

import (
	"sort"
	"time"

	"wsjf/internal/core"
	"wsjf/internal/scoring"
	"wsjf/pkg/schema"
)

// Location identifies where a requirement lives: the backlog or a sprint
// pool, addressed by pool ID.
type Location string

// LocationBacklog is the default, unguarded holding area.
const LocationBacklog Location = "backlog"

// Board holds the full requirement universe and the planning event trail
// accumulated since the last drain.
type Board struct {
	snap   schema.Snapshot
	events []schema.PlanningEvent
}

// NewBoard builds a board over a snapshot. The snapshot must already be
// migrated to the current schema version; the board deep-copies it and
// recomputes all scores so no stale derived fields survive the load.
func NewBoard(snap schema.Snapshot) *Board {
	b := &Board{snap: snap.Clone()}
	b.Recalculate()
	return b
}

// Snapshot returns a deep copy of the current board state.
func (b *Board) Snapshot() schema.Snapshot {
	return b.snap.Clone()
}

// Backlog returns the unscheduled requirements, sorted by display score
// descending.
func (b *Board) Backlog() []schema.Requirement {
	out := make([]schema.Requirement, len(b.snap.Backlog))
	copy(out, b.snap.Backlog)
	return out
}

// Pools returns copies of the sprint pools in creation order.
func (b *Board) Pools() []schema.SprintPool {
	clone := b.snap.Clone()
	return clone.Pools
}

// DrainEvents returns the planning events accumulated since the last
// drain and clears the trail.
func (b *Board) DrainEvents() []schema.PlanningEvent {
	out := b.events
	b.events = nil
	return out
}

// Location reports where a requirement currently lives.
func (b *Board) Location(reqID string) (Location, bool) {
	for _, r := range b.snap.Backlog {
		if r.ID == reqID {
			return LocationBacklog, true
		}
	}
	for _, p := range b.snap.Pools {
		for _, r := range p.Requirements {
			if r.ID == reqID {
				return Location(p.ID), true
			}
		}
	}
	return "", false
}

// Move relocates a requirement between the backlog and sprint pools.
// Moving into the backlog is always permitted; moving into any pool
// requires the requirement's delivery stage to be ready. src == dst is a
// no-op. The move either fully succeeds or is rejected before any
// mutation.
func (b *Board) Move(reqID string, src, dst Location) error {
	if src == dst {
		return nil
	}

	req, ok := b.findAt(reqID, src)
	if !ok {
		return &core.NotFoundError{RequirementID: reqID, Location: string(src)}
	}

	if dst != LocationBacklog {
		if b.poolIndex(string(dst)) < 0 {
			return &core.NotFoundError{RequirementID: reqID, Location: string(dst)}
		}
		if !req.DeliveryStage.IsReady() {
			return &core.NotReadyError{RequirementID: reqID, Stage: string(req.DeliveryStage)}
		}
	}

	b.removeAt(reqID, src)
	if dst == LocationBacklog {
		b.snap.Backlog = append(b.snap.Backlog, req)
		b.sortBacklog()
	} else {
		i := b.poolIndex(string(dst))
		b.snap.Pools[i].Requirements = append(b.snap.Pools[i].Requirements, req)
	}

	b.emit(&schema.RequirementMoved{
		RequirementID: reqID,
		From:          string(src),
		To:            string(dst),
	})
	b.Recalculate()
	return nil
}

// AddRequirement validates and places a requirement into the backlog. An
// empty ID is generated; an empty delivery stage is materialized to
// StagePending before validation. Pre-existing derived scores are
// overwritten by the recompute.
func (b *Board) AddRequirement(r schema.Requirement) (schema.Requirement, error) {
	if r.DeliveryStage == "" {
		r.DeliveryStage = schema.StagePending
	}
	if r.ID == "" {
		id, err := schema.NewRequirementID()
		if err != nil {
			return schema.Requirement{}, err
		}
		r.ID = id
	}
	if err := schema.ValidateRequirement(&r); err != nil {
		return schema.Requirement{}, &core.ValidationError{Field: "requirement", Message: err.Error(), Err: err}
	}
	if _, exists := b.Location(r.ID); exists {
		return schema.Requirement{}, &core.ValidationError{
			Field:   "id",
			Message: "requirement " + r.ID + " already exists",
		}
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	b.snap.Backlog = append(b.snap.Backlog, r)
	b.emit(&schema.RequirementAdded{Requirement: r})
	b.Recalculate()
	return r, nil
}

// UpdateRequirement replaces a requirement in place, wherever it lives.
// Placement is untouched; scores are recomputed.
func (b *Board) UpdateRequirement(r schema.Requirement) error {
	if r.DeliveryStage == "" {
		r.DeliveryStage = schema.StagePending
	}
	if err := schema.ValidateRequirement(&r); err != nil {
		return &core.ValidationError{Field: "requirement", Message: err.Error(), Err: err}
	}

	loc, ok := b.Location(r.ID)
	if !ok {
		return &core.NotFoundError{RequirementID: r.ID}
	}
	b.replaceAt(r, loc)
	b.emit(&schema.RequirementUpdated{RequirementID: r.ID})
	b.Recalculate()
	return nil
}

// DeleteRequirement removes a requirement from whichever location it
// occupies. No cascading changes happen to other requirements beyond the
// score recompute.
func (b *Board) DeleteRequirement(reqID string) error {
	loc, ok := b.Location(reqID)
	if !ok {
		return &core.NotFoundError{RequirementID: reqID}
	}
	req, _ := b.findAt(reqID, loc)
	b.removeAt(reqID, loc)
	b.emit(&schema.RequirementDeleted{RequirementID: reqID, Requirement: req})
	b.Recalculate()
	return nil
}

// AddPool creates an empty sprint pool. Any membership on the argument is
// ignored; requirements enter pools only through Move.
func (b *Board) AddPool(p schema.SprintPool) (schema.SprintPool, error) {
	if p.ID == "" {
		id, err := schema.NewPoolID()
		if err != nil {
			return schema.SprintPool{}, err
		}
		p.ID = id
	}
	if err := schema.ValidatePool(&p); err != nil {
		return schema.SprintPool{}, &core.ValidationError{Field: "pool", Message: err.Error(), Err: err}
	}
	if b.poolIndex(p.ID) >= 0 {
		return schema.SprintPool{}, &core.ValidationError{
			Field:   "id",
			Message: "pool " + p.ID + " already exists",
		}
	}
	p.Requirements = nil

	b.snap.Pools = append(b.snap.Pools, p)
	b.emit(&schema.PoolAdded{Pool: p})
	return p, nil
}

// UpdatePool replaces a pool's metadata. Membership is preserved as-is.
func (b *Board) UpdatePool(p schema.SprintPool) error {
	if err := schema.ValidatePool(&p); err != nil {
		return &core.ValidationError{Field: "pool", Message: err.Error(), Err: err}
	}
	i := b.poolIndex(p.ID)
	if i < 0 {
		return &core.NotFoundError{RequirementID: p.ID, Location: "pools"}
	}
	p.Requirements = b.snap.Pools[i].Requirements
	b.snap.Pools[i] = p
	b.emit(&schema.PoolUpdated{PoolID: p.ID})
	return nil
}

// DeletePool removes a pool and drains its members back into the backlog.
// Members are never discarded.
func (b *Board) DeletePool(poolID string) error {
	i := b.poolIndex(poolID)
	if i < 0 {
		return &core.NotFoundError{RequirementID: poolID, Location: "pools"}
	}

	members := b.snap.Pools[i].Requirements
	memberIDs := make([]string, len(members))
	for j, r := range members {
		memberIDs[j] = r.ID
	}

	b.snap.Backlog = append(b.snap.Backlog, members...)
	b.snap.Pools = append(b.snap.Pools[:i], b.snap.Pools[i+1:]...)
	b.sortBacklog()
	b.emit(&schema.PoolDeleted{PoolID: poolID, MemberIDs: memberIDs})
	b.Recalculate()
	return nil
}

// Recalculate rescores the full requirement universe and re-sorts the
// backlog. Idempotent; safe to run after every mutation.
func (b *Board) Recalculate() {
	scored := scoring.Compute(b.snap.AllRequirements())
	byID := make(map[string]schema.Requirement, len(scored))
	for _, r := range scored {
		byID[r.ID] = r
	}

	for i, r := range b.snap.Backlog {
		if updated, ok := byID[r.ID]; ok {
			b.snap.Backlog[i] = updated
		}
	}
	for i := range b.snap.Pools {
		for j, r := range b.snap.Pools[i].Requirements {
			if updated, ok := byID[r.ID]; ok {
				b.snap.Pools[i].Requirements[j] = updated
			}
		}
	}
	b.sortBacklog()
}

// sortBacklog orders the backlog by display score descending. The sort is
// stable so ties keep their relative order.
func (b *Board) sortBacklog() {
	sort.SliceStable(b.snap.Backlog, func(i, j int) bool {
		return b.snap.Backlog[i].DisplayScore > b.snap.Backlog[j].DisplayScore
	})
}

func (b *Board) poolIndex(poolID string) int {
	for i, p := range b.snap.Pools {
		if p.ID == poolID {
			return i
		}
	}
	return -1
}

func (b *Board) findAt(reqID string, loc Location) (schema.Requirement, bool) {
	if loc == LocationBacklog {
		for _, r := range b.snap.Backlog {
			if r.ID == reqID {
				return r, true
			}
		}
		return schema.Requirement{}, false
	}
	i := b.poolIndex(string(loc))
	if i < 0 {
		return schema.Requirement{}, false
	}
	for _, r := range b.snap.Pools[i].Requirements {
		if r.ID == reqID {
			return r, true
		}
	}
	return schema.Requirement{}, false
}

func (b *Board) removeAt(reqID string, loc Location) {
	if loc == LocationBacklog {
		b.snap.Backlog = removeByID(b.snap.Backlog, reqID)
		return
	}
	if i := b.poolIndex(string(loc)); i >= 0 {
		b.snap.Pools[i].Requirements = removeByID(b.snap.Pools[i].Requirements, reqID)
	}
}

func (b *Board) replaceAt(r schema.Requirement, loc Location) {
	if loc == LocationBacklog {
		for i := range b.snap.Backlog {
			if b.snap.Backlog[i].ID == r.ID {
				b.snap.Backlog[i] = r
				return
			}
		}
		return
	}
	if i := b.poolIndex(string(loc)); i >= 0 {
		for j := range b.snap.Pools[i].Requirements {
			if b.snap.Pools[i].Requirements[j].ID == r.ID {
				b.snap.Pools[i].Requirements[j] = r
				return
			}
		}
	}
}

func (b *Board) emit(event schema.PlanningEvent) {
	id, err := schema.NewEventID()
	if err != nil {
		id = "EVT-unknown"
	}
	now := time.Now()
	switch e := event.(type) {
	case *schema.RequirementAdded:
		e.EventID_, e.Timestamp_ = id, now
	case *schema.RequirementUpdated:
		e.EventID_, e.Timestamp_ = id, now
	case *schema.RequirementDeleted:
		e.EventID_, e.Timestamp_ = id, now
	case *schema.RequirementMoved:
		e.EventID_, e.Timestamp_ = id, now
	case *schema.PoolAdded:
		e.EventID_, e.Timestamp_ = id, now
	case *schema.PoolUpdated:
		e.EventID_, e.Timestamp_ = id, now
	case *schema.PoolDeleted:
		e.EventID_, e.Timestamp_ = id, now
	}
	b.events = append(b.events, event)
}

func removeByID(reqs []schema.Requirement, reqID string) []schema.Requirement {
	out := make([]schema.Requirement, 0, len(reqs))
	for _, r := range reqs {
		if r.ID != reqID {
			out = append(out, r)
		}
	}
	return out
}
