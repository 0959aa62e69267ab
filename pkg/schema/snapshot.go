package schema

// Snapshot is the complete persisted planning state: the unscheduled
// backlog, every sprint pool, and the schema version the data was written
// at. Invariant: backlog and pool memberships partition the full
// requirement set, with no duplicate IDs.
type Snapshot struct {
	SchemaVersion int           `json:"schema_version" yaml:"schema_version"`
	Backlog       []Requirement `json:"backlog" yaml:"backlog"`
	Pools         []SprintPool  `json:"pools" yaml:"pools"`
}

// AllRequirements returns every requirement in the snapshot, backlog
// first, then pool members in pool order.
func (s *Snapshot) AllRequirements() []Requirement {
	all := make([]Requirement, 0, len(s.Backlog))
	all = append(all, s.Backlog...)
	for _, p := range s.Pools {
		all = append(all, p.Requirements...)
	}
	return all
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() Snapshot {
	out := Snapshot{
		SchemaVersion: s.SchemaVersion,
		Backlog:       make([]Requirement, len(s.Backlog)),
		Pools:         make([]SprintPool, len(s.Pools)),
	}
	copy(out.Backlog, s.Backlog)
	for i, p := range s.Pools {
		cp := p
		cp.Requirements = make([]Requirement, len(p.Requirements))
		copy(cp.Requirements, p.Requirements)
		out.Pools[i] = cp
	}
	return out
}
