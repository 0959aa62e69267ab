package schema

// SprintPool is a named, capacity-bounded planning bucket. Membership is
// placement, not ownership: a requirement keeps its identity when it moves
// between pools and the backlog. The member list is ordered by insertion
// and is never auto-sorted.
type SprintPool struct {
	ID                 string        `json:"id" yaml:"id"`
	Name               string        `json:"name" yaml:"name"`
	StartDate          string        `json:"start_date" yaml:"start_date"`
	EndDate            string        `json:"end_date" yaml:"end_date"`
	TotalDays          float64       `json:"total_days" yaml:"total_days"`
	BugReservePct      int           `json:"bug_reserve_pct" yaml:"bug_reserve_pct"`
	RefactorReservePct int           `json:"refactor_reserve_pct" yaml:"refactor_reserve_pct"`
	OtherReservePct    int           `json:"other_reserve_pct" yaml:"other_reserve_pct"`
	Requirements       []Requirement `json:"requirements" yaml:"requirements"`
}

// AvailableDays returns the capacity left for requirements after the
// bug/refactor/other reserves are taken off the top.
func (p *SprintPool) AvailableDays() float64 {
	reserved := float64(p.BugReservePct+p.RefactorReservePct+p.OtherReservePct) / 100
	if reserved > 1 {
		reserved = 1
	}
	return p.TotalDays * (1 - reserved)
}

// CommittedDays returns the effort already scheduled into the pool.
func (p *SprintPool) CommittedDays() float64 {
	var total float64
	for _, r := range p.Requirements {
		total += r.EffortDays
	}
	return total
}
