package schema

import "time"

// PlanningEvent is the interface for all planning changelog event types.
// Events are an audit surface: state of record is the snapshot, and the
// changelog is append-only.
type PlanningEvent interface {
	EventType() string
	EventID() string
	Timestamp() time.Time
}

// RequirementAdded represents a requirement entering the backlog.
type RequirementAdded struct {
	EventID_    string      `json:"event_id" yaml:"event_id"`
	Requirement Requirement `json:"requirement" yaml:"requirement"`
	Timestamp_  time.Time   `json:"timestamp" yaml:"timestamp"`
}

func (e *RequirementAdded) EventType() string    { return "RequirementAdded" }
func (e *RequirementAdded) EventID() string      { return e.EventID_ }
func (e *RequirementAdded) Timestamp() time.Time { return e.Timestamp_ }

// RequirementUpdated represents a requirement edit.
type RequirementUpdated struct {
	EventID_      string    `json:"event_id" yaml:"event_id"`
	RequirementID string    `json:"requirement_id" yaml:"requirement_id"`
	Timestamp_    time.Time `json:"timestamp" yaml:"timestamp"`
}

func (e *RequirementUpdated) EventType() string    { return "RequirementUpdated" }
func (e *RequirementUpdated) EventID() string      { return e.EventID_ }
func (e *RequirementUpdated) Timestamp() time.Time { return e.Timestamp_ }

// RequirementDeleted represents a requirement removal.
type RequirementDeleted struct {
	EventID_      string      `json:"event_id" yaml:"event_id"`
	RequirementID string      `json:"requirement_id" yaml:"requirement_id"`
	Requirement   Requirement `json:"requirement" yaml:"requirement"` // snapshot at deletion
	Timestamp_    time.Time   `json:"timestamp" yaml:"timestamp"`
}

func (e *RequirementDeleted) EventType() string    { return "RequirementDeleted" }
func (e *RequirementDeleted) EventID() string      { return e.EventID_ }
func (e *RequirementDeleted) Timestamp() time.Time { return e.Timestamp_ }

// RequirementMoved represents a placement change between the backlog and
// sprint pools.
type RequirementMoved struct {
	EventID_      string    `json:"event_id" yaml:"event_id"`
	RequirementID string    `json:"requirement_id" yaml:"requirement_id"`
	From          string    `json:"from" yaml:"from"`
	To            string    `json:"to" yaml:"to"`
	Timestamp_    time.Time `json:"timestamp" yaml:"timestamp"`
}

func (e *RequirementMoved) EventType() string    { return "RequirementMoved" }
func (e *RequirementMoved) EventID() string      { return e.EventID_ }
func (e *RequirementMoved) Timestamp() time.Time { return e.Timestamp_ }

// PoolAdded represents a sprint pool creation.
type PoolAdded struct {
	EventID_   string     `json:"event_id" yaml:"event_id"`
	Pool       SprintPool `json:"pool" yaml:"pool"`
	Timestamp_ time.Time  `json:"timestamp" yaml:"timestamp"`
}

func (e *PoolAdded) EventType() string    { return "PoolAdded" }
func (e *PoolAdded) EventID() string      { return e.EventID_ }
func (e *PoolAdded) Timestamp() time.Time { return e.Timestamp_ }

// PoolUpdated represents a sprint pool metadata edit.
type PoolUpdated struct {
	EventID_   string    `json:"event_id" yaml:"event_id"`
	PoolID     string    `json:"pool_id" yaml:"pool_id"`
	Timestamp_ time.Time `json:"timestamp" yaml:"timestamp"`
}

func (e *PoolUpdated) EventType() string    { return "PoolUpdated" }
func (e *PoolUpdated) EventID() string      { return e.EventID_ }
func (e *PoolUpdated) Timestamp() time.Time { return e.Timestamp_ }

// PoolDeleted represents a sprint pool removal. Members drain back to the
// backlog; MemberIDs records them for the audit trail.
type PoolDeleted struct {
	EventID_   string    `json:"event_id" yaml:"event_id"`
	PoolID     string    `json:"pool_id" yaml:"pool_id"`
	MemberIDs  []string  `json:"member_ids" yaml:"member_ids"`
	Timestamp_ time.Time `json:"timestamp" yaml:"timestamp"`
}

func (e *PoolDeleted) EventType() string    { return "PoolDeleted" }
func (e *PoolDeleted) EventID() string      { return e.EventID_ }
func (e *PoolDeleted) Timestamp() time.Time { return e.Timestamp_ }
