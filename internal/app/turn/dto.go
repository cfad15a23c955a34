package turn

import "aulagen/internal/domain/classroom"

// Outcome summarizes one resolved turn.
type Outcome struct {
	TurnID      string `json:"turn_id"`
	Directive   string `json:"directive,omitempty"`
	Applied     int    `json:"applied"`
	Dropped     int    `json:"dropped"`
	Substituted int    `json:"substituted"`
	Failed      bool   `json:"failed"`
	Error       string `json:"error,omitempty"`
}

// State is a read-only snapshot of a session.
type State struct {
	Students  []classroom.Student  `json:"students"`
	Events    []classroom.Event    `json:"events"`
	TurnState classroom.TurnState `json:"turn_state"`
}

const (
	dropMalformed    = "malformed"
	dropUnknown      = "unknown_student"
	dropDuplicate    = "duplicate"
	dropApplyFailure = "apply_failed"
)
