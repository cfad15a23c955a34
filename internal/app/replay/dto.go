package replay

import "aulagen/internal/domain/classroom"

type Request struct {
	// AgentID narrows the replay to one student; empty keeps every event.
	AgentID      string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events []classroom.Event            `json:"events"`
	Counts map[classroom.EventKind]int `json:"counts"`
}
