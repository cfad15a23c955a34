package ports

import (
	"context"

	"aulagen/internal/domain/classroom"
)

type OracleRequest struct {
	Prompt string
	// ResponseSchema is the JSON schema the reply must follow.
	ResponseSchema []byte
	Directive      string
	Students       []classroom.Student
}

// IntentionProvider is the cognitive oracle. It returns the raw reply text;
// parsing and validation stay on this side of the boundary.
type IntentionProvider interface {
	Propose(ctx context.Context, req OracleRequest) ([]byte, error)
}
