// Package scripted is an offline oracle: every student stays where they are
// and reflects on the moment.
package scripted

import (
	"context"
	"encoding/json"
	"fmt"

	"aulagen/internal/app/oracle"
	"aulagen/internal/app/ports"
)

type Provider struct{}

type reply struct {
	Updates []oracle.Intention `json:"updates"`
}

func (Provider) Propose(ctx context.Context, req ports.OracleRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	updates := make([]oracle.Intention, 0, len(req.Students))
	for _, s := range req.Students {
		in := oracle.Intention{
			StudentName: s.Name,
			Thought:     "Me pregunto qué pasará ahora.",
			Action:      fmt.Sprintf("%s se queda en su sitio y observa el aula.", s.Name),
			TargetX:     s.Position.X,
			TargetY:     s.Position.Y,
			NewMemory:   "Pasó un rato tranquilo en clase.",
		}
		if req.Directive != "" {
			in.Thought = fmt.Sprintf("El profesor ha dicho: %q.", req.Directive)
			in.Action = fmt.Sprintf("%s escucha al profesor con atención.", s.Name)
			in.NewMemory = fmt.Sprintf("El profesor dijo: %q", req.Directive)
		}
		updates = append(updates, in)
	}
	return json.Marshal(reply{Updates: updates})
}
