package classroom

import (
	"errors"
	"time"

	"aulagen/internal/domain/world"
)

var ErrNoVacantTile = errors.New("no vacant walkable tile")

const (
	OnboardingStatus  = "Acaba de entrar al aula."
	OnboardingThought = "¿Dónde me siento?"
	OnboardingMemory  = "Llegó al aula"

	PlacedStatus  = "Se movió a una nueva posición."
	PlacedThought = "El profesor me ha movido aquí."
)

type Student struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Personality    string          `json:"personality"`
	CurrentStatus  string          `json:"current_status"`
	CurrentThought string          `json:"current_thought"`
	Color          string          `json:"color"`
	Memories       []string        `json:"memories"`
	Position       world.Point     `json:"position"`
	Facing         world.Direction `json:"facing"`
}

type EventKind string

const (
	EventAction   EventKind = "action"
	EventDialogue EventKind = "dialogue"
	EventThought  EventKind = "thought"
	EventSystem   EventKind = "system"
)

type Event struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"timestamp"`
	Kind       EventKind `json:"type"`
	AgentID    string    `json:"agent_id,omitempty"`
	AgentName  string    `json:"agent_name,omitempty"`
	Content    string    `json:"content"`
}

type TurnState string

const (
	TurnIdle      TurnState = "idle"
	TurnResolving TurnState = "resolving"
)

// Palette is the set of avatar colours handed out to new students.
var Palette = []string{
	"bg-blue-500", "bg-pink-500", "bg-green-500", "bg-yellow-500",
	"bg-purple-500", "bg-red-500", "bg-indigo-500", "bg-orange-500",
	"bg-teal-500", "bg-red-700",
}
