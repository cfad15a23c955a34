package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aulagen/internal/app/ports"
	"aulagen/internal/domain/classroom"
	"aulagen/internal/domain/world"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid roster request")

// Registry owns the mutation rules for student records.
type Registry struct {
	Students ports.StudentRepository
	Grid     *world.Grid
	NewID    func() string
}

func (r Registry) Create(ctx context.Context, name, personality string) (classroom.Student, error) {
	name = strings.TrimSpace(name)
	personality = strings.TrimSpace(personality)
	if name == "" || personality == "" {
		return classroom.Student{}, ErrInvalidRequest
	}

	existing, err := r.Students.List(ctx)
	if err != nil {
		return classroom.Student{}, err
	}
	occupied := make(map[world.Point]bool, len(existing))
	for _, s := range existing {
		occupied[s.Position] = true
	}
	spawn, ok := r.Grid.FirstWalkable(func(p world.Point) bool { return occupied[p] })
	if !ok {
		return classroom.Student{}, classroom.ErrNoVacantTile
	}

	color := classroom.Palette[len(existing)%len(classroom.Palette)]
	s := classroom.NewStudent(r.newID(), name, personality, color, spawn)
	if err := r.Students.Create(ctx, s); err != nil {
		return classroom.Student{}, fmt.Errorf("create student: %w", err)
	}
	return s, nil
}

// Relocate moves a student without touching its memory stream.
func (r Registry) Relocate(ctx context.Context, id string, target world.Point, status, thought string) (classroom.Student, error) {
	if err := r.Grid.CheckWalkable(target); err != nil {
		return classroom.Student{}, err
	}
	s, err := r.Students.Get(ctx, id)
	if err != nil {
		return classroom.Student{}, err
	}
	s.MoveTo(target)
	s.CurrentStatus = status
	s.CurrentThought = thought
	if err := r.Students.Save(ctx, s); err != nil {
		return classroom.Student{}, err
	}
	return s, nil
}

func (r Registry) ApplyTurnUpdate(ctx context.Context, id, status, thought, memory string, target world.Point) (classroom.Student, error) {
	if err := r.Grid.CheckWalkable(target); err != nil {
		return classroom.Student{}, err
	}
	s, err := r.Students.Get(ctx, id)
	if err != nil {
		return classroom.Student{}, err
	}
	s.ApplyTurn(status, thought, memory, target)
	if err := r.Students.Save(ctx, s); err != nil {
		return classroom.Student{}, err
	}
	return s, nil
}

func (r Registry) LookupByName(ctx context.Context, name string) (classroom.Student, error) {
	return r.Students.FindByName(ctx, name)
}

func (r Registry) Get(ctx context.Context, id string) (classroom.Student, error) {
	return r.Students.Get(ctx, id)
}

func (r Registry) List(ctx context.Context) ([]classroom.Student, error) {
	return r.Students.List(ctx)
}

func (r Registry) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}
