package memory

import (
	"context"

	"aulagen/internal/app/ports"
	"aulagen/internal/domain/classroom"
)

type StudentRepo struct {
	store *Store
}

func NewStudentRepo(store *Store) StudentRepo {
	return StudentRepo{store: store}
}

func (r StudentRepo) Create(ctx context.Context, s classroom.Student) error {
	var err error
	r.store.write(ctx, func() {
		if _, exists := r.store.students[s.ID]; exists {
			err = ports.ErrConflict
			return
		}
		r.store.students[s.ID] = s.Clone()
		r.store.order = append(r.store.order, s.ID)
	})
	return err
}

func (r StudentRepo) Get(ctx context.Context, id string) (classroom.Student, error) {
	var (
		out classroom.Student
		ok  bool
	)
	r.store.read(ctx, func() {
		out, ok = r.store.students[id]
		out = out.Clone()
	})
	if !ok {
		return classroom.Student{}, ports.ErrNotFound
	}
	return out, nil
}

func (r StudentRepo) FindByName(ctx context.Context, name string) (classroom.Student, error) {
	var (
		out classroom.Student
		ok  bool
	)
	r.store.read(ctx, func() {
		for _, id := range r.store.order {
			if s := r.store.students[id]; s.Name == name {
				out, ok = s.Clone(), true
				return
			}
		}
	})
	if !ok {
		return classroom.Student{}, ports.ErrNotFound
	}
	return out, nil
}

func (r StudentRepo) List(ctx context.Context) ([]classroom.Student, error) {
	var out []classroom.Student
	r.store.read(ctx, func() {
		out = make([]classroom.Student, 0, len(r.store.order))
		for _, id := range r.store.order {
			out = append(out, r.store.students[id].Clone())
		}
	})
	return out, nil
}

func (r StudentRepo) Save(ctx context.Context, s classroom.Student) error {
	var err error
	r.store.write(ctx, func() {
		if _, exists := r.store.students[s.ID]; !exists {
			err = ports.ErrNotFound
			return
		}
		r.store.students[s.ID] = s.Clone()
	})
	return err
}
