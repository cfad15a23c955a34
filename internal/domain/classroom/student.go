package classroom

import "aulagen/internal/domain/world"

// NewStudent builds a freshly enrolled student standing at pos.
func NewStudent(id, name, personality, color string, pos world.Point) Student {
	return Student{
		ID:             id,
		Name:           name,
		Personality:    personality,
		CurrentStatus:  OnboardingStatus,
		CurrentThought: OnboardingThought,
		Color:          color,
		Memories:       []string{OnboardingMemory},
		Position:       pos,
		Facing:         world.FacingFront,
	}
}

// Clone returns a copy that shares no memory backing array with s.
func (s Student) Clone() Student {
	s.Memories = append([]string(nil), s.Memories...)
	return s
}

func (s *Student) MoveTo(target world.Point) {
	s.Facing = world.Facing(s.Facing, s.Position, target)
	s.Position = target
}

// ApplyTurn merges one resolved intention. Memory is append-only.
func (s *Student) ApplyTurn(status, thought, memory string, target world.Point) {
	s.CurrentStatus = status
	s.CurrentThought = thought
	s.Memories = append(append([]string(nil), s.Memories...), memory)
	s.MoveTo(target)
}

func (s Student) Initial() string {
	for _, r := range s.Name {
		return string(r)
	}
	return "?"
}
