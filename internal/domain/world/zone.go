package world

type PointKind string

const (
	PointTeacherDesk PointKind = "teacher_desk"
	PointPlant       PointKind = "plant"
	PointTrashcan    PointKind = "trashcan"
	PointDesk        PointKind = "desk"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PointOfInterest is static map context handed to the oracle; it never blocks movement.
type PointOfInterest struct {
	X     int       `json:"x" yaml:"x"`
	Y     int       `json:"y" yaml:"y"`
	Label string    `json:"label" yaml:"label"`
	Kind  PointKind `json:"kind" yaml:"kind"`
}
