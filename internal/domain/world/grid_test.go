package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultClassroomDimensions(t *testing.T) {
	g := DefaultClassroom()
	if got, want := g.Width(), 20; got != want {
		t.Fatalf("width mismatch: got=%d want=%d", got, want)
	}
	if got, want := g.Height(), 15; got != want {
		t.Fatalf("height mismatch: got=%d want=%d", got, want)
	}
	if got, want := len(g.PointsOfInterest()), 15; got != want {
		t.Fatalf("points of interest mismatch: got=%d want=%d", got, want)
	}
}

func TestTileAt_OutOfBounds(t *testing.T) {
	g := DefaultClassroom()
	cases := []Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 20, Y: 0}, {X: 0, Y: 15}}
	for _, p := range cases {
		if _, err := g.TileAt(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds for %+v, got %v", p, err)
		}
	}
	id, err := g.TileAt(7, 0)
	if err != nil {
		t.Fatalf("TileAt error: %v", err)
	}
	if id != TileChalkboard {
		t.Fatalf("expected chalkboard at (7,0), got %d", id)
	}
}

func TestWalkable(t *testing.T) {
	cases := []struct {
		id   TileID
		want bool
	}{
		{TileFloorWood, true},
		{TileFloorWoodAlt, true},
		{TileFloorTile, true},
		{TileFloorTileAlt, true},
		{TileRugPurple, true},
		{TileWallPlain, false},
		{TileBookshelf, false},
		{TileDoorClosed, false},
		{TileID(99), false},
	}
	for _, tc := range cases {
		if got := Walkable(tc.id); got != tc.want {
			t.Fatalf("Walkable(%d) got=%v want=%v", tc.id, got, tc.want)
		}
	}
}

func TestCheckWalkable(t *testing.T) {
	g := DefaultClassroom()
	if err := g.CheckWalkable(Point{X: 6, Y: 6}); err != nil {
		t.Fatalf("expected (6,6) walkable, got %v", err)
	}
	if err := g.CheckWalkable(Point{X: 0, Y: 0}); !errors.Is(err, ErrNotWalkable) {
		t.Fatalf("expected ErrNotWalkable, got %v", err)
	}
	if err := g.CheckWalkable(Point{X: 30, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	g := DefaultClassroom()
	if got, want := g.Clamp(-5, 999), (Point{X: 0, Y: 14}); got != want {
		t.Fatalf("clamp mismatch: got=%+v want=%+v", got, want)
	}
	if got, want := g.Clamp(8, 6), (Point{X: 8, Y: 6}); got != want {
		t.Fatalf("clamp mismatch: got=%+v want=%+v", got, want)
	}
}

func TestFirstWalkable_SkipsTaken(t *testing.T) {
	g := DefaultClassroom()
	p, ok := g.FirstWalkable(nil)
	if !ok || p != (Point{X: 2, Y: 1}) {
		t.Fatalf("expected (2,1), got %+v ok=%v", p, ok)
	}
	p, ok = g.FirstWalkable(func(q Point) bool { return q == Point{X: 2, Y: 1} })
	if !ok || p != (Point{X: 3, Y: 1}) {
		t.Fatalf("expected (3,1), got %+v ok=%v", p, ok)
	}
	_, ok = g.FirstWalkable(func(Point) bool { return true })
	if ok {
		t.Fatalf("expected no vacant tile")
	}
}

func TestNewGrid_RejectsRaggedLayout(t *testing.T) {
	_, err := NewGrid([][]TileID{{0, 0}, {0}}, nil)
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
	_, err = NewGrid([][]TileID{{0}}, []PointOfInterest{{X: 3, Y: 3, Label: "far"}})
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for point outside grid, got %v", err)
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.yaml")
	content := `tiles:
  - [5, 5, 5]
  - [5, 0, 5]
  - [5, 5, 5]
points_of_interest:
  - {x: 1, y: 1, label: "Centro", kind: desk}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	g, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout error: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("unexpected size %dx%d", g.Width(), g.Height())
	}
	if !g.WalkableAt(Point{X: 1, Y: 1}) || g.WalkableAt(Point{X: 0, Y: 0}) {
		t.Fatalf("walkability not loaded")
	}
	if pts := g.PointsOfInterest(); len(pts) != 1 || pts[0].Kind != PointDesk {
		t.Fatalf("unexpected points: %+v", pts)
	}

	def, err := LoadLayout("")
	if err != nil || def.Width() != 20 {
		t.Fatalf("expected default classroom, got err=%v", err)
	}
}

func TestSnapshotCopiesLayout(t *testing.T) {
	g := DefaultClassroom()
	s := g.Snapshot()
	s.Layout[1][1] = TileFloorWood
	if id, _ := g.TileAt(1, 1); id != TileBookshelf {
		t.Fatalf("snapshot mutation leaked into grid: %d", id)
	}
	if s.Walkable[0][0] || !s.Walkable[6][6] {
		t.Fatalf("unexpected walkability in snapshot")
	}
}
