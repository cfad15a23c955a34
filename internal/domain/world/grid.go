package world

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrNotWalkable   = errors.New("tile is not walkable")
	ErrInvalidLayout = errors.New("invalid layout")
)

// Grid is the classroom map. It is immutable once built.
type Grid struct {
	width  int
	height int
	tiles  [][]TileID
	points []PointOfInterest
}

func NewGrid(layout [][]TileID, points []PointOfInterest) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}
	width := len(layout[0])
	tiles := make([][]TileID, len(layout))
	for y, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLayout, y, len(row), width)
		}
		tiles[y] = append([]TileID(nil), row...)
	}
	g := &Grid{width: width, height: len(tiles), tiles: tiles}
	for _, p := range points {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: point of interest %q at (%d, %d)", ErrInvalidLayout, p.Label, p.X, p.Y)
		}
		g.points = append(g.points, p)
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) TileAt(x, y int) (TileID, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.tiles[y][x], nil
}

// WalkableAt reports false for coordinates outside the grid.
func (g *Grid) WalkableAt(p Point) bool {
	id, err := g.TileAt(p.X, p.Y)
	if err != nil {
		return false
	}
	return Walkable(id)
}

// CheckWalkable returns ErrOutOfBounds or ErrNotWalkable when p cannot hold a student.
func (g *Grid) CheckWalkable(p Point) error {
	id, err := g.TileAt(p.X, p.Y)
	if err != nil {
		return err
	}
	if !Walkable(id) {
		return fmt.Errorf("%w: (%d, %d) is tile %d", ErrNotWalkable, p.X, p.Y, id)
	}
	return nil
}

func (g *Grid) Clamp(x, y int) Point {
	return Point{X: clamp(x, 0, g.width-1), Y: clamp(y, 0, g.height-1)}
}

func (g *Grid) PointsOfInterest() []PointOfInterest {
	return append([]PointOfInterest(nil), g.points...)
}

// FirstWalkable scans row-major and returns the first walkable tile for which taken is false.
func (g *Grid) FirstWalkable(taken func(Point) bool) (Point, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			if !Walkable(g.tiles[y][x]) {
				continue
			}
			if taken != nil && taken(p) {
				continue
			}
			return p, true
		}
	}
	return Point{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
