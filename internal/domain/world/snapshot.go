package world

// Snapshot is the renderer-facing dump of a grid.
type Snapshot struct {
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	Layout           [][]TileID        `json:"layout"`
	Walkable         [][]bool          `json:"walkable"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest"`
}

func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{
		Width:            g.width,
		Height:           g.height,
		Layout:           make([][]TileID, g.height),
		Walkable:         make([][]bool, g.height),
		PointsOfInterest: g.PointsOfInterest(),
	}
	for y := 0; y < g.height; y++ {
		s.Layout[y] = append([]TileID(nil), g.tiles[y]...)
		s.Walkable[y] = make([]bool, g.width)
		for x := 0; x < g.width; x++ {
			s.Walkable[y][x] = Walkable(g.tiles[y][x])
		}
	}
	return s
}
