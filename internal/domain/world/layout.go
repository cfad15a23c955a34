package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is the file shape of a classroom map.
type Layout struct {
	Tiles            [][]TileID        `yaml:"tiles"`
	PointsOfInterest []PointOfInterest `yaml:"points_of_interest"`
}

var defaultTiles = [][]TileID{
	{13, 6, 6, 6, 6, 6, 6, 7, 7, 7, 7, 6, 6, 6, 6, 6, 6, 6, 6, 14},
	{17, 12, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9},
	{11, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{17, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 18},
	{15, 19, 19, 19, 19, 19, 19, 19, 19, 19, 10, 19, 19, 19, 19, 19, 19, 19, 19, 16},
}

var defaultPoints = []PointOfInterest{
	{X: 9, Y: 2, Label: "Escritorio Profe", Kind: PointTeacherDesk},
	{X: 2, Y: 12, Label: "Planta", Kind: PointPlant},
	{X: 17, Y: 12, Label: "Papelera", Kind: PointTrashcan},
	{X: 6, Y: 5, Label: "Pupitre", Kind: PointDesk},
	{X: 8, Y: 5, Label: "Pupitre", Kind: PointDesk},
	{X: 12, Y: 5, Label: "Pupitre", Kind: PointDesk},
	{X: 14, Y: 5, Label: "Pupitre", Kind: PointDesk},
	{X: 6, Y: 7, Label: "Pupitre", Kind: PointDesk},
	{X: 8, Y: 7, Label: "Pupitre", Kind: PointDesk},
	{X: 12, Y: 7, Label: "Pupitre", Kind: PointDesk},
	{X: 14, Y: 7, Label: "Pupitre", Kind: PointDesk},
	{X: 6, Y: 9, Label: "Pupitre", Kind: PointDesk},
	{X: 8, Y: 9, Label: "Pupitre", Kind: PointDesk},
	{X: 12, Y: 9, Label: "Pupitre", Kind: PointDesk},
	{X: 14, Y: 9, Label: "Pupitre", Kind: PointDesk},
}

// DefaultClassroom returns the built-in 20x15 classroom.
func DefaultClassroom() *Grid {
	g, err := NewGrid(defaultTiles, defaultPoints)
	if err != nil {
		panic(fmt.Sprintf("default classroom: %v", err))
	}
	return g
}

// LoadLayout reads a map file. An empty path yields the default classroom.
func LoadLayout(path string) (*Grid, error) {
	if path == "" {
		return DefaultClassroom(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return NewGrid(l.Tiles, l.PointsOfInterest)
}
