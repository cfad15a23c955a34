package world

type TileID int

const (
	TileFloorWood     TileID = 0
	TileFloorWoodAlt  TileID = 1
	TileFloorTile     TileID = 2
	TileFloorTileAlt  TileID = 3
	TileRugPurple     TileID = 4
	TileWallPlain     TileID = 5
	TileWallTop       TileID = 6
	TileChalkboard    TileID = 7
	TileWhiteboard    TileID = 8
	TileWindow        TileID = 9
	TileDoorClosed    TileID = 10
	TileBulletinBoard TileID = 11
	TileBookshelf     TileID = 12
	TileWallCornerTL  TileID = 13
	TileWallCornerTR  TileID = 14
	TileWallCornerBL  TileID = 15
	TileWallCornerBR  TileID = 16
	TileWallSideLeft  TileID = 17
	TileWallSideRight TileID = 18
	TileWallSideBot   TileID = 19
)

// Floors and rugs are the only tiles a student may stand on.
var walkableTiles = map[TileID]bool{
	TileFloorWood:    true,
	TileFloorWoodAlt: true,
	TileFloorTile:    true,
	TileFloorTileAlt: true,
	TileRugPurple:    true,
}

func Walkable(id TileID) bool {
	return walkableTiles[id]
}

type Tile struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	ID       TileID `json:"id"`
	Passable bool   `json:"passable"`
}
