package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Tile is one map cell. Only floor is traversable.
type Tile struct {
	Kind TileKind
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile { return Tile{Kind: TileWall} }

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile { return Tile{Kind: TileFloor} }

// Walkable reports whether characters may stand on the tile.
func (t Tile) Walkable() bool { return t.Kind == TileFloor }
