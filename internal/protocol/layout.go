package protocol

import "pascman/internal/gamemap"

// LayoutMessages is the broadcast a server sends when it loads a map: the
// registration of player, one tile spawn per cell, then the entities.
func LayoutMessages(player uint32, l *gamemap.Layout) []Message {
	m := l.Map
	out := make([]Message, 0, 1+len(m.Tiles)+len(l.Spawns))
	out = append(out, Registration{Player: player})
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			item := ItemFloor
			if !m.CanEnter(x, y) {
				item = ItemWall
			}
			out = append(out, Spawn{
				ID:   gamemap.TileID(m.Width, m.Height, x, y),
				Item: item,
				X:    uint32(x),
				Y:    uint32(y),
			})
		}
	}
	for _, s := range l.Spawns {
		out = append(out, Spawn{ID: s.ID, Item: SpawnItem(s.Kind), X: uint32(s.X), Y: uint32(s.Y)})
	}
	return out
}

// SpawnItem maps a layout spawn kind to its wire item.
func SpawnItem(k gamemap.SpawnKind) Item {
	switch k {
	case gamemap.SpawnSuperfood:
		return ItemSuperfood
	case gamemap.SpawnHero:
		return ItemPlayer1
	case gamemap.SpawnVillain:
		return ItemPlayer2
	}
	return ItemFood
}
