package gamemap

// DistanceField holds breadth-first step counts from a set of source cells.
// Cells not reached within the depth bound are absent.
type DistanceField struct {
	m     *GameMap
	dist  []int32
	depth int
}

const unreached = -1

// DistanceField floods the map from sources with unit edge cost, stopping
// once maxDepth steps have been expanded. Sources off the map or on walls are
// ignored.
func (m *GameMap) DistanceField(sources []Cell, maxDepth int) *DistanceField {
	f := &DistanceField{m: m, dist: make([]int32, len(m.Tiles)), depth: maxDepth}
	for i := range f.dist {
		f.dist[i] = unreached
	}
	frontier := make([]Cell, 0, len(sources))
	for _, s := range sources {
		if !m.CanEnter(s.X, s.Y) {
			continue
		}
		i := m.Index(s.X, s.Y)
		if f.dist[i] == 0 {
			continue
		}
		f.dist[i] = 0
		frontier = append(frontier, s)
	}
	for d := 1; d <= maxDepth && len(frontier) > 0; d++ {
		next := frontier[:0:0]
		for _, c := range frontier {
			for _, e := range m.Exits(c.X, c.Y) {
				i := m.Index(e.X, e.Y)
				if f.dist[i] != unreached {
					continue
				}
				f.dist[i] = int32(d)
				next = append(next, e)
			}
		}
		frontier = next
	}
	return f
}

// Distance returns the step count to the nearest source. ok is false when
// the cell is off the map or was not reached within the depth bound.
func (f *DistanceField) Distance(x, y int) (int, bool) {
	if !f.m.InBounds(x, y) {
		return 0, false
	}
	d := f.dist[f.m.Index(x, y)]
	if d == unreached {
		return 0, false
	}
	return int(d), true
}

// MaxDepth is the bound the field was built with.
func (f *DistanceField) MaxDepth() int { return f.depth }
