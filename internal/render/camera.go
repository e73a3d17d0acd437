package render

// Camera translates between world coordinates and screen coordinates.
// Each world tile is CellWidth terminal columns wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	CellWidth  int
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH, cellW int) *Camera {
	if cellW < 1 {
		cellW = 1
	}
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, CellWidth: cellW}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/c.CellWidth)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Fit positions the camera over a w x h map: centered when the map is
// smaller than the view, anchored top-left otherwise.
func (c *Camera) Fit(w, h int) {
	cols := c.ViewWidth / c.CellWidth
	c.OffsetX = 0
	if w < cols {
		c.OffsetX = -(cols - w) / 2
	}
	c.OffsetY = 0
	if h < c.ViewHeight {
		c.OffsetY = -(c.ViewHeight - h) / 2
	}
}

// Resize changes the viewport size.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * c.CellWidth
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/c.CellWidth + c.OffsetX, sy + c.OffsetY
}
