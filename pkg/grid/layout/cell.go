package layout

// Cell is one rectangular unit of the grid. X and Y locate its
// bottom-left corner.
type Cell struct {
	Row, Col      int
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the cell's right edge.
func (c Cell) Right() float64 { return c.X + c.Width }

// Top returns the y coordinate of the cell's top edge.
func (c Cell) Top() float64 { return c.Y + c.Height }

// CenterX returns the horizontal center of the cell.
func (c Cell) CenterX() float64 { return c.X + c.Width/2 }

// CenterY returns the vertical center of the cell.
func (c Cell) CenterY() float64 { return c.Y + c.Height/2 }

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}
