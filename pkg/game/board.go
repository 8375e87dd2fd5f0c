package game

// Board is the playable interior of the screen. Cells range over
// [0,Width) x [0,Height); the border drawn around it is wall.
type Board struct {
	Width  int
	Height int
}

// NewBoard creates a board of the given interior size.
func NewBoard(width, height int) Board {
	return Board{Width: width, Height: height}
}

// Contains reports whether p is inside the playable area. Hitting a cell
// outside it is a wall collision.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the total number of playable cells.
func (b Board) Cells() int { return b.Width * b.Height }
