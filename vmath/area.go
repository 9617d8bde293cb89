package vmath

// Rect is an integer cell rectangle, used for UI hit regions
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains checks if the cell is within the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
