package core

// Size describes the dimensions of a board in logical units.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Point is a board coordinate in logical units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Cells returns the number of grid cells along each axis for the given unit.
func (s Size) Cells(unit int) Size {
	if unit <= 0 {
		return Size{}
	}
	return Size{W: s.W / unit, H: s.H / unit}
}
