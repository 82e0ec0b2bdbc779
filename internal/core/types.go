package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a grid cell. It may lie outside the grid.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }
