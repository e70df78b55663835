// Package core provides fundamental types shared by the filedeck games.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Point is a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan (taxicab) distance to another point.
func (p Point) Manhattan(other Point) int {
	return Abs(p.X-other.X) + Abs(p.Y-other.Y)
}

// Dir is a unit step in one of the four orthogonal directions.
type Dir struct {
	DX, DY int
}

// Step order is fixed so that grid scans are deterministic.
var (
	DirUp    = Dir{0, -1}
	DirDown  = Dir{0, 1}
	DirLeft  = Dir{-1, 0}
	DirRight = Dir{1, 0}

	Dirs = []Dir{DirUp, DirDown, DirLeft, DirRight}
)

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
