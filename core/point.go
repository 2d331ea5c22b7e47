package core

import "math"

// Point is a position in pattern space, y growing downward
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Polar returns the point at distance r and angle theta (radians) from p
func (p Point) Polar(r, theta float64) Point {
	return Point{p.X + r*math.Cos(theta), p.Y + r*math.Sin(theta)}
}

// Lerp interpolates linearly toward q; t=0 yields p, t=1 yields q
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Mid returns the midpoint of p and q
func (p Point) Mid(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}
