// Package ink defines the stroke capture data model and the geometric
// primitives shared by the recognition pipeline.
package ink

import (
	"math"
)

// Point is one sampled pointer position. T is the capture time in epoch
// milliseconds, 0 when the capture source provides no timestamps.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T int64   `json:"t,omitempty"`
}

// Stroke is the ordered point sequence of one continuous contact gesture,
// from pointer-down to pointer-up. Order is drawing order.
type Stroke []Point

// Clone returns a deep copy of the stroke.
func (s Stroke) Clone() Stroke {
	out := make(Stroke, len(s))
	copy(out, s)
	return out
}

// PathLength returns the summed Euclidean lengths of the stroke's segments.
func (s Stroke) PathLength() float64 {
	total := 0.0
	for i := 1; i < len(s); i++ {
		total += Distance(s[i-1], s[i])
	}
	return total
}

// Rect is an axis-aligned bounding box in capture coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// MaxDim returns the larger of width and height.
func (r Rect) MaxDim() float64 {
	return math.Max(r.Width, r.Height)
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// IsZero reports whether the rectangle is the zero value, which the engine
// treats as "no box declared".
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// Drawing is the full set of strokes captured for one recognition attempt,
// together with the axis-aligned box covering all points and the capture
// time in epoch milliseconds.
//
// A Drawing with no strokes has a meaningless Box and is unrecognizable.
type Drawing struct {
	Strokes    []Stroke `json:"strokes"`
	Box        Rect     `json:"bounding_box"`
	CapturedAt int64    `json:"captured_at,omitempty"`
}

// Capture builds a Drawing from strokes, computing the bounding box over
// all points.
func Capture(strokes []Stroke, capturedAt int64) *Drawing {
	return &Drawing{
		Strokes:    strokes,
		Box:        Bounds(strokes),
		CapturedAt: capturedAt,
	}
}

// Empty reports whether the drawing contains no points at all.
func (d *Drawing) Empty() bool {
	if d == nil {
		return true
	}
	for _, s := range d.Strokes {
		if len(s) > 0 {
			return false
		}
	}
	return true
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle returns the bearing of the segment from a to b, in radians as
// given by math.Atan2 (0 = rightward, positive = downward in screen
// coordinates).
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// AngleDiff returns the absolute difference between two angles in radians,
// normalized to [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	for d > 2*math.Pi {
		d -= 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Bounds returns the bounding box covering every point of every stroke.
// The zero Rect is returned when the strokes contain no points.
func Bounds(strokes []Stroke) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false

	for _, s := range strokes {
		for _, p := range s {
			found = true
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if !found {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Centroid returns the mean position of every point across all strokes,
// the zero Point when the strokes contain none.
func Centroid(strokes []Stroke) Point {
	var sumX, sumY float64
	n := 0
	for _, s := range strokes {
		for _, p := range s {
			sumX += p.X
			sumY += p.Y
			n++
		}
	}
	if n == 0 {
		return Point{}
	}
	return Point{X: sumX / float64(n), Y: sumY / float64(n)}
}

// TotalPoints returns the combined point count across all strokes.
func TotalPoints(strokes []Stroke) int {
	n := 0
	for _, s := range strokes {
		n += len(s)
	}
	return n
}
