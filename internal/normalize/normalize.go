// Package normalize prepares a raw drawing for scoring: tremor smoothing,
// gap completion, position clamping, size rescaling, and unit-box mapping,
// followed by feature extraction over the normalized strokes.
package normalize

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/kakizome/tegaki/glyph"
	"github.com/kakizome/tegaki/ink"
	"github.com/kakizome/tegaki/internal/feature"
)

// Pipeline constants, in capture units unless noted otherwise.
const (
	// jitterRadius is how close a smoothed point may sit to its
	// predecessor before it is pulled halfway back toward it.
	jitterRadius = 2.0

	// gapThreshold is the segment length beyond which intermediate
	// points are interpolated.
	gapThreshold = 20.0

	// gapSpacing is the approximate spacing of interpolated points.
	gapSpacing = 10.0

	// positionTolerance is the allowed deviation from the box center,
	// as a fraction of the box dimensions.
	positionTolerance = 0.5

	// standardSize is the reference drawing extent.
	standardSize = 100.0

	// sizeTolerance is the accepted fractional deviation from
	// standardSize before rescaling kicks in.
	sizeTolerance = 0.4

	minDrawingSize = standardSize * (1 - sizeTolerance)
	maxDrawingSize = standardSize * (1 + sizeTolerance)
)

// Preprocessed is the derived, call-local form of one drawing. It is
// computed fresh per recognition call and owned by that call.
//
// Box, StrokeCount, TotalPoints, RawPathLength, and ElapsedMillis
// describe the original input; gap completion grows only the working
// strokes. Strokes, Smoothness, and Features describe the normalized
// working copy.
type Preprocessed struct {
	Strokes       []ink.Stroke
	Box           ink.Rect
	StrokeCount   int
	TotalPoints   int
	RawPathLength float64
	ElapsedMillis int64
	Smoothness    float64
	Features      glyph.Features
}

// Speed returns the drawing speed in capture units per millisecond,
// 0 when the capture carried no usable timestamps.
func (p *Preprocessed) Speed() float64 {
	if p.ElapsedMillis <= 0 {
		return 0
	}
	return p.RawPathLength / float64(p.ElapsedMillis)
}

// Normalize runs the pipeline over a drawing. It never mutates the
// caller's strokes. Returns nil when the drawing is nil or contains no
// points.
func Normalize(d *ink.Drawing) *Preprocessed {
	if d.Empty() {
		return nil
	}

	raw := nonEmpty(d.Strokes)
	rawBox := d.Box
	if rawBox.IsZero() {
		rawBox = ink.Bounds(raw)
	}

	work := smoothTremor(raw)
	work = completeGaps(work)
	clampToCenter(work, rawBox)
	rescaleToStandard(work)
	toUnitBox(work)

	p := &Preprocessed{
		Strokes:       work,
		Box:           rawBox,
		StrokeCount:   len(raw),
		TotalPoints:   ink.TotalPoints(raw),
		RawPathLength: totalPathLength(raw),
		ElapsedMillis: elapsedMillis(raw),
		Smoothness:    meanSmoothness(work),
	}
	p.Features = feature.Extract(work)
	p.Features.Complexity = feature.Complexity(work)
	return p
}

// nonEmpty drops zero-length strokes; a stroke with no points is not a
// gesture.
func nonEmpty(strokes []ink.Stroke) []ink.Stroke {
	out := make([]ink.Stroke, 0, len(strokes))
	for _, s := range strokes {
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// smoothTremor replaces each interior point with the 3-point moving
// average of its pre-stage neighbors. A smoothed point landing within
// jitterRadius of the previously emitted point is pulled halfway back
// toward it. Endpoints and timestamps are preserved. Always returns
// fresh strokes.
func smoothTremor(strokes []ink.Stroke) []ink.Stroke {
	out := make([]ink.Stroke, len(strokes))
	for si, s := range strokes {
		if len(s) < 3 {
			out[si] = s.Clone()
			continue
		}

		sm := make(ink.Stroke, len(s))
		sm[0] = s[0]
		for i := 1; i < len(s)-1; i++ {
			p := ink.Point{
				X: (s[i-1].X + s[i].X + s[i+1].X) / 3,
				Y: (s[i-1].Y + s[i].Y + s[i+1].Y) / 3,
				T: s[i].T,
			}
			prev := sm[i-1]
			if ink.Distance(p, prev) <= jitterRadius {
				p.X = prev.X + (p.X-prev.X)/2
				p.Y = prev.Y + (p.Y-prev.Y)/2
			}
			sm[i] = p
		}
		sm[len(s)-1] = s[len(s)-1]
		out[si] = sm
	}
	return out
}

// completeGaps linearly interpolates intermediate points, at roughly
// gapSpacing intervals, into any segment longer than gapThreshold.
// Timestamps are interpolated proportionally when both segment ends
// carry them.
func completeGaps(strokes []ink.Stroke) []ink.Stroke {
	out := make([]ink.Stroke, len(strokes))
	for si, s := range strokes {
		if len(s) < 2 {
			out[si] = s
			continue
		}

		filled := make(ink.Stroke, 0, len(s))
		filled = append(filled, s[0])
		for i := 1; i < len(s); i++ {
			prev, cur := s[i-1], s[i]
			if dist := ink.Distance(prev, cur); dist > gapThreshold {
				steps := int(dist / gapSpacing)
				for k := 1; k < steps; k++ {
					t := float64(k) / float64(steps)
					mid := ink.Point{
						X: prev.X + (cur.X-prev.X)*t,
						Y: prev.Y + (cur.Y-prev.Y)*t,
					}
					if prev.T > 0 && cur.T > 0 {
						mid.T = prev.T + int64(float64(cur.T-prev.T)*t)
					}
					filled = append(filled, mid)
				}
			}
			filled = append(filled, cur)
		}
		out[si] = filled
	}
	return out
}

// clampToCenter limits each point's deviation from the declared box center
// to positionTolerance of the box dimensions. Points within the declared
// box are untouched; the stage acts only when the declared box disagrees
// with the points.
func clampToCenter(strokes []ink.Stroke, box ink.Rect) {
	center := box.Center()
	maxDX := box.Width * positionTolerance
	maxDY := box.Height * positionTolerance

	for si := range strokes {
		for pi := range strokes[si] {
			p := &strokes[si][pi]
			if dx := p.X - center.X; dx > maxDX {
				p.X = center.X + maxDX
			} else if dx < -maxDX {
				p.X = center.X - maxDX
			}
			if dy := p.Y - center.Y; dy > maxDY {
				p.Y = center.Y + maxDY
			} else if dy < -maxDY {
				p.Y = center.Y - maxDY
			}
		}
	}
}

// rescaleToStandard rescales the points about their box center when the
// larger box dimension falls outside [minDrawingSize, maxDrawingSize],
// bringing it to the nearest bound.
func rescaleToStandard(strokes []ink.Stroke) {
	box := ink.Bounds(strokes)
	maxDim := box.MaxDim()
	if maxDim == 0 {
		return
	}

	scale := 1.0
	switch {
	case maxDim < minDrawingSize:
		scale = minDrawingSize / maxDim
	case maxDim > maxDrawingSize:
		scale = maxDrawingSize / maxDim
	default:
		return
	}

	center := box.Center()
	for si := range strokes {
		for pi := range strokes[si] {
			p := &strokes[si][pi]
			p.X = center.X + (p.X-center.X)*scale
			p.Y = center.Y + (p.Y-center.Y)*scale
		}
	}
}

// toUnitBox maps every point into [0,1]x[0,1]. A box with zero width or
// height passes through unchanged.
func toUnitBox(strokes []ink.Stroke) {
	box := ink.Bounds(strokes)
	if box.Width == 0 || box.Height == 0 {
		return
	}

	for si := range strokes {
		for pi := range strokes[si] {
			p := &strokes[si][pi]
			p.X = (p.X - box.X) / box.Width
			p.Y = (p.Y - box.Y) / box.Height
		}
	}
}

func totalPathLength(strokes []ink.Stroke) float64 {
	total := 0.0
	for _, s := range strokes {
		total += s.PathLength()
	}
	return total
}

// elapsedMillis returns the capture duration across all timestamped
// points, 0 when fewer than two points carry timestamps.
func elapsedMillis(strokes []ink.Stroke) int64 {
	var minT, maxT int64
	count := 0
	for _, s := range strokes {
		for _, p := range s {
			if p.T <= 0 {
				continue
			}
			if count == 0 || p.T < minT {
				minT = p.T
			}
			if count == 0 || p.T > maxT {
				maxT = p.T
			}
			count++
		}
	}
	if count < 2 {
		return 0
	}
	return maxT - minT
}

// meanSmoothness averages per-segment smoothness, 1 - turn/pi, over the
// interior points of every stroke with at least three points. Returns 0
// when no stroke qualifies.
func meanSmoothness(strokes []ink.Stroke) float64 {
	var values []float64
	for _, s := range strokes {
		for i := 2; i < len(s); i++ {
			turn := ink.AngleDiff(ink.Angle(s[i-2], s[i-1]), ink.Angle(s[i-1], s[i]))
			values = append(values, 1-turn/math.Pi)
		}
	}
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
