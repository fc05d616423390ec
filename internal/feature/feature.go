// Package feature derives boolean shape descriptors and a complexity
// estimate from normalized strokes. All thresholds operate in unit-box
// coordinates, so callers must normalize first.
package feature

import (
	"math"

	"github.com/kakizome/tegaki/glyph"
	"github.com/kakizome/tegaki/ink"
)

// Detection thresholds, in unit-box space.
const (
	// lineMajor is the minimum travel along a segment's dominant axis
	// for the segment to count as a line.
	lineMajor = 0.1

	// lineMinor is the maximum travel along the off axis for a segment
	// to still count as a straight line.
	lineMinor = 0.05

	// curveTurn is the minimum turn between consecutive segments that
	// marks the stroke as curved.
	curveTurn = math.Pi / 4

	// directionChangeTurn is the minimum turn counted as a direction
	// change by the complexity estimate.
	directionChangeTurn = 30 * math.Pi / 180
)

// Complexity scaling limits.
const (
	// maxPathLength clips the total path length term. A drawing whose
	// unit-box path exceeds this is treated as maximally long.
	maxPathLength = 4.0

	// maxDirectionChanges clips the direction-change term.
	maxDirectionChanges = 10.0
)

// Extract scans the strokes for the three boolean shape flags.
//
// A segment marks the horizontal flag when it travels mostly along X,
// the vertical flag when mostly along Y; a pair of consecutive segments
// marks the curve flag when the turn between them exceeds curveTurn.
// The returned record's Complexity field is left zero; compute it with
// Complexity and fill it in.
func Extract(strokes []ink.Stroke) glyph.Features {
	var f glyph.Features

	for _, s := range strokes {
		for i := 1; i < len(s); i++ {
			dx := math.Abs(s[i].X - s[i-1].X)
			dy := math.Abs(s[i].Y - s[i-1].Y)

			if dx > lineMajor && dy < lineMinor {
				f.HasHorizontalLine = true
			}
			if dy > lineMajor && dx < lineMinor {
				f.HasVerticalLine = true
			}

			if i >= 2 {
				turn := ink.AngleDiff(ink.Angle(s[i-2], s[i-1]), ink.Angle(s[i-1], s[i]))
				if turn > curveTurn {
					f.HasCurve = true
				}
			}
		}
	}
	return f
}

// Complexity estimates shape intricacy in [0, 1] as the average of two
// terms: total path length clipped to maxPathLength and scaled, and the
// count of sharp direction changes clipped to maxDirectionChanges and
// scaled. Input with no points yields 0.
func Complexity(strokes []ink.Stroke) float64 {
	if ink.TotalPoints(strokes) == 0 {
		return 0
	}

	pathLength := 0.0
	changes := 0
	for _, s := range strokes {
		pathLength += s.PathLength()
		for i := 2; i < len(s); i++ {
			turn := ink.AngleDiff(ink.Angle(s[i-2], s[i-1]), ink.Angle(s[i-1], s[i]))
			if turn > directionChangeTurn {
				changes++
			}
		}
	}

	lengthTerm := math.Min(pathLength, maxPathLength) / maxPathLength
	changeTerm := math.Min(float64(changes), maxDirectionChanges) / maxDirectionChanges
	return (lengthTerm + changeTerm) / 2
}
