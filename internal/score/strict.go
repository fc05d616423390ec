package score

import (
	"math"

	"github.com/kakizome/tegaki/glyph"
	"github.com/kakizome/tegaki/internal/normalize"
)

// Strict similarity weights. They sum to 1 so a perfect drawing scores
// exactly 1.0.
const (
	strictStrokeWeight     = 0.30
	strictFeatureWeight    = 0.50
	strictComplexityWeight = 0.20
)

// Strict calibration thresholds and penalty factors, applied to the raw
// (pre-normalization) drawing signals.
const (
	// minDetailPoints is the point count below which a drawing is too
	// sparse to judge; confidence is halved.
	minDetailPoints = 10

	// maxDetailPoints is the point count above which a drawing is
	// suspiciously dense (scribbling); confidence drops by a fifth.
	maxDetailPoints = 1000

	// minDrawingArea is the raw bounding-box area below which the
	// drawing is too small to carry the character's structure.
	minDrawingArea = 100.0

	// maxDrawingArea is the raw bounding-box area above which the
	// drawing sprawls past any reasonable writing box.
	maxDrawingArea = 50000.0

	sparsePenalty   = 0.5
	densePenalty    = 0.8
	tinyAreaPenalty = 0.7
	hugeAreaPenalty = 0.8
)

const (
	// strictThreshold is the confidence a drawing must exceed to count
	// as recognized under the strict policy.
	strictThreshold = 0.3

	// strictFallback is the confidence reported when strict recognition
	// degrades instead of completing.
	strictFallback = 0.3
)

// Strict is the baseline scoring policy: exact feature matching,
// proportional stroke-count similarity, and multiplicative penalties for
// sparse, oversized, or undersized drawings. No floors apply; a bad
// drawing scores badly.
type Strict struct{}

// Name implements Policy.
func (Strict) Name() string { return "strict" }

// Similarity combines the three sub-metrics under the strict weights.
func (Strict) Similarity(p *normalize.Preprocessed, tpl glyph.Template) float64 {
	stroke := strokeCountRatio(p.StrokeCount, tpl.StrokeCount)
	feat := float64(featureMatchCount(p.Features, tpl.Features)) / 3
	complexity := strictComplexitySimilarity(p.Features.Complexity, tpl.Features.Complexity)

	return clamp01(strictStrokeWeight*stroke +
		strictFeatureWeight*feat +
		strictComplexityWeight*complexity)
}

// strictComplexitySimilarity is 1 minus the complexity gap, floored at
// zero so adversarial templates with complexity far outside [0, 1]
// cannot push the weighted sum negative.
func strictComplexitySimilarity(actual, expected float64) float64 {
	if !isFinite(actual) || !isFinite(expected) {
		return 0.5
	}
	return math.Max(0, 1-math.Abs(actual-expected))
}

// Confidence calibrates a similarity score against the raw drawing
// quality signals. Penalties stack multiplicatively.
func (Strict) Confidence(similarity float64, p *normalize.Preprocessed, tpl glyph.Template) float64 {
	if p.StrokeCount == 0 {
		return 0
	}

	conf := similarity
	if p.TotalPoints < minDetailPoints {
		conf *= sparsePenalty
	}
	if p.TotalPoints > maxDetailPoints {
		conf *= densePenalty
	}

	area := p.Box.Area()
	if area < minDrawingArea {
		conf *= tinyAreaPenalty
	}
	if area > maxDrawingArea {
		conf *= hugeAreaPenalty
	}

	return clamp01(conf)
}

// Recognized implements Policy.
func (Strict) Recognized(confidence float64) bool {
	return confidence > strictThreshold
}

// FallbackConfidence implements Policy.
func (Strict) FallbackConfidence() float64 { return strictFallback }
