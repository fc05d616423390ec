package score

import (
	"math"

	"github.com/kakizome/tegaki/glyph"
	"github.com/kakizome/tegaki/internal/normalize"
)

// Lenient similarity weights. Effort earns a quarter of the score so a
// genuine attempt is rewarded even when the shape is off.
const (
	lenientStrokeWeight     = 0.20
	lenientFeatureWeight    = 0.40
	lenientComplexityWeight = 0.15
	lenientEffortWeight     = 0.25
)

const (
	// lenientThreshold is the confidence at or above which a drawing
	// counts as recognized under the lenient policy.
	lenientThreshold = 0.2

	// lenientFloor is the minimum confidence for any drawing with at
	// least one stroke.
	lenientFloor = 0.25

	// attemptFloor is the minimum confidence for a drawing with at
	// least one stroke and more than five points, re-applied after all
	// adjustments.
	attemptFloor = 0.2

	// lenientFallback is the confidence reported when lenient
	// recognition degrades instead of completing.
	lenientFallback = 0.25
)

// Encouragement levels reported alongside lenient results.
const (
	LevelExcellent = "excellent"
	LevelFair      = "fair"
	LevelPoor      = "poor"
)

// Lenient is the child-friendly scoring policy. Sub-metrics award
// partial credit instead of failing outright, a quarter of the
// similarity comes from effort signals, and confidence is floored so a
// real attempt never scores below 0.2.
type Lenient struct{}

// Name implements Policy.
func (Lenient) Name() string { return "lenient" }

// Similarity combines the four sub-metrics under the lenient weights.
func (Lenient) Similarity(p *normalize.Preprocessed, tpl glyph.Template) float64 {
	stroke := lenientStrokeSimilarity(p.StrokeCount, tpl.StrokeCount)
	feat := lenientFeatureSimilarity(p.Features, tpl.Features)
	complexity := lenientComplexitySimilarity(p.Features.Complexity, tpl.Features.Complexity)
	effort := effortScore(p)

	return clamp01(lenientStrokeWeight*stroke +
		lenientFeatureWeight*feat +
		lenientComplexityWeight*complexity +
		lenientEffortWeight*effort)
}

// lenientStrokeSimilarity grades the stroke count on a step scale
// rather than a ratio. Past a gap of two, missing strokes grade better
// than extra ones.
func lenientStrokeSimilarity(actual, expected int) float64 {
	switch diff := abs(actual - expected); {
	case diff == 0:
		return 1.0
	case diff == 1:
		return 0.8
	case diff == 2:
		return 0.6
	case actual <= expected:
		return 0.4
	default:
		return 0.2
	}
}

// lenientFeatureSimilarity averages per-feature credit over the three
// boolean features, then adds a flat base credit for trying.
//
// Per-feature credit is 1.0 for an exact match and 0.5 for the defined
// partial matches: a drawn line of either orientation partially
// satisfies an expected line, and an expected curve is always at least
// partially satisfied. Extra drawn features earn nothing and cost
// nothing.
func lenientFeatureSimilarity(actual, expected glyph.Features) float64 {
	anyLine := actual.HasHorizontalLine || actual.HasVerticalLine

	var sum float64
	switch {
	case actual.HasHorizontalLine == expected.HasHorizontalLine:
		sum += 1.0
	case expected.HasHorizontalLine && anyLine:
		sum += 0.5
	}
	switch {
	case actual.HasVerticalLine == expected.HasVerticalLine:
		sum += 1.0
	case expected.HasVerticalLine && anyLine:
		sum += 0.5
	}
	switch {
	case actual.HasCurve == expected.HasCurve:
		sum += 1.0
	case expected.HasCurve:
		sum += 0.5
	}

	return math.Min(1.0, sum/3+0.2)
}

// lenientComplexitySimilarity grades the complexity gap in bands so
// small estimation noise costs nothing.
func lenientComplexitySimilarity(actual, expected float64) float64 {
	if !isFinite(actual) || !isFinite(expected) {
		return 0.6
	}
	switch diff := math.Abs(actual - expected); {
	case diff < 0.2:
		return 1.0
	case diff < 0.4:
		return 0.8
	case diff < 0.6:
		return 0.6
	default:
		return 0.4
	}
}

// effortScore measures engagement independent of shape accuracy. The
// four signals sum to 1.0 for a committed, steady attempt.
func effortScore(p *normalize.Preprocessed) float64 {
	var effort float64
	if p.StrokeCount >= 1 {
		effort += 0.3
	}
	if p.TotalPoints >= 10 {
		effort += 0.2
	}
	if speed := p.Speed(); speed > 0.1 && speed < 0.9 {
		effort += 0.2
	}
	if p.Smoothness > 0.3 {
		effort += 0.3
	}
	return effort
}

// Confidence calibrates a similarity score upward for quality signals.
// The lenient calibrator only ever adds: there are no penalties, and
// two floors keep any real attempt at or above the recognition
// threshold.
func (Lenient) Confidence(similarity float64, p *normalize.Preprocessed, tpl glyph.Template) float64 {
	conf := similarity
	if p.StrokeCount > 0 && conf < lenientFloor {
		conf = lenientFloor
	}

	// Non-finite complexity on either side fails the comparison and
	// simply skips the bonus.
	if math.Abs(p.Features.Complexity-tpl.Features.Complexity) < 0.3 {
		conf += 0.1
	}
	if p.Smoothness > 0.6 {
		conf += 0.05
	}
	if speed := p.Speed(); speed > 0.3 && speed < 0.8 {
		conf += 0.05
	}
	if p.StrokeCount*2 >= tpl.StrokeCount {
		conf += 0.1
	}
	if featureMatchCount(p.Features, tpl.Features) >= 2 {
		conf += 0.15
	}
	if area := p.Box.Area(); area >= 500 && area <= 100000 {
		conf += 0.05
	}

	if p.StrokeCount > 0 && p.TotalPoints > 5 && conf < attemptFloor {
		conf = attemptFloor
	}
	return clamp01(conf)
}

// Recognized implements Policy.
func (Lenient) Recognized(confidence float64) bool {
	return confidence >= lenientThreshold
}

// FallbackConfidence implements Policy.
func (Lenient) FallbackConfidence() float64 { return lenientFallback }

// Encouragement maps a confidence score to the level shown to the
// child. It depends on confidence alone so both policies produce
// comparable levels.
func Encouragement(confidence float64) string {
	switch {
	case confidence >= 0.5:
		return LevelExcellent
	case confidence >= lenientThreshold:
		return LevelFair
	default:
		return LevelPoor
	}
}
