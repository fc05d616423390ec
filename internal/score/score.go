package score

import (
	"math"

	"github.com/kakizome/tegaki/glyph"
	"github.com/kakizome/tegaki/internal/normalize"
)

// Policy scores a preprocessed drawing against a reference template and
// calibrates the result into a bounded confidence. Implementations are
// stateless and safe for concurrent use.
type Policy interface {
	// Name identifies the policy in diagnostics.
	Name() string

	// Similarity combines stroke-count, feature, and complexity
	// sub-metrics into a weighted score in [0, 1].
	Similarity(p *normalize.Preprocessed, tpl glyph.Template) float64

	// Confidence calibrates a similarity score with raw drawing
	// quality signals into the final confidence in [0, 1].
	Confidence(similarity float64, p *normalize.Preprocessed, tpl glyph.Template) float64

	// Recognized reports whether a calibrated confidence counts as a
	// match under this policy.
	Recognized(confidence float64) bool

	// FallbackConfidence is the confidence reported when recognition
	// degrades instead of completing.
	FallbackConfidence() float64
}

// strokeCountRatio is the proportional stroke-count similarity:
// 1 - |actual-expected| / max(actual, expected). Both zero is a perfect
// match; expecting strokes and drawing none (or vice versa) scores 0.
func strokeCountRatio(actual, expected int) float64 {
	if actual == 0 && expected == 0 {
		return 1
	}
	if expected == 0 {
		return 0
	}
	larger := actual
	if expected > larger {
		larger = expected
	}
	diff := actual - expected
	if diff < 0 {
		diff = -diff
	}
	return 1 - float64(diff)/float64(larger)
}

// featureMatchCount counts how many of the three boolean flags agree
// exactly between two feature records.
func featureMatchCount(a, b glyph.Features) int {
	n := 0
	if a.HasHorizontalLine == b.HasHorizontalLine {
		n++
	}
	if a.HasVerticalLine == b.HasVerticalLine {
		n++
	}
	if a.HasCurve == b.HasCurve {
		n++
	}
	return n
}

// isFinite reports whether f is a usable number. NaN and infinities come
// from adversarial templates or degenerate arithmetic and get defaulted
// by the complexity sub-metrics.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
