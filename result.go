package tegaki

import "github.com/kakizome/tegaki/glyph"

// Mode selects the scoring policy for a recognition attempt.
type Mode string

const (
	// ModeStrict grades on shape accuracy alone. Sparse, oversized, or
	// undersized drawings are penalized and nothing is floored.
	ModeStrict Mode = "strict"

	// ModeLenient grades with partial credit and effort bonuses so a
	// child's genuine attempt always earns a usable score.
	ModeLenient Mode = "lenient"
)

// valid reports whether m names a selectable policy. The engine falls
// back to the configured default mode otherwise.
func (m Mode) valid() bool {
	return m == ModeStrict || m == ModeLenient
}

// Result is the outcome of one recognition attempt.
type Result struct {
	// Character is the target character the drawing was scored
	// against, empty when the input was unrecognizable.
	Character string `json:"character"`

	// Confidence is the calibrated match confidence in [0, 1].
	Confidence float64 `json:"confidence"`

	// Recognized reports whether Confidence clears the selected
	// policy's threshold.
	Recognized bool `json:"recognized"`

	// Details carries per-attempt diagnostics, nil for unrecognizable
	// input.
	Details *Details `json:"details,omitempty"`
}

// Details is the diagnostic record attached to a scored attempt.
// Feedback surfaces use it to explain the score; it never affects
// Recognized.
type Details struct {
	// AttemptID uniquely identifies this attempt across retries of the
	// same drawing.
	AttemptID string `json:"attempt_id"`

	// Mode is the name of the policy that produced the score.
	Mode string `json:"mode"`

	// Similarity is the raw weighted similarity before confidence
	// calibration.
	Similarity float64 `json:"similarity"`

	// StrokeCount and TotalPoints describe the drawing as captured,
	// before any normalization.
	StrokeCount int `json:"stroke_count"`
	TotalPoints int `json:"total_points"`

	// ExpectedStrokes comes from the reference template.
	ExpectedStrokes int `json:"expected_strokes"`

	// Features is the feature record extracted from the normalized
	// drawing.
	Features glyph.Features `json:"features"`

	// Encouragement and ChildFriendlyScore are set in lenient mode
	// only. ChildFriendlyScore is the lenient similarity, which reads
	// higher than the strict one for the same drawing.
	Encouragement      string  `json:"encouragement,omitempty"`
	ChildFriendlyScore float64 `json:"child_friendly_score,omitempty"`

	// Fallback marks a degraded result. Message carries the
	// child-facing explanation in lenient mode.
	Fallback bool   `json:"fallback,omitempty"`
	Message  string `json:"message,omitempty"`
}
