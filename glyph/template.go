package glyph

// Features describes the shape characteristics of a drawn or reference
// character.
type Features struct {
	// HasHorizontalLine is true when the shape contains a near-horizontal
	// line segment.
	HasHorizontalLine bool `json:"has_horizontal_line"`

	// HasVerticalLine is true when the shape contains a near-vertical
	// line segment.
	HasVerticalLine bool `json:"has_vertical_line"`

	// HasCurve is true when the shape contains a sharp direction change
	// or curved segment.
	HasCurve bool `json:"has_curve"`

	// Complexity is a scalar intricacy estimate in [0, 1], derived from
	// path length and direction-change frequency.
	Complexity float64 `json:"complexity"`
}

// Template is the reference shape description for one known character:
// the expected stroke count plus its feature record. Templates are
// immutable once constructed.
type Template struct {
	// StrokeCount is the number of strokes the character is written with.
	StrokeCount int `json:"stroke_count"`

	// Features is the expected feature record for a well-formed drawing
	// of the character.
	Features Features `json:"features"`
}

// Registry maps character identifiers to their reference templates.
// A host may supply its own registry in place of the built-in one.
type Registry map[string]Template

// Fallback synthesizes the generic template used for characters that have
// no registry entry: two strokes, curve only, middling complexity. Every
// lookup path resolves to this rather than failing.
func Fallback() Template {
	return Template{
		StrokeCount: 2,
		Features: Features{
			HasCurve:   true,
			Complexity: 0.5,
		},
	}
}
