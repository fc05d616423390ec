// Package tegaki scores hand-drawn hiragana against reference
// templates and reports a calibrated recognition confidence.
//
// The engine takes a captured drawing (ordered strokes of timestamped
// points), cleans it up, compares its shape features to a per-character
// template, and returns a Result carrying the confidence, the
// recognized verdict, and a diagnostic Details record. It is a pure
// library: no network, no files, no UI.
//
// # Pipeline
//
// Every Recognize call runs the same stages:
//
//  1. Normalization: tremor smoothing, gap completion, position and
//     size tolerance, and mapping into the unit box. Child handwriting
//     is shaky and badly placed; this stage removes the noise the
//     scorer should not see.
//  2. Feature extraction: horizontal/vertical line flags, curve flag,
//     and a scalar complexity estimate in [0, 1].
//  3. Template retrieval: a cached, deduplicated lookup that never
//     fails. Unknown characters score against a generic fallback
//     template.
//  4. Scoring: the selected policy combines stroke-count, feature, and
//     complexity similarity (plus effort in lenient mode) into a
//     similarity, then calibrates it into the final confidence.
//
// # Modes
//
// Two policies are built in. ModeStrict grades shape accuracy alone
// and penalizes sparse or badly sized drawings; it suits assessment.
// ModeLenient awards partial credit, counts effort, and floors the
// confidence of any real attempt; it suits young children practicing,
// where discouragement costs more than a generous score.
//
// # Confidence Scores
//
// Confidence is always in [0, 1]:
//   - 1.0 = the drawing matches the template in every measured way
//   - above 0.3 (strict) or 0.2 (lenient) = recognized
//   - 0.0 = nothing usable was drawn
//
// The two modes are calibrated differently and their scores are not
// comparable with each other.
//
// # Failure Model
//
// Recognize never returns an error and never panics. Malformed input
// yields the zero-confidence null result; an internal failure is
// recovered and converted into a degraded but usable fallback result.
// Recognition must never block the practice flow.
//
// # Concurrency
//
// An Engine is safe for concurrent use. The template store is the only
// shared state; concurrent first requests for one character share a
// single load, and Warm preloads a lesson's characters with bounded
// parallelism.
//
// # Limitations
//
// Scoring is feature-based, not OCR: it judges whether a drawing has
// the right number of strokes and the right kind of shape, not whether
// a human would read it as the target character. Stroke order and
// direction are not checked. Templates describe one canonical writing
// per character.
package tegaki
