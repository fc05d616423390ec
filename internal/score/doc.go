// Package score grades preprocessed drawings against reference
// templates.
//
// Two policies implement the shared Policy interface. Strict weighs
// exact feature agreement heavily and penalizes sparse or badly sized
// drawings. Lenient awards partial credit per feature, counts effort as
// a quarter of the score, and floors confidence so a genuine attempt is
// never scored as a total failure. Both produce a similarity in [0, 1],
// calibrate it into a confidence in [0, 1], and decide recognition by a
// policy-specific threshold.
package score
