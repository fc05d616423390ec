// Package glyph holds the reference template model for recognizable
// characters and the cache that serves templates to the engine.
//
// A Template records what a well-formed drawing of one character looks
// like to the feature extractor: how many strokes it takes, which of the
// three boolean shape flags it sets, and its complexity estimate. The
// built-in Registry covers the 46 base hiragana; hosts may substitute
// their own registry or back a Store with a custom LoadFunc.
//
// # Cache Behavior
//
// The Store keeps a small basic set resident from construction onward
// and loads everything else lazily. Three properties matter to callers:
//
//   - Lookups never fail. A character nobody registered resolves to a
//     synthesized fallback template instead of an error.
//   - Concurrent first requests for the same character share a single
//     load; late arrivals receive the completed result.
//   - Cleanup bounds the cache by evicting non-basic entries in
//     insertion order. Recency of use plays no part in eviction.
package glyph
