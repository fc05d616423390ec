package tegaki

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/kakizome/tegaki/glyph"
	"github.com/kakizome/tegaki/ink"
	"github.com/kakizome/tegaki/internal/normalize"
	"github.com/kakizome/tegaki/internal/score"
)

// fallbackMessage is shown to the child when recognition degrades in
// lenient mode.
const fallbackMessage = "Nice try! Let's practice this one together."

// Engine recognizes hand-drawn characters against reference templates.
//
// An Engine is stateless apart from its template store and is safe for
// concurrent use from multiple goroutines.
type Engine struct {
	cfg     Config
	store   *glyph.Store
	strict  score.Policy
	lenient score.Policy
}

// New creates an Engine backed by the built-in hiragana registry.
func New(cfg Config) *Engine {
	return NewWithStore(cfg, glyph.NewStore(glyph.Builtin(), nil))
}

// NewWithStore creates an Engine over a caller-supplied template store,
// for hosts with their own registries or template sources.
func NewWithStore(cfg Config, store *glyph.Store) *Engine {
	return &Engine{
		cfg:     cfg.withDefaults(),
		store:   store,
		strict:  score.Strict{},
		lenient: score.Lenient{},
	}
}

// Recognize scores a drawing against the target character's template
// under the given mode, falling back to the configured default mode
// when the given one is empty or unknown.
//
// # Algorithm
//
// The drawing is normalized (tremor smoothing, gap completion, position
// and size tolerance, unit-box mapping), its features are extracted,
// and the selected policy turns the feature comparison into a
// similarity and then a calibrated confidence.
//
// Recognize never fails. Malformed input yields the null result with
// zero confidence; an unregistered target scores against the generic
// fallback template; any internal failure is recovered and converted
// into a degraded, still usable result. Callers can rely on getting a
// Result in every case.
func (e *Engine) Recognize(d *ink.Drawing, target string, mode Mode) (res *Result) {
	if !mode.valid() {
		mode = e.cfg.DefaultMode
	}
	policy := e.policy(mode)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("recognize %q: recovered from %v, returning fallback result", target, r)
			res = e.fallback(target, mode, policy)
		}
	}()

	if d.Empty() {
		return &Result{}
	}

	p := normalize.Normalize(d)
	if p == nil {
		return &Result{}
	}

	tpl := e.store.Get(target)
	if evicted := e.store.Cleanup(e.cfg.MaxCacheSize); evicted > 0 {
		e.debugf("template cache over %d entries, evicted %d", e.cfg.MaxCacheSize, evicted)
	}

	sim := policy.Similarity(p, tpl)
	conf := policy.Confidence(sim, p, tpl)

	det := &Details{
		AttemptID:       uuid.NewString(),
		Mode:            policy.Name(),
		Similarity:      sim,
		StrokeCount:     p.StrokeCount,
		TotalPoints:     p.TotalPoints,
		ExpectedStrokes: tpl.StrokeCount,
		Features:        p.Features,
	}
	if mode == ModeLenient {
		det.Encouragement = score.Encouragement(conf)
		det.ChildFriendlyScore = sim
	}

	e.debugf("recognize %q: mode=%s strokes=%d/%d similarity=%.3f confidence=%.3f",
		target, policy.Name(), p.StrokeCount, tpl.StrokeCount, sim, conf)

	return &Result{
		Character:  target,
		Confidence: conf,
		Recognized: policy.Recognized(conf),
		Details:    det,
	}
}

// fallback builds the degraded result for a recovered failure. Both
// modes report recognized=true so a transient fault never blocks the
// practice flow.
func (e *Engine) fallback(target string, mode Mode, policy score.Policy) *Result {
	conf := policy.FallbackConfidence()
	det := &Details{
		AttemptID: uuid.NewString(),
		Mode:      policy.Name(),
		Fallback:  true,
	}
	if mode == ModeLenient {
		det.Encouragement = score.Encouragement(conf)
		det.Message = fallbackMessage
	}
	return &Result{
		Character:  target,
		Confidence: conf,
		Recognized: true,
		Details:    det,
	}
}

// Warm preloads templates for the given characters, ahead of a lesson
// that will need them. Loads run with the configured concurrency; the
// only possible error is ctx expiring first.
func (e *Engine) Warm(ctx context.Context, chars []string) error {
	return e.store.Warm(ctx, chars, e.cfg.WarmConcurrency)
}

// CacheLen reports how many templates the store currently holds.
func (e *Engine) CacheLen() int {
	return e.store.Len()
}

func (e *Engine) policy(mode Mode) score.Policy {
	if mode == ModeStrict {
		return e.strict
	}
	return e.lenient
}

func (e *Engine) debugf(format string, args ...interface{}) {
	if e.cfg.Debug {
		log.Printf(format, args...)
	}
}
