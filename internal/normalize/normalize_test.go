package normalize

import (
	"math"
	"testing"

	"github.com/kakizome/tegaki/ink"
)

// timedLine builds a stroke of evenly spaced, evenly timed points.
func timedLine(x0, y0, x1, y1 float64, points int, t0, t1 int64) ink.Stroke {
	s := make(ink.Stroke, points)
	for i := 0; i < points; i++ {
		t := float64(i) / float64(points-1)
		s[i] = ink.Point{
			X: x0 + (x1-x0)*t,
			Y: y0 + (y1-y0)*t,
			T: t0 + int64(float64(t1-t0)*t),
		}
	}
	return s
}

func TestNormalize_NilDrawing(t *testing.T) {
	if p := Normalize(nil); p != nil {
		t.Errorf("Normalize(nil) = %+v, want nil", p)
	}
}

func TestNormalize_EmptyDrawing(t *testing.T) {
	if p := Normalize(&ink.Drawing{}); p != nil {
		t.Errorf("Normalize of empty drawing = %+v, want nil", p)
	}
	d := &ink.Drawing{Strokes: []ink.Stroke{{}, {}}}
	if p := Normalize(d); p != nil {
		t.Errorf("Normalize of pointless strokes = %+v, want nil", p)
	}
}

func TestNormalize_UnitBoxProperty(t *testing.T) {
	d := ink.Capture([]ink.Stroke{
		timedLine(0, 0, 200, 30, 5, 1000, 1400),   // long gaps trigger interpolation
		timedLine(40, 160, 180, 160, 8, 1500, 1900),
	}, 2000)

	p := Normalize(d)
	if p == nil {
		t.Fatal("Normalize returned nil for a valid drawing")
	}

	for si, s := range p.Strokes {
		for pi, pt := range s {
			if pt.X < -1e-9 || pt.X > 1+1e-9 || pt.Y < -1e-9 || pt.Y > 1+1e-9 {
				t.Fatalf("stroke %d point %d = (%v, %v), outside unit box", si, pi, pt.X, pt.Y)
			}
		}
	}
}

func TestNormalize_CountsComeFromInput(t *testing.T) {
	d := ink.Capture([]ink.Stroke{
		{{X: 0, Y: 0}, {X: 100, Y: 0}}, // 100-unit gap grows the working copy
		{{X: 0, Y: 50}, {X: 40, Y: 50}, {X: 80, Y: 50}},
	}, 0)

	p := Normalize(d)
	if p == nil {
		t.Fatal("Normalize returned nil")
	}

	if p.StrokeCount != 2 {
		t.Errorf("StrokeCount = %d, want 2", p.StrokeCount)
	}
	if p.TotalPoints != 5 {
		t.Errorf("TotalPoints = %d, want 5", p.TotalPoints)
	}
	if len(p.Strokes[0]) <= 2 {
		t.Errorf("working stroke has %d points, want gap completion to add some", len(p.Strokes[0]))
	}
}

func TestNormalize_IgnoresEmptyStrokes(t *testing.T) {
	d := &ink.Drawing{Strokes: []ink.Stroke{
		{},
		{{X: 0, Y: 0}, {X: 30, Y: 40}},
		{},
	}}

	p := Normalize(d)
	if p == nil {
		t.Fatal("Normalize returned nil")
	}
	if p.StrokeCount != 1 {
		t.Errorf("StrokeCount = %d, want 1 (empty strokes are not gestures)", p.StrokeCount)
	}
}

func TestNormalize_DoesNotMutateCaller(t *testing.T) {
	strokes := []ink.Stroke{
		timedLine(0, 0, 150, 0, 4, 1000, 1300),
		timedLine(75, -20, 75, 120, 4, 1400, 1700),
	}
	saved := make([]ink.Stroke, len(strokes))
	for i, s := range strokes {
		saved[i] = s.Clone()
	}

	Normalize(ink.Capture(strokes, 2000))

	for si := range strokes {
		for pi := range strokes[si] {
			if strokes[si][pi] != saved[si][pi] {
				t.Fatalf("caller stroke %d point %d mutated: %+v", si, pi, strokes[si][pi])
			}
		}
	}
}

func TestNormalize_SpeedFromRawCoordinates(t *testing.T) {
	d := ink.Capture([]ink.Stroke{
		{{X: 0, Y: 0, T: 1000}, {X: 50, Y: 0, T: 1250}, {X: 100, Y: 0, T: 1500}},
	}, 1500)

	p := Normalize(d)
	if p == nil {
		t.Fatal("Normalize returned nil")
	}

	if p.RawPathLength != 100 {
		t.Errorf("RawPathLength = %v, want 100", p.RawPathLength)
	}
	if p.ElapsedMillis != 500 {
		t.Errorf("ElapsedMillis = %d, want 500", p.ElapsedMillis)
	}
	if got := p.Speed(); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Speed() = %v, want 0.2", got)
	}
}

func TestNormalize_NoTimestampsMeansZeroSpeed(t *testing.T) {
	d := ink.Capture([]ink.Stroke{
		{{X: 0, Y: 0}, {X: 80, Y: 0}, {X: 80, Y: 80}},
	}, 0)

	p := Normalize(d)
	if p == nil {
		t.Fatal("Normalize returned nil")
	}
	if p.ElapsedMillis != 0 {
		t.Errorf("ElapsedMillis = %d, want 0", p.ElapsedMillis)
	}
	if p.Speed() != 0 {
		t.Errorf("Speed() = %v, want 0", p.Speed())
	}
}

func TestNormalize_SmoothnessReflectsTurns(t *testing.T) {
	straight := Normalize(ink.Capture([]ink.Stroke{
		timedLine(0, 0, 100, 70, 12, 1000, 1600),
	}, 1600))
	if straight == nil {
		t.Fatal("Normalize returned nil")
	}
	if straight.Smoothness < 0.9 {
		t.Errorf("straight-line Smoothness = %v, want >= 0.9", straight.Smoothness)
	}

	zigzag := ink.Stroke{}
	x, y := 0.0, 0.0
	for i := 0; i < 12; i++ {
		zigzag = append(zigzag, ink.Point{X: x, Y: y})
		if i%2 == 0 {
			x += 40
		} else {
			y += 40
		}
	}
	jagged := Normalize(ink.Capture([]ink.Stroke{zigzag}, 0))
	if jagged == nil {
		t.Fatal("Normalize returned nil")
	}
	if jagged.Smoothness >= straight.Smoothness {
		t.Errorf("zigzag Smoothness = %v, want below straight %v",
			jagged.Smoothness, straight.Smoothness)
	}
}

func TestSmoothTremor_AveragesInteriorPoints(t *testing.T) {
	in := []ink.Stroke{{{X: 0, Y: 0}, {X: 10, Y: 4}, {X: 20, Y: 0}}}

	out := smoothTremor(in)

	want := ink.Point{X: 10, Y: 4.0 / 3.0}
	got := out[0][1]
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("interior point = (%v, %v), want (%v, %v)", got.X, got.Y, want.X, want.Y)
	}
	if out[0][0] != in[0][0] || out[0][2] != in[0][2] {
		t.Error("endpoints must be preserved")
	}
}

func TestSmoothTremor_PullsJitterTowardPrevious(t *testing.T) {
	in := []ink.Stroke{{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 30, Y: 0}}}

	out := smoothTremor(in)

	// Average of the first interior point is (1, 1/3), within the jitter
	// radius of (0, 0), so it is pulled halfway back.
	got := out[0][1]
	if math.Abs(got.X-0.5) > 1e-9 || math.Abs(got.Y-1.0/6.0) > 1e-9 {
		t.Errorf("jittery point = (%v, %v), want (0.5, %v)", got.X, got.Y, 1.0/6.0)
	}
}

func TestSmoothTremor_ShortStrokeCopied(t *testing.T) {
	in := []ink.Stroke{{{X: 1, Y: 2}, {X: 3, Y: 4}}}

	out := smoothTremor(in)

	if out[0][0] != in[0][0] || out[0][1] != in[0][1] {
		t.Errorf("short stroke changed: %+v", out[0])
	}
	out[0][0].X = 99
	if in[0][0].X != 1 {
		t.Error("smoothTremor returned a stroke sharing caller storage")
	}
}

func TestCompleteGaps_Interpolates(t *testing.T) {
	in := []ink.Stroke{{{X: 0, Y: 0, T: 1000}, {X: 100, Y: 0, T: 2000}}}

	out := completeGaps(in)

	s := out[0]
	if len(s) != 11 {
		t.Fatalf("len = %d, want 11 (nine interpolated points)", len(s))
	}
	if s[1].X != 10 || s[1].Y != 0 {
		t.Errorf("first inserted point = (%v, %v), want (10, 0)", s[1].X, s[1].Y)
	}
	if s[1].T != 1100 {
		t.Errorf("first inserted timestamp = %d, want 1100", s[1].T)
	}
	if s[10] != in[0][1] {
		t.Error("original endpoint missing")
	}
}

func TestCompleteGaps_ShortSegmentsUntouched(t *testing.T) {
	in := []ink.Stroke{{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 35, Y: 0}}}

	out := completeGaps(in)

	if len(out[0]) != 3 {
		t.Errorf("len = %d, want 3 (segments at or under the threshold)", len(out[0]))
	}
}

func TestClampToCenter(t *testing.T) {
	box := ink.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	strokes := []ink.Stroke{{
		{X: 200, Y: 50},  // far right of the declared box
		{X: 50, Y: -80},  // far above
		{X: 60, Y: 60},   // inside, untouched
	}}

	clampToCenter(strokes, box)

	if got := strokes[0][0]; got.X != 100 || got.Y != 50 {
		t.Errorf("clamped point = (%v, %v), want (100, 50)", got.X, got.Y)
	}
	if got := strokes[0][1]; got.X != 50 || got.Y != 0 {
		t.Errorf("clamped point = (%v, %v), want (50, 0)", got.X, got.Y)
	}
	if got := strokes[0][2]; got.X != 60 || got.Y != 60 {
		t.Errorf("inside point moved to (%v, %v)", got.X, got.Y)
	}
}

func TestRescaleToStandard_GrowsSmallDrawings(t *testing.T) {
	strokes := []ink.Stroke{{{X: 0, Y: 0}, {X: 40, Y: 40}}}

	rescaleToStandard(strokes)

	box := ink.Bounds(strokes)
	if math.Abs(box.MaxDim()-60) > 1e-9 {
		t.Errorf("MaxDim after rescale = %v, want 60", box.MaxDim())
	}
}

func TestRescaleToStandard_ShrinksLargeDrawings(t *testing.T) {
	strokes := []ink.Stroke{{{X: 0, Y: 0}, {X: 200, Y: 100}}}

	rescaleToStandard(strokes)

	box := ink.Bounds(strokes)
	if math.Abs(box.MaxDim()-140) > 1e-9 {
		t.Errorf("MaxDim after rescale = %v, want 140", box.MaxDim())
	}
}

func TestRescaleToStandard_InRangeUntouched(t *testing.T) {
	strokes := []ink.Stroke{{{X: 10, Y: 10}, {X: 110, Y: 60}}}

	rescaleToStandard(strokes)

	if strokes[0][0] != (ink.Point{X: 10, Y: 10}) || strokes[0][1] != (ink.Point{X: 110, Y: 60}) {
		t.Errorf("in-range drawing rescaled: %+v", strokes[0])
	}
}

func TestToUnitBox_DegenerateBoxPassesThrough(t *testing.T) {
	strokes := []ink.Stroke{{{X: 5, Y: 10}, {X: 25, Y: 10}}} // zero height

	toUnitBox(strokes)

	if strokes[0][0].X != 5 || strokes[0][1].X != 25 {
		t.Errorf("degenerate-box stroke changed: %+v", strokes[0])
	}
}

func TestToUnitBox_MapsCorners(t *testing.T) {
	strokes := []ink.Stroke{{{X: 10, Y: 20}, {X: 110, Y: 70}}}

	toUnitBox(strokes)

	if strokes[0][0] != (ink.Point{X: 0, Y: 0}) {
		t.Errorf("min corner = %+v, want (0, 0)", strokes[0][0])
	}
	if strokes[0][1] != (ink.Point{X: 1, Y: 1}) {
		t.Errorf("max corner = %+v, want (1, 1)", strokes[0][1])
	}
}
