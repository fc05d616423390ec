// Package render rasterizes drawings into diagnostic images.
//
// The engine itself never draws anything; this package exists for
// debugging normalization visually and for practice-sheet thumbnails.
// Strokes are plotted in capture order with a stepped hue so stroke
// order is readable at a glance, supersampled and downscaled so the
// thin polylines read as pen strokes.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kakizome/tegaki/ink"
)

// supersample is the oversampling factor for plotting. Lines are drawn
// at twice the output resolution and downscaled with a Lanczos filter.
const supersample = 2

// Options configures rasterization. The zero value renders a 256x256
// margin-less image; start from DefaultOptions for the usual look.
type Options struct {
	// Size is the output width and height in pixels.
	Size int

	// StrokeWidth is the ink thickness in output pixels.
	StrokeWidth int

	// Margin is the blank border kept around the glyph, in output
	// pixels.
	Margin int

	// Soften blurs the plotted ink slightly before downscaling, so
	// strokes look drawn rather than plotted.
	Soften bool

	// Background fills the canvas. Nil means white.
	Background color.Color
}

// DefaultOptions returns the stock rasterization settings.
func DefaultOptions() Options {
	return Options{
		Size:        256,
		StrokeWidth: 3,
		Margin:      16,
		Soften:      true,
	}
}

func (o Options) sanitized() Options {
	if o.Size <= 0 {
		o.Size = 256
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 3
	}
	if o.Margin < 0 || o.Margin*2 >= o.Size {
		o.Margin = o.Size / 8
	}
	return o
}

// Render rasterizes a drawing. A nil or empty drawing yields a blank
// canvas.
func Render(d *ink.Drawing, opts Options) image.Image {
	if d == nil {
		return RenderStrokes(nil, opts)
	}
	return RenderStrokes(d.Strokes, opts)
}

// RenderStrokes rasterizes bare strokes, raw or normalized; the glyph
// is scaled and centered regardless of its coordinate range.
func RenderStrokes(strokes []ink.Stroke, opts Options) image.Image {
	opts = opts.sanitized()

	big := opts.Size * supersample
	canvas := image.NewRGBA(image.Rect(0, 0, big, big))

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	plot := plotter(strokes, big, opts.Margin*supersample)
	width := opts.StrokeWidth * supersample

	for i, s := range strokes {
		if len(s) == 0 {
			continue
		}
		c := strokeColor(i, len(strokes))

		if len(s) == 1 {
			x, y := plot(s[0])
			fillDot(canvas, x, y, width/2, c)
			continue
		}
		for j := 1; j < len(s); j++ {
			x1, y1 := plot(s[j-1])
			x2, y2 := plot(s[j])
			thickLine(canvas, x1, y1, x2, y2, width, c)
		}
	}

	var out image.Image = canvas
	if opts.Soften {
		out = blur.Gaussian(out, supersample)
	}
	return imaging.Resize(out, opts.Size, opts.Size, imaging.Lanczos)
}

// plotter maps capture coordinates onto the supersampled canvas,
// scaling the glyph's larger dimension into the usable area and
// centering it. Degenerate input collapses to the canvas center.
func plotter(strokes []ink.Stroke, canvas, margin int) func(ink.Point) (int, int) {
	box := ink.Bounds(strokes)
	center := box.Center()
	half := float64(canvas) / 2

	scale := 0.0
	if maxDim := box.MaxDim(); maxDim > 0 {
		scale = float64(canvas-2*margin) / maxDim
	}

	return func(p ink.Point) (int, int) {
		x := half + (p.X-center.X)*scale
		y := half + (p.Y-center.Y)*scale
		return int(x), int(y)
	}
}

// strokeColor steps the hue around the wheel per stroke index, at fixed
// saturation and value so every stroke stays legible on white.
func strokeColor(index, total int) color.RGBA {
	if total < 1 {
		total = 1
	}
	hue := 360 * float64(index) / float64(total)
	r, g, b := colorful.Hsv(hue, 0.85, 0.75).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// thickLine plots a line of the given thickness by sweeping parallel
// single-pixel lines along the perpendicular.
func thickLine(img *image.RGBA, x1, y1, x2, y2, thickness int, c color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := ink.Distance(ink.Point{X: float64(x1), Y: float64(y1)}, ink.Point{X: float64(x2), Y: float64(y2)})
	if length == 0 {
		fillDot(img, x1, y1, thickness/2, c)
		return
	}

	px := -dy / length
	py := dx / length
	half := float64(thickness) / 2

	for t := -half; t <= half; t++ {
		line(img,
			x1+int(px*t), y1+int(py*t),
			x2+int(px*t), y2+int(py*t), c)
	}
}

// line plots a single-pixel line with Bresenham stepping, skipping
// pixels outside the canvas.
func line(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, c)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillDot plots a filled disc, used for single-point strokes and
// zero-length segments. Radius is clamped to at least one pixel.
func fillDot(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	if r < 1 {
		r = 1
	}
	bounds := img.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !image.Pt(x, y).In(bounds) {
				continue
			}
			ddx, ddy := x-cx, y-cy
			if ddx*ddx+ddy*ddy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
