// Package ebitenhost runs a vectorcade.Game in an ebiten window: it resolves
// display lists into pixel-space strokes and drives the fixed-timestep loop.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/vectorcade"
)

const (
	defaultGlowScale = 3
	// glowAlpha scales the alpha of the halo stroke drawn under a glowing
	// line.
	glowAlpha = 0.35
)

// Segment is a resolved stroke in screen pixels.
type Segment struct {
	X0, Y0, X1, Y1 float32
	Width          float32
	Color          vectorcade.Rgba
}

// Label is a text run drawn with the debug font because no vector font was
// registered for its style.
type Label struct {
	X, Y int
	Text string
}

// Frame is a display list resolved for one target.
type Frame struct {
	// Clear is the color of the last Clear command. Everything drawn before
	// that command is discarded.
	Clear    vectorcade.Rgba
	HasClear bool
	Segments []Segment
	Labels   []Label
}

// Renderer turns display lists into strokes. Coordinates in the list are
// normalized device coordinates; the renderer maps them to Screen pixels.
type Renderer struct {
	Screen vectorcade.ScreenInfo
	// Fonts supplies stroke glyphs per style. Text in a style without a font
	// falls back to a Label.
	Fonts map[vectorcade.FontStyleID]vectorcade.VectorFont
	// GlowScale is the halo width relative to the stroke width.
	GlowScale float32

	stack    *vectorcade.TransformStack
	frame    Frame
	glyphBuf []vectorcade.DrawCmd
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen vectorcade.ScreenInfo) *Renderer {
	return &Renderer{
		Screen:    screen,
		Fonts:     map[vectorcade.FontStyleID]vectorcade.VectorFont{},
		GlowScale: defaultGlowScale,
		stack:     vectorcade.NewTransformStack(),
	}
}

// Resolve walks cmds and returns the strokes they produce. The returned frame
// is reused by the next Resolve call. Unmatched PopTransform commands are
// ignored.
func (r *Renderer) Resolve(cmds []vectorcade.DrawCmd) *Frame {
	r.stack.Reset()
	r.frame.Segments = r.frame.Segments[:0]
	r.frame.Labels = r.frame.Labels[:0]
	r.frame.HasClear = false

	for _, c := range cmds {
		switch v := c.(type) {
		case vectorcade.Clear:
			r.frame.Clear, r.frame.HasClear = v.Color, true
			r.frame.Segments = r.frame.Segments[:0]
			r.frame.Labels = r.frame.Labels[:0]
		case vectorcade.Line:
			r.addSegment(v.A, v.B, v.Stroke)
		case vectorcade.Polyline:
			r.addPolyline(v)
		case vectorcade.Text:
			r.addText(v)
		case vectorcade.PushTransform:
			r.stack.Push(v.M)
		case vectorcade.PopTransform:
			r.stack.Pop()
		}
	}
	return &r.frame
}

func (r *Renderer) addPolyline(p vectorcade.Polyline) {
	for i := 1; i < len(p.Points); i++ {
		r.addSegment(p.Points[i-1], p.Points[i], p.Stroke)
	}
	if p.Closed && len(p.Points) > 2 {
		r.addSegment(p.Points[len(p.Points)-1], p.Points[0], p.Stroke)
	}
}

func (r *Renderer) addText(t vectorcade.Text) {
	font, ok := r.Fonts[t.Style]
	if !ok {
		px := vectorcade.NDCToPx(r.stack.Apply(t.Pos), r.Screen)
		r.frame.Labels = append(r.frame.Labels, Label{X: int(px[0]), Y: int(px[1]), Text: t.Text})
		return
	}
	// SizePx is in pixels; glyphs are laid out in NDC, which spans 2 units
	// over the screen height.
	size := t.SizePx * 2 / float32(max(r.Screen.HeightPx, 1))
	r.glyphBuf = vectorcade.AppendTextStrokes(r.glyphBuf[:0], font, t.Text, t.Pos, size,
		vectorcade.NewStroke(t.Color, 1))
	for _, g := range r.glyphBuf {
		if p, ok := g.(vectorcade.Polyline); ok {
			r.addPolyline(p)
		}
	}
}

func (r *Renderer) addSegment(a, b vectorcade.Vec2, s vectorcade.Stroke) {
	pa := vectorcade.NDCToPx(r.stack.Apply(a), r.Screen)
	pb := vectorcade.NDCToPx(r.stack.Apply(b), r.Screen)
	scale := r.Screen.DPIScale
	if scale <= 0 {
		scale = 1
	}
	w := s.WidthPx * scale
	if s.Glow > 0 {
		halo := s.Color.WithA(s.Color.A * s.Glow * glowAlpha)
		r.frame.Segments = append(r.frame.Segments, Segment{
			X0: pa[0], Y0: pa[1], X1: pb[0], Y1: pb[1],
			Width: w * r.GlowScale,
			Color: halo,
		})
	}
	r.frame.Segments = append(r.frame.Segments, Segment{
		X0: pa[0], Y0: pa[1], X1: pb[0], Y1: pb[1],
		Width: w,
		Color: s.Color,
	})
}

// Draw resolves cmds and strokes them onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, cmds []vectorcade.DrawCmd) {
	f := r.Resolve(cmds)
	if f.HasClear {
		dst.Fill(toColor(f.Clear))
	}
	for _, s := range f.Segments {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, s.Width, toColor(s.Color), true)
	}
	for _, l := range f.Labels {
		ebitenutil.DebugPrintAt(dst, l.Text, l.X, l.Y)
	}
}

// toColor converts to a premultiplied ebiten color.
func toColor(c vectorcade.Rgba) color.RGBA {
	a := vectorcade.Clamp(c.A, 0, 1)
	ch := func(v float32) uint8 {
		return uint8(vectorcade.Clamp(v, 0, 1)*a*255 + 0.5)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: uint8(a*255 + 0.5)}
}
