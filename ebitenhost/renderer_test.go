package ebitenhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/vectorcade"
)

var screen = vectorcade.ScreenInfo{WidthPx: 200, HeightPx: 100, DPIScale: 1}

// barFont draws every rune as one vertical stroke.
type barFont struct{}

func (barFont) StyleID() vectorcade.FontStyleID { return vectorcade.FontStyleAtari }
func (barFont) HasGlyph(rune) bool              { return true }
func (barFont) Advance(rune) float32            { return 1 }

func (barFont) GlyphPaths(rune) []vectorcade.GlyphPath {
	return []vectorcade.GlyphPath{{Cmds: []vectorcade.GlyphPathCmd{
		vectorcade.MoveTo(vectorcade.Vec2{0, 0}),
		vectorcade.LineTo(vectorcade.Vec2{0, 1}),
	}}}
}

func TestResolveLineToPixels(t *testing.T) {
	r := NewRenderer(screen)
	f := r.Resolve([]vectorcade.DrawCmd{
		vectorcade.NewLine(vectorcade.Vec2{-1, 1}, vectorcade.Vec2{1, -1}, vectorcade.NewStroke(vectorcade.ColorGreen, 2)),
	})
	require.Len(t, f.Segments, 1)
	assert.Equal(t, Segment{X0: 0, Y0: 0, X1: 200, Y1: 100, Width: 2, Color: vectorcade.ColorGreen}, f.Segments[0])
	assert.False(t, f.HasClear)
}

func TestResolveAppliesTransforms(t *testing.T) {
	r := NewRenderer(screen)
	f := r.Resolve([]vectorcade.DrawCmd{
		vectorcade.PushTransform{M: vectorcade.Translate2(vectorcade.Vec2{0.5, 0})},
		vectorcade.NewLine(vectorcade.Vec2{0, 0}, vectorcade.Vec2{0, 0}, vectorcade.DefaultStroke()),
		vectorcade.PopTransform{},
		vectorcade.PopTransform{},
		vectorcade.NewLine(vectorcade.Vec2{0, 0}, vectorcade.Vec2{0, 0}, vectorcade.DefaultStroke()),
	})
	require.Len(t, f.Segments, 2)
	assert.Equal(t, float32(150), f.Segments[0].X0)
	assert.Equal(t, float32(100), f.Segments[1].X0, "stray pop leaves identity")
}

func TestResolveClearDiscardsEarlierStrokes(t *testing.T) {
	r := NewRenderer(screen)
	f := r.Resolve([]vectorcade.DrawCmd{
		vectorcade.NewLine(vectorcade.Vec2{}, vectorcade.Vec2{1, 0}, vectorcade.DefaultStroke()),
		vectorcade.Clear{Color: vectorcade.ColorBlack},
		vectorcade.RectWire(vectorcade.Vec2{-0.5, -0.5}, vectorcade.Vec2{0.5, 0.5}, vectorcade.DefaultStroke()),
	})
	assert.True(t, f.HasClear)
	assert.Equal(t, vectorcade.ColorBlack, f.Clear)
	assert.Len(t, f.Segments, 4, "closed rectangle")
}

func TestResolveGlowAddsHalo(t *testing.T) {
	r := NewRenderer(screen)
	f := r.Resolve([]vectorcade.DrawCmd{
		vectorcade.NewLine(vectorcade.Vec2{}, vectorcade.Vec2{1, 0}, vectorcade.StrokeWithGlow(vectorcade.ColorWhite, 1, 1)),
	})
	require.Len(t, f.Segments, 2)
	assert.Equal(t, float32(defaultGlowScale), f.Segments[0].Width)
	assert.InDelta(t, glowAlpha, f.Segments[0].Color.A, 1e-6)
	assert.Equal(t, float32(1), f.Segments[1].Width)
}

func TestResolveText(t *testing.T) {
	r := NewRenderer(screen)
	text := vectorcade.Text{Pos: vectorcade.Vec2{0, 0}, Text: "AB", SizePx: 10, Color: vectorcade.ColorWhite, Style: vectorcade.FontStyleAtari}

	f := r.Resolve([]vectorcade.DrawCmd{text})
	assert.Empty(t, f.Segments)
	require.Len(t, f.Labels, 1)
	assert.Equal(t, Label{X: 100, Y: 50, Text: "AB"}, f.Labels[0])

	r.Fonts[vectorcade.FontStyleAtari] = barFont{}
	f = r.Resolve([]vectorcade.DrawCmd{text})
	assert.Empty(t, f.Labels)
	require.Len(t, f.Segments, 2)
	// 10px tall glyph bars. The advance is in NDC, which spans the wider
	// screen width, so it lands 20px over.
	assert.InDelta(t, 10, f.Segments[0].Y0-f.Segments[0].Y1, 1e-4)
	assert.InDelta(t, 20, f.Segments[1].X0-f.Segments[0].X0, 1e-4)
}

func TestResolveReusesFrame(t *testing.T) {
	r := NewRenderer(screen)
	cmds := []vectorcade.DrawCmd{vectorcade.NewLine(vectorcade.Vec2{}, vectorcade.Vec2{1, 0}, vectorcade.DefaultStroke())}
	r.Resolve(cmds)
	f := r.Resolve(cmds)
	assert.Len(t, f.Segments, 1)
}

func TestToColorPremultiplies(t *testing.T) {
	c := toColor(vectorcade.Rgba{R: 1, G: 0.5, B: 0, A: 0.5})
	assert.Equal(t, uint8(128), c.R)
	assert.Equal(t, uint8(64), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(128), c.A)
}
