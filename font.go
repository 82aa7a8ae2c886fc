package vectorcade

import "fmt"

// FontStyleID selects a vector font aesthetic. Font providers may support
// several styles; unknown IDs fall back to the provider's default.
type FontStyleID uint32

const (
	FontStyleDefault        FontStyleID = iota // implementation-defined
	FontStyleAtari                             // Asteroids, Tempest
	FontStyleCinematronics                     // Star Castle, Armor Attack
	FontStyleMidway                            // Omega Race
	FontStyleVectorScanline                    // raster-style scanline strokes
)

func (id FontStyleID) String() string {
	switch id {
	case FontStyleDefault:
		return "default"
	case FontStyleAtari:
		return "atari"
	case FontStyleCinematronics:
		return "cinematronics"
	case FontStyleMidway:
		return "midway"
	case FontStyleVectorScanline:
		return "vector-scanline"
	default:
		return fmt.Sprintf("FontStyleID(%d)", uint32(id))
	}
}

// GlyphOp identifies a glyph path operation.
type GlyphOp uint8

const (
	GlyphMoveTo    GlyphOp = iota // start a new sub-path at P without drawing
	GlyphLineTo                   // draw to P
	GlyphClosePath                // draw back to the sub-path start
)

// GlyphPathCmd is a single glyph path operation. P is unused for
// GlyphClosePath.
type GlyphPathCmd struct {
	Op GlyphOp
	P  Vec2
}

// MoveTo returns a GlyphMoveTo command.
func MoveTo(p Vec2) GlyphPathCmd { return GlyphPathCmd{Op: GlyphMoveTo, P: p} }

// LineTo returns a GlyphLineTo command.
func LineTo(p Vec2) GlyphPathCmd { return GlyphPathCmd{Op: GlyphLineTo, P: p} }

// ClosePath returns a GlyphClosePath command.
func ClosePath() GlyphPathCmd { return GlyphPathCmd{Op: GlyphClosePath} }

// GlyphPath is one stroke path of a glyph in font units (typically 0..1,
// Y up). Glyphs with several paths give the broken, segmented look of
// arcade vector fonts.
type GlyphPath struct {
	Cmds []GlyphPathCmd
}

// VectorFont provides stroke geometry for glyphs. Concrete fonts live
// outside this package.
type VectorFont interface {
	StyleID() FontStyleID
	HasGlyph(r rune) bool
	GlyphPaths(r rune) []GlyphPath
	// Advance returns the horizontal advance in font units.
	Advance(r rune) float32
}

// textLineHeight is the line spacing in multiples of the text size.
const textLineHeight = 1.25

// AppendTextStrokes lays out text with font and appends one Polyline per
// glyph sub-path. pos is the baseline origin of the first line; font units
// are scaled by sizePx. Runes without a glyph still advance the cursor.
func AppendTextStrokes(out []DrawCmd, font VectorFont, text string, pos Vec2, sizePx float32, stroke Stroke) []DrawCmd {
	cursor := pos
	for _, r := range text {
		if r == '\n' {
			cursor = Vec2{pos[0], cursor[1] - sizePx*textLineHeight}
			continue
		}
		if font.HasGlyph(r) {
			for _, path := range font.GlyphPaths(r) {
				out = appendGlyphPath(out, path, cursor, sizePx, stroke)
			}
		}
		cursor[0] += font.Advance(r) * sizePx
	}
	return out
}

// MeasureText returns the width of the widest line and the total height of
// text set at sizePx.
func MeasureText(font VectorFont, text string, sizePx float32) (width, height float32) {
	var line float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			width = max(width, line)
			line = 0
			lines++
			continue
		}
		line += font.Advance(r) * sizePx
	}
	width = max(width, line)
	height = sizePx + float32(lines-1)*sizePx*textLineHeight
	return width, height
}

func appendGlyphPath(out []DrawCmd, path GlyphPath, origin Vec2, scale float32, stroke Stroke) []DrawCmd {
	var pts []Vec2
	var start Vec2
	flush := func(closed bool) {
		if len(pts) >= 2 {
			out = append(out, Polyline{Points: pts, Closed: closed, Stroke: stroke})
		}
		pts = nil
	}
	for _, c := range path.Cmds {
		switch c.Op {
		case GlyphMoveTo:
			flush(false)
			start = origin.Add(c.P.Mul(scale))
			pts = append(pts, start)
		case GlyphLineTo:
			// After a close the pen sits at the sub-path start.
			if len(pts) == 0 {
				pts = append(pts, start)
			}
			pts = append(pts, origin.Add(c.P.Mul(scale)))
		case GlyphClosePath:
			flush(true)
		}
	}
	flush(false)
	return out
}
