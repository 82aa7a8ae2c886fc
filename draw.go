package vectorcade

// CmdKind identifies the kind of draw command.
type CmdKind uint8

const (
	CmdClear         CmdKind = iota // fill the target with a color
	CmdLine                         // single stroked segment
	CmdPolyline                     // connected stroked segments, optionally closed
	CmdText                         // tagged text run; glyph shaping is the renderer's job
	CmdPushTransform                // compose a transform onto the stack
	CmdPopTransform                 // drop the most recent transform
	CmdBeginLayer                   // open a named batching group
	CmdEndLayer                     // close the most recent layer
)

var cmdKindNames = [...]string{
	CmdClear:         "Clear",
	CmdLine:          "Line",
	CmdPolyline:      "Polyline",
	CmdText:          "Text",
	CmdPushTransform: "PushTransform",
	CmdPopTransform:  "PopTransform",
	CmdBeginLayer:    "BeginLayer",
	CmdEndLayer:      "EndLayer",
}

func (k CmdKind) String() string {
	if int(k) < len(cmdKindNames) {
		return cmdKindNames[k]
	}
	return "CmdKind(?)"
}

// DrawCmd is one entry of a frame's display list. The set of commands is
// closed: Clear, Line, Polyline, Text, PushTransform, PopTransform,
// BeginLayer and EndLayer.
//
// Order is significant. PushTransform/PopTransform and BeginLayer/EndLayer
// must balance within one render pass.
type DrawCmd interface {
	Kind() CmdKind
	isDrawCmd()
}

// Stroke describes how a vector line is drawn. Renderers may ignore fields
// they cannot honor.
type Stroke struct {
	Color Rgba
	// WidthPx is the beam width in screen pixels.
	WidthPx float32
	// Glow is a phosphor glow hint in [0, 1]. 0 means none.
	Glow float32
}

// NewStroke returns a stroke without glow.
func NewStroke(color Rgba, widthPx float32) Stroke {
	return Stroke{Color: color, WidthPx: widthPx}
}

// StrokeWithGlow returns a stroke with a glow hint.
func StrokeWithGlow(color Rgba, widthPx, glow float32) Stroke {
	return Stroke{Color: color, WidthPx: widthPx, Glow: glow}
}

// DefaultStroke is a 1px white stroke.
func DefaultStroke() Stroke {
	return NewStroke(ColorWhite, 1)
}

// Line2 is a stroked segment.
type Line2 struct {
	A, B   Vec2
	Stroke Stroke
}

// Clear fills the target with Color.
type Clear struct {
	Color Rgba
}

// Line draws a single segment.
type Line struct {
	Line2
}

// NewLine returns a Line command from a to b.
func NewLine(a, b Vec2, stroke Stroke) Line {
	return Line{Line2{A: a, B: b, Stroke: stroke}}
}

// Polyline draws connected segments through Points. Closed adds a segment
// from the last point back to the first.
type Polyline struct {
	Points []Vec2
	Closed bool
	Stroke Stroke
}

// Text tags a string for the renderer's vector font of the given style.
type Text struct {
	Pos    Vec2
	Text   string
	SizePx float32
	Color  Rgba
	Style  FontStyleID
}

// PushTransform composes M onto the renderer's transform stack.
type PushTransform struct {
	M Mat3
}

// PopTransform drops the most recently pushed transform.
type PopTransform struct{}

// BeginLayer opens a named group. Backends may use it to batch.
type BeginLayer struct {
	Name string
}

// EndLayer closes the most recent BeginLayer.
type EndLayer struct{}

func (Clear) Kind() CmdKind         { return CmdClear }
func (Line) Kind() CmdKind          { return CmdLine }
func (Polyline) Kind() CmdKind      { return CmdPolyline }
func (Text) Kind() CmdKind          { return CmdText }
func (PushTransform) Kind() CmdKind { return CmdPushTransform }
func (PopTransform) Kind() CmdKind  { return CmdPopTransform }
func (BeginLayer) Kind() CmdKind    { return CmdBeginLayer }
func (EndLayer) Kind() CmdKind      { return CmdEndLayer }

func (Clear) isDrawCmd()         {}
func (Line) isDrawCmd()          {}
func (Polyline) isDrawCmd()      {}
func (Text) isDrawCmd()          {}
func (PushTransform) isDrawCmd() {}
func (PopTransform) isDrawCmd()  {}
func (BeginLayer) isDrawCmd()    {}
func (EndLayer) isDrawCmd()      {}

// RectWire returns a closed polyline outlining the box from min to max.
func RectWire(min, max Vec2, stroke Stroke) Polyline {
	return Polyline{
		Points: []Vec2{
			{min[0], min[1]},
			{max[0], min[1]},
			{max[0], max[1]},
			{min[0], max[1]},
		},
		Closed: true,
		Stroke: stroke,
	}
}
