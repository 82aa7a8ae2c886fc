package vectorcade

// Key identifies a digital input the games care about. Backends map their
// physical keys and buttons onto these.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyW
	KeyS
	KeyZ
	KeyX
	KeyC

	// KeyCount is the number of defined keys.
	KeyCount
)

var keyNames = [...]string{
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
	KeyEnter:  "enter",
	KeyEscape: "escape",
	KeyW:      "w",
	KeyS:      "s",
	KeyZ:      "z",
	KeyX:      "x",
	KeyC:      "c",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeyByName returns the key with the given String name.
func KeyByName(name string) (Key, bool) {
	for k := Key(0); k < KeyCount; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// Axis identifies an analog input in [-1, 1].
type Axis uint8

const (
	AxisMoveX Axis = iota
	AxisMoveY
	AxisAimX
	AxisAimY
	AxisThrust

	// AxisCount is the number of defined axes.
	AxisCount
)

var axisNames = [...]string{
	AxisMoveX:  "move_x",
	AxisMoveY:  "move_y",
	AxisAimX:   "aim_x",
	AxisAimY:   "aim_y",
	AxisThrust: "thrust",
}

func (a Axis) String() string {
	if a < AxisCount {
		return axisNames[a]
	}
	return "unknown"
}

// AxisByName returns the axis with the given String name.
func AxisByName(name string) (Axis, bool) {
	for a := Axis(0); a < AxisCount; a++ {
		if axisNames[a] == name {
			return a, true
		}
	}
	return 0, false
}

// Button is the state of a digital input for the current tick.
type Button struct {
	// IsDown is true while the input is held.
	IsDown bool
	// WentDown is true only on the tick the input was pressed.
	WentDown bool
	// WentUp is true only on the tick the input was released.
	WentUp bool
}

// ButtonUp is the state of an idle input.
var ButtonUp = Button{}

// buttonFromEdges derives a Button from held state on two consecutive ticks.
func buttonFromEdges(prev, cur bool) Button {
	return Button{IsDown: cur, WentDown: cur && !prev, WentUp: prev && !cur}
}

// Pointer is a mouse or touch position in pixels, origin top-left.
type Pointer struct {
	XPx, YPx float32
	IsDown   bool
}

// InputState is the read-only input capability games query during Update.
// Implementations sample devices once per tick so every query within a tick
// agrees.
type InputState interface {
	Key(k Key) Button
	// Axis returns a value in [-1, 1].
	Axis(a Axis) float32
	// Pointer returns false when no pointer device is present.
	Pointer() (Pointer, bool)
}

// NopInput reports every key up, every axis centered, and no pointer.
type NopInput struct{}

var _ InputState = NopInput{}

func (NopInput) Key(Key) Button           { return ButtonUp }
func (NopInput) Axis(Axis) float32        { return 0 }
func (NopInput) Pointer() (Pointer, bool) { return Pointer{}, false }
