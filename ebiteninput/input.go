// Package ebiteninput adapts ebiten keyboard, mouse and gamepad state to
// vectorcade.InputState.
package ebiteninput

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/vectorcade"
)

// DefaultDeadZone is the stick magnitude below which an axis reads 0.
const DefaultDeadZone = 0.15

// buttonThreshold is the analog value at which a gamepad button counts as
// held.
const buttonThreshold = 0.5

// KeyMap binds each game key to the physical keys and gamepad buttons that
// press it.
type KeyMap struct {
	Keys    map[vectorcade.Key][]ebiten.Key
	Buttons map[vectorcade.Key][]ebiten.StandardGamepadButton
}

// DefaultKeyMap binds arrows and WASD-style keys plus a standard gamepad.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Keys: map[vectorcade.Key][]ebiten.Key{
			vectorcade.KeyLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
			vectorcade.KeyRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
			vectorcade.KeyUp:     {ebiten.KeyArrowUp},
			vectorcade.KeyDown:   {ebiten.KeyArrowDown},
			vectorcade.KeySpace:  {ebiten.KeySpace},
			vectorcade.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
			vectorcade.KeyEscape: {ebiten.KeyEscape},
			vectorcade.KeyW:      {ebiten.KeyW},
			vectorcade.KeyS:      {ebiten.KeyS},
			vectorcade.KeyZ:      {ebiten.KeyZ},
			vectorcade.KeyX:      {ebiten.KeyX},
			vectorcade.KeyC:      {ebiten.KeyC},
		},
		Buttons: map[vectorcade.Key][]ebiten.StandardGamepadButton{
			vectorcade.KeyLeft:   {ebiten.StandardGamepadButtonLeftLeft},
			vectorcade.KeyRight:  {ebiten.StandardGamepadButtonLeftRight},
			vectorcade.KeyUp:     {ebiten.StandardGamepadButtonLeftTop},
			vectorcade.KeyDown:   {ebiten.StandardGamepadButtonLeftBottom},
			vectorcade.KeySpace:  {ebiten.StandardGamepadButtonRightBottom},
			vectorcade.KeyEnter:  {ebiten.StandardGamepadButtonCenterRight},
			vectorcade.KeyEscape: {ebiten.StandardGamepadButtonCenterLeft},
			vectorcade.KeyZ:      {ebiten.StandardGamepadButtonRightLeft},
			vectorcade.KeyX:      {ebiten.StandardGamepadButtonRightRight},
			vectorcade.KeyC:      {ebiten.StandardGamepadButtonRightTop},
		},
	}
}

// Input samples a Backend once per tick. Call Update at the start of every
// ebiten Update, before the game reads input.
type Input struct {
	backend  Backend
	keyMap   KeyMap
	DeadZone float32

	prev, cur [vectorcade.KeyCount]bool
	axes      [vectorcade.AxisCount]float32
	pointer   vectorcade.Pointer
	keyBuf    []ebiten.Key
}

var _ vectorcade.InputState = (*Input)(nil)

// New returns an Input reading ebiten devices with DefaultKeyMap.
func New() *Input {
	return NewWithBackend(NewEbitenBackend(), DefaultKeyMap())
}

// NewWithBackend returns an Input reading b through keyMap.
func NewWithBackend(b Backend, keyMap KeyMap) *Input {
	return &Input{backend: b, keyMap: keyMap, DeadZone: DefaultDeadZone}
}

// Update samples the backend. Edges are computed against the previous
// Update.
func (in *Input) Update() {
	in.prev = in.cur
	in.cur = [vectorcade.KeyCount]bool{}

	in.keyBuf = in.backend.AppendPressedKeys(in.keyBuf[:0])
	for k, phys := range in.keyMap.Keys {
		if k >= vectorcade.KeyCount {
			continue
		}
		for _, p := range phys {
			if slices.Contains(in.keyBuf, p) {
				in.cur[k] = true
				break
			}
		}
	}
	for k, buttons := range in.keyMap.Buttons {
		if k >= vectorcade.KeyCount {
			continue
		}
		for _, b := range buttons {
			if in.backend.GamepadButton(b) >= buttonThreshold {
				in.cur[k] = true
				break
			}
		}
	}

	in.axes[vectorcade.AxisMoveX] = in.stickOrKeys(ebiten.StandardGamepadAxisLeftStickHorizontal, false,
		vectorcade.KeyLeft, vectorcade.KeyRight)
	// Ebiten's vertical stick grows downward; game axes grow upward.
	in.axes[vectorcade.AxisMoveY] = in.stickOrKeys(ebiten.StandardGamepadAxisLeftStickVertical, true,
		vectorcade.KeyDown, vectorcade.KeyUp)
	in.axes[vectorcade.AxisAimX] = in.deadZone(in.backend.GamepadAxis(ebiten.StandardGamepadAxisRightStickHorizontal))
	in.axes[vectorcade.AxisAimY] = -in.deadZone(in.backend.GamepadAxis(ebiten.StandardGamepadAxisRightStickVertical))

	thrust := float32(in.backend.GamepadButton(ebiten.StandardGamepadButtonFrontBottomRight))
	if in.cur[vectorcade.KeyUp] || in.cur[vectorcade.KeyW] {
		thrust = 1
	}
	in.axes[vectorcade.AxisThrust] = vectorcade.Clamp(thrust, 0, 1)

	x, y := in.backend.CursorPosition()
	in.pointer = vectorcade.Pointer{XPx: float32(x), YPx: float32(y), IsDown: in.backend.MousePressed()}
}

func (in *Input) stickOrKeys(axis ebiten.StandardGamepadAxis, invert bool, neg, pos vectorcade.Key) float32 {
	v := in.deadZone(in.backend.GamepadAxis(axis))
	if invert {
		v = -v
	}
	if v != 0 {
		return v
	}
	if in.cur[neg] {
		v--
	}
	if in.cur[pos] {
		v++
	}
	return v
}

func (in *Input) deadZone(v float64) float32 {
	f := vectorcade.Clamp(float32(v), -1, 1)
	if f > -in.DeadZone && f < in.DeadZone {
		return 0
	}
	return f
}

func (in *Input) Key(k vectorcade.Key) vectorcade.Button {
	if k >= vectorcade.KeyCount {
		return vectorcade.ButtonUp
	}
	return vectorcade.Button{
		IsDown:   in.cur[k],
		WentDown: in.cur[k] && !in.prev[k],
		WentUp:   in.prev[k] && !in.cur[k],
	}
}

func (in *Input) Axis(a vectorcade.Axis) float32 {
	if a >= vectorcade.AxisCount {
		return 0
	}
	return in.axes[a]
}

func (in *Input) Pointer() (vectorcade.Pointer, bool) {
	return in.pointer, true
}
