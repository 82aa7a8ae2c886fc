package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Backend is the device surface Input samples once per tick.
type Backend interface {
	// AppendPressedKeys appends every keyboard key currently held.
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	CursorPosition() (x, y int)
	MousePressed() bool
	// GamepadAxis returns a standard-layout axis of the active gamepad, or 0
	// when none is connected.
	GamepadAxis(axis ebiten.StandardGamepadAxis) float64
	// GamepadButton returns a standard-layout button value in [0, 1].
	GamepadButton(button ebiten.StandardGamepadButton) float64
}

// EbitenBackend reads devices through ebiten. It must be used from the
// ebiten Update goroutine.
type EbitenBackend struct {
	pad    ebiten.GamepadID
	hasPad bool
	ids    []ebiten.GamepadID
}

var _ Backend = (*EbitenBackend)(nil)

// NewEbitenBackend creates a backend for the running ebiten game.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{}
}

func (b *EbitenBackend) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	b.refreshGamepad()
	return inpututil.AppendPressedKeys(keys)
}

func (b *EbitenBackend) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (b *EbitenBackend) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (b *EbitenBackend) GamepadAxis(axis ebiten.StandardGamepadAxis) float64 {
	if !b.hasPad {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(b.pad, axis)
}

func (b *EbitenBackend) GamepadButton(button ebiten.StandardGamepadButton) float64 {
	if !b.hasPad {
		return 0
	}
	return ebiten.StandardGamepadButtonValue(b.pad, button)
}

// refreshGamepad keeps the first connected standard-layout gamepad active and
// switches to a newly connected one when the current pad goes away.
func (b *EbitenBackend) refreshGamepad() {
	if b.hasPad && inpututil.IsGamepadJustDisconnected(b.pad) {
		b.hasPad = false
	}
	if b.hasPad {
		return
	}
	b.ids = ebiten.AppendGamepadIDs(b.ids[:0])
	for _, id := range b.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			b.pad, b.hasPad = id, true
			return
		}
	}
}
