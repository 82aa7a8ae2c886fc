package ebiteninput

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/phanxgames/vectorcade"
)

type fakeBackend struct {
	keys    []ebiten.Key
	x, y    int
	mouse   bool
	axes    map[ebiten.StandardGamepadAxis]float64
	buttons map[ebiten.StandardGamepadButton]float64
}

func (f *fakeBackend) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.keys...)
}

func (f *fakeBackend) CursorPosition() (int, int) { return f.x, f.y }
func (f *fakeBackend) MousePressed() bool         { return f.mouse }

func (f *fakeBackend) GamepadAxis(a ebiten.StandardGamepadAxis) float64 {
	return f.axes[a]
}

func (f *fakeBackend) GamepadButton(b ebiten.StandardGamepadButton) float64 {
	return f.buttons[b]
}

func newFake() (*fakeBackend, *Input) {
	f := &fakeBackend{
		axes:    map[ebiten.StandardGamepadAxis]float64{},
		buttons: map[ebiten.StandardGamepadButton]float64{},
	}
	return f, NewWithBackend(f, DefaultKeyMap())
}

func TestKeyEdges(t *testing.T) {
	f, in := newFake()

	f.keys = []ebiten.Key{ebiten.KeySpace}
	in.Update()
	assert.Equal(t, vectorcade.Button{IsDown: true, WentDown: true}, in.Key(vectorcade.KeySpace))

	in.Update()
	assert.Equal(t, vectorcade.Button{IsDown: true}, in.Key(vectorcade.KeySpace))

	f.keys = nil
	in.Update()
	assert.Equal(t, vectorcade.Button{WentUp: true}, in.Key(vectorcade.KeySpace))

	in.Update()
	assert.Equal(t, vectorcade.ButtonUp, in.Key(vectorcade.KeySpace))
}

func TestAlternateBindings(t *testing.T) {
	f, in := newFake()
	f.keys = []ebiten.Key{ebiten.KeyA}
	in.Update()
	assert.True(t, in.Key(vectorcade.KeyLeft).IsDown)

	f.keys = nil
	f.buttons[ebiten.StandardGamepadButtonRightBottom] = 1
	in.Update()
	assert.True(t, in.Key(vectorcade.KeySpace).WentDown)
	assert.True(t, in.Key(vectorcade.KeyLeft).WentUp)
}

func TestMoveAxisFromKeys(t *testing.T) {
	f, in := newFake()
	f.keys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowUp}
	in.Update()
	assert.Equal(t, float32(1), in.Axis(vectorcade.AxisMoveX))
	assert.Equal(t, float32(1), in.Axis(vectorcade.AxisMoveY))
	assert.Equal(t, float32(1), in.Axis(vectorcade.AxisThrust))

	f.keys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowLeft}
	in.Update()
	assert.Equal(t, float32(0), in.Axis(vectorcade.AxisMoveX))
}

func TestStickOverridesKeys(t *testing.T) {
	f, in := newFake()
	f.keys = []ebiten.Key{ebiten.KeyArrowLeft}
	f.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = 0.5
	f.axes[ebiten.StandardGamepadAxisLeftStickVertical] = 0.75
	in.Update()
	assert.Equal(t, float32(0.5), in.Axis(vectorcade.AxisMoveX))
	assert.Equal(t, float32(-0.75), in.Axis(vectorcade.AxisMoveY))
}

func TestDeadZone(t *testing.T) {
	f, in := newFake()
	f.axes[ebiten.StandardGamepadAxisRightStickHorizontal] = 0.1
	f.axes[ebiten.StandardGamepadAxisRightStickVertical] = -2
	in.Update()
	assert.Equal(t, float32(0), in.Axis(vectorcade.AxisAimX))
	assert.Equal(t, float32(1), in.Axis(vectorcade.AxisAimY))
}

func TestThrustTrigger(t *testing.T) {
	f, in := newFake()
	f.buttons[ebiten.StandardGamepadButtonFrontBottomRight] = 0.25
	in.Update()
	assert.Equal(t, float32(0.25), in.Axis(vectorcade.AxisThrust))
}

func TestPointer(t *testing.T) {
	f, in := newFake()
	f.x, f.y, f.mouse = 120, 45, true
	in.Update()
	p, ok := in.Pointer()
	assert.True(t, ok)
	assert.Equal(t, vectorcade.Pointer{XPx: 120, YPx: 45, IsDown: true}, p)
}

func TestOutOfRangeQueries(t *testing.T) {
	_, in := newFake()
	in.Update()
	assert.Equal(t, vectorcade.ButtonUp, in.Key(vectorcade.KeyCount))
	assert.Equal(t, float32(0), in.Axis(vectorcade.AxisCount))
}
