package vectorcade

import (
	"encoding/json"
	"fmt"
)

// scriptPointer is the JSON form of a pointer sample.
type scriptPointer struct {
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	Down bool    `json:"down,omitempty"`
}

// scriptFrame is one entry of an input script. Repeat holds the same state
// for several ticks.
type scriptFrame struct {
	Hold    []string           `json:"hold,omitempty"`
	Axes    map[string]float32 `json:"axes,omitempty"`
	Pointer *scriptPointer     `json:"pointer,omitempty"`
	Repeat  int                `json:"repeat,omitempty"`
}

// inputScriptJSON is the top-level JSON structure for an input script.
type inputScriptJSON struct {
	Frames []scriptFrame `json:"frames"`
}

// inputFrame is the resolved input state for one tick.
type inputFrame struct {
	held       [KeyCount]bool
	axes       [AxisCount]float32
	pointer    Pointer
	hasPointer bool
}

// InputScript is a parsed, tick-by-tick input recording.
type InputScript struct {
	frames []inputFrame
}

// LoadInputScript parses a JSON input script:
//
//	{"frames": [
//	  {"hold": ["left", "space"], "axes": {"thrust": 1}, "repeat": 30},
//	  {"pointer": {"x": 400, "y": 300, "down": true}}
//	]}
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var raw inputScriptJSON
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(raw.Frames) == 0 {
		return nil, fmt.Errorf("parse input script: no frames")
	}

	s := &InputScript{}
	for i, rf := range raw.Frames {
		var f inputFrame
		for _, name := range rf.Hold {
			k, ok := KeyByName(name)
			if !ok {
				return nil, fmt.Errorf("parse input script: frame %d: unknown key %q", i, name)
			}
			f.held[k] = true
		}
		for name, v := range rf.Axes {
			a, ok := AxisByName(name)
			if !ok {
				return nil, fmt.Errorf("parse input script: frame %d: unknown axis %q", i, name)
			}
			f.axes[a] = Clamp(v, -1, 1)
		}
		if rf.Pointer != nil {
			f.pointer = Pointer{XPx: rf.Pointer.X, YPx: rf.Pointer.Y, IsDown: rf.Pointer.Down}
			f.hasPointer = true
		}
		n := max(rf.Repeat, 1)
		for j := 0; j < n; j++ {
			s.frames = append(s.frames, f)
		}
	}
	return s, nil
}

// Len returns the number of ticks the script covers.
func (s *InputScript) Len() int {
	return len(s.frames)
}

// ScriptedInput plays an InputScript back as an InputState. Press and release
// edges are derived from consecutive ticks. Once the script is exhausted all
// keys read as released.
type ScriptedInput struct {
	script *InputScript
	tick   int
}

var _ InputState = (*ScriptedInput)(nil)

// NewScriptedInput starts playback at the first tick of script.
func NewScriptedInput(script *InputScript) *ScriptedInput {
	return &ScriptedInput{script: script}
}

// Advance moves playback to the next tick. It keeps stepping one tick past
// the end so the final release edge is reported exactly once.
func (in *ScriptedInput) Advance() {
	if in.tick <= in.script.Len() {
		in.tick++
	}
}

// Tick returns the current tick index.
func (in *ScriptedInput) Tick() int {
	return in.tick
}

// Done reports whether playback has moved past the last scripted tick.
func (in *ScriptedInput) Done() bool {
	return in.tick >= in.script.Len()
}

func (in *ScriptedInput) frame(i int) inputFrame {
	if i < 0 || i >= in.script.Len() {
		return inputFrame{}
	}
	return in.script.frames[i]
}

func (in *ScriptedInput) Key(k Key) Button {
	if k >= KeyCount {
		return ButtonUp
	}
	return buttonFromEdges(in.frame(in.tick-1).held[k], in.frame(in.tick).held[k])
}

func (in *ScriptedInput) Axis(a Axis) float32 {
	if a >= AxisCount {
		return 0
	}
	return in.frame(in.tick).axes[a]
}

func (in *ScriptedInput) Pointer() (Pointer, bool) {
	f := in.frame(in.tick)
	return f.pointer, f.hasPointer
}
