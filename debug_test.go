package vectorcade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDisplayListBalanced(t *testing.T) {
	cmds := []DrawCmd{
		Clear{Color: ColorBlack},
		BeginLayer{Name: "world"},
		PushTransform{M: Translate2(Vec2{1, 0})},
		PushTransform{M: Rot2(1)},
		NewLine(Vec2{}, Vec2{1, 0}, DefaultStroke()),
		PopTransform{},
		PopTransform{},
		EndLayer{},
	}
	assert.NoError(t, ValidateDisplayList(cmds))
	assert.NoError(t, ValidateDisplayList(nil))
}

func TestValidateDisplayListErrors(t *testing.T) {
	tests := []struct {
		name  string
		cmds  []DrawCmd
		index int
		want  error
	}{
		{"stray pop", []DrawCmd{Clear{}, PopTransform{}}, 1, ErrUnbalancedTransform},
		{"open push", []DrawCmd{PushTransform{}, Clear{}}, 2, ErrUnbalancedTransform},
		{"stray end", []DrawCmd{EndLayer{}}, 0, ErrUnbalancedLayer},
		{"open layer", []DrawCmd{BeginLayer{}}, 1, ErrUnbalancedLayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDisplayList(tt.cmds)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))

			var dle *DisplayListError
			require.True(t, errors.As(err, &dle))
			assert.Equal(t, tt.index, dle.Index)
			assert.Contains(t, err.Error(), "display list: command")
		})
	}
}

func TestStatsOf(t *testing.T) {
	green := NewStroke(ColorGreen, 1)
	cmds := []DrawCmd{
		Clear{},
		NewLine(Vec2{}, Vec2{1, 0}, DefaultStroke()),
		NewLine(Vec2{}, Vec2{0, 1}, DefaultStroke()),
		RectWire(Vec2{}, Vec2{1, 1}, DefaultStroke()),
		Polyline{Points: []Vec2{{0, 0}, {1, 1}, {2, 0}}, Stroke: green},
		PushTransform{},
		PushTransform{},
		PopTransform{},
		Text{Text: "SCORE"},
		NewLine(Vec2{}, Vec2{1, 0}, green),
		PopTransform{},
		BeginLayer{},
		EndLayer{},
	}
	st := StatsOf(cmds)
	assert.Equal(t, DisplayListStats{
		Commands:          13,
		Lines:             3,
		Segments:          3 + 4 + 2,
		Polylines:         2,
		Texts:             1,
		MaxTransformDepth: 2,
		Layers:            1,
		StrokeRuns:        3,
	}, st)
}
