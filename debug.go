package vectorcade

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedTransform reports a PopTransform without a matching push,
	// or pushes left open at the end of the list.
	ErrUnbalancedTransform = errors.New("unbalanced transform stack")
	// ErrUnbalancedLayer reports an EndLayer without a matching BeginLayer,
	// or layers left open at the end of the list.
	ErrUnbalancedLayer = errors.New("unbalanced layer")
)

// DisplayListError locates a structural problem in a display list. Index is
// len(list) when the problem is an unclosed push or layer.
type DisplayListError struct {
	Index int
	Kind  CmdKind
	Err   error
}

func (e *DisplayListError) Error() string {
	return fmt.Sprintf("display list: command %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *DisplayListError) Unwrap() error {
	return e.Err
}

// ValidateDisplayList checks that transforms and layers balance.
func ValidateDisplayList(cmds []DrawCmd) error {
	var transforms, layers int
	for i, c := range cmds {
		switch c.Kind() {
		case CmdPushTransform:
			transforms++
		case CmdPopTransform:
			if transforms == 0 {
				return &DisplayListError{Index: i, Kind: CmdPopTransform, Err: ErrUnbalancedTransform}
			}
			transforms--
		case CmdBeginLayer:
			layers++
		case CmdEndLayer:
			if layers == 0 {
				return &DisplayListError{Index: i, Kind: CmdEndLayer, Err: ErrUnbalancedLayer}
			}
			layers--
		}
	}
	if transforms > 0 {
		return &DisplayListError{Index: len(cmds), Kind: CmdPushTransform, Err: ErrUnbalancedTransform}
	}
	if layers > 0 {
		return &DisplayListError{Index: len(cmds), Kind: CmdBeginLayer, Err: ErrUnbalancedLayer}
	}
	return nil
}

// DisplayListStats summarizes a display list for debug output.
type DisplayListStats struct {
	Commands int
	Lines    int
	// Segments counts every stroked segment, including those inside
	// polylines.
	Segments          int
	Polylines         int
	Texts             int
	MaxTransformDepth int
	Layers            int
	// StrokeRuns counts contiguous line and polyline commands sharing a
	// stroke. This is how many draw calls a batching backend would issue.
	StrokeRuns int
}

// StatsOf counts the commands in cmds.
func StatsOf(cmds []DrawCmd) DisplayListStats {
	st := DisplayListStats{Commands: len(cmds)}
	depth := 0
	var prev Stroke
	inRun := false
	for _, c := range cmds {
		stroked := false
		var s Stroke
		switch v := c.(type) {
		case Line:
			st.Lines++
			st.Segments++
			stroked, s = true, v.Stroke
		case Polyline:
			st.Polylines++
			st.Segments += polylineSegments(v)
			stroked, s = true, v.Stroke
		case Text:
			st.Texts++
		case PushTransform:
			depth++
			st.MaxTransformDepth = max(st.MaxTransformDepth, depth)
		case PopTransform:
			depth = max(depth-1, 0)
		case BeginLayer:
			st.Layers++
		}
		if stroked {
			if !inRun || s != prev {
				st.StrokeRuns++
			}
			prev, inRun = s, true
		} else {
			inRun = false
		}
	}
	return st
}

func polylineSegments(p Polyline) int {
	n := len(p.Points)
	switch {
	case n < 2:
		return 0
	case p.Closed && n > 2:
		return n
	default:
		return n - 1
	}
}
