package viz

import "errors"

// ErrNilGraph indicates a renderer was constructed without a graph.
var ErrNilGraph = errors.New("viz: nil graph")

// Renderer is the capability every visualization implements. No shared base
// state: console, SVG, or any host-provided canvas satisfy it independently.
type Renderer interface {
	// Draw performs the initial rendering of the current graph state.
	Draw() error

	// Refresh re-renders after positional or structural changes. Calling it
	// repeatedly on an unchanged graph yields identical output.
	Refresh() error
}

// Data-bag keys renderers read from a node's user data. Values may be stored
// as float64 or any integer type.
const (
	// KeyX is the horizontal position of a node's center.
	KeyX = "x"
	// KeyY is the vertical position of a node's center.
	KeyY = "y"
	// KeyRadius is the node's visual radius, used to trim edge endpoints.
	KeyRadius = "radius"
)

// bagFloat extracts a numeric bag value, tolerating the integer types hosts
// tend to store literals as.
func bagFloat(bag map[string]any, key string, fallback float64) float64 {
	switch v := bag[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return fallback
	}
}
