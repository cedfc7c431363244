package flame

// Attr is a single key/value annotation attached to a frame. Attributes are
// kept as an ordered list rather than a map so that serialization and
// rendering see them in a stable order.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Frame represents one named call site in a stack trace.
//
// Frames are value types. Two frames are considered the same call site for
// merge purposes iff their Names are equal; Meta carries optional display
// annotations (source file, library, ...) and is not part of identity.
type Frame struct {
	Name string `json:"name"`
	Meta []Attr `json:"meta,omitempty"`
}

// NewFrame creates a frame with the given name and optional attributes.
// Attributes are stored in the order given.
func NewFrame(name string, attrs ...Attr) Frame {
	return Frame{Name: name, Meta: attrs}
}

// Stack is a single weighted sample: an ordered frame path from the outermost
// caller (root, index 0) to the innermost callee (leaf), plus a weight.
// The weight is an arbitrary non-negative metric - sample count, nanoseconds,
// allocated bytes - whose unit is opaque to the tree.
type Stack struct {
	Frames []Frame `json:"frames"`
	Weight float64 `json:"weight"`
}

// NewStack builds a stack from plain frame names, root first.
// It is a convenience for tests and simple producers; callers that carry
// frame metadata construct Stack values directly.
func NewStack(weight float64, names ...string) Stack {
	frames := make([]Frame, len(names))
	for i, name := range names {
		frames[i] = Frame{Name: name}
	}
	return Stack{Frames: frames, Weight: weight}
}

// Path returns the frame names of the stack, root first.
func (s Stack) Path() []string {
	names := make([]string, len(s.Frames))
	for i, f := range s.Frames {
		names[i] = f.Name
	}
	return names
}
