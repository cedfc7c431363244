package folded

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/flamefold/pkg/flame"
)

// DefaultSeparator joins frame names within a line.
const DefaultSeparator = ";"

// Option configures the codec.
type Option func(*options)

type options struct {
	separator string
	reversed  bool
}

// WithSeparator sets the frame separator (default ";").
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// WithReversed reverses each stack's frame order before merging, so the
// tree aggregates by innermost callee instead of outermost caller. This is
// the usual way to answer "what are the hottest leaf functions, and who
// calls them".
func WithReversed() Option {
	return func(o *options) { o.reversed = true }
}

func newOptions(opts []Option) options {
	o := options{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LineError reports a malformed input line.
type LineError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error  // underlying cause
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LineError) Unwrap() error { return e.Err }

// Decode reads folded-stacks text and returns the merged tree.
//
// All lines are parsed before any insertion happens, so a *LineError leaves
// no partially merged result: on error the returned tree is nil.
func Decode(r io.Reader, opts ...Option) (*flame.Tree, error) {
	o := newOptions(opts)

	var stacks []flame.Stack
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := parseLine(line, o.separator)
		if err != nil {
			return nil, &LineError{Line: lineno, Text: line, Err: err}
		}
		if o.reversed {
			slices.Reverse(s.Frames)
		}
		stacks = append(stacks, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	t := flame.NewTree()
	t.InsertMany(stacks)
	return t, nil
}

// DecodeString decodes folded-stacks text from a string.
func DecodeString(s string, opts ...Option) (*flame.Tree, error) {
	return Decode(strings.NewReader(s), opts...)
}

// parseLine splits "a;b;c 10" into a stack. The weight is everything after
// the last space; the path is everything before it.
func parseLine(line, sep string) (flame.Stack, error) {
	cut := strings.LastIndexByte(line, ' ')
	if cut < 0 {
		return flame.Stack{}, fmt.Errorf("missing weight")
	}

	pathPart := strings.TrimSpace(line[:cut])
	weightPart := line[cut+1:]

	weight, err := strconv.ParseFloat(weightPart, 64)
	if err != nil {
		return flame.Stack{}, fmt.Errorf("invalid weight %q: %w", weightPart, err)
	}
	// ParseFloat accepts "NaN" and "Inf" literals; a non-finite weight would
	// corrupt every total and scale computed downstream.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return flame.Stack{}, fmt.Errorf("non-finite weight %q", weightPart)
	}

	names := strings.Split(pathPart, sep)
	frames := make([]flame.Frame, len(names))
	for i, name := range names {
		frames[i] = flame.Frame{Name: name}
	}
	return flame.Stack{Frames: frames, Weight: weight}, nil
}
