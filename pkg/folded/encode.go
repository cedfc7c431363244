package folded

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/matzehuels/flamefold/pkg/flame"
)

// Encode writes the tree as folded-stacks text: one line per node with
// positive self-weight, in the tree's traversal order. Weights are written
// with the minimal number of digits, so integral weights print without a
// decimal point and decoding the output reproduces the tree's total weight
// exactly.
func Encode(w io.Writer, t *flame.Tree, opts ...Option) error {
	o := newOptions(opts)
	bw := bufio.NewWriter(w)

	for path, self := range t.All() {
		for i, f := range path {
			if i > 0 {
				if _, err := bw.WriteString(o.separator); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(f.Name); err != nil {
				return err
			}
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
		if _, err := bw.WriteString(strconv.FormatFloat(self, 'f', -1, 64)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Format renders the tree as folded-stacks text in memory.
func Format(t *flame.Tree, opts ...Option) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, t, opts...) // bytes.Buffer writes cannot fail
	return buf.Bytes()
}
