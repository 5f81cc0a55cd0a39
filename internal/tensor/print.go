package tensor

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Diagnostics printed instead of a tensor body.
const (
	nilTensorText       = "Tensor is NULL"
	malformedTensorText = "Tensor is not initialized properly"
)

// indent is the per-level indentation of nested brackets.
const indent = "    "

// String renders the tensor in nested bracket notation with 8 decimal places:
//
//	tensor([
//	    [1.00000000, 2.00000000],
//	    [3.00000000, 4.00000000]
//	])
func (t *Tensor) String() string {
	if t == nil {
		return nilTensorText
	}
	if len(t.shape) == 0 || t.data == nil || len(t.data) != t.shape.NumElements() {
		return malformedTensorText
	}

	var sb strings.Builder
	sb.WriteString("tensor(")
	offset := 0
	writeNested(&sb, t.data, t.shape, 1, &offset)
	sb.WriteString(")")
	return sb.String()
}

// writeNested renders one nesting level and advances offset past the
// elements it consumed.
func writeNested(sb *strings.Builder, data []float64, shape Shape, level int, offset *int) {
	if len(shape) == 1 {
		sb.WriteByte('[')
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(data[*offset], 'f', 8, 64))
			*offset++
		}
		sb.WriteByte(']')
		return
	}

	sb.WriteString("[\n")
	for i := 0; i < shape[0]; i++ {
		sb.WriteString(strings.Repeat(indent, level))
		writeNested(sb, data, shape[1:], level+1, offset)
		if i < shape[0]-1 {
			sb.WriteString(",\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(indent, level-1))
	sb.WriteByte(']')
}

// Fprint writes the rendering of t followed by a newline to w.
// It never panics on nil or released tensors.
func Fprint(w io.Writer, t *Tensor) error {
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// Print writes the rendering of t to standard output.
func Print(t *Tensor) {
	_ = Fprint(os.Stdout, t)
}
