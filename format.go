package fixedarray

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the textual dump of a to w:
//
//	Length: [N]
//	elem0
//	...
//	elemN-1
//
// Each element is rendered with fmt's %v and followed by exactly one newline.
func (a *Array[T, A]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "Length: [%d]\n", a.Len())
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, v := range a.view() {
		n, err = fmt.Fprintf(w, "%v\n", v)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the same text WriteTo produces, so fmt.Print(a) and
// a.String() agree.
func (a *Array[T, A]) String() string {
	var sb strings.Builder
	_, _ = a.WriteTo(&sb)
	return sb.String()
}

var _ Container[int] = (*Array[int, [1]int])(nil)
