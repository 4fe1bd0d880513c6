package rematch

import "fmt"

// Range delimits where a node (or an error) was found within the
// pattern text, in rune offsets.
type Range struct {
	Start int
	End   int
}

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

func (r Range) Len() int {
	return r.End - r.Start
}
