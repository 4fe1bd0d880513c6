package rematch

import "strings"

// FormatFunc decorates a fragment of printer output tagged with a
// token T.  The identity function yields plain text; themes map
// tokens to ANSI colors.
type FormatFunc[T any] func(input string, token T) string

type treePrinter[T any] struct {
	padStr []string
	output strings.Builder
	format FormatFunc[T]
}

func newTreePrinter[T any](format FormatFunc[T]) *treePrinter[T] {
	return &treePrinter[T]{format: format}
}

func (tp *treePrinter[T]) indent(s string) {
	tp.padStr = append(tp.padStr, s)
}

func (tp *treePrinter[T]) unindent() {
	tp.padStr = tp.padStr[:len(tp.padStr)-1]
}

func (tp *treePrinter[T]) padding() {
	for _, item := range tp.padStr {
		tp.write(item)
	}
}

func (tp *treePrinter[T]) write(s string) {
	tp.output.WriteString(s)
}

func (tp *treePrinter[T]) pwrite(s string) {
	tp.padding()
	tp.write(s)
}

func (tp *treePrinter[T]) writef(s string, token T) {
	tp.write(tp.format(s, token))
}
