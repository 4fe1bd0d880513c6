package rematch

import (
	"fmt"
	"strings"
)

// Pattern is the interface implemented by every node of a compiled
// pattern tree.  The node set is closed: the matcher and the printer
// switch exhaustively over the concrete types below.  A tree is never
// mutated after Parse returns, so it can be shared freely between
// concurrent match calls.
type Pattern interface {
	// Range returns where the node was found within the pattern text
	Range() Range

	// Text is the source representation of a node, meant to display
	// just what was compiled, being useful for stringifying the
	// pattern again
	Text() string

	// String returns the string representation of a given node
	String() string
}

// RepeatUnbounded marks a RepeatNode with no upper bound
const RepeatUnbounded = -1

// Node Type: Literal

// LiteralNode matches exactly one occurrence of a character
type LiteralNode struct {
	rng   Range
	Value rune
}

func NewLiteralNode(v rune, r Range) *LiteralNode {
	return &LiteralNode{Value: v, rng: r}
}

func (n LiteralNode) Range() Range   { return n.rng }
func (n LiteralNode) Text() string   { return string(n.Value) }
func (n LiteralNode) String() string { return fmt.Sprintf("Literal(%c) @ %s", n.Value, n.Range()) }

// Node Type: Any

// AnyNode matches any single character
type AnyNode struct{ rng Range }

func NewAnyNode(r Range) *AnyNode {
	return &AnyNode{rng: r}
}

func (n AnyNode) Range() Range   { return n.rng }
func (n AnyNode) Text() string   { return "." }
func (n AnyNode) String() string { return fmt.Sprintf("Any @ %s", n.Range()) }

// Node Type: WordChar

// WordCharNode matches one alphanumeric character or underscore
type WordCharNode struct{ rng Range }

func NewWordCharNode(r Range) *WordCharNode {
	return &WordCharNode{rng: r}
}

func (n WordCharNode) Range() Range   { return n.rng }
func (n WordCharNode) Text() string   { return `\w` }
func (n WordCharNode) String() string { return fmt.Sprintf("WordChar @ %s", n.Range()) }

// Node Type: Class

// ClassNode matches one character present (or, if negated, absent) in
// Members
type ClassNode struct {
	rng     Range
	Members string
	Negated bool
}

func NewClassNode(members string, negated bool, r Range) *ClassNode {
	return &ClassNode{Members: members, Negated: negated, rng: r}
}

func (n ClassNode) Range() Range { return n.rng }

func (n ClassNode) Text() string {
	if n.Negated {
		return fmt.Sprintf("[^%s]", n.Members)
	}
	return fmt.Sprintf("[%s]", n.Members)
}

func (n ClassNode) String() string {
	return fmt.Sprintf("Class(%s) @ %s", n.operand(), n.Range())
}

func (n ClassNode) operand() string {
	if n.Negated {
		return "^" + n.Members
	}
	return n.Members
}

// Node Type: StartAnchor

// StartAnchorNode is the zero-width assertion tied to the start of
// the subject
type StartAnchorNode struct{ rng Range }

func NewStartAnchorNode(r Range) *StartAnchorNode {
	return &StartAnchorNode{rng: r}
}

func (n StartAnchorNode) Range() Range   { return n.rng }
func (n StartAnchorNode) Text() string   { return "^" }
func (n StartAnchorNode) String() string { return fmt.Sprintf("StartAnchor @ %s", n.Range()) }

// Node Type: EndAnchor

// EndAnchorNode is the zero-width assertion tied to the end of the
// subject
type EndAnchorNode struct{ rng Range }

func NewEndAnchorNode(r Range) *EndAnchorNode {
	return &EndAnchorNode{rng: r}
}

func (n EndAnchorNode) Range() Range   { return n.rng }
func (n EndAnchorNode) Text() string   { return "$" }
func (n EndAnchorNode) String() string { return fmt.Sprintf("EndAnchor @ %s", n.Range()) }

// Node Type: Sequence

// SequenceNode is the concatenation of its items; order is significant
type SequenceNode struct {
	rng   Range
	Items []Pattern
}

func NewSequenceNode(items []Pattern, r Range) *SequenceNode {
	return &SequenceNode{Items: items, rng: r}
}

func (n SequenceNode) Range() Range   { return n.rng }
func (n SequenceNode) Text() string   { return nodesText(n.Items, "") }
func (n SequenceNode) String() string { return nodesString("Sequence", n, n.Items) }

// Node Type: Choice

// ChoiceNode tries its items in order; the first one to match wins,
// even when a later one would match a longer stretch of the subject
type ChoiceNode struct {
	rng   Range
	Items []Pattern
}

func NewChoiceNode(items []Pattern, r Range) *ChoiceNode {
	return &ChoiceNode{Items: items, rng: r}
}

func (n ChoiceNode) Range() Range   { return n.rng }
func (n ChoiceNode) Text() string   { return nodesText(n.Items, "|") }
func (n ChoiceNode) String() string { return nodesString("Choice", n, n.Items) }

// Node Type: Repeat

// RepeatNode matches its expression between Min and Max times.  Max
// is RepeatUnbounded when the repetition has no upper bound.  The
// matcher is greedy: it takes as many repetitions as it can and never
// gives any back.
type RepeatNode struct {
	rng  Range
	Min  int
	Max  int
	Expr Pattern
}

func NewRepeatNode(min, max int, expr Pattern, r Range) *RepeatNode {
	return &RepeatNode{Min: min, Max: max, Expr: expr, rng: r}
}

func (n RepeatNode) Range() Range { return n.rng }

func (n RepeatNode) Text() string {
	switch {
	case n.Min == 0 && n.Max == RepeatUnbounded:
		return n.Expr.Text() + "*"
	case n.Min == 1 && n.Max == RepeatUnbounded:
		return n.Expr.Text() + "+"
	case n.Min == 0 && n.Max == 1:
		return n.Expr.Text() + "?"
	case n.Max == RepeatUnbounded:
		return fmt.Sprintf("%s{%d,}", n.Expr.Text(), n.Min)
	case n.Min == n.Max:
		return fmt.Sprintf("%s{%d}", n.Expr.Text(), n.Min)
	default:
		return fmt.Sprintf("%s{%d,%d}", n.Expr.Text(), n.Min, n.Max)
	}
}

func (n RepeatNode) String() string {
	return fmt.Sprintf("Repeat[%s](%s) @ %s", n.bounds(), n.Expr, n.Range())
}

func (n RepeatNode) bounds() string {
	if n.Max == RepeatUnbounded {
		return fmt.Sprintf("%d..", n.Min)
	}
	return fmt.Sprintf("%d..%d", n.Min, n.Max)
}

// Node Type: Group

// GroupNode is a parenthesized sub-pattern whose matched text becomes
// a numbered capture.  Index is assigned once, at compile time, by
// left-to-right order of the opening parenthesis (1-based).
type GroupNode struct {
	rng   Range
	Index int
	Expr  Pattern
}

func NewGroupNode(index int, expr Pattern, r Range) *GroupNode {
	return &GroupNode{Index: index, Expr: expr, rng: r}
}

func (n GroupNode) Range() Range { return n.rng }
func (n GroupNode) Text() string { return fmt.Sprintf("(%s)", n.Expr.Text()) }

func (n GroupNode) String() string {
	return fmt.Sprintf("Group[%d](%s) @ %s", n.Index, n.Expr, n.Range())
}

// Node Type: Backreference

// BackrefNode matches exactly the text previously captured by group
// Index, failing if that group hasn't matched yet in the current
// attempt
type BackrefNode struct {
	rng   Range
	Index int
}

func NewBackrefNode(index int, r Range) *BackrefNode {
	return &BackrefNode{Index: index, rng: r}
}

func (n BackrefNode) Range() Range   { return n.rng }
func (n BackrefNode) Text() string   { return fmt.Sprintf(`\%d`, n.Index) }
func (n BackrefNode) String() string { return fmt.Sprintf("Backreference(%d) @ %s", n.Index, n.Range()) }

// Equal reports whether two pattern trees are structurally equal.
// Source ranges are not compared, so trees compiled from different
// spots of a larger text still compare equal when their shape does.
func Equal(a, b Pattern) bool {
	switch a := a.(type) {
	case *LiteralNode:
		b, ok := b.(*LiteralNode)
		return ok && a.Value == b.Value
	case *AnyNode:
		_, ok := b.(*AnyNode)
		return ok
	case *WordCharNode:
		_, ok := b.(*WordCharNode)
		return ok
	case *ClassNode:
		b, ok := b.(*ClassNode)
		return ok && a.Members == b.Members && a.Negated == b.Negated
	case *StartAnchorNode:
		_, ok := b.(*StartAnchorNode)
		return ok
	case *EndAnchorNode:
		_, ok := b.(*EndAnchorNode)
		return ok
	case *SequenceNode:
		b, ok := b.(*SequenceNode)
		return ok && itemsEqual(a.Items, b.Items)
	case *ChoiceNode:
		b, ok := b.(*ChoiceNode)
		return ok && itemsEqual(a.Items, b.Items)
	case *RepeatNode:
		b, ok := b.(*RepeatNode)
		return ok && a.Min == b.Min && a.Max == b.Max && Equal(a.Expr, b.Expr)
	case *GroupNode:
		b, ok := b.(*GroupNode)
		return ok && a.Index == b.Index && Equal(a.Expr, b.Expr)
	case *BackrefNode:
		b, ok := b.(*BackrefNode)
		return ok && a.Index == b.Index
	}
	return false
}

func itemsEqual(a, b []Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// GroupCount returns how many capture groups the pattern declares
func GroupCount(p Pattern) int {
	switch n := p.(type) {
	case *SequenceNode:
		return groupsIn(n.Items)
	case *ChoiceNode:
		return groupsIn(n.Items)
	case *RepeatNode:
		return GroupCount(n.Expr)
	case *GroupNode:
		return 1 + GroupCount(n.Expr)
	}
	return 0
}

func groupsIn(items []Pattern) int {
	total := 0
	for _, item := range items {
		total += GroupCount(item)
	}
	return total
}

// Helpers

type asString interface{ String() string }

func nodesString[T asString](name string, n Pattern, items []T) string {
	var (
		s  strings.Builder
		ln = len(items) - 1
	)

	s.WriteString(name)
	s.WriteString("(")

	for i, child := range items {
		s.WriteString(child.String())

		if i < ln {
			s.WriteString(", ")
		}
	}

	s.WriteString(") @ ")
	s.WriteString(n.Range().String())

	return s.String()
}

type asText interface{ Text() string }

func nodesText[T asText](items []T, sep string) string {
	var (
		s  strings.Builder
		ln = len(items) - 1
	)
	for i, child := range items {
		s.WriteString(child.Text())

		if i < ln {
			s.WriteString(sep)
		}
	}
	return s.String()
}
