package rematch

import (
	"strings"
	"unicode"
)

// Matcher evaluates a compiled pattern against subject strings using
// backtracking search.  The pattern tree is read-only, so a single
// Matcher can be shared between goroutines; each call allocates its
// own capture state.
type Matcher struct {
	pattern Pattern
	groups  int
	cfg     *Config
}

func NewMatcher(pattern Pattern, cfg *Config) *Matcher {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Matcher{
		pattern: pattern,
		groups:  GroupCount(pattern),
		cfg:     cfg,
	}
}

// Pattern returns the tree the matcher evaluates
func (m *Matcher) Pattern() Pattern {
	return m.pattern
}

// MatchString reports whether the pattern matches input.  With
// `match.split_lines` set (the default), each line of the input is
// tried as its own subject, mirroring grep.
func (m *Matcher) MatchString(input string) bool {
	if m.cfg.GetBool("match.split_lines") {
		for _, line := range strings.Split(input, "\n") {
			if m.MatchLine(line) {
				return true
			}
		}
		return false
	}
	return m.MatchLine(input)
}

// MatchLine reports whether the pattern matches a single subject line
func (m *Matcher) MatchLine(line string) bool {
	_, ok := m.match(line)
	return ok
}

// FindLine matches a single subject line and additionally returns the
// captured substrings, ordered by group number (1-based groups land
// at index 0 onwards; groups that didn't participate are empty)
func (m *Matcher) FindLine(line string) ([]string, bool) {
	return m.match(line)
}

// match attempts the whole pattern at every offset of the subject,
// left to right, stopping at the first offset that yields a full
// match.  A pattern anchored at the start only gets offset 0.
func (m *Matcher) match(line string) ([]string, bool) {
	var (
		input     = []rune(line)
		fullLines = m.cfg.GetBool("match.full_lines")
		anchored  = fullLines || isStartAnchored(m.pattern)
	)
	for offset := 0; offset <= len(input); offset++ {
		state := &matchState{input: input, caps: newCaptures(m.groups)}
		end, ok := state.consume(m.pattern, offset)
		if ok && (!fullLines || end == len(input)) {
			return state.caps.strings(), true
		}
		if anchored {
			break
		}
	}
	return nil, false
}

func isStartAnchored(p Pattern) bool {
	switch n := p.(type) {
	case *StartAnchorNode:
		return true
	case *SequenceNode:
		return len(n.Items) > 0 && isStartAnchored(n.Items[0])
	}
	return false
}

// matchState carries what every node evaluation in one attempt
// shares: the subject and the capture-group state
type matchState struct {
	input []rune
	caps  *captures
}

// consume attempts to match node starting exactly at pos.  On success
// it returns the cursor advanced past the text the node consumed (pos
// itself for zero-width nodes); on failure it reports false with the
// capture state restored to what it was at entry, so sibling attempts
// never observe leaked captures.
func (s *matchState) consume(node Pattern, pos int) (int, bool) {
	switch n := node.(type) {
	case *LiteralNode:
		if pos < len(s.input) && s.input[pos] == n.Value {
			return pos + 1, true
		}
		return pos, false

	case *AnyNode:
		if pos < len(s.input) {
			return pos + 1, true
		}
		return pos, false

	case *WordCharNode:
		if pos < len(s.input) && isWordChar(s.input[pos]) {
			return pos + 1, true
		}
		return pos, false

	case *ClassNode:
		if pos < len(s.input) && strings.ContainsRune(n.Members, s.input[pos]) != n.Negated {
			return pos + 1, true
		}
		return pos, false

	case *StartAnchorNode:
		return pos, pos == 0

	case *EndAnchorNode:
		return pos, pos == len(s.input)

	case *SequenceNode:
		saved := s.caps.checkpoint()
		cur := pos
		for _, item := range n.Items {
			next, ok := s.consume(item, cur)
			if !ok {
				s.caps.restore(saved)
				return pos, false
			}
			cur = next
		}
		return cur, true

	case *ChoiceNode:
		saved := s.caps.checkpoint()
		for _, item := range n.Items {
			if next, ok := s.consume(item, pos); ok {
				// first branch to match commits its captures
				return next, true
			}
			s.caps.restore(saved)
		}
		return pos, false

	case *RepeatNode:
		saved := s.caps.checkpoint()
		cur, count := pos, 0
		for n.Max == RepeatUnbounded || count < n.Max {
			next, ok := s.consume(n.Expr, cur)
			if !ok {
				break
			}
			if next == cur {
				// a body that consumes nothing can't make progress
				break
			}
			cur = next
			count++
		}
		if count < n.Min {
			s.caps.restore(saved)
			return pos, false
		}
		return cur, true

	case *GroupNode:
		saved := s.caps.checkpoint()
		end, ok := s.consume(n.Expr, pos)
		if !ok {
			s.caps.restore(saved)
			return pos, false
		}
		s.caps.store(n.Index, string(s.input[pos:end]))
		return end, true

	case *BackrefNode:
		text, ok := s.caps.lookup(n.Index)
		if !ok {
			// unset or out-of-range group: a match failure, not an error
			return pos, false
		}
		ref := []rune(text)
		if pos+len(ref) > len(s.input) {
			return pos, false
		}
		for i, r := range ref {
			if s.input[pos+i] != r {
				return pos, false
			}
		}
		return pos + len(ref), true
	}
	return pos, false
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
