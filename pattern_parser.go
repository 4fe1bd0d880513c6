package rematch

import "fmt"

// PatternParser reads the pattern syntax and outputs a Pattern tree.
// The grammar, in the notation the nodes themselves print:
//
//	Expression <- Sequence ('|' Sequence)*
//	Sequence   <- Suffixed*
//	Suffixed   <- Atom ('*' / '+' / '?' / '{' Count '}')*
//	Atom       <- '(' Expression ')' / '[' Class ']' / Escape
//	            / '.' / '^' / '$' / Literal
//
// Capture groups are numbered as their opening parenthesis is seen,
// left to right, so the numbering never depends on how the matcher
// walks the tree.
type PatternParser struct {
	baseParser
	groupCount int
}

func NewPatternParser(pattern string) *PatternParser {
	return &PatternParser{baseParser: baseParser{input: []rune(pattern)}}
}

// Parse kicks off parsing the pattern text and generates an AST
// describing a pattern
func (p *PatternParser) Parse() (Pattern, error) {
	return p.parseExpression(false)
}

func (p *PatternParser) parseExpression(inGroup bool) (Pattern, error) {
	start := p.Cursor()
	var alternatives []Pattern
	for {
		seq, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		if seq != nil {
			alternatives = append(alternatives, seq)
		}

		c := p.Peek()
		if c == '|' {
			p.Any()
			continue
		}
		if c == ')' && !inGroup {
			return nil, ParsingError{
				Message: "unexpected `)`",
				Range:   NewRange(p.Cursor(), p.Cursor()+1),
			}
		}
		// either eof, or a `)` the enclosing group will consume
		break
	}

	switch len(alternatives) {
	case 0:
		if !inGroup {
			return nil, ParsingError{
				Message: "empty pattern",
				Range:   NewRange(start, p.Cursor()),
			}
		}
		return NewChoiceNode(nil, NewRange(start, p.Cursor())), nil
	case 1:
		return alternatives[0], nil
	default:
		return NewChoiceNode(alternatives, NewRange(start, p.Cursor())), nil
	}
}

// parseSequence accumulates suffixed atoms until an alternation bar,
// a group boundary, or the end of the pattern.  It returns nil for an
// empty run, letting the caller skip empty alternatives.
func (p *PatternParser) parseSequence() (Pattern, error) {
	start := p.Cursor()
	var items []Pattern
	for {
		c := p.Peek()
		if c == eof || c == '|' || c == ')' {
			break
		}
		item, err := p.parseSuffixed(len(items) == 0)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	switch len(items) {
	case 0:
		return nil, nil
	case 1:
		return items[0], nil
	default:
		return NewSequenceNode(items, NewRange(start, p.Cursor())), nil
	}
}

func (p *PatternParser) parseSuffixed(atStart bool) (Pattern, error) {
	start := p.Cursor()
	expr, err := p.parseAtom(atStart)
	if err != nil {
		return nil, err
	}
	for {
		switch p.Peek() {
		case '*':
			p.Any()
			expr = NewRepeatNode(0, RepeatUnbounded, expr, NewRange(start, p.Cursor()))
		case '+':
			p.Any()
			expr = NewRepeatNode(1, RepeatUnbounded, expr, NewRange(start, p.Cursor()))
		case '?':
			p.Any()
			expr = NewRepeatNode(0, 1, expr, NewRange(start, p.Cursor()))
		case '{':
			p.Any()
			expr, err = p.parseRepeatCount(expr, start)
			if err != nil {
				return nil, err
			}
		default:
			return expr, nil
		}
	}
}

func (p *PatternParser) parseAtom(atStart bool) (Pattern, error) {
	start := p.Cursor()
	c, err := p.Any()
	if err != nil {
		return nil, err
	}

	switch c {
	case '.':
		return NewAnyNode(NewRange(start, p.Cursor())), nil

	case '\\':
		return p.parseEscape(start)

	case '[':
		return p.parseClass(start)

	case '(':
		p.groupCount++
		index := p.groupCount
		expr, err := p.parseExpression(true)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectRune(')'); err != nil {
			return nil, ParsingError{
				Message: "unterminated group",
				Range:   NewRange(start, p.Cursor()),
			}
		}
		return NewGroupNode(index, expr, NewRange(start, p.Cursor())), nil

	case '^':
		// an anchor only as the first token of the current
		// sequence; an ordinary character anywhere else
		if atStart {
			return NewStartAnchorNode(NewRange(start, p.Cursor())), nil
		}
		return NewLiteralNode(c, NewRange(start, p.Cursor())), nil

	case '$':
		// an anchor only as the very last character of the pattern
		if p.Peek() == eof {
			return NewEndAnchorNode(NewRange(start, p.Cursor())), nil
		}
		return NewLiteralNode(c, NewRange(start, p.Cursor())), nil

	case '*', '+', '?', '{':
		return nil, ParsingError{
			Message: fmt.Sprintf("invalid quantifier `%c`", c),
			Range:   NewRange(start, p.Cursor()),
		}

	default:
		return NewLiteralNode(c, NewRange(start, p.Cursor())), nil
	}
}

func (p *PatternParser) parseEscape(start int) (Pattern, error) {
	c, err := p.Any()
	if err != nil {
		return nil, ParsingError{
			Message: "unterminated escape",
			Range:   NewRange(start, p.Cursor()),
		}
	}

	rng := NewRange(start, p.Cursor())
	switch {
	case c == 'w':
		return NewWordCharNode(rng), nil
	case c == 'd':
		return NewClassNode("0123456789", false, rng), nil
	case c == 's':
		return NewClassNode(" \t\n\r\f\v", false, rng), nil
	case c >= '1' && c <= '9':
		return NewBackrefNode(int(c-'0'), rng), nil
	default:
		// escape-as-literal fallback
		return NewLiteralNode(c, rng), nil
	}
}

func (p *PatternParser) parseClass(start int) (Pattern, error) {
	var (
		members []rune
		negated bool
	)
	for {
		c := p.Peek()
		if c == eof {
			return nil, ParsingError{
				Message: "unterminated character class",
				Range:   NewRange(start, p.Cursor()),
			}
		}
		p.Any()

		if c == ']' {
			return NewClassNode(string(members), negated, NewRange(start, p.Cursor())), nil
		}
		if c == '^' && !negated && len(members) == 0 {
			negated = true
			continue
		}
		members = append(members, c)
	}
}

// parseRepeatCount finishes a `{m}`, `{m,}` or `{m,n}` suffix whose
// opening brace has already been consumed
func (p *PatternParser) parseRepeatCount(expr Pattern, start int) (Pattern, error) {
	min, ok := p.parseNumber()
	if !ok {
		return nil, p.repeatCountError()
	}

	max := min
	if p.Peek() == ',' {
		p.Any()
		if p.Peek() == '}' {
			max = RepeatUnbounded
		} else if max, ok = p.parseNumber(); !ok {
			return nil, p.repeatCountError()
		}
	}

	// inverted bounds would compile into a repetition no input satisfies
	if max != RepeatUnbounded && max < min {
		return nil, p.repeatCountError()
	}

	if p.Peek() != '}' {
		return nil, p.repeatCountError()
	}
	p.Any()
	return NewRepeatNode(min, max, expr, NewRange(start, p.Cursor())), nil
}

func (p *PatternParser) parseNumber() (int, bool) {
	var (
		value  int
		digits int
	)
	for c := p.Peek(); c >= '0' && c <= '9'; c = p.Peek() {
		value = value*10 + int(c-'0')
		digits++
		p.Any()
	}
	return value, digits > 0
}

func (p *PatternParser) repeatCountError() error {
	msg := "malformed repeat count"
	if p.Peek() == eof {
		msg = "unterminated repeat count"
	}
	return ParsingError{
		Message: msg,
		Range:   NewRange(p.Cursor(), p.Cursor()),
	}
}
