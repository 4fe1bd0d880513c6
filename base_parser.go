package rematch

import "fmt"

const eof = -1

// baseParser keeps the state necessary to build the pattern compiler
// on top of a few cursor primitives: peeking, consuming and
// backtracking over a rune slice.
type baseParser struct {
	cursor int
	input  []rune
}

// Cursor returns the rune offset the parser is currently at
func (p baseParser) Cursor() int {
	return p.cursor
}

// Peek returns the rune under the input cursor, or eof if the entire
// input has been consumed
func (p *baseParser) Peek() rune {
	if p.cursor >= len(p.input) {
		return eof
	}
	return p.input[p.cursor]
}

// Any returns the rune under the cursor and advances the cursor.  It
// errors out if the entire input has been consumed.
func (p *baseParser) Any() (rune, error) {
	c := p.Peek()
	if c == eof {
		return 0, ParsingError{
			Message: "unexpected end of pattern",
			Range:   NewRange(p.cursor, p.cursor),
		}
	}
	p.cursor++
	return c, nil
}

// ExpectRune consumes and returns v if it's the rune under the
// cursor, or errors otherwise
func (p *baseParser) ExpectRune(v rune) (rune, error) {
	start := p.Cursor()
	c := p.Peek()
	if c == v {
		return p.Any()
	}
	got := "end of pattern"
	if c != eof {
		got = fmt.Sprintf("`%c`", c)
	}
	return 0, ParsingError{
		Message: fmt.Sprintf("expected `%c` but got %s", v, got),
		Range:   NewRange(start, p.Cursor()),
	}
}
