package rematch

import "fmt"

// ParsingError is the error returned when the pattern compiler can't
// finish successfuly.  No partial tree is ever returned alongside it.
type ParsingError struct {
	Message string
	Range   Range
}

// Error returns the human readable representation of a parsing error
func (e ParsingError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Range)
}
