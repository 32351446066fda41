package inline

import "fmt"

// ErrorKind classifies why a recognizer rejected its input.
type ErrorKind int

const (
	// NoMatch means the first required token of the construct was absent,
	// or a delimited construct had an empty interior.
	NoMatch ErrorKind = iota
	// Unterminated means an opening delimiter was consumed but its closing
	// counterpart was not found before a newline or end of input.
	Unterminated
)

func (k ErrorKind) String() string {
	if k == Unterminated {
		return "unterminated"
	}
	return "no match"
}

// Error represents a failed match.
//
// A failed match is not fatal by itself; callers use it to select the next
// alternative. Input is the unconsumed input at the point of failure.
type Error struct {
	Kind     ErrorKind
	Expected string
	Input    string
}

// Errorf creates a new Error for the given input.
func Errorf(kind ErrorKind, input, format string, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Expected: fmt.Sprintf(format, args...),
		Input:    input,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Expected)
}
