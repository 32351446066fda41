package mdast

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position of a parse failure within the input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position the error occurred at.
	Position() Position
}

// ParseError is returned by Parse when no block alternative matches the
// remaining input. Remainder is the unparsed rest of the document; Pos
// locates its first byte.
type ParseError struct {
	Pos       Position
	Remainder string
}

func (p *ParseError) Message() string {
	if p.Remainder == "" {
		return "empty document"
	}
	head := p.Remainder
	if i := strings.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	return fmt.Sprintf("no block matches %q", head)
}

func (p *ParseError) Position() Position { return p.Pos }

func (p *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", p.Pos, p.Message())
}

// position locates rest, a suffix of input, as a Position.
func position(filename, input, rest string) Position {
	consumed := input[:len(input)-len(rest)]
	line := strings.LastIndexByte(consumed, '\n') + 1
	return Position{
		Filename: filename,
		Offset:   len(consumed),
		Line:     1 + strings.Count(consumed, "\n"),
		Column:   1 + utf8.RuneCountInString(consumed[line:]),
	}
}
