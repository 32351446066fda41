package mdast

import (
	"io"

	"github.com/mdast-go/mdast/inline"
)

// ParseString parses a complete document into its ordered block sequence.
//
// The input must be UTF-8 text with "\n" line endings; every line-oriented
// construct requires its terminating newline, including the last line.
// Empty input is a failure, not an empty document. On failure the returned
// error is a *ParseError locating the first byte no block alternative could
// consume; no partial document is returned.
func ParseString(filename, input string) (Document, error) {
	if input == "" {
		return nil, &ParseError{Pos: Position{Filename: filename, Line: 1, Column: 1}}
	}
	var doc Document
	rest := input
	for rest != "" {
		block, r, err := matchBlock(rest)
		if err != nil {
			return nil, &ParseError{
				Pos:       position(filename, input, rest),
				Remainder: rest,
			}
		}
		doc = append(doc, block)
		rest = r
	}
	return doc, nil
}

// ParseBytes parses a complete document from a byte slice.
func ParseBytes(filename string, data []byte) (Document, error) {
	return ParseString(filename, string(data))
}

// Parse parses a complete document from r.
func Parse(filename string, r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(filename, string(data))
}

func matchBlock(input string) (Block, string, error) {
	for _, alt := range blockAlternatives {
		if block, rest, err := alt(input); err == nil {
			return block, rest, nil
		}
	}
	return nil, input, inline.Errorf(inline.NoMatch, input, "block")
}
