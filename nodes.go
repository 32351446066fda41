package mdast

import "github.com/mdast-go/mdast/inline"

// A Block is one top-level structural unit of the document: a heading, a
// list, a quote, a fenced code block or a paragraph line.
type Block interface {
	block()
}

// Document is the ordered sequence of blocks produced by a parse.
type Document []Block

// Heading is "# title" with Level equal to the number of leading hashes.
type Heading struct {
	Level   int
	Content inline.Text
}

// OrderedList is one or more consecutive "1. item" lines. Item numbers are
// not preserved; renderers renumber.
type OrderedList struct {
	Items []inline.Text
}

// UnorderedList is one or more consecutive "- item" lines.
type UnorderedList struct {
	Items []inline.Text
}

// Quote is one or more consecutive "> line" lines, one Text per source
// line. Block syntax inside a quote is not parsed; it stays flat inline
// text.
type Quote struct {
	Lines []inline.Text
}

// CodeBlock is a fenced block. Code preserves line breaks and indentation
// verbatim between the fences and is never inline-decoded. Language is the
// trimmed remainder of the opening fence line; empty means no tag.
type CodeBlock struct {
	Code     string
	Language string
}

// Paragraph is a single plain line, the fallback when no other block
// matches. A blank source line is a Paragraph with nil Content.
type Paragraph struct {
	Content inline.Text
}

func (Heading) block()       {}
func (OrderedList) block()   {}
func (UnorderedList) block() {}
func (Quote) block()         {}
func (CodeBlock) block()     {}
func (Paragraph) block()     {}
