package mdast

import (
	"fmt"
	"strings"
)

// String methods re-emit source syntax. They exist for debugging and test
// output; the tree is the contract, not the text, and re-serialization is
// not guaranteed to round-trip byte for byte (list numbering and fence-line
// whitespace are normalized).

func (h Heading) String() string {
	return strings.Repeat("#", h.Level) + " " + h.Content.String() + "\n"
}

func (l OrderedList) String() string {
	out := &strings.Builder{}
	for i, item := range l.Items {
		fmt.Fprintf(out, "%d. %s\n", i+1, item)
	}
	return out.String()
}

func (l UnorderedList) String() string {
	out := &strings.Builder{}
	for _, item := range l.Items {
		fmt.Fprintf(out, "- %s\n", item)
	}
	return out.String()
}

func (q Quote) String() string {
	out := &strings.Builder{}
	for _, line := range q.Lines {
		fmt.Fprintf(out, "> %s\n", line)
	}
	return out.String()
}

func (c CodeBlock) String() string {
	return "```" + c.Language + "\n" + c.Code + "```"
}

func (p Paragraph) String() string {
	return p.Content.String() + "\n"
}

func (d Document) String() string {
	out := &strings.Builder{}
	for _, block := range d {
		fmt.Fprintf(out, "%s", block)
	}
	return out.String()
}
