package mdast

import (
	"strings"

	"github.com/mdast-go/mdast/inline"
)

// blockFunc recognizes one block at the head of the input. A failed match
// returns the input untouched so the next alternative can be tried at the
// same position.
type blockFunc func(input string) (Block, string, error)

// blockAlternatives are tried strictly in order at each block start; the
// first success wins and commits. The paragraph fallback comes last.
var blockAlternatives = []blockFunc{
	matchHeading,
	matchOrderedList,
	matchUnorderedList,
	matchQuote,
	matchCodeBlock,
	matchParagraph,
}

func matchHeading(input string) (Block, string, error) {
	level := 0
	for level < len(input) && input[level] == '#' {
		level++
	}
	if level == 0 {
		return nil, input, inline.Errorf(inline.NoMatch, input, `"#"`)
	}
	rest, ok := strings.CutPrefix(input[level:], " ")
	if !ok {
		return nil, input, inline.Errorf(inline.NoMatch, input[level:], `space after "#"`)
	}
	content, rest, err := inline.DecodeLine(rest)
	if err != nil {
		return nil, input, err
	}
	return Heading{Level: level, Content: content}, rest, nil
}

// matchOrderedItem matches "1. " followed by one decoded line.
func matchOrderedItem(input string) (inline.Text, string, error) {
	i := 0
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		i++
	}
	if i == 0 {
		return nil, input, inline.Errorf(inline.NoMatch, input, "list number")
	}
	rest, ok := strings.CutPrefix(input[i:], ". ")
	if !ok {
		return nil, input, inline.Errorf(inline.NoMatch, input[i:], `". " after list number`)
	}
	item, rest, err := inline.DecodeLine(rest)
	if err != nil {
		return nil, input, err
	}
	return item, rest, nil
}

func matchOrderedList(input string) (Block, string, error) {
	items, rest, err := matchItems(input, matchOrderedItem)
	if err != nil {
		return nil, input, err
	}
	return OrderedList{Items: items}, rest, nil
}

func matchUnorderedList(input string) (Block, string, error) {
	items, rest, err := matchItems(input, func(in string) (inline.Text, string, error) {
		return matchPrefixedLine(in, "- ")
	})
	if err != nil {
		return nil, input, err
	}
	return UnorderedList{Items: items}, rest, nil
}

func matchQuote(input string) (Block, string, error) {
	lines, rest, err := matchItems(input, func(in string) (inline.Text, string, error) {
		return matchPrefixedLine(in, "> ")
	})
	if err != nil {
		return nil, input, err
	}
	return Quote{Lines: lines}, rest, nil
}

// matchItems collects one or more consecutive item lines; the sequence ends
// at the first line the item recognizer rejects.
func matchItems(input string, item func(string) (inline.Text, string, error)) ([]inline.Text, string, error) {
	first, rest, err := item(input)
	if err != nil {
		return nil, input, err
	}
	items := []inline.Text{first}
	for {
		next, r, err := item(rest)
		if err != nil {
			return items, rest, nil
		}
		items = append(items, next)
		rest = r
	}
}

func matchPrefixedLine(input, prefix string) (inline.Text, string, error) {
	rest, ok := strings.CutPrefix(input, prefix)
	if !ok {
		return nil, input, inline.Errorf(inline.NoMatch, input, "%q", prefix)
	}
	line, rest, err := inline.DecodeLine(rest)
	if err != nil {
		return nil, input, err
	}
	return line, rest, nil
}

func matchCodeBlock(input string) (Block, string, error) {
	rest, ok := strings.CutPrefix(input, "```")
	if !ok {
		return nil, input, inline.Errorf(inline.NoMatch, input, "\"```\"")
	}
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return nil, input, inline.Errorf(inline.Unterminated, rest, "newline after opening fence")
	}
	body := rest[nl+1:]
	end := strings.Index(body, "```")
	if end < 0 {
		return nil, input, inline.Errorf(inline.Unterminated, body, "closing \"```\"")
	}
	return CodeBlock{
		Code:     body[:end],
		Language: strings.TrimSpace(rest[:nl]),
	}, body[end+3:], nil
}

func matchParagraph(input string) (Block, string, error) {
	content, rest, err := inline.DecodeLine(input)
	if err != nil {
		return nil, input, err
	}
	return Paragraph{Content: content}, rest, nil
}
