// Package inline decodes the content of a single logical line of Markdown
// into an ordered sequence of typed spans.
//
// The package is the leaf layer of the parser: it knows nothing about block
// structure. Recognizers consume from the head of an immutable input string
// and return the decoded value together with the remaining input, or an
// *Error describing why nothing could be consumed. Failed matches never
// consume input, so callers can retry the next alternative at the same
// position.
//
// Inline markers never span a newline: every interior scan stops at '\n'
// and reports the construct unterminated.
package inline

import (
	"fmt"
	"strings"
)

// A Span is one decoded fragment of a line: a plain run, emphasis, a code
// span, a link or an image.
type Span interface {
	span()
}

// Text is the fully decoded content of one logical line, stripped of its
// terminating newline. Span order is rendering order and is significant.
type Text []Span

// Plain is a run of characters containing no marker starts.
type Plain string

// Bold is strong emphasis, delimited by "**" in source form.
type Bold string

// Italic is emphasis, delimited by "*" in source form.
type Italic string

// Code is an inline code span. Language holds the tag that immediately
// follows the closing backtick with no separator; it is empty when the
// closing backtick is followed by whitespace or end of input.
type Code struct {
	Code     string
	Language string
}

// Link is a "[label](url)" reference.
type Link struct {
	Label string
	URL   string
}

// Image is a "![label](url)" reference.
type Image struct {
	Label string
	URL   string
}

func (Plain) span()  {}
func (Bold) span()   {}
func (Italic) span() {}
func (Code) span()   {}
func (Link) span()   {}
func (Image) span()  {}

func (p Plain) String() string  { return string(p) }
func (b Bold) String() string   { return "**" + string(b) + "**" }
func (i Italic) String() string { return "*" + string(i) + "*" }
func (c Code) String() string   { return "`" + c.Code + "`" + c.Language }
func (l Link) String() string   { return "[" + l.Label + "](" + l.URL + ")" }
func (i Image) String() string  { return "![" + i.Label + "](" + i.URL + ")" }

// String reassembles the source form of the line, without the newline.
func (t Text) String() string {
	out := &strings.Builder{}
	for _, span := range t {
		fmt.Fprintf(out, "%s", span)
	}
	return out.String()
}

// MatchPlain matches a run of one or more characters up to, and not
// including, the first '*', '`', '[', newline or "![" pair. A '!' not
// followed by '[' is plain text.
func MatchPlain(input string) (Plain, string, error) {
	i := 0
	for i < len(input) {
		c := input[i]
		if c == '*' || c == '`' || c == '[' || c == '\n' {
			break
		}
		if c == '!' && i+1 < len(input) && input[i+1] == '[' {
			break
		}
		i++
	}
	if i == 0 {
		return "", input, Errorf(NoMatch, input, "plain text")
	}
	return Plain(input[:i]), input[i:], nil
}

// MatchBold matches "**text**". The interior must be non-empty and must not
// contain '*'.
func MatchBold(input string) (Bold, string, error) {
	rest, ok := strings.CutPrefix(input, "**")
	if !ok {
		return "", input, Errorf(NoMatch, input, `"**"`)
	}
	i := strings.IndexAny(rest, "*\n")
	if i < 0 || rest[i] == '\n' {
		return "", input, Errorf(Unterminated, rest, `closing "**"`)
	}
	if i == 0 {
		return "", input, Errorf(NoMatch, rest, "bold text")
	}
	if !strings.HasPrefix(rest[i:], "**") {
		return "", input, Errorf(Unterminated, rest[i:], `closing "**"`)
	}
	return Bold(rest[:i]), rest[i+2:], nil
}

// MatchItalic matches "*text*". The interior must be non-empty and must not
// contain '*'. Callers must try MatchBold first: "**" is a valid prefix of
// an italic match and would otherwise be misread.
func MatchItalic(input string) (Italic, string, error) {
	rest, ok := strings.CutPrefix(input, "*")
	if !ok {
		return "", input, Errorf(NoMatch, input, `"*"`)
	}
	i := strings.IndexAny(rest, "*\n")
	if i < 0 || rest[i] == '\n' {
		return "", input, Errorf(Unterminated, rest, `closing "*"`)
	}
	if i == 0 {
		return "", input, Errorf(NoMatch, rest, "italic text")
	}
	return Italic(rest[:i]), rest[i+1:], nil
}

// MatchCode matches "`code`" with an optional language tag. The tag is the
// maximal run of non-whitespace characters immediately following the
// closing backtick; an empty run means no tag.
func MatchCode(input string) (Code, string, error) {
	rest, ok := strings.CutPrefix(input, "`")
	if !ok {
		return Code{}, input, Errorf(NoMatch, input, "\"`\"")
	}
	i := strings.IndexAny(rest, "`\n")
	if i < 0 || rest[i] == '\n' {
		return Code{}, input, Errorf(Unterminated, rest, "closing \"`\"")
	}
	if i == 0 {
		return Code{}, input, Errorf(NoMatch, rest, "code")
	}
	code := rest[:i]
	rest = rest[i+1:]
	j := strings.IndexAny(rest, " \t\r\n")
	if j < 0 {
		j = len(rest)
	}
	return Code{Code: code, Language: rest[:j]}, rest[j:], nil
}

// MatchLink matches "[label](url)". The label must not contain ']' and the
// url must not contain ')'; both must be non-empty.
func MatchLink(input string) (Link, string, error) {
	label, url, rest, err := matchLinkBody(input)
	if err != nil {
		return Link{}, input, err
	}
	return Link{Label: label, URL: url}, rest, nil
}

// MatchImage matches "![label](url)".
func MatchImage(input string) (Image, string, error) {
	if !strings.HasPrefix(input, "![") {
		return Image{}, input, Errorf(NoMatch, input, `"!["`)
	}
	label, url, rest, err := matchLinkBody(input[1:])
	if err != nil {
		return Image{}, input, err
	}
	return Image{Label: label, URL: url}, rest, nil
}

func matchLinkBody(input string) (label, url, rest string, err error) {
	rest, ok := strings.CutPrefix(input, "[")
	if !ok {
		return "", "", input, Errorf(NoMatch, input, `"["`)
	}
	i := strings.IndexAny(rest, "]\n")
	if i < 0 || rest[i] == '\n' {
		return "", "", input, Errorf(Unterminated, rest, `closing "]"`)
	}
	if i == 0 {
		return "", "", input, Errorf(NoMatch, rest, "link label")
	}
	label = rest[:i]
	rest, ok = strings.CutPrefix(rest[i+1:], "(")
	if !ok {
		return "", "", input, Errorf(NoMatch, rest, `"("`)
	}
	i = strings.IndexAny(rest, ")\n")
	if i < 0 || rest[i] == '\n' {
		return "", "", input, Errorf(Unterminated, rest, `closing ")"`)
	}
	if i == 0 {
		return "", "", input, Errorf(NoMatch, rest, "link url")
	}
	return label, rest[:i], rest[i+1:], nil
}

// spanFunc recognizes one span at the head of the input.
type spanFunc func(input string) (Span, string, error)

func spanOf[S Span](match func(string) (S, string, error)) spanFunc {
	return func(input string) (Span, string, error) {
		s, rest, err := match(input)
		if err != nil {
			return nil, input, err
		}
		return s, rest, nil
	}
}

// spanAlternatives are tried strictly in order; the first success wins.
// Plain comes first so that text runs stop exactly at marker boundaries,
// and bold strictly precedes italic because "**" is a valid italic prefix.
var spanAlternatives = []spanFunc{
	spanOf(MatchPlain),
	spanOf(MatchBold),
	spanOf(MatchItalic),
	spanOf(MatchCode),
	spanOf(MatchImage),
	spanOf(MatchLink),
}

// MatchSpan matches the first recognizable span at the head of the input.
func MatchSpan(input string) (Span, string, error) {
	for _, alt := range spanAlternatives {
		if span, rest, err := alt(input); err == nil {
			return span, rest, nil
		}
	}
	return nil, input, Errorf(NoMatch, input, "inline span")
}

// DecodeLine decodes one logical line: zero or more spans terminated by a
// newline, which is consumed and stripped. A marker that cannot be
// completed fails the whole line; no partial result is returned.
func DecodeLine(input string) (Text, string, error) {
	var text Text
	rest := input
	for {
		span, r, err := MatchSpan(rest)
		if err != nil {
			break
		}
		text = append(text, span)
		rest = r
	}
	r, ok := strings.CutPrefix(rest, "\n")
	if !ok {
		return nil, input, Errorf(Unterminated, rest, "newline")
	}
	return text, r, nil
}
