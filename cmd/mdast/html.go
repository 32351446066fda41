package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/mdast-go/mdast"
	"github.com/mdast-go/mdast/inline"
)

// renderHTML emits a minimal HTML rendering of the tree. It lives in the
// command rather than the library: the tree is the library's contract and
// different frontends render it differently.
func renderHTML(doc mdast.Document) string {
	out := &strings.Builder{}
	for _, block := range doc {
		renderBlock(out, block)
	}
	return out.String()
}

func renderBlock(out *strings.Builder, block mdast.Block) {
	switch b := block.(type) {
	case mdast.Heading:
		level := b.Level
		if level > 6 {
			level = 6
		}
		fmt.Fprintf(out, "<h%d>%s</h%d>\n", level, renderText(b.Content), level)

	case mdast.OrderedList:
		out.WriteString("<ol>\n")
		for _, item := range b.Items {
			fmt.Fprintf(out, "<li>%s</li>\n", renderText(item))
		}
		out.WriteString("</ol>\n")

	case mdast.UnorderedList:
		out.WriteString("<ul>\n")
		for _, item := range b.Items {
			fmt.Fprintf(out, "<li>%s</li>\n", renderText(item))
		}
		out.WriteString("</ul>\n")

	case mdast.Quote:
		out.WriteString("<blockquote>\n")
		for _, line := range b.Lines {
			fmt.Fprintf(out, "<p>%s</p>\n", renderText(line))
		}
		out.WriteString("</blockquote>\n")

	case mdast.CodeBlock:
		if b.Language != "" {
			fmt.Fprintf(out, "<pre><code class=\"language-%s\">%s</code></pre>\n",
				html.EscapeString(b.Language), html.EscapeString(b.Code))
		} else {
			fmt.Fprintf(out, "<pre><code>%s</code></pre>\n", html.EscapeString(b.Code))
		}

	case mdast.Paragraph:
		// Blank source lines carry no content and render to nothing.
		if len(b.Content) > 0 {
			fmt.Fprintf(out, "<p>%s</p>\n", renderText(b.Content))
		}
	}
}

func renderText(text inline.Text) string {
	out := &strings.Builder{}
	for _, span := range text {
		switch s := span.(type) {
		case inline.Plain:
			out.WriteString(html.EscapeString(string(s)))
		case inline.Bold:
			fmt.Fprintf(out, "<strong>%s</strong>", html.EscapeString(string(s)))
		case inline.Italic:
			fmt.Fprintf(out, "<em>%s</em>", html.EscapeString(string(s)))
		case inline.Code:
			if s.Language != "" {
				fmt.Fprintf(out, "<code class=\"language-%s\">%s</code>",
					html.EscapeString(s.Language), html.EscapeString(s.Code))
			} else {
				fmt.Fprintf(out, "<code>%s</code>", html.EscapeString(s.Code))
			}
		case inline.Link:
			fmt.Fprintf(out, "<a href=\"%s\">%s</a>",
				html.EscapeString(s.URL), html.EscapeString(s.Label))
		case inline.Image:
			fmt.Fprintf(out, "<img src=\"%s\" alt=\"%s\">",
				html.EscapeString(s.URL), html.EscapeString(s.Label))
		}
	}
	return out.String()
}
