// Package mdast parses a small Markdown dialect into a typed syntax tree.
//
// The grammar is fixed and deliberately minimal:
//
//	Document      = Block { Block } .
//	Block         = Heading | OrderedList | UnorderedList | Quote | CodeBlock | Paragraph .
//	Heading       = "#" { "#" } " " Line .
//	OrderedList   = OrderedItem { OrderedItem } .
//	OrderedItem   = digit { digit } ". " Line .
//	UnorderedList = "- " Line { "- " Line } .
//	Quote         = "> " Line { "> " Line } .
//	CodeBlock     = "```" [ language ] "\n" text "```" .
//	Paragraph     = Line .
//	Line          = { Plain | Bold | Italic | Code | Image | Link } "\n" .
//
// Block alternatives are tried strictly in the order above and the first
// match wins; a partially matching alternative fails as a whole and the
// next one is tried at the same position. Parsing is a single left-to-right
// pass over an immutable input with no shared state, so independent parses
// may run concurrently.
//
// The dialect is intentionally not CommonMark. Lists and quotes do not
// nest (nested syntax stays flat inline text), there are no link reference
// definitions, no HTML passthrough and no escaping. Rendering is a caller
// concern; see cmd/mdast for an HTML emitter built on the tree.
package mdast
