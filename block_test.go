package mdast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdast-go/mdast/inline"
)

func plain(s string) inline.Text { return inline.Text{inline.Plain(s)} }

func TestMatchHeading(t *testing.T) {
	tests := []struct {
		input string
		want  Block
		rest  string
		fail  bool
	}{
		{input: "# h1\n", want: Heading{Level: 1, Content: plain("h1")}},
		{input: "## h2\n", want: Heading{Level: 2, Content: plain("h2")}},
		// Only one space is part of the prefix; the rest is content.
		{input: "###  h3\n", want: Heading{Level: 3, Content: plain(" h3")}},
		{input: "# \n", want: Heading{Level: 1}},
		{input: "# h1\nnext\n", want: Heading{Level: 1, Content: plain("h1")}, rest: "next\n"},
		{input: "###h3\n", fail: true},
		{input: "###\n", fail: true},
		{input: "#", fail: true},
		{input: "", fail: true},
		{input: "# test", fail: true}, // no trailing newline
		{input: "# *broken\n", fail: true},
	}
	for _, test := range tests {
		got, rest, err := matchHeading(test.input)
		if test.fail {
			assert.Error(t, err, "%q", test.input)
			assert.Equal(t, test.input, rest, "failed match must not consume")
			continue
		}
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.want, got, "%q", test.input)
		assert.Equal(t, test.rest, rest, "%q", test.input)
	}
}

func TestMatchOrderedItem(t *testing.T) {
	item, rest, err := matchOrderedItem("1. this is an element\n1. here is another\n")
	require.NoError(t, err)
	assert.Equal(t, plain("this is an element"), item)
	assert.Equal(t, "1. here is another\n", rest)

	item, rest, err = matchOrderedItem("1234567. numbered\n")
	require.NoError(t, err)
	assert.Equal(t, plain("numbered"), item)
	assert.Equal(t, "", rest)

	item, _, err = matchOrderedItem("1. \n")
	require.NoError(t, err)
	assert.Empty(t, item)

	for _, input := range []string{"", "1", "1.", "1. ", "1. test", "1.and some more", "1111."} {
		_, rest, err := matchOrderedItem(input)
		assert.Error(t, err, "%q", input)
		assert.Equal(t, input, rest, "failed match must not consume")
	}
}

func TestMatchOrderedList(t *testing.T) {
	tests := []struct {
		input string
		want  Block
		rest  string
		fail  bool
	}{
		{input: "1. this is an element\n",
			want: OrderedList{Items: []inline.Text{plain("this is an element")}}},
		{input: "1. this is an element\n2. here is another\n",
			want: OrderedList{Items: []inline.Text{plain("this is an element"), plain("here is another")}}},
		{input: "1. a\n2. b\nPlain line\n",
			want: OrderedList{Items: []inline.Text{plain("a"), plain("b")}},
			rest: "Plain line\n"},
		{input: "1. test", fail: true},
		{input: "", fail: true},
	}
	for _, test := range tests {
		got, rest, err := matchOrderedList(test.input)
		if test.fail {
			assert.Error(t, err, "%q", test.input)
			assert.Equal(t, test.input, rest, "failed match must not consume")
			continue
		}
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.want, got, "%q", test.input)
		assert.Equal(t, test.rest, rest, "%q", test.input)
	}
}

func TestMatchUnorderedList(t *testing.T) {
	tests := []struct {
		input string
		want  Block
		rest  string
		fail  bool
	}{
		{input: "- this is an element\n",
			want: UnorderedList{Items: []inline.Text{plain("this is an element")}}},
		{input: "- this is an element\n- here is another\n",
			want: UnorderedList{Items: []inline.Text{plain("this is an element"), plain("here is another")}}},
		{input: "- \n", want: UnorderedList{Items: []inline.Text{nil}}},
		// The list stops at the first non-prefixed line.
		{input: "- a\n- b\nPlain line\n",
			want: UnorderedList{Items: []inline.Text{plain("a"), plain("b")}},
			rest: "Plain line\n"},
		{input: "- this is an element", fail: true},
		{input: "-", fail: true},
		{input: "-not an element\n", fail: true},
		{input: "--\n", fail: true},
		{input: "", fail: true},
	}
	for _, test := range tests {
		got, rest, err := matchUnorderedList(test.input)
		if test.fail {
			assert.Error(t, err, "%q", test.input)
			assert.Equal(t, test.input, rest, "failed match must not consume")
			continue
		}
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.want, got, "%q", test.input)
		assert.Equal(t, test.rest, rest, "%q", test.input)
	}
}

func TestMatchQuote(t *testing.T) {
	tests := []struct {
		input string
		want  Block
		rest  string
		fail  bool
	}{
		{input: "> this is a quote\n",
			want: Quote{Lines: []inline.Text{plain("this is a quote")}}},
		{input: "> **this is a bold quote**\n> this is another quote\n",
			want: Quote{Lines: []inline.Text{
				{inline.Bold("this is a bold quote")},
				plain("this is another quote"),
			}}},
		// Block syntax inside a quote stays flat inline text.
		{input: "> - this is a list inside a quote\n> - this the second list\n",
			want: Quote{Lines: []inline.Text{
				plain("- this is a list inside a quote"),
				plain("- this the second list"),
			}}},
		{input: "> quoted\nnot quoted\n",
			want: Quote{Lines: []inline.Text{plain("quoted")}},
			rest: "not quoted\n"},
		{input: ">\n", fail: true},
		{input: ">not a quote\n", fail: true},
		{input: "not a quote\n", fail: true},
		{input: "", fail: true},
	}
	for _, test := range tests {
		got, rest, err := matchQuote(test.input)
		if test.fail {
			assert.Error(t, err, "%q", test.input)
			assert.Equal(t, test.input, rest, "failed match must not consume")
			continue
		}
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.want, got, "%q", test.input)
		assert.Equal(t, test.rest, rest, "%q", test.input)
	}
}

func TestMatchCodeBlock(t *testing.T) {
	tests := []struct {
		input string
		want  Block
		rest  string
		fail  bool
	}{
		{input: "```bash\npip install foobar\n```",
			want: CodeBlock{Code: "pip install foobar\n", Language: "bash"}},
		{input: "```python\nimport foobar\n\nfoobar.pluralize('word')\n```",
			want: CodeBlock{Code: "import foobar\n\nfoobar.pluralize('word')\n", Language: "python"}},
		// A blank fence line means no language tag.
		{input: "```\ncode\n```", want: CodeBlock{Code: "code\n"}},
		// The fence line is trimmed.
		{input: "```  py  \ncode\n```", want: CodeBlock{Code: "code\n", Language: "py"}},
		// The body is verbatim: markers and single backticks survive.
		{input: "```\na `b` *c*\n\tindented\n```",
			want: CodeBlock{Code: "a `b` *c*\n\tindented\n"}},
		{input: "```\n```", want: CodeBlock{}},
		// The closing fence consumes exactly three backticks; a following
		// newline belongs to the next block.
		{input: "```sh\nls\n```\nafter\n",
			want: CodeBlock{Code: "ls\n", Language: "sh"},
			rest: "\nafter\n"},
		{input: "``\nnot a fence\n```", fail: true},
		{input: "```no newline", fail: true},
		{input: "```sh\nnever closed\n", fail: true},
		{input: "", fail: true},
	}
	for _, test := range tests {
		got, rest, err := matchCodeBlock(test.input)
		if test.fail {
			assert.Error(t, err, "%q", test.input)
			assert.Equal(t, test.input, rest, "failed match must not consume")
			continue
		}
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.want, got, "%q", test.input)
		assert.Equal(t, test.rest, rest, "%q", test.input)
	}
}

func TestMatchParagraph(t *testing.T) {
	got, rest, err := matchParagraph("just some text\nmore\n")
	require.NoError(t, err)
	assert.Equal(t, Paragraph{Content: plain("just some text")}, got)
	assert.Equal(t, "more\n", rest)

	got, rest, err = matchParagraph("\n")
	require.NoError(t, err)
	assert.Equal(t, Paragraph{}, got)
	assert.Equal(t, "", rest)

	_, rest, err = matchParagraph("*broken\n")
	assert.Error(t, err)
	assert.Equal(t, "*broken\n", rest)
}

// A heading prefix followed by malformed inline content must not commit;
// the paragraph fallback is tried at the same position and fails too, so
// the block as a whole is unparseable.
func TestBlockNoPartialCommit(t *testing.T) {
	_, rest, err := matchBlock("# *broken\n")
	assert.Error(t, err)
	assert.Equal(t, "# *broken\n", rest)
}
