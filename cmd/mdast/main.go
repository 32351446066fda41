package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/mdast-go/mdast"
)

var (
	version string = "dev"

	cli struct {
		Version kong.VersionFlag `help:"Show version."`
		AST     bool             `help:"Dump the parsed syntax tree instead of rendering HTML."`
		Path    string           `arg:"" optional:"" type:"existingfile" help:"Markdown file to parse (defaults to stdin)."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Parse a Markdown file and render it as HTML.`),
		kong.Vars{"version": version},
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	var (
		doc mdast.Document
		err error
	)
	if cli.Path == "" {
		doc, err = mdast.Parse("<stdin>", os.Stdin)
	} else {
		var data []byte
		data, err = os.ReadFile(cli.Path)
		if err == nil {
			doc, err = mdast.ParseBytes(cli.Path, data)
		}
	}
	if err != nil {
		return err
	}
	if cli.AST {
		repr.Println(doc)
		return nil
	}
	_, err = io.WriteString(os.Stdout, renderHTML(doc))
	return err
}
