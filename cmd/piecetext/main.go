// Command piecetext loads a document into the piece-table buffer and
// prints a summary of it: byte length, line count, and a guessed
// indentation style.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/keystorm-labs/piecetext/internal/buffer"
	"github.com/keystorm-labs/piecetext/internal/textsource"
)

func main() {
	jsonSource := flag.Bool("json", false, "treat the input file as a textsource JSON document instead of raw text")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: piecetext [-json] <file>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *jsonSource); err != nil {
		fmt.Fprintln(os.Stderr, "piecetext:", err)
		os.Exit(1)
	}
}

func run(path string, jsonSource bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var buf *buffer.Buffer
	if jsonSource {
		src, err := textsource.Load(data)
		if err != nil {
			return err
		}
		buf = buffer.NewBufferFromSource(src)
	} else {
		buf = buffer.NewBufferFromString(string(data))
	}

	guess, err := buf.GuessIndent()
	if err != nil {
		return err
	}

	out := []byte("{}")
	out, err = sjson.SetBytes(out, "path", path)
	if err != nil {
		return err
	}
	out, err = sjson.SetBytes(out, "byteLength", buf.Len())
	if err != nil {
		return err
	}
	out, err = sjson.SetBytes(out, "lineCount", buf.LineCount())
	if err != nil {
		return err
	}
	out, err = sjson.SetBytes(out, "lineEnding", buf.LineEnding())
	if err != nil {
		return err
	}
	out, err = sjson.SetBytes(out, "indent.insertSpaces", guess.InsertSpaces)
	if err != nil {
		return err
	}
	out, err = sjson.SetBytes(out, "indent.tabSize", guess.TabSize)
	if err != nil {
		return err
	}

	os.Stdout.Write(pretty.Pretty(out))
	return nil
}
