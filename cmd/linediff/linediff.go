package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/magroski/diff"
)

var CLI struct {
	Text struct {
		BeforeFile string `arg:"" type:"existingfile" help:"Before file"`
		AfterFile  string `arg:"" type:"existingfile" help:"After file"`
		Chars      bool   `help:"Compare characters instead of lines."`
		Sep        string `help:"Separator between output lines."`
	} `cmd:"" help:"Print the diff with +/- line prefixes."`

	HTML struct {
		BeforeFile string `arg:"" type:"existingfile" help:"Before file"`
		AfterFile  string `arg:"" type:"existingfile" help:"After file"`
		Chars      bool   `help:"Compare characters instead of lines."`
		Sep        string `help:"Separator between output entries."`
	} `cmd:"" name:"html" help:"Print the diff as inline HTML."`

	Table struct {
		BeforeFile string `arg:"" type:"existingfile" help:"Before file"`
		AfterFile  string `arg:"" type:"existingfile" help:"After file"`
		Chars      bool   `help:"Compare characters instead of lines."`
		Indent     string `help:"Indentation before each table row."`
		Sep        string `help:"Separator between output rows."`
	} `cmd:"" help:"Print the diff as side-by-side HTML table rows."`

	Unified struct {
		BeforeFile string `arg:"" type:"existingfile" help:"Before file"`
		AfterFile  string `arg:"" type:"existingfile" help:"After file"`
		Context    int    `default:"3" help:"Unchanged lines shown around changes."`
	} `cmd:"" help:"Print a unified diff."`

	Split struct {
		BeforeFile string `arg:"" type:"existingfile" help:"Before file"`
		AfterFile  string `arg:"" type:"existingfile" help:"After file"`
		Width      int    `default:"80" help:"Column width in display cells."`
		EastAsian  bool   `help:"Treat ambiguous-width characters as wide."`
	} `cmd:"" help:"Print the diff in two columns."`
}

func main() {
	ctx := kong.Parse(&CLI)
	switch ctx.Command() {
	case "text <before-file> <after-file>":
		d := mustCompare(CLI.Text.BeforeFile, CLI.Text.AfterFile, CLI.Text.Chars)
		fmt.Println(d.Text(sepOpt(CLI.Text.Sep)...))
	case "html <before-file> <after-file>":
		d := mustCompare(CLI.HTML.BeforeFile, CLI.HTML.AfterFile, CLI.HTML.Chars)
		fmt.Println(d.HTML(sepOpt(CLI.HTML.Sep)...))
	case "table <before-file> <after-file>":
		d := mustCompare(CLI.Table.BeforeFile, CLI.Table.AfterFile, CLI.Table.Chars)
		opts := append(sepOpt(CLI.Table.Sep), diff.WithIndent(CLI.Table.Indent))
		fmt.Println(d.HTMLTable(opts...))
	case "unified <before-file> <after-file>":
		d := mustCompare(CLI.Unified.BeforeFile, CLI.Unified.AfterFile, false)
		fmt.Println(d.Unified(CLI.Unified.BeforeFile, CLI.Unified.AfterFile, CLI.Unified.Context))
	case "split <before-file> <after-file>":
		d := mustCompare(CLI.Split.BeforeFile, CLI.Split.AfterFile, false)
		var opts []diff.FuncOption
		if CLI.Split.EastAsian {
			opts = append(opts, diff.WithEastAsianWidth())
		}
		fmt.Println(d.SideBySide(CLI.Split.Width, opts...))
	default:
		panic(ctx.Command())
	}
}

func mustCompare(beforePath, afterPath string, chars bool) diff.Diff {
	var opts []diff.FuncOption
	if chars {
		opts = append(opts, diff.WithChars())
	}
	d, err := diff.CompareFiles(beforePath, afterPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error diffing files: %s\n", err)
		os.Exit(1)
	}
	return d
}

func sepOpt(sep string) []diff.FuncOption {
	if sep == "" {
		return nil
	}
	return []diff.FuncOption{diff.WithSeparator(sep)}
}
