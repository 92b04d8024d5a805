package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lumen-lang/lumenc/internal/compiler"
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/parser"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lumenc <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  build <file...>    Compile one or more Lumen source files\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "build":
		runBuild(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runBuild(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: lumenc build <file...>\n")
		os.Exit(1)
	}

	var trees []*syntax.Tree
	hasParseErrors := false
	for _, path := range args {
		text, err := source.FromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lumenc: %v\n", err)
			os.Exit(1)
		}
		tree := parser.Parse(text)
		if tree.Diags.HasErrors() {
			hasParseErrors = true
		}
		trees = append(trees, tree)
	}

	if hasParseErrors {
		for _, tree := range trees {
			printDiagnostics(tree.Diags)
		}
		os.Exit(1)
	}

	result := compiler.New(trees...).Compile()
	printDiagnostics(result.Diagnostics)
	if result.Diagnostics.HasErrors() {
		os.Exit(1)
	}
	fmt.Printf("%s: build succeeded (%d function(s))\n", args[0], len(result.Bodies))
}

func printDiagnostics(bag *diag.Bag) {
	for _, d := range bag.Sorted() {
		fmt.Fprintln(os.Stderr, d.String())
	}
}
