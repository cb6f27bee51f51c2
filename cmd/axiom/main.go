package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"axiomlang/internal/ast"
	"axiomlang/internal/diag"
	"axiomlang/internal/lexer"
	"axiomlang/internal/loader"
	"axiomlang/internal/parser"
	"axiomlang/internal/source"
)

func usage() {
	fmt.Fprintln(os.Stderr, "axiom - a tiny typed language with a deterministic clock")
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  axiom init [dir]")
	fmt.Fprintln(os.Stderr, "  axiom run [file.axi|dir]")
	fmt.Fprintln(os.Stderr, "  axiom check [file.axi|dir]")
	fmt.Fprintln(os.Stderr, "  axiom tokens [file.axi|dir]")
	fmt.Fprintln(os.Stderr, "  axiom ast [file.axi|dir]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "A directory is resolved through its axiom.yaml (default entry: src/main.axi).")
}

// errReported means diagnostics were already printed.
var errReported = errors.New("build failed")

func parsePathArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return ".", nil
	case 1:
		if strings.HasPrefix(args[0], "-") {
			return "", fmt.Errorf("unknown flag: %s", args[0])
		}
		return args[0], nil
	default:
		return "", fmt.Errorf("unexpected extra arg: %s", args[1])
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	var cmd func(path string, stdout, stderr io.Writer) error
	switch os.Args[1] {
	case "init":
		path, err := parsePathArg(os.Args[2:])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if err := loader.InitPackage(path); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	case "run":
		cmd = run
	case "check":
		cmd = check
	case "tokens":
		cmd = dumpTokens
	case "ast":
		cmd = dumpAST
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	path, err := parsePathArg(os.Args[2:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if err := cmd(path, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

func load(path string) (*source.File, error) {
	tgt, err := loader.Resolve(path)
	if err != nil {
		return nil, err
	}
	return loader.ReadSource(tgt)
}

func report(stderr io.Writer, d *diag.Diagnostic) error {
	diag.Print(stderr, d)
	return errReported
}

func run(path string, stdout, stderr io.Writer) error {
	file, err := load(path)
	if err != nil {
		return err
	}
	res, d := loader.Run(file)
	if d != nil {
		return report(stderr, d)
	}
	if !res.HasValue {
		fmt.Fprintln(stdout, "Result: none")
		return nil
	}
	fmt.Fprintf(stdout, "Result: %s\n", res.Value)
	return nil
}

func check(path string, stdout, stderr io.Writer) error {
	file, err := load(path)
	if err != nil {
		return err
	}
	res, d := loader.Build(file)
	if d != nil {
		return report(stderr, d)
	}
	// Report the final type of each binding, in first-binding order.
	order := []string{}
	final := map[string]string{}
	for _, st := range res.Program.Prog.Stmts {
		let, ok := st.(*ast.LetStmt)
		if !ok {
			continue
		}
		if _, seen := final[let.Name]; !seen {
			order = append(order, let.Name)
		}
		final[let.Name] = res.Program.LetTypes[let].String()
	}
	fmt.Fprintln(stdout, "ok")
	for _, name := range order {
		fmt.Fprintf(stdout, "  %s: %s\n", name, final[name])
	}
	return nil
}

func dumpTokens(path string, stdout, stderr io.Writer) error {
	file, err := load(path)
	if err != nil {
		return err
	}
	toks, d := lexer.Lex(file)
	for _, tok := range toks {
		_, line, col := tok.Span.LocStart()
		fmt.Fprintf(stdout, "%d:%d %s %q\n", line, col, tokenName(tok.Kind), tok.Lexeme)
	}
	if d != nil {
		return report(stderr, d)
	}
	return nil
}

func dumpAST(path string, stdout, stderr io.Writer) error {
	file, err := load(path)
	if err != nil {
		return err
	}
	prog, d := parser.Parse(file)
	if d != nil {
		return report(stderr, d)
	}
	fmt.Fprint(stdout, prog.Format())
	return nil
}

var tokenNames = map[lexer.Kind]string{
	lexer.TokenEOF:   "eof",
	lexer.TokenIdent: "ident",
	lexer.TokenInt:   "int",
	lexer.TokenLet:   "let",
	lexer.TokenPlus:  "plus",
	lexer.TokenMinus: "minus",
	lexer.TokenStar:  "star",
	lexer.TokenSlash: "slash",
	lexer.TokenEq:    "eq",
}

func tokenName(k lexer.Kind) string {
	if n, ok := tokenNames[k]; ok {
		return n
	}
	return "bad"
}
