package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gpontes/rematch"
)

// ANSI color codes for terminal output
const (
	colorReset = "\033[0m"
	colorRed   = "\033[1;31m"
)

type args struct {
	extended *bool

	// Debugging Options

	showAST      *bool
	showCaptures *bool

	// Matching Options

	fullLines *bool
	color     *string
}

func readArgs() *args {
	a := &args{
		extended: flag.Bool("E", false, "Interpret the pattern as an extended expression (the only mode supported; kept for grep compatibility)"),

		showAST:      flag.Bool("ast", false, "Output the AST of the compiled pattern before matching"),
		showCaptures: flag.Bool("captures", false, "On a match, print the captured groups of the first matching line"),

		fullLines: flag.Bool("x", false, "Select only matches that cover a whole line"),
		color:     flag.String("color", "auto", "Colorize the AST output: auto, always or never"),
	}

	flag.Parse()

	return a
}

func main() {
	a := readArgs()

	if !*a.extended {
		fatal("expected first argument to be `-E`")
	}
	if flag.NArg() != 1 {
		fatal("usage: rematch -E [flags] <pattern>")
	}

	cfg := rematch.NewConfig()
	cfg.SetBool("match.full_lines", *a.fullLines)
	cfg.SetBool("output.ast", *a.showAST)
	cfg.SetString("output.color", *a.color)

	matcher, err := rematch.Compile(flag.Arg(0), cfg)
	if err != nil {
		fatal(err.Error())
	}

	if cfg.GetBool("output.ast") {
		if useColor(cfg.GetString("output.color")) {
			fmt.Println(rematch.ColorString(matcher.Pattern()))
		} else {
			fmt.Println(rematch.PrettyString(matcher.Pattern()))
		}
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal(err.Error())
	}
	input := strings.TrimRight(string(data), "\n")

	if !matcher.MatchString(input) {
		os.Exit(1)
	}

	if *a.showCaptures {
		for _, line := range strings.Split(input, "\n") {
			caps, ok := matcher.FindLine(line)
			if !ok {
				continue
			}
			for i, capture := range caps {
				fmt.Printf("%d: %s\n", i+1, capture)
			}
			break
		}
	}
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "%serror%s: %s\n", colorRed, colorReset, msg)
	os.Exit(2)
}
