// This is the main-driver for our calculator.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/skx/sapcalc/calc"
	"github.com/skx/sapcalc/config"
)

const version = "1.0.0"

func main() {

	//
	// Look for flags.
	//
	help := flag.Bool("help", false, "Show usage information and exit.")
	quiet := flag.Bool("quiet", false, "Suppress the startup banner.")
	showVersion := flag.Bool("version", false, "Show the version number and exit.")
	debug := flag.Bool("debug", false, "Enable evaluator trace logging.")
	scale := flag.Int("scale", 0, "Minimum result scale of arithmetic operators.")
	flag.BoolVar(help, "h", false, "Show usage information and exit.")
	flag.BoolVar(quiet, "q", false, "Suppress the startup banner.")
	flag.BoolVar(showVersion, "v", false, "Show the version number and exit.")
	flag.BoolVar(debug, "d", false, "Enable evaluator trace logging.")
	flag.Parse()

	if *help {
		fmt.Printf("Usage: sapcalc [flags] ['expression' ...]\n\n")
		flag.PrintDefaults()
		return
	}
	if *showVersion {
		fmt.Printf("sapcalc %s\n", version)
		return
	}

	//
	// Set up our debug-trace logger. In quiet/non-debug operation
	// this is a no-op sink; -d switches on real logging to stderr.
	//
	logger := zap.NewNop()
	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize debug logger: %s\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	//
	// Diagnostics get their own zap logger, independent of the debug
	// trace logger above: a recoverable diagnostic (bad input, division
	// by zero) is always worth surfacing, not gated behind -d. Warn
	// output goes to stderr either way, matching the REPL's "print zero
	// and prompt again" policy; the handler never aborts.
	//
	diagLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize diagnostic logger: %s\n", err)
		os.Exit(1)
	}
	defer diagLogger.Sync()

	c := calc.New(func(message string) { diagLogger.Warn(message) }, config.WithDefaultScale(*scale))

	//
	// An expression given on the command line runs once,
	// non-interactively, and we exit without starting the REPL.
	//
	if flag.NArg() > 0 {
		runBatch(c, logger, strings.Join(flag.Args(), " "))
		return
	}

	if !*quiet {
		fmt.Printf("sapcalc %s - arbitrary precision calculator\n", version)
		fmt.Printf("Type 'help' for a list of commands, 'quit' to exit.\n")
	}

	runREPL(c, logger)
}

// runBatch evaluates every ';'/newline separated statement in line
// and prints each statement's result, matching the REPL's per-statement
// output contract without the prompt and without reading further input.
func runBatch(c *calc.Calculator, logger *zap.Logger, line string) {
	for _, stmt := range splitStatements(line) {
		evalAndPrint(c, logger, stmt)
	}
}

// splitStatements divides a line of input on ';' and '\n', per the
// grammar's "multiple statements are permitted on one line" rule.
func splitStatements(line string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ';' || r == '\n'
	}) {
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return out
}

func evalAndPrint(c *calc.Calculator, logger *zap.Logger, stmt string) {
	logger.Debug("evaluating statement", zap.String("statement", stmt))
	result, ok := c.Execute(stmt)
	if !ok {
		return
	}
	logger.Debug("statement result", zap.String("statement", stmt), zap.String("result", result.String()))
	fmt.Println(result.String())
}

// runREPL drives the interactive read-eval-print loop: `quit` ends
// it, `help` prints the command summary, `history` prints previously
// entered lines.
func runREPL(c *calc.Calculator, logger *zap.Logger) {
	hist := &history{}
	lr := newLineReader(hist)
	defer lr.Close()

	for {
		line, ok := lr.ReadLine("sapcalc> ")
		if !ok {
			fmt.Println()
			return
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		hist.add(trimmed)

		switch trimmed {
		case "quit", "exit":
			return
		case "help":
			printHelp()
			continue
		case "history":
			for _, l := range hist.lines {
				fmt.Println(l)
			}
			continue
		}

		for _, stmt := range splitStatements(trimmed) {
			evalAndPrint(c, logger, stmt)
		}
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  quit, exit   leave the calculator")
	fmt.Println("  help         show this message")
	fmt.Println("  history      show previously entered statements")
	fmt.Println()
	fmt.Println("Expressions support + - * / % ^, comparisons, assignment,")
	fmt.Println("parentheses, and sqrt/sin/cos/atan/ln/exp function calls.")
}
