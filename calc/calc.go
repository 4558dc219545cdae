// Package calc wires the lexer/parser/evaluator pipeline, the symbol
// table, the diagnostics sink and the configuration together into one
// reusable calculator context. Unlike the source's process-wide
// globals, a Calculator is an ordinary value: an embedder can run
// several independent calculators in the same process.
package calc

import (
	"github.com/skx/sapcalc/bignum"
	"github.com/skx/sapcalc/config"
	"github.com/skx/sapcalc/diagnostics"
	"github.com/skx/sapcalc/evaluator"
	"github.com/skx/sapcalc/parser"
	"github.com/skx/sapcalc/symtab"
)

// Calculator holds everything one REPL/session needs: variable
// bindings, diagnostics, and tuning configuration.
type Calculator struct {
	cfg  *config.Config
	sink *diagnostics.Sink
	vars *symtab.Table
	eval *evaluator.Evaluator
}

// New builds a Calculator, applying opts to its configuration. A nil
// handler installs diagnostics.Stderr.
func New(handler diagnostics.Handler, opts ...config.Option) *Calculator {
	cfg := config.New(opts...)
	sink := diagnostics.New(handler)
	vars := symtab.NewWithCapacity(cfg.SymbolTableCapacity)

	return &Calculator{
		cfg:  cfg,
		sink: sink,
		vars: vars,
		eval: evaluator.New(vars, sink, cfg),
	}
}

// Execute parses and evaluates one statement, returning its value and
// whether a value was present at all (false only for an empty, purely
// whitespace statement).
func (c *Calculator) Execute(stmt string) (*bignum.Num, bool) {
	tokens := parser.New(stmt, c.sink).Parse()
	return c.eval.Eval(tokens)
}

// Reset clears every variable binding, without otherwise disturbing
// the calculator's configuration or diagnostics.
func (c *Calculator) Reset() {
	c.vars.Reset()
}

// SetHandler replaces the installed diagnostics handler.
func (c *Calculator) SetHandler(h diagnostics.Handler) {
	c.sink.SetHandler(h)
}
