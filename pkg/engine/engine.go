// Package engine evaluates geometry query programs. A program is Lisp source
// run in a sandboxed zygomys environment; its builtins construct kernel
// entities and intersect them, and every intersection is recorded in a Report.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/robust3d/pkg/intersect"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// EvalWarning flags a query whose operands were degenerate, invalid or
// subnormal, or whose result had to be widened.
type EvalWarning struct {
	Line    int
	Col     int
	Message string
	Query   int // index into Report.Queries, -1 if not tied to a query
}

// Query records one call to the intersect builtin.
type Query struct {
	Index int
	// Pair names the operand kinds in call order, e.g. "triangle/ray".
	Pair      string
	Code      intersect.ResultCode
	Point     [3]float64
	HasPoint  bool // false for triangle/plane and triangle/triangle
	Precision Precision
	Widened   bool // recomputed in float64 after a float32 overflow
}

// Report is the full output of a successful evaluation.
type Report struct {
	Queries  []Query
	Warnings []EvalWarning
}

// Counts tallies the queries by result code.
func (r *Report) Counts() map[intersect.ResultCode]int {
	counts := make(map[intersect.ResultCode]int)
	for _, q := range r.Queries {
		counts[q.Code]++
	}
	return counts
}

// Engine wraps the zygomys interpreter for query evaluation.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	cfg        Config
}

// NewEngine creates an Engine with DefaultConfig.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an Engine. Zero Timeout and nil Logger fall
// back to their defaults.
func NewEngineWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Evaluate runs a query program and returns what its intersect calls found.
// Each call creates a fresh zygomys sandbox for deterministic evaluation.
//
// Return semantics:
//   - On success: returns report + nil errors + nil error
//   - On parse/eval failure: returns nil report + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*Report, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		rep, evalErrs, err := e.evaluate(source)
		ch <- evalResult{report: rep, errors: evalErrs, err: err}
	}()

	rep, evalErrs, err := waitWithTimeout(ch, gen, &e.mu, &e.generation, e.cfg.Timeout)
	if err != nil {
		e.cfg.Logger.Printf("engine: %v", err)
	}
	return rep, evalErrs, err
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Report, []EvalError, error) {
	// Empty source is a valid program with no queries.
	if strings.TrimSpace(source) == "" {
		return &Report{}, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	s := &session{cfg: e.cfg, report: &Report{}}
	registerBuiltins(env, s)
	registerSolidBuiltins(env, s)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}
	return s.report, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values,
// extracting the line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
