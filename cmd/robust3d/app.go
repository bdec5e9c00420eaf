package main

import (
	"fmt"
	"io"
	"log"

	"github.com/chazu/robust3d/pkg/engine"
	"github.com/chazu/robust3d/pkg/numeric"
	"github.com/samber/lo"
)

// App runs query programs and shapes their reports for output.
type App struct {
	engine *engine.Engine
}

// QueryData is the JSON form of one intersect call.
type QueryData struct {
	Index     int         `json:"index"`
	Pair      string      `json:"pair"`
	Code      string      `json:"code"`
	Point     *[3]float64 `json:"point,omitempty"` // nil unless finite
	Precision string      `json:"precision"`
	Widened   bool        `json:"widened,omitempty"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one program.
type EvalResult struct {
	Source   string          `json:"source,omitempty"`
	Queries  []QueryData     `json:"queries"`
	Counts   map[string]int  `json:"counts"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates an App around an engine built from cfg.
func NewApp(cfg engine.Config) *App {
	return &App{engine: engine.NewEngineWithConfig(cfg)}
}

// Evaluate runs source and converts the outcome. It never returns nil.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Queries:  []QueryData{},
		Counts:   map[string]int{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	rep, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// the engine has already logged it
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return result
	}

	for _, q := range rep.Queries {
		qd := QueryData{
			Index:     q.Index,
			Pair:      q.Pair,
			Code:      q.Code.String(),
			Precision: q.Precision.String(),
			Widened:   q.Widened,
		}
		// non-ok queries carry an infinite sentinel, which JSON cannot encode
		if q.HasPoint && lo.EveryBy(q.Point[:], numeric.IsValid[float64]) {
			p := q.Point
			qd.Point = &p
		}
		result.Queries = append(result.Queries, qd)
	}
	for code, n := range rep.Counts() {
		result.Counts[code.String()] = n
	}
	for _, w := range rep.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Line: w.Line, Col: w.Col, Message: w.Message})
	}
	return result
}

// Failed reports whether the program did not run to completion.
func (r EvalResult) Failed() bool {
	return len(r.Errors) > 0
}

// WriteText prints r one line per query, then warnings and errors.
func (r EvalResult) WriteText(w io.Writer) error {
	prefix := ""
	if r.Source != "" {
		prefix = r.Source + ": "
	}
	for _, q := range r.Queries {
		line := fmt.Sprintf("%squery %d %s %s", prefix, q.Index, q.Pair, q.Code)
		if q.Point != nil {
			line += fmt.Sprintf(" (%g, %g, %g)", q.Point[0], q.Point[1], q.Point[2])
		}
		if q.Widened {
			line += " [widened]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, e := range r.Warnings {
		if _, err := fmt.Fprintf(w, "%swarning: %s\n", prefix, e.Message); err != nil {
			return err
		}
	}
	for _, e := range r.Errors {
		msg := e.Message
		if e.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", e.Line, msg)
		}
		if _, err := fmt.Fprintf(w, "%serror: %s\n", prefix, msg); err != nil {
			return err
		}
	}
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
