// Command robust3d evaluates geometry query programs and prints the result
// of every intersection they run.
//
// Usage:
//
//	robust3d [-precision float32|float64] [-widen=false] [-timeout 5s] [-json] [-q] file...
//
// With no files, the program is read from standard input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/robust3d/pkg/engine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("robust3d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	precision := fs.String("precision", "float64", "arithmetic precision: float32 or float64")
	widen := fs.Bool("widen", true, "recompute float32 overflows in float64")
	timeout := fs.Duration("timeout", engine.EvalTimeout, "evaluation time limit per program")
	asJSON := fs.Bool("json", false, "print results as JSON")
	quiet := fs.Bool("q", false, "suppress engine log output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	prec, err := engine.ParsePrecision(*precision)
	if err != nil {
		fmt.Fprintf(stderr, "robust3d: %v\n", err)
		return 2
	}
	if *timeout <= 0 {
		*timeout = engine.EvalTimeout
	}

	cfg := engine.DefaultConfig()
	cfg.Precision = prec
	cfg.WidenOnOverflow = *widen
	cfg.Timeout = *timeout
	cfg.Logger = log.New(stderr, "robust3d: ", 0)
	if *quiet {
		cfg.Logger = quietLogger()
	}
	app := NewApp(cfg)

	var results []EvalResult
	if fs.NArg() == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "robust3d: reading stdin: %v\n", err)
			return 1
		}
		results = append(results, app.Evaluate(string(src)))
	}
	for _, path := range fs.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "robust3d: %v\n", err)
			return 1
		}
		r := app.Evaluate(string(src))
		r.Source = path
		results = append(results, r)
	}

	status := 0
	for _, r := range results {
		if r.Failed() {
			status = 1
		}
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(stderr, "robust3d: %v\n", err)
			return 1
		}
		return status
	}
	for _, r := range results {
		if err := r.WriteText(stdout); err != nil {
			fmt.Fprintf(stderr, "robust3d: %v\n", err)
			return 1
		}
	}
	return status
}
