package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/chazu/robust3d/pkg/kernel"
	"github.com/chazu/robust3d/pkg/kernel/sdfx"
)

// MeshCells is the marching cubes resolution of the default solid kernel.
const MeshCells = 48

// Precision selects the floating-point type queries are evaluated in.
type Precision int

const (
	Float64 Precision = iota
	Float32
)

func (p Precision) String() string {
	switch p {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// ParsePrecision accepts "float32"/"f32" and "float64"/"f64".
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "float32", "f32":
		return Float32, nil
	case "float64", "f64":
		return Float64, nil
	}
	return 0, fmt.Errorf("unknown precision %q, expected float32 or float64", s)
}

// Config controls how an Engine evaluates query programs.
type Config struct {
	// Precision is the type entities are built in before intersecting.
	Precision Precision

	// WidenOnOverflow recomputes a float32 query in float64 when it
	// overflows. The widened result is flagged on the Query.
	WidenOnOverflow bool

	// Timeout bounds a single evaluation. Zero means EvalTimeout.
	Timeout time.Duration

	// Logger receives fatal evaluation failures and widening notices.
	// Nil means log.Default().
	Logger *log.Logger

	// Kernel backs the solid builtins. Nil means an sdfx kernel at
	// MeshCells resolution.
	Kernel kernel.Kernel
}

// DefaultConfig returns float64 evaluation with the standard timeout.
func DefaultConfig() Config {
	return Config{
		Precision:       Float64,
		WidenOnOverflow: true,
		Timeout:         EvalTimeout,
		Logger:          log.Default(),
		Kernel:          sdfx.NewWithCells(MeshCells),
	}
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = EvalTimeout
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	if c.Kernel == nil {
		c.Kernel = sdfx.NewWithCells(MeshCells)
	}
	return c
}
