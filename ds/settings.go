package ds

import (
	"errors"
	"log/slog"
	"maps"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/dsys/geom"
)

// Errors reported by the expression evaluator.
var (
	ErrExprCompile  = NewError("expression compilation failed")
	ErrExprEvaluate = NewError("expression evaluation failed")
	ErrExprResult   = NewError("expression result is not numeric")
)

// Settings is the per-document context shared by every node of one document.
// It holds the enum table used for token substitution and evaluates numeric
// literals as arithmetic expressions with the enum names bound to constants.
//
// A nil *Settings is valid and behaves like one with an empty enum table.
// Settings is not safe for concurrent use.
type Settings struct {
	enums    map[string]string
	env      map[string]any
	programs map[string]*vm.Program
}

// NewSettings returns Settings for the given enum table. The map is copied.
func NewSettings(enums map[string]string) *Settings {
	s := &Settings{
		enums:    maps.Clone(enums),
		env:      make(map[string]any, len(enums)),
		programs: make(map[string]*vm.Program),
	}

	if s.enums == nil {
		s.enums = map[string]string{}
	}

	for name, text := range s.enums {
		s.env[name] = geom.ParseScalar(text)
	}

	return s
}

// Enums returns a copy of the enum table.
func (s *Settings) Enums() map[string]string {
	if s == nil {
		return map[string]string{}
	}

	return maps.Clone(s.enums)
}

// Enum returns the replacement text registered for name.
func (s *Settings) Enum(name string) (string, bool) {
	if s == nil {
		return "", false
	}

	text, ok := s.enums[name]

	return text, ok
}

// Substitute returns the enum replacement for tok, or tok itself when it does
// not name an enum.
func (s *Settings) Substitute(tok string) string {
	if text, ok := s.Enum(tok); ok {
		return text
	}

	return tok
}

// Eval compiles and runs src as an arithmetic expression. Numeric results are
// widened to float64 and booleans become 1 or 0. Any other result type is
// reported as [ErrExprResult].
func (s *Settings) Eval(src string) (float64, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return 0, ErrExprCompile.With(slog.String("source", src))
	}

	program, err := s.compile(src)
	if err != nil {
		return 0, err
	}

	var env map[string]any
	if s != nil {
		env = s.env
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return 0, ErrExprEvaluate.Wrap(err).
			With(slog.String("source", src))
	}

	f, ok := toFloat(result)
	if !ok {
		return 0, ErrExprResult.With(
			slog.String("source", src),
			slog.String("result", resultTypeName(result)),
		)
	}

	return f, nil
}

// EvalInt evaluates raw as an expression rounded half away from zero. If raw
// is not a numeric expression its leading integer is used instead, and an
// expression that fails at run time yields 0.
func (s *Settings) EvalInt(raw string) int32 {
	f, err := s.Eval(raw)
	if fallback(err) {
		return clampInt32(float64(geom.ParseInteger(raw)))
	}

	return clampInt32(math.Round(f))
}

// EvalFloat evaluates raw as an expression. If raw is not a numeric
// expression its leading number is used instead, and an expression that fails
// at run time yields NaN.
func (s *Settings) EvalFloat(raw string) float32 {
	f, err := s.Eval(raw)
	switch {
	case fallback(err):
		return float32(geom.ParseScalar(raw))
	case err != nil:
		return float32(math.NaN())
	}

	return float32(f)
}

// fallback reports whether err means raw should be read as plain numeric text.
func fallback(err error) bool {
	return errors.Is(err, ErrExprCompile) || errors.Is(err, ErrExprResult)
}

func (s *Settings) compile(src string) (*vm.Program, error) {
	if s != nil {
		if p, ok := s.programs[src]; ok {
			return p, nil
		}
	}

	var env map[string]any
	if s != nil {
		env = s.env
	}

	if env == nil {
		env = map[string]any{}
	}

	program, err := expr.Compile(src, expr.Env(env), fmod, expr.Operator("%", "fmod"))
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).
			With(slog.String("source", src))
	}

	if s != nil && s.programs != nil {
		s.programs[src] = program
	}

	return program, nil
}

// fmod replaces the integer-only % operator so any pair of numeric operands
// yields the floating-point remainder.
var fmod = expr.Function(
	"fmod",
	func(params ...any) (any, error) {
		x, _ := toFloat(params[0])
		y, _ := toFloat(params[1])

		return math.Mod(x, y), nil
	},
	new(func(int, int) float64),
	new(func(int, float64) float64),
	new(func(float64, int) float64),
	new(func(float64, float64) float64),
)

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}

		return 0, true
	default:
		return 0, false
	}
}

func clampInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}
