// Package rpn evaluates reverse polish notation expressions on a linked stack.
package rpn

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"

	"github.com/adamluzsi/lifo/pkg/datastruct"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/port/option"
)

const (
	ErrEmptyExpression  errorkit.Error = "ErrEmptyExpression"
	ErrStackUnderflow   errorkit.Error = "ErrStackUnderflow"
	ErrUnknownToken     errorkit.Error = "ErrUnknownToken"
	ErrNumberOutOfRange errorkit.Error = "ErrNumberOutOfRange"
	ErrDivisionByZero   errorkit.Error = "ErrDivisionByZero"
	ErrLeftoverOperands errorkit.Error = "ErrLeftoverOperands"
)

// Step describes the state of the evaluation right after a token was processed.
type Step struct {
	Position int
	Token    string
	// Stack holds the operands from top to bottom.
	Stack []float64
}

type Option interface {
	option.Option[Config]
}

type Config struct {
	// Trace is called after every evaluated token.
	Trace func(Step)
}

func (c Config) Configure(o *Config) {
	if c.Trace != nil {
		o.Trace = c.Trace
	}
}

// Trace registers a callback that observes every evaluation step.
func Trace(fn func(Step)) Option {
	return Config{Trace: fn}
}

type binaryOp func(a, b float64) (float64, error)

var binaryOps = map[string]binaryOp{
	"+": func(a, b float64) (float64, error) { return a + b, nil },
	"-": func(a, b float64) (float64, error) { return a - b, nil },
	"*": func(a, b float64) (float64, error) { return a * b, nil },
	"/": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	},
	"%": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return math.Mod(a, b), nil
	},
	"^": func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
}

// unary operators rewrite the top operand in place
var unaryOps = map[string]func(float64) float64{
	"neg":  func(v float64) float64 { return -v },
	"abs":  math.Abs,
	"sqrt": math.Sqrt,
}

// Eval evaluates the tokens and returns the single value left on the stack.
func Eval(ctx context.Context, tokens iter.Seq[string], opts ...Option) (float64, error) {
	c := option.ToConfig[Config](opts)
	var (
		operands datastruct.Stack[float64]
		position int
	)
	defer operands.Clear()
	for token := range tokens {
		position++
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		logger.Debug(ctx, "rpn token", logging.Field("position", position), logging.Field("token", token))
		if err := apply(&operands, token); err != nil {
			return 0, fmt.Errorf("token %q at position %d: %w", token, position, err)
		}
		if c.Trace != nil {
			c.Trace(Step{Position: position, Token: token, Stack: snapshot(&operands)})
		}
	}
	if position == 0 {
		return 0, ErrEmptyExpression
	}
	result, ok := operands.Pop()
	if !ok {
		return 0, ErrStackUnderflow.F("no result left after %d tokens", position)
	}
	if !operands.IsEmpty() {
		return 0, ErrLeftoverOperands.F("%d operand(s) left unused", operands.Len())
	}
	return result, nil
}

func apply(operands *datastruct.Stack[float64], token string) error {
	if op, ok := binaryOps[token]; ok {
		b, ok := operands.Pop()
		if !ok {
			return ErrStackUnderflow
		}
		a, ok := operands.Pop()
		if !ok {
			return ErrStackUnderflow
		}
		v, err := op(a, b)
		if err != nil {
			return err
		}
		operands.Push(v)
		return nil
	}
	if op, ok := unaryOps[token]; ok {
		top, ok := operands.PeekMut()
		if !ok {
			return ErrStackUnderflow
		}
		*top = op(*top)
		return nil
	}
	switch token {
	case "dup":
		v, ok := operands.Peek()
		if !ok {
			return ErrStackUnderflow
		}
		operands.Push(v)
		return nil
	case "drop":
		if _, ok := operands.Pop(); !ok {
			return ErrStackUnderflow
		}
		return nil
	case "swap":
		b, ok := operands.Pop()
		if !ok {
			return ErrStackUnderflow
		}
		a, ok := operands.Pop()
		if !ok {
			operands.Push(b)
			return ErrStackUnderflow
		}
		operands.Push(b)
		operands.Push(a)
		return nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if errors.Is(err, strconv.ErrRange) {
		return ErrNumberOutOfRange.Wrap(err)
	}
	// nan and inf parse as floats but are not accepted as literals
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrUnknownToken
	}
	operands.Push(v)
	return nil
}

func snapshot(operands *datastruct.Stack[float64]) []float64 {
	var vs []float64
	for it := operands.Iter(); it.Next(); {
		vs = append(vs, it.Value())
	}
	return vs
}
