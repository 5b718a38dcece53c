package rpn_test

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/adamluzsi/lifo/internal/rpn"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestEval(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	var (
		ctx        = let.Context(s)
		expression = let.VarOf(s, "3 4 +")
		opts       = let.Var(s, func(t *testcase.T) []rpn.Option { return nil })
	)
	act := let.Act2(func(t *testcase.T) (float64, error) {
		tokens := slices.Values(strings.Fields(expression.Get(t)))
		return rpn.Eval(ctx.Get(t), tokens, opts.Get(t)...)
	})

	s.Then("the expression is evaluated", func(t *testcase.T) {
		got, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, 7.0, got)
	})

	s.Test("operators", func(t *testcase.T) {
		for expr, exp := range map[string]float64{
			"5 1 2 + 4 * + 3 -": 14,
			"10 4 -":            6,
			"2 3 ^":             8,
			"7 2 %":             1,
			"9 2 /":             4.5,
			"4 neg":             -4,
			"16 neg abs sqrt":   4,
			"3 dup *":           9,
			"1 2 swap -":        1,
			"1 2 drop":          1,
			"-1.5":              -1.5,
		} {
			expression.Set(t, expr)
			got, err := act(t)
			assert.NoError(t, err, assert.MessageF("expression: %s", expr))
			assert.Equal(t, exp, got, assert.MessageF("expression: %s", expr))
		}
	})

	s.When("the expression is empty", func(s *testcase.Spec) {
		expression.LetValue(s, "")

		s.Then("it is reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rpn.ErrEmptyExpression)
		})
	})

	s.When("an operator has not enough operands", func(s *testcase.Spec) {
		expression.Let(s, func(t *testcase.T) string {
			return random.Pick(t.Random, "+", "1 *", "neg", "dup", "drop", "2 swap")
		})

		s.Then("stack underflow is reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rpn.ErrStackUnderflow)
		})
	})

	s.When("dividing by zero", func(s *testcase.Spec) {
		expression.Let(s, func(t *testcase.T) string {
			return random.Pick(t.Random, "1 0 /", "1 0 %")
		})

		s.Then("division by zero is reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rpn.ErrDivisionByZero)
		})
	})

	s.When("a token is neither a number nor an operator", func(s *testcase.Spec) {
		expression.LetValue(s, "1 two +")

		s.Then("the token and its position are reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rpn.ErrUnknownToken)
			assert.Contains(t, err.Error(), `"two"`)
			assert.Contains(t, err.Error(), "position 2")
		})
	})

	s.When("a non-finite literal is given", func(s *testcase.Spec) {
		expression.Let(s, func(t *testcase.T) string {
			return random.Pick(t.Random, "nan", "NaN", "inf", "-inf", "+Inf", "infinity", "1 nan +")
		})

		s.Then("it is rejected as an unknown token", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rpn.ErrUnknownToken)
		})
	})

	s.When("a number does not fit into a float64", func(s *testcase.Spec) {
		expression.Let(s, func(t *testcase.T) string {
			return random.Pick(t.Random, "1e400", "-1e400", "1 1e400 +")
		})

		s.Then("it is reported as out of range rather than unknown", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rpn.ErrNumberOutOfRange)
			assert.True(t, errors.Is(err, strconv.ErrRange))
			assert.False(t, errors.Is(err, rpn.ErrUnknownToken))
		})
	})

	s.When("operands are left unused", func(s *testcase.Spec) {
		expression.LetValue(s, "1 2 3 +")

		s.Then("it is reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, rpn.ErrLeftoverOperands)
		})
	})

	s.When("the context is already cancelled", func(s *testcase.Spec) {
		ctx.Let(s, func(t *testcase.T) context.Context {
			c, cancel := context.WithCancel(context.Background())
			cancel()
			return c
		})

		s.Then("the context error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, context.Canceled)
		})
	})

	s.When("tracing is enabled", func(s *testcase.Spec) {
		steps := let.Var(s, func(t *testcase.T) []rpn.Step { return nil })
		expression.LetValue(s, "1 2 + neg")
		opts.Let(s, func(t *testcase.T) []rpn.Option {
			return []rpn.Option{rpn.Trace(func(step rpn.Step) {
				testcase.Append(t, steps, step)
			})}
		})

		s.Then("every step is observed with the operands from top to bottom", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, -3.0, got)
			assert.Equal(t, []rpn.Step{
				{Position: 1, Token: "1", Stack: []float64{1}},
				{Position: 2, Token: "2", Stack: []float64{2, 1}},
				{Position: 3, Token: "+", Stack: []float64{3}},
				{Position: 4, Token: "neg", Stack: []float64{-3}},
			}, steps.Get(t))
		})
	})
}
