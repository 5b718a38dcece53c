package main

import (
	"bufio"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/adamluzsi/lifo/internal/rpn"
	"github.com/adamluzsi/lifo/pkg/datastruct"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// ReverseCommand prints the lines of its input in last-in-first-out order.
type ReverseCommand struct {
	SkipEmpty bool `flag:"skip-empty" env:"LIFO_SKIP_EMPTY" desc:"ignore blank lines"`
	Limit     int  `flag:"limit" env:"LIFO_LIMIT" desc:"keep only the last N lines, 0 means all"`
}

func (cmd ReverseCommand) Summary() string { return "print stdin lines in reverse order" }

func (cmd ReverseCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	if r.Body == nil {
		return
	}
	var (
		lines datastruct.Stack[string]
		count int
	)
	defer lines.Clear()
	for line, err := range iterkit.BufioScanner[string](bufio.NewScanner(r.Body), nil) {
		if err != nil {
			logger.Error(ctx, "error while reading input lines", logging.ErrField(err))
			handleError(w, err)
			return
		}
		if cmd.SkipEmpty && strings.TrimSpace(line) == "" {
			continue
		}
		lines.Push(line)
		count++
	}
	logger.Debug(ctx, "lines collected", logging.Field("count", count))

	out, err := iterkit.CollectPullIter[string](lines.IntoIter())
	if err != nil {
		handleError(w, err)
		return
	}
	if 0 < cmd.Limit && cmd.Limit < len(out) {
		out = out[:cmd.Limit]
	}
	for _, line := range out {
		fmt.Fprintln(w, line)
	}
}

// RPNCommand evaluates a reverse polish notation expression.
type RPNCommand struct {
	Precision int  `flag:"precision" default:"6" desc:"maximum number of decimals in the result"`
	Trace     bool `flag:"trace" env:"LIFO_RPN_TRACE" desc:"print the operand stack after every token"`
}

func (cmd RPNCommand) Summary() string { return "evaluate a reverse polish notation expression" }

func (cmd RPNCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	tokens, err := cmd.tokens(r)
	if err != nil {
		handleError(w, err)
		return
	}
	var opts []rpn.Option
	if cmd.Trace {
		opts = append(opts, rpn.Trace(func(step rpn.Step) {
			fmt.Fprintf(w, "%-8s %s\n", step.Token, cmd.formatStack(step.Stack))
		}))
	}
	result, err := rpn.Eval(ctx, tokens, opts...)
	if err != nil {
		logger.Debug(ctx, "rpn evaluation failed", logging.ErrField(err))
		handleError(w, err)
		return
	}
	fmt.Fprintln(w, cmd.format(result))
}

func (cmd RPNCommand) tokens(r *cli.Request) (iter.Seq[string], error) {
	if 0 < len(r.Args) {
		var fields []string
		for _, arg := range r.Args {
			fields = append(fields, strings.Fields(arg)...)
		}
		return slices.Values(fields), nil
	}
	if r.Body == nil {
		return slices.Values([]string(nil)), nil
	}
	scanner := bufio.NewScanner(r.Body)
	scanner.Split(bufio.ScanWords)
	var fields []string
	for field, err := range iterkit.BufioScanner[string](scanner, nil) {
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return slices.Values(fields), nil
}

func (cmd RPNCommand) formatStack(vs []float64) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, cmd.format(v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// format prints the shortest representation, rounded to Precision decimals when that is shorter.
func (cmd RPNCommand) format(v float64) string {
	exact := strconv.FormatFloat(v, 'f', -1, 64)
	if cmd.Precision < 0 {
		return exact
	}
	rounded := strconv.FormatFloat(v, 'f', cmd.Precision, 64)
	if len(rounded) < len(exact) {
		if strings.Contains(rounded, ".") {
			rounded = strings.TrimRight(strings.TrimRight(rounded, "0"), ".")
		}
		return rounded
	}
	return exact
}

func handleError(w cli.Response, err error) {
	if err == nil {
		return
	}
	w.ExitCode(cli.ExitCodeError)
	fmt.Fprintf(w, "%s\n", err.Error())
}
