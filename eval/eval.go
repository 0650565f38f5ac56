package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/recordkit/container"
	"github.com/signadot/recordkit/debug"
)

// Program is a compiled expression.
type Program struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) String() string {
	return p.src
}

// Run evaluates p with the fields of rec as variables.
func (p *Program) Run(rec *container.Record) (any, error) {
	env, err := NewEnv(rec)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", p.src, rec.Type().Name())
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q = %v\n", p.src, res)
	}
	return res, nil
}

// Bool runs p and requires a boolean result.
func (p *Program) Bool(rec *container.Record) (bool, error) {
	res, err := p.Run(rec)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%q returned %T, not bool", p.src, res)
	}
	return b, nil
}

// Eval compiles and runs src on rec.
func Eval(src string, rec *container.Record) (any, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run(rec)
}

// Filter returns the records for which src is true, in order.
func Filter(src string, recs []*container.Record) ([]*container.Record, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	var res []*container.Record
	for i, rec := range recs {
		ok, err := p.Bool(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if ok {
			res = append(res, rec)
		}
	}
	return res, nil
}
