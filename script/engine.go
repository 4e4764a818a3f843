package script

import (
	"fmt"
	"io"
	"math"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"github.com/dop251/goja_nodejs/util"

	"seqlist/list"
	"seqlist/logger"
)

// Engine turns JavaScript snippets into list behaviour. Elements are bound
// as `e` (comparators get `a` and `b`); struct fields are visible under
// their json names. An Engine owns one goja runtime and is not safe for
// concurrent use.
type Engine struct {
	vm  *goja.Runtime
	out io.Writer
}

type Option func(e *Engine)

// WithOutput sends console.log from scripts to w instead of the logger.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		vm:  goja.New(),
		out: logger.Writer(logger.INFO),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	registry := require.NewRegistry()
	registry.RegisterNativeModule(util.ModuleName, util.Require)
	registry.RegisterNativeModule(ModuleName, requireWithWriter(e.out))
	registry.Enable(e.vm)
	enableConsole(e.vm)
	return e
}

func (e *Engine) compile(params, body string) (goja.Callable, error) {
	v, err := e.vm.RunString(fmt.Sprintf("(function(%s) { %s })", params, body))
	if err != nil {
		return nil, fmt.Errorf("compile script: %w", err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("compile script: %q is not a function body", body)
	}
	return fn, nil
}

func (e *Engine) call(fn goja.Callable, src string, args ...any) (goja.Value, bool) {
	vals := make([]goja.Value, len(args))
	for i, a := range args {
		vals[i] = e.vm.ToValue(a)
	}
	ret, err := fn(goja.Undefined(), vals...)
	if err != nil {
		logger.Error(fmt.Sprintf("script %q failed: %s", src, err.Error()))
		return nil, false
	}
	return ret, true
}

// Predicate compiles an expression such as `e.age >= 18`.
func Predicate[T any](e *Engine, src string) (list.Predicate[T], error) {
	fn, err := e.compile("e", "return ("+src+");")
	if err != nil {
		return nil, err
	}
	return func(v *T) bool {
		ret, ok := e.call(fn, src, v)
		return ok && ret.ToBoolean()
	}, nil
}

// Mutator compiles statements such as `e.age++`.
func Mutator[T any](e *Engine, src string) (list.Mutator[T], error) {
	fn, err := e.compile("e", src+";")
	if err != nil {
		return nil, err
	}
	return func(v *T) {
		e.call(fn, src, v)
	}, nil
}

// Renderer compiles an expression producing the element's text.
func Renderer[T any](e *Engine, src string) (list.Renderer[T], error) {
	fn, err := e.compile("e", "return String("+src+");")
	if err != nil {
		return nil, err
	}
	return func(v *T) string {
		ret, ok := e.call(fn, src, v)
		if !ok {
			return "<script error>"
		}
		return ret.String()
	}, nil
}

// Comparator compiles a three-way comparison of `a` (the element) and `b`
// (the key), e.g. `a.id - b.id`. A failing script never reports equality.
func Comparator[T any](e *Engine, src string) (list.Comparator[T], error) {
	fn, err := e.compile("a, b", "return ("+src+");")
	if err != nil {
		return nil, err
	}
	return func(v *T, key *T) int {
		ret, ok := e.call(fn, src, v, key)
		if !ok {
			return 1
		}
		if goja.IsUndefined(ret) || goja.IsNull(ret) {
			logger.Error(fmt.Sprintf("script %q returned %s, not a number", src, ret.String()))
			return 1
		}
		n := ret.ToFloat()
		if math.IsNaN(n) {
			logger.Error(fmt.Sprintf("script %q returned NaN", src))
			return 1
		}
		switch {
		case n < 0:
			return -1
		case n > 0:
			return 1
		}
		return 0
	}, nil
}
