package script

import (
	"io"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/require"
	"github.com/dop251/goja_nodejs/util"
)

const ModuleName = "console"

// Console is the script-side console; every line goes to writer.
type Console struct {
	runtime *goja.Runtime
	util    *goja.Object
	writer  io.Writer
}

func (c *Console) log(call goja.FunctionCall) goja.Value {
	if format, ok := goja.AssertFunction(c.util.Get("format")); ok {
		ret, err := format(c.util, call.Arguments...)
		if err != nil {
			panic(err)
		}
		_, _ = io.WriteString(c.writer, ret.String()+"\n")
	} else {
		panic(c.runtime.NewTypeError("util.format is not a function"))
	}
	return nil
}

func requireWithWriter(writer io.Writer) require.ModuleLoader {
	return func(runtime *goja.Runtime, module *goja.Object) {
		c := &Console{
			runtime: runtime,
			writer:  writer,
		}

		c.util = require.Require(runtime, util.ModuleName).(*goja.Object)

		o := module.Get("exports").(*goja.Object)
		_ = o.Set("log", c.log)
		_ = o.Set("error", c.log)
		_ = o.Set("warn", c.log)
	}
}

func enableConsole(runtime *goja.Runtime) {
	_ = runtime.Set("console", require.Require(runtime, ModuleName))
}
