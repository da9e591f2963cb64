package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-builder/wasm"
)

// Names of the host functions provided by EnvModule.
const (
	EnvModuleName = "env"
	PrintI32      = "print_i32"
	PrintI64      = "print_i64"
)

// EnvModule defines env.print_i32 and env.print_i64, which write their
// argument to w on its own line.
func (e *Engine) EnvModule(w io.Writer) error {
	printI32 := api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
		fmt.Fprintln(w, api.DecodeI32(stack[0]))
	})
	printI64 := api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
		fmt.Fprintln(w, int64(stack[0]))
	})

	if err := e.DefineHostFunc(EnvModuleName, PrintI32, printI32, []wasm.ValueType{wasm.I32}, nil); err != nil {
		return err
	}
	return e.DefineHostFunc(EnvModuleName, PrintI64, printI64, []wasm.ValueType{wasm.I64}, nil)
}
