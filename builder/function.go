package builder

import (
	"github.com/wippyai/wasm-builder/wasm"
)

// FunctionBuilder assembles one function: its signature, extra locals and
// code. Params occupy local indices 0..n-1; AddLocal continues from there.
type FunctionBuilder struct {
	sig    wasm.FuncType
	code   *CodeBuilder
	params []wasm.LocalIndex
	locals []wasm.LocalEntry
	next   wasm.LocalIndex
}

// NewFunctionBuilder starts a function with signature sig.
func NewFunctionBuilder(sig wasm.FuncType) *FunctionBuilder {
	params := make([]wasm.LocalIndex, len(sig.Params))
	for i := range params {
		params[i] = wasm.LocalIndex(i)
	}
	return &FunctionBuilder{
		sig:    sig,
		code:   NewCodeBuilder(),
		params: params,
		next:   wasm.LocalIndex(len(params)),
	}
}

// Params returns the local indices of the parameters.
func (f *FunctionBuilder) Params() []wasm.LocalIndex {
	return append([]wasm.LocalIndex(nil), f.params...)
}

// AddLocal declares a local of type t and returns its index. Consecutive
// locals of one type share a declaration entry.
func (f *FunctionBuilder) AddLocal(t wasm.ValueType) wasm.LocalIndex {
	idx := f.next
	f.next++
	if n := len(f.locals); n > 0 && f.locals[n-1].Type == t {
		f.locals[n-1].Count++
	} else {
		f.locals = append(f.locals, wasm.LocalEntry{Count: 1, Type: t})
	}
	return idx
}

// Code appends instructions through fn, which receives the parameter indices.
func (f *FunctionBuilder) Code(fn func(c *CodeBuilder, params []wasm.LocalIndex)) *FunctionBuilder {
	fn(f.code, f.Params())
	return f
}

// Build returns the function for ModuleBuilder.NewFunction.
func (f *FunctionBuilder) Build() *Function {
	return &Function{
		Type: f.sig,
		Body: wasm.FunctionBody{
			Locals: append([]wasm.LocalEntry(nil), f.locals...),
			Code:   f.code.Instructions(),
		},
	}
}
