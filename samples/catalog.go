package samples

import (
	"github.com/wippyai/wasm-builder/builder"
	"github.com/wippyai/wasm-builder/wasm"
)

var (
	binaryI32 = wasm.FuncOf(wasm.I32, wasm.I32).Returning(wasm.I32)
	unaryI32  = wasm.FuncOf(wasm.I32).Returning(wasm.I32)
)

// Add exports add(a, b i32) i32.
func Add() (*wasm.Module, error) {
	b := builder.NewModuleBuilder()
	add := b.NewFunction(builder.NewFunctionBuilder(binaryI32).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[0]).LocalGet(p[1]).I32Add()
		}).
		Build())
	b.ExportFunction("add", add.Space())
	return b.Build()
}

// Fibonacci exports fib(n i32) i32, computed recursively.
func Fibonacci() (*wasm.Module, error) {
	b := builder.NewModuleBuilder()
	self := b.NextFunctionIndex().Space()

	fib := builder.NewFunctionBuilder(unaryI32).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			n := p[0]
			c.LocalGet(n).I32Const(2).I32LtS().
				If(wasm.BlockResult(wasm.I32)).
				LocalGet(n).
				Else().
				LocalGet(n).I32Const(1).I32Sub().Call(self).
				LocalGet(n).I32Const(2).I32Sub().Call(self).
				I32Add().
				End()
		}).
		Build()

	b.ExportFunction("fib", b.NewFunction(fib).Space())
	return b.Build()
}

// Factorial exports fact(n i64) i64, computed with a loop.
func Factorial() (*wasm.Module, error) {
	b := builder.NewModuleBuilder()

	fb := builder.NewFunctionBuilder(wasm.FuncOf(wasm.I64).Returning(wasm.I64))
	acc := fb.AddLocal(wasm.I64)
	fb.Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
		n := p[0]
		c.I64Const(1).LocalSet(acc).
			Block(wasm.BlockEmpty).
			Loop(wasm.BlockEmpty).
			LocalGet(n).I64Eqz().BrIf(1).
			LocalGet(acc).LocalGet(n).I64Mul().LocalSet(acc).
			LocalGet(n).I64Const(1).I64Sub().LocalSet(n).
			Br(0).
			End().
			End().
			LocalGet(acc)
	})

	b.ExportFunction("fact", b.NewFunction(fb.Build()).Space())
	return b.Build()
}

// Greeting is the data segment placed at GreetingOffset by the memory sample.
const (
	Greeting       = "Hello, wasm!"
	GreetingOffset = 8
)

// Memory exports one page of memory holding Greeting, plus functions that
// read, write and grow it.
func Memory() (*wasm.Module, error) {
	b := builder.NewModuleBuilder()
	mem := b.AddMemory(wasm.MemoryType{Limits: wasm.Limits(1).WithMax(4)})
	b.AddData(mem, wasm.ConstI32(GreetingOffset), []byte(Greeting))
	b.ExportMemory("memory", mem)

	// sum_bytes(ptr, len i32) i32
	sum := builder.NewFunctionBuilder(binaryI32)
	total := sum.AddLocal(wasm.I32)
	sum.Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
		ptr, n := p[0], p[1]
		c.Block(wasm.BlockEmpty).
			Loop(wasm.BlockEmpty).
			LocalGet(n).I32Eqz().BrIf(1).
			LocalGet(total).LocalGet(ptr).I32Load8U(0, 0).I32Add().LocalSet(total).
			LocalGet(ptr).I32Const(1).I32Add().LocalSet(ptr).
			LocalGet(n).I32Const(1).I32Sub().LocalSet(n).
			Br(0).
			End().
			End().
			LocalGet(total)
	})
	b.ExportFunction("sum_bytes", b.NewFunction(sum.Build()).Space())

	store := builder.NewFunctionBuilder(wasm.FuncOf(wasm.I32, wasm.I32)).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[0]).LocalGet(p[1]).I32Store(2, 0)
		}).
		Build()
	b.ExportFunction("store", b.NewFunction(store).Space())

	load := builder.NewFunctionBuilder(unaryI32).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[0]).I32Load(2, 0)
		}).
		Build()
	b.ExportFunction("load", b.NewFunction(load).Space())

	grow := builder.NewFunctionBuilder(unaryI32).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[0]).MemoryGrow()
		}).
		Build()
	b.ExportFunction("grow", b.NewFunction(grow).Space())

	size := builder.NewFunctionBuilder(wasm.FuncOf().Returning(wasm.I32)).
		Code(func(c *builder.CodeBuilder, _ []wasm.LocalIndex) {
			c.MemorySize()
		}).
		Build()
	b.ExportFunction("size", b.NewFunction(size).Space())

	return b.Build()
}

// Dispatch exports dispatch(op, a, b i32) i32, which calls table[op] with
// a and b. Slots 0..2 hold add, sub and mul.
func Dispatch() (*wasm.Module, error) {
	b := builder.NewModuleBuilder()
	sig := b.TypeOf(binaryI32)

	ops := []func(*builder.CodeBuilder) *builder.CodeBuilder{
		(*builder.CodeBuilder).I32Add,
		(*builder.CodeBuilder).I32Sub,
		(*builder.CodeBuilder).I32Mul,
	}
	refs := make([]wasm.FunctionSpaceIndex, len(ops))
	for i, op := range ops {
		f := builder.NewFunctionBuilder(binaryI32).
			Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
				op(c.LocalGet(p[0]).LocalGet(p[1]))
			}).
			Build()
		refs[i] = b.NewFunction(f).Space()
	}

	n := uint32(len(refs))
	tbl := b.AddTable(wasm.TableType{Element: wasm.AnyFunc, Limits: wasm.Limits(n).WithMax(n)})
	b.AddElement(tbl, wasm.ConstI32(0), refs...)

	dispatch := builder.NewFunctionBuilder(wasm.FuncOf(wasm.I32, wasm.I32, wasm.I32).Returning(wasm.I32)).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[1]).LocalGet(p[2]).LocalGet(p[0]).CallIndirect(sig)
		}).
		Build()
	b.ExportFunction("dispatch", b.NewFunction(dispatch).Space())
	return b.Build()
}

// CounterStart is the value the counter sample's start function stores.
const CounterStart = 10

// Counter keeps a mutable global that the start function sets to
// CounterStart. next() adds the exported immutable global "step" and
// returns the new value.
func Counter() (*wasm.Module, error) {
	b := builder.NewModuleBuilder()
	step := b.AddGlobal(wasm.GlobalType{Content: wasm.I32}, wasm.ConstI32(1))
	count := b.AddGlobal(wasm.GlobalType{Content: wasm.I32, Mutable: true}, wasm.ConstI32(0))
	b.ExportGlobal("step", step)

	setup := builder.NewFunctionBuilder(wasm.FuncOf()).
		Code(func(c *builder.CodeBuilder, _ []wasm.LocalIndex) {
			c.I32Const(CounterStart).GlobalSet(count)
		}).
		Build()
	b.SetStart(b.NewFunction(setup).Space())

	next := builder.NewFunctionBuilder(wasm.FuncOf().Returning(wasm.I32)).
		Code(func(c *builder.CodeBuilder, _ []wasm.LocalIndex) {
			c.GlobalGet(count).GlobalGet(step).I32Add().GlobalSet(count).
				GlobalGet(count)
		}).
		Build()
	b.ExportFunction("next", b.NewFunction(next).Space())

	get := builder.NewFunctionBuilder(wasm.FuncOf().Returning(wasm.I32)).
		Code(func(c *builder.CodeBuilder, _ []wasm.LocalIndex) {
			c.GlobalGet(count)
		}).
		Build()
	b.ExportFunction("get", b.NewFunction(get).Space())
	return b.Build()
}

// Imports pulls env.print_i32 and env.print_i64 and defines double and run.
// run(n) prints double(n) and then n widened to i64, so the local call to
// double lands after both imports in the function space.
func Imports() (*wasm.Module, error) {
	b := builder.NewModuleBuilder()
	printI32 := b.ImportFunction("env", "print_i32", wasm.FuncOf(wasm.I32))
	printI64 := b.ImportFunction("env", "print_i64", wasm.FuncOf(wasm.I64))

	double := b.NewFunction(builder.NewFunctionBuilder(unaryI32).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[0]).I32Const(1).I32Shl()
		}).
		Build())

	run := builder.NewFunctionBuilder(wasm.FuncOf(wasm.I32)).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[0]).Call(double.Space()).Call(printI32).
				LocalGet(p[0]).I64ExtendI32S().Call(printI64)
		}).
		Build()

	b.ExportFunction("double", double.Space())
	b.ExportFunction("run", b.NewFunction(run).Space())
	return b.Build()
}
