// Package builder assembles wasm.Module values without hand-numbering
// indices.
//
// A ModuleBuilder owns one module under construction. Each insertion appends
// to the matching index space and returns the index the entity now has:
//
//	b := builder.NewModuleBuilder()
//	logI32 := b.ImportFunction("env", "print_i32", wasm.FuncOf(wasm.I32))
//
//	add := builder.NewFunctionBuilder(wasm.FuncOf(wasm.I32, wasm.I32).Returning(wasm.I32)).
//		Code(func(c *builder.CodeBuilder, params []wasm.LocalIndex) {
//			c.LocalGet(params[0]).LocalGet(params[1]).I32Add()
//		}).
//		Build()
//	fn := b.NewFunction(add)
//	b.ExportFunction("add", fn.Space())
//
//	module, err := b.Build()
//
// Function references inside bodies stay local-relative until Build, which
// runs the resolution pass once all imports are known. Build also validates
// the module and finalizes the builder.
//
// Mistakes that the index types cannot rule out (a segment aimed at table or
// memory 1, an import placed after a definition it would renumber, use after
// Build) are recorded when they happen and returned by Build. The first one
// wins. A ModuleBuilder is not safe for concurrent use.
package builder
