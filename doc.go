// Package wasmbuilder assembles WebAssembly 1.0 (MVP) modules in Go and
// encodes them to the binary format.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	wasmbuilder/
//	├── wasm/            Module model, instruction set, validation and binary encoder
//	├── builder/         Incremental module construction with index bookkeeping
//	├── engine/          wazero-backed loader for running emitted modules
//	├── samples/         Catalog of small modules built with the builder
//	├── errors/          Structured error types for debugging
//	└── cmd/wasmgen/     CLI and TUI for listing, building, inspecting and running samples
//
// # Quick Start
//
// Build and encode a module exporting add(i32, i32) i32:
//
//	b := builder.NewModuleBuilder()
//	add := b.NewFunction(builder.NewFunctionBuilder(
//		wasm.FuncOf(wasm.I32, wasm.I32).Returning(wasm.I32)).
//		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
//			c.LocalGet(p[0]).LocalGet(p[1]).I32Add()
//		}).
//		Build())
//	b.ExportFunction("add", add.Space())
//
//	m, err := b.Build()
//	if err != nil {
//		return err
//	}
//	bin, err := m.Encode()
//
// # Function Indices
//
// Functions share one index space in which imports come first. The builder
// hands out local indices while the module is assembled; Build shifts call
// targets past the function imports once, so imports may be declared at any
// point before Build.
//
// # Logging
//
// The builder and engine packages log through zap. Both use a no-op logger
// until SetLogger is called.
package wasmbuilder
