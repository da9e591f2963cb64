// Package wasm models and encodes WebAssembly 1.0 (MVP) binary modules.
//
// The package is write-only: it builds the binary form of a Module and never
// parses one.
//
// # Index Spaces
//
// Every numbering space has its own index type (TypeIndex, FunctionIndex,
// TableIndex, MemoryIndex, GlobalIndex, LocalIndex, ...), so a value from one
// space cannot be passed where another is expected.
//
// Calls, exports, the start function and element segments address the merged
// function space, where imported functions are numbered before local ones.
// FunctionSpaceIndex records which half a reference points into:
//
//	imp := wasm.ImportedFunction(0)      // first function import
//	loc := wasm.FunctionIndex(0).Space() // first local function
//
// Local references inside bodies are shifted by the number of function
// imports in one explicit pass:
//
//	if err := module.ResolveFunctions(); err != nil {
//	    return err
//	}
//
// The pass runs once per body. Running it twice, or encoding a body that was
// never resolved, is reported as an error.
//
// # Instructions
//
// Instruction is a closed set of types, one per operand shape:
//
//	code := []wasm.Instruction{
//	    wasm.LocalGet{Local: 0},
//	    wasm.LocalGet{Local: 1},
//	    wasm.I32Add,
//	    wasm.Call{Func: loc},
//	    wasm.I32Load(2, 0),
//	}
//
// Bodies and initializer expressions omit the final end; the encoder adds it.
//
// # Encoding
//
//	bin, err := module.Encode()
//
// The output starts with the magic and version, followed by sections 1 through
// 11 in order. Sections with no entries are omitted.
//
// # Validation
//
// Validate checks structural well-formedness: index bounds, function and code
// pairing, single table and memory, constant initializers, unique export names
// and the start function signature. Bodies are not type-checked.
package wasm
