// Package engine loads and runs modules produced by the builder.
//
// It wraps a wazero runtime: binaries are compiled, instantiated under a
// name and their exported functions are called with raw uint64 stack
// values, the same representation wazero uses.
//
// # Host Functions
//
// Host functions are declared per import module with DefineHostFunc and
// instantiated lazily by the first Load. Once a host module is live it is
// sealed; defining more functions in it fails with a registration error.
//
//	eng, _ := engine.New(ctx, nil)
//	defer eng.Close(ctx)
//	_ = eng.EnvModule(os.Stdout)         // env.print_i32, env.print_i64
//	inst, _ := eng.Load(ctx, bin, "demo")
//	res, _ := inst.Call(ctx, "add", 2, 3)
//
// # Values
//
// EncodeArg and DecodeResult convert between text and stack values for a
// wasm.ValueType, following the api.Encode*/api.Decode* conventions.
//
// # Thread Safety
//
// Engine is safe for concurrent use. Instance is NOT thread-safe and should
// be used by a single goroutine.
package engine
