package engine

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/goleak"

	"github.com/wippyai/wasm-builder/builder"
	"github.com/wippyai/wasm-builder/errors"
	"github.com/wippyai/wasm-builder/wasm"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func encode(t *testing.T, b *builder.ModuleBuilder) []byte {
	t.Helper()
	m, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	bin, err := m.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return bin
}

func addModule(t *testing.T) []byte {
	t.Helper()
	b := builder.NewModuleBuilder()
	add := b.NewFunction(builder.NewFunctionBuilder(wasm.FuncOf(wasm.I32, wasm.I32).Returning(wasm.I32)).
		Code(func(c *builder.CodeBuilder, p []wasm.LocalIndex) {
			c.LocalGet(p[0]).LocalGet(p[1]).I32Add()
		}).
		Build())
	trap := b.NewFunction(builder.NewFunctionBuilder(wasm.FuncOf()).
		Code(func(c *builder.CodeBuilder, _ []wasm.LocalIndex) {
			c.Unreachable()
		}).
		Build())
	b.ExportFunction("add", add.Space())
	b.ExportFunction("trap", trap.Space())
	return encode(t, b)
}

func newEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	e, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { e.Close(context.Background()) })
	return e
}

func isErr(err error, phase errors.Phase, kind errors.Kind) bool {
	return stderrors.Is(err, &errors.Error{Phase: phase, Kind: kind})
}

func TestNew(t *testing.T) {
	tests := []struct {
		cfg  *Config
		name string
	}{
		{nil, "nil config"},
		{&Config{}, "default config"},
		{&Config{MemoryLimitPages: 256}, "16MB limit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, tc.cfg)
			if e.runtime == nil {
				t.Error("engine runtime should not be nil")
			}
		})
	}
}

func TestLoadAndCall(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, nil)

	inst, err := e.Load(ctx, addModule(t), "calc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	exports := inst.Exports()
	if len(exports) != 2 || exports[0].Name != "add" || exports[1].Name != "trap" {
		t.Fatalf("Exports() = %+v", exports)
	}
	if got := exports[0].Signature(); got != "(i32, i32) -> i32" {
		t.Errorf("add signature = %q", got)
	}
	if got := exports[1].Signature(); got != "()" {
		t.Errorf("trap signature = %q", got)
	}

	res, err := inst.Call(ctx, "add", api.EncodeI32(-7), api.EncodeI32(3))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got := api.DecodeI32(res[0]); got != -4 {
		t.Errorf("add(-7, 3) = %d, want -4", got)
	}
}

func TestCallErrors(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, nil)

	inst, err := e.Load(ctx, addModule(t), "calc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	tests := []struct {
		name string
		fn   string
		args []uint64
		kind errors.Kind
	}{
		{"missing export", "sub", nil, errors.KindNotFound},
		{"too few args", "add", []uint64{1}, errors.KindMismatch},
		{"trap", "trap", nil, errors.KindTrap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inst.Call(ctx, tt.fn, tt.args...)
			if !isErr(err, errors.PhaseRuntime, tt.kind) {
				t.Errorf("expected runtime %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestLoadRejectsInvalidBinary(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, nil)

	bad := []byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00}
	if _, err := e.Load(ctx, bad, "bad"); !isErr(err, errors.PhaseRuntime, errors.KindInstantiation) {
		t.Errorf("Load: expected instantiation error, got %v", err)
	}
	if err := e.Compile(ctx, bad); err == nil {
		t.Error("Compile should reject a bad version")
	}
	if err := e.Compile(ctx, addModule(t)); err != nil {
		t.Errorf("Compile: %v", err)
	}
}

func TestMemoryLimit(t *testing.T) {
	b := builder.NewModuleBuilder()
	b.AddMemory(wasm.MemoryType{Limits: wasm.Limits(4)})
	bin := encode(t, b)

	ctx := context.Background()
	e := newEngine(t, &Config{MemoryLimitPages: 2})
	if _, err := e.Load(ctx, bin, "big"); err == nil {
		t.Error("expected a 4 page memory to exceed a 2 page limit")
	}

	e = newEngine(t, &Config{MemoryLimitPages: 8})
	inst, err := e.Load(ctx, bin, "big")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	inst.Close(ctx)
}

func TestEnvModule(t *testing.T) {
	b := builder.NewModuleBuilder()
	printI32 := b.ImportFunction(EnvModuleName, PrintI32, wasm.FuncOf(wasm.I32))
	printI64 := b.ImportFunction(EnvModuleName, PrintI64, wasm.FuncOf(wasm.I64))
	run := b.NewFunction(builder.NewFunctionBuilder(wasm.FuncOf()).
		Code(func(c *builder.CodeBuilder, _ []wasm.LocalIndex) {
			c.I32Const(-42).Call(printI32).
				I64Const(1 << 40).Call(printI64)
		}).
		Build())
	b.ExportFunction("run", run.Space())
	bin := encode(t, b)

	ctx := context.Background()
	e := newEngine(t, nil)

	var out bytes.Buffer
	if err := e.EnvModule(&out); err != nil {
		t.Fatalf("EnvModule: %v", err)
	}

	inst, err := e.Load(ctx, bin, "printer")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	if _, err := inst.Call(ctx, "run"); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got, want := out.String(), "-42\n1099511627776\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDefineHostFunc(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, nil)
	nop := api.GoModuleFunc(func(context.Context, api.Module, []uint64) {})

	if err := e.DefineHostFunc("host", "f", nil, nil, nil); !isErr(err, errors.PhaseHost, errors.KindRegistration) {
		t.Errorf("nil function: got %v", err)
	}
	if err := e.DefineHostFunc("host", "f", nop, nil, []wasm.ValueType{wasm.I32, wasm.I32}); !isErr(err, errors.PhaseHost, errors.KindRegistration) {
		t.Errorf("two results: got %v", err)
	}
	if err := e.DefineHostFunc("host", "f", nop, nil, nil); err != nil {
		t.Fatalf("DefineHostFunc: %v", err)
	}
	if err := e.DefineHostFunc("host", "f", nop, nil, nil); !isErr(err, errors.PhaseHost, errors.KindDuplicate) {
		t.Errorf("duplicate: got %v", err)
	}

	inst, err := e.Load(ctx, addModule(t), "calc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	if err := e.DefineHostFunc("host", "g", nop, nil, nil); !isErr(err, errors.PhaseHost, errors.KindRegistration) {
		t.Errorf("after instantiation: got %v", err)
	}
	if err := e.DefineHostFunc("other", "g", nop, nil, nil); err != nil {
		t.Errorf("new module after instantiation: %v", err)
	}
}

func TestGlobalAndMemory(t *testing.T) {
	b := builder.NewModuleBuilder()
	mem := b.AddMemory(wasm.MemoryType{Limits: wasm.Limits(1)})
	g := b.AddGlobal(wasm.GlobalType{Content: wasm.I64}, wasm.ConstI64(-5))
	b.AddData(mem, wasm.ConstI32(16), []byte("hello"))
	b.ExportMemory("memory", mem)
	b.ExportGlobal("g", g)
	bin := encode(t, b)

	ctx := context.Background()
	e := newEngine(t, nil)
	inst, err := e.Load(ctx, bin, "data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	if v, ok := inst.Global("g"); !ok || int64(v) != -5 {
		t.Errorf("Global(g) = %d, %v", int64(v), ok)
	}
	if _, ok := inst.Global("missing"); ok {
		t.Error("Global(missing) should report false")
	}
	if got, ok := inst.ReadMemory("memory", 16, 5); !ok || string(got) != "hello" {
		t.Errorf("ReadMemory = %q, %v", got, ok)
	}
	if _, ok := inst.ReadMemory("memory", 65535, 2); ok {
		t.Error("read past the end should fail")
	}
}
