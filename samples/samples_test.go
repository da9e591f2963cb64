package samples_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-builder/engine"
	"github.com/wippyai/wasm-builder/samples"
	"github.com/wippyai/wasm-builder/wasm"
)

func load(t *testing.T, name string, out *bytes.Buffer) *engine.Instance {
	t.Helper()
	ctx := context.Background()

	s, ok := samples.Lookup(name)
	require.True(t, ok, "sample %q", name)
	bin, err := s.Encode()
	require.NoError(t, err)

	eng, err := engine.New(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close(ctx) })

	if out == nil {
		out = &bytes.Buffer{}
	}
	require.NoError(t, eng.EnvModule(out))

	inst, err := eng.Load(ctx, bin, name)
	require.NoError(t, err)
	return inst
}

func call(t *testing.T, inst *engine.Instance, fn string, args ...uint64) []uint64 {
	t.Helper()
	res, err := inst.Call(context.Background(), fn, args...)
	require.NoError(t, err)
	return res
}

func TestCatalog(t *testing.T) {
	all := samples.All()
	require.Len(t, all, 7)

	seen := map[string]bool{}
	for i, s := range all {
		assert.False(t, seen[s.Name], "duplicate sample %q", s.Name)
		seen[s.Name] = true
		assert.NotEmpty(t, s.Description)
		if i > 0 {
			assert.Less(t, all[i-1].Name, s.Name)
		}

		got, ok := samples.Lookup(s.Name)
		assert.True(t, ok)
		assert.Equal(t, s.Name, got.Name)
	}

	_, ok := samples.Lookup("nope")
	assert.False(t, ok)
}

func TestEverySampleCompiles(t *testing.T) {
	ctx := context.Background()
	eng, err := engine.New(ctx, nil)
	require.NoError(t, err)
	defer eng.Close(ctx)

	for _, s := range samples.All() {
		t.Run(s.Name, func(t *testing.T) {
			m, err := s.Build()
			require.NoError(t, err)
			require.NoError(t, m.Validate())

			bin, err := m.Encode()
			require.NoError(t, err)
			assert.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, bin[:8])
			assert.NoError(t, eng.Compile(ctx, bin))
		})
	}
}

func TestAdd(t *testing.T) {
	inst := load(t, "add", nil)
	res := call(t, inst, "add", api.EncodeI32(40), api.EncodeI32(2))
	assert.Equal(t, int32(42), api.DecodeI32(res[0]))
}

func TestFibonacci(t *testing.T) {
	inst := load(t, "fibonacci", nil)
	for n, want := range []int32{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55} {
		res := call(t, inst, "fib", uint64(n))
		assert.Equal(t, want, api.DecodeI32(res[0]), "fib(%d)", n)
	}
}

func TestFactorial(t *testing.T) {
	inst := load(t, "factorial", nil)
	tests := map[uint64]uint64{0: 1, 1: 1, 5: 120, 10: 3628800, 20: 2432902008176640000}
	for n, want := range tests {
		res := call(t, inst, "fact", n)
		assert.Equal(t, want, res[0], "fact(%d)", n)
	}
}

func TestMemory(t *testing.T) {
	inst := load(t, "memory", nil)

	greeting, ok := inst.ReadMemory("memory", samples.GreetingOffset, uint32(len(samples.Greeting)))
	require.True(t, ok)
	assert.Equal(t, samples.Greeting, string(greeting))

	var want int32
	for _, c := range []byte(samples.Greeting) {
		want += int32(c)
	}
	res := call(t, inst, "sum_bytes", samples.GreetingOffset, uint64(len(samples.Greeting)))
	assert.Equal(t, want, api.DecodeI32(res[0]))

	call(t, inst, "store", 64, api.EncodeI32(-123456))
	res = call(t, inst, "load", 64)
	assert.Equal(t, int32(-123456), api.DecodeI32(res[0]))

	assert.Equal(t, uint64(1), call(t, inst, "size")[0])
	assert.Equal(t, uint64(1), call(t, inst, "grow", 2)[0])
	assert.Equal(t, uint64(3), call(t, inst, "size")[0])
	assert.Equal(t, int32(-1), api.DecodeI32(call(t, inst, "grow", 2)[0]), "grow past the maximum")
}

func TestDispatch(t *testing.T) {
	inst := load(t, "dispatch", nil)
	tests := []struct {
		op   uint64
		want int32
	}{
		{0, 10},
		{1, 4},
		{2, 21},
	}
	for _, tt := range tests {
		res := call(t, inst, "dispatch", tt.op, 7, 3)
		assert.Equal(t, tt.want, api.DecodeI32(res[0]), "op %d", tt.op)
	}

	_, err := inst.Call(context.Background(), "dispatch", 3, 1, 1)
	assert.Error(t, err, "slot 3 is outside the table")
}

func TestCounter(t *testing.T) {
	inst := load(t, "counter", nil)

	assert.Equal(t, uint64(samples.CounterStart), call(t, inst, "get")[0])
	assert.Equal(t, uint64(samples.CounterStart+1), call(t, inst, "next")[0])
	assert.Equal(t, uint64(samples.CounterStart+2), call(t, inst, "next")[0])

	step, ok := inst.Global("step")
	require.True(t, ok)
	assert.Equal(t, uint64(1), step)
}

func TestImports(t *testing.T) {
	var out bytes.Buffer
	inst := load(t, "imports", &out)

	call(t, inst, "run", api.EncodeI32(-21))
	assert.Equal(t, "-42\n-21\n", out.String())
	assert.Equal(t, int32(18), api.DecodeI32(call(t, inst, "double", 9)[0]))
}

func TestImportsCallsShiftPastImports(t *testing.T) {
	m, err := samples.Imports()
	require.NoError(t, err)
	require.Equal(t, uint32(2), m.NumImportedFunctions())

	run := wasm.EncodeInstructions(m.Code[1].Code)
	// local.get 0; call double (local 0 -> ordinal 2); call print_i32 (ordinal 0)
	assert.Equal(t, []byte{0x20, 0x00, 0x10, 0x02, 0x10, 0x00}, run[:6])
}
