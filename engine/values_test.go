package engine

import (
	"math"
	"testing"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-builder/wasm"
)

func TestValueTypeConversion(t *testing.T) {
	tests := []struct {
		wasm wasm.ValueType
		api  api.ValueType
	}{
		{wasm.I32, api.ValueTypeI32},
		{wasm.I64, api.ValueTypeI64},
		{wasm.F32, api.ValueTypeF32},
		{wasm.F64, api.ValueTypeF64},
	}

	for _, tt := range tests {
		if got := ToAPI(tt.wasm); got != tt.api {
			t.Errorf("ToAPI(%s) = %v, want %v", tt.wasm, got, tt.api)
		}
		if got, ok := FromAPI(tt.api); !ok || got != tt.wasm {
			t.Errorf("FromAPI(%v) = %s, %v", tt.api, got, ok)
		}
	}

	if _, ok := FromAPI(api.ValueTypeExternref); ok {
		t.Error("externref is not an MVP value type")
	}
}

func TestEncodeArg(t *testing.T) {
	tests := []struct {
		in   string
		typ  wasm.ValueType
		want uint64
	}{
		{"5", wasm.I32, 5},
		{"-1", wasm.I32, 0xffffffff},
		{"4294967295", wasm.I32, 0xffffffff},
		{"0x10", wasm.I32, 16},
		{"-1", wasm.I64, math.MaxUint64},
		{"18446744073709551615", wasm.I64, math.MaxUint64},
		{"1.5", wasm.F32, uint64(math.Float32bits(1.5))},
		{"-0.25", wasm.F64, math.Float64bits(-0.25)},
	}

	for _, tt := range tests {
		got, err := EncodeArg(tt.in, tt.typ)
		if err != nil {
			t.Errorf("EncodeArg(%q, %s): %v", tt.in, tt.typ, err)
			continue
		}
		if got != tt.want {
			t.Errorf("EncodeArg(%q, %s) = %#x, want %#x", tt.in, tt.typ, got, tt.want)
		}
	}

	for _, bad := range []struct {
		in  string
		typ wasm.ValueType
	}{
		{"x", wasm.I32},
		{"4294967296", wasm.I32},
		{"1.5", wasm.I64},
		{"", wasm.F64},
	} {
		if _, err := EncodeArg(bad.in, bad.typ); err == nil {
			t.Errorf("EncodeArg(%q, %s) should fail", bad.in, bad.typ)
		}
	}
}

func TestDecodeResult(t *testing.T) {
	tests := []struct {
		v    uint64
		typ  wasm.ValueType
		want string
	}{
		{0xffffffff, wasm.I32, "-1"},
		{55, wasm.I32, "55"},
		{math.MaxUint64, wasm.I64, "-1"},
		{uint64(math.Float32bits(2.5)), wasm.F32, "2.5"},
		{math.Float64bits(0.1), wasm.F64, "0.1"},
	}

	for _, tt := range tests {
		if got := DecodeResult(tt.v, tt.typ); got != tt.want {
			t.Errorf("DecodeResult(%#x, %s) = %q, want %q", tt.v, tt.typ, got, tt.want)
		}
	}
}

func TestEncodeArgs(t *testing.T) {
	f := FuncInfo{Name: "add", Params: []wasm.ValueType{wasm.I32, wasm.I64}, Results: []wasm.ValueType{wasm.I64}}

	args, err := EncodeArgs(f, []string{"1", "-2"})
	if err != nil {
		t.Fatalf("EncodeArgs: %v", err)
	}
	if args[0] != 1 || int64(args[1]) != -2 {
		t.Errorf("EncodeArgs = %v", args)
	}
	if _, err := EncodeArgs(f, []string{"1"}); err == nil {
		t.Error("EncodeArgs should reject a short argument list")
	}
	if got := DecodeResults(f, []uint64{math.MaxUint64}); got[0] != "-1" {
		t.Errorf("DecodeResults = %v", got)
	}
}
