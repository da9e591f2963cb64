package wasm

import (
	"bytes"
	"testing"

	"github.com/wippyai/wasm-builder/wasm/internal/binary"
)

func encoded(fn func(w *binary.Writer) int) ([]byte, int) {
	w := binary.NewWriter()
	n := fn(w)
	return w.Bytes(), n
}

func TestLimitsFlagDerivation(t *testing.T) {
	tests := []struct {
		name   string
		limits ResizableLimits
		want   []byte
	}{
		{"no max", Limits(1), []byte{0x00, 0x01}},
		{"max", Limits(1).WithMax(2), []byte{0x01, 0x01, 0x02}},
		{"stale has-max bit", ResizableLimits{Flags: LimitsHasMax, Initial: 3}, []byte{0x00, 0x03}},
		{"missing has-max bit", ResizableLimits{Flags: 0, Initial: 0, Maximum: ptr(uint32(1))}, []byte{0x01, 0x00, 0x01}},
		{"other bits kept", ResizableLimits{Flags: 0x02, Initial: 1, Maximum: ptr(uint32(1))}, []byte{0x03, 0x01, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := encoded(tt.limits.encode)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got % x, want % x", got, tt.want)
			}
			if n != len(got) {
				t.Errorf("reported %d bytes, wrote %d", n, len(got))
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestFuncTypeEncoding(t *testing.T) {
	tests := []struct {
		name string
		ft   FuncType
		want []byte
	}{
		{"void", FuncOf(), []byte{0x60, 0x00, 0x00}},
		{"i32 -> i32", FuncOf(I32).Returning(I32), []byte{0x60, 0x01, 0x7f, 0x01, 0x7f}},
		{"mixed", FuncOf(I64, F32, F64), []byte{0x60, 0x03, 0x7e, 0x7d, 0x7c, 0x00}},
		{"result only", FuncOf().Returning(F64), []byte{0x60, 0x00, 0x01, 0x7c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := encoded(tt.ft.encode)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got % x, want % x", got, tt.want)
			}
			if n != len(got) {
				t.Errorf("reported %d bytes, wrote %d", n, len(got))
			}
		})
	}
}

func TestFuncTypeEqual(t *testing.T) {
	a := FuncOf(I32, I32).Returning(I32)
	if !a.Equal(FuncOf(I32, I32).Returning(I32)) {
		t.Error("identical signatures not equal")
	}
	if a.Equal(FuncOf(I32, I32)) {
		t.Error("result presence ignored")
	}
	if a.Equal(FuncOf(I32, I32).Returning(I64)) {
		t.Error("result type ignored")
	}
	if a.Equal(FuncOf(I32).Returning(I32)) {
		t.Error("param count ignored")
	}
	if got := a.String(); got != "(i32, i32) -> i32" {
		t.Errorf("String() = %q", got)
	}
}

func TestFuncOfCopiesParams(t *testing.T) {
	params := []ValueType{I32}
	ft := FuncOf(params...)
	params[0] = F64
	if ft.Params[0] != I32 {
		t.Error("FuncOf aliases caller slice")
	}
}

func TestDescriptorEncoding(t *testing.T) {
	table, _ := encoded(TableType{Element: AnyFunc, Limits: Limits(4)}.encode)
	if !bytes.Equal(table, []byte{0x70, 0x00, 0x04}) {
		t.Errorf("table: % x", table)
	}

	mem, _ := encoded(MemoryType{Limits: Limits(1).WithMax(16)}.encode)
	if !bytes.Equal(mem, []byte{0x01, 0x01, 0x10}) {
		t.Errorf("memory: % x", mem)
	}

	global, _ := encoded(GlobalType{Content: I32, Mutable: true}.encode)
	if !bytes.Equal(global, []byte{0x7f, 0x01}) {
		t.Errorf("global: % x", global)
	}
}

func TestBlockType(t *testing.T) {
	if _, ok := BlockEmpty.Result(); ok {
		t.Error("empty block reports a result")
	}
	if v, ok := BlockResult(F32).Result(); !ok || v != F32 {
		t.Errorf("BlockResult(F32).Result() = %v, %v", v, ok)
	}
	if byte(BlockEmpty) != 0x40 {
		t.Errorf("BlockEmpty = 0x%02x", byte(BlockEmpty))
	}
}

func TestTypeVarint7(t *testing.T) {
	tests := []struct {
		name string
		got  int8
		want int8
		enc  byte
	}{
		{"i32", I32.varint7(), -1, 0x7f},
		{"i64", I64.varint7(), -2, 0x7e},
		{"f32", F32.varint7(), -3, 0x7d},
		{"f64", F64.varint7(), -4, 0x7c},
		{"anyfunc", AnyFunc.varint7(), -16, 0x70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("varint7 = %d, want %d", tt.got, tt.want)
			}
			got, _ := encoded(func(w *binary.Writer) int { return w.WriteVarInt7(tt.got) })
			if !bytes.Equal(got, []byte{tt.enc}) {
				t.Errorf("encoded % x, want %02x", got, tt.enc)
			}
		})
	}

	for _, bt := range []BlockType{BlockEmpty, BlockResult(I32), BlockResult(F64)} {
		got, n := encoded(bt.encode)
		if n != 1 || !bytes.Equal(got, []byte{byte(bt)}) {
			t.Errorf("block type %s encoded % x", bt, got)
		}
	}
}

func TestValueTypeString(t *testing.T) {
	for v, want := range map[ValueType]string{I32: "i32", I64: "i64", F32: "f32", F64: "f64"} {
		if v.String() != want || !v.Valid() {
			t.Errorf("%v: String %q Valid %v", want, v.String(), v.Valid())
		}
	}
	if ValueType(0x40).Valid() {
		t.Error("0x40 is not a value type")
	}
}

func TestFunctionBodyEncoding(t *testing.T) {
	body := FunctionBody{
		Locals: []LocalEntry{{Count: 2, Type: I32}, {Count: 1, Type: F64}},
		Code:   []Instruction{LocalGet{Local: 0}, Drop},
	}
	got, n := encoded(body.encode)
	want := []byte{0x09, 0x02, 0x02, 0x7f, 0x01, 0x7c, 0x20, 0x00, 0x1a, 0x0b}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
	if n != len(want) {
		t.Errorf("reported %d bytes", n)
	}
	if body.NumLocals() != 3 {
		t.Errorf("NumLocals() = %d, want 3", body.NumLocals())
	}
}
