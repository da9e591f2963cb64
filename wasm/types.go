package wasm

import (
	"fmt"
	"strings"

	"github.com/wippyai/wasm-builder/wasm/internal/binary"
)

// ValueType is one of the four MVP value types.
type ValueType byte

// Value types, encoded as the single-byte negative varint7 of each type.
const (
	I32 ValueType = 0x7F
	I64 ValueType = 0x7E
	F32 ValueType = 0x7D
	F64 ValueType = 0x7C
)

// String returns the text-format name of the type.
func (v ValueType) String() string {
	switch v {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return fmt.Sprintf("valtype(0x%02x)", byte(v))
	}
}

// varint7 returns the signed value the type byte stands for.
func (v ValueType) varint7() int8 { return int8(int(v) - 0x80) }

// Valid reports whether v is one of the MVP value types.
func (v ValueType) Valid() bool {
	return v == I32 || v == I64 || v == F32 || v == F64
}

// BlockType is the signature of a block, loop or if: empty or a single result.
type BlockType byte

// BlockEmpty is the block type that produces no value.
const BlockEmpty BlockType = BlockType(BlockEmptyByte)

// BlockResult returns the block type producing one value of type v.
func BlockResult(v ValueType) BlockType {
	return BlockType(v)
}

// Result returns the produced value type, if any.
func (b BlockType) Result() (ValueType, bool) {
	if b == BlockEmpty {
		return 0, false
	}
	return ValueType(b), true
}

func (b BlockType) encode(w *binary.Writer) int {
	return w.WriteVarInt7(int8(int(b) - 0x80))
}

func (b BlockType) String() string {
	if v, ok := b.Result(); ok {
		return "(result " + v.String() + ")"
	}
	return ""
}

// ElemType is the element type of a table. AnyFunc is the only MVP element type.
type ElemType byte

// AnyFunc is the element type of tables holding function references.
const AnyFunc ElemType = ElemType(AnyFuncByte)

func (e ElemType) varint7() int8 { return int8(int(e) - 0x80) }

// FuncType is a function signature with at most one result.
type FuncType struct {
	Result *ValueType
	Params []ValueType
}

// FuncOf returns a signature with the given parameters and no result.
func FuncOf(params ...ValueType) FuncType {
	return FuncType{Params: append([]ValueType(nil), params...)}
}

// Returning returns a copy of f with result type v.
func (f FuncType) Returning(v ValueType) FuncType {
	f.Result = &v
	return f
}

// Equal reports whether both signatures have the same params and result.
func (f FuncType) Equal(o FuncType) bool {
	if len(f.Params) != len(o.Params) {
		return false
	}
	for i := range f.Params {
		if f.Params[i] != o.Params[i] {
			return false
		}
	}
	if (f.Result == nil) != (o.Result == nil) {
		return false
	}
	return f.Result == nil || *f.Result == *o.Result
}

// Results returns the result types as a slice of length zero or one.
func (f FuncType) Results() []ValueType {
	if f.Result == nil {
		return nil
	}
	return []ValueType{*f.Result}
}

func (f FuncType) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	s := "(" + strings.Join(parts, ", ") + ")"
	if f.Result != nil {
		s += " -> " + f.Result.String()
	}
	return s
}

func (f FuncType) encode(w *binary.Writer) int {
	n := w.Byte(FuncTypeByte)
	n += w.WriteU32(uint32(len(f.Params)))
	for _, p := range f.Params {
		n += w.WriteVarInt7(p.varint7())
	}
	n += w.WriteVarUint1(f.Result != nil)
	if f.Result != nil {
		n += w.WriteVarInt7(f.Result.varint7())
	}
	return n
}

// ResizableLimits describes the initial and optional maximum size of a
// table (in elements) or memory (in 64KiB pages).
//
// The low bit of Flags is owned by the encoder: it is always written as
// "Maximum is present", whatever the caller stored.
type ResizableLimits struct {
	Maximum *uint32
	Flags   uint32
	Initial uint32
}

// Limits returns limits with the given initial size and no maximum.
func Limits(initial uint32) ResizableLimits {
	return ResizableLimits{Initial: initial}
}

// WithMax returns a copy of l bounded by maximum.
func (l ResizableLimits) WithMax(maximum uint32) ResizableLimits {
	l.Maximum = &maximum
	return l
}

// EncodedFlags returns the flags as written to the binary.
func (l ResizableLimits) EncodedFlags() uint32 {
	flags := l.Flags &^ LimitsHasMax
	if l.Maximum != nil {
		flags |= LimitsHasMax
	}
	return flags
}

func (l ResizableLimits) encode(w *binary.Writer) int {
	n := w.WriteU32(l.EncodedFlags())
	n += w.WriteU32(l.Initial)
	if l.Maximum != nil {
		n += w.WriteU32(*l.Maximum)
	}
	return n
}

// TableType describes a table of function references.
type TableType struct {
	Limits  ResizableLimits
	Element ElemType
}

func (t TableType) encode(w *binary.Writer) int {
	n := w.WriteVarInt7(t.Element.varint7())
	return n + t.Limits.encode(w)
}

// MemoryType describes a linear memory.
type MemoryType struct {
	Limits ResizableLimits
}

func (m MemoryType) encode(w *binary.Writer) int {
	return m.Limits.encode(w)
}

// GlobalType describes the content type and mutability of a global.
type GlobalType struct {
	Content ValueType
	Mutable bool
}

func (g GlobalType) encode(w *binary.Writer) int {
	n := w.WriteVarInt7(g.Content.varint7())
	return n + w.WriteVarUint1(g.Mutable)
}
