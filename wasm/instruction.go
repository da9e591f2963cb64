package wasm

import (
	"fmt"
	"math"
	"strings"

	"github.com/wippyai/wasm-builder/wasm/internal/binary"
)

// Instruction is one MVP instruction. The set of implementations is closed:
// every value knows its opcode and how to write its operands.
type Instruction interface {
	Opcode() byte
	String() string
	encode(w *binary.Writer) int
}

// Simple is an instruction without operands. Use the package-level values
// (I32Add, Return, ...) rather than constructing one.
type Simple struct {
	op byte
}

func (s Simple) Opcode() byte   { return s.op }
func (s Simple) String() string { return opName(s.op) }

func (s Simple) encode(w *binary.Writer) int {
	return w.Byte(s.op)
}

// Control and parametric instructions without operands.
var (
	Unreachable = Simple{OpUnreachable}
	Nop         = Simple{OpNop}
	Else        = Simple{OpElse}
	End         = Simple{OpEnd}
	Return      = Simple{OpReturn}
	Drop        = Simple{OpDrop}
	Select      = Simple{OpSelect}
)

// Comparison instructions.
var (
	I32Eqz = Simple{OpI32Eqz}
	I32Eq  = Simple{OpI32Eq}
	I32Ne  = Simple{OpI32Ne}
	I32LtS = Simple{OpI32LtS}
	I32LtU = Simple{OpI32LtU}
	I32GtS = Simple{OpI32GtS}
	I32GtU = Simple{OpI32GtU}
	I32LeS = Simple{OpI32LeS}
	I32LeU = Simple{OpI32LeU}
	I32GeS = Simple{OpI32GeS}
	I32GeU = Simple{OpI32GeU}

	I64Eqz = Simple{OpI64Eqz}
	I64Eq  = Simple{OpI64Eq}
	I64Ne  = Simple{OpI64Ne}
	I64LtS = Simple{OpI64LtS}
	I64LtU = Simple{OpI64LtU}
	I64GtS = Simple{OpI64GtS}
	I64GtU = Simple{OpI64GtU}
	I64LeS = Simple{OpI64LeS}
	I64LeU = Simple{OpI64LeU}
	I64GeS = Simple{OpI64GeS}
	I64GeU = Simple{OpI64GeU}

	F32Eq = Simple{OpF32Eq}
	F32Ne = Simple{OpF32Ne}
	F32Lt = Simple{OpF32Lt}
	F32Gt = Simple{OpF32Gt}
	F32Le = Simple{OpF32Le}
	F32Ge = Simple{OpF32Ge}

	F64Eq = Simple{OpF64Eq}
	F64Ne = Simple{OpF64Ne}
	F64Lt = Simple{OpF64Lt}
	F64Gt = Simple{OpF64Gt}
	F64Le = Simple{OpF64Le}
	F64Ge = Simple{OpF64Ge}
)

// Numeric instructions.
var (
	I32Clz    = Simple{OpI32Clz}
	I32Ctz    = Simple{OpI32Ctz}
	I32Popcnt = Simple{OpI32Popcnt}
	I32Add    = Simple{OpI32Add}
	I32Sub    = Simple{OpI32Sub}
	I32Mul    = Simple{OpI32Mul}
	I32DivS   = Simple{OpI32DivS}
	I32DivU   = Simple{OpI32DivU}
	I32RemS   = Simple{OpI32RemS}
	I32RemU   = Simple{OpI32RemU}
	I32And    = Simple{OpI32And}
	I32Or     = Simple{OpI32Or}
	I32Xor    = Simple{OpI32Xor}
	I32Shl    = Simple{OpI32Shl}
	I32ShrS   = Simple{OpI32ShrS}
	I32ShrU   = Simple{OpI32ShrU}
	I32Rotl   = Simple{OpI32Rotl}
	I32Rotr   = Simple{OpI32Rotr}

	I64Clz    = Simple{OpI64Clz}
	I64Ctz    = Simple{OpI64Ctz}
	I64Popcnt = Simple{OpI64Popcnt}
	I64Add    = Simple{OpI64Add}
	I64Sub    = Simple{OpI64Sub}
	I64Mul    = Simple{OpI64Mul}
	I64DivS   = Simple{OpI64DivS}
	I64DivU   = Simple{OpI64DivU}
	I64RemS   = Simple{OpI64RemS}
	I64RemU   = Simple{OpI64RemU}
	I64And    = Simple{OpI64And}
	I64Or     = Simple{OpI64Or}
	I64Xor    = Simple{OpI64Xor}
	I64Shl    = Simple{OpI64Shl}
	I64ShrS   = Simple{OpI64ShrS}
	I64ShrU   = Simple{OpI64ShrU}
	I64Rotl   = Simple{OpI64Rotl}
	I64Rotr   = Simple{OpI64Rotr}

	F32Abs      = Simple{OpF32Abs}
	F32Neg      = Simple{OpF32Neg}
	F32Ceil     = Simple{OpF32Ceil}
	F32Floor    = Simple{OpF32Floor}
	F32Trunc    = Simple{OpF32Trunc}
	F32Nearest  = Simple{OpF32Nearest}
	F32Sqrt     = Simple{OpF32Sqrt}
	F32Add      = Simple{OpF32Add}
	F32Sub      = Simple{OpF32Sub}
	F32Mul      = Simple{OpF32Mul}
	F32Div      = Simple{OpF32Div}
	F32Min      = Simple{OpF32Min}
	F32Max      = Simple{OpF32Max}
	F32Copysign = Simple{OpF32Copysign}

	F64Abs      = Simple{OpF64Abs}
	F64Neg      = Simple{OpF64Neg}
	F64Ceil     = Simple{OpF64Ceil}
	F64Floor    = Simple{OpF64Floor}
	F64Trunc    = Simple{OpF64Trunc}
	F64Nearest  = Simple{OpF64Nearest}
	F64Sqrt     = Simple{OpF64Sqrt}
	F64Add      = Simple{OpF64Add}
	F64Sub      = Simple{OpF64Sub}
	F64Mul      = Simple{OpF64Mul}
	F64Div      = Simple{OpF64Div}
	F64Min      = Simple{OpF64Min}
	F64Max      = Simple{OpF64Max}
	F64Copysign = Simple{OpF64Copysign}
)

// Conversion and reinterpret instructions.
var (
	I32WrapI64        = Simple{OpI32WrapI64}
	I32TruncF32S      = Simple{OpI32TruncF32S}
	I32TruncF32U      = Simple{OpI32TruncF32U}
	I32TruncF64S      = Simple{OpI32TruncF64S}
	I32TruncF64U      = Simple{OpI32TruncF64U}
	I64ExtendI32S     = Simple{OpI64ExtendI32S}
	I64ExtendI32U     = Simple{OpI64ExtendI32U}
	I64TruncF32S      = Simple{OpI64TruncF32S}
	I64TruncF32U      = Simple{OpI64TruncF32U}
	I64TruncF64S      = Simple{OpI64TruncF64S}
	I64TruncF64U      = Simple{OpI64TruncF64U}
	F32ConvertI32S    = Simple{OpF32ConvertI32S}
	F32ConvertI32U    = Simple{OpF32ConvertI32U}
	F32ConvertI64S    = Simple{OpF32ConvertI64S}
	F32ConvertI64U    = Simple{OpF32ConvertI64U}
	F32DemoteF64      = Simple{OpF32DemoteF64}
	F64ConvertI32S    = Simple{OpF64ConvertI32S}
	F64ConvertI32U    = Simple{OpF64ConvertI32U}
	F64ConvertI64S    = Simple{OpF64ConvertI64S}
	F64ConvertI64U    = Simple{OpF64ConvertI64U}
	F64PromoteF32     = Simple{OpF64PromoteF32}
	I32ReinterpretF32 = Simple{OpI32ReinterpretF32}
	I64ReinterpretF64 = Simple{OpI64ReinterpretF64}
	F32ReinterpretI32 = Simple{OpF32ReinterpretI32}
	F64ReinterpretI64 = Simple{OpF64ReinterpretI64}
)

// Block opens a block whose label is its end.
type Block struct{ Type BlockType }

// Loop opens a block whose label is its start.
type Loop struct{ Type BlockType }

// If opens a conditional block; Else and End close its arms.
type If struct{ Type BlockType }

func (Block) Opcode() byte { return OpBlock }
func (Loop) Opcode() byte  { return OpLoop }
func (If) Opcode() byte    { return OpIf }

func (b Block) String() string { return withBlockType("block", b.Type) }
func (l Loop) String() string  { return withBlockType("loop", l.Type) }
func (i If) String() string    { return withBlockType("if", i.Type) }

func (b Block) encode(w *binary.Writer) int { return w.Byte(OpBlock) + b.Type.encode(w) }
func (l Loop) encode(w *binary.Writer) int  { return w.Byte(OpLoop) + l.Type.encode(w) }
func (i If) encode(w *binary.Writer) int    { return w.Byte(OpIf) + i.Type.encode(w) }

func withBlockType(name string, t BlockType) string {
	if s := t.String(); s != "" {
		return name + " " + s
	}
	return name
}

// Br branches to the label Depth levels out.
type Br struct{ Depth uint32 }

// BrIf branches to the label Depth levels out when the top of stack is non-zero.
type BrIf struct{ Depth uint32 }

func (Br) Opcode() byte   { return OpBr }
func (BrIf) Opcode() byte { return OpBrIf }

func (b Br) String() string   { return fmt.Sprintf("br %d", b.Depth) }
func (b BrIf) String() string { return fmt.Sprintf("br_if %d", b.Depth) }

func (b Br) encode(w *binary.Writer) int   { return w.Byte(OpBr) + w.WriteU32(b.Depth) }
func (b BrIf) encode(w *binary.Writer) int { return w.Byte(OpBrIf) + w.WriteU32(b.Depth) }

// BrTable branches to Targets[i] for operand i, or Default when out of range.
type BrTable struct {
	Targets []uint32
	Default uint32
}

func (BrTable) Opcode() byte { return OpBrTable }

func (b BrTable) String() string {
	var sb strings.Builder
	sb.WriteString("br_table")
	for _, t := range b.Targets {
		fmt.Fprintf(&sb, " %d", t)
	}
	fmt.Fprintf(&sb, " %d", b.Default)
	return sb.String()
}

func (b BrTable) encode(w *binary.Writer) int {
	n := w.Byte(OpBrTable)
	n += w.WriteU32(uint32(len(b.Targets)))
	for _, t := range b.Targets {
		n += w.WriteU32(t)
	}
	return n + w.WriteU32(b.Default)
}

// Call invokes a function. Calls to local functions are written with the
// ordinal the reference carries, so bodies must be resolved first.
type Call struct{ Func FunctionSpaceIndex }

func (Call) Opcode() byte     { return OpCall }
func (c Call) String() string { return "call " + c.Func.String() }
func (c Call) encode(w *binary.Writer) int {
	return w.Byte(OpCall) + w.WriteU32(c.Func.Ordinal())
}

// CallIndirect calls through table 0 with the expected signature Type.
type CallIndirect struct{ Type TypeIndex }

func (CallIndirect) Opcode() byte     { return OpCallIndirect }
func (c CallIndirect) String() string { return fmt.Sprintf("call_indirect (type %d)", c.Type) }
func (c CallIndirect) encode(w *binary.Writer) int {
	return w.Byte(OpCallIndirect) + w.WriteU32(uint32(c.Type)) + w.WriteVarUint1(false)
}

// LocalGet pushes a local.
type LocalGet struct{ Local LocalIndex }

// LocalSet pops into a local.
type LocalSet struct{ Local LocalIndex }

// LocalTee stores into a local and keeps the value on the stack.
type LocalTee struct{ Local LocalIndex }

// GlobalGet pushes a global.
type GlobalGet struct{ Global GlobalIndex }

// GlobalSet pops into a mutable global.
type GlobalSet struct{ Global GlobalIndex }

func (LocalGet) Opcode() byte  { return OpLocalGet }
func (LocalSet) Opcode() byte  { return OpLocalSet }
func (LocalTee) Opcode() byte  { return OpLocalTee }
func (GlobalGet) Opcode() byte { return OpGlobalGet }
func (GlobalSet) Opcode() byte { return OpGlobalSet }

func (l LocalGet) String() string  { return fmt.Sprintf("local.get %d", l.Local) }
func (l LocalSet) String() string  { return fmt.Sprintf("local.set %d", l.Local) }
func (l LocalTee) String() string  { return fmt.Sprintf("local.tee %d", l.Local) }
func (g GlobalGet) String() string { return fmt.Sprintf("global.get %d", g.Global) }
func (g GlobalSet) String() string { return fmt.Sprintf("global.set %d", g.Global) }

func (l LocalGet) encode(w *binary.Writer) int {
	return w.Byte(OpLocalGet) + w.WriteU32(uint32(l.Local))
}

func (l LocalSet) encode(w *binary.Writer) int {
	return w.Byte(OpLocalSet) + w.WriteU32(uint32(l.Local))
}

func (l LocalTee) encode(w *binary.Writer) int {
	return w.Byte(OpLocalTee) + w.WriteU32(uint32(l.Local))
}

func (g GlobalGet) encode(w *binary.Writer) int {
	return w.Byte(OpGlobalGet) + w.WriteU32(uint32(g.Global))
}

func (g GlobalSet) encode(w *binary.Writer) int {
	return w.Byte(OpGlobalSet) + w.WriteU32(uint32(g.Global))
}

// MemoryAccess is a load or store on memory 0. Flags holds the alignment
// as a power of two; Offset is added to the dynamic address.
type MemoryAccess struct {
	Op     byte
	Flags  uint32
	Offset uint32
}

func (m MemoryAccess) Opcode() byte { return m.Op }

func (m MemoryAccess) String() string {
	return fmt.Sprintf("%s offset=%d align=%d", opName(m.Op), m.Offset, uint32(1)<<m.Flags)
}

func (m MemoryAccess) encode(w *binary.Writer) int {
	return w.Byte(m.Op) + w.WriteU32(m.Flags) + w.WriteU32(m.Offset)
}

// IsMemoryAccessOp reports whether op is one of the load or store opcodes.
func IsMemoryAccessOp(op byte) bool {
	return op >= OpI32Load && op <= OpI64Store32
}

// NaturalAlignment returns the alignment exponent matching the access width of op.
func NaturalAlignment(op byte) uint32 {
	switch op {
	case OpI32Load8S, OpI32Load8U, OpI64Load8S, OpI64Load8U, OpI32Store8, OpI64Store8:
		return 0
	case OpI32Load16S, OpI32Load16U, OpI64Load16S, OpI64Load16U, OpI32Store16, OpI64Store16:
		return 1
	case OpI64Load, OpF64Load, OpI64Store, OpF64Store:
		return 3
	default:
		return 2
	}
}

func memAccess(op byte) func(flags, offset uint32) MemoryAccess {
	return func(flags, offset uint32) MemoryAccess {
		return MemoryAccess{Op: op, Flags: flags, Offset: offset}
	}
}

// Load and store constructors taking (alignment exponent, offset).
var (
	I32Load    = memAccess(OpI32Load)
	I64Load    = memAccess(OpI64Load)
	F32Load    = memAccess(OpF32Load)
	F64Load    = memAccess(OpF64Load)
	I32Load8S  = memAccess(OpI32Load8S)
	I32Load8U  = memAccess(OpI32Load8U)
	I32Load16S = memAccess(OpI32Load16S)
	I32Load16U = memAccess(OpI32Load16U)
	I64Load8S  = memAccess(OpI64Load8S)
	I64Load8U  = memAccess(OpI64Load8U)
	I64Load16S = memAccess(OpI64Load16S)
	I64Load16U = memAccess(OpI64Load16U)
	I64Load32S = memAccess(OpI64Load32S)
	I64Load32U = memAccess(OpI64Load32U)
	I32Store   = memAccess(OpI32Store)
	I64Store   = memAccess(OpI64Store)
	F32Store   = memAccess(OpF32Store)
	F64Store   = memAccess(OpF64Store)
	I32Store8  = memAccess(OpI32Store8)
	I32Store16 = memAccess(OpI32Store16)
	I64Store8  = memAccess(OpI64Store8)
	I64Store16 = memAccess(OpI64Store16)
	I64Store32 = memAccess(OpI64Store32)
)

// MemoryControl is memory.size or memory.grow on memory 0.
type MemoryControl struct {
	op byte
}

var (
	MemorySize = MemoryControl{OpMemorySize}
	MemoryGrow = MemoryControl{OpMemoryGrow}
)

func (m MemoryControl) Opcode() byte   { return m.op }
func (m MemoryControl) String() string { return opName(m.op) }

func (m MemoryControl) encode(w *binary.Writer) int {
	return w.Byte(m.op) + w.WriteVarUint1(false)
}

// I32Const pushes a 32-bit integer.
type I32Const struct{ Value int32 }

// I64Const pushes a 64-bit integer.
type I64Const struct{ Value int64 }

// F32Const pushes a 32-bit float given by its IEEE-754 bits.
type F32Const struct{ Bits uint32 }

// F64Const pushes a 64-bit float given by its IEEE-754 bits.
type F64Const struct{ Bits uint64 }

// F32ConstOf returns the f32.const pushing v.
func F32ConstOf(v float32) F32Const { return F32Const{Bits: math.Float32bits(v)} }

// F64ConstOf returns the f64.const pushing v.
func F64ConstOf(v float64) F64Const { return F64Const{Bits: math.Float64bits(v)} }

func (I32Const) Opcode() byte { return OpI32Const }
func (I64Const) Opcode() byte { return OpI64Const }
func (F32Const) Opcode() byte { return OpF32Const }
func (F64Const) Opcode() byte { return OpF64Const }

func (c I32Const) String() string { return fmt.Sprintf("i32.const %d", c.Value) }
func (c I64Const) String() string { return fmt.Sprintf("i64.const %d", c.Value) }
func (c F32Const) String() string {
	return fmt.Sprintf("f32.const %v", math.Float32frombits(c.Bits))
}
func (c F64Const) String() string {
	return fmt.Sprintf("f64.const %v", math.Float64frombits(c.Bits))
}

func (c I32Const) encode(w *binary.Writer) int { return w.Byte(OpI32Const) + w.WriteS32(c.Value) }
func (c I64Const) encode(w *binary.Writer) int { return w.Byte(OpI64Const) + w.WriteS64(c.Value) }
func (c F32Const) encode(w *binary.Writer) int { return w.Byte(OpF32Const) + w.WriteU32LE(c.Bits) }
func (c F64Const) encode(w *binary.Writer) int { return w.Byte(OpF64Const) + w.WriteU64LE(c.Bits) }

// EncodeInstructions returns the bytes of code without a trailing end.
func EncodeInstructions(code []Instruction) []byte {
	w := binary.NewWriter()
	encodeInstructions(w, code)
	return w.Bytes()
}

func encodeInstructions(w *binary.Writer, code []Instruction) int {
	n := 0
	for _, ins := range code {
		n += ins.encode(w)
	}
	return n
}
