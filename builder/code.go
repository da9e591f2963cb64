package builder

import (
	"github.com/wippyai/wasm-builder/wasm"
)

// CodeBuilder accumulates an instruction sequence. Every method appends one
// instruction and returns the builder. The final end of a body is added by
// the encoder and must not be emitted.
type CodeBuilder struct {
	code []wasm.Instruction
}

// NewCodeBuilder returns an empty CodeBuilder.
func NewCodeBuilder() *CodeBuilder {
	return &CodeBuilder{}
}

// Emit appends instructions as given.
func (c *CodeBuilder) Emit(ins ...wasm.Instruction) *CodeBuilder {
	c.code = append(c.code, ins...)
	return c
}

// Instructions returns a copy of the accumulated instructions.
func (c *CodeBuilder) Instructions() []wasm.Instruction {
	return append([]wasm.Instruction(nil), c.code...)
}

// Len returns the number of instructions so far.
func (c *CodeBuilder) Len() int {
	return len(c.code)
}

// Control flow

// Unreachable appends unreachable.
func (c *CodeBuilder) Unreachable() *CodeBuilder {
	return c.Emit(wasm.Unreachable)
}

// Nop appends nop.
func (c *CodeBuilder) Nop() *CodeBuilder {
	return c.Emit(wasm.Nop)
}

// Block opens a block; End closes it.
func (c *CodeBuilder) Block(t wasm.BlockType) *CodeBuilder {
	return c.Emit(wasm.Block{Type: t})
}

// Loop opens a loop; a branch to it jumps back to the start.
func (c *CodeBuilder) Loop(t wasm.BlockType) *CodeBuilder {
	return c.Emit(wasm.Loop{Type: t})
}

// If opens a conditional; Else and End close its arms.
func (c *CodeBuilder) If(t wasm.BlockType) *CodeBuilder {
	return c.Emit(wasm.If{Type: t})
}

// Else appends else.
func (c *CodeBuilder) Else() *CodeBuilder {
	return c.Emit(wasm.Else)
}

// End appends end.
func (c *CodeBuilder) End() *CodeBuilder {
	return c.Emit(wasm.End)
}

// Br appends br to the enclosing block at depth.
func (c *CodeBuilder) Br(depth uint32) *CodeBuilder {
	return c.Emit(wasm.Br{Depth: depth})
}

// BrIf appends br_if to the enclosing block at depth.
func (c *CodeBuilder) BrIf(depth uint32) *CodeBuilder {
	return c.Emit(wasm.BrIf{Depth: depth})
}

// Return appends return.
func (c *CodeBuilder) Return() *CodeBuilder {
	return c.Emit(wasm.Return)
}

// Drop appends drop.
func (c *CodeBuilder) Drop() *CodeBuilder {
	return c.Emit(wasm.Drop)
}

// Select appends select.
func (c *CodeBuilder) Select() *CodeBuilder {
	return c.Emit(wasm.Select)
}

// BrTable branches to targets[i] for operand i, else to def.
func (c *CodeBuilder) BrTable(targets []uint32, def uint32) *CodeBuilder {
	return c.Emit(wasm.BrTable{Targets: append([]uint32(nil), targets...), Default: def})
}

// Call calls an imported or local function.
func (c *CodeBuilder) Call(f wasm.FunctionSpaceIndex) *CodeBuilder {
	return c.Emit(wasm.Call{Func: f})
}

// CallIndirect calls through table 0, checking the callee against sig.
func (c *CodeBuilder) CallIndirect(sig wasm.TypeIndex) *CodeBuilder {
	return c.Emit(wasm.CallIndirect{Type: sig})
}

// Variables

// LocalGet appends local.get of l.
func (c *CodeBuilder) LocalGet(l wasm.LocalIndex) *CodeBuilder {
	return c.Emit(wasm.LocalGet{Local: l})
}

// LocalSet appends local.set of l.
func (c *CodeBuilder) LocalSet(l wasm.LocalIndex) *CodeBuilder {
	return c.Emit(wasm.LocalSet{Local: l})
}

// LocalTee appends local.tee of l.
func (c *CodeBuilder) LocalTee(l wasm.LocalIndex) *CodeBuilder {
	return c.Emit(wasm.LocalTee{Local: l})
}

// GlobalGet appends global.get of g.
func (c *CodeBuilder) GlobalGet(g wasm.GlobalIndex) *CodeBuilder {
	return c.Emit(wasm.GlobalGet{Global: g})
}

// GlobalSet appends global.set of g.
func (c *CodeBuilder) GlobalSet(g wasm.GlobalIndex) *CodeBuilder {
	return c.Emit(wasm.GlobalSet{Global: g})
}

// Memory. Loads and stores take the alignment exponent and a static offset.

// I32Load appends i32.load.
func (c *CodeBuilder) I32Load(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Load(align, offset))
}

// I64Load appends i64.load.
func (c *CodeBuilder) I64Load(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Load(align, offset))
}

// F32Load appends f32.load.
func (c *CodeBuilder) F32Load(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.F32Load(align, offset))
}

// F64Load appends f64.load.
func (c *CodeBuilder) F64Load(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.F64Load(align, offset))
}

// I32Load8S appends i32.load8_s.
func (c *CodeBuilder) I32Load8S(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Load8S(align, offset))
}

// I32Load8U appends i32.load8_u.
func (c *CodeBuilder) I32Load8U(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Load8U(align, offset))
}

// I32Load16S appends i32.load16_s.
func (c *CodeBuilder) I32Load16S(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Load16S(align, offset))
}

// I32Load16U appends i32.load16_u.
func (c *CodeBuilder) I32Load16U(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Load16U(align, offset))
}

// I64Load8S appends i64.load8_s.
func (c *CodeBuilder) I64Load8S(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Load8S(align, offset))
}

// I64Load8U appends i64.load8_u.
func (c *CodeBuilder) I64Load8U(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Load8U(align, offset))
}

// I64Load16S appends i64.load16_s.
func (c *CodeBuilder) I64Load16S(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Load16S(align, offset))
}

// I64Load16U appends i64.load16_u.
func (c *CodeBuilder) I64Load16U(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Load16U(align, offset))
}

// I64Load32S appends i64.load32_s.
func (c *CodeBuilder) I64Load32S(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Load32S(align, offset))
}

// I64Load32U appends i64.load32_u.
func (c *CodeBuilder) I64Load32U(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Load32U(align, offset))
}

// I32Store appends i32.store.
func (c *CodeBuilder) I32Store(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Store(align, offset))
}

// I64Store appends i64.store.
func (c *CodeBuilder) I64Store(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Store(align, offset))
}

// F32Store appends f32.store.
func (c *CodeBuilder) F32Store(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.F32Store(align, offset))
}

// F64Store appends f64.store.
func (c *CodeBuilder) F64Store(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.F64Store(align, offset))
}

// I32Store8 appends i32.store8.
func (c *CodeBuilder) I32Store8(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Store8(align, offset))
}

// I32Store16 appends i32.store16.
func (c *CodeBuilder) I32Store16(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I32Store16(align, offset))
}

// I64Store8 appends i64.store8.
func (c *CodeBuilder) I64Store8(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Store8(align, offset))
}

// I64Store16 appends i64.store16.
func (c *CodeBuilder) I64Store16(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Store16(align, offset))
}

// I64Store32 appends i64.store32.
func (c *CodeBuilder) I64Store32(align, offset uint32) *CodeBuilder {
	return c.Emit(wasm.I64Store32(align, offset))
}

// MemorySize appends memory.size.
func (c *CodeBuilder) MemorySize() *CodeBuilder {
	return c.Emit(wasm.MemorySize)
}

// MemoryGrow appends memory.grow.
func (c *CodeBuilder) MemoryGrow() *CodeBuilder {
	return c.Emit(wasm.MemoryGrow)
}

// Constants

// I32Const appends i32.const v.
func (c *CodeBuilder) I32Const(v int32) *CodeBuilder {
	return c.Emit(wasm.I32Const{Value: v})
}

// I64Const appends i64.const v.
func (c *CodeBuilder) I64Const(v int64) *CodeBuilder {
	return c.Emit(wasm.I64Const{Value: v})
}

// F32Const appends f32.const v.
func (c *CodeBuilder) F32Const(v float32) *CodeBuilder {
	return c.Emit(wasm.F32ConstOf(v))
}

// F64Const appends f64.const v.
func (c *CodeBuilder) F64Const(v float64) *CodeBuilder {
	return c.Emit(wasm.F64ConstOf(v))
}

// Numeric

// I32Eqz appends i32.eqz.
func (c *CodeBuilder) I32Eqz() *CodeBuilder {
	return c.Emit(wasm.I32Eqz)
}

// I32Eq appends i32.eq.
func (c *CodeBuilder) I32Eq() *CodeBuilder {
	return c.Emit(wasm.I32Eq)
}

// I32Ne appends i32.ne.
func (c *CodeBuilder) I32Ne() *CodeBuilder {
	return c.Emit(wasm.I32Ne)
}

// I32LtS appends i32.lt_s.
func (c *CodeBuilder) I32LtS() *CodeBuilder {
	return c.Emit(wasm.I32LtS)
}

// I32LtU appends i32.lt_u.
func (c *CodeBuilder) I32LtU() *CodeBuilder {
	return c.Emit(wasm.I32LtU)
}

// I32GtS appends i32.gt_s.
func (c *CodeBuilder) I32GtS() *CodeBuilder {
	return c.Emit(wasm.I32GtS)
}

// I32GtU appends i32.gt_u.
func (c *CodeBuilder) I32GtU() *CodeBuilder {
	return c.Emit(wasm.I32GtU)
}

// I32LeS appends i32.le_s.
func (c *CodeBuilder) I32LeS() *CodeBuilder {
	return c.Emit(wasm.I32LeS)
}

// I32LeU appends i32.le_u.
func (c *CodeBuilder) I32LeU() *CodeBuilder {
	return c.Emit(wasm.I32LeU)
}

// I32GeS appends i32.ge_s.
func (c *CodeBuilder) I32GeS() *CodeBuilder {
	return c.Emit(wasm.I32GeS)
}

// I32GeU appends i32.ge_u.
func (c *CodeBuilder) I32GeU() *CodeBuilder {
	return c.Emit(wasm.I32GeU)
}

// I64Eqz appends i64.eqz.
func (c *CodeBuilder) I64Eqz() *CodeBuilder {
	return c.Emit(wasm.I64Eqz)
}

// I64Eq appends i64.eq.
func (c *CodeBuilder) I64Eq() *CodeBuilder {
	return c.Emit(wasm.I64Eq)
}

// I64Ne appends i64.ne.
func (c *CodeBuilder) I64Ne() *CodeBuilder {
	return c.Emit(wasm.I64Ne)
}

// I64LtS appends i64.lt_s.
func (c *CodeBuilder) I64LtS() *CodeBuilder {
	return c.Emit(wasm.I64LtS)
}

// I64LtU appends i64.lt_u.
func (c *CodeBuilder) I64LtU() *CodeBuilder {
	return c.Emit(wasm.I64LtU)
}

// I64GtS appends i64.gt_s.
func (c *CodeBuilder) I64GtS() *CodeBuilder {
	return c.Emit(wasm.I64GtS)
}

// I64GtU appends i64.gt_u.
func (c *CodeBuilder) I64GtU() *CodeBuilder {
	return c.Emit(wasm.I64GtU)
}

// I64LeS appends i64.le_s.
func (c *CodeBuilder) I64LeS() *CodeBuilder {
	return c.Emit(wasm.I64LeS)
}

// I64LeU appends i64.le_u.
func (c *CodeBuilder) I64LeU() *CodeBuilder {
	return c.Emit(wasm.I64LeU)
}

// I64GeS appends i64.ge_s.
func (c *CodeBuilder) I64GeS() *CodeBuilder {
	return c.Emit(wasm.I64GeS)
}

// I64GeU appends i64.ge_u.
func (c *CodeBuilder) I64GeU() *CodeBuilder {
	return c.Emit(wasm.I64GeU)
}

// F32Eq appends f32.eq.
func (c *CodeBuilder) F32Eq() *CodeBuilder {
	return c.Emit(wasm.F32Eq)
}

// F32Ne appends f32.ne.
func (c *CodeBuilder) F32Ne() *CodeBuilder {
	return c.Emit(wasm.F32Ne)
}

// F32Lt appends f32.lt.
func (c *CodeBuilder) F32Lt() *CodeBuilder {
	return c.Emit(wasm.F32Lt)
}

// F32Gt appends f32.gt.
func (c *CodeBuilder) F32Gt() *CodeBuilder {
	return c.Emit(wasm.F32Gt)
}

// F32Le appends f32.le.
func (c *CodeBuilder) F32Le() *CodeBuilder {
	return c.Emit(wasm.F32Le)
}

// F32Ge appends f32.ge.
func (c *CodeBuilder) F32Ge() *CodeBuilder {
	return c.Emit(wasm.F32Ge)
}

// F64Eq appends f64.eq.
func (c *CodeBuilder) F64Eq() *CodeBuilder {
	return c.Emit(wasm.F64Eq)
}

// F64Ne appends f64.ne.
func (c *CodeBuilder) F64Ne() *CodeBuilder {
	return c.Emit(wasm.F64Ne)
}

// F64Lt appends f64.lt.
func (c *CodeBuilder) F64Lt() *CodeBuilder {
	return c.Emit(wasm.F64Lt)
}

// F64Gt appends f64.gt.
func (c *CodeBuilder) F64Gt() *CodeBuilder {
	return c.Emit(wasm.F64Gt)
}

// F64Le appends f64.le.
func (c *CodeBuilder) F64Le() *CodeBuilder {
	return c.Emit(wasm.F64Le)
}

// F64Ge appends f64.ge.
func (c *CodeBuilder) F64Ge() *CodeBuilder {
	return c.Emit(wasm.F64Ge)
}

// I32Clz appends i32.clz.
func (c *CodeBuilder) I32Clz() *CodeBuilder {
	return c.Emit(wasm.I32Clz)
}

// I32Ctz appends i32.ctz.
func (c *CodeBuilder) I32Ctz() *CodeBuilder {
	return c.Emit(wasm.I32Ctz)
}

// I32Popcnt appends i32.popcnt.
func (c *CodeBuilder) I32Popcnt() *CodeBuilder {
	return c.Emit(wasm.I32Popcnt)
}

// I32Add appends i32.add.
func (c *CodeBuilder) I32Add() *CodeBuilder {
	return c.Emit(wasm.I32Add)
}

// I32Sub appends i32.sub.
func (c *CodeBuilder) I32Sub() *CodeBuilder {
	return c.Emit(wasm.I32Sub)
}

// I32Mul appends i32.mul.
func (c *CodeBuilder) I32Mul() *CodeBuilder {
	return c.Emit(wasm.I32Mul)
}

// I32DivS appends i32.div_s.
func (c *CodeBuilder) I32DivS() *CodeBuilder {
	return c.Emit(wasm.I32DivS)
}

// I32DivU appends i32.div_u.
func (c *CodeBuilder) I32DivU() *CodeBuilder {
	return c.Emit(wasm.I32DivU)
}

// I32RemS appends i32.rem_s.
func (c *CodeBuilder) I32RemS() *CodeBuilder {
	return c.Emit(wasm.I32RemS)
}

// I32RemU appends i32.rem_u.
func (c *CodeBuilder) I32RemU() *CodeBuilder {
	return c.Emit(wasm.I32RemU)
}

// I32And appends i32.and.
func (c *CodeBuilder) I32And() *CodeBuilder {
	return c.Emit(wasm.I32And)
}

// I32Or appends i32.or.
func (c *CodeBuilder) I32Or() *CodeBuilder {
	return c.Emit(wasm.I32Or)
}

// I32Xor appends i32.xor.
func (c *CodeBuilder) I32Xor() *CodeBuilder {
	return c.Emit(wasm.I32Xor)
}

// I32Shl appends i32.shl.
func (c *CodeBuilder) I32Shl() *CodeBuilder {
	return c.Emit(wasm.I32Shl)
}

// I32ShrS appends i32.shr_s.
func (c *CodeBuilder) I32ShrS() *CodeBuilder {
	return c.Emit(wasm.I32ShrS)
}

// I32ShrU appends i32.shr_u.
func (c *CodeBuilder) I32ShrU() *CodeBuilder {
	return c.Emit(wasm.I32ShrU)
}

// I32Rotl appends i32.rotl.
func (c *CodeBuilder) I32Rotl() *CodeBuilder {
	return c.Emit(wasm.I32Rotl)
}

// I32Rotr appends i32.rotr.
func (c *CodeBuilder) I32Rotr() *CodeBuilder {
	return c.Emit(wasm.I32Rotr)
}

// I64Clz appends i64.clz.
func (c *CodeBuilder) I64Clz() *CodeBuilder {
	return c.Emit(wasm.I64Clz)
}

// I64Ctz appends i64.ctz.
func (c *CodeBuilder) I64Ctz() *CodeBuilder {
	return c.Emit(wasm.I64Ctz)
}

// I64Popcnt appends i64.popcnt.
func (c *CodeBuilder) I64Popcnt() *CodeBuilder {
	return c.Emit(wasm.I64Popcnt)
}

// I64Add appends i64.add.
func (c *CodeBuilder) I64Add() *CodeBuilder {
	return c.Emit(wasm.I64Add)
}

// I64Sub appends i64.sub.
func (c *CodeBuilder) I64Sub() *CodeBuilder {
	return c.Emit(wasm.I64Sub)
}

// I64Mul appends i64.mul.
func (c *CodeBuilder) I64Mul() *CodeBuilder {
	return c.Emit(wasm.I64Mul)
}

// I64DivS appends i64.div_s.
func (c *CodeBuilder) I64DivS() *CodeBuilder {
	return c.Emit(wasm.I64DivS)
}

// I64DivU appends i64.div_u.
func (c *CodeBuilder) I64DivU() *CodeBuilder {
	return c.Emit(wasm.I64DivU)
}

// I64RemS appends i64.rem_s.
func (c *CodeBuilder) I64RemS() *CodeBuilder {
	return c.Emit(wasm.I64RemS)
}

// I64RemU appends i64.rem_u.
func (c *CodeBuilder) I64RemU() *CodeBuilder {
	return c.Emit(wasm.I64RemU)
}

// I64And appends i64.and.
func (c *CodeBuilder) I64And() *CodeBuilder {
	return c.Emit(wasm.I64And)
}

// I64Or appends i64.or.
func (c *CodeBuilder) I64Or() *CodeBuilder {
	return c.Emit(wasm.I64Or)
}

// I64Xor appends i64.xor.
func (c *CodeBuilder) I64Xor() *CodeBuilder {
	return c.Emit(wasm.I64Xor)
}

// I64Shl appends i64.shl.
func (c *CodeBuilder) I64Shl() *CodeBuilder {
	return c.Emit(wasm.I64Shl)
}

// I64ShrS appends i64.shr_s.
func (c *CodeBuilder) I64ShrS() *CodeBuilder {
	return c.Emit(wasm.I64ShrS)
}

// I64ShrU appends i64.shr_u.
func (c *CodeBuilder) I64ShrU() *CodeBuilder {
	return c.Emit(wasm.I64ShrU)
}

// I64Rotl appends i64.rotl.
func (c *CodeBuilder) I64Rotl() *CodeBuilder {
	return c.Emit(wasm.I64Rotl)
}

// I64Rotr appends i64.rotr.
func (c *CodeBuilder) I64Rotr() *CodeBuilder {
	return c.Emit(wasm.I64Rotr)
}

// F32Abs appends f32.abs.
func (c *CodeBuilder) F32Abs() *CodeBuilder {
	return c.Emit(wasm.F32Abs)
}

// F32Neg appends f32.neg.
func (c *CodeBuilder) F32Neg() *CodeBuilder {
	return c.Emit(wasm.F32Neg)
}

// F32Ceil appends f32.ceil.
func (c *CodeBuilder) F32Ceil() *CodeBuilder {
	return c.Emit(wasm.F32Ceil)
}

// F32Floor appends f32.floor.
func (c *CodeBuilder) F32Floor() *CodeBuilder {
	return c.Emit(wasm.F32Floor)
}

// F32Trunc appends f32.trunc.
func (c *CodeBuilder) F32Trunc() *CodeBuilder {
	return c.Emit(wasm.F32Trunc)
}

// F32Nearest appends f32.nearest.
func (c *CodeBuilder) F32Nearest() *CodeBuilder {
	return c.Emit(wasm.F32Nearest)
}

// F32Sqrt appends f32.sqrt.
func (c *CodeBuilder) F32Sqrt() *CodeBuilder {
	return c.Emit(wasm.F32Sqrt)
}

// F32Add appends f32.add.
func (c *CodeBuilder) F32Add() *CodeBuilder {
	return c.Emit(wasm.F32Add)
}

// F32Sub appends f32.sub.
func (c *CodeBuilder) F32Sub() *CodeBuilder {
	return c.Emit(wasm.F32Sub)
}

// F32Mul appends f32.mul.
func (c *CodeBuilder) F32Mul() *CodeBuilder {
	return c.Emit(wasm.F32Mul)
}

// F32Div appends f32.div.
func (c *CodeBuilder) F32Div() *CodeBuilder {
	return c.Emit(wasm.F32Div)
}

// F32Min appends f32.min.
func (c *CodeBuilder) F32Min() *CodeBuilder {
	return c.Emit(wasm.F32Min)
}

// F32Max appends f32.max.
func (c *CodeBuilder) F32Max() *CodeBuilder {
	return c.Emit(wasm.F32Max)
}

// F32Copysign appends f32.copysign.
func (c *CodeBuilder) F32Copysign() *CodeBuilder {
	return c.Emit(wasm.F32Copysign)
}

// F64Abs appends f64.abs.
func (c *CodeBuilder) F64Abs() *CodeBuilder {
	return c.Emit(wasm.F64Abs)
}

// F64Neg appends f64.neg.
func (c *CodeBuilder) F64Neg() *CodeBuilder {
	return c.Emit(wasm.F64Neg)
}

// F64Ceil appends f64.ceil.
func (c *CodeBuilder) F64Ceil() *CodeBuilder {
	return c.Emit(wasm.F64Ceil)
}

// F64Floor appends f64.floor.
func (c *CodeBuilder) F64Floor() *CodeBuilder {
	return c.Emit(wasm.F64Floor)
}

// F64Trunc appends f64.trunc.
func (c *CodeBuilder) F64Trunc() *CodeBuilder {
	return c.Emit(wasm.F64Trunc)
}

// F64Nearest appends f64.nearest.
func (c *CodeBuilder) F64Nearest() *CodeBuilder {
	return c.Emit(wasm.F64Nearest)
}

// F64Sqrt appends f64.sqrt.
func (c *CodeBuilder) F64Sqrt() *CodeBuilder {
	return c.Emit(wasm.F64Sqrt)
}

// F64Add appends f64.add.
func (c *CodeBuilder) F64Add() *CodeBuilder {
	return c.Emit(wasm.F64Add)
}

// F64Sub appends f64.sub.
func (c *CodeBuilder) F64Sub() *CodeBuilder {
	return c.Emit(wasm.F64Sub)
}

// F64Mul appends f64.mul.
func (c *CodeBuilder) F64Mul() *CodeBuilder {
	return c.Emit(wasm.F64Mul)
}

// F64Div appends f64.div.
func (c *CodeBuilder) F64Div() *CodeBuilder {
	return c.Emit(wasm.F64Div)
}

// F64Min appends f64.min.
func (c *CodeBuilder) F64Min() *CodeBuilder {
	return c.Emit(wasm.F64Min)
}

// F64Max appends f64.max.
func (c *CodeBuilder) F64Max() *CodeBuilder {
	return c.Emit(wasm.F64Max)
}

// F64Copysign appends f64.copysign.
func (c *CodeBuilder) F64Copysign() *CodeBuilder {
	return c.Emit(wasm.F64Copysign)
}

// I32WrapI64 appends i32.wrap_i64.
func (c *CodeBuilder) I32WrapI64() *CodeBuilder {
	return c.Emit(wasm.I32WrapI64)
}

// I32TruncF32S appends i32.trunc_f32_s.
func (c *CodeBuilder) I32TruncF32S() *CodeBuilder {
	return c.Emit(wasm.I32TruncF32S)
}

// I32TruncF32U appends i32.trunc_f32_u.
func (c *CodeBuilder) I32TruncF32U() *CodeBuilder {
	return c.Emit(wasm.I32TruncF32U)
}

// I32TruncF64S appends i32.trunc_f64_s.
func (c *CodeBuilder) I32TruncF64S() *CodeBuilder {
	return c.Emit(wasm.I32TruncF64S)
}

// I32TruncF64U appends i32.trunc_f64_u.
func (c *CodeBuilder) I32TruncF64U() *CodeBuilder {
	return c.Emit(wasm.I32TruncF64U)
}

// I64ExtendI32S appends i64.extend_i32_s.
func (c *CodeBuilder) I64ExtendI32S() *CodeBuilder {
	return c.Emit(wasm.I64ExtendI32S)
}

// I64ExtendI32U appends i64.extend_i32_u.
func (c *CodeBuilder) I64ExtendI32U() *CodeBuilder {
	return c.Emit(wasm.I64ExtendI32U)
}

// I64TruncF32S appends i64.trunc_f32_s.
func (c *CodeBuilder) I64TruncF32S() *CodeBuilder {
	return c.Emit(wasm.I64TruncF32S)
}

// I64TruncF32U appends i64.trunc_f32_u.
func (c *CodeBuilder) I64TruncF32U() *CodeBuilder {
	return c.Emit(wasm.I64TruncF32U)
}

// I64TruncF64S appends i64.trunc_f64_s.
func (c *CodeBuilder) I64TruncF64S() *CodeBuilder {
	return c.Emit(wasm.I64TruncF64S)
}

// I64TruncF64U appends i64.trunc_f64_u.
func (c *CodeBuilder) I64TruncF64U() *CodeBuilder {
	return c.Emit(wasm.I64TruncF64U)
}

// F32ConvertI32S appends f32.convert_i32_s.
func (c *CodeBuilder) F32ConvertI32S() *CodeBuilder {
	return c.Emit(wasm.F32ConvertI32S)
}

// F32ConvertI32U appends f32.convert_i32_u.
func (c *CodeBuilder) F32ConvertI32U() *CodeBuilder {
	return c.Emit(wasm.F32ConvertI32U)
}

// F32ConvertI64S appends f32.convert_i64_s.
func (c *CodeBuilder) F32ConvertI64S() *CodeBuilder {
	return c.Emit(wasm.F32ConvertI64S)
}

// F32ConvertI64U appends f32.convert_i64_u.
func (c *CodeBuilder) F32ConvertI64U() *CodeBuilder {
	return c.Emit(wasm.F32ConvertI64U)
}

// F32DemoteF64 appends f32.demote_f64.
func (c *CodeBuilder) F32DemoteF64() *CodeBuilder {
	return c.Emit(wasm.F32DemoteF64)
}

// F64ConvertI32S appends f64.convert_i32_s.
func (c *CodeBuilder) F64ConvertI32S() *CodeBuilder {
	return c.Emit(wasm.F64ConvertI32S)
}

// F64ConvertI32U appends f64.convert_i32_u.
func (c *CodeBuilder) F64ConvertI32U() *CodeBuilder {
	return c.Emit(wasm.F64ConvertI32U)
}

// F64ConvertI64S appends f64.convert_i64_s.
func (c *CodeBuilder) F64ConvertI64S() *CodeBuilder {
	return c.Emit(wasm.F64ConvertI64S)
}

// F64ConvertI64U appends f64.convert_i64_u.
func (c *CodeBuilder) F64ConvertI64U() *CodeBuilder {
	return c.Emit(wasm.F64ConvertI64U)
}

// F64PromoteF32 appends f64.promote_f32.
func (c *CodeBuilder) F64PromoteF32() *CodeBuilder {
	return c.Emit(wasm.F64PromoteF32)
}

// I32ReinterpretF32 appends i32.reinterpret_f32.
func (c *CodeBuilder) I32ReinterpretF32() *CodeBuilder {
	return c.Emit(wasm.I32ReinterpretF32)
}

// I64ReinterpretF64 appends i64.reinterpret_f64.
func (c *CodeBuilder) I64ReinterpretF64() *CodeBuilder {
	return c.Emit(wasm.I64ReinterpretF64)
}

// F32ReinterpretI32 appends f32.reinterpret_i32.
func (c *CodeBuilder) F32ReinterpretI32() *CodeBuilder {
	return c.Emit(wasm.F32ReinterpretI32)
}

// F64ReinterpretI64 appends f64.reinterpret_i64.
func (c *CodeBuilder) F64ReinterpretI64() *CodeBuilder {
	return c.Emit(wasm.F64ReinterpretI64)
}
