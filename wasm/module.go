package wasm

import (
	"github.com/wippyai/wasm-builder/wasm/internal/binary"
)

// Module is the in-memory form of a binary module. Every non-empty slice
// becomes one section when encoded; empty slices emit nothing.
//
// Functions and Code are paired by position: Functions[i] is the signature
// of the body Code[i].
type Module struct {
	Start     *FunctionSpaceIndex
	Types     []FuncType
	Imports   []Import
	Functions []TypeIndex
	Tables    []TableType
	Memories  []MemoryType
	Globals   []Global
	Exports   []Export
	Elements  []ElementSegment
	Code      []FunctionBody
	Data      []DataSegment
}

// Import binds a host entity under module/field.
type Import struct {
	Kind   ImportKind
	Module string
	Field  string
}

// ImportKind is what an import provides: FunctionImport, TableType,
// MemoryType or GlobalType.
type ImportKind interface {
	importKind() byte
}

// FunctionImport is an imported function with signature Type.
type FunctionImport struct {
	Type TypeIndex
}

func (FunctionImport) importKind() byte { return KindFunc }
func (TableType) importKind() byte      { return KindTable }
func (MemoryType) importKind() byte     { return KindMemory }
func (GlobalType) importKind() byte     { return KindGlobal }

// Export publishes an entity under Field.
type Export struct {
	Kind  ExportKind
	Field string
}

// ExportKind is what an export refers to: FunctionSpaceIndex, FunctionIndex,
// TableIndex, MemoryIndex or GlobalIndex.
type ExportKind interface {
	exportKind() byte
}

func (FunctionSpaceIndex) exportKind() byte { return KindFunc }
func (FunctionIndex) exportKind() byte      { return KindFunc }
func (TableIndex) exportKind() byte         { return KindTable }
func (MemoryIndex) exportKind() byte        { return KindMemory }
func (GlobalIndex) exportKind() byte        { return KindGlobal }

// Global is a module-defined global with its initializer.
type Global struct {
	Init InitExpr
	Type GlobalType
}

// InitExpr is a constant expression. The terminating end is written by
// the encoder and must not be included.
type InitExpr []Instruction

// ConstI32 returns the initializer i32.const v.
func ConstI32(v int32) InitExpr { return InitExpr{I32Const{Value: v}} }

// ConstI64 returns the initializer i64.const v.
func ConstI64(v int64) InitExpr { return InitExpr{I64Const{Value: v}} }

// ConstF32 returns the initializer f32.const v.
func ConstF32(v float32) InitExpr { return InitExpr{F32ConstOf(v)} }

// ConstF64 returns the initializer f64.const v.
func ConstF64(v float64) InitExpr { return InitExpr{F64ConstOf(v)} }

// GlobalInit returns the initializer reading imported global g.
func GlobalInit(g GlobalIndex) InitExpr { return InitExpr{GlobalGet{Global: g}} }

func (e InitExpr) encode(w *binary.Writer) int {
	n := encodeInstructions(w, e)
	return n + End.encode(w)
}

// ElementSegment places function references into a table starting at Offset.
type ElementSegment struct {
	Offset InitExpr
	Elems  []FunctionSpaceIndex
	Table  TableIndex
}

// DataSegment copies Data into a memory starting at Offset.
type DataSegment struct {
	Offset InitExpr
	Data   []byte
	Memory MemoryIndex
}

// LocalEntry declares Count locals of one type.
type LocalEntry struct {
	Count uint32
	Type  ValueType
}

// FunctionBody holds the locals and instructions of one defined function.
// The terminating end is written by the encoder and must not be included.
type FunctionBody struct {
	Locals   []LocalEntry
	Code     []Instruction
	resolved bool
}

// NumLocals returns the number of declared locals, params excluded.
func (b *FunctionBody) NumLocals() uint32 {
	var n uint32
	for _, l := range b.Locals {
		n += l.Count
	}
	return n
}

// Resolved reports whether ResolveFunctions has run on the body.
func (b *FunctionBody) Resolved() bool {
	return b.resolved
}

func (b *FunctionBody) encode(w *binary.Writer) int {
	body := binary.NewWriter()
	body.WriteU32(uint32(len(b.Locals)))
	for _, l := range b.Locals {
		body.WriteU32(l.Count)
		body.WriteVarInt7(l.Type.varint7())
	}
	encodeInstructions(body, b.Code)
	End.encode(body)

	n := w.WriteU32(uint32(body.Len()))
	return n + w.WriteBytes(body.Bytes())
}

// NumImportedFunctions returns how many imports are functions.
func (m *Module) NumImportedFunctions() uint32 {
	return m.countImports(KindFunc)
}

// NumImportedTables returns how many imports are tables.
func (m *Module) NumImportedTables() uint32 {
	return m.countImports(KindTable)
}

// NumImportedMemories returns how many imports are memories.
func (m *Module) NumImportedMemories() uint32 {
	return m.countImports(KindMemory)
}

// NumImportedGlobals returns how many imports are globals.
func (m *Module) NumImportedGlobals() uint32 {
	return m.countImports(KindGlobal)
}

func (m *Module) countImports(kind byte) uint32 {
	var n uint32
	for _, imp := range m.Imports {
		if imp.Kind != nil && imp.Kind.importKind() == kind {
			n++
		}
	}
	return n
}

// FunctionSpaceSize returns imported plus defined functions.
func (m *Module) FunctionSpaceSize() uint32 {
	return m.NumImportedFunctions() + uint32(len(m.Functions))
}

// FunctionType returns the signature of the function at a resolved
// function-space ordinal.
func (m *Module) FunctionType(ordinal uint32) (FuncType, bool) {
	var typeIdx TypeIndex
	imported := m.NumImportedFunctions()
	if ordinal < imported {
		var seen uint32
		for _, imp := range m.Imports {
			fi, ok := imp.Kind.(FunctionImport)
			if !ok {
				continue
			}
			if seen == ordinal {
				typeIdx = fi.Type
				break
			}
			seen++
		}
	} else {
		local := ordinal - imported
		if local >= uint32(len(m.Functions)) {
			return FuncType{}, false
		}
		typeIdx = m.Functions[local]
	}
	if uint32(typeIdx) >= uint32(len(m.Types)) {
		return FuncType{}, false
	}
	return m.Types[typeIdx], true
}
