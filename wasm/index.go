package wasm

import "fmt"

// Each numbering space of a module has its own index type. Indices are
// assigned by insertion order, starting at zero.
type (
	// TypeIndex addresses the type section.
	TypeIndex uint32
	// ImportIndex addresses the import section.
	ImportIndex uint32
	// FunctionIndex addresses locally defined functions, not counting imports.
	FunctionIndex uint32
	// TableIndex addresses tables, imported first.
	TableIndex uint32
	// MemoryIndex addresses memories, imported first.
	MemoryIndex uint32
	// GlobalIndex addresses globals, imported first.
	GlobalIndex uint32
	// ExportIndex addresses the export section.
	ExportIndex uint32
	// ElementIndex addresses the element section.
	ElementIndex uint32
	// CodeIndex addresses the code section; it pairs with FunctionIndex.
	CodeIndex uint32
	// DataIndex addresses the data section.
	DataIndex uint32
	// LocalIndex addresses params then declared locals of one function.
	LocalIndex uint32
	// ImportedFunctionIndex is the ordinal of a function among function imports only.
	ImportedFunctionIndex uint32
)

type funcSpace uint8

const (
	spaceLocal funcSpace = iota
	spaceImported
	spaceResolved
)

// FunctionSpaceIndex addresses the merged function space used by call,
// exports, the start function and element segments. Imported functions come
// first, then local ones.
//
// A reference to a local function is relative to the local functions until
// Resolve shifts it past the function imports.
type FunctionSpaceIndex struct {
	n     uint32
	space funcSpace
}

// ImportedFunction references the i-th function import.
func ImportedFunction(i ImportedFunctionIndex) FunctionSpaceIndex {
	return FunctionSpaceIndex{n: uint32(i), space: spaceImported}
}

// Space returns the unresolved function-space reference to a local function.
func (i FunctionIndex) Space() FunctionSpaceIndex {
	return FunctionSpaceIndex{n: uint32(i), space: spaceLocal}
}

// Resolve returns the final function-space reference given the number of
// function imports. Imported and already resolved references are returned
// marked resolved with the same ordinal.
func (f FunctionSpaceIndex) Resolve(importedFuncs uint32) FunctionSpaceIndex {
	if f.space == spaceLocal {
		return FunctionSpaceIndex{n: f.n + importedFuncs, space: spaceResolved}
	}
	return FunctionSpaceIndex{n: f.n, space: spaceResolved}
}

// Ordinal returns the raw number carried by the reference. For an unresolved
// local reference this is the local-relative index.
func (f FunctionSpaceIndex) Ordinal() uint32 {
	return f.n
}

// IsResolved reports whether Resolve produced this value.
func (f FunctionSpaceIndex) IsResolved() bool {
	return f.space == spaceResolved
}

// Local returns the local function index for an unresolved local reference.
func (f FunctionSpaceIndex) Local() (FunctionIndex, bool) {
	if f.space != spaceLocal {
		return 0, false
	}
	return FunctionIndex(f.n), true
}

// Imported returns the import ordinal for a reference to an imported function.
func (f FunctionSpaceIndex) Imported() (ImportedFunctionIndex, bool) {
	if f.space != spaceImported {
		return 0, false
	}
	return ImportedFunctionIndex(f.n), true
}

func (f FunctionSpaceIndex) String() string {
	switch f.space {
	case spaceImported:
		return fmt.Sprintf("import:%d", f.n)
	case spaceResolved:
		return fmt.Sprintf("%d", f.n)
	default:
		return fmt.Sprintf("local:%d", f.n)
	}
}
