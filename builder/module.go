package builder

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-builder/errors"
	"github.com/wippyai/wasm-builder/wasm"
)

// ModuleBuilder builds a wasm.Module one entity at a time.
type ModuleBuilder struct {
	err           error
	module        wasm.Module
	funcImports   uint32
	tableImports  uint32
	memImports    uint32
	globalImports uint32
	built         bool
}

// Function is a signature with its body, ready for NewFunction.
type Function struct {
	Type wasm.FuncType
	Body wasm.FunctionBody
}

// NewModuleBuilder creates a builder for an empty module.
func NewModuleBuilder() *ModuleBuilder {
	return &ModuleBuilder{}
}

// Err returns the first construction error recorded so far.
func (b *ModuleBuilder) Err() error {
	return b.err
}

func (b *ModuleBuilder) fail(err *errors.Error) {
	Logger().Warn("module construction error", zap.Error(err))
	if b.err == nil {
		b.err = err
	}
}

// open records an error and returns false once Build has run.
func (b *ModuleBuilder) open(op string) bool {
	if b.built {
		b.fail(errors.Finalized(op))
		return false
	}
	return true
}

// AddType appends a signature to the type space. Identical signatures
// get distinct indices; use TypeOf to share one.
func (b *ModuleBuilder) AddType(ft wasm.FuncType) wasm.TypeIndex {
	if !b.open("AddType") {
		return 0
	}
	idx := wasm.TypeIndex(len(b.module.Types))
	b.module.Types = append(b.module.Types, ft)
	Logger().Debug("type added", zap.Uint32("index", uint32(idx)), zap.Stringer("type", ft))
	return idx
}

// TypeOf returns the index of an existing signature equal to ft, adding it
// if there is none.
func (b *ModuleBuilder) TypeOf(ft wasm.FuncType) wasm.TypeIndex {
	for i, t := range b.module.Types {
		if t.Equal(ft) {
			return wasm.TypeIndex(i)
		}
	}
	return b.AddType(ft)
}

// AddImport appends a raw import. Prefer the typed Import* methods, which
// also return the index in the imported entity's own space.
func (b *ModuleBuilder) AddImport(imp wasm.Import) wasm.ImportIndex {
	if !b.open("AddImport") {
		return 0
	}
	idx := wasm.ImportIndex(len(b.module.Imports))
	switch imp.Kind.(type) {
	case wasm.FunctionImport:
		b.funcImports++
	case wasm.TableType:
		if len(b.module.Tables) > 0 {
			b.failImportAfterDefinition("table", imp, idx)
		}
		b.tableImports++
	case wasm.MemoryType:
		if len(b.module.Memories) > 0 {
			b.failImportAfterDefinition("memory", imp, idx)
		}
		b.memImports++
	case wasm.GlobalType:
		if len(b.module.Globals) > 0 {
			b.failImportAfterDefinition("global", imp, idx)
		}
		b.globalImports++
	default:
		b.fail(errors.New(errors.PhaseBuild, errors.KindInvalidInput).
			Path("imports", strconv.Itoa(int(idx))).
			Detail("import %s.%s has no kind", imp.Module, imp.Field).
			Build())
	}
	b.module.Imports = append(b.module.Imports, imp)
	Logger().Debug("import added",
		zap.Uint32("index", uint32(idx)),
		zap.String("module", imp.Module),
		zap.String("field", imp.Field))
	return idx
}

func (b *ModuleBuilder) failImportAfterDefinition(what string, imp wasm.Import, idx wasm.ImportIndex) {
	b.fail(errors.New(errors.PhaseBuild, errors.KindInvalidInput).
		Path("imports", strconv.Itoa(int(idx))).
		Detail("%s import %s.%s after a %s definition would renumber it", what, imp.Module, imp.Field, what).
		Build())
}

// ImportFunction imports a function and returns its function-space reference.
func (b *ModuleBuilder) ImportFunction(module, field string, sig wasm.FuncType) wasm.FunctionSpaceIndex {
	ordinal := wasm.ImportedFunctionIndex(b.funcImports)
	b.AddImport(wasm.Import{Module: module, Field: field, Kind: wasm.FunctionImport{Type: b.TypeOf(sig)}})
	return wasm.ImportedFunction(ordinal)
}

// ImportTable imports a table. Tables must be imported before any is defined.
func (b *ModuleBuilder) ImportTable(module, field string, t wasm.TableType) wasm.TableIndex {
	idx := wasm.TableIndex(b.tableImports)
	b.AddImport(wasm.Import{Module: module, Field: field, Kind: t})
	return idx
}

// ImportMemory imports a memory. Memories must be imported before any is defined.
func (b *ModuleBuilder) ImportMemory(module, field string, m wasm.MemoryType) wasm.MemoryIndex {
	idx := wasm.MemoryIndex(b.memImports)
	b.AddImport(wasm.Import{Module: module, Field: field, Kind: m})
	return idx
}

// ImportGlobal imports a global. Globals must be imported before any is defined.
func (b *ModuleBuilder) ImportGlobal(module, field string, g wasm.GlobalType) wasm.GlobalIndex {
	idx := wasm.GlobalIndex(b.globalImports)
	b.AddImport(wasm.Import{Module: module, Field: field, Kind: g})
	return idx
}

// NextFunctionIndex returns the index the next NewFunction call will assign,
// for bodies that call themselves or a function defined later.
func (b *ModuleBuilder) NextFunctionIndex() wasm.FunctionIndex {
	return wasm.FunctionIndex(len(b.module.Functions))
}

// NewFunction declares f's signature, appends its body and returns its
// local function index.
func (b *ModuleBuilder) NewFunction(f *Function) wasm.FunctionIndex {
	if !b.open("NewFunction") {
		return 0
	}
	if f == nil {
		b.fail(errors.InvalidInput(errors.PhaseBuild, "nil function"))
		return 0
	}
	if f.Body.Resolved() {
		b.fail(errors.New(errors.PhaseBuild, errors.KindAlreadyResolved).
			Path("functions", strconv.Itoa(len(b.module.Functions))).
			Detail("body was resolved before it was added").
			Build())
		return 0
	}

	typeIdx := b.TypeOf(f.Type)
	fnIdx := wasm.FunctionIndex(len(b.module.Functions))
	b.module.Functions = append(b.module.Functions, typeIdx)

	codeIdx := wasm.CodeIndex(len(b.module.Code))
	b.module.Code = append(b.module.Code, wasm.FunctionBody{
		Locals: append([]wasm.LocalEntry(nil), f.Body.Locals...),
		Code:   append([]wasm.Instruction(nil), f.Body.Code...),
	})

	if uint32(fnIdx) != uint32(codeIdx) {
		panic("builder: function index " + strconv.Itoa(int(fnIdx)) + " paired with code index " + strconv.Itoa(int(codeIdx)))
	}

	Logger().Debug("function added",
		zap.Uint32("index", uint32(fnIdx)),
		zap.Uint32("type", uint32(typeIdx)),
		zap.Int("instructions", len(f.Body.Code)))
	return fnIdx
}

// AddTable defines a table and returns its index after any imported tables.
func (b *ModuleBuilder) AddTable(t wasm.TableType) wasm.TableIndex {
	if !b.open("AddTable") {
		return 0
	}
	idx := wasm.TableIndex(b.tableImports + uint32(len(b.module.Tables)))
	b.module.Tables = append(b.module.Tables, t)
	return idx
}

// AddMemory defines a memory and returns its index after any imported memories.
func (b *ModuleBuilder) AddMemory(m wasm.MemoryType) wasm.MemoryIndex {
	if !b.open("AddMemory") {
		return 0
	}
	idx := wasm.MemoryIndex(b.memImports + uint32(len(b.module.Memories)))
	b.module.Memories = append(b.module.Memories, m)
	return idx
}

// AddGlobal defines a global and returns its index after any imported globals.
func (b *ModuleBuilder) AddGlobal(t wasm.GlobalType, init wasm.InitExpr) wasm.GlobalIndex {
	if !b.open("AddGlobal") {
		return 0
	}
	idx := wasm.GlobalIndex(b.globalImports + uint32(len(b.module.Globals)))
	b.module.Globals = append(b.module.Globals, wasm.Global{Type: t, Init: init})
	return idx
}

// Export publishes kind under field.
func (b *ModuleBuilder) Export(field string, kind wasm.ExportKind) wasm.ExportIndex {
	if !b.open("Export") {
		return 0
	}
	idx := wasm.ExportIndex(len(b.module.Exports))
	b.module.Exports = append(b.module.Exports, wasm.Export{Field: field, Kind: kind})
	Logger().Debug("export added", zap.Uint32("index", uint32(idx)), zap.String("field", field))
	return idx
}

// ExportFunction exports an imported or local function.
func (b *ModuleBuilder) ExportFunction(field string, f wasm.FunctionSpaceIndex) wasm.ExportIndex {
	return b.Export(field, f)
}

// ExportTable exports a table.
func (b *ModuleBuilder) ExportTable(field string, t wasm.TableIndex) wasm.ExportIndex {
	return b.Export(field, t)
}

// ExportMemory exports a memory.
func (b *ModuleBuilder) ExportMemory(field string, m wasm.MemoryIndex) wasm.ExportIndex {
	return b.Export(field, m)
}

// ExportGlobal exports a global.
func (b *ModuleBuilder) ExportGlobal(field string, g wasm.GlobalIndex) wasm.ExportIndex {
	return b.Export(field, g)
}

// SetStart makes f run when the module is instantiated.
func (b *ModuleBuilder) SetStart(f wasm.FunctionSpaceIndex) {
	if !b.open("SetStart") {
		return
	}
	b.module.Start = &f
}

// AddElement fills table slots from offset with funcs. Only table 0 exists.
func (b *ModuleBuilder) AddElement(table wasm.TableIndex, offset wasm.InitExpr, funcs ...wasm.FunctionSpaceIndex) wasm.ElementIndex {
	if !b.open("AddElement") {
		return 0
	}
	idx := wasm.ElementIndex(len(b.module.Elements))
	if table != 0 {
		b.fail(errors.New(errors.PhaseBuild, errors.KindOutOfBounds).
			Path("elements", strconv.Itoa(int(idx))).
			Value(uint32(table)).
			Detail("table index must be 0").
			Build())
	}
	b.module.Elements = append(b.module.Elements, wasm.ElementSegment{
		Table:  table,
		Offset: offset,
		Elems:  append([]wasm.FunctionSpaceIndex(nil), funcs...),
	})
	return idx
}

// AddData copies data into memory from offset. Only memory 0 exists.
func (b *ModuleBuilder) AddData(mem wasm.MemoryIndex, offset wasm.InitExpr, data []byte) wasm.DataIndex {
	if !b.open("AddData") {
		return 0
	}
	idx := wasm.DataIndex(len(b.module.Data))
	if mem != 0 {
		b.fail(errors.New(errors.PhaseBuild, errors.KindOutOfBounds).
			Path("data", strconv.Itoa(int(idx))).
			Value(uint32(mem)).
			Detail("memory index must be 0").
			Build())
	}
	b.module.Data = append(b.module.Data, wasm.DataSegment{
		Memory: mem,
		Offset: offset,
		Data:   append([]byte(nil), data...),
	})
	return idx
}

// Build resolves function references, validates the module and returns it.
// The builder is finalized afterwards; calling Build again fails.
func (b *ModuleBuilder) Build() (*wasm.Module, error) {
	if b.built {
		return nil, errors.Finalized("Build")
	}
	b.built = true
	if b.err != nil {
		return nil, b.err
	}

	m := b.module
	if err := m.ResolveFunctions(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		Logger().Warn("module failed validation", zap.Error(err))
		return nil, err
	}

	Logger().Debug("module built",
		zap.Int("types", len(m.Types)),
		zap.Int("imports", len(m.Imports)),
		zap.Int("functions", len(m.Functions)),
		zap.Int("exports", len(m.Exports)))
	return &m, nil
}
