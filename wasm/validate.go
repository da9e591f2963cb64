package wasm

import (
	"strconv"

	"github.com/wippyai/wasm-builder/errors"
)

// MaxMemoryPages is the largest MVP memory, 4GiB in 64KiB pages.
const MaxMemoryPages = 65536

// Validate checks the module for structural validity: every index points at
// an existing entity, functions and bodies pair up, segments target table or
// memory 0, and initializers are constant. It does not type-check bodies.
func (m *Module) Validate() error {
	if err := m.validateTypes(); err != nil {
		return err
	}
	if err := m.validateImports(); err != nil {
		return err
	}
	if err := m.validateTypeIndices(); err != nil {
		return err
	}
	if err := m.validateCodeCount(); err != nil {
		return err
	}
	if err := m.validateTablesAndMemories(); err != nil {
		return err
	}
	if err := m.validateGlobals(); err != nil {
		return err
	}
	if err := m.validateExports(); err != nil {
		return err
	}
	if err := m.validateStart(); err != nil {
		return err
	}
	if err := m.validateElements(); err != nil {
		return err
	}
	if err := m.validateData(); err != nil {
		return err
	}
	return m.validateCode()
}

func path(section string, i int, rest ...string) []string {
	return append([]string{section, strconv.Itoa(i)}, rest...)
}

func (m *Module) validateTypes() error {
	for i, ft := range m.Types {
		for j, p := range ft.Params {
			if !p.Valid() {
				return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
					Path(path("types", i, "params", strconv.Itoa(j))...).
					Value(byte(p)).
					Detail("invalid value type %s", p).
					Build()
			}
		}
		if ft.Result != nil && !ft.Result.Valid() {
			return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(path("types", i, "result")...).
				Value(byte(*ft.Result)).
				Detail("invalid value type %s", *ft.Result).
				Build()
		}
	}
	return nil
}

func (m *Module) validateImports() error {
	numTypes := len(m.Types)
	for i, imp := range m.Imports {
		switch k := imp.Kind.(type) {
		case nil:
			return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(path("imports", i)...).
				Detail("import %s.%s has no kind", imp.Module, imp.Field).
				Build()
		case FunctionImport:
			if int(k.Type) >= numTypes {
				return errors.OutOfBounds(errors.PhaseValidate, path("imports", i, "type"), int(k.Type), numTypes)
			}
		case GlobalType:
			if !k.Content.Valid() {
				return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
					Path(path("imports", i)...).
					Detail("invalid global type %s", k.Content).
					Build()
			}
		case TableType:
			if err := validateLimits(k.Limits, path("imports", i)); err != nil {
				return err
			}
		case MemoryType:
			if err := validateMemoryLimits(k.Limits, path("imports", i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Module) validateTypeIndices() error {
	numTypes := len(m.Types)
	for i, typeIdx := range m.Functions {
		if int(typeIdx) >= numTypes {
			return errors.OutOfBounds(errors.PhaseValidate, path("functions", i), int(typeIdx), numTypes)
		}
	}
	return nil
}

func (m *Module) validateCodeCount() error {
	if len(m.Functions) != len(m.Code) {
		return errors.Mismatch(errors.PhaseValidate, []string{"code"}, "body count", len(m.Code), len(m.Functions))
	}
	return nil
}

func (m *Module) validateTablesAndMemories() error {
	if n := int(m.NumImportedTables()) + len(m.Tables); n > 1 {
		return errors.New(errors.PhaseValidate, errors.KindUnsupported).
			Path("tables").
			Value(n).
			Detail("at most one table is supported, have %d", n).
			Build()
	}
	if n := int(m.NumImportedMemories()) + len(m.Memories); n > 1 {
		return errors.New(errors.PhaseValidate, errors.KindUnsupported).
			Path("memories").
			Value(n).
			Detail("at most one memory is supported, have %d", n).
			Build()
	}
	for i, t := range m.Tables {
		if t.Element != AnyFunc {
			return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(path("tables", i)...).
				Value(byte(t.Element)).
				Detail("element type must be anyfunc").
				Build()
		}
		if err := validateLimits(t.Limits, path("tables", i)); err != nil {
			return err
		}
	}
	for i, mem := range m.Memories {
		if err := validateMemoryLimits(mem.Limits, path("memories", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateLimits(l ResizableLimits, at []string) error {
	if l.Maximum != nil && *l.Maximum < l.Initial {
		return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Path(at...).
			Value(*l.Maximum).
			Detail("maximum %d below initial %d", *l.Maximum, l.Initial).
			Build()
	}
	return nil
}

func validateMemoryLimits(l ResizableLimits, at []string) error {
	if err := validateLimits(l, at); err != nil {
		return err
	}
	if l.Initial > MaxMemoryPages {
		return errors.OutOfBounds(errors.PhaseValidate, at, int(l.Initial), MaxMemoryPages+1)
	}
	if l.Maximum != nil && *l.Maximum > MaxMemoryPages {
		return errors.OutOfBounds(errors.PhaseValidate, at, int(*l.Maximum), MaxMemoryPages+1)
	}
	return nil
}

func (m *Module) validateGlobals() error {
	for i, g := range m.Globals {
		if !g.Type.Content.Valid() {
			return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(path("globals", i)...).
				Detail("invalid global type %s", g.Type.Content).
				Build()
		}
		if err := m.validateInitExpr(g.Init, g.Type.Content, path("globals", i, "init")); err != nil {
			return err
		}
	}
	return nil
}

// validateInitExpr accepts a single constant of type want, or a read of an
// imported global of that type.
func (m *Module) validateInitExpr(e InitExpr, want ValueType, at []string) error {
	if len(e) != 1 {
		return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Path(at...).
			Value(len(e)).
			Detail("initializer must be a single constant instruction, have %d", len(e)).
			Build()
	}
	var got ValueType
	switch ins := e[0].(type) {
	case I32Const:
		got = I32
	case I64Const:
		got = I64
	case F32Const:
		got = F32
	case F64Const:
		got = F64
	case GlobalGet:
		gt, ok := m.importedGlobal(ins.Global)
		if !ok {
			return errors.New(errors.PhaseValidate, errors.KindOutOfBounds).
				Path(at...).
				Value(uint32(ins.Global)).
				Detail("initializer may only read imported globals").
				Build()
		}
		got = gt.Content
	default:
		return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Path(at...).
			Detail("%s is not a constant instruction", e[0]).
			Build()
	}
	if got != want {
		return errors.Mismatch(errors.PhaseValidate, at, "initializer type", got, want)
	}
	return nil
}

func (m *Module) importedGlobal(idx GlobalIndex) (GlobalType, bool) {
	var seen GlobalIndex
	for _, imp := range m.Imports {
		gt, ok := imp.Kind.(GlobalType)
		if !ok {
			continue
		}
		if seen == idx {
			return gt, true
		}
		seen++
	}
	return GlobalType{}, false
}

func (m *Module) globalType(idx GlobalIndex) (GlobalType, bool) {
	imported := m.NumImportedGlobals()
	if uint32(idx) < imported {
		return m.importedGlobal(idx)
	}
	local := uint32(idx) - imported
	if local >= uint32(len(m.Globals)) {
		return GlobalType{}, false
	}
	return m.Globals[local].Type, true
}

func (m *Module) validateFunctionRef(f FunctionSpaceIndex, at []string) error {
	space := m.FunctionSpaceSize()
	var ordinal uint32
	switch {
	case f.IsResolved():
		ordinal = f.Ordinal()
	default:
		if imp, ok := f.Imported(); ok && uint32(imp) >= m.NumImportedFunctions() {
			return errors.OutOfBounds(errors.PhaseValidate, at, int(imp), int(m.NumImportedFunctions()))
		}
		if local, ok := f.Local(); ok && int(local) >= len(m.Functions) {
			return errors.OutOfBounds(errors.PhaseValidate, at, int(local), len(m.Functions))
		}
		ordinal = f.Resolve(m.NumImportedFunctions()).Ordinal()
	}
	if ordinal >= space {
		return errors.OutOfBounds(errors.PhaseValidate, at, int(ordinal), int(space))
	}
	return nil
}

func (m *Module) validateExports() error {
	seen := make(map[string]bool, len(m.Exports))
	for i, exp := range m.Exports {
		at := path("exports", i)
		if seen[exp.Field] {
			err := errors.Duplicate(errors.PhaseValidate, "export", exp.Field)
			err.Path = at
			return err
		}
		seen[exp.Field] = true

		switch k := exp.Kind.(type) {
		case nil:
			return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(at...).
				Detail("export %q has no kind", exp.Field).
				Build()
		case FunctionSpaceIndex:
			if err := m.validateFunctionRef(k, at); err != nil {
				return err
			}
		case FunctionIndex:
			if err := m.validateFunctionRef(k.Space(), at); err != nil {
				return err
			}
		case TableIndex:
			if n := int(m.NumImportedTables()) + len(m.Tables); int(k) >= n {
				return errors.OutOfBounds(errors.PhaseValidate, at, int(k), n)
			}
		case MemoryIndex:
			if n := int(m.NumImportedMemories()) + len(m.Memories); int(k) >= n {
				return errors.OutOfBounds(errors.PhaseValidate, at, int(k), n)
			}
		case GlobalIndex:
			if _, ok := m.globalType(k); !ok {
				n := int(m.NumImportedGlobals()) + len(m.Globals)
				return errors.OutOfBounds(errors.PhaseValidate, at, int(k), n)
			}
		}
	}
	return nil
}

func (m *Module) validateStart() error {
	if m.Start == nil {
		return nil
	}
	at := []string{"start"}
	if err := m.validateFunctionRef(*m.Start, at); err != nil {
		return err
	}
	ft, ok := m.FunctionType(m.Start.Resolve(m.NumImportedFunctions()).Ordinal())
	if !ok {
		return errors.New(errors.PhaseValidate, errors.KindOutOfBounds).
			Path(at...).
			Detail("start function has no type").
			Build()
	}
	if len(ft.Params) != 0 || ft.Result != nil {
		return errors.Mismatch(errors.PhaseValidate, at, "start function signature", ft, "()")
	}
	return nil
}

func (m *Module) validateElements() error {
	numTables := int(m.NumImportedTables()) + len(m.Tables)
	for i, elem := range m.Elements {
		at := path("elements", i)
		if elem.Table != 0 {
			return errors.New(errors.PhaseValidate, errors.KindUnsupported).
				Path(at...).
				Value(uint32(elem.Table)).
				Detail("element segments must target table 0").
				Build()
		}
		if numTables == 0 {
			return errors.OutOfBounds(errors.PhaseValidate, at, 0, 0)
		}
		if err := m.validateInitExpr(elem.Offset, I32, append(at, "offset")); err != nil {
			return err
		}
		for j, f := range elem.Elems {
			if err := m.validateFunctionRef(f, path("elements", i, strconv.Itoa(j))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Module) validateData() error {
	numMemories := int(m.NumImportedMemories()) + len(m.Memories)
	for i, d := range m.Data {
		at := path("data", i)
		if d.Memory != 0 {
			return errors.New(errors.PhaseValidate, errors.KindUnsupported).
				Path(at...).
				Value(uint32(d.Memory)).
				Detail("data segments must target memory 0").
				Build()
		}
		if numMemories == 0 {
			return errors.OutOfBounds(errors.PhaseValidate, at, 0, 0)
		}
		if err := m.validateInitExpr(d.Offset, I32, append(at, "offset")); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) validateCode() error {
	numTypes := len(m.Types)
	hasTable := int(m.NumImportedTables())+len(m.Tables) > 0
	hasMemory := int(m.NumImportedMemories())+len(m.Memories) > 0

	for i := range m.Code {
		body := &m.Code[i]
		if !body.resolved {
			return errors.New(errors.PhaseValidate, errors.KindUnresolved).
				Path(path("code", i)...).
				Detail("function indices not resolved").
				Build()
		}
		numLocals := uint64(body.NumLocals())
		if int(m.Functions[i]) < numTypes {
			numLocals += uint64(len(m.Types[m.Functions[i]].Params))
		}

		depth := 0
		for j, ins := range body.Code {
			at := path("code", i, strconv.Itoa(j))
			switch ins := ins.(type) {
			case Block, Loop, If:
				depth++
			case Simple:
				if ins.op == OpEnd {
					depth--
					if depth < 0 {
						return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
							Path(at...).
							Detail("end without matching block").
							Build()
					}
				}
			case Call:
				if err := m.validateFunctionRef(ins.Func, at); err != nil {
					return err
				}
			case CallIndirect:
				if int(ins.Type) >= numTypes {
					return errors.OutOfBounds(errors.PhaseValidate, at, int(ins.Type), numTypes)
				}
				if !hasTable {
					return errors.New(errors.PhaseValidate, errors.KindNotFound).
						Path(at...).
						Detail("call_indirect without a table").
						Build()
				}
			case LocalGet:
				if uint64(ins.Local) >= numLocals {
					return errors.OutOfBounds(errors.PhaseValidate, at, int(ins.Local), int(numLocals))
				}
			case LocalSet:
				if uint64(ins.Local) >= numLocals {
					return errors.OutOfBounds(errors.PhaseValidate, at, int(ins.Local), int(numLocals))
				}
			case LocalTee:
				if uint64(ins.Local) >= numLocals {
					return errors.OutOfBounds(errors.PhaseValidate, at, int(ins.Local), int(numLocals))
				}
			case GlobalGet:
				if _, ok := m.globalType(ins.Global); !ok {
					return errors.OutOfBounds(errors.PhaseValidate, at, int(ins.Global), int(m.NumImportedGlobals())+len(m.Globals))
				}
			case GlobalSet:
				gt, ok := m.globalType(ins.Global)
				if !ok {
					return errors.OutOfBounds(errors.PhaseValidate, at, int(ins.Global), int(m.NumImportedGlobals())+len(m.Globals))
				}
				if !gt.Mutable {
					return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
						Path(at...).
						Value(uint32(ins.Global)).
						Detail("global.set on immutable global").
						Build()
				}
			case MemoryAccess:
				if !IsMemoryAccessOp(ins.Op) {
					return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
						Path(at...).
						Value(ins.Op).
						Detail("0x%02x is not a load or store", ins.Op).
						Build()
				}
				if !hasMemory {
					return errors.New(errors.PhaseValidate, errors.KindNotFound).
						Path(at...).
						Detail("%s without a memory", opName(ins.Op)).
						Build()
				}
			case MemoryControl:
				if !hasMemory {
					return errors.New(errors.PhaseValidate, errors.KindNotFound).
						Path(at...).
						Detail("%s without a memory", opName(ins.op)).
						Build()
				}
			}
		}
		if depth != 0 {
			return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(path("code", i)...).
				Value(depth).
				Detail("%d unclosed blocks", depth).
				Build()
		}
	}
	return nil
}
