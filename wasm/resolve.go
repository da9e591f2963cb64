package wasm

import (
	"strconv"

	"github.com/wippyai/wasm-builder/errors"
)

// ResolveFunctions returns a copy of code in which every call to a local
// function is shifted past importedFuncs function imports. Calls to imports
// are marked resolved with their ordinal unchanged. A call that is already
// resolved means the pass ran twice and is reported as an error.
func ResolveFunctions(code []Instruction, importedFuncs uint32) ([]Instruction, error) {
	out := make([]Instruction, len(code))
	for i, ins := range code {
		c, ok := ins.(Call)
		if !ok {
			out[i] = ins
			continue
		}
		if c.Func.IsResolved() {
			return nil, errors.New(errors.PhaseResolve, errors.KindAlreadyResolved).
				Path("instr", strconv.Itoa(i)).
				Value(c.Func.Ordinal()).
				Detail("call target already resolved").
				Build()
		}
		out[i] = Call{Func: c.Func.Resolve(importedFuncs)}
	}
	return out, nil
}

// ResolveFunctions rewrites the body's calls for importedFuncs function
// imports. It may run once per body.
func (b *FunctionBody) ResolveFunctions(importedFuncs uint32) error {
	if b.resolved {
		return errors.AlreadyResolved(nil)
	}
	code, err := ResolveFunctions(b.Code, importedFuncs)
	if err != nil {
		return err
	}
	b.Code = code
	b.resolved = true
	return nil
}

// ResolveFunctions resolves every body against the module's function imports.
// Imports must be complete before it runs. If any body is already resolved,
// no body is touched.
func (m *Module) ResolveFunctions() error {
	for i := range m.Code {
		if m.Code[i].resolved {
			return errors.AlreadyResolved([]string{"code", strconv.Itoa(i)})
		}
	}

	imported := m.NumImportedFunctions()
	for i := range m.Code {
		if err := m.Code[i].ResolveFunctions(imported); err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = append([]string{"code", strconv.Itoa(i)}, e.Path...)
			}
			return err
		}
	}
	return nil
}
