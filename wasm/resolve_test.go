package wasm_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/wasm-builder/errors"
	"github.com/wippyai/wasm-builder/wasm"
)

func TestResolveFunctionsShiftsLocalCalls(t *testing.T) {
	code := []wasm.Instruction{
		wasm.LocalGet{Local: 0},
		wasm.Call{Func: wasm.FunctionIndex(0).Space()},
		wasm.Call{Func: wasm.ImportedFunction(1)},
		wasm.Return,
	}

	before := wasm.EncodeInstructions(code)
	if !bytes.Equal(before, []byte{0x20, 0x00, 0x10, 0x00, 0x10, 0x01, 0x0f}) {
		t.Fatalf("unresolved encoding: % x", before)
	}

	resolved, err := wasm.ResolveFunctions(code, 2)
	if err != nil {
		t.Fatalf("ResolveFunctions: %v", err)
	}

	after := wasm.EncodeInstructions(resolved)
	if !bytes.Equal(after, []byte{0x20, 0x00, 0x10, 0x02, 0x10, 0x01, 0x0f}) {
		t.Errorf("resolved encoding: % x", after)
	}

	// input is left untouched
	if code[1].(wasm.Call).Func.IsResolved() {
		t.Error("ResolveFunctions mutated its input")
	}
	for _, i := range []int{1, 2} {
		if !resolved[i].(wasm.Call).Func.IsResolved() {
			t.Errorf("call %d not marked resolved", i)
		}
	}
}

func TestResolveFunctionsTwice(t *testing.T) {
	code := []wasm.Instruction{wasm.Call{Func: wasm.FunctionIndex(1).Space()}}

	once, err := wasm.ResolveFunctions(code, 3)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	_, err = wasm.ResolveFunctions(once, 3)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindAlreadyResolved}) {
		t.Errorf("second pass: expected already_resolved, got %v", err)
	}
}

func TestFunctionBodyResolveOnce(t *testing.T) {
	body := wasm.FunctionBody{Code: []wasm.Instruction{wasm.Call{Func: wasm.FunctionIndex(0).Space()}}}

	if body.Resolved() {
		t.Fatal("new body reports resolved")
	}
	if err := body.ResolveFunctions(4); err != nil {
		t.Fatalf("ResolveFunctions: %v", err)
	}
	if !body.Resolved() {
		t.Error("body not marked resolved")
	}
	if got := body.Code[0].(wasm.Call).Func.Ordinal(); got != 4 {
		t.Errorf("call ordinal = %d, want 4", got)
	}

	err := body.ResolveFunctions(4)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindAlreadyResolved}) {
		t.Errorf("expected already_resolved, got %v", err)
	}
	if got := body.Code[0].(wasm.Call).Func.Ordinal(); got != 4 {
		t.Errorf("second pass changed ordinal to %d", got)
	}
}

func TestModuleResolveFunctionsPath(t *testing.T) {
	m := &wasm.Module{
		Types:     []wasm.FuncType{wasm.FuncOf()},
		Functions: []wasm.TypeIndex{0, 0},
		Code:      []wasm.FunctionBody{{}, {}},
	}
	if err := m.ResolveFunctions(); err != nil {
		t.Fatalf("first pass: %v", err)
	}

	err := m.ResolveFunctions()
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if len(e.Path) < 2 || e.Path[0] != "code" || e.Path[1] != "0" {
		t.Errorf("path = %v, want code.0", e.Path)
	}
}

func TestModuleResolveFunctionsAllOrNothing(t *testing.T) {
	m := &wasm.Module{
		Imports: []wasm.Import{
			{Module: "env", Field: "f", Kind: wasm.FunctionImport{Type: 0}},
		},
		Types:     []wasm.FuncType{wasm.FuncOf()},
		Functions: []wasm.TypeIndex{0, 0},
		Code: []wasm.FunctionBody{
			{Code: []wasm.Instruction{wasm.Call{Func: wasm.FunctionIndex(1).Space()}}},
			{Code: []wasm.Instruction{wasm.Call{Func: wasm.FunctionIndex(0).Space()}}},
		},
	}
	if err := m.Code[1].ResolveFunctions(1); err != nil {
		t.Fatalf("resolve body 1: %v", err)
	}

	err := m.ResolveFunctions()
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindAlreadyResolved {
		t.Fatalf("expected already_resolved, got %v", err)
	}
	if len(e.Path) < 2 || e.Path[0] != "code" || e.Path[1] != "1" {
		t.Errorf("path = %v, want code.1", e.Path)
	}

	if m.Code[0].Resolved() {
		t.Error("body 0 resolved despite failure")
	}
	call := m.Code[0].Code[0].(wasm.Call).Func
	if call.IsResolved() {
		t.Error("body 0 call rewritten despite failure")
	}
	if got, ok := call.Local(); !ok || got != 1 {
		t.Errorf("body 0 call = %d, %v, want local 1", got, ok)
	}
}

func TestFunctionSpaceIndex(t *testing.T) {
	local := wasm.FunctionIndex(2).Space()
	if got, ok := local.Local(); !ok || got != 2 {
		t.Errorf("Local() = %d, %v", got, ok)
	}
	if _, ok := local.Imported(); ok {
		t.Error("local reference reports imported")
	}

	r := local.Resolve(3)
	if !r.IsResolved() || r.Ordinal() != 5 {
		t.Errorf("Resolve(3) = %v", r)
	}
	if _, ok := r.Local(); ok {
		t.Error("resolved reference still reports local")
	}

	imp := wasm.ImportedFunction(1)
	if got, ok := imp.Imported(); !ok || got != 1 {
		t.Errorf("Imported() = %d, %v", got, ok)
	}
	if r := imp.Resolve(3); r.Ordinal() != 1 || !r.IsResolved() {
		t.Errorf("imported Resolve(3) = %v", r)
	}
	if r.Resolve(10).Ordinal() != 5 {
		t.Error("resolving a resolved reference changed it")
	}
}
