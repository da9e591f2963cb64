package engine

import (
	"strconv"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-builder/errors"
	"github.com/wippyai/wasm-builder/wasm"
)

// ToAPI converts a value type to its wazero counterpart.
func ToAPI(t wasm.ValueType) api.ValueType {
	switch t {
	case wasm.I32:
		return api.ValueTypeI32
	case wasm.I64:
		return api.ValueTypeI64
	case wasm.F32:
		return api.ValueTypeF32
	case wasm.F64:
		return api.ValueTypeF64
	}
	return api.ValueType(t)
}

// FromAPI converts a wazero value type. Types outside the MVP set report false.
func FromAPI(t api.ValueType) (wasm.ValueType, bool) {
	switch t {
	case api.ValueTypeI32:
		return wasm.I32, true
	case api.ValueTypeI64:
		return wasm.I64, true
	case api.ValueTypeF32:
		return wasm.F32, true
	case api.ValueTypeF64:
		return wasm.F64, true
	}
	return 0, false
}

func toAPITypes(ts []wasm.ValueType) []api.ValueType {
	out := make([]api.ValueType, len(ts))
	for i, t := range ts {
		out[i] = ToAPI(t)
	}
	return out
}

func fromAPITypes(ts []api.ValueType) []wasm.ValueType {
	out := make([]wasm.ValueType, 0, len(ts))
	for _, t := range ts {
		if v, ok := FromAPI(t); ok {
			out = append(out, v)
		}
	}
	return out
}

// EncodeArg parses s as a value of type t and returns its stack encoding.
// Integers accept any base strconv understands; i32 also accepts the
// unsigned range.
func EncodeArg(s string, t wasm.ValueType) (uint64, error) {
	switch t {
	case wasm.I32:
		if v, err := strconv.ParseInt(s, 0, 32); err == nil {
			return api.EncodeI32(int32(v)), nil
		}
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return 0, argError(s, t, err)
		}
		return api.EncodeU32(uint32(v)), nil
	case wasm.I64:
		if v, err := strconv.ParseInt(s, 0, 64); err == nil {
			return api.EncodeI64(v), nil
		}
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, argError(s, t, err)
		}
		return v, nil
	case wasm.F32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return 0, argError(s, t, err)
		}
		return api.EncodeF32(float32(v)), nil
	case wasm.F64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, argError(s, t, err)
		}
		return api.EncodeF64(v), nil
	}
	return 0, errors.Unsupported(errors.PhaseRuntime, "value type "+t.String())
}

func argError(s string, t wasm.ValueType, cause error) error {
	return errors.New(errors.PhaseRuntime, errors.KindInvalidInput).
		Value(s).
		Cause(cause).
		Detail("cannot parse %q as %s", s, t).
		Build()
}

// DecodeResult formats a stack value of type t.
func DecodeResult(v uint64, t wasm.ValueType) string {
	switch t {
	case wasm.I32:
		return strconv.FormatInt(int64(api.DecodeI32(v)), 10)
	case wasm.I64:
		return strconv.FormatInt(int64(v), 10)
	case wasm.F32:
		return strconv.FormatFloat(float64(api.DecodeF32(v)), 'g', -1, 32)
	case wasm.F64:
		return strconv.FormatFloat(api.DecodeF64(v), 'g', -1, 64)
	}
	return "0x" + strconv.FormatUint(v, 16)
}

// EncodeArgs converts textual arguments for the parameters of f.
func EncodeArgs(f FuncInfo, args []string) ([]uint64, error) {
	if len(args) != len(f.Params) {
		return nil, errors.Mismatch(errors.PhaseRuntime, []string{"exports", f.Name}, "argument count", len(args), len(f.Params))
	}
	out := make([]uint64, len(args))
	for i, a := range args {
		v, err := EncodeArg(a, f.Params[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// DecodeResults formats the results of a call to f.
func DecodeResults(f FuncInfo, results []uint64) []string {
	out := make([]string, len(results))
	for i, r := range results {
		t := wasm.I64
		if i < len(f.Results) {
			t = f.Results[i]
		}
		out[i] = DecodeResult(r, t)
	}
	return out
}
