package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseBuild,
				Kind:   KindOutOfBounds,
				Path:   []string{"data", "2"},
				Detail: "memory index must be 0",
			},
			contains: []string{"[build]", "out_of_bounds", "data.2", "memory index must be 0"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindUnresolved,
			},
			contains: []string{"[encode]", "unresolved"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRuntime,
				Kind:   KindInstantiation,
				Detail: "instantiate module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[runtime]", "instantiation", "instantiate module", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseResolve,
		Kind:  KindAlreadyResolved,
		Path:  []string{"code", "1"},
	}

	if !err.Is(&Error{Phase: PhaseResolve, Kind: KindAlreadyResolved}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindAlreadyResolved}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseResolve, Kind: KindUnresolved}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseResolve, Kind: KindAlreadyResolved}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseBuild, KindOutOfBounds).
		Path("elements", "0").
		Value(uint32(3)).
		Cause(cause).
		Detail("table index %d, want %d", 3, 0).
		Build()

	if err.Phase != PhaseBuild {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseBuild)
	}
	if err.Kind != KindOutOfBounds {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
	}
	if len(err.Path) != 2 || err.Path[0] != "elements" || err.Path[1] != "0" {
		t.Errorf("Path = %v, want [elements 0]", err.Path)
	}
	if err.Value != uint32(3) {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "table index 3, want 0" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"OutOfBounds", OutOfBounds(PhaseValidate, []string{"exports"}, 4, 2), PhaseValidate, KindOutOfBounds},
		{"Unsupported", Unsupported(PhaseEncode, "multi-value"), PhaseEncode, KindUnsupported},
		{"Mismatch", Mismatch(PhaseValidate, nil, "code count", 1, 2), PhaseValidate, KindMismatch},
		{"Duplicate", Duplicate(PhaseValidate, "export", "main"), PhaseValidate, KindDuplicate},
		{"AlreadyResolved", AlreadyResolved([]string{"code", "0"}), PhaseResolve, KindAlreadyResolved},
		{"Unresolved", Unresolved([]string{"code", "0"}), PhaseEncode, KindUnresolved},
		{"Finalized", Finalized("AddType"), PhaseBuild, KindFinalized},
		{"NotFound", NotFound(PhaseRuntime, "export", "run"), PhaseRuntime, KindNotFound},
		{"InvalidInput", InvalidInput(PhaseBuild, "nil function"), PhaseBuild, KindInvalidInput},
		{"Registration", Registration("env", "print", errors.New("x")), PhaseHost, KindRegistration},
		{"Instantiation", Instantiation(errors.New("x")), PhaseRuntime, KindInstantiation},
		{"Wrap", Wrap(PhaseEncode, KindInvalidInput, errors.New("x"), "write"), PhaseEncode, KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}

	t.Run("OutOfBounds value", func(t *testing.T) {
		err := OutOfBounds(PhaseValidate, nil, 10, 5)
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
		if !strings.Contains(err.Detail, "10") || !strings.Contains(err.Detail, "5") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Mismatch detail", func(t *testing.T) {
		err := Mismatch(PhaseValidate, nil, "code count", 1, 2)
		if err.Detail != "code count: got 1, want 2" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})
}
