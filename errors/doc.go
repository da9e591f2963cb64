// Package errors provides structured error types for the wasm-builder library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the entity path, the offending value and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBuild, errors.KindOutOfBounds).
//		Path("data", "0").
//		Value(uint32(1)).
//		Detail("memory index must be 0").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseValidate, []string{"exports", "main"}, 4, 2)
//	err := errors.AlreadyResolved([]string{"code", "3"})
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
