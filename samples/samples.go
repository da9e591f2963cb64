// Package samples is a catalog of small modules assembled with the builder.
// Each sample exercises a different part of the instruction set or module
// layout and is runnable by the engine.
package samples

import (
	"sort"

	"github.com/wippyai/wasm-builder/wasm"
)

// Sample is a named module recipe.
type Sample struct {
	Build       func() (*wasm.Module, error)
	Name        string
	Description string
}

var catalog = []Sample{
	{Name: "add", Description: "i32 addition of two parameters", Build: Add},
	{Name: "fibonacci", Description: "recursive fibonacci over i32", Build: Fibonacci},
	{Name: "factorial", Description: "iterative i64 factorial using a loop and a local", Build: Factorial},
	{Name: "memory", Description: "linear memory with a data segment, loads, stores and grow", Build: Memory},
	{Name: "dispatch", Description: "table of arithmetic functions called indirectly", Build: Dispatch},
	{Name: "counter", Description: "mutable global initialised by a start function", Build: Counter},
	{Name: "imports", Description: "local functions calling each other and env.print_*", Build: Imports},
}

// All returns every sample sorted by name.
func All() []Sample {
	out := append([]Sample(nil), catalog...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a sample by name.
func Lookup(name string) (Sample, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// Encode builds the sample and returns its binary.
func (s Sample) Encode() ([]byte, error) {
	m, err := s.Build()
	if err != nil {
		return nil, err
	}
	return m.Encode()
}
