package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-builder/wasm"
)

func newInspectCmd() *cobra.Command {
	var showHex bool

	cmd := &cobra.Command{
		Use:               "inspect <sample>",
		Short:             "Show the section layout and code of a sample module",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: sampleNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := lookupSample(args[0])
			if err != nil {
				return err
			}
			m, err := s.Build()
			if err != nil {
				return fmt.Errorf("build %s: %w", s.Name, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n\n", titleStyle.Render(s.Name), helpStyle.Render(s.Description))
			if err := writeSections(out, m); err != nil {
				return err
			}
			fmt.Fprintln(out)
			writeCode(out, m)

			if showHex {
				bin, err := m.Encode()
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, hex.Dump(bin))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showHex, "hex", false, "Append a hex dump of the binary")
	return cmd
}

func writeSections(w io.Writer, m *wasm.Module) error {
	secs, err := m.Sections()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-4s %-10s %7s %7s\n", "id", "section", "entries", "bytes")
	total := 8
	for _, sec := range secs {
		fmt.Fprintf(w, "%-4d %-10s %7d %7d\n", sec.ID, sec.Name, sec.Count, sec.Size)
		total += 1 + lebLen(uint32(sec.Size)) + sec.Size
	}
	fmt.Fprintf(w, "total %d bytes\n", total)
	return nil
}

func lebLen(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// writeCode lists every local function with its export names and a
// block-indented instruction listing.
func writeCode(w io.Writer, m *wasm.Module) {
	imported := m.NumImportedFunctions()
	names := make(map[uint32][]string)
	for _, exp := range m.Exports {
		switch k := exp.Kind.(type) {
		case wasm.FunctionSpaceIndex:
			o := k.Resolve(imported).Ordinal()
			names[o] = append(names[o], exp.Field)
		case wasm.FunctionIndex:
			o := k.Space().Resolve(imported).Ordinal()
			names[o] = append(names[o], exp.Field)
		}
	}

	for _, imp := range m.Imports {
		if fi, ok := imp.Kind.(wasm.FunctionImport); ok {
			ft := m.Types[fi.Type]
			fmt.Fprintf(w, "import %s.%s %s\n", imp.Module, imp.Field, typeStyle.Render(ft.String()))
		}
	}

	for i, body := range m.Code {
		ordinal := imported + uint32(i)
		ft, _ := m.FunctionType(ordinal)

		header := fmt.Sprintf("func[%d] %s", ordinal, typeStyle.Render(ft.String()))
		if n := names[ordinal]; len(n) > 0 {
			header += " " + nameStyle.Render(strings.Join(n, ", "))
		}
		fmt.Fprintln(w, header)

		for _, l := range body.Locals {
			fmt.Fprintf(w, "  local %d x %s\n", l.Count, l.Type)
		}

		depth := 1
		for _, ins := range body.Code {
			if ins == wasm.End || ins == wasm.Else {
				depth--
			}
			fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", max(depth, 1)), ins)
			switch ins.(type) {
			case wasm.Block, wasm.Loop, wasm.If:
				depth++
			}
			if ins == wasm.Else {
				depth++
			}
		}
	}
}
