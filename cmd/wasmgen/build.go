package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func newBuildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:               "build <sample>",
		Short:             "Encode a sample module",
		Long:              "Encode a sample module and write the binary to a file, or to stdout with -o -.",
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

			if output == "-" {
				out := cmd.OutOrStdout()
				if isTerminal(out) {
					return fmt.Errorf("refusing to write binary to a terminal; use -o <file> or redirect stdout")
				}
				_, err := m.WriteTo(out)
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			n, err := m.WriteTo(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("module written", zap.String("sample", s.Name), zap.String("path", output), zap.Int64("bytes", n))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", n, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output path, - for stdout")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
