package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasm-builder/builder"
	"github.com/wippyai/wasm-builder/engine"
	"github.com/wippyai/wasm-builder/samples"
)

var logger = zap.NewNop()

type rootOptions struct {
	logLevel string
	logJSON  bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wasmgen",
		Short: "Build, inspect and run WebAssembly sample modules",
		Long: `wasmgen assembles WebAssembly 1.0 modules with the builder API and
either writes the binary, prints its layout or runs it in wazero.

Examples:
  wasmgen list                     Show the available samples
  wasmgen build fibonacci -o f.wasm
  wasmgen inspect memory --hex     Section table, code listing and hex dump
  wasmgen run factorial fact 10
  wasmgen tui                      Browse and call samples interactively`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.configureLogging(errOut)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")

	cmd.AddCommand(
		newListCmd(),
		newBuildCmd(),
		newInspectCmd(),
		newRunCmd(),
		newTUICmd(),
	)
	return cmd
}

func (o *rootOptions) configureLogging(w io.Writer) error {
	level, err := zap.ParseAtomicLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if o.logJSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	logger = zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
	builder.SetLogger(logger.Named("builder"))
	engine.SetLogger(logger.Named("engine"))
	return nil
}

func lookupSample(name string) (samples.Sample, error) {
	s, ok := samples.Lookup(name)
	if !ok {
		return samples.Sample{}, fmt.Errorf("unknown sample %q (see 'wasmgen list')", name)
	}
	return s, nil
}

func sampleNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, s := range samples.All() {
		names = append(names, s.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
