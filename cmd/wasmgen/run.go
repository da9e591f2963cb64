package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-builder/engine"
)

func newRunCmd() *cobra.Command {
	var memoryPages uint32

	cmd := &cobra.Command{
		Use:   "run <sample> <export> [args...]",
		Short: "Run an exported function of a sample in wazero",
		Long: `Run an exported function of a sample in wazero.

Arguments are parsed according to the parameter types; results are printed
on one line. The host module "env" provides print_i32 and print_i64, which
write to stdout.

Flags such as --memory-limit must come before <sample>. Everything after it
is positional, so negative numbers are taken as arguments:

  wasmgen run --memory-limit 16 add add -7 3`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: sampleNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			s, err := lookupSample(args[0])
			if err != nil {
				return err
			}
			bin, err := s.Encode()
			if err != nil {
				return fmt.Errorf("build %s: %w", s.Name, err)
			}

			eng, err := engine.New(ctx, &engine.Config{MemoryLimitPages: memoryPages})
			if err != nil {
				return err
			}
			defer eng.Close(ctx)

			out := cmd.OutOrStdout()
			if err := eng.EnvModule(out); err != nil {
				return err
			}
			inst, err := eng.Load(ctx, bin, s.Name)
			if err != nil {
				return err
			}
			defer inst.Close(ctx)

			fn, ok := inst.Func(args[1])
			if !ok {
				var names []string
				for _, f := range inst.Exports() {
					names = append(names, f.Name)
				}
				return fmt.Errorf("%s has no function %q (exports: %s)", s.Name, args[1], strings.Join(names, ", "))
			}

			params, err := engine.EncodeArgs(fn, args[2:])
			if err != nil {
				return err
			}
			results, err := inst.Call(ctx, fn.Name, params...)
			if err != nil {
				return err
			}
			logger.Debug("call finished", zap.String("sample", s.Name), zap.String("export", fn.Name))

			if len(results) > 0 {
				fmt.Fprintln(out, strings.Join(engine.DecodeResults(fn, results), " "))
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&memoryPages, "memory-limit", 0, "Maximum memory per instance in 64KB pages (0 = runtime default)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
