package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"diagkit/internal/batch"
	"diagkit/internal/diaglog"
	"diagkit/internal/stackfilter"
)

var filterCmd = &cobra.Command{
	Use:   "filter [flags] [file...]",
	Short: "Filter stack-trace text, collapsing excluded frames",
	Long:  `Filter parses call-stack trace text, drops runtime/test/internal frames by category, rewrites locations, and collapses runs of dropped frames into summary lines. Reads stdin when no files are given.`,
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().Int("max-frames", 0, "drop frames beyond this count (0=unlimited)")
	filterCmd.Flags().Int("jobs", 0, "max parallel workers for multiple files (0=auto)")
	filterCmd.Flags().Bool("ui", false, "show per-file progress while filtering multiple files")
	filterCmd.Flags().String("runtime", "", "override the runtime-internals pattern (\"off\" disables)")
	filterCmd.Flags().String("tests", "", "override the test-framework pattern (\"off\" disables)")
	filterCmd.Flags().String("internal", "", "override the toolchain-internals pattern (\"off\" disables)")
	filterCmd.Flags().Bool("keep-native", false, "keep named frames at native/<anonymous> locations")
}

func runFilter(cmd *cobra.Command, args []string) error {
	opts, err := filterOptions()
	if err != nil {
		return err
	}
	if err := applyFilterFlags(cmd, &opts); err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), stackfilter.Filter(string(data), opts))
		return nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	req := &batch.Request{Files: args, Options: opts, Jobs: jobs}

	var results []batch.FileResult
	if withUI && isTerminal(os.Stdout) {
		results, err = runFilterWithUI(cmd.Context(), "filtering traces", args, req)
	} else {
		results, err = batch.Run(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, res := range results {
		if res.Err != nil {
			failed++
			diaglog.Error(res.Err.Error())
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "==> %s <==\n", res.Path)
		}
		fmt.Fprint(out, res.Output)
		if !strings.HasSuffix(res.Output, "\n") {
			fmt.Fprintln(out)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
	}
	return nil
}

func applyFilterFlags(cmd *cobra.Command, opts *stackfilter.Options) error {
	maxFrames, err := cmd.Flags().GetInt("max-frames")
	if err != nil {
		return fmt.Errorf("failed to get max-frames flag: %w", err)
	}
	if maxFrames > 0 {
		opts.MaxFrames = maxFrames
	}

	keepNative, err := cmd.Flags().GetBool("keep-native")
	if err != nil {
		return fmt.Errorf("failed to get keep-native flag: %w", err)
	}
	if keepNative {
		opts.DropNativeAnonymous = false
	}

	runtimeExpr, err := cmd.Flags().GetString("runtime")
	if err != nil {
		return fmt.Errorf("failed to get runtime flag: %w", err)
	}
	if opts.RuntimePattern, err = overridePattern(runtimeExpr, opts.RuntimePattern); err != nil {
		return fmt.Errorf("invalid --runtime pattern: %w", err)
	}

	testsExpr, err := cmd.Flags().GetString("tests")
	if err != nil {
		return fmt.Errorf("failed to get tests flag: %w", err)
	}
	if opts.TestPattern, err = overridePattern(testsExpr, opts.TestPattern); err != nil {
		return fmt.Errorf("invalid --tests pattern: %w", err)
	}

	internalExpr, err := cmd.Flags().GetString("internal")
	if err != nil {
		return fmt.Errorf("failed to get internal flag: %w", err)
	}
	if opts.InternalPattern, err = overridePattern(internalExpr, opts.InternalPattern); err != nil {
		return fmt.Errorf("invalid --internal pattern: %w", err)
	}
	return nil
}
