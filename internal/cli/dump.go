package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qsimlab/opdec/internal/decode"
	"github.com/qsimlab/opdec/internal/op"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <program-file>",
		Short: "Decode a program and print the records as JSON",
		Long: `Decode every instruction in a program file and print the resulting
records as indented JSON. Output is always JSON regardless of --format;
the records are the machine-readable payload.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDump(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	prog, err := LoadProgram(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	records, err := decodeProgram(prog)
	if err != nil {
		if ferr := formatter.Error(ErrCodeInvalid, err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitFailure, "program contains invalid instructions", err)
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot marshal records", err)
	}
	fmt.Fprintln(formatter.Writer, string(out))
	return nil
}

// decodeProgram decodes all instructions, failing fast on the first invalid
// one (dump has no use for a partial record list).
func decodeProgram(prog *Program) ([]*op.Op, error) {
	records := make([]*op.Op, len(prog.Instructions))
	for i, v := range prog.Instructions {
		o, err := decode.Decode(v)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		records[i] = o
	}
	return records, nil
}
