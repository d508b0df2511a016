package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qsimlab/opdec/internal/decode"
)

// InstructionError reports one invalid instruction in a program.
type InstructionError struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult holds validation results for one program.
type ValidationResult struct {
	Valid        bool               `json:"valid"`
	Program      string             `json:"program"`
	Instructions int                `json:"instructions"`
	Errors       []InstructionError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <program-file>",
		Short: "Decode a program and report every invalid instruction",
		Long: `Decode every instruction in a program file (JSON or YAML).

All instructions are decoded even after the first failure, so one run
reports every invalid instruction in the program.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	prog, err := LoadProgram(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded %d instruction(s) from %s", len(prog.Instructions), path)

	result := validateProgram(prog)
	if !result.Valid {
		if opts.Format == "json" {
			if err := formatter.Error(ErrCodeInvalid, "program contains invalid instructions", result); err != nil {
				return err
			}
		} else {
			w := formatter.Writer
			fmt.Fprintf(w, "program %s: %d invalid instruction(s)\n", result.Program, len(result.Errors))
			for _, e := range result.Errors {
				if e.Kind != "" {
					fmt.Fprintf(w, "  instruction %d (%s): %q: %s\n", e.Index, e.Kind, e.Field, e.Message)
				} else {
					fmt.Fprintf(w, "  instruction %d: %q: %s\n", e.Index, e.Field, e.Message)
				}
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d invalid instruction(s)", len(result.Errors)))
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("program %s: %d instruction(s) valid", result.Program, result.Instructions))
}

// validateProgram decodes every instruction, collecting all failures.
func validateProgram(prog *Program) ValidationResult {
	result := ValidationResult{
		Valid:        true,
		Program:      prog.Name,
		Instructions: len(prog.Instructions),
	}

	for i, v := range prog.Instructions {
		if _, err := decode.Decode(v); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, toInstructionError(i, err))
		}
	}

	return result
}

func toInstructionError(index int, err error) InstructionError {
	var ie *decode.InvalidInstructionError
	if errors.As(err, &ie) {
		return InstructionError{Index: index, Kind: ie.Kind, Field: ie.Field, Message: ie.Message}
	}
	return InstructionError{Index: index, Message: err.Error()}
}

// outputLoadError renders a load failure and converts it to a command error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		if ferr := formatter.Error(loadErr.Code, loadErr.Message, nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "cannot load program", err)
	}
	if ferr := formatter.Error(ErrCodeGeneric, err.Error(), nil); ferr != nil {
		return ferr
	}
	return WrapExitError(ExitCommandError, "cannot load program", err)
}
