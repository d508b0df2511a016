package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qsimlab/opdec/internal/store"
)

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the decoded-program catalog",
		Long:  "Persist decoded programs to a SQLite catalog and inspect them later.",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "opdec.db", "catalog database path")

	cmd.AddCommand(newCatalogAddCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogListCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogShowCommand(rootOpts, &dbPath))

	return cmd
}

func newCatalogAddCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "add <program-file>",
		Short:         "Decode a program and store it in the catalog",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogAdd(rootOpts, *dbPath, args[0], cmd)
		},
	}
}

func newCatalogListCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List catalogued programs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(rootOpts, *dbPath, cmd)
		},
	}
}

func newCatalogShowCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "show <program-id>",
		Short:         "Show one catalogued program with its instructions",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogShow(rootOpts, *dbPath, args[0], cmd)
		},
	}
}

func runCatalogAdd(opts *RootOptions, dbPath, path string, cmd *cobra.Command) error {
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

	s, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open catalog", err)
	}
	defer s.Close()

	id, err := s.WriteProgram(cmd.Context(), prog.Name, prog.Source, records)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot store program", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{
			"id":           id,
			"program":      prog.Name,
			"instructions": len(records),
		})
	}
	return formatter.Success(fmt.Sprintf("catalogued program %s as %s (%d instruction(s))", prog.Name, id, len(records)))
}

func runCatalogList(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open catalog", err)
	}
	defer s.Close()

	programs, err := s.ListPrograms(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot list programs", err)
	}

	if opts.Format == "json" {
		return formatter.Success(programs)
	}
	if len(programs) == 0 {
		return formatter.Success("catalog is empty")
	}
	for _, p := range programs {
		fmt.Fprintf(formatter.Writer, "%s  %s  %d instruction(s)  %s\n", p.ID, p.Name, p.InstructionCount, p.Source)
	}
	return nil
}

func runCatalogShow(opts *RootOptions, dbPath, id string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open catalog", err)
	}
	defer s.Close()

	prog, instructions, err := s.GetProgram(cmd.Context(), id)
	if err != nil {
		if ferr := formatter.Error(ErrCodeStore, err.Error(), nil); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "cannot read program", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{
			"program":      prog,
			"instructions": instructions,
		})
	}
	fmt.Fprintf(formatter.Writer, "%s  %s  %d instruction(s)\n", prog.ID, prog.Name, prog.InstructionCount)
	for _, inst := range instructions {
		fmt.Fprintf(formatter.Writer, "  %3d  %-10s  %d qubit(s)  %s\n", inst.Index, inst.Kind, inst.QubitCount, inst.CacheKey)
	}
	return nil
}
