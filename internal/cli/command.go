package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/intake/internal/config"
	"github.com/idelchi/intake/internal/logging"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
	stdout  io.Writer
	stderr  io.Writer
	now     func() time.Time
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{
		version: version,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		now:     time.Now,
	}
}

// flags holds the values of flags that are not routed through config.
type flags struct {
	configFile string
	json       bool
}

// Execute runs the CLI with the process arguments. SIGINT and SIGTERM cancel
// the run. The returned error maps to an exit code through ExitCode.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.run(ctx, os.Args[1:])
}

// run executes the command with args. Panics are reported and mapped to
// an infrastructure failure.
func (c CLI) run(ctx context.Context, args []string) (err error) {
	console := logging.NewConsole(c.stdout, c.stderr, logging.ColorEnabled(config.ColorAuto, asFile(c.stdout)))

	defer func() {
		if r := recover(); r != nil {
			console.Fail("FATAL ERROR", fmt.Sprint(r))

			err = exitf(ExitInfrastructure, "unexpected failure: %v", r)
		}
	}()

	cmd := c.command()
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		// Errors not produced by the run itself come from argument or flag parsing.
		console.Fail("ERROR", err.Error())
		console.Fail("Usage", cmd.UseLine())
		console.Println("\nExample: intake example_input")

		return &ExitError{Code: ExitValidation, Err: err}
	}

	return err
}

// command builds the root command.
func (c CLI) command() *cobra.Command {
	var opts flags

	cmd := &cobra.Command{
		Use:   "intake <input_folder>",
		Short: "Validate a folder of text files and write a summary report",
		Long: heredoc.Doc(`
			intake validates the files of a folder and reports statistics by file type.

			Every file directly inside <input_folder> with a .txt, .csv or .json extension
			is classified as valid, empty, or unreadable. Sizes and line counts of the
			valid files are aggregated per extension.

			The summary report and the execution log are written to a new folder next to
			the input folder, named output_<YYYYMMDD_HHMMSS>.

			Exit codes:
			  0    success
			  1    invalid arguments, invalid folder, or no valid files
			  2    output could not be written
			  130  cancelled

			Settings can also be given in intake.yaml or as INTAKE_* environment variables.
		`),
		Version:       c.version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), opts.configFile)
			if err != nil {
				console := logging.NewConsole(c.stdout, c.stderr, false)
				console.Fail("ERROR", err.Error())

				return &ExitError{Code: ExitValidation, Err: fmt.Errorf("loading configuration: %w", err)}
			}

			cfg.InputDir = args[0]
			if c.now != nil {
				cfg.Now = c.now
			}

			return c.logic(cmd.Context(), cfg, opts)
		},
	}

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	cmd.Flags().SortFlags = false
	cmd.Flags().String("color", string(config.ColorAuto), "Console colors: auto, always or never")
	cmd.Flags().String("output-prefix", config.DefaultOutputPrefix, "Prefix of the timestamped output folder")
	cmd.Flags().Bool("debug", false, "Print each classification decision")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Also print the statistics as JSON to stdout")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Config file (default is ./intake.yaml if present)")

	return cmd
}

// asFile returns w as an *os.File if it is one.
func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)

	return f
}
