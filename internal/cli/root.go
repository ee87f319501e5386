package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"financas/internal/backend"
	"financas/internal/config"
	"financas/internal/core"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format   string // "text" | "json" | "yaml"
	DataDir  string
	LogLevel string
	EnvFile  string

	Out io.Writer
	Err io.Writer
	Now func() time.Time

	factoryOpts []backend.FactoryOption
	backend     *backend.Backend
}

// Option customizes the command tree, mostly for tests.
type Option func(*RootOptions)

// WithOutput redirects results and diagnostics.
func WithOutput(out, errOut io.Writer) Option {
	return func(ro *RootOptions) {
		ro.Out = out
		ro.Err = errOut
	}
}

// WithClock sets the clock used for default entry dates.
func WithClock(now func() time.Time) Option {
	return func(ro *RootOptions) { ro.Now = now }
}

// WithFactoryOptions forwards options to the backend factory.
func WithFactoryOptions(opts ...backend.FactoryOption) Option {
	return func(ro *RootOptions) { ro.factoryOpts = append(ro.factoryOpts, opts...) }
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

func newRootOptions(opts ...Option) *RootOptions {
	ro := &RootOptions{Out: os.Stdout, Err: os.Stderr, Now: time.Now}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}

// NewRootCommand creates the root command for the financas CLI.
func NewRootCommand(opts ...Option) *cobra.Command {
	return newRootCommand(newRootOptions(opts...))
}

func newRootCommand(ro *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "financas",
		Short: "Controle financeiro pessoal",
		Long: `financas keeps a personal ledger of income and expenses in a local
SQLite database, tracks spending goals per category and summarizes
everything in a dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(ro.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", ro.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&ro.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&ro.DataDir, "data-dir", "", "data directory (overrides FINANCAS_DATA_DIR)")
	cmd.PersistentFlags().StringVar(&ro.LogLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&ro.EnvFile, "env-file", "", "env file to load (default .env)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(newInitCommand(ro))
	cmd.AddCommand(newRegisterCommand(ro))
	cmd.AddCommand(newLoginCommand(ro))
	cmd.AddCommand(newAccountsCommand(ro))
	cmd.AddCommand(newRecordCommand(ro))
	cmd.AddCommand(newGoalCommand(ro))
	cmd.AddCommand(newDashboardCommand(ro))

	return cmd
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts ...Option) int {
	ro := newRootOptions(opts...)
	cmd := newRootCommand(ro)
	cmd.SetArgs(args)
	cmd.SetOut(ro.Out)
	cmd.SetErr(ro.Err)

	err := cmd.ExecuteContext(ctx)
	if cerr := ro.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return ExitSuccess
	}

	format := ro.Format
	if !isValidFormat(format) {
		format = "text"
	}
	f := &OutputFormatter{Format: format, Writer: ro.Out, ErrWriter: ro.Err}
	_ = f.Error(err)
	return GetExitCode(err)
}

// open loads configuration and builds the backend on first use.
func (ro *RootOptions) open(ctx context.Context) (*backend.Backend, error) {
	if ro.backend != nil {
		return ro.backend, nil
	}

	var envFiles []string
	if ro.EnvFile != "" {
		envFiles = append(envFiles, ro.EnvFile)
	}
	if err := config.LoadEnvFile(envFiles...); err != nil {
		return nil, describeConfigError(err)
	}

	cfg := config.Load()
	if ro.DataDir != "" {
		cfg.DataDir = ro.DataDir
	}
	if ro.LogLevel != "" {
		cfg.LogLevel = ro.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, describeConfigError(err)
	}

	logger, err := SetupLogger(cfg.LogLevel, ro.Err)
	if err != nil {
		return nil, describeConfigError(err)
	}

	b, err := backend.NewFactory(logger, ro.factoryOpts...).Create(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ro.backend = b
	return b, nil
}

func (ro *RootOptions) close() error {
	if ro.backend == nil {
		return nil
	}
	err := ro.backend.Close()
	ro.backend = nil
	return err
}

func (ro *RootOptions) formatter() *OutputFormatter {
	return &OutputFormatter{Format: ro.Format, Writer: ro.Out, ErrWriter: ro.Err}
}

func (ro *RootOptions) today() string {
	return ro.Now().Format(core.EntryDateLayout)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
