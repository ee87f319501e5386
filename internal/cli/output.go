package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	"financas/internal/core"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Rejected input or credentials, missing records
	ExitCommandError = 2 // Bad flags, configuration or storage problems
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, core.ErrStorageUnavailable) || errors.Is(err, core.ErrNotInitialized) {
		return ExitCommandError
	}
	return ExitFailure
}

// errorCode is the machine-readable code reported in json and yaml output.
func errorCode(err error) string {
	switch {
	case errors.Is(err, core.ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, core.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, core.ErrOwnerNotFound):
		return "owner_not_found"
	case errors.Is(err, core.ErrRecordNotFound), errors.Is(err, core.ErrGoalNotFound):
		return "not_found"
	case errors.Is(err, core.ErrValidation):
		return "validation"
	case errors.Is(err, core.ErrStorageUnavailable), errors.Is(err, core.ErrNotInitialized):
		return "storage"
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code == ExitCommandError {
		return "usage"
	}
	return "error"
}

// OutputFormatter renders command results as text, json or yaml.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
}

// CLIResponse is the envelope of json and yaml output.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// textView is implemented by results with a human-readable rendering.
type textView interface {
	writeText(w io.Writer, p *message.Printer) error
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	switch f.Format {
	case "json", "yaml":
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}
	if tv, ok := data.(textView); ok {
		return tv.writeText(f.Writer, printer)
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format. Text errors go to
// ErrWriter so they never mix with results.
func (f *OutputFormatter) Error(err error) error {
	switch f.Format {
	case "json", "yaml":
		return f.encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: errorCode(err), Message: err.Error()},
		})
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	_, werr := fmt.Fprintf(w, "Erro: %v\n", err)
	return werr
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	if f.Format == "yaml" {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// formatMoney renders m in Brazilian notation, e.g. -R$ 1.234,50.
func formatMoney(p *message.Printer, m core.Money) string {
	sign := ""
	if m.IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + p.Sprint(number.Decimal(m.Abs().Float64(), number.Scale(2)))
}
