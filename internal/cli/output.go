package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/boards/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// NewOutputFormatter reads the --json and --quiet flags and writes to the
// command's streams
func NewOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if id, ok := idOf(data); ok {
			_, err := fmt.Fprintln(f.out(), id)
			return err
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) {
	f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		_ = json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
		return
	}

	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
}

// idOf extracts the ID printed in quiet mode
func idOf(data any) (string, bool) {
	switch v := data.(type) {
	case *models.Board:
		return v.ID.String(), true
	case *models.Column:
		return v.ID.String(), true
	case *models.Task:
		return v.ID.String(), true
	}
	return "", false
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	w := f.out()
	var err error
	switch v := data.(type) {
	case *models.Board:
		_, err = fmt.Fprintf(w, "Created board %q (%s)\n", v.Name, v.ID)
	case *models.Column:
		_, err = fmt.Fprintf(w, "Created column %q (%s)\n", v.Name, v.ID)
	case *models.Task:
		_, err = fmt.Fprintf(w, "Created task %q (%s)\n", v.Name, v.ID)
	case string:
		_, err = fmt.Fprintln(w, v)
	default:
		_, err = fmt.Fprintf(w, "%+v\n", data)
	}
	return err
}
