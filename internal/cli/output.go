package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to stdout and stderr
	Out io.Writer
	Err io.Writer
}

// NewOutputFormatter reads the --json and --quiet flags of cmd
func NewOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

type idGetter interface{ GetID() int }

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	return f.Render(data, nil)
}

// Render outputs data in the selected mode. human draws the
// human-readable form; nil falls back to a plain dump.
func (f *OutputFormatter) Render(data interface{}, human func(w io.Writer) error) error {
	if f.Quiet && f.printIDs(data) {
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		return human(f.out())
	}
	return f.prettyPrint(data)
}

// printIDs prints the id of data, or of every element of a slice of data
func (f *OutputFormatter) printIDs(data interface{}) bool {
	if g, ok := data.(idGetter); ok {
		fmt.Fprintf(f.out(), "%d\n", g.GetID())
		return true
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		g, ok := v.Index(i).Interface().(idGetter)
		if !ok {
			return false
		}
		fmt.Fprintf(f.out(), "%d\n", g.GetID())
	}
	return true
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.err(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.err(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	fmt.Fprintf(f.out(), "%+v\n", data)
	return nil
}
