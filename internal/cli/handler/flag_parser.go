// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd       *cobra.Command
	args      []string
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, args []string, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		args:      args,
		formatter: formatter,
	}
}

// Args returns the positional arguments
func (p *FlagParser) Args() []string {
	return p.args
}

// Changed reports whether the flag was set explicitly
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// Usage reports a usage error through the formatter
func (p *FlagParser) Usage(code, message string) error {
	return p.formatter.Usage(code, message, "Usage: "+p.cmd.UseLine())
}

// Bool extracts a boolean flag
func (p *FlagParser) Bool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// ParseID extracts an id from the first positional argument or the --id flag
func (p *FlagParser) ParseID(flagName string) (int, error) {
	if len(p.args) > 0 {
		id, err := strconv.Atoi(p.args[0])
		if err != nil || id <= 0 {
			return 0, p.Usage("INVALID_ID", fmt.Sprintf("%s must be a positive integer, got %q", flagName, p.args[0]))
		}
		return id, nil
	}

	id, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, p.Usage("INVALID_ID", fmt.Sprintf("%s must be greater than 0", flagName))
	}
	return id, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", p.Usage("MISSING_FLAG", fmt.Sprintf("%s is required", flagName))
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) string {
	value, _ := p.cmd.Flags().GetString(flagName)
	return value
}

// ParseText extracts an optional free-text flag. The value "-" reads the
// text from stdin.
func (p *FlagParser) ParseText(flagName string) (string, error) {
	value := p.ParseStringOptional(flagName)
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(p.cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read %s from stdin: %w", flagName, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) int {
	value, _ := p.cmd.Flags().GetInt(flagName)
	return value
}

// ParsePriority extracts an optional priority flag. Empty means unset.
func (p *FlagParser) ParsePriority(flagName string) (models.Priority, error) {
	raw := p.ParseStringOptional(flagName)
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return models.ParsePriority(raw)
}

// ParseStatus extracts an optional status flag. Empty and "all" mean unset.
func (p *FlagParser) ParseStatus(flagName string) (models.Status, error) {
	raw := strings.TrimSpace(p.ParseStringOptional(flagName))
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", nil
	}
	return models.ParseStatus(raw)
}
