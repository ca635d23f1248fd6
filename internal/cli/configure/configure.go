// Package configure holds the commands that inspect and edit the config file
package configure

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE:  runPath,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after defaults and environment overrides are applied.",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set-url <base-url>",
		Short: "Point taskdeck at another API",
		Long: `Store the API base URL in the config file.

Examples:
  taskdeck config set-url http://localhost:8080/api/v1
`,
		Args: cobra.ExactArgs(1),
		RunE: runSetURL,
	})

	return cmd
}

func runPath(cmd *cobra.Command, _ []string) error {
	out := cli.NewOutputFormatter(cmd)

	path, err := config.Path()
	if err != nil {
		return out.Fail(fmt.Errorf("failed to resolve config path: %w", err))
	}

	return out.Render(map[string]string{"path": path}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, path)
		return err
	})
}

func runShow(cmd *cobra.Command, _ []string) error {
	out := cli.NewOutputFormatter(cmd)

	cfg, err := config.Load()
	if err != nil {
		return out.Fail(err)
	}

	return out.Render(cfg, func(w io.Writer) error {
		return yaml.NewEncoder(w).Encode(cfg)
	})
}

func runSetURL(cmd *cobra.Command, args []string) error {
	out := cli.NewOutputFormatter(cmd)

	raw := strings.TrimRight(strings.TrimSpace(args[0]), "/")
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return out.Usage("INVALID_URL", fmt.Sprintf("%q is not an http(s) URL", args[0]),
			"Example: taskdeck config set-url http://localhost:8080/api/v1")
	}

	cfg, err := config.Load()
	if err != nil {
		return out.Fail(err)
	}
	cfg.API.BaseURL = raw
	if err := cfg.Save(); err != nil {
		return out.Fail(fmt.Errorf("failed to save config: %w", err))
	}

	return out.Render(map[string]string{"base_url": raw}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✅ API base URL set to %s\n", raw)
		return err
	})
}
