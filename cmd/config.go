package cmd

import (
	"fmt"
	"strings"

	"github.com/aviadshiber/wot/internal/config"
	"github.com/aviadshiber/wot/internal/output"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var keys strings.Builder
	for _, k := range config.KnownKeyNames() {
		fmt.Fprintf(&keys, "\n  %-16s %s", k, config.Describe(k))
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage wot configuration",
		Long: `Get, set, and list configuration values stored in ~/.config/wot/config.yaml.

Valid keys:` + keys.String(),
	}

	configCmd.AddCommand(newConfigSetCmd())
	configCmd.AddCommand(newConfigGetCmd())
	configCmd.AddCommand(newConfigListCmd())

	return configCmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  wot config set application_id 0123456789abcdef
  wot config set region sea`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			key := args[0]
			if err := cfg.Set(key, args[1]); err != nil {
				return err
			}

			s := getIO()
			s.Printf("%s %s=%s\n", s.Success("✓"),
				s.Bold(key), cfg.Get(key))
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			val := cfg.Get(args[0])
			if val == "" {
				return fmt.Errorf("key %q is not set; run: wot config set %s <value>", args[0], args[0])
			}

			s := getIO()
			s.Printf("%s\n", val)
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			entries := cfg.List()
			s := getIO()

			if jsonOutputRequested(cmd) {
				return output.PrintJSON(s.Out, entries)
			}

			if len(entries) == 0 {
				s.Printf("%s\n", s.Muted("No configuration set. Run: wot config set <key> <value>"))
				s.Printf("%s %s\n", s.Muted("Config file:"), cfg.FilePath())
				return nil
			}

			t := output.Table{Headers: []string{"KEY", "VALUE"}}
			for _, e := range entries {
				t.Rows = append(t.Rows, []string{e.Key, e.Value})
			}

			output.PrintTable(s.Out, t, s.IsTerminal())
			s.Printf("\n%s %s\n", s.Muted("Config file:"), cfg.FilePath())
			return nil
		},
	}
}
