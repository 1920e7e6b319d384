package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/config"
	"github.com/example/workerhub/internal/wire"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (file, .env and environment merged)",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(wire.Config(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.json to ~/.workerhub",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return initConfig(cmd, home, force)
	},
}

func initConfig(cmd *cobra.Command, dir string, force bool) error {
	path := filepath.Join(dir, config.DirName, "config.json")
	if !force {
		if _, err := config.LoadConfig(dir); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := config.SaveConfig(dir, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config.json")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	return configCmd
}
