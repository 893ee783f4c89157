package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swaynav/swaynav/internal/config"
	"github.com/swaynav/swaynav/internal/output"
)

// configCmd groups config file subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the swaynav config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the default configuration to --config, or to
$XDG_CONFIG_HOME/swaynav/config.yaml. An existing file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.SaveDefault(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return output.Write(cmd.OutOrStdout(), output.FormatYAML, cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
