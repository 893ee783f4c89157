// Package cmd contains all CLI commands for swaynav.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/swaynav/swaynav/internal/nav"
	"github.com/swaynav/swaynav/internal/output"
)

var (
	// Version is the current version of swaynav
	Version = "0.1.0"

	// Global flags
	verbose      bool
	configPath   string
	socketPath   string
	outputFormat string

	// Navigation flags
	dryRun bool
)

// rootCmd switches to the neighbouring workspace in the given direction
var rootCmd = &cobra.Command{
	Use:   "swaynav <prev|next>",
	Short: "Move between numbered workspaces across outputs",
	Long: `swaynav switches to the previous or next numbered workspace on the focused
output of sway or i3.

Each output owns a range of ten workspace numbers (1-10 on the leftmost
output). Numbers that do not exist or belong to another output are skipped.
When the range is exhausted swaynav moves onto the neighbouring output: its
first workspace when moving right, its last workspace when moving left. At
the outermost output nothing happens.

The compositor socket is taken from --socket, the config file, $SWAYSOCK or
$I3SOCK, in that order.

Examples:
  swaynav next                   # Next workspace, rolling onto the right output
  swaynav prev                   # Previous workspace, rolling onto the left output
  swaynav next --dry-run         # Print the decision without switching
  swaynav outputs --format json  # Show outputs in navigation order`,
	Version:       Version,
	Args:          directionArg,
	ValidArgs:     nav.ValidDirections,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNavigate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/swaynav/config.yaml)")
	addConnectionFlags(rootCmd.PersistentFlags())
	addRenderFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the decision instead of switching")
}

// addConnectionFlags registers flags that control the compositor connection.
func addConnectionFlags(fs *pflag.FlagSet) {
	fs.StringVar(&socketPath, "socket", "", "Compositor IPC socket (default: $SWAYSOCK, then $I3SOCK)")
}

// addRenderFlags registers flags that control printed output.
func addRenderFlags(fs *pflag.FlagSet) {
	fs.StringVar(&outputFormat, "format", string(output.DefaultFormat), "Output format (yaml|json)")
}

// directionArg rejects anything but a single valid direction before any
// connection is made.
func directionArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one of %v, got %d arguments",
			nav.ErrInvalidDirection, nav.ValidDirections, len(args))
	}
	_, err := nav.ParseDirection(args[0])
	return err
}

// exitCode maps an error to the process exit status. Usage errors exit 2.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, nav.ErrInvalidDirection) {
		return 2
	}
	return 1
}
