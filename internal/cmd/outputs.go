package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/swaynav/swaynav/internal/nav"
	"github.com/swaynav/swaynav/internal/output"
)

// outputsCmd prints the active outputs in navigation order
var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List active outputs in navigation order",
	Long: `List active outputs sorted left to right by horizontal position, the order
swaynav rolls over in, together with the numbered workspaces each one holds.

Examples:
  swaynav outputs
  swaynav outputs --format json`,
	Args: cobra.NoArgs,
	RunE: runOutputs,
}

func init() {
	rootCmd.AddCommand(outputsCmd)
}

func runOutputs(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

	conn, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	outputs, err := conn.GetOutputs()
	if err != nil {
		return err
	}
	workspaces, err := conn.GetWorkspaces()
	if err != nil {
		return err
	}

	byOutput := make(map[string][]int)
	for _, ws := range workspaces {
		if ws.Num >= 0 {
			byOutput[ws.Output] = append(byOutput[ws.Output], ws.Num)
		}
	}

	registry := nav.NewRegistry(outputs)
	result := output.OutputsOutput{Outputs: make([]output.OutputEntry, 0, registry.Len())}
	for i, o := range registry.Outputs() {
		nums := byOutput[o.Name]
		sort.Ints(nums)
		if nums == nil {
			nums = []int{}
		}
		entry := output.OutputEntry{
			Index:      i,
			Name:       o.Name,
			X:          o.Rect.X,
			Focused:    o.Focused,
			Workspaces: nums,
		}
		if o.Focused {
			entry.CurrentWorkspace = o.CurrentWorkspace
		}
		result.Outputs = append(result.Outputs, entry)
	}

	return output.Write(cmd.OutOrStdout(), format, result)
}
