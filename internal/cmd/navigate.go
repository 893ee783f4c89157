package cmd

import (
	"github.com/spf13/cobra"

	"github.com/swaynav/swaynav/internal/nav"
	"github.com/swaynav/swaynav/internal/output"
)

// runNavigate resolves one step in the requested direction and switches to
// the resulting workspace, or prints the decision with --dry-run.
func runNavigate(cmd *cobra.Command, args []string) error {
	dir, err := nav.ParseDirection(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	conn, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	snap, err := nav.NewSnapshot(conn)
	if err != nil {
		return err
	}
	logger.Debug("snapshot", "workspace", snap.Workspace, "output", snap.Output, "outputs", snap.Registry.Len())

	engine, err := nav.NewEngine(snap, dir, nav.NewLocator(conn), nav.Options{
		DecadeWidth:    cfg.Navigation.DecadeWidth,
		DecadeRelative: cfg.Navigation.DecadeRelative,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	decision, err := engine.Resolve()
	if err != nil {
		return err
	}
	logger.Info("resolved", "direction", dir, "action", decision.Action,
		"workspace", decision.Workspace, "output", decision.Output, "steps", decision.Steps)

	if dryRun {
		return output.Write(cmd.OutOrStdout(), format, decisionOutput(dir, snap, engine, decision))
	}
	return nav.Execute(conn, decision)
}

func decisionOutput(dir nav.Direction, snap *nav.Snapshot, engine *nav.Engine, d nav.Decision) output.DecisionOutput {
	lo, hi := engine.Bounds()
	out := output.DecisionOutput{
		Direction: dir.String(),
		From:      output.Origin{Workspace: snap.Workspace, Output: snap.Output},
		Range:     [2]int{lo, hi},
		Action:    string(d.Action),
		Workspace: d.Workspace,
		Output:    d.Output,
		Steps:     d.Steps,
		Reason:    d.Reason,
	}
	if d.Action == nav.ActionSwitch {
		out.Command = nav.SwitchCommand(d.Workspace)
	}
	return out
}
