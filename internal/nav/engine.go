// Package nav decides which workspace to switch to when moving one step
// left or right across a multi-output layout.
//
// Each output conventionally owns a decade of workspace numbers (1-10 on the
// first output, 11-20 on the second, ...). A pass steps the current workspace
// number in the requested direction, skipping numbers that do not exist or
// live on another output. Once it leaves the decade it rolls over onto the
// neighbouring output, landing on that output's first (moving right) or last
// (moving left) workspace. At the outermost output the pass does nothing.
package nav

import (
	"fmt"
	"log/slog"

	"github.com/swaynav/swaynav/internal/ipc"
)

// DefaultDecadeWidth is the number of workspace numbers assigned to an output.
const DefaultDecadeWidth = 10

// Action is the terminal outcome of a resolution pass.
type Action string

const (
	// ActionSwitch switches to Decision.Workspace.
	ActionSwitch Action = "switch"

	// ActionNone leaves the focus where it is.
	ActionNone Action = "none"
)

// Decision is the result of one resolution pass.
type Decision struct {
	Action    Action `json:"action" yaml:"action"`
	Workspace int    `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	Output    string `json:"output,omitempty" yaml:"output,omitempty"`

	// Steps counts the workspace numbers skipped before the pass ended.
	Steps  int    `json:"steps" yaml:"steps"`
	Reason string `json:"reason" yaml:"reason"`
}

// WorkspaceLocator answers ownership questions about workspaces.
type WorkspaceLocator interface {
	OwnerOf(num int) (string, bool, error)
	FirstOn(output string) (int, error)
	LastOn(output string) (int, error)
}

// Switcher runs compositor commands.
type Switcher interface {
	RunCommand(cmd string) ([]ipc.CommandResult, error)
}

// Options tune the numeric range considered to belong to the current output.
type Options struct {
	// DecadeWidth is the size of an output's workspace range. Zero means
	// DefaultDecadeWidth.
	DecadeWidth int

	// DecadeRelative uses the decade containing the current workspace
	// instead of the fixed range 1..DecadeWidth.
	DecadeRelative bool

	Logger *slog.Logger
}

// Engine resolves a single navigation step.
type Engine struct {
	snap    *Snapshot
	dir     Direction
	locator WorkspaceLocator
	lo, hi  int
	logger  *slog.Logger
}

// NewEngine prepares a pass from snap in direction dir.
func NewEngine(snap *Snapshot, dir Direction, locator WorkspaceLocator, opts Options) (*Engine, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	if snap == nil || snap.Registry == nil {
		return nil, fmt.Errorf("%w: empty snapshot", ErrSnapshotInconsistency)
	}

	width := opts.DecadeWidth
	if width <= 0 {
		width = DefaultDecadeWidth
	}
	lo, hi := 1, width
	if opts.DecadeRelative && snap.Workspace >= 1 {
		lo = ((snap.Workspace-1)/width)*width + 1
		hi = lo + width - 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		snap:    snap,
		dir:     dir,
		locator: locator,
		lo:      lo,
		hi:      hi,
		logger:  logger,
	}, nil
}

// Bounds returns the inclusive workspace range of the current output.
func (e *Engine) Bounds() (lo, hi int) {
	return e.lo, e.hi
}

// Resolve computes the decision without touching the compositor beyond
// read-only queries.
func (e *Engine) Resolve() (Decision, error) {
	idx, err := e.snap.Registry.IndexOf(e.snap.Output)
	if err != nil {
		return Decision{}, err
	}

	target := e.snap.Workspace
	maxSteps := e.hi - e.lo + 2
	for step := 0; step < maxSteps; step++ {
		target = e.dir.step(target)

		switch {
		case target > e.hi:
			return e.rollover(idx, 1, step)
		case target < e.lo:
			return e.rollover(idx, -1, step)
		}

		owner, ok, err := e.locator.OwnerOf(target)
		if err != nil {
			return Decision{}, err
		}
		e.logger.Debug("probe", "target", target, "owner", owner, "exists", ok, "step", step)

		if ok && owner == e.snap.Output {
			return Decision{
				Action:    ActionSwitch,
				Workspace: target,
				Output:    owner,
				Steps:     step,
				Reason:    fmt.Sprintf("workspace %d is on %s", target, owner),
			}, nil
		}
	}

	return Decision{}, fmt.Errorf("%w: %d steps from workspace %d", ErrScanBound, maxSteps, e.snap.Workspace)
}

// rollover lands on the output at offset side from position idx.
func (e *Engine) rollover(idx, side, steps int) (Decision, error) {
	edge := "right"
	if side < 0 {
		edge = "left"
	}

	neighbour, ok := e.snap.Registry.At(idx + side)
	if !ok {
		e.logger.Debug("no neighbouring output", "edge", edge, "output", e.snap.Output)
		return Decision{
			Action: ActionNone,
			Steps:  steps,
			Reason: fmt.Sprintf("%s is the %smost output", e.snap.Output, edge),
		}, nil
	}

	var (
		ws  int
		err error
	)
	if side > 0 {
		ws, err = e.locator.FirstOn(neighbour.Name)
	} else {
		ws, err = e.locator.LastOn(neighbour.Name)
	}
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Action:    ActionSwitch,
		Workspace: ws,
		Output:    neighbour.Name,
		Steps:     steps,
		Reason:    fmt.Sprintf("left the range %d-%d, rolled over to %s", e.lo, e.hi, neighbour.Name),
	}, nil
}

// Run resolves the pass and applies the decision through sw.
func (e *Engine) Run(sw Switcher) (Decision, error) {
	d, err := e.Resolve()
	if err != nil {
		return Decision{}, err
	}
	return d, Execute(sw, d)
}

// Execute issues the single switch command a decision calls for.
// A no-op decision sends nothing.
func Execute(sw Switcher, d Decision) error {
	if d.Action != ActionSwitch {
		return nil
	}
	if _, err := sw.RunCommand(SwitchCommand(d.Workspace)); err != nil {
		return fmt.Errorf("switch to workspace %d: %w", d.Workspace, err)
	}
	return nil
}

// SwitchCommand is the compositor command that focuses workspace num.
func SwitchCommand(num int) string {
	return fmt.Sprintf("workspace number %d", num)
}
