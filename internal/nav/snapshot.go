package nav

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Snapshot is the compositor state a resolution pass starts from.
type Snapshot struct {
	// Workspace is the number of the focused output's current workspace.
	Workspace int

	// Output owns Workspace according to the layout tree.
	Output string

	// Registry orders the active outputs left to right.
	Registry *Registry
}

// NewSnapshot reads the focused workspace, the output registry and the
// tree-derived owner of the focused workspace from src.
func NewSnapshot(src StateSource) (*Snapshot, error) {
	outputs, err := src.GetOutputs()
	if err != nil {
		return nil, fmt.Errorf("get outputs: %w", err)
	}

	var current string
	found := false
	for _, o := range outputs {
		if o.Focused {
			current = o.CurrentWorkspace
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no focused output", ErrSnapshotInconsistency)
	}

	num, err := WorkspaceNumber(current)
	if err != nil {
		return nil, err
	}

	tree, err := src.GetTree()
	if err != nil {
		return nil, fmt.Errorf("get tree: %w", err)
	}
	owner, ok, err := ownerInTree(tree, num)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: workspace %d not found in tree", ErrSnapshotInconsistency, num)
	}

	registry := NewRegistry(outputs)
	if _, err := registry.IndexOf(owner); err != nil {
		return nil, err
	}

	return &Snapshot{
		Workspace: num,
		Output:    owner,
		Registry:  registry,
	}, nil
}

// WorkspaceNumber extracts the leading number of a workspace name,
// e.g. "3: web" or "3 web" yields 3.
func WorkspaceNumber(name string) (int, error) {
	token := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == ':'
	})
	if len(token) == 0 {
		return 0, fmt.Errorf("%w: focused output has no current workspace", ErrSnapshotInconsistency)
	}
	num, err := strconv.Atoi(token[0])
	if err != nil {
		return 0, fmt.Errorf("%w: workspace %q has no number", ErrSnapshotInconsistency, name)
	}
	return num, nil
}
