package nav

import (
	"fmt"

	"github.com/swaynav/swaynav/internal/ipc"
)

// StateSource is the read side of the compositor connection.
type StateSource interface {
	GetOutputs() ([]ipc.Output, error)
	GetWorkspaces() ([]ipc.Workspace, error)
	GetTree() (*ipc.Node, error)
}

// Locator answers workspace ownership questions against live compositor
// state. Every call queries the source again.
type Locator struct {
	src StateSource
}

// NewLocator returns a Locator backed by src.
func NewLocator(src StateSource) *Locator {
	return &Locator{src: src}
}

// OwnerOf returns the output holding workspace num, or false if no such
// workspace exists.
func (l *Locator) OwnerOf(num int) (string, bool, error) {
	tree, err := l.src.GetTree()
	if err != nil {
		return "", false, fmt.Errorf("get tree: %w", err)
	}
	return ownerInTree(tree, num)
}

// FirstOn returns the lowest workspace number on the named output.
func (l *Locator) FirstOn(output string) (int, error) {
	nums, err := l.numbersOn(output)
	if err != nil {
		return 0, err
	}
	lowest := nums[0]
	for _, n := range nums[1:] {
		if n < lowest {
			lowest = n
		}
	}
	return lowest, nil
}

// LastOn returns the highest workspace number on the named output.
func (l *Locator) LastOn(output string) (int, error) {
	nums, err := l.numbersOn(output)
	if err != nil {
		return 0, err
	}
	highest := nums[0]
	for _, n := range nums[1:] {
		if n > highest {
			highest = n
		}
	}
	return highest, nil
}

// numbersOn lists the numbered workspaces on output. Named workspaces
// without a number are skipped.
func (l *Locator) numbersOn(output string) ([]int, error) {
	workspaces, err := l.src.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("get workspaces: %w", err)
	}
	var nums []int
	for _, ws := range workspaces {
		if ws.Output == output && ws.Num >= 0 {
			nums = append(nums, ws.Num)
		}
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("%w: %w: %q", ErrSnapshotInconsistency, ErrNoWorkspaces, output)
	}
	return nums, nil
}

// ownerInTree looks two levels below the root node (root, outputs,
// workspaces) for a workspace numbered num. A workspace node without an
// output field belongs to its parent output.
func ownerInTree(tree *ipc.Node, num int) (string, bool, error) {
	root := tree.Find(func(n *ipc.Node) bool { return n.Name == "root" || n.Type == "root" })
	if root == nil {
		return "", false, fmt.Errorf("%w: no root node in tree", ErrSnapshotInconsistency)
	}
	for _, out := range root.Nodes {
		for _, ws := range out.Nodes {
			if ws.Num == nil || *ws.Num != num {
				continue
			}
			if ws.Output != nil && *ws.Output != "" {
				return *ws.Output, true, nil
			}
			return out.Name, true, nil
		}
	}
	return "", false, nil
}
