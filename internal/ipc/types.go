package ipc

// Rect is a rectangle in compositor coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Output is an output as the navigation code sees it.
type Output struct {
	Name             string
	Active           bool
	Focused          bool
	CurrentWorkspace string
	Rect             Rect
}

// Workspace is one existing workspace.
// Named workspaces without a leading number report Num == -1.
type Workspace struct {
	Num     int
	Name    string
	Output  string
	Focused bool
	Visible bool
}

// Node is a container in the layout tree. Workspace nodes carry their
// number and the output they sit on.
type Node struct {
	ID     int64
	Name   string
	Type   string
	Num    *int
	Output *string
	Nodes  []*Node
}

// Find returns the first node, depth first, for which match returns true.
func (n *Node) Find(match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, child := range n.Nodes {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// CommandResult is the outcome of one command in a run_command request.
type CommandResult struct {
	Success bool
	Error   string
}
