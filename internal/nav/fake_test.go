package nav

import (
	"sort"
	"strconv"

	"github.com/swaynav/swaynav/internal/ipc"
)

// fakeCompositor is an in-memory StateSource and Switcher.
type fakeCompositor struct {
	outputs    []ipc.Output
	workspaces []ipc.Workspace

	commands  []string
	runErr    error
	treeCalls int
}

func newFakeCompositor() *fakeCompositor {
	return &fakeCompositor{}
}

// output adds an active output at horizontal position x with the given
// workspace numbers.
func (f *fakeCompositor) output(name string, x int, nums ...int) *fakeCompositor {
	f.outputs = append(f.outputs, ipc.Output{
		Name:   name,
		Active: true,
		Rect:   ipc.Rect{X: x, Width: 1920, Height: 1080},
	})
	for _, n := range nums {
		f.workspaces = append(f.workspaces, ipc.Workspace{
			Num:    n,
			Name:   strconv.Itoa(n),
			Output: name,
		})
	}
	return f
}

// focus marks output as focused and showing workspace current.
func (f *fakeCompositor) focus(output string, current int) *fakeCompositor {
	for i := range f.outputs {
		f.outputs[i].Focused = f.outputs[i].Name == output
		if f.outputs[i].Focused {
			f.outputs[i].CurrentWorkspace = strconv.Itoa(current)
		}
	}
	return f
}

func (f *fakeCompositor) GetOutputs() ([]ipc.Output, error) {
	return append([]ipc.Output(nil), f.outputs...), nil
}

func (f *fakeCompositor) GetWorkspaces() ([]ipc.Workspace, error) {
	sorted := append([]ipc.Workspace(nil), f.workspaces...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Num < sorted[j].Num })
	return sorted, nil
}

// GetTree mirrors the sway layout: root, then outputs (including the
// internal scratchpad output), then workspaces.
func (f *fakeCompositor) GetTree() (*ipc.Node, error) {
	f.treeCalls++

	scratchNum := -1
	root := &ipc.Node{
		ID:   1,
		Name: "root",
		Type: "root",
		Nodes: []*ipc.Node{{
			Name: "__i3",
			Type: "output",
			Nodes: []*ipc.Node{{
				Name: "__i3_scratch",
				Type: "workspace",
				Num:  &scratchNum,
			}},
		}},
	}
	for _, o := range f.outputs {
		outNode := &ipc.Node{Name: o.Name, Type: "output"}
		for _, ws := range f.workspaces {
			if ws.Output != o.Name {
				continue
			}
			num := ws.Num
			owner := ws.Output
			outNode.Nodes = append(outNode.Nodes, &ipc.Node{
				Name:   ws.Name,
				Type:   "workspace",
				Num:    &num,
				Output: &owner,
			})
		}
		root.Nodes = append(root.Nodes, outNode)
	}
	return root, nil
}

func (f *fakeCompositor) RunCommand(cmd string) ([]ipc.CommandResult, error) {
	f.commands = append(f.commands, cmd)
	if f.runErr != nil {
		return []ipc.CommandResult{{Success: false, Error: f.runErr.Error()}}, f.runErr
	}
	return []ipc.CommandResult{{Success: true}}, nil
}
