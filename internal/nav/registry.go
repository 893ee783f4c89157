package nav

import (
	"fmt"
	"sort"

	"github.com/swaynav/swaynav/internal/ipc"
)

// Registry holds the active outputs ordered left to right.
// It is built once per pass and never modified.
type Registry struct {
	outputs []ipc.Output
}

// NewRegistry keeps the active outputs and sorts them by horizontal position.
// Outputs sharing a position are ordered by name.
func NewRegistry(outputs []ipc.Output) *Registry {
	active := make([]ipc.Output, 0, len(outputs))
	for _, o := range outputs {
		if o.Active {
			active = append(active, o)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Rect.X != active[j].Rect.X {
			return active[i].Rect.X < active[j].Rect.X
		}
		return active[i].Name < active[j].Name
	})
	return &Registry{outputs: active}
}

// IndexOf returns the left-to-right position of the named output.
func (r *Registry) IndexOf(name string) (int, error) {
	for i, o := range r.outputs {
		if o.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrOutputNotFound, name)
}

// At returns the output at position i, or false past either edge.
func (r *Registry) At(i int) (ipc.Output, bool) {
	if i < 0 || i >= len(r.outputs) {
		return ipc.Output{}, false
	}
	return r.outputs[i], true
}

// Len returns the number of active outputs.
func (r *Registry) Len() int {
	return len(r.outputs)
}

// Outputs returns a copy of the ordered outputs.
func (r *Registry) Outputs() []ipc.Output {
	return append([]ipc.Output(nil), r.outputs...)
}
