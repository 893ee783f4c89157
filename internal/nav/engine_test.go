package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaynav/swaynav/internal/ipc"
)

func newTestEngine(t *testing.T, fake *fakeCompositor, dir Direction, opts Options) *Engine {
	t.Helper()
	snap, err := NewSnapshot(fake)
	require.NoError(t, err)
	engine, err := NewEngine(snap, dir, NewLocator(fake), opts)
	require.NoError(t, err)
	return engine
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *fakeCompositor
		dir   Direction
		opts  Options
		want  Decision
	}{
		{
			name: "next neighbour exists on current output",
			setup: func() *fakeCompositor {
				return newFakeCompositor().output("A", 0, 1, 2, 3).focus("A", 2)
			},
			dir:  Next,
			want: Decision{Action: ActionSwitch, Workspace: 3, Output: "A", Steps: 0},
		},
		{
			name: "prev neighbour exists on current output",
			setup: func() *fakeCompositor {
				return newFakeCompositor().output("A", 0, 1, 2, 3).focus("A", 2)
			},
			dir:  Prev,
			want: Decision{Action: ActionSwitch, Workspace: 1, Output: "A", Steps: 0},
		},
		{
			name: "scan past empty decade onto right output",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1, 2, 3).
					output("B", 1920, 11).
					focus("A", 3)
			},
			dir:  Next,
			want: Decision{Action: ActionSwitch, Workspace: 11, Output: "B", Steps: 7},
		},
		{
			name: "single output at lower edge",
			setup: func() *fakeCompositor {
				return newFakeCompositor().output("A", 0, 1).focus("A", 1)
			},
			dir:  Prev,
			want: Decision{Action: ActionNone, Steps: 0},
		},
		{
			name: "upper boundary rolls to first workspace of right output",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1, 10).
					output("B", 1920, 13, 11, 12).
					focus("A", 10)
			},
			dir:  Next,
			want: Decision{Action: ActionSwitch, Workspace: 11, Output: "B", Steps: 0},
		},
		{
			name: "lower boundary rolls to last workspace of left output",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("L", -1920, 21, 25, 22).
					output("A", 0, 1, 2).
					focus("A", 1)
			},
			dir:  Prev,
			want: Decision{Action: ActionSwitch, Workspace: 25, Output: "L", Steps: 0},
		},
		{
			name: "rightmost output at upper edge is a no-op",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1).
					output("B", 1920, 10).
					focus("B", 10)
			},
			dir:  Next,
			want: Decision{Action: ActionNone, Steps: 0},
		},
		{
			name: "skips foreign and missing workspaces",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1, 5).
					output("B", 1920, 2, 3).
					focus("A", 1)
			},
			dir:  Next,
			want: Decision{Action: ActionSwitch, Workspace: 5, Output: "A", Steps: 3},
		},
		{
			name: "prev scan falls through to left output",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("L", 0, 1, 2).
					output("A", 1920, 5, 6).
					focus("A", 5)
			},
			dir:  Prev,
			want: Decision{Action: ActionSwitch, Workspace: 2, Output: "L", Steps: 4},
		},
		{
			name: "fixed range treats second decade as out of range",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1).
					output("B", 1920, 11, 13).
					focus("B", 11)
			},
			dir:  Next,
			want: Decision{Action: ActionNone, Steps: 0},
		},
		{
			name: "decade relative range scans within second decade",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1).
					output("B", 1920, 11, 13).
					focus("B", 11)
			},
			dir:  Next,
			opts: Options{DecadeRelative: true},
			want: Decision{Action: ActionSwitch, Workspace: 13, Output: "B", Steps: 1},
		},
		{
			name: "decade relative range rolls left from start of decade",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1, 4).
					output("B", 1920, 11, 13).
					focus("B", 11)
			},
			dir:  Prev,
			opts: Options{DecadeRelative: true},
			want: Decision{Action: ActionSwitch, Workspace: 4, Output: "A", Steps: 0},
		},
		{
			name: "custom decade width",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1, 2, 3).
					output("B", 1920, 6).
					focus("A", 3)
			},
			dir:  Next,
			opts: Options{DecadeWidth: 5},
			want: Decision{Action: ActionSwitch, Workspace: 6, Output: "B", Steps: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, tt.setup(), tt.dir, tt.opts)

			got, err := engine.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want.Action, got.Action)
			assert.Equal(t, tt.want.Workspace, got.Workspace)
			assert.Equal(t, tt.want.Output, got.Output)
			assert.Equal(t, tt.want.Steps, got.Steps)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestResolveEmptyNeighbourOutput(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *fakeCompositor
		dir   Direction
	}{
		{
			name: "upper boundary onto output without workspaces",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("A", 0, 1, 10).
					output("B", 1920).
					focus("A", 10)
			},
			dir: Next,
		},
		{
			name: "lower boundary onto output without workspaces",
			setup: func() *fakeCompositor {
				return newFakeCompositor().
					output("L", -1920).
					output("A", 0, 1, 2).
					focus("A", 1)
			},
			dir: Prev,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := tt.setup()
			engine := newTestEngine(t, fake, tt.dir, Options{})

			_, err := engine.Resolve()
			assert.ErrorIs(t, err, ErrSnapshotInconsistency)
			assert.ErrorIs(t, err, ErrNoWorkspaces)

			_, err = engine.Run(fake)
			require.Error(t, err)
			assert.Empty(t, fake.commands, "no switch is issued")
		})
	}
}

func TestResolveScanIsBounded(t *testing.T) {
	for _, dir := range []Direction{Prev, Next} {
		for cur := 1; cur <= 10; cur++ {
			// Only the current workspace exists, so every lookup misses.
			fake := newFakeCompositor().output("A", 0, cur).focus("A", cur)
			engine := newTestEngine(t, fake, dir, Options{})

			got, err := engine.Resolve()
			require.NoError(t, err, "dir=%s cur=%d", dir, cur)
			assert.Equal(t, ActionNone, got.Action)
			assert.LessOrEqual(t, got.Steps, 10)
			assert.LessOrEqual(t, fake.treeCalls, 11, "one tree query for the snapshot plus at most one per step")
		}
	}
}

func TestResolveScanSteps(t *testing.T) {
	// Workspaces cur+1..cur+k are missing; cur+k+1 is ours.
	for k := 0; k <= 8; k++ {
		fake := newFakeCompositor().output("A", 0, 1, k+2).focus("A", 1)
		engine := newTestEngine(t, fake, Next, Options{})

		got, err := engine.Resolve()
		require.NoError(t, err)
		assert.Equal(t, ActionSwitch, got.Action)
		assert.Equal(t, k+2, got.Workspace)
		assert.Equal(t, k, got.Steps)
	}
}

func TestNewEngineRejectsInvalidDirection(t *testing.T) {
	fake := newFakeCompositor().output("A", 0, 1).focus("A", 1)
	snap, err := NewSnapshot(fake)
	require.NoError(t, err)

	_, err = NewEngine(snap, Direction(0), NewLocator(fake), Options{})
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = NewEngine(nil, Next, NewLocator(fake), Options{})
	assert.ErrorIs(t, err, ErrSnapshotInconsistency)
}

func TestBounds(t *testing.T) {
	fake := newFakeCompositor().output("A", 0, 23).focus("A", 23)
	snap, err := NewSnapshot(fake)
	require.NoError(t, err)

	engine, err := NewEngine(snap, Next, NewLocator(fake), Options{})
	require.NoError(t, err)
	lo, hi := engine.Bounds()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 10, hi)

	engine, err = NewEngine(snap, Next, NewLocator(fake), Options{DecadeRelative: true})
	require.NoError(t, err)
	lo, hi = engine.Bounds()
	assert.Equal(t, 21, lo)
	assert.Equal(t, 30, hi)
}

func TestRunSwitchesExactlyOnce(t *testing.T) {
	fake := newFakeCompositor().
		output("A", 0, 1, 2, 3).
		output("B", 1920, 11).
		focus("A", 3)
	engine := newTestEngine(t, fake, Next, Options{})

	got, err := engine.Run(fake)
	require.NoError(t, err)
	assert.Equal(t, 11, got.Workspace)
	assert.Equal(t, []string{"workspace number 11"}, fake.commands)
}

func TestRunNoOpIsIdempotent(t *testing.T) {
	fake := newFakeCompositor().
		output("A", 0, 1).
		output("B", 1920, 10).
		focus("B", 10)

	for i := 0; i < 2; i++ {
		engine := newTestEngine(t, fake, Next, Options{})
		got, err := engine.Run(fake)
		require.NoError(t, err)
		assert.Equal(t, ActionNone, got.Action)
	}
	assert.Empty(t, fake.commands)
}

func TestRunCommandFailure(t *testing.T) {
	fake := newFakeCompositor().output("A", 0, 1, 2).focus("A", 1)
	fake.runErr = errors.Join(ipc.ErrCommandFailure, errors.New("no such workspace"))
	engine := newTestEngine(t, fake, Next, Options{})

	_, err := engine.Run(fake)
	require.Error(t, err)
	assert.ErrorIs(t, err, ipc.ErrCommandFailure)
	assert.Len(t, fake.commands, 1, "failed commands are not retried")
}

func TestSwitchCommand(t *testing.T) {
	assert.Equal(t, "workspace number 7", SwitchCommand(7))
}
