package nav

import "errors"

// ErrInvalidDirection is returned for any direction other than "prev" or "next".
var ErrInvalidDirection = errors.New("invalid direction")

// ErrSnapshotInconsistency is returned when compositor state lacks something
// navigation relies on: a focused output, the workspace tree, or a workspace
// on an active output.
var ErrSnapshotInconsistency = errors.New("inconsistent compositor state")

// ErrNoWorkspaces is wrapped by ErrSnapshotInconsistency when an output has
// no workspaces.
var ErrNoWorkspaces = errors.New("output has no workspaces")

// ErrOutputNotFound is returned when an output is not in the registry.
var ErrOutputNotFound = errors.New("output not found")

// ErrScanBound is returned if a resolution pass exceeds its step bound.
var ErrScanBound = errors.New("navigation scan exceeded its bound")
