// Package ipc connects to the compositor over its IPC socket through go-sway
// and converts replies into the small types the navigation code works on.
//
// Every request runs under its own deadline. Failures to reach the
// compositor or decode a reply wrap ErrConnection; commands the compositor
// rejects wrap ErrCommandFailure.
package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joshuarubin/go-sway"
)

// DefaultTimeout is the per-request deadline used when none is configured.
const DefaultTimeout = 2 * time.Second

// ErrConnection is returned when the socket cannot be reached or a request
// cannot be completed.
var ErrConnection = errors.New("ipc connection error")

// ErrCommandFailure is returned when the compositor rejects a command.
var ErrCommandFailure = errors.New("command failed")

// swayConn is the part of the go-sway client used here.
type swayConn interface {
	GetOutputs(ctx context.Context) ([]sway.Output, error)
	GetWorkspaces(ctx context.Context) ([]sway.Workspace, error)
	GetTree(ctx context.Context) (*sway.Node, error)
	RunCommand(ctx context.Context, command string) ([]sway.RunCommandReply, error)
}

// newSwayConn opens the go-sway connection. The connection lives until ctx
// is cancelled. Tests replace it.
var newSwayConn = func(ctx context.Context, path string) (swayConn, error) {
	return sway.New(ctx, sway.WithSocketPath(path))
}

// SocketPath resolves the compositor socket. An explicit path wins, then
// $SWAYSOCK, then $I3SOCK.
func SocketPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if p := os.Getenv(env); p != "" {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: no socket path (set SWAYSOCK or I3SOCK, or pass --socket)", ErrConnection)
}

// Client is a connection to the compositor. It is not safe for concurrent use.
type Client struct {
	conn    swayConn
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// Dial connects to the compositor socket at path.
func Dial(path string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	conn, err := newSwayConn(ctx, path)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: connect to %s: %v", ErrConnection, path, err)
	}
	return &Client{conn: conn, ctx: ctx, cancel: cancel, timeout: timeout}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	c.cancel()
	if closer, ok := c.conn.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Client) request() (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.ctx, c.timeout)
}

// GetOutputs lists all outputs. An output is focused when it holds the
// focused workspace.
func (c *Client) GetOutputs() ([]Output, error) {
	ctx, cancel := c.request()
	defer cancel()

	outputs, err := c.conn.GetOutputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get outputs: %v", ErrConnection, err)
	}
	workspaces, err := c.conn.GetWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get workspaces: %v", ErrConnection, err)
	}

	var focused string
	for _, ws := range workspaces {
		if ws.Focused {
			focused = ws.Output
			break
		}
	}

	result := make([]Output, 0, len(outputs))
	for _, o := range outputs {
		result = append(result, Output{
			Name:             o.Name,
			Active:           o.Active,
			Focused:          o.Name != "" && o.Name == focused,
			CurrentWorkspace: o.CurrentWorkspace,
			Rect: Rect{
				X:      int(o.Rect.X),
				Y:      int(o.Rect.Y),
				Width:  int(o.Rect.Width),
				Height: int(o.Rect.Height),
			},
		})
	}
	return result, nil
}

// GetWorkspaces lists all existing workspaces.
func (c *Client) GetWorkspaces() ([]Workspace, error) {
	ctx, cancel := c.request()
	defer cancel()

	workspaces, err := c.conn.GetWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get workspaces: %v", ErrConnection, err)
	}
	result := make([]Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		result = append(result, Workspace{
			Num:     int(ws.Num),
			Name:    ws.Name,
			Output:  ws.Output,
			Focused: ws.Focused,
			Visible: ws.Visible,
		})
	}
	return result, nil
}

// GetTree returns the root of the layout tree.
func (c *Client) GetTree() (*Node, error) {
	ctx, cancel := c.request()
	defer cancel()

	root, err := c.conn.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get tree: %v", ErrConnection, err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: get tree: empty reply", ErrConnection)
	}
	return convertNode(root, ""), nil
}

// convertNode copies n and its tiling children. Workspace nodes get their
// number from the name and their output from the nearest output ancestor.
func convertNode(n *sway.Node, output string) *Node {
	node := &Node{
		ID:   int64(n.ID),
		Name: n.Name,
		Type: string(n.Type),
	}
	switch node.Type {
	case "output":
		output = n.Name
	case "workspace":
		num := workspaceNum(n.Name)
		node.Num = &num
		if output != "" {
			owner := output
			node.Output = &owner
		}
	}
	for _, child := range n.Nodes {
		if child != nil {
			node.Nodes = append(node.Nodes, convertNode(child, output))
		}
	}
	return node
}

// workspaceNum is the leading decimal number of a workspace name, or -1
// for names that do not start with a digit.
func workspaceNum(name string) int {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return -1
	}
	num, err := strconv.Atoi(name[:end])
	if err != nil {
		return -1
	}
	return num
}

// RunCommand runs cmd and fails with ErrCommandFailure if any part of it
// was rejected.
func (c *Client) RunCommand(cmd string) ([]CommandResult, error) {
	ctx, cancel := c.request()
	defer cancel()

	replies, err := c.conn.RunCommand(ctx, cmd)
	if err != nil && len(replies) == 0 {
		return nil, fmt.Errorf("%w: run command %q: %v", ErrConnection, cmd, err)
	}

	results := make([]CommandResult, 0, len(replies))
	var failures []string
	for _, r := range replies {
		results = append(results, CommandResult{Success: r.Success, Error: r.Error})
		if !r.Success {
			failures = append(failures, r.Error)
		}
	}
	if len(failures) == 0 && err != nil {
		failures = append(failures, err.Error())
	}
	if len(failures) > 0 {
		return results, fmt.Errorf("%w: %q: %s", ErrCommandFailure, cmd, strings.Join(failures, "; "))
	}
	return results, nil
}
