package output

// DecisionOutput describes one navigation pass, printed by --dry-run.
type DecisionOutput struct {
	Direction string `yaml:"direction" json:"direction"`
	From      Origin `yaml:"from" json:"from"`
	Range     [2]int `yaml:"range,flow" json:"range"`

	Action    string `yaml:"action" json:"action"`
	Workspace int    `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Output    string `yaml:"output,omitempty" json:"output,omitempty"`
	Command   string `yaml:"command,omitempty" json:"command,omitempty"`
	Steps     int    `yaml:"steps" json:"steps"`
	Reason    string `yaml:"reason" json:"reason"`
}

// Origin is the workspace a pass started from.
type Origin struct {
	Workspace int    `yaml:"workspace" json:"workspace"`
	Output    string `yaml:"output" json:"output"`
}

// OutputsOutput lists active outputs left to right.
type OutputsOutput struct {
	Outputs []OutputEntry `yaml:"outputs" json:"outputs"`
}

// OutputEntry is one active output and the workspaces it holds.
type OutputEntry struct {
	Index            int    `yaml:"index" json:"index"`
	Name             string `yaml:"name" json:"name"`
	X                int    `yaml:"x" json:"x"`
	Focused          bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
	CurrentWorkspace string `yaml:"current_workspace,omitempty" json:"current_workspace,omitempty"`
	Workspaces       []int  `yaml:"workspaces,flow" json:"workspaces"`
}
