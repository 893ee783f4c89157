// Package main is the entry point for the swaynav CLI tool.
package main

import (
	"github.com/swaynav/swaynav/internal/cmd"
)

func main() {
	cmd.Execute()
}
