package nav

import (
	"fmt"
	"strings"
)

// Direction is the way a resolution pass scans workspace numbers.
type Direction int

const (
	// Prev scans toward lower workspace numbers and outputs to the left.
	Prev Direction = iota + 1

	// Next scans toward higher workspace numbers and outputs to the right.
	Next
)

// ValidDirections lists the accepted command-line literals.
var ValidDirections = []string{"prev", "next"}

// ParseDirection converts a command-line literal into a Direction.
// Matching is exact; anything else is ErrInvalidDirection.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "prev":
		return Prev, nil
	case "next":
		return Next, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected %s)", ErrInvalidDirection, s, strings.Join(ValidDirections, " or "))
	}
}

// String returns the command-line literal for the direction.
func (d Direction) String() string {
	switch d {
	case Prev:
		return "prev"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Prev or Next.
func (d Direction) Valid() bool {
	return d == Prev || d == Next
}

// step moves n one workspace in the direction.
func (d Direction) step(n int) int {
	if d == Prev {
		return n - 1
	}
	return n + 1
}
