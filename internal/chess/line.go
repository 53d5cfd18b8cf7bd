package chess

import "strings"

// Line is one drillable move sequence: a title and the SAN moves from the
// start of the game to one leaf of the move tree.
type Line struct {
	Title string
	Moves []string
}

// PlyCount returns the number of plies in the line.
func (l Line) PlyCount() int {
	return len(l.Moves)
}

// String returns the moves separated by spaces.
func (l Line) String() string {
	return strings.Join(l.Moves, " ")
}
