// Package chess provides the move tree and line types shared by the parser,
// the line extractor and the output writers.
package chess

// MoveNode represents one ply in a move tree.
// The synthetic root of a tree has an empty San; every other node carries
// the move text exactly as it appeared in the source notation.
type MoveNode struct {
	// The move text (e.g., "Nf3", "exd5", "O-O"). Empty for the root.
	San string

	// Continuations after this ply, in the order they were declared.
	// The first child is the main line, later children are variations.
	Children []*MoveNode
}

// NewRoot creates the synthetic root of a move tree.
func NewRoot() *MoveNode {
	return &MoveNode{}
}

// NewMoveNode creates a node for a single ply.
func NewMoveNode(san string) *MoveNode {
	return &MoveNode{San: san}
}

// AddChild appends child as the last continuation of n and returns child.
func (n *MoveNode) AddChild(child *MoveNode) *MoveNode {
	n.Children = append(n.Children, child)
	return child
}

// IsRoot returns true if n carries no move.
func (n *MoveNode) IsRoot() bool {
	return n.San == ""
}

// IsLeaf returns true if n has no continuations.
func (n *MoveNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// CountPlies returns the number of labelled nodes reachable from n,
// counting each node once even if the structure is not a tree.
func (n *MoveNode) CountPlies() int {
	seen := make(map[*MoveNode]bool)
	stack := []*MoveNode{n}
	count := 0
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil || seen[node] {
			continue
		}
		seen[node] = true
		if !node.IsRoot() {
			count++
		}
		stack = append(stack, node.Children...)
	}
	return count
}
