// Package lines flattens a move tree into the study lines it contains.
package lines

import "github.com/lgbarn/pgn2anki-go/internal/chess"

// visit is one node on the active path of the traversal.
type visit struct {
	node  *chess.MoveNode
	next  int // index of the next child to descend into
	depth int // path length before this node's move was added
}

// Extract returns the move sequence of every leaf under root, in document
// order: children are visited in the order they were added, so the main
// line comes first and each variation's lines follow the move it replaces.
// Only leaves produce lines; a leaf with no moves (an empty tree) produces
// nothing.
//
// A node that is already on the active path is not entered again, so a
// structure that is not a tree still yields a finite result.
func Extract(root *chess.MoveNode) [][]string {
	var (
		out    [][]string
		path   []string
		stack  []*visit
		active = make(map[*chess.MoveNode]bool)
	)

	enter := func(n *chess.MoveNode) {
		if n == nil || active[n] {
			return
		}
		depth := len(path)
		if !n.IsRoot() {
			path = append(path, n.San)
		}
		if n.IsLeaf() {
			if len(path) > 0 {
				out = append(out, append([]string(nil), path...))
			}
			path = path[:depth]
			return
		}
		active[n] = true
		stack = append(stack, &visit{node: n, depth: depth})
	}

	enter(root)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			enter(child)
			continue
		}
		stack = stack[:len(stack)-1]
		delete(active, top.node)
		path = path[:top.depth]
	}

	return out
}
