package parser

import "github.com/lgbarn/pgn2anki-go/internal/chess"

// BuildStats summarises a tree build.
type BuildStats struct {
	Moves      int // move nodes created
	Variations int // RAVs opened
	Unclosed   int // RAVs still open at end of input
	Stopped    bool
}

// frame is one level of RAV nesting.
type frame struct {
	root    *chess.MoveNode
	parents []*chess.MoveNode

	// Node that receives root's children when the frame closes.
	anchor *chess.MoveNode
}

func newFrame(anchor *chess.MoveNode) *frame {
	root := chess.NewRoot()
	return &frame{root: root, parents: []*chess.MoveNode{root}, anchor: anchor}
}

// top returns the node the next move is appended to.
func (f *frame) top() *chess.MoveNode {
	return f.parents[len(f.parents)-1]
}

// variationAnchor returns the node a RAV opened in f hangs from: the parent
// of the most recent move, or the frame root if no move has been played.
func (f *frame) variationAnchor() *chess.MoveNode {
	if len(f.parents) > 1 {
		return f.parents[len(f.parents)-2]
	}
	return f.top()
}

// close moves the alternatives gathered in f onto its anchor.
func (f *frame) close() {
	f.anchor.Children = append(f.anchor.Children, f.root.Children...)
}

// BuildTree builds a move tree from tokens, starting at index start.
// It returns the root and the index at which scanning stopped: past the
// ')' that closed this level, or len(tokens).
// Move numbers and results are skipped; every other move token becomes a
// node labelled with its exact text. Every '(' starts a nested level
// whose moves become alternatives to the move just played. Unbalanced
// markers never cause an error.
func BuildTree(tokens []Token, start int) (*chess.MoveNode, int) {
	root, next, _ := buildTree(tokens, start, false)
	return root, next
}

// buildTree builds the tree from index start. With stripNumbers set, a
// move number glued to a move ("1.e4") is dropped from the node label.
func buildTree(tokens []Token, start int, stripNumbers bool) (*chess.MoveNode, int, BuildStats) {
	var stats BuildStats
	outer := newFrame(nil)
	frames := []*frame{outer}

	i := start
	for ; i < len(tokens); i++ {
		tok := tokens[i]
		cur := frames[len(frames)-1]

		switch tok.Type {
		case RAVStart:
			frames = append(frames, newFrame(cur.variationAnchor()))
			stats.Variations++

		case RAVEnd:
			if len(frames) == 1 {
				stats.Stopped = true
				return outer.root, i + 1, stats
			}
			frames = frames[:len(frames)-1]
			cur.close()

		default:
			if IsMoveNumber(tok.Text) || IsGameResult(tok.Text) {
				continue
			}
			san := tok.Text
			if stripNumbers {
				san = stripMoveNumber(san)
			}
			node := cur.top().AddChild(chess.NewMoveNode(san))
			cur.parents = append(cur.parents, node)
			stats.Moves++
		}
	}

	// Unclosed RAVs run to the end of input.
	for len(frames) > 1 {
		last := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		last.close()
		stats.Unclosed++
	}

	return outer.root, i, stats
}
