package output

import (
	"sync"

	"github.com/notnil/chess"
)

var startingFEN = sync.OnceValue(func() string {
	return chess.NewGame().Position().String()
})

// StartingFEN returns the FEN of the standard initial position.
// Lines are not replayed, so every row starts from here.
func StartingFEN() string {
	return startingFEN()
}
