// Package review maps flashcard UI messages to review grades.
package review

import (
	"fmt"
	"sync"

	"github.com/lgbarn/pgn2anki-go/internal/errors"
)

// Ease is the grade given to a card.
type Ease int

const (
	EaseAgain Ease = 1 // card failed
	EaseGood  Ease = 3 // card passed
)

// Messages sent by the board UI when a line is finished.
const (
	MessageFailLine = "fail_line"
	MessagePassLine = "pass_line"
)

// Outcome is the result of handling a message.
type Outcome string

const (
	Failed  Outcome = "failed"
	Passed  Outcome = "passed"
	Ignored Outcome = "ignored"
)

// Reviewer grades the card currently under review.
type Reviewer interface {
	AnswerCard(ease Ease) error
}

// grades maps the recognised messages to their grade and outcome.
var grades = map[string]struct {
	ease    Ease
	outcome Outcome
}{
	MessageFailLine: {EaseAgain, Failed},
	MessagePassLine: {EaseGood, Passed},
}

// Controller dispatches UI messages to a Reviewer.
type Controller struct {
	reviewer Reviewer
}

// NewController creates a controller grading through r.
func NewController(r Reviewer) *Controller {
	return &Controller{reviewer: r}
}

// HandleCommand grades the current card for fail_line and pass_line.
// Any other command is ignored without touching the reviewer.
func (c *Controller) HandleCommand(cmd string) (Outcome, error) {
	g, ok := grades[cmd]
	if !ok {
		return Ignored, nil
	}
	if err := c.reviewer.AnswerCard(g.ease); err != nil {
		return Ignored, errors.Wrapf(errors.ErrGradeFailed, "%s: %v", cmd, err)
	}
	return g.outcome, nil
}

// OnBridgeMessage is the hook form of HandleCommand: it reports true for a
// message it graded and passes handled through for any other message.
func OnBridgeMessage(r Reviewer, handled bool, msg string) (bool, error) {
	outcome, err := NewController(r).HandleCommand(msg)
	if err != nil {
		return handled, err
	}
	if outcome == Ignored {
		return handled, nil
	}
	return true, nil
}

// Action is one grade recorded by MockReviewer.
type Action struct {
	Kind string
	Ease Ease
}

// MockReviewer records grades instead of sending them to an application.
type MockReviewer struct {
	mu         sync.Mutex
	CardID     int
	Actions    []Action
	LastAction string
}

// NewMockReviewer creates a reviewer showing card id.
func NewMockReviewer(id int) *MockReviewer {
	return &MockReviewer{CardID: id}
}

// AnswerCard records the grade.
func (m *MockReviewer) AnswerCard(ease Ease) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Actions = append(m.Actions, Action{Kind: "answer", Ease: ease})
	m.LastAction = fmt.Sprintf("ease_%d", ease)
	return nil
}
