package review

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgnerrors "github.com/lgbarn/pgn2anki-go/internal/errors"
)

type brokenReviewer struct{}

func (brokenReviewer) AnswerCard(Ease) error {
	return errors.New("no card shown")
}

func TestHandleCommand_FailLine(t *testing.T) {
	r := NewMockReviewer(42)
	c := NewController(r)

	outcome, err := c.HandleCommand(MessageFailLine)
	require.NoError(t, err)
	assert.Equal(t, Failed, outcome)
	assert.Equal(t, []Action{{Kind: "answer", Ease: EaseAgain}}, r.Actions)
	assert.Equal(t, "ease_1", r.LastAction)
}

func TestHandleCommand_PassLine(t *testing.T) {
	r := NewMockReviewer(42)
	c := NewController(r)

	outcome, err := c.HandleCommand(MessagePassLine)
	require.NoError(t, err)
	assert.Equal(t, Passed, outcome)
	assert.Equal(t, []Action{{Kind: "answer", Ease: EaseGood}}, r.Actions)
	assert.Equal(t, "ease_3", r.LastAction)
}

func TestHandleCommand_Ignored(t *testing.T) {
	r := NewMockReviewer(42)
	c := NewController(r)

	for _, cmd := range []string{"noop", "", "FAIL_LINE", "pass_line "} {
		outcome, err := c.HandleCommand(cmd)
		require.NoError(t, err)
		assert.Equal(t, Ignored, outcome, "command %q", cmd)
	}
	assert.Empty(t, r.Actions)
	assert.Empty(t, r.LastAction)
}

func TestHandleCommand_ReviewerError(t *testing.T) {
	c := NewController(brokenReviewer{})

	_, err := c.HandleCommand(MessagePassLine)
	require.Error(t, err)
	assert.ErrorIs(t, err, pgnerrors.ErrGradeFailed)
	assert.Contains(t, err.Error(), "no card shown")
}

func TestOnBridgeMessage(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		handled  bool
		want     bool
		wantEase []Action
	}{
		{"fail line", MessageFailLine, false, true, []Action{{"answer", EaseAgain}}},
		{"pass line", MessagePassLine, false, true, []Action{{"answer", EaseGood}}},
		{"unknown passes false through", "other_message", false, false, nil},
		{"unknown passes true through", "other_message", true, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewMockReviewer(1)
			got, err := OnBridgeMessage(r, tt.handled, tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEase, r.Actions)
		})
	}
}

func TestOnBridgeMessage_Error(t *testing.T) {
	got, err := OnBridgeMessage(brokenReviewer{}, false, MessageFailLine)
	assert.ErrorIs(t, err, pgnerrors.ErrGradeFailed)
	assert.False(t, got)
}
