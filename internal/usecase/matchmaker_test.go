package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

func sequentialIDs() func() string {
	next := 0

	return func() string {
		next++
		return fmt.Sprintf("session-%d", next)
	}
}

func firstStarts() int {
	return 0
}

func newTestMatchmaker() *Matchmaker {
	return NewMatchmaker(sequentialIDs(), WithStarterPicker(firstStarts))
}

func TestMatchmaker_Connect(t *testing.T) {
	t.Run("First connection waits in the pool", func(t *testing.T) {
		// Given: an empty matchmaker
		matchmaker := newTestMatchmaker()

		// When: a connection arrives
		assignment, err := matchmaker.Connect("a")
		require.NoError(t, err)

		// Then: it is told to wait and no match exists
		assert.Equal(t, AssignmentWaiting, assignment.State)
		assert.Empty(t, assignment.SessionID)
		assert.Equal(t, 1, matchmaker.Waiting())
		assert.Equal(t, 0, matchmaker.Active())
	})

	t.Run("Second connection starts a match with the pooled one", func(t *testing.T) {
		// Given: one pooled connection
		matchmaker := newTestMatchmaker()
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)

		// When: a second connection arrives
		assignment, err := matchmaker.Connect("b")
		require.NoError(t, err)

		// Then: a single match starts with an empty board and the pool is empty
		assert.Equal(t, AssignmentMatchStarted, assignment.State)
		assert.Equal(t, "session-1", assignment.SessionID)
		assert.Equal(t, [2]string{"a", "b"}, assignment.Match.Players)
		assert.Equal(t, entity.Board{}, assignment.Match.Board)
		assert.Equal(t, "a", assignment.Match.Turn)
		assert.Equal(t, entity.StatusInProgress, assignment.Match.Status)
		assert.Equal(t, 0, matchmaker.Waiting())
		assert.Equal(t, 1, matchmaker.Active())

		state, ok := matchmaker.Match("session-1")
		require.True(t, ok)
		assert.Equal(t, assignment.Match, state)
	})

	t.Run("Starter picker decides who moves first", func(t *testing.T) {
		// Given: a picker that always chooses the newcomer
		matchmaker := NewMatchmaker(sequentialIDs(), WithStarterPicker(func() int { return 1 }))
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)

		// When: the match starts
		assignment, err := matchmaker.Connect("b")
		require.NoError(t, err)

		// Then: the newcomer holds the first turn and plays cross
		assert.Equal(t, "b", assignment.Match.Turn)
		assert.Equal(t, entity.SymbolCross, assignment.Match.Symbols["b"])
	})

	t.Run("Default coin flip picks one of the two players", func(t *testing.T) {
		matchmaker := NewMatchmaker(sequentialIDs())
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)

		assignment, err := matchmaker.Connect("b")
		require.NoError(t, err)

		assert.Contains(t, []string{"a", "b"}, assignment.Match.Turn)
	})

	t.Run("Pool is first in first out", func(t *testing.T) {
		// Given: "a" and "b" paired up and "c" waiting
		matchmaker := newTestMatchmaker()
		for _, connID := range []string{"a", "b", "c"} {
			_, err := matchmaker.Connect(connID)
			require.NoError(t, err)
		}

		// When: "d" connects
		_, err := matchmaker.Connect("d")
		require.NoError(t, err)

		// Then: "c" was paired with "d"
		state, ok := matchmaker.Match("session-2")
		require.True(t, ok)
		assert.Equal(t, [2]string{"c", "d"}, state.Players)
	})

	t.Run("Same connection cannot connect twice", func(t *testing.T) {
		// Given: a pooled connection
		matchmaker := newTestMatchmaker()
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)

		// When: it connects again
		_, err = matchmaker.Connect("a")

		// Then: it is rejected and not paired with itself
		require.ErrorIs(t, err, apperror.ErrAlreadyConnected)
		assert.Equal(t, 1, matchmaker.Waiting())
		assert.Equal(t, 0, matchmaker.Active())
	})
}

func TestMatchmaker_MakeMove(t *testing.T) {
	t.Run("Plays a match to the end and forgets it", func(t *testing.T) {
		// Given: a running match where "a" starts
		matchmaker := newTestMatchmaker()
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)
		_, err = matchmaker.Connect("b")
		require.NoError(t, err)

		moves := []struct {
			connID string
			cell   entity.Cell
		}{
			{"a", entity.Cell{Row: 0, Column: 0}},
			{"b", entity.Cell{Row: 1, Column: 1}},
			{"a", entity.Cell{Row: 0, Column: 1}},
			{"b", entity.Cell{Row: 2, Column: 2}},
			{"a", entity.Cell{Row: 0, Column: 2}},
		}

		// When: "a" completes the first row
		var state entity.MatchState
		for _, move := range moves {
			state, err = matchmaker.MakeMove("session-1", move.connID, move.cell)
			require.NoError(t, err)
		}

		// Then: "a" won and the session is gone
		assert.Equal(t, entity.StatusWon, state.Status)
		assert.Equal(t, "a", state.Winner)
		assert.Equal(t, 0, matchmaker.Active())

		_, err = matchmaker.MakeMove("session-1", "b", entity.Cell{Row: 2, Column: 0})
		require.ErrorIs(t, err, apperror.ErrUnknownSession)
	})

	t.Run("Rejected move keeps the match", func(t *testing.T) {
		// Given: a running match where "a" starts
		matchmaker := newTestMatchmaker()
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)
		_, err = matchmaker.Connect("b")
		require.NoError(t, err)

		// When: "b" moves out of turn
		state, err := matchmaker.MakeMove("session-1", "b", entity.Cell{Row: 0, Column: 0})

		// Then: the move is rejected with the untouched state
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, state.Board)
		assert.Equal(t, "a", state.Turn)
		assert.Equal(t, 1, matchmaker.Active())
	})

	t.Run("Unknown session is reported", func(t *testing.T) {
		matchmaker := newTestMatchmaker()

		_, err := matchmaker.MakeMove("nope", "a", entity.Cell{})

		require.ErrorIs(t, err, apperror.ErrUnknownSession)
	})

	t.Run("Outsider cannot move in someone else's session", func(t *testing.T) {
		// Given: a running match between "a" and "b"
		matchmaker := newTestMatchmaker()
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)
		_, err = matchmaker.Connect("b")
		require.NoError(t, err)

		// When: "c" sends a move for that session
		_, err = matchmaker.MakeMove("session-1", "c", entity.Cell{})

		// Then: the session is unknown to "c"
		require.ErrorIs(t, err, apperror.ErrUnknownSession)
	})
}

func TestMatchmaker_Disconnect(t *testing.T) {
	t.Run("Pooled connection leaves the pool", func(t *testing.T) {
		// Given: one pooled connection
		matchmaker := newTestMatchmaker()
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)

		// When: it disconnects
		departure, err := matchmaker.Disconnect("a", "")
		require.NoError(t, err)

		// Then: nobody is notified and the pool is empty
		assert.False(t, departure.Aborted())
		assert.Equal(t, 0, matchmaker.Waiting())

		// And: the next connection waits instead of pairing with a ghost
		assignment, err := matchmaker.Connect("b")
		require.NoError(t, err)
		assert.Equal(t, AssignmentWaiting, assignment.State)
	})

	t.Run("Participant disconnect aborts the match", func(t *testing.T) {
		// Given: a running match
		matchmaker := newTestMatchmaker()
		_, err := matchmaker.Connect("a")
		require.NoError(t, err)
		_, err = matchmaker.Connect("b")
		require.NoError(t, err)

		// When: "b" disconnects
		departure, err := matchmaker.Disconnect("b", "session-1")
		require.NoError(t, err)

		// Then: "a" is the opponent to notify and the match is gone
		assert.True(t, departure.Aborted())
		assert.Equal(t, "a", departure.Opponent)
		assert.Equal(t, entity.StatusAborted, departure.Match.Status)
		assert.Equal(t, 0, matchmaker.Active())

		_, err = matchmaker.MakeMove("session-1", "a", entity.Cell{})
		require.ErrorIs(t, err, apperror.ErrUnknownSession)

		// And: the second disconnect is a no-op
		_, err = matchmaker.Disconnect("a", "session-1")
		require.ErrorIs(t, err, apperror.ErrUnknownSession)
	})

	t.Run("Unknown pooled connection is reported", func(t *testing.T) {
		matchmaker := newTestMatchmaker()

		_, err := matchmaker.Disconnect("ghost", "")

		require.ErrorIs(t, err, apperror.ErrUnknownSession)
	})
}
