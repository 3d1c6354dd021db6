package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_Result(t *testing.T) {
	t.Run("Returns won for every winning line", func(t *testing.T) {
		for _, line := range WinLines {
			// Given: a board where one player holds a full line
			var board Board
			for _, cell := range line {
				board[cell.Row][cell.Column] = "a"
			}

			// When: evaluating the board
			outcome := board.Result()

			// Then: the player holding the line wins
			assert.Equal(t, Won("a"), outcome, "line %v", line)
		}
	})

	t.Run("Returns drawn for a full board without a line", func(t *testing.T) {
		// Given: a full board where nobody completed a line
		board := Board{
			{"a", "b", "a"},
			{"a", "b", "b"},
			{"b", "a", "a"},
		}

		// When: evaluating the board
		outcome := board.Result()

		// Then: the game is drawn
		assert.Equal(t, Drawn(), outcome)
	})

	t.Run("Returns in progress while cells are left", func(t *testing.T) {
		// Given: a partially filled board without a line
		board := Board{
			{"a", "b", EmptyCell},
			{EmptyCell, "a", EmptyCell},
			{EmptyCell, EmptyCell, "b"},
		}

		// When: evaluating the board
		outcome := board.Result()

		// Then: the game goes on
		assert.Equal(t, InProgress(), outcome)
		assert.Equal(t, 4, board.Occupied())
	})

	t.Run("A line wins even on a full board", func(t *testing.T) {
		// Given: a full board with a completed row
		board := Board{
			{"a", "a", "a"},
			{"b", "b", "a"},
			{"a", "b", "b"},
		}

		// When: evaluating the board
		outcome := board.Result()

		// Then: the win takes precedence over the draw
		assert.Equal(t, Won("a"), outcome)
	})
}

func TestStatus_Text(t *testing.T) {
	for _, status := range []Status{StatusInProgress, StatusWon, StatusDrawn, StatusAborted} {
		text, err := status.MarshalText()
		assert.NoError(t, err)

		var decoded Status
		assert.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, status, decoded)
	}

	_, err := Status(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownStatus)

	var decoded Status
	assert.ErrorIs(t, decoded.UnmarshalText([]byte("paused")), ErrUnknownStatus)
}
