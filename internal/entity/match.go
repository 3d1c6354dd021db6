package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

const (
	SymbolCross  = "cross"
	SymbolCircle = "circle"
)

var ErrInvalidParticipants = errors.New("match needs two distinct participants")

// Match - one game between two connections. The board is changed only by ApplyMove,
// and once the outcome is terminal nothing changes anymore.
type Match struct {
	id      string
	players [2]string
	cross   string
	board   Board
	turn    string
	outcome Outcome
}

// MatchState - a copy of the match that is safe to share, send and store.
type MatchState struct {
	ID      string            `json:"id"`
	Players [2]string         `json:"players"`
	Board   Board             `json:"board"`
	Turn    string            `json:"turn"`
	Status  Status            `json:"status"`
	Winner  string            `json:"winner,omitempty"`
	Symbols map[string]string `json:"symbols"`
}

func (that MatchState) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// NewMatch - starter holds the first turn and plays cross.
func NewMatch(id string, players [2]string, starter string) (*Match, error) {
	if players[0] == "" || players[1] == "" || players[0] == players[1] {
		return nil, fmt.Errorf("%w: %q, %q", ErrInvalidParticipants, players[0], players[1])
	}

	if starter != players[0] && starter != players[1] {
		return nil, fmt.Errorf("%w: starter %q is not a participant", ErrInvalidParticipants, starter)
	}

	return &Match{
		id:      id,
		players: players,
		cross:   starter,
		turn:    starter,
		outcome: InProgress(),
	}, nil
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) Players() [2]string {
	return that.players
}

func (that *Match) Turn() string {
	return that.turn
}

func (that *Match) Outcome() Outcome {
	return that.outcome
}

func (that *Match) HasPlayer(connID string) bool {
	return connID == that.players[0] || connID == that.players[1]
}

// Opponent - returns the other participant.
func (that *Match) Opponent(connID string) (string, bool) {
	switch connID {
	case that.players[0]:
		return that.players[1], true
	case that.players[1]:
		return that.players[0], true
	default:
		return "", false
	}
}

// ApplyMove - claims the cell for connID. A rejected move leaves the match untouched.
func (that *Match) ApplyMove(connID string, cell Cell) (MatchState, error) {
	if that.outcome.IsTerminal() {
		return that.State(), apperror.ErrMatchFinished
	}

	if connID != that.turn {
		return that.State(), apperror.ErrNotYourTurn
	}

	if !cell.InBounds() {
		return that.State(), fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfBounds, cell.Row, cell.Column)
	}

	if that.board.At(cell) != EmptyCell {
		return that.State(), fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, cell.Row, cell.Column)
	}

	that.board[cell.Row][cell.Column] = connID

	that.outcome = that.board.Result()
	if !that.outcome.IsTerminal() {
		that.turn, _ = that.Opponent(connID)
	}

	return that.State(), nil
}

// Abort - ends a running match. Returns false if the match had already ended.
func (that *Match) Abort() bool {
	if that.outcome.IsTerminal() {
		return false
	}

	that.outcome = Aborted()

	return true
}

func (that *Match) State() MatchState {
	circle, _ := that.Opponent(that.cross)

	return MatchState{
		ID:      that.id,
		Players: that.players,
		Board:   that.board,
		Turn:    that.turn,
		Status:  that.outcome.Status,
		Winner:  that.outcome.Winner,
		Symbols: map[string]string{
			that.cross: SymbolCross,
			circle:     SymbolCircle,
		},
	}
}
