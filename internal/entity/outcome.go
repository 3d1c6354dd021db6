package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown match status")

type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
	StatusAborted
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in-progress"
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(that))
	}
}

func (that Status) MarshalText() ([]byte, error) {
	switch that {
	case StatusInProgress, StatusWon, StatusDrawn, StatusAborted:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(that))
	}
}

func (that *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in-progress":
		*that = StatusInProgress
	case "won":
		*that = StatusWon
	case "drawn":
		*that = StatusDrawn
	case "aborted":
		*that = StatusAborted
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, text)
	}

	return nil
}

// Outcome - status of a match. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner string
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Won(winner string) Outcome {
	return Outcome{Status: StatusWon, Winner: winner}
}

func Drawn() Outcome {
	return Outcome{Status: StatusDrawn}
}

func Aborted() Outcome {
	return Outcome{Status: StatusAborted}
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}
