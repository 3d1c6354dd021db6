package entity

// Names of the notifications the server sends to clients.
const (
	EventConnected    = "connected"
	EventWaiting      = "waiting"
	EventMatchStarted = "matchStarted"
	EventStateChanged = "stateChanged"
	EventMatchAborted = "matchAborted"
	EventMoveRejected = "moveRejected"
)

// Reasons attached to a moveRejected event.
const (
	ReasonNotYourTurn   = "not_your_turn"
	ReasonOutOfBounds   = "out_of_bounds"
	ReasonCellOccupied  = "cell_occupied"
	ReasonMatchFinished = "match_finished"
)

type Event struct {
	Name   string
	ConnID string
	Match  *MatchState
	Reason string
}
