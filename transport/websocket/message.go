package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const actionMakeMove = "makeMove"

// Message - envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Row    *int `json:"row"`
	Column *int `json:"column"`
}

type ResponsePayload struct {
	ConnID string             `json:"connId,omitempty"`
	Match  *entity.MatchState `json:"match,omitempty"`
	Error  string             `json:"error,omitempty"`
}

func encodeEvent(event entity.Event) ([]byte, error) {
	payload, err := json.Marshal(ResponsePayload{
		ConnID: event.ConnID,
		Match:  event.Match,
		Error:  event.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: event.Name, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
