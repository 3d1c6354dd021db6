package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger

	dropOnce sync.Once
}

func newClient(logger *slog.Logger, id string, conn *websocket.Conn, sendBuffer int) *client {
	return &client{
		id:     id,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		logger: logger.With("connID", id),
	}
}

// drop - closes the socket so that readPump ends and the disconnect is reported.
func (that *client) drop() {
	that.dropOnce.Do(func() {
		_ = that.conn.Close()
	})
}

// readPump - forwards moves to the server loop until the socket fails.
func (that *client) readPump(server *Server) {
	log := that.logger.With("method", "readPump")

	defer server.enqueue(inbound{kind: inboundClose, client: that})

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("unexpected close", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		if message.Action != actionMakeMove {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		var payload MovePayload
		if err = json.Unmarshal(message.Payload, &payload); err != nil || payload.Row == nil || payload.Column == nil {
			log.Error("malformed move payload", "payload", string(message.Payload))
			continue
		}

		server.enqueue(inbound{
			kind:   inboundMove,
			client: that,
			cell:   entity.Cell{Row: *payload.Row, Column: *payload.Column},
		})
	}
}

// writePump - the only goroutine writing to the socket.
func (that *client) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.drop()
	}()

	for {
		select {
		case data, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
