package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/pkg"
)

const (
	inboundQueueSize = 256
	shutdownTimeout  = 5 * time.Second
)

type gameManager interface {
	HandleConnect(ctx context.Context, connID string) error
	HandleMove(ctx context.Context, connID, sessionID string, cell entity.Cell) error
	HandleDisconnect(ctx context.Context, connID, sessionID string)
}

type inboundKind int

const (
	inboundOpen inboundKind = iota
	inboundMove
	inboundClose
)

type inbound struct {
	kind   inboundKind
	client *client
	cell   entity.Cell
}

// Server - accepts sockets and feeds their events, one at a time, to the game manager.
type Server struct {
	logger      *slog.Logger
	hub         *Hub
	gameManager gameManager
	sendBuffer  int

	upgrader websocket.Upgrader
	inbound  chan inbound
	stopped  chan struct{}
}

func New(logger *slog.Logger, hub *Hub, gameManager gameManager, sendBuffer int) *Server {
	return &Server{
		logger:      logger.With("component", "websocket"),
		hub:         hub,
		gameManager: gameManager,
		sendBuffer:  sendBuffer,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		inbound: make(chan inbound, inboundQueueSize),
		stopped: make(chan struct{}),
	}
}

// Start - starts WebSocket server and its event loop. Returns when ctx is done or the listener fails.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return that.serve(ctx, listener)
}

func (that *Server) serve(ctx context.Context, listener net.Listener) error {
	go that.Run(ctx)

	srv := &http.Server{
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}

		// Shutdown does not touch hijacked connections.
		that.hub.dropAll()
	}()

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", that.serveWS).Methods(http.MethodGet)

	return router
}

// Run - the event loop. Every connect, move and disconnect is handled here to completion before the next one.
func (that *Server) Run(ctx context.Context) {
	defer close(that.stopped)

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-that.inbound:
			that.dispatch(ctx, event)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, event inbound) {
	connID := event.client.id
	log := that.logger.With("method", "dispatch", "connID", connID)

	switch event.kind {
	case inboundOpen:
		if err := that.gameManager.HandleConnect(ctx, connID); err != nil {
			log.Error("failed to handle connect", "error", err)
		}
	case inboundMove:
		if err := that.gameManager.HandleMove(ctx, connID, that.hub.SessionOf(connID), event.cell); err != nil {
			log.Error("failed to handle move", "error", err)
		}
	case inboundClose:
		that.gameManager.HandleDisconnect(ctx, connID, that.hub.SessionOf(connID))
		that.hub.unregister(connID)
		log.Info("connection closed")
	}
}

func (that *Server) enqueue(event inbound) {
	select {
	case that.inbound <- event:
	case <-that.stopped:
	}
}

// serveWS - upgrades the request and runs the connection until it closes.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(that.logger, pkg.GenerateConnectionID(), conn, that.sendBuffer)
	that.hub.register(c)
	that.hub.SendTo(c.id, entity.Event{Name: entity.EventConnected, ConnID: c.id})

	log.Info("WebSocket connection established", "connID", c.id)

	go c.writePump()

	that.enqueue(inbound{kind: inboundOpen, client: c})
	c.readPump(that)
}
