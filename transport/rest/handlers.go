package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	GetMatch(w http.ResponseWriter, r *http.Request)
}

type matchReader interface {
	GetByID(ctx context.Context, id string) (*entity.MatchState, error)
}

type handlers struct {
	logger      *slog.Logger
	matchReader matchReader
}

func NewHandlers(logger *slog.Logger, matchReader matchReader) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		matchReader: matchReader,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// GetMatch - returns the last stored snapshot of a match.
func (that *handlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetMatch")

	id := mux.Vars(r)["id"]

	state, err := that.matchReader.GetByID(r.Context(), id)
	if errors.Is(err, apperror.ErrNotFound) {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get match", "sessionID", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(state); err != nil {
		log.Error("failed to encode match", "sessionID", id, "error", err)
	}
}
