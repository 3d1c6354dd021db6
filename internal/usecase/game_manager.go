package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

const (
	snapshotTimeout   = 2 * time.Second
	snapshotQueueSize = 256
)

// notifier - delivers events to one connection or to every connection of a session.
type notifier interface {
	SendTo(connID string, event entity.Event)
	Broadcast(sessionID string, event entity.Event)
	Join(connID, sessionID string)
	Release(sessionID string)
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, state *entity.MatchState, ttl time.Duration) error
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - turns transport events into matchmaker calls and notifications.
type GameManager struct {
	logger     *slog.Logger
	matchmaker *Matchmaker
	notifier   notifier
	matchRepo  matchRepo
	resultTTL  time.Duration

	snapshots chan snapshotJob
}

// snapshotJob - one pending write. A job with remove set deletes the snapshot of sessionID.
type snapshotJob struct {
	sessionID string
	state     entity.MatchState
	ttl       time.Duration
	remove    bool
}

func NewGameManager(logger *slog.Logger, matchmaker *Matchmaker, notifier notifier, matchRepo matchRepo, resultTTL time.Duration) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		matchmaker: matchmaker,
		notifier:   notifier,
		matchRepo:  matchRepo,
		resultTTL:  resultTTL,
		snapshots:  make(chan snapshotJob, snapshotQueueSize),
	}
}

// RunSnapshotWriter - writes queued snapshots in the order they were queued until ctx is done.
func (that *GameManager) RunSnapshotWriter(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-that.snapshots:
			that.writeSnapshot(ctx, job)
		}
	}
}

func (that *GameManager) HandleConnect(ctx context.Context, connID string) error {
	log := that.logger.With("method", "HandleConnect", "connID", connID)

	assignment, err := that.matchmaker.Connect(connID)
	if err != nil {
		return err
	}

	if assignment.State == AssignmentWaiting {
		that.notifier.SendTo(connID, entity.Event{Name: entity.EventWaiting, ConnID: connID})
		log.Info("connection is waiting for an opponent")

		return nil
	}

	state := assignment.Match
	for _, player := range state.Players {
		that.notifier.Join(player, assignment.SessionID)
	}

	that.notifier.Broadcast(assignment.SessionID, entity.Event{Name: entity.EventMatchStarted, Match: &state})
	that.saveSnapshot(state)

	log.Info("match started", "sessionID", assignment.SessionID, "turn", state.Turn)

	return nil
}

func (that *GameManager) HandleMove(ctx context.Context, connID, sessionID string, cell entity.Cell) error {
	log := that.logger.With("method", "HandleMove", "connID", connID, "sessionID", sessionID)

	state, err := that.matchmaker.MakeMove(sessionID, connID, cell)
	if errors.Is(err, apperror.ErrUnknownSession) {
		log.Debug("move for unknown session ignored", "error", err)

		return nil
	}

	if err != nil {
		log.Info("move rejected", "error", err)
		that.notifier.SendTo(connID, entity.Event{
			Name:   entity.EventMoveRejected,
			ConnID: connID,
			Match:  &state,
			Reason: rejectionReason(err),
		})

		return nil
	}

	that.notifier.Broadcast(sessionID, entity.Event{Name: entity.EventStateChanged, Match: &state})
	that.saveSnapshot(state)

	if state.IsTerminal() {
		that.notifier.Release(sessionID)
		log.Info("match finished", "status", state.Status.String(), "winner", state.Winner)
	}

	return nil
}

func (that *GameManager) HandleDisconnect(ctx context.Context, connID, sessionID string) {
	log := that.logger.With("method", "HandleDisconnect", "connID", connID, "sessionID", sessionID)

	departure, err := that.matchmaker.Disconnect(connID, sessionID)
	if err != nil {
		log.Debug("disconnect without live match", "error", err)

		return
	}

	if !departure.Aborted() {
		log.Info("connection left the pool")

		return
	}

	that.notifier.SendTo(departure.Opponent, entity.Event{
		Name:   entity.EventMatchAborted,
		ConnID: departure.Opponent,
		Match:  &departure.Match,
	})
	that.notifier.Release(departure.SessionID)
	that.deleteSnapshot(departure.SessionID)

	log.Info("match aborted", "opponent", departure.Opponent)
}

func (that *GameManager) saveSnapshot(state entity.MatchState) {
	var ttl time.Duration
	if state.IsTerminal() {
		ttl = that.resultTTL
	}

	that.queueSnapshot(snapshotJob{sessionID: state.ID, state: state, ttl: ttl})
}

func (that *GameManager) deleteSnapshot(sessionID string) {
	that.queueSnapshot(snapshotJob{sessionID: sessionID, remove: true})
}

// queueSnapshot - never blocks. When the writer falls behind the snapshot is dropped.
func (that *GameManager) queueSnapshot(job snapshotJob) {
	select {
	case that.snapshots <- job:
	default:
		that.logger.Warn("snapshot queue is full, snapshot dropped", "sessionID", job.sessionID, "remove", job.remove)
	}
}

func (that *GameManager) writeSnapshot(ctx context.Context, job snapshotJob) {
	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	if job.remove {
		err := that.matchRepo.DeleteByID(ctx, job.sessionID)
		if err != nil && !errors.Is(err, apperror.ErrNotFound) {
			that.logger.Error("failed to delete match snapshot", "sessionID", job.sessionID, "error", err)
		}

		return
	}

	if err := that.matchRepo.CreateOrUpdate(ctx, &job.state, job.ttl); err != nil {
		that.logger.Error("failed to save match snapshot", "sessionID", job.sessionID, "error", err)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNotYourTurn):
		return entity.ReasonNotYourTurn
	case errors.Is(err, apperror.ErrOutOfBounds):
		return entity.ReasonOutOfBounds
	case errors.Is(err, apperror.ErrCellOccupied):
		return entity.ReasonCellOccupied
	default:
		return entity.ReasonMatchFinished
	}
}
