package usecase

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

type AssignmentState int

const (
	AssignmentWaiting AssignmentState = iota
	AssignmentMatchStarted
)

// Assignment - where a freshly connected client ended up.
type Assignment struct {
	State     AssignmentState
	SessionID string
	Match     entity.MatchState
}

// Departure - result of a disconnect. Opponent is set only when a running match was aborted.
type Departure struct {
	SessionID string
	Opponent  string
	Match     entity.MatchState
}

func (that Departure) Aborted() bool {
	return that.Opponent != ""
}

// Matchmaker - owns the waiting pool and the registry of live matches.
type Matchmaker struct {
	mu sync.Mutex

	pool    []string
	matches map[string]*entity.Match

	newSessionID func() string
	pickStarter  func() int
}

type MatchmakerOption func(*Matchmaker)

// WithStarterPicker - overrides the coin flip deciding who moves first. It must return 0 or 1.
func WithStarterPicker(pick func() int) MatchmakerOption {
	return func(that *Matchmaker) {
		that.pickStarter = pick
	}
}

func NewMatchmaker(newSessionID func() string, opts ...MatchmakerOption) *Matchmaker {
	matchmaker := &Matchmaker{
		matches:      make(map[string]*entity.Match),
		newSessionID: newSessionID,
		pickStarter: func() int {
			return rand.Intn(2) //nolint: gosec // it's ok
		},
	}

	for _, opt := range opts {
		opt(matchmaker)
	}

	return matchmaker
}

// Connect - pairs connID with the oldest pooled connection, or pools it when nobody is waiting.
func (that *Matchmaker) Connect(connID string) (Assignment, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.isKnown(connID) {
		return Assignment{}, fmt.Errorf("%w: %s", apperror.ErrAlreadyConnected, connID)
	}

	if len(that.pool) == 0 {
		that.pool = append(that.pool, connID)

		return Assignment{State: AssignmentWaiting}, nil
	}

	waiting := that.pool[0]
	that.pool = that.pool[1:]

	players := [2]string{waiting, connID}
	sessionID := that.newSessionID()

	match, err := entity.NewMatch(sessionID, players, players[that.pickStarter()])
	if err != nil {
		panic(fmt.Errorf("matchmaker paired invalid participants: %w", err))
	}

	that.matches[sessionID] = match

	return Assignment{
		State:     AssignmentMatchStarted,
		SessionID: sessionID,
		Match:     match.State(),
	}, nil
}

// MakeMove - applies a move to the match behind sessionID. A finished match is dropped from the registry.
func (that *Matchmaker) MakeMove(sessionID, connID string, cell entity.Cell) (entity.MatchState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[sessionID]
	if !ok || !match.HasPlayer(connID) {
		return entity.MatchState{}, fmt.Errorf("%w: %s", apperror.ErrUnknownSession, sessionID)
	}

	state, err := match.ApplyMove(connID, cell)
	if err != nil {
		return state, err
	}

	if state.IsTerminal() {
		delete(that.matches, sessionID)
	}

	return state, nil
}

// Disconnect - removes connID from the pool, or aborts its running match.
func (that *Matchmaker) Disconnect(connID, sessionID string) (Departure, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if sessionID == "" {
		if !that.removeFromPool(connID) {
			return Departure{}, fmt.Errorf("%w: connection %s is not pooled", apperror.ErrUnknownSession, connID)
		}

		return Departure{}, nil
	}

	match, ok := that.matches[sessionID]
	if !ok || !match.HasPlayer(connID) {
		return Departure{}, fmt.Errorf("%w: %s", apperror.ErrUnknownSession, sessionID)
	}

	delete(that.matches, sessionID)
	match.Abort()

	opponent, _ := match.Opponent(connID)

	return Departure{
		SessionID: sessionID,
		Opponent:  opponent,
		Match:     match.State(),
	}, nil
}

func (that *Matchmaker) Match(sessionID string) (entity.MatchState, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[sessionID]
	if !ok {
		return entity.MatchState{}, false
	}

	return match.State(), true
}

func (that *Matchmaker) Waiting() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.pool)
}

func (that *Matchmaker) Active() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.matches)
}

func (that *Matchmaker) isKnown(connID string) bool {
	for _, pooled := range that.pool {
		if pooled == connID {
			return true
		}
	}

	for _, match := range that.matches {
		if match.HasPlayer(connID) {
			return true
		}
	}

	return false
}

func (that *Matchmaker) removeFromPool(connID string) bool {
	for i, pooled := range that.pool {
		if pooled == connID {
			that.pool = append(that.pool[:i], that.pool[i+1:]...)
			return true
		}
	}

	return false
}
