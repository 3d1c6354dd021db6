package pkg

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	sessionEntropy   = ulid.Monotonic(rand.Reader, 0)
	sessionEntropyMu sync.Mutex
)

// GenerateSessionID - generates a lexically sortable match session ID.
func GenerateSessionID() string {
	sessionEntropyMu.Lock()
	defer sessionEntropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), sessionEntropy).String()
}

// GenerateConnectionID - generates an opaque ID for a new socket connection.
func GenerateConnectionID() string {
	return uuid.NewString()
}
