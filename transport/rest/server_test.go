package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer - log sink that is safe to read while the server goroutines write to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (that *syncBuffer) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.Write(p)
}

func (that *syncBuffer) String() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.String()
}

func TestStart(t *testing.T) {
	t.Run("Returns without error once ctx is done", func(t *testing.T) {
		// Given: a running server
		ctx, cancel := context.WithCancel(context.Background())
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

		served := make(chan error, 1)
		go func() { served <- Start(ctx, logger, "0", NewHandlers(logger, stubReader{})) }()

		// When: ctx is cancelled
		cancel()

		// Then: Start returns nil
		select {
		case err := <-served:
			require.NoError(t, err)
		case <-time.After(2 * shutdownTimeout):
			t.Fatal("server did not stop")
		}
	})
}

func TestShutdownOnDone(t *testing.T) {
	t.Run("Failed shutdown is logged", func(t *testing.T) {
		// Given: a server with a request that never finishes
		logs := &syncBuffer{}
		logger := slog.New(slog.NewJSONHandler(logs, nil))

		entered := make(chan struct{})
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		srv := &http.Server{
			Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				close(entered)
				<-release
			}),
			ReadHeaderTimeout: time.Second,
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		go func() { _ = srv.Serve(listener) }()

		go func() {
			resp, reqErr := http.Get("http://" + listener.Addr().String())
			if reqErr == nil {
				_ = resp.Body.Close()
			}
		}()

		select {
		case <-entered:
		case <-time.After(2 * time.Second):
			t.Fatal("request did not reach the handler")
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: shutdown gets less time than the request needs
		shutdownOnDone(ctx, logger, srv, 50*time.Millisecond)

		// Then: the error is logged
		assert.Contains(t, logs.String(), "failed to shut down server")
	})
}
