package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicio/clinicio/internal/testutil"
)

func TestServerServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "up")
	})
	server := NewServer(handler, DefaultServerConfig(), testutil.NopLogger())

	done := make(chan error, 1)
	go func() { done <- server.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "up", string(body))
	assert.Equal(t, ln.Addr().String(), server.Addr())

	require.NoError(t, server.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestServerRunStopsOnCancel(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	server := NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, server.Run(ctx))
}

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "127.0.0.1:9000", NewServer(nil, ServerConfig{Host: "127.0.0.1", Port: 9000}, testutil.NopLogger()).Addr())
}
