package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sectiontrack/internal/config"
	"github.com/yigit/sectiontrack/internal/db"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.ReadTimeout = "3s"
	cfg.Server.WriteTimeout = "bogus"
	cfg.Server.ShutdownTimeout = "1s"
	gin.SetMode(gin.TestMode)
	return &Server{config: cfg, router: gin.New(), logger: zerolog.Nop()}
}

func TestNewHTTPServerUsesConfiguredTimeouts(t *testing.T) {
	s := newTestServer(t)

	hs := s.newHTTPServer()
	assert.Equal(t, ":0", hs.Addr)
	assert.Equal(t, 3*time.Second, hs.ReadTimeout)
	assert.Equal(t, 10*time.Second, hs.WriteTimeout, "invalid duration falls back")
}

func TestShutdownWithoutResources(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.Shutdown(context.Background()))
}

func TestRunReleasesResourcesWhenListenFails(t *testing.T) {
	taken, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer taken.Close()

	s := newTestServer(t)
	s.config.Server.Port = strconv.Itoa(taken.Addr().(*net.TCPAddr).Port)
	s.redis = &db.Redis{Client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})}

	err = s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting server")

	assert.True(t, errors.Is(s.http.ListenAndServe(), http.ErrServerClosed), "http server shut down")
	assert.ErrorIs(t, s.redis.Client.Ping(context.Background()).Err(), redis.ErrClosed)
}
