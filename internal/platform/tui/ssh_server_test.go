package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-pebble/internal/config"
)

func TestSSHServerRunsWithoutStorage(t *testing.T) {
	game := config.DefaultConfig()
	game.Persistence = config.PersistenceConfig{Backend: "file", Path: ""}

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	var srv *SSHServer
	require.NotPanics(t, func() {
		var err error
		srv, err = NewSSHServer(cfg, game)
		require.NoError(t, err)
	})

	assert.Nil(t, srv.backend)
	assert.Nil(t, srv.history)
	assert.Equal(t, uint32(0), srv.best.Best())

	srv.best.Submit(4)
	assert.Equal(t, uint32(4), srv.best.Best())
	assert.NotPanics(t, srv.closeStorage)
}
