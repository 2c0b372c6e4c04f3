package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/score"
	"github.com/vovakirdan/flappy-pebble/internal/sim"
	"github.com/vovakirdan/flappy-pebble/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pebble/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FrameRate is the presentation rate of each session.
	FrameRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		FrameRate:   30,
	}
}

// sharedBest fans new best scores from every session into one persister
// and remembers the highest one, so new sessions start from it.
type sharedBest struct {
	mu        sync.Mutex
	best      uint32
	persister *score.Persister
}

func (b *sharedBest) Submit(v uint32) {
	b.mu.Lock()
	if v > b.best {
		b.best = v
	}
	b.mu.Unlock()
	b.persister.Submit(v)
}

func (b *sharedBest) Best() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best
}

// SSHServer wraps a Wish SSH server. Every session plays its own world;
// all sessions share the best score backend.
type SSHServer struct {
	config  SSHServerConfig
	game    config.Config
	server  *ssh.Server
	backend registry.Backend
	history registry.RunRecorder
	best    *sharedBest
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, game config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pebble-ssh",
	})

	// Open storage
	backend, err := registry.Create(game.Persistence)
	if err != nil {
		logger.Warn("could not open best score backend", "backend", game.Persistence.Backend, "error", err)
		// Continue without storage
		backend = nil
	}

	best := storage.LoadBestOrZero(backend, logger)

	srv := &SSHServer{
		config:  cfg,
		game:    game,
		backend: backend,
		logger:  logger,
		best: &sharedBest{
			best:      best,
			persister: score.NewPersister(storage.SaverOrDiscard(backend), best, logger),
		},
	}
	if rec, ok := backend.(registry.RunRecorder); ok {
		srv.history = rec
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pebble", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStorage()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a world and a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sessionLog := s.logger.With("user", sshSession.User())
	world, err := sim.NewWorld(s.game, sim.Options{
		Best:   s.best.Best(),
		Sink:   s.best,
		Logger: sessionLog,
		Seed:   time.Now().UnixNano(),
	})
	if err != nil {
		sessionLog.Error("cannot create world", "error", err)
		return nil, nil
	}

	model := NewModel(world, Options{
		Runtime: core.RuntimeConfig{
			ScreenW:   pty.Window.Width,
			ScreenH:   pty.Window.Height,
			FrameRate: s.config.FrameRate,
		},
		History: s.history,
		Logger:  sessionLog,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "backend", s.game.Persistence.Backend)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server, flushes the last best score and
// closes storage.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStorage()
	return err
}

func (s *SSHServer) closeStorage() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.best.persister.Close(ctx); err != nil {
		s.logger.Warn("best score flush did not finish", "error", err)
	}
	if s.backend != nil {
		s.backend.Close() //nolint:errcheck
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
