package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/cairn/internal/config"
	"github.com/renato0307/cairn/internal/domain"
	"github.com/renato0307/cairn/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Options configures the widgets served to SSH clients
type Options struct {
	Animations         bool
	AuthorizedKeysPath string // Defaults to ~/.ssh/authorized_keys
	DefaultMode        string
	HostKeyPath        string // Defaults to $CAIRN_HOME/ssh_host_ed25519
	Keys               config.KeyBindingsConfig
	SessionConfig      domain.SessionConfig
	Sound              bool
}

// Server serves one independent cairn widget per SSH session
type Server struct {
	address    string
	opts       Options
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(host, port string, opts Options) (*Server, error) {
	if len(opts.SessionConfig.Modes()) == 0 {
		opts.SessionConfig = domain.DefaultSessionConfig
	}
	if opts.HostKeyPath == "" {
		opts.HostKeyPath = config.GetHostKeyPath()
	}
	if opts.AuthorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		opts.AuthorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create host key directory: %w", err)
	}

	s := &Server{
		address: net.JoinHostPort(host, port),
		opts:    opts,
	}

	// Middleware executes last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Start serves until ctx is cancelled or the listener fails
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	logging.Logger.Info("Starting SSH server", "address", s.address)
	fmt.Printf("SSH server listening on %s\n", s.address)

	g.Go(func() error {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
