package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/cairn/internal/logging"
	"github.com/renato0307/cairn/internal/random"
	"github.com/renato0307/cairn/internal/ui"
)

// teaHandler creates an independent widget for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	rng, err := random.NewSeededRand()
	if err != nil {
		logging.Logger.Error("Failed to seed confetti for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	// Native sounds would play on the host, so only the client's bell rings
	sound := ui.Sound{Bell: s.opts.Sound}

	model := ui.NewModel(
		s.opts.SessionConfig,
		s.opts.DefaultMode,
		s.opts.Animations,
		false,
		s.opts.Keys,
		sound,
		rng,
	)

	startTime := time.Now()
	go func() {
		<-sess.Context().Done()
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(startTime).String())
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
