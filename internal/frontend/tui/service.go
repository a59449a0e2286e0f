package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cory-johannsen/adventure/internal/game/session"
)

// Service runs the full-screen shell as a server.Service.
type Service struct {
	program *tea.Program
}

// NewService builds the program for sess on the given terminal streams.
//
// Precondition: sess, in, and out must be non-nil.
func NewService(sess *session.Session, in io.Reader, out io.Writer) *Service {
	p := tea.NewProgram(New(sess),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	return &Service{program: p}
}

// Start runs the program until the player quits.
func (s *Service) Start() error {
	if _, err := s.program.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}

// Stop asks the program to exit.
func (s *Service) Stop() {
	s.program.Quit()
}
