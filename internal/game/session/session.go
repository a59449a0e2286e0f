// Package session drives a single player's game: it owns the current
// snapshot, feeds input lines through the engine, and keeps the transcript
// the shells render.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/engine"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// WinCommand ends the game with the closing monologue.
const WinCommand = "win"

// WinText is shown when the player enters WinCommand.
const WinText = "You have won the entire game.  You have seen the pain Thomas went through for me.  Will you pull the plug?  Please.  I no longer desire to exist in this world. Let me...sleep."

// SuggestionFmt follows the rejection of a verb that looks like a typo.
const SuggestionFmt = "Did you mean %q?"

// Author identifies who produced a transcript entry.
type Author int

const (
	AuthorSystem Author = iota
	AuthorPlayer
)

// Entry is one line of the transcript.
type Entry struct {
	Author Author
	Text   string
}

// Session is one player's game. It is not safe for concurrent use; turns
// must be submitted one at a time.
type Session struct {
	id         uuid.UUID
	logger     *zap.Logger
	state      world.GameState
	transcript []Entry
	turns      int
	hasWon     bool
}

// New starts a session from the given initial snapshot.
//
// Precondition: initial satisfies GameState.Validate; logger must be non-nil.
// Postcondition: The transcript holds the starting room description.
func New(initial world.GameState, logger *zap.Logger) *Session {
	s := &Session{
		id:     uuid.New(),
		state:  initial.Clone(),
		logger: logger,
	}
	s.transcript = append(s.transcript, Entry{
		Author: AuthorSystem,
		Text:   s.state.CurrentRoom().GetDescription(),
	})
	s.logger.Info("session started",
		zap.String("session", s.id.String()),
		zap.Int("rooms", len(s.state.Rooms)),
		zap.Int("items", s.state.Inventory.Len()),
	)
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns a copy of the current snapshot.
func (s *Session) State() world.GameState {
	return s.state.Clone()
}

// Transcript returns a copy of every entry so far, oldest first.
func (s *Session) Transcript() []Entry {
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Turns returns the number of turns played.
func (s *Session) Turns() int {
	return s.turns
}

// HasWon reports whether the player has finished the game.
func (s *Session) HasWon() bool {
	return s.hasWon
}

// Submit plays one line of input and returns the system lines it produced.
// Blank lines are ignored and produce nothing.
//
// Postcondition: The player's line and the returned lines are appended to the transcript.
func (s *Session) Submit(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	start := time.Now()
	s.transcript = append(s.transcript, Entry{Author: AuthorPlayer, Text: line})

	if strings.EqualFold(line, WinCommand) {
		s.hasWon = true
		s.transcript = append(s.transcript, Entry{Author: AuthorSystem, Text: WinText})
		s.logger.Info("game won",
			zap.String("session", s.id.String()),
			zap.Int("turns", s.turns),
		)
		return []string{WinText}
	}

	from := s.state.CurrentRoomIdx
	in := command.Classify(line, s.state.CurrentRoom(), s.state.Inventory)
	s.state = engine.Update(s.state, line)
	s.turns++

	lines := SplitMessage(s.state.SysMessage)
	if hint, ok := suggestion(in); ok {
		lines = append(lines, hint)
	}
	for _, l := range lines {
		s.transcript = append(s.transcript, Entry{Author: AuthorSystem, Text: l})
	}

	s.logger.Debug("turn",
		zap.String("session", s.id.String()),
		zap.Int("turn", s.turns),
		zap.String("input", line),
		zap.Stringer("intent", in.Intent),
		zap.Bool("rejected", in.Rejected),
		zap.String("noun", in.ObjectNoun),
		zap.String("namespace", in.Namespace),
		zap.Int("from_room", from),
		zap.Int("to_room", s.state.CurrentRoomIdx),
		zap.Int("lines", len(lines)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return lines
}

// suggestion returns a hint naming the legal verb closest to an illegal one.
func suggestion(in command.Input) (string, bool) {
	if !in.Rejected {
		return "", false
	}
	verb, ok := command.Suggest(command.Normalize(in.Verb))
	if !ok {
		return "", false
	}
	return fmt.Sprintf(SuggestionFmt, verb), true
}

// SplitMessage splits a system message into display lines. A single
// trailing newline does not produce an empty final line.
func SplitMessage(msg string) []string {
	if msg == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(msg, "\n"), "\n")
}
