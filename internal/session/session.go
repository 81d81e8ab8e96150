// Package session runs the interactive read-parse-execute-print loop.
package session

import (
	"bufio"
	"errors"
	"io"

	"github.com/saadjs/dietman/internal/command"
	"github.com/saadjs/dietman/internal/model"
	"github.com/saadjs/dietman/internal/parser"
	"github.com/saadjs/dietman/internal/storage"
	"github.com/saadjs/dietman/internal/ui"
	"github.com/saadjs/dietman/pkg/logger"
)

// Session owns the state for one run. One command is fully parsed, executed,
// persisted and rendered before the next line is read.
type Session struct {
	in    io.Reader
	out   io.Writer
	store *storage.Store
	log   *logger.Logger
	state *model.State
}

func New(in io.Reader, out io.Writer, store *storage.Store, log *logger.Logger) *Session {
	return &Session{
		in:    in,
		out:   out,
		store: store,
		log:   log,
		state: model.NewState(),
	}
}

// Run loads the stored state and processes input lines until an exit command
// or end of input. Persistence failures are reported and the in-memory state
// stays authoritative for the rest of the session.
func (s *Session) Run() error {
	if err := s.store.Load(s.state); err != nil {
		s.log.Errorf("load state: %v", err)
		ui.PrintResult(s.out, ui.FileErrorMessage)
	}
	ui.Banner(s.out)
	s.log.Infof("session started, data dir %s", s.store.Dir())

	scanner := bufio.NewScanner(s.in)
	for {
		ui.Prompt(s.out)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		cmd, err := command.New(line)
		if err != nil {
			if errors.Is(err, parser.ErrInvalidFormat) {
				ui.PrintResult(s.out, ui.InvalidFormatMessage)
			} else {
				ui.PrintResult(s.out, ui.InvalidCommandMessage)
			}
			continue
		}

		cmd.Execute(s.state)
		// The result is shown only after the mutation has been written out,
		// or its write failure reported.
		if cmd.NeedsSave() {
			if err := s.store.Save(s.state); err != nil {
				s.log.Errorf("save state: %v", err)
				ui.PrintResult(s.out, ui.FileErrorMessage)
			}
		}
		ui.PrintResult(s.out, cmd.Result())

		if cmd.IsExit() {
			s.log.Infof("session ended by exit command")
			return nil
		}
	}
	return scanner.Err()
}
