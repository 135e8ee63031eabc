// Package console runs the line-oriented command language over a ledger:
// each input line is echoed, dispatched and answered with a report or
// "Invalid command".
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Fundraiser/internal/ledger"
	"Fundraiser/pkg/kit"
)

const (
	prompt         = "cmd> "
	invalidCommand = "Invalid command"
)

var (
	errInvalid = errors.New("invalid command")
	errQuit    = errors.New("quit")
)

type Interpreter struct {
	Ledger  *ledger.Ledger
	Out     io.Writer
	Log     *zap.Logger
	Metrics *kit.Metrics
}

// Run interprets commands from r until quit, end of input or ctx is done.
// Rejected commands are reported on Out and never end the run; only a
// failure to read input or write output does.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	log := in.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", uuid.NewString()))

	w := bufio.NewWriter(in.Out)
	s := &session{
		ledger:  in.Ledger,
		w:       w,
		log:     log,
		metrics: in.Metrics,
	}

	lines := newLineReader(r)
	for {
		if err := ctx.Err(); err != nil {
			_ = w.Flush()
			return err
		}

		line, ok := lines.next()
		if !ok {
			break
		}

		err := s.handle(line)
		if ferr := w.Flush(); ferr != nil {
			return fmt.Errorf("write output: %w", ferr)
		}
		if errors.Is(err, errQuit) {
			log.Debug("quit")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := lines.err(); err != nil {
		_ = w.Flush()
		return fmt.Errorf("read input: %w", err)
	}

	// Input ran out without a quit: leave the prompt showing.
	s.print(prompt)
	if s.err != nil {
		return fmt.Errorf("write output: %w", s.err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Debug("end of input")
	return nil
}

type session struct {
	ledger  *ledger.Ledger
	w       io.Writer
	log     *zap.Logger
	metrics *kit.Metrics

	err error
}

func (s *session) handle(raw string) error {
	start := time.Now()
	line := trimLine(raw)

	s.print(prompt + line + "\n")

	c, arg, ok := lookup(line)
	name := c.name
	var err error
	if ok {
		err = c.run(s, arg)
	} else {
		name = unknownCommand
		err = errInvalid
	}

	result := kit.ResultOK
	switch {
	case errors.Is(err, errQuit):
	case errors.Is(err, errInvalid):
		result = kit.ResultInvalid
		s.log.Info("command rejected", zap.String("command", name), zap.String("line", line), zap.Error(err))
		s.print(invalidCommand + "\n\n")
		err = nil
	case err == nil:
		s.log.Debug("command", zap.String("command", name), zap.String("arg", arg))
	}
	s.metrics.Observe(name, result, time.Since(start))

	if s.err != nil {
		return fmt.Errorf("write output: %w", s.err)
	}
	return err
}

func (s *session) print(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

func invalid(cause error) error {
	return fmt.Errorf("%w: %w", errInvalid, cause)
}
