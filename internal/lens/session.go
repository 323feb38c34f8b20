package lens

import (
	"context"
	"errors"
	"fmt"

	"flightlens/internal/flight"
)

type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrEmptyQuery        = errors.New("flight number is required")
)

// Hint is shown under any error once a query has been attempted.
const Hint = "The AI may not be able to generate plausible data for all flight numbers, or there might be an issue with the AI response."

// View is an immutable snapshot of a Session for renderers.
type View struct {
	Phase     Phase
	Query     string
	Report    *flight.Report
	Text      string
	Err       string
	Attempted bool
}

// ShowHint reports whether the hint line belongs under the error banner.
func (v View) ShowHint() bool {
	return v.Err != "" && v.Attempted
}

// Session owns the UI state of one user: idle -> loading -> success | error.
// It is not safe for concurrent use; each page render or CLI run has its own.
type Session struct {
	phase     Phase
	query     string
	report    *flight.Report
	text      string
	err       error
	attempted bool
}

func NewSession() *Session {
	return &Session{}
}

// Input replaces the query with its normalized form and clears any result.
func (s *Session) Input(raw string) error {
	if s.phase == Loading {
		return fmt.Errorf("%w: input while %s", ErrInvalidTransition, s.phase)
	}
	*s = Session{query: flight.NormalizeFlightNumber(raw)}
	return nil
}

func (s *Session) Begin() error {
	if s.phase == Loading {
		return fmt.Errorf("%w: begin while %s", ErrInvalidTransition, s.phase)
	}
	if s.query == "" {
		return ErrEmptyQuery
	}
	s.phase = Loading
	s.report = nil
	s.text = ""
	s.err = nil
	s.attempted = true
	return nil
}

func (s *Session) Succeed(report *flight.Report) error {
	if err := s.expectLoading("succeed"); err != nil {
		return err
	}
	s.phase = Success
	s.report = report
	return nil
}

func (s *Session) SucceedText(text string) error {
	if err := s.expectLoading("succeed"); err != nil {
		return err
	}
	s.phase = Success
	s.text = text
	return nil
}

// Fail moves to Error. Result state is always cleared.
func (s *Session) Fail(err error) error {
	if terr := s.expectLoading("fail"); terr != nil {
		return terr
	}
	if err == nil {
		err = &APIError{Message: noDataMessage}
	}
	s.phase = Error
	s.report = nil
	s.text = ""
	s.err = err
	return nil
}

func (s *Session) expectLoading(op string) error {
	if s.phase != Loading {
		return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, s.phase)
	}
	return nil
}

// Fetcher is the part of Client a Session drives.
type Fetcher interface {
	Lookup(ctx context.Context, flightNumber string) (*flight.Report, error)
	LookupText(ctx context.Context, flightNumber string) (string, error)
}

// Run performs one lookup. A lookup failure ends in the Error phase and is not
// returned; only illegal transitions are.
func (s *Session) Run(ctx context.Context, f Fetcher) error {
	if err := s.Begin(); err != nil {
		return err
	}

	report, err := f.Lookup(ctx, s.query)
	if err != nil {
		return s.Fail(err)
	}
	return s.Succeed(report)
}

// RunText is Run for the free-text variant.
func (s *Session) RunText(ctx context.Context, f Fetcher) error {
	if err := s.Begin(); err != nil {
		return err
	}

	text, err := f.LookupText(ctx, s.query)
	if err != nil {
		return s.Fail(err)
	}
	return s.SucceedText(text)
}

func (s *Session) Snapshot() View {
	v := View{
		Phase:     s.phase,
		Query:     s.query,
		Text:      s.text,
		Attempted: s.attempted,
	}
	if s.report != nil {
		report := *s.report
		v.Report = &report
	}
	if s.err != nil {
		v.Err = flight.UserMessage(s.err)
	}
	return v
}
