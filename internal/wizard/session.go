// Package wizard runs the commit interview: a fixed sequence of questions
// whose answers fill a core.Record, recorded as a chat transcript.
package wizard

import (
	"errors"
	"strings"

	"commitchat/internal/core"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrSessionDone = errors.New("commit already generated, reset to start over")

// Session is a single interview. It is not safe for concurrent use; callers
// submit one answer at a time.
type Session struct {
	id       string
	step     Step
	record   core.Record
	messages []Message
	logger   zerolog.Logger
}

type Option func(*Session)

// WithLogger replaces the global zerolog logger for this session.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New starts a session and emits the first question.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session", s.id).Logger()
	s.ask()
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Step() Step { return s.step }

func (s *Session) Done() bool { return s.step >= StepDone }

func (s *Session) Record() core.Record { return s.record }

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Result returns the formatted commit once the interview is finished.
func (s *Session) Result() (string, bool) {
	if !s.Done() {
		return "", false
	}
	return core.Format(s.record), true
}

// SubmitText handles a typed answer. Blank input is ignored; the answer is
// trimmed before it is processed.
func (s *Session) SubmitText(input string) error {
	answer := strings.TrimSpace(input)
	if answer == "" {
		return nil
	}
	return s.submit(input, answer)
}

// Select handles a quick-reply button; value is the button's Value.
func (s *Session) Select(value string) error {
	return s.submit(value, value)
}

func (s *Session) submit(content, answer string) error {
	if s.Done() {
		s.logger.Debug().Str("answer", answer).Msg("Ignoring answer after commit was generated")
		return ErrSessionDone
	}
	s.push(Message{Role: RoleUser, Content: content})
	return s.Accept(answer)
}

// Accept applies answer to the current step and moves to the next one. An
// answer rejected by the step's validation leaves the step unchanged and
// appends an error message to the transcript.
func (s *Session) Accept(answer string) error {
	if s.Done() {
		return ErrSessionDone
	}

	st := states[s.step]
	if err := st.apply(&s.record, answer); err != nil {
		s.logger.Debug().Err(err).Stringer("step", s.step).Msg("Answer rejected")
		s.push(Message{Role: RoleAssistant, Content: msgInvalidIssue})
		return err
	}

	s.logger.Debug().Stringer("step", s.step).Str("answer", answer).Msg("Answer accepted")
	s.step++
	s.ask()
	return nil
}

// Reset discards the transcript and the collected fields and asks the first
// question again.
func (s *Session) Reset() {
	s.messages = nil
	s.record = core.Record{}
	s.step = StepType
	s.logger.Debug().Msg("Session reset")
	s.ask()
}

func (s *Session) ask() {
	if s.Done() {
		result := core.Format(s.record)
		s.push(Message{Role: RoleAssistant, Content: msgGenerated})
		s.push(Message{Role: RoleAssistant, Content: fence(result)})
		s.logger.Debug().Str("commit", result).Msg("Commit generated")
		return
	}

	st := states[s.step]
	s.push(Message{Role: RoleAssistant, Content: st.prompt, Buttons: st.buttons})
}

func (s *Session) push(m Message) {
	s.messages = append(s.messages, m)
}
