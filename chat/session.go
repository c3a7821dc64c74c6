package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/worklane/worklane-go/logger"
	"github.com/worklane/worklane-go/models"
)

// ErrBusy is returned when Send is called while a previous send is
// still awaiting its reply. The sending flag disables the input
// control; a second request cannot be initiated from it.
var ErrBusy = errors.New("send already in progress")

// DefaultPollInterval matches the observed refresh cadence of the chat
// screens.
const DefaultPollInterval = 10 * time.Second

const defaultFailureText = "Sorry, something went wrong. Please try again."

// Replier delivers one outgoing message and returns the counterpart's
// reply record.
type Replier interface {
	Reply(ctx context.Context, text string) (models.ChatMessage, error)
}

// Fetcher retrieves the full remote message list for polling refresh.
type Fetcher interface {
	Messages(ctx context.Context) ([]models.ChatMessage, error)
}

// Session drives one conversation: optimistic sends through a Replier
// and, when a Fetcher is configured, periodic refresh of the log.
type Session struct {
	log         *Log
	replier     Replier
	fetcher     Fetcher
	interval    time.Duration
	failureText string
	onError     func(error)

	mu      sync.Mutex
	sending bool
}

// Option configures a Session.
type Option func(*Session)

// WithFetcher enables polling refresh through f.
func WithFetcher(f Fetcher) Option {
	return func(s *Session) { s.fetcher = f }
}

// WithPollInterval overrides the refresh cadence.
func WithPollInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithFailureText overrides the synthetic reply appended when a send
// fails.
func WithFailureText(text string) Option {
	return func(s *Session) {
		if text != "" {
			s.failureText = text
		}
	}
}

// WithOnError registers a callback for refresh failures, so fetch
// errors surface somewhere instead of being swallowed.
func WithOnError(fn func(error)) Option {
	return func(s *Session) { s.onError = fn }
}

// WithGreeting seeds the log with an opening assistant message.
func WithGreeting(text string) Option {
	return func(s *Session) {
		s.log.Append(Entry{
			ID:     uuid.NewString(),
			Role:   models.RoleAssistant,
			Text:   text,
			At:     time.Now(),
			Status: StatusConfirmed,
		})
	}
}

// NewSession creates a session over an empty log.
func NewSession(replier Replier, opts ...Option) *Session {
	s := &Session{
		log:         NewLog(),
		replier:     replier,
		interval:    DefaultPollInterval,
		failureText: defaultFailureText,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Log exposes the session's message log.
func (s *Session) Log() *Log {
	return s.log
}

// Sending reports whether a send is in flight.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// Send appends the user's message immediately, awaits the reply, and
// appends it on success. On failure the user entry is marked Failed and
// a synthetic failure reply is appended in place of a real one; the
// history is never rolled back.
func (s *Session) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return ErrBusy
	}
	s.sending = true
	s.mu.Unlock()

	entry := Entry{
		ID:     uuid.NewString(),
		Role:   models.RoleUser,
		Text:   text,
		At:     time.Now(),
		Status: StatusPending,
	}
	s.log.Append(entry)

	reply, err := s.replier.Reply(ctx, text)

	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()

	if err != nil {
		logger.Log.Warn().Err(err).Str("text", logger.SanitizeText(text)).Msg("Chat send failed")
		s.log.mark(entry.ID, StatusFailed, "")
		s.log.Append(Entry{
			ID:     uuid.NewString(),
			Role:   models.RoleAssistant,
			Text:   s.failureText,
			At:     time.Now(),
			Status: StatusFailed,
		})
		return err
	}

	// Peer chats echo the caller's own stored message back from the
	// send; the actual reply arrives via polling. Only append
	// counterpart messages.
	if reply.Role == models.RoleUser {
		s.log.mark(entry.ID, StatusConfirmed, reply.ID)
		return nil
	}

	s.log.mark(entry.ID, StatusConfirmed, "")

	role := reply.Role
	if role == "" {
		role = models.RoleAssistant
	}
	at := reply.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	s.log.Append(Entry{
		ID:       uuid.NewString(),
		ServerID: reply.ID,
		Role:     role,
		Text:     reply.Text,
		At:       at,
		Status:   StatusConfirmed,
	})
	return nil
}

// Refresh re-fetches the remote message list once and merges it into
// the log. Without a Fetcher it is a no-op.
func (s *Session) Refresh(ctx context.Context) error {
	if s.fetcher == nil {
		return nil
	}

	msgs, err := s.fetcher.Messages(ctx)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Chat refresh failed")
		if s.onError != nil {
			s.onError(err)
		}
		return err
	}

	s.log.MergeServer(msgs)
	return nil
}

// Poll refreshes immediately and then on every tick until ctx is
// cancelled. Refresh failures are reported through WithOnError and the
// loop keeps going.
func (s *Session) Poll(ctx context.Context) {
	if s.fetcher == nil {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	_ = s.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug().Msg("Chat polling stopped")
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}
