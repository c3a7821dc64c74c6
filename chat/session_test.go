package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/worklane/worklane-go/models"
)

type stubReplier struct {
	reply   models.ChatMessage
	err     error
	started chan struct{}
	release chan struct{}
	calls   int
}

func (s *stubReplier) Reply(context.Context, string) (models.ChatMessage, error) {
	s.calls++
	if s.started != nil {
		close(s.started)
		<-s.release
	}
	return s.reply, s.err
}

type stubFetcher struct {
	msgs []models.ChatMessage
	err  error
}

func (s *stubFetcher) Messages(context.Context) ([]models.ChatMessage, error) {
	return s.msgs, s.err
}

func TestSessionSendSuccess(t *testing.T) {
	t.Parallel()

	replier := &stubReplier{
		reply: models.ChatMessage{ID: "srv-1", Role: models.RoleAssistant, Text: "Hello!"},
	}
	s := NewSession(replier)

	require.NoError(t, s.Send(context.Background(), "hi"))

	entries := s.Log().Entries()
	require.Len(t, entries, 2)

	require.Equal(t, models.RoleUser, entries[0].Role)
	require.Equal(t, "hi", entries[0].Text)
	require.Equal(t, StatusConfirmed, entries[0].Status)

	require.Equal(t, models.RoleAssistant, entries[1].Role)
	require.Equal(t, "Hello!", entries[1].Text)
	require.Equal(t, StatusConfirmed, entries[1].Status)
	require.Equal(t, "srv-1", entries[1].ServerID)
}

func TestSessionSendFailure(t *testing.T) {
	t.Parallel()

	replier := &stubReplier{err: errors.New("network down")}
	s := NewSession(replier)

	err := s.Send(context.Background(), "hi")
	require.EqualError(t, err, "network down")

	// History is never rolled back: the user entry stays, marked
	// failed, and a synthetic failure reply follows it.
	entries := s.Log().Entries()
	require.Len(t, entries, 2)
	require.Equal(t, StatusFailed, entries[0].Status)
	require.Equal(t, "hi", entries[0].Text)
	require.Equal(t, StatusFailed, entries[1].Status)
	require.Equal(t, models.RoleAssistant, entries[1].Role)
	require.NotEmpty(t, entries[1].Text)
	require.False(t, s.Sending())
}

func TestSessionSendBusyGuard(t *testing.T) {
	t.Parallel()

	replier := &stubReplier{
		reply:   models.ChatMessage{Role: models.RoleAssistant, Text: "ok"},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewSession(replier)

	done := make(chan error, 1)
	go func() {
		done <- s.Send(context.Background(), "first")
	}()

	<-replier.started
	require.True(t, s.Sending())

	// A second send while the first is in flight cannot be initiated.
	err := s.Send(context.Background(), "second")
	require.ErrorIs(t, err, ErrBusy)

	close(replier.release)
	require.NoError(t, <-done)
	require.Equal(t, 1, replier.calls)
	require.False(t, s.Sending())
}

func TestSessionSendPeerEcho(t *testing.T) {
	t.Parallel()

	// Peer chats echo the sender's own stored record; it must not be
	// appended a second time.
	replier := &stubReplier{
		reply: models.ChatMessage{ID: "srv-9", Role: models.RoleUser, Text: "hi"},
	}
	s := NewSession(replier)

	require.NoError(t, s.Send(context.Background(), "hi"))

	entries := s.Log().Entries()
	require.Len(t, entries, 1)
	require.Equal(t, StatusConfirmed, entries[0].Status)
	require.Equal(t, "srv-9", entries[0].ServerID)
}

func TestSessionGreeting(t *testing.T) {
	t.Parallel()

	s := NewSession(&stubReplier{}, WithGreeting("How can I help?"))
	entries := s.Log().Entries()
	require.Len(t, entries, 1)
	require.Equal(t, models.RoleAssistant, entries[0].Role)
	require.Equal(t, StatusConfirmed, entries[0].Status)
}

func TestSessionRefresh(t *testing.T) {
	t.Parallel()

	t.Run("merges server list and keeps local failures", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{msgs: []models.ChatMessage{
			{ID: "m1", Role: models.RolePeer, Text: "hello", CreatedAt: time.Now()},
			{ID: "m2", Role: models.RoleUser, Text: "hi", CreatedAt: time.Now()},
		}}
		replier := &stubReplier{err: errors.New("boom")}
		s := NewSession(replier, WithFetcher(fetcher))

		_ = s.Send(context.Background(), "lost message")
		require.NoError(t, s.Refresh(context.Background()))

		entries := s.Log().Entries()
		require.Len(t, entries, 4)
		require.Equal(t, "m1", entries[0].ServerID)
		require.Equal(t, "m2", entries[1].ServerID)
		require.Equal(t, StatusFailed, entries[2].Status)
		require.Equal(t, "lost message", entries[2].Text)
		require.Equal(t, StatusFailed, entries[3].Status)
	})

	t.Run("surfaces fetch errors through the callback", func(t *testing.T) {
		t.Parallel()

		var seen error
		fetchErr := errors.New("fetch failed")
		s := NewSession(&stubReplier{},
			WithFetcher(&stubFetcher{err: fetchErr}),
			WithOnError(func(err error) { seen = err }),
		)

		require.ErrorIs(t, s.Refresh(context.Background()), fetchErr)
		require.ErrorIs(t, seen, fetchErr)
	})

	t.Run("no fetcher is a no-op", func(t *testing.T) {
		t.Parallel()
		s := NewSession(&stubReplier{})
		require.NoError(t, s.Refresh(context.Background()))
	})
}

func TestSessionPollStopsOnCancel(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{msgs: []models.ChatMessage{{ID: "m1", Text: "x"}}}
	s := NewSession(&stubReplier{},
		WithFetcher(fetcher),
		WithPollInterval(5*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Poll(ctx)
		close(done)
	}()

	// The immediate refresh populates the log even before a tick.
	require.Eventually(t, func() bool { return s.Log().Len() == 1 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll loop did not stop on cancel")
	}
}
