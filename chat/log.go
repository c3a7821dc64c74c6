// Package chat maintains the client-side view of a conversation as an
// append-only log. Sent messages are appended optimistically and
// tagged Pending, then marked Confirmed or Failed; history is never
// rolled back.
package chat

import (
	"sync"
	"time"

	"github.com/worklane/worklane-go/models"
)

// Status of one log entry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Entry is one message in the local log. ID is client-assigned;
// ServerID is set once the server has stored the message.
type Entry struct {
	ID       string
	ServerID string
	Role     string
	Text     string
	At       time.Time
	Status   Status
}

// Log is the ordered, append-only message sequence of one
// conversation.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds an entry at the end of the log.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the log in order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// mark updates the status of the entry with the given client ID.
func (l *Log) mark(id string, status Status, serverID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Status = status
			if serverID != "" {
				l.entries[i].ServerID = serverID
			}
			return
		}
	}
}

// MergeServer replaces the confirmed portion of the log with the
// server's message list, keeping local pending and failed entries at
// the tail. The most recently completed fetch wins; there is no
// versioning.
func (l *Log) MergeServer(msgs []models.ChatMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make([]Entry, 0, len(msgs)+len(l.entries))
	for _, m := range msgs {
		role := m.Role
		if role == "" {
			role = models.RolePeer
		}
		merged = append(merged, Entry{
			ID:       m.ID,
			ServerID: m.ID,
			Role:     role,
			Text:     m.Text,
			At:       m.CreatedAt,
			Status:   StatusConfirmed,
		})
	}

	for _, e := range l.entries {
		if e.Status != StatusConfirmed {
			merged = append(merged, e)
		}
	}

	l.entries = merged
}
