package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/worklane/worklane-go/models"
)

// ChatService covers peer-to-peer task chats. The assistant chat lives
// under AIService instead.
type ChatService struct {
	client *Client
}

// Chat is one conversation thread.
type Chat struct {
	ID            string    `json:"id"`
	TaskID        string    `json:"task_id,omitempty"`
	PeerID        string    `json:"peer_id"`
	PeerName      string    `json:"peer_name"`
	LastMessage   string    `json:"last_message,omitempty"`
	LastMessageAt time.Time `json:"last_message_at,omitempty"`
	Unread        int       `json:"unread"`
}

// List fetches the caller's conversation threads.
func (s *ChatService) List(ctx context.Context) ([]Chat, error) {
	var out []Chat
	if err := s.client.do(ctx, http.MethodGet, "/chats", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return out, nil
}

// Messages fetches the full message list of one chat. Callers poll
// this; the server keeps no cursor.
func (s *ChatService) Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := s.client.do(ctx, http.MethodGet, "/chats/"+chatID+"/messages", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch chat messages: %w", err)
	}
	return out, nil
}

// Send posts a message to a chat and returns the stored record.
func (s *ChatService) Send(ctx context.Context, chatID, text string) (models.ChatMessage, error) {
	body := map[string]string{"text": text}
	var out models.ChatMessage
	if err := s.client.do(ctx, http.MethodPost, "/chats/"+chatID+"/messages", body, &out); err != nil {
		return models.ChatMessage{}, fmt.Errorf("failed to send chat message: %w", err)
	}
	return out, nil
}
