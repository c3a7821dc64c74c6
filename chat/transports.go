package chat

import (
	"context"

	"github.com/worklane/worklane-go/api"
	"github.com/worklane/worklane-go/models"
)

// AssistantReplier adapts the smart-assistant endpoint to the Replier
// interface. The assistant keeps no server-side history, so assistant
// sessions have no Fetcher.
type AssistantReplier struct {
	AI       *api.AIService
	Context  string
	Language string
}

// Reply sends one assistant turn.
func (r *AssistantReplier) Reply(ctx context.Context, text string) (models.ChatMessage, error) {
	resp, err := r.AI.SmartAssistant(ctx, api.AssistantRequest{
		Message:  text,
		Context:  r.Context,
		Language: r.Language,
	})
	if err != nil {
		return models.ChatMessage{}, err
	}
	return models.ChatMessage{Role: models.RoleAssistant, Text: resp.Reply}, nil
}

// PeerChat adapts one peer-to-peer chat thread to both Replier and
// Fetcher; the peer's replies arrive through polling rather than the
// send response.
type PeerChat struct {
	Chats  *api.ChatService
	ChatID string
}

// Reply posts the message to the thread. The returned record is the
// caller's own stored message.
func (p *PeerChat) Reply(ctx context.Context, text string) (models.ChatMessage, error) {
	return p.Chats.Send(ctx, p.ChatID, text)
}

// Messages fetches the thread's full message list.
func (p *PeerChat) Messages(ctx context.Context) ([]models.ChatMessage, error) {
	return p.Chats.Messages(ctx, p.ChatID)
}
