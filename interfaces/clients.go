package interfaces

import (
	"context"

	"github.com/aivofinance/aivo/models"
)

// AssistantClient is the conversational collaborator. It receives the chat
// history, the latest prompt, and a snapshot of the document, and returns
// either answer text or a structured addTransaction instruction.
type AssistantClient interface {
	Chat(ctx context.Context, history []models.AssistantMessage, prompt string, snapshot *models.AppData) (*models.AssistantReply, error)
	Close() error
}
