package chat

import (
	"context"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// Repository persists and retrieves chat messages.
type Repository interface {
	Append(ctx context.Context, msg *domain.Message) (string, error)
	Conversation(ctx context.Context, a, b string) ([]domain.Message, error)
}
