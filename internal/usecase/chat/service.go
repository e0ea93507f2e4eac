package chat

import (
	"context"
	"fmt"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// Service is the chat use case. Messages are append-only; a conversation is
// the union of both directions between two participants.
type Service struct {
	repo Repository
}

// New creates a chat service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Send validates and persists one message, returning its id.
func (s *Service) Send(ctx context.Context, msg *domain.Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.Append(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	return id, nil
}

// Conversation returns every message exchanged between a and b, in either
// direction. Both participants must be named.
func (s *Service) Conversation(ctx context.Context, a, b string) ([]domain.Message, error) {
	v := &domain.ValidationError{}
	if a == "" {
		v.Addf("user_a", "is required")
	}
	if b == "" {
		v.Addf("user_b", "is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	msgs, err := s.repo.Conversation(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("conversation: %w", err)
	}
	return msgs, nil
}
