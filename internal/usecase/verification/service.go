package verification

import (
	"context"
	"fmt"

	"github.com/venturebridge/venturebridge/internal/domain"
)

// Repository persists verification submissions.
type Repository interface {
	Submit(ctx context.Context, v *domain.Verification) (string, error)
}

// Service accepts KYC submissions. Every submission lands as pending; review
// happens out of band.
type Service struct {
	repo Repository
}

// New creates a verification service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit normalizes, validates and stores a verification request.
func (s *Service) Submit(ctx context.Context, v *domain.Verification) (string, error) {
	v.Normalize()
	if err := v.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.Submit(ctx, v)
	if err != nil {
		return "", fmt.Errorf("submit verification: %w", err)
	}
	return id, nil
}
