package usecase

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceList is one page of service profiles.
type ServiceList struct {
	Services []*entity.ServiceProfile
	Total    int64
}

// ServiceUsecase reads and moderates service profiles.
type ServiceUsecase interface {
	GetService(ctx context.Context, id uuid.UUID) (*entity.ServiceProfile, error)

	// ListPublic returns approved, active profiles only.
	ListPublic(ctx context.Context, category entity.ServiceCategory, page Page) (*ServiceList, error)

	// ListAll returns profiles regardless of moderation state.
	ListAll(ctx context.Context, filter entity.ServiceFilter, page Page) (*ServiceList, error)

	ListUserServices(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceProfile, error)
	UpdateApproval(ctx context.Context, id uuid.UUID, state entity.ApprovalState) (*entity.ServiceProfile, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}
