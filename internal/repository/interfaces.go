package repository

import (
	"context"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// UserRepo is the keyed user store behind the gamified service. The default
// implementation is SQLite-backed and runs in-memory, so user lifetime is
// process lifetime.
type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
