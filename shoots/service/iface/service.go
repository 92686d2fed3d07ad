//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/shoots/domain"
	"github.com/gettupp/backoffice/shoots/service"
)

type ShootsIface interface {
	ListShoots(ctx context.Context, req service.ListShootsRequest) ([]*domain.Shoot, error)
	GetShoot(ctx context.Context, shootID string) (*domain.Shoot, error)
	CreateShoot(ctx context.Context, req service.CreateShootRequest) (string, error)
	UpdateShoot(ctx context.Context, shootID string, req service.UpdateShootRequest) (*domain.Shoot, error)
	CancelShoot(ctx context.Context, shootID string) error
}
