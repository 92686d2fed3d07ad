//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/shoots/domain"
)

type Shoots interface {
	Get(ctx context.Context, shootID string) (*domain.Shoot, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Shoot, error)
	Create(ctx context.Context, shoot *domain.Shoot) (string, error)
	Update(ctx context.Context, shootID string, updates []firestore.Update) (*domain.Shoot, error)
}
