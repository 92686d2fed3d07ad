//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/gettupp/backoffice/subscriptions/domain"
)

type Subscriptions interface {
	Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Subscription, error)
	Upsert(ctx context.Context, subscription *domain.Subscription) error
}
