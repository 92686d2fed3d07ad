//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/leads/domain"
)

type Leads interface {
	GetRef(ctx context.Context, leadID string) *firestore.DocumentRef
	Get(ctx context.Context, leadID string) (*domain.Lead, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Lead, error)
	Create(ctx context.Context, lead *domain.Lead) (string, error)
	Update(ctx context.Context, leadID string, updates []firestore.Update) (*domain.Lead, error)
}
