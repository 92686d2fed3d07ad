//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/knowledge/domain"
)

type Knowledge interface {
	Get(ctx context.Context, nodeID string) (*domain.Node, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Node, error)
	ListAll(ctx context.Context) ([]*domain.Node, error)
	Create(ctx context.Context, node *domain.Node) (string, error)
	Update(ctx context.Context, nodeID string, updates []firestore.Update) (*domain.Node, error)
	Delete(ctx context.Context, nodeID string) error
	ExistingIDs(ctx context.Context) (map[string]bool, error)
	Import(ctx context.Context, nodes []*domain.Node, batchSize int) (int, error)
}
