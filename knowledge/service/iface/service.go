//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/knowledge/domain"
	"github.com/gettupp/backoffice/knowledge/service"
)

type KnowledgeIface interface {
	ListNodes(ctx context.Context, req service.ListNodesRequest) ([]*domain.Node, error)
	CreateNode(ctx context.Context, req service.CreateNodeRequest) (*domain.Node, error)
	UpdateNode(ctx context.Context, nodeID string, req service.UpdateNodeRequest) (*domain.Node, error)
	DeleteNode(ctx context.Context, nodeID string) error
	Ask(ctx context.Context, req service.AskRequest) (*service.AskResponse, error)
}
