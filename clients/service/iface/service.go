//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/clients/service"
)

type ClientsIface interface {
	ListClients(ctx context.Context, req service.ListClientsRequest) ([]*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	CreateClient(ctx context.Context, req service.CreateClientRequest) (string, error)
	UpdateClient(ctx context.Context, clientID string, req service.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}
