//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/leads/service"
)

type LeadsIface interface {
	ListLeads(ctx context.Context, req service.ListLeadsRequest) ([]*domain.Lead, error)
	GetLead(ctx context.Context, leadID string) (*domain.Lead, error)
	CreateLead(ctx context.Context, req service.CreateLeadRequest) (string, error)
	Book(ctx context.Context, req service.BookingRequest) (string, error)
	Intake(ctx context.Context, lead *domain.Lead) (string, error)
	UpdateLead(ctx context.Context, leadID string, req service.UpdateLeadRequest) (*domain.Lead, error)
	ProcessNewLeads(ctx context.Context) (int, error)
}
