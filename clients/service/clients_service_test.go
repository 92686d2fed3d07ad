package service

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	clientsMocks "github.com/gettupp/backoffice/clients/dal/mocks"
	"github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/common"
	leads "github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/logger"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

type clientsFields struct {
	clientsDal *clientsMocks.Clients
}

func TestClientsService_CreateClient(t *testing.T) {
	ctx := context.Background()
	testError := errors.New("test error")

	tests := []struct {
		name        string
		req         CreateClientRequest
		on          func(*clientsFields)
		want        string
		expectedErr error
	}{
		{
			name:        "missing tier",
			req:         CreateClientRequest{Name: "Club Space", Email: "a@b.co"},
			expectedErr: domain.ErrMissingClientFields,
		},
		{
			name:        "invalid tier is rejected before any write",
			req:         CreateClientRequest{Name: "Club Space", Email: "a@b.co", Tier: "gold"},
			expectedErr: tiers.ErrInvalidTier,
		},
		{
			name: "direct client",
			req:  CreateClientRequest{Name: "Club Space", Email: "a@b.co", Tier: tiers.TierT1, Instagram: "@Space"},
			on: func(f *clientsFields) {
				f.clientsDal.On("Create", ctx, &domain.Client{
					Name:      "Club Space",
					Email:     "a@b.co",
					Instagram: "space",
					Tier:      tiers.TierT1,
					Status:    domain.StatusPending,
					Source:    domain.SourceDirect,
				}).Return("client-1", nil)
			},
			want: "client-1",
		},
		{
			name: "lead conversion runs as one transaction",
			req:  CreateClientRequest{Name: "Club Space", Email: "a@b.co", Tier: tiers.TierVIP, LeadID: "lead-1"},
			on: func(f *clientsFields) {
				f.clientsDal.On("CreateFromLead", ctx, &domain.Client{
					Name:   "Club Space",
					Email:  "a@b.co",
					Tier:   tiers.TierVIP,
					Status: domain.StatusPending,
					Source: domain.SourceLead,
				}, "lead-1").Return("client-2", nil)
			},
			want: "client-2",
		},
		{
			name: "lead missing",
			req:  CreateClientRequest{Name: "Club Space", Email: "a@b.co", Tier: tiers.TierVIP, LeadID: "nope"},
			on: func(f *clientsFields) {
				f.clientsDal.On("CreateFromLead", ctx, mock.Anything, "nope").Return("", leads.ErrLeadNotFound)
			},
			expectedErr: leads.ErrLeadNotFound,
		},
		{
			name: "store failure",
			req:  CreateClientRequest{Name: "Club Space", Email: "a@b.co", Tier: tiers.TierPilot},
			on: func(f *clientsFields) {
				f.clientsDal.On("Create", ctx, mock.Anything).Return("", testError)
			},
			expectedErr: testError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &clientsFields{clientsDal: clientsMocks.NewClients(t)}
			s := &ClientsService{loggerProvider: logger.FromContext, clientsDal: f.clientsDal}

			if tt.on != nil {
				tt.on(f)
			}

			got, err := s.CreateClient(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientsService_UpdateClient(t *testing.T) {
	ctx := context.Background()
	pastDue := domain.StatusPastDue

	t.Run("partial merge", func(t *testing.T) {
		f := &clientsFields{clientsDal: clientsMocks.NewClients(t)}
		s := &ClientsService{loggerProvider: logger.FromContext, clientsDal: f.clientsDal}

		f.clientsDal.On("Update", ctx, "client-1", []firestore.Update{
			{Path: "amountPaid", Value: 345.0},
			{Path: "notes", Value: "paid cash"},
		}).Return(&domain.Client{ID: "client-1", AmountPaid: 345}, nil)

		got, err := s.UpdateClient(ctx, "client-1", UpdateClientRequest{
			AmountPaid: common.Float(345),
			Notes:      common.String("paid cash"),
		})
		assert.NoError(t, err)
		assert.Equal(t, 345.0, got.AmountPaid)
	})

	t.Run("billing statuses cannot be set by hand", func(t *testing.T) {
		f := &clientsFields{clientsDal: clientsMocks.NewClients(t)}
		s := &ClientsService{loggerProvider: logger.FromContext, clientsDal: f.clientsDal}

		_, err := s.UpdateClient(ctx, "client-1", UpdateClientRequest{Status: &pastDue})
		assert.Equal(t, domain.ErrInvalidStatus, err)
	})
}

func TestClientsService_DeleteClient(t *testing.T) {
	ctx := context.Background()
	f := &clientsFields{clientsDal: clientsMocks.NewClients(t)}
	s := &ClientsService{loggerProvider: logger.FromContext, clientsDal: f.clientsDal}

	f.clientsDal.On("Update", ctx, "client-1", []firestore.Update{{Path: "status", Value: domain.StatusCancelled}}).
		Return(&domain.Client{ID: "client-1", Status: domain.StatusCancelled}, nil)
	f.clientsDal.On("Update", ctx, "missing", mock.Anything).Return(nil, domain.ErrClientNotFound)

	assert.NoError(t, s.DeleteClient(ctx, "client-1"))
	assert.Equal(t, domain.ErrClientNotFound, s.DeleteClient(ctx, "missing"))
}

func TestClientsService_ListClients(t *testing.T) {
	ctx := context.Background()
	f := &clientsFields{clientsDal: clientsMocks.NewClients(t)}
	s := &ClientsService{loggerProvider: logger.FromContext, clientsDal: f.clientsDal}

	f.clientsDal.On("List", ctx, domain.ListFilter{Status: domain.StatusActive, Tier: tiers.TierVIP, Limit: defaultListLimit}).
		Return([]*domain.Client{{ID: "client-1"}}, nil)

	got, err := s.ListClients(ctx, ListClientsRequest{Status: "Active", Tier: "VIP"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(got))
}
