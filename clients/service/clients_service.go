package service

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/clients/dal"
	"github.com/gettupp/backoffice/clients/dal/iface"
	"github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/logger"
	tiers "github.com/gettupp/backoffice/tiers/domain"
	"github.com/gettupp/backoffice/validation"
)

type ClientsService struct {
	loggerProvider logger.Provider
	clientsDal     iface.Clients
}

func NewClientsService(log logger.Provider, conn *connection.Connection) *ClientsService {
	return &ClientsService{
		loggerProvider: log,
		clientsDal:     dal.NewClientsFirestoreWithClient(conn.Firestore),
	}
}

func (s *ClientsService) ListClients(ctx context.Context, req ListClientsRequest) ([]*domain.Client, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.clientsDal.List(ctx, domain.ListFilter{
		Status: domain.ClientStatus(strings.ToLower(req.Status)),
		Tier:   tiers.Tier(strings.ToLower(req.Tier)),
		Limit:  limit,
	})
}

func (s *ClientsService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientsDal.Get(ctx, clientID)
}

// CreateClient adds a client. With a lead id the lead is converted in the same transaction.
func (s *ClientsService) CreateClient(ctx context.Context, req CreateClientRequest) (string, error) {
	l := s.loggerProvider(ctx)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Tier == "" {
		return "", domain.ErrMissingClientFields
	}

	if !req.Tier.IsValid() {
		return "", tiers.ErrInvalidTier
	}

	source := req.Source
	if source == "" {
		source = domain.SourceDirect
	}

	client := &domain.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Instagram: validation.NormalizeInstagram(req.Instagram),
		Tier:      req.Tier,
		Status:    domain.StatusPending,
		Source:    source,
		Notes:     req.Notes,
	}

	if req.LeadID == "" {
		return s.clientsDal.Create(ctx, client)
	}

	if req.Source == "" {
		client.Source = domain.SourceLead
	}

	id, err := s.clientsDal.CreateFromLead(ctx, client, req.LeadID)
	if err != nil {
		return "", err
	}

	l.Infof("lead %s converted to client %s", req.LeadID, id)

	return id, nil
}

func (s *ClientsService) UpdateClient(ctx context.Context, clientID string, req UpdateClientRequest) (*domain.Client, error) {
	if req.Tier != nil && !req.Tier.IsValid() {
		return nil, tiers.ErrInvalidTier
	}

	if req.Status != nil && !req.Status.IsAdminStatus() {
		return nil, domain.ErrInvalidStatus
	}

	return s.clientsDal.Update(ctx, clientID, getClientUpdates(req))
}

// DeleteClient keeps the record and marks it cancelled.
func (s *ClientsService) DeleteClient(ctx context.Context, clientID string) error {
	_, err := s.clientsDal.Update(ctx, clientID, []firestore.Update{
		{Path: "status", Value: domain.StatusCancelled},
	})

	return err
}

func getClientUpdates(req UpdateClientRequest) []firestore.Update {
	var updates []firestore.Update

	add := func(path string, value interface{}) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if req.Name != nil {
		add("name", *req.Name)
	}

	if req.Email != nil {
		add("email", *req.Email)
	}

	if req.Phone != nil {
		add("phone", *req.Phone)
	}

	if req.Instagram != nil {
		add("instagram", validation.NormalizeInstagram(*req.Instagram))
	}

	if req.Tier != nil {
		add("tier", *req.Tier)
	}

	if req.Status != nil {
		add("status", *req.Status)
	}

	if req.AmountPaid != nil {
		add("amountPaid", *req.AmountPaid)
	}

	if req.StripeCustomerID != nil {
		add("stripeCustomerId", *req.StripeCustomerID)
	}

	if req.StripePaymentIntentID != nil {
		add("stripePaymentIntentId", *req.StripePaymentIntentID)
	}

	if req.Notes != nil {
		add("notes", *req.Notes)
	}

	return updates
}
