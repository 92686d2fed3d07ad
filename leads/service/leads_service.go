package service

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/leads/dal"
	"github.com/gettupp/backoffice/leads/dal/iface"
	"github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/notification"
	"github.com/gettupp/backoffice/slice"
	tiers "github.com/gettupp/backoffice/tiers/domain"
	"github.com/gettupp/backoffice/validation"
)

type LeadsService struct {
	loggerProvider logger.Provider
	leadsDal       iface.Leads
	notifier       notification.LeadNotifier
	timeFunc       func() time.Time
}

func NewLeadsService(log logger.Provider, conn *connection.Connection) *LeadsService {
	return NewLeadsServiceWithDal(log, dal.NewLeadsFirestoreWithClient(conn.Firestore), notification.NewLeadAlerts(log))
}

func NewLeadsServiceWithDal(log logger.Provider, leadsDal iface.Leads, notifier notification.LeadNotifier) *LeadsService {
	return &LeadsService{
		loggerProvider: log,
		leadsDal:       leadsDal,
		notifier:       notifier,
		timeFunc:       time.Now,
	}
}

func (s *LeadsService) ListLeads(ctx context.Context, req ListLeadsRequest) ([]*domain.Lead, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.leadsDal.List(ctx, domain.ListFilter{
		Status: domain.NormalizeStatus(req.Status),
		Limit:  limit,
	})
}

func (s *LeadsService) GetLead(ctx context.Context, leadID string) (*domain.Lead, error) {
	return s.leadsDal.Get(ctx, leadID)
}

// CreateLead adds a lead entered by an admin.
func (s *LeadsService) CreateLead(ctx context.Context, req CreateLeadRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return "", domain.ErrMissingLeadFields
	}

	if req.Tier != "" && !req.Tier.IsValid() {
		return "", tiers.ErrInvalidTier
	}

	status := domain.LeadStatusNew
	if req.Status != "" {
		if !req.Status.IsValid() {
			return "", domain.ErrInvalidStatus
		}

		status = req.Status
	}

	score := domain.DefaultQualificationScore
	if req.QualificationScore != nil {
		score = *req.QualificationScore
	}

	source := req.Source
	if source == "" {
		source = domain.SourceAdmin
	}

	venue := req.Venue
	if venue == "" {
		venue = req.Name
	}

	lead := &domain.Lead{
		Name:               req.Name,
		Venue:              venue,
		Email:              req.Email,
		Phone:              req.Phone,
		Instagram:          validation.NormalizeInstagram(req.Instagram),
		Tier:               req.Tier,
		Status:             status,
		QualificationScore: score,
		Source:             source,
		Notes:              req.Notes,
		Tags:               domain.VenueTags(venue),
	}

	return s.leadsDal.Create(ctx, lead)
}

// Book records a public booking request. The tier defaults to pilot and drives the lead score.
func (s *LeadsService) Book(ctx context.Context, req BookingRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return "", domain.ErrMissingBookingField
	}

	if err := validation.ValidateBooking(validation.BookingInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}); err != nil {
		return "", err
	}

	tier := tiers.TierOrDefault(req.Tier)
	if !tier.IsValid() {
		return "", tiers.ErrInvalidTier
	}

	contactName := req.ContactName
	if contactName == "" {
		contactName = req.Name
	}

	source := req.Source
	if source == "" {
		source = domain.SourceWebsite
	}

	return s.Intake(ctx, &domain.Lead{
		Name:               req.Name,
		Venue:              req.Name,
		ContactName:        contactName,
		Email:              req.Email,
		Phone:              req.Phone,
		Instagram:          req.Instagram,
		PreferredNight:     req.PreferredNight,
		Tier:               tier,
		Status:             domain.LeadStatusNew,
		QualificationScore: tier.QualificationScore(),
		Source:             source,
		Notes:              req.Notes,
	})
}

// Intake stores a lead coming from a public form or webhook, and alerts the team.
func (s *LeadsService) Intake(ctx context.Context, lead *domain.Lead) (string, error) {
	l := s.loggerProvider(ctx)

	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}

	if lead.Tier == "" {
		lead.Tier = tiers.TierPilot
	}

	if lead.QualificationScore == 0 {
		lead.QualificationScore = lead.Tier.QualificationScore()
	}

	if lead.Venue == "" {
		lead.Venue = lead.Name
	}

	lead.Instagram = validation.NormalizeInstagram(lead.Instagram)
	lead.Tags = slice.Unique(lead.Tags, domain.VenueTags(lead.Venue))

	id, err := s.leadsDal.Create(ctx, lead)
	if err != nil {
		return "", err
	}

	lead.ID = id

	l.SetLabel("leadId", id)
	l.Infof("new lead %s from %s", id, lead.Source)

	s.notifier.NotifyNewLead(ctx, lead)

	return id, nil
}

func (s *LeadsService) UpdateLead(ctx context.Context, leadID string, req UpdateLeadRequest) (*domain.Lead, error) {
	if req.Tier != nil && !req.Tier.IsValid() {
		return nil, tiers.ErrInvalidTier
	}

	if req.Status != nil && !req.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	return s.leadsDal.Update(ctx, leadID, getLeadUpdates(req))
}

// ProcessNewLeads normalises the instagram handles and venue tags of stored New leads.
// It returns how many leads were changed.
func (s *LeadsService) ProcessNewLeads(ctx context.Context) (int, error) {
	l := s.loggerProvider(ctx)

	leads, err := s.leadsDal.List(ctx, domain.ListFilter{Status: domain.LeadStatusNew})
	if err != nil {
		return 0, err
	}

	processed := 0

	for _, lead := range leads {
		instagram := validation.NormalizeInstagram(lead.Instagram)
		tags := slice.Unique(lead.Tags, domain.VenueTags(lead.Venue))

		if instagram == lead.Instagram && len(tags) == len(lead.Tags) && lead.ProcessedAt != nil {
			continue
		}

		if _, err := s.leadsDal.Update(ctx, lead.ID, []firestore.Update{
			{Path: "instagram", Value: instagram},
			{Path: "tags", Value: tags},
			{Path: "processedAt", Value: s.timeFunc()},
		}); err != nil {
			return processed, err
		}

		l.Printf("processed lead %s (%s)", lead.ID, lead.Venue)

		processed++
	}

	return processed, nil
}

func getLeadUpdates(req UpdateLeadRequest) []firestore.Update {
	var updates []firestore.Update

	if req.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *req.Name})
	}

	if req.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *req.Email})
	}

	if req.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *req.Phone})
	}

	if req.Instagram != nil {
		updates = append(updates, firestore.Update{Path: "instagram", Value: validation.NormalizeInstagram(*req.Instagram)})
	}

	if req.Venue != nil {
		updates = append(updates, firestore.Update{Path: "venue", Value: *req.Venue})
	}

	if req.Tier != nil {
		updates = append(updates, firestore.Update{Path: "tier", Value: *req.Tier})
	}

	if req.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *req.Status})
	}

	if req.Notes != nil {
		updates = append(updates, firestore.Update{Path: "notes", Value: *req.Notes})
	}

	return updates
}
