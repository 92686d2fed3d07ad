package service

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	clientsDal "github.com/gettupp/backoffice/clients/dal"
	clientsIface "github.com/gettupp/backoffice/clients/dal/iface"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/shoots/dal"
	"github.com/gettupp/backoffice/shoots/dal/iface"
	"github.com/gettupp/backoffice/shoots/domain"
	"github.com/gettupp/backoffice/validation"
)

type ShootsService struct {
	loggerProvider logger.Provider
	shootsDal      iface.Shoots
	clientsDal     clientsIface.Clients
	timeFunc       func() time.Time
}

func NewShootsService(log logger.Provider, conn *connection.Connection) *ShootsService {
	return &ShootsService{
		loggerProvider: log,
		shootsDal:      dal.NewShootsFirestoreWithClient(conn.Firestore),
		clientsDal:     clientsDal.NewClientsFirestoreWithClient(conn.Firestore),
		timeFunc:       time.Now,
	}
}

func (s *ShootsService) ListShoots(ctx context.Context, req ListShootsRequest) ([]*domain.Shoot, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := domain.ListFilter{
		Status:   domain.ShootStatus(strings.ToLower(req.Status)),
		ClientID: req.ClientID,
		Limit:    limit,
	}

	if req.Upcoming {
		now := s.timeFunc()
		filter.From = &now
	}

	return s.shootsDal.List(ctx, filter)
}

func (s *ShootsService) GetShoot(ctx context.Context, shootID string) (*domain.Shoot, error) {
	return s.shootsDal.Get(ctx, shootID)
}

// CreateShoot schedules a shoot for an existing client, filling the type defaults.
func (s *ShootsService) CreateShoot(ctx context.Context, req CreateShootRequest) (string, error) {
	if req.ClientID == "" || req.Type == "" || req.ScheduledDate == "" {
		return "", domain.ErrMissingShootFields
	}

	if !req.Type.IsValid() {
		return "", domain.ErrInvalidType
	}

	scheduled, err := parseDate(req.ScheduledDate)
	if err != nil {
		return "", err
	}

	if err := validation.ValidateShootDate(scheduled, s.timeFunc()); err != nil {
		return "", err
	}

	deadline := scheduled.Add(domain.DeliveryWindow)
	if req.DeliveryDeadline != "" {
		if deadline, err = parseDate(req.DeliveryDeadline); err != nil {
			return "", err
		}
	}

	if _, err := s.clientsDal.Get(ctx, req.ClientID); err != nil {
		return "", err
	}

	duration := req.Duration
	if duration == 0 {
		duration = req.Type.Duration()
	}

	totalImages := req.TotalImages
	if totalImages == 0 {
		totalImages = req.Type.TotalImages()
	}

	return s.shootsDal.Create(ctx, &domain.Shoot{
		ClientID:         req.ClientID,
		Type:             req.Type,
		Status:           domain.StatusScheduled,
		ScheduledDate:    scheduled,
		Location:         req.Location,
		Duration:         duration,
		TotalImages:      totalImages,
		DeliveredImages:  0,
		DeliveryDeadline: deadline,
		PhotographerID:   req.PhotographerID,
		PhotographerName: req.PhotographerName,
		Notes:            req.Notes,
		ClientNotes:      req.ClientNotes,
	})
}

func (s *ShootsService) UpdateShoot(ctx context.Context, shootID string, req UpdateShootRequest) (*domain.Shoot, error) {
	if req.Status != nil && !req.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	if req.Type != nil && !req.Type.IsValid() {
		return nil, domain.ErrInvalidType
	}

	updates, err := getShootUpdates(req)
	if err != nil {
		return nil, err
	}

	return s.shootsDal.Update(ctx, shootID, updates)
}

func (s *ShootsService) CancelShoot(ctx context.Context, shootID string) error {
	_, err := s.shootsDal.Update(ctx, shootID, []firestore.Update{
		{Path: "status", Value: domain.StatusCancelled},
	})

	return err
}

func getShootUpdates(req UpdateShootRequest) ([]firestore.Update, error) {
	var updates []firestore.Update

	add := func(path string, value interface{}) {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if req.Status != nil {
		add("status", *req.Status)
	}

	if req.Type != nil {
		add("type", *req.Type)
	}

	if req.ScheduledDate != nil {
		t, err := parseDate(*req.ScheduledDate)
		if err != nil {
			return nil, err
		}

		add("scheduledDate", t)
	}

	if req.Location != nil {
		add("location", *req.Location)
	}

	if req.Duration != nil {
		add("duration", *req.Duration)
	}

	if req.TotalImages != nil {
		add("totalImages", *req.TotalImages)
	}

	if req.DeliveredImages != nil {
		add("deliveredImages", *req.DeliveredImages)
	}

	if req.DeliveryDeadline != nil {
		t, err := parseDate(*req.DeliveryDeadline)
		if err != nil {
			return nil, err
		}

		add("deliveryDeadline", t)
	}

	if req.PhotographerID != nil {
		add("photographerId", *req.PhotographerID)
	}

	if req.PhotographerName != nil {
		add("photographerName", *req.PhotographerName)
	}

	if req.Notes != nil {
		add("notes", *req.Notes)
	}

	if req.ClientNotes != nil {
		add("clientNotes", *req.ClientNotes)
	}

	return updates, nil
}
