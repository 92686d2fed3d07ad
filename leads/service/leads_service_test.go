package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/gettupp/backoffice/common"
	leadsMocks "github.com/gettupp/backoffice/leads/dal/mocks"
	"github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/logger"
	notificationMocks "github.com/gettupp/backoffice/notification/mocks"
	tiers "github.com/gettupp/backoffice/tiers/domain"
	"github.com/gettupp/backoffice/validation"
)

type leadsFields struct {
	leadsDal *leadsMocks.Leads
	notifier *notificationMocks.LeadNotifier
}

func newTestService(t *testing.T) (*LeadsService, *leadsFields) {
	f := &leadsFields{
		leadsDal: leadsMocks.NewLeads(t),
		notifier: notificationMocks.NewLeadNotifier(t),
	}

	s := NewLeadsServiceWithDal(logger.FromContext, f.leadsDal, f.notifier)
	s.timeFunc = func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}

	return s, f
}

func TestLeadsService_CreateLead(t *testing.T) {
	ctx := context.Background()
	testError := errors.New("test error")

	tests := []struct {
		name        string
		req         CreateLeadRequest
		on          func(*leadsFields)
		want        string
		expectedErr error
	}{
		{
			name:        "missing email",
			req:         CreateLeadRequest{Name: "Club Space"},
			expectedErr: domain.ErrMissingLeadFields,
		},
		{
			name:        "invalid tier is rejected before any write",
			req:         CreateLeadRequest{Name: "Club Space", Email: "a@b.co", Tier: "platinum"},
			expectedErr: tiers.ErrInvalidTier,
		},
		{
			name:        "converted status cannot be set by hand",
			req:         CreateLeadRequest{Name: "Club Space", Email: "a@b.co", Status: domain.LeadStatusConverted},
			expectedErr: domain.ErrInvalidStatus,
		},
		{
			name: "admin lead gets defaults",
			req:  CreateLeadRequest{Name: "Club Space", Email: "a@b.co", Instagram: "@ClubSpace"},
			on: func(f *leadsFields) {
				f.leadsDal.On("Create", ctx, &domain.Lead{
					Name:               "Club Space",
					Venue:              "Club Space",
					Email:              "a@b.co",
					Instagram:          "clubspace",
					Status:             domain.LeadStatusNew,
					QualificationScore: domain.DefaultQualificationScore,
					Source:             domain.SourceAdmin,
					Tags:               []string{domain.TagClub},
				}).Return("lead-1", nil)
			},
			want: "lead-1",
		},
		{
			name: "store failure",
			req:  CreateLeadRequest{Name: "Sky Bar", Email: "a@b.co", Tier: tiers.TierT1, QualificationScore: common.Int(80)},
			on: func(f *leadsFields) {
				f.leadsDal.On("Create", ctx, mock.AnythingOfType("*domain.Lead")).Return("", testError)
			},
			expectedErr: testError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newTestService(t)
			if tt.on != nil {
				tt.on(f)
			}

			got, err := s.CreateLead(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeadsService_Book(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       BookingRequest
		wantTier  tiers.Tier
		wantScore int
		wantErr   bool
	}{
		{
			name:      "no tier books a pilot",
			req:       BookingRequest{Name: "Club Space", Email: "owner@clubspace.com"},
			wantTier:  tiers.TierPilot,
			wantScore: 50,
		},
		{
			name:      "vip scores highest",
			req:       BookingRequest{Name: "Club Space", Email: "owner@clubspace.com", Tier: tiers.TierVIP},
			wantTier:  tiers.TierVIP,
			wantScore: 90,
		},
		{
			name:    "invalid email",
			req:     BookingRequest{Name: "Club Space", Email: "owner"},
			wantErr: true,
		},
		{
			name:    "invalid tier",
			req:     BookingRequest{Name: "Club Space", Email: "owner@clubspace.com", Tier: "gold"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newTestService(t)

			if !tt.wantErr {
				f.leadsDal.On("Create", ctx, mock.MatchedBy(func(l *domain.Lead) bool {
					return l.Tier == tt.wantTier &&
						l.QualificationScore == tt.wantScore &&
						l.Status == domain.LeadStatusNew &&
						l.Source == domain.SourceWebsite &&
						l.ContactName == tt.req.Name
				})).Return("lead-1", nil)
				f.notifier.On("NotifyNewLead", ctx, mock.MatchedBy(func(l *domain.Lead) bool {
					return l.ID == "lead-1"
				})).Return()
			}

			id, err := s.Book(ctx, tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "lead-1", id)
		})
	}
}

func TestLeadsService_BookValidationErrors(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Book(context.Background(), BookingRequest{Name: "C", Email: "c@d.co"})

	var fe validation.FieldErrors
	assert.That(t, errors.As(err, &fe))
	assert.Equal(t, "Name must be at least 2 characters", fe["name"])
}

func TestLeadsService_UpdateLead(t *testing.T) {
	ctx := context.Background()
	status := domain.LeadStatusQualified
	badTier := tiers.Tier("gold")
	updated := &domain.Lead{ID: "lead-1", Status: status, Notes: "called"}

	t.Run("only present fields are written", func(t *testing.T) {
		s, f := newTestService(t)

		f.leadsDal.On("Update", ctx, "lead-1", []firestore.Update{
			{Path: "status", Value: status},
			{Path: "notes", Value: "called"},
		}).Return(updated, nil)

		got, err := s.UpdateLead(ctx, "lead-1", UpdateLeadRequest{Status: &status, Notes: common.String("called")})
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("invalid tier never reaches the store", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.UpdateLead(ctx, "lead-1", UpdateLeadRequest{Tier: &badTier})
		assert.Equal(t, tiers.ErrInvalidTier, err)
	})

	t.Run("not found", func(t *testing.T) {
		s, f := newTestService(t)

		f.leadsDal.On("Update", ctx, "missing", mock.Anything).Return(nil, domain.ErrLeadNotFound)

		_, err := s.UpdateLead(ctx, "missing", UpdateLeadRequest{Notes: common.String("x")})
		assert.Equal(t, domain.ErrLeadNotFound, err)
	})
}

func TestLeadsService_ListLeads(t *testing.T) {
	ctx := context.Background()
	s, f := newTestService(t)

	f.leadsDal.On("List", ctx, domain.ListFilter{Status: domain.LeadStatusBooked, Limit: defaultListLimit}).
		Return([]*domain.Lead{{ID: "lead-1"}}, nil)

	got, err := s.ListLeads(ctx, ListLeadsRequest{Status: "booked"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(got))
}

func TestLeadsService_ProcessNewLeads(t *testing.T) {
	ctx := context.Background()
	processedAt := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	s, f := newTestService(t)

	f.leadsDal.On("List", ctx, domain.ListFilter{Status: domain.LeadStatusNew}).Return([]*domain.Lead{
		{ID: "raw", Venue: "Rooftop Bar", Instagram: "@Rooftop"},
		{ID: "done", Venue: "Rooftop Bar", Instagram: "rooftop", Tags: []string{domain.TagBar}, ProcessedAt: &processedAt},
	}, nil)
	f.leadsDal.On("Update", ctx, "raw", []firestore.Update{
		{Path: "instagram", Value: "rooftop"},
		{Path: "tags", Value: []string{domain.TagBar}},
		{Path: "processedAt", Value: s.timeFunc()},
	}).Return(&domain.Lead{ID: "raw"}, nil)

	n, err := s.ProcessNewLeads(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
