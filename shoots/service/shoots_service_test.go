package service

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	clientsMocks "github.com/gettupp/backoffice/clients/dal/mocks"
	clients "github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/logger"
	shootsMocks "github.com/gettupp/backoffice/shoots/dal/mocks"
	"github.com/gettupp/backoffice/shoots/domain"
	"github.com/gettupp/backoffice/validation"
)

type shootsFields struct {
	shootsDal  *shootsMocks.Shoots
	clientsDal *clientsMocks.Clients
}

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*ShootsService, *shootsFields) {
	f := &shootsFields{
		shootsDal:  shootsMocks.NewShoots(t),
		clientsDal: clientsMocks.NewClients(t),
	}

	return &ShootsService{
		loggerProvider: logger.FromContext,
		shootsDal:      f.shootsDal,
		clientsDal:     f.clientsDal,
		timeFunc:       func() time.Time { return testNow },
	}, f
}

func TestShootsService_CreateShoot(t *testing.T) {
	ctx := context.Background()
	scheduled := time.Date(2024, time.June, 14, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		req         CreateShootRequest
		on          func(*shootsFields)
		want        string
		expectedErr error
	}{
		{
			name:        "missing scheduled date",
			req:         CreateShootRequest{ClientID: "client-1", Type: domain.TypeVIP},
			expectedErr: domain.ErrMissingShootFields,
		},
		{
			name:        "invalid type",
			req:         CreateShootRequest{ClientID: "client-1", Type: "wedding", ScheduledDate: "2024-06-14"},
			expectedErr: domain.ErrInvalidType,
		},
		{
			name:        "unparseable date",
			req:         CreateShootRequest{ClientID: "client-1", Type: domain.TypeVIP, ScheduledDate: "next friday"},
			expectedErr: domain.ErrInvalidScheduleDate,
		},
		{
			name:        "date in the past",
			req:         CreateShootRequest{ClientID: "client-1", Type: domain.TypeVIP, ScheduledDate: "2024-05-31"},
			expectedErr: validation.ErrPastDate,
		},
		{
			name: "client missing",
			req:  CreateShootRequest{ClientID: "nope", Type: domain.TypeVIP, ScheduledDate: "2024-06-14T22:00:00Z"},
			on: func(f *shootsFields) {
				f.clientsDal.On("Get", ctx, "nope").Return(nil, clients.ErrClientNotFound)
			},
			expectedErr: clients.ErrClientNotFound,
		},
		{
			name: "vip shoot gets vip defaults",
			req:  CreateShootRequest{ClientID: "client-1", Type: domain.TypeVIP, ScheduledDate: "2024-06-14T22:00:00Z", Location: "Club Space"},
			on: func(f *shootsFields) {
				f.clientsDal.On("Get", ctx, "client-1").Return(&clients.Client{ID: "client-1"}, nil)
				f.shootsDal.On("Create", ctx, &domain.Shoot{
					ClientID:         "client-1",
					Type:             domain.TypeVIP,
					Status:           domain.StatusScheduled,
					ScheduledDate:    scheduled,
					Location:         "Club Space",
					Duration:         480,
					TotalImages:      100,
					DeliveryDeadline: scheduled.AddDate(0, 0, 5),
				}).Return("shoot-1", nil)
			},
			want: "shoot-1",
		},
		{
			name: "explicit values win over defaults",
			req: CreateShootRequest{
				ClientID:         "client-1",
				Type:             domain.TypePilot,
				ScheduledDate:    "2024-06-14",
				Duration:         90,
				DeliveryDeadline: "2024-06-16",
			},
			on: func(f *shootsFields) {
				f.clientsDal.On("Get", ctx, "client-1").Return(&clients.Client{ID: "client-1"}, nil)
				f.shootsDal.On("Create", ctx, mock.MatchedBy(func(s *domain.Shoot) bool {
					return s.Duration == 90 &&
						s.TotalImages == 10 &&
						s.DeliveryDeadline.Equal(time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC))
				})).Return("shoot-2", nil)
			},
			want: "shoot-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newTestService(t)
			if tt.on != nil {
				tt.on(f)
			}

			got, err := s.CreateShoot(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShootsService_UpdateShoot(t *testing.T) {
	ctx := context.Background()
	delivered := domain.StatusDelivered
	bogus := domain.ShootStatus("done")

	t.Run("only present fields are written", func(t *testing.T) {
		s, f := newTestService(t)

		f.shootsDal.On("Update", ctx, "shoot-1", []firestore.Update{
			{Path: "status", Value: delivered},
			{Path: "deliveredImages", Value: 100},
		}).Return(&domain.Shoot{ID: "shoot-1", Status: delivered, CompletedAt: &testNow}, nil)

		got, err := s.UpdateShoot(ctx, "shoot-1", UpdateShootRequest{Status: &delivered, DeliveredImages: common.Int(100)})
		assert.NoError(t, err)
		assert.Equal(t, delivered, got.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.UpdateShoot(ctx, "shoot-1", UpdateShootRequest{Status: &bogus})
		assert.Equal(t, domain.ErrInvalidStatus, err)
	})

	t.Run("invalid date", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.UpdateShoot(ctx, "shoot-1", UpdateShootRequest{ScheduledDate: common.String("soon")})
		assert.Equal(t, domain.ErrInvalidScheduleDate, err)
	})
}

func TestShootsService_ListShoots(t *testing.T) {
	ctx := context.Background()
	s, f := newTestService(t)

	f.shootsDal.On("List", ctx, domain.ListFilter{ClientID: "client-1", From: &testNow, Limit: defaultListLimit}).
		Return([]*domain.Shoot{}, nil)

	got, err := s.ListShoots(ctx, ListShootsRequest{ClientID: "client-1", Upcoming: true})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(got))
}

func TestShootsService_CancelShoot(t *testing.T) {
	ctx := context.Background()
	s, f := newTestService(t)

	f.shootsDal.On("Update", ctx, "missing", []firestore.Update{{Path: "status", Value: domain.StatusCancelled}}).
		Return(nil, domain.ErrShootNotFound)

	assert.Equal(t, domain.ErrShootNotFound, s.CancelShoot(ctx, "missing"))
}
