package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/gettupp/backoffice/cms/dal/mocks"
	"github.com/gettupp/backoffice/cms/domain"
	"github.com/gettupp/backoffice/logger"
)

func TestContentService_Load(t *testing.T) {
	testError := errors.New("deadline exceeded")

	hero := &domain.Hero{Headline: "PACK THE ROOM"}
	pricing := []domain.PricingTier{{Name: "Friday Nights", Price: 445}}
	portfolio := []domain.PortfolioItem{{Title: "Club Nova"}}

	tests := []struct {
		name        string
		on          func(*mocks.Content)
		want        *domain.SiteContent
		expectedErr error
	}{
		{
			name: "stored content",
			on: func(m *mocks.Content) {
				m.On("GetHero", mock.Anything).Return(hero, nil)
				m.On("GetPricing", mock.Anything).Return(pricing, nil)
				m.On("GetPortfolio", mock.Anything).Return(portfolio, nil)
			},
			want: &domain.SiteContent{Hero: *hero, Pricing: pricing, Portfolio: portfolio},
		},
		{
			name: "missing documents fall back to defaults",
			on: func(m *mocks.Content) {
				m.On("GetHero", mock.Anything).Return(nil, domain.ErrContentNotFound)
				m.On("GetPricing", mock.Anything).Return(nil, domain.ErrContentNotFound)
				m.On("GetPortfolio", mock.Anything).Return([]domain.PortfolioItem{}, nil)
			},
			want: domain.DefaultContent(),
		},
		{
			name: "any read failure fails the load",
			on: func(m *mocks.Content) {
				m.On("GetHero", mock.Anything).Return(hero, nil).Maybe()
				m.On("GetPricing", mock.Anything).Return(nil, testError)
				m.On("GetPortfolio", mock.Anything).Return(portfolio, nil).Maybe()
			},
			expectedErr: testError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewContent(t)
			tt.on(m)

			s := NewContentServiceWithDal(logger.FromContext, m)

			got, err := s.Load(context.Background())
			if tt.expectedErr != nil {
				assert.That(t, errors.Is(err, tt.expectedErr))
				return
			}

			assert.NoError(t, err)
			assert.DeepEqual(t, tt.want, got)
		})
	}
}

func TestContentService_Seed(t *testing.T) {
	m := mocks.NewContent(t)
	m.On("Save", mock.Anything, domain.DefaultContent()).Return(nil).Once()

	s := NewContentServiceWithDal(logger.FromContext, m)

	got, err := s.Seed(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "OWN THE NIGHT", got.Hero.Headline)
}
