package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/gettupp/backoffice/cms/dal"
	"github.com/gettupp/backoffice/cms/dal/iface"
	"github.com/gettupp/backoffice/cms/domain"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/logger"
)

type ContentService struct {
	loggerProvider logger.Provider
	contentDal     iface.Content
}

func NewContentService(log logger.Provider, conn *connection.Connection) *ContentService {
	return NewContentServiceWithDal(log, dal.NewContentFirestoreWithClient(conn.Firestore))
}

func NewContentServiceWithDal(log logger.Provider, contentDal iface.Content) *ContentService {
	return &ContentService{
		loggerProvider: log,
		contentDal:     contentDal,
	}
}

// Load reads the hero, pricing and portfolio documents concurrently.
// A missing document falls back to the built-in content; any other failure fails the load.
func (s *ContentService) Load(ctx context.Context) (*domain.SiteContent, error) {
	var (
		hero      *domain.Hero
		pricing   []domain.PricingTier
		portfolio []domain.PortfolioItem
	)

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() (err error) {
		hero, err = s.contentDal.GetHero(ctx)
		if errors.Is(err, domain.ErrContentNotFound) {
			h := domain.DefaultHero()
			hero, err = &h, nil
		}

		return
	})

	errg.Go(func() (err error) {
		pricing, err = s.contentDal.GetPricing(ctx)
		if errors.Is(err, domain.ErrContentNotFound) || (err == nil && len(pricing) == 0) {
			pricing, err = domain.DefaultPricing(), nil
		}

		return
	})

	errg.Go(func() (err error) {
		portfolio, err = s.contentDal.GetPortfolio(ctx)
		if errors.Is(err, domain.ErrContentNotFound) || (err == nil && len(portfolio) == 0) {
			portfolio, err = domain.DefaultPortfolio(), nil
		}

		return
	})

	if err := errg.Wait(); err != nil {
		return nil, err
	}

	return &domain.SiteContent{
		Hero:      *hero,
		Pricing:   pricing,
		Portfolio: portfolio,
	}, nil
}

// Seed writes the built-in content over the stored documents.
func (s *ContentService) Seed(ctx context.Context) (*domain.SiteContent, error) {
	content := domain.DefaultContent()

	if err := s.contentDal.Save(ctx, content); err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Info("site content seeded")

	return content, nil
}
