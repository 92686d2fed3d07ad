//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/gettupp/backoffice/cms/domain"
)

type Content interface {
	GetHero(ctx context.Context) (*domain.Hero, error)
	GetPricing(ctx context.Context) ([]domain.PricingTier, error)
	GetPortfolio(ctx context.Context) ([]domain.PortfolioItem, error)
	Save(ctx context.Context, content *domain.SiteContent) error
}
