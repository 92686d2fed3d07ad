package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/gettupp/backoffice/stripe/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

// SetupProducts creates a product and price for every tier: pilot is a one-time
// price, the others bill monthly.
func (s *StripeService) SetupProducts(ctx context.Context) ([]*domain.SetupPrice, error) {
	l := s.loggerProvider(ctx)

	res := make([]*domain.SetupPrice, 0, len(tiers.Tiers))

	for _, tier := range tiers.Tiers {
		product := tiers.Product(tier)

		productParams := &stripe.ProductParams{
			Name: stripe.String(product.Name()),
		}
		productParams.AddMetadata(domain.MetadataTier, string(tier))
		productParams.SetIdempotencyKey("product-" + string(tier))

		p, err := s.gateway.NewProduct(productParams)
		if err != nil {
			return nil, err
		}

		priceParams := &stripe.PriceParams{
			Product:    stripe.String(p.ID),
			UnitAmount: stripe.Int64(product.FallbackAmount()),
			Currency:   stripe.String(defaultCurrency),
		}
		priceParams.AddMetadata(domain.MetadataTier, string(tier))

		if tier.Recurring() {
			priceParams.Recurring = &stripe.PriceRecurringParams{
				Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
			}
		}

		price, err := s.gateway.NewPrice(priceParams)
		if err != nil {
			return nil, err
		}

		l.Infof("tier %s: product %s price %s", tier, p.ID, price.ID)

		res = append(res, &domain.SetupPrice{
			Tier:      string(tier),
			ProductID: p.ID,
			PriceID:   price.ID,
		})
	}

	return res, nil
}
