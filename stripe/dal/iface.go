//go:generate mockery --output=./mocks --all
package dal

import (
	"context"

	"github.com/gettupp/backoffice/stripe/domain"
)

type IStripeFirestore interface {
	ClaimEvent(ctx context.Context, event *domain.ProcessedEvent) error
	ReleaseEvent(ctx context.Context, eventID string) error
	SaveDispute(ctx context.Context, dispute *domain.Dispute) error
}
