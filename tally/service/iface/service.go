//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/tally/domain"
)

type TallyIface interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.WebhookResult, error)
}
