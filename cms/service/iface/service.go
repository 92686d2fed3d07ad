//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"github.com/gettupp/backoffice/cms/domain"
)

type ContentIface interface {
	Load(ctx context.Context) (*domain.SiteContent, error)
	Seed(ctx context.Context) (*domain.SiteContent, error)
}
