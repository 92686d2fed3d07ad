package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/logger"
)

var (
	ErrFirestoreInitialization = errors.New("firestore initialization error")
)

type FirestoreClient struct {
	fs *firestore.Client
}

func NewFirestore(ctx context.Context, log *logger.Logging) (*FirestoreClient, error) {
	l := log.Logger(ctx)

	fs, err := firestore.NewClient(ctx, common.ProjectID, common.ClientOptions()...)
	if err != nil {
		l.Errorf("%s: %s", ErrFirestoreInitialization, err)
		return nil, ErrFirestoreInitialization
	}

	return &FirestoreClient{
		fs,
	}, nil
}
