package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/stripe/domain"
)

// StripeFirestore is used to interact with stripe data stored on Firestore.
type StripeFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

// NewStripeFirestore returns a new StripeFirestore instance with given project id.
func NewStripeFirestore(ctx context.Context, projectID string) (*StripeFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	stripeFirestore := NewStripeFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		})

	return stripeFirestore, nil
}

// NewStripeFirestoreWithClient returns a new StripeFirestore using given client.
func NewStripeFirestoreWithClient(fun connection.FirestoreFromContextFun) *StripeFirestore {
	return &StripeFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *StripeFirestore) eventRef(ctx context.Context, eventID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(common.StripeEventsCollection).Doc(eventID)
}

// ClaimEvent records the event in the ledger. Create fails when the document
// exists, so only one delivery of an event can claim it.
func (d *StripeFirestore) ClaimEvent(ctx context.Context, event *domain.ProcessedEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = d.timeFunc()
	}

	if _, err := d.eventRef(ctx, event.ID).Create(ctx, event); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrEventAlreadyProcessed
		}

		return err
	}

	return nil
}

// ReleaseEvent removes a claim so the next delivery of the event is processed again.
func (d *StripeFirestore) ReleaseEvent(ctx context.Context, eventID string) error {
	_, err := d.eventRef(ctx, eventID).Delete(ctx)
	return err
}

// SaveDispute stores the dispute under its Stripe id.
func (d *StripeFirestore) SaveDispute(ctx context.Context, dispute *domain.Dispute) error {
	if dispute.CreatedAt.IsZero() {
		dispute.CreatedAt = d.timeFunc()
	}

	_, err := d.firestoreClientFun(ctx).Collection(common.DisputesCollection).Doc(dispute.ID).Set(ctx, dispute)

	return err
}
