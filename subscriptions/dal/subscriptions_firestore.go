package dal

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/subscriptions/domain"
)

var ErrSubscriptionNotFound = errors.New("Subscription not found")

type SubscriptionsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

func NewSubscriptionsFirestore(ctx context.Context, projectID string) (*SubscriptionsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewSubscriptionsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewSubscriptionsFirestoreWithClient(fun connection.FirestoreFromContextFun) *SubscriptionsFirestore {
	return &SubscriptionsFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *SubscriptionsFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.SubscriptionsCollection)
}

func (d *SubscriptionsFirestore) Get(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	docSnap, err := d.collection(ctx).Doc(subscriptionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrSubscriptionNotFound
		}

		return nil, err
	}

	return fromSnapshot(docSnap)
}

func (d *SubscriptionsFirestore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Subscription, error) {
	query := d.collection(ctx).OrderBy("updatedAt", firestore.Desc)

	if filter.ClientID != "" {
		query = query.Where("clientId", "==", filter.ClientID)
	}

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	subscriptions := make([]*domain.Subscription, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		subscription, err := fromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, nil
}

// Upsert writes the whole subscription under its Stripe id.
func (d *SubscriptionsFirestore) Upsert(ctx context.Context, subscription *domain.Subscription) error {
	subscription.UpdatedAt = d.timeFunc()

	_, err := d.collection(ctx).Doc(subscription.ID).Set(ctx, subscription)

	return err
}

func fromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Subscription, error) {
	var subscription domain.Subscription
	if err := docSnap.DataTo(&subscription); err != nil {
		return nil, err
	}

	subscription.ID = docSnap.Ref.ID

	return &subscription, nil
}
