package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/payments/domain"
)

type PaymentsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

func NewPaymentsFirestore(ctx context.Context, projectID string) (*PaymentsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewPaymentsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewPaymentsFirestoreWithClient(fun connection.FirestoreFromContextFun) *PaymentsFirestore {
	return &PaymentsFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *PaymentsFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.PaymentsCollection)
}

func (d *PaymentsFirestore) Get(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, domain.ErrPaymentNotFound
	}

	docSnap, err := d.collection(ctx).Doc(paymentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	return fromSnapshot(docSnap)
}

func (d *PaymentsFirestore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Payment, error) {
	query := d.collection(ctx).OrderBy("createdAt", firestore.Desc)

	if filter.ClientID != "" {
		query = query.Where("clientId", "==", filter.ClientID)
	}

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if filter.Type != "" {
		query = query.Where("type", "==", filter.Type)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return d.getAll(ctx, query)
}

// FindByCharge looks a charge up by its id, then by its payment intent.
func (d *PaymentsFirestore) FindByCharge(ctx context.Context, chargeID, paymentIntentID string) (*domain.Payment, error) {
	lookups := []struct {
		path  string
		value string
	}{
		{"stripeChargeId", chargeID},
		{"stripePaymentIntentId", paymentIntentID},
	}

	for _, lookup := range lookups {
		if lookup.value == "" {
			continue
		}

		query := d.collection(ctx).
			Where(lookup.path, "==", lookup.value).
			Where("type", "in", []domain.PaymentType{domain.TypeOneTime, domain.TypeSubscription}).
			Limit(1)

		payments, err := d.getAll(ctx, query)
		if err != nil {
			return nil, err
		}

		if len(payments) > 0 {
			return payments[0], nil
		}
	}

	return nil, domain.ErrPaymentNotFound
}

// CreateWithID stores the payment under a caller chosen id.
func (d *PaymentsFirestore) CreateWithID(ctx context.Context, paymentID string, payment *domain.Payment) error {
	now := d.timeFunc()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if _, err := d.collection(ctx).Doc(paymentID).Create(ctx, payment); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domain.ErrPaymentExists
		}

		return err
	}

	payment.ID = paymentID

	return nil
}

func (d *PaymentsFirestore) Update(ctx context.Context, paymentID string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{
		Path:  "updatedAt",
		Value: d.timeFunc(),
	})

	if _, err := d.collection(ctx).Doc(paymentID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrPaymentNotFound
		}

		return err
	}

	return nil
}

func (d *PaymentsFirestore) getAll(ctx context.Context, query firestore.Query) ([]*domain.Payment, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	payments := make([]*domain.Payment, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		payment, err := fromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		payments = append(payments, payment)
	}

	return payments, nil
}

func fromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Payment, error) {
	var payment domain.Payment
	if err := docSnap.DataTo(&payment); err != nil {
		return nil, err
	}

	payment.ID = docSnap.Ref.ID

	return &payment, nil
}
