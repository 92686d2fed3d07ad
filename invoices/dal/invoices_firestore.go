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
	"github.com/gettupp/backoffice/invoices/domain"
)

type InvoicesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

func NewInvoicesFirestore(ctx context.Context, projectID string) (*InvoicesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewInvoicesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewInvoicesFirestoreWithClient(fun connection.FirestoreFromContextFun) *InvoicesFirestore {
	return &InvoicesFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *InvoicesFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.InvoicesCollection)
}

func (d *InvoicesFirestore) Get(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if invoiceID == "" {
		return nil, domain.ErrInvoiceNotFound
	}

	docSnap, err := d.collection(ctx).Doc(invoiceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return fromSnapshot(docSnap)
}

func (d *InvoicesFirestore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Invoice, error) {
	query := d.collection(ctx).OrderBy("createdAt", firestore.Desc)

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if filter.ClientID != "" {
		query = query.Where("clientId", "==", filter.ClientID)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return d.getAll(ctx, query)
}

func (d *InvoicesFirestore) FindByStripeSessionID(ctx context.Context, sessionID string) (*domain.Invoice, error) {
	invoices, err := d.getAll(ctx, d.collection(ctx).Where("stripeSessionId", "==", sessionID).Limit(1))
	if err != nil {
		return nil, err
	}

	if len(invoices) == 0 {
		return nil, domain.ErrInvoiceNotFound
	}

	return invoices[0], nil
}

func (d *InvoicesFirestore) Create(ctx context.Context, invoice *domain.Invoice) (string, error) {
	now := d.timeFunc()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	ref, _, err := d.collection(ctx).Add(ctx, invoice)
	if err != nil {
		return "", err
	}

	invoice.ID = ref.ID

	return ref.ID, nil
}

func (d *InvoicesFirestore) CreateWithID(ctx context.Context, invoiceID string, invoice *domain.Invoice) error {
	now := d.timeFunc()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	if _, err := d.collection(ctx).Doc(invoiceID).Create(ctx, invoice); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domain.ErrInvoiceExists
		}

		return err
	}

	invoice.ID = invoiceID

	return nil
}

func (d *InvoicesFirestore) Update(ctx context.Context, invoiceID string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{
		Path:  "updatedAt",
		Value: d.timeFunc(),
	})

	if _, err := d.collection(ctx).Doc(invoiceID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrInvoiceNotFound
		}

		return err
	}

	return nil
}

func (d *InvoicesFirestore) getAll(ctx context.Context, query firestore.Query) ([]*domain.Invoice, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	invoices := make([]*domain.Invoice, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		invoice, err := fromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, invoice)
	}

	return invoices, nil
}

func fromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := docSnap.DataTo(&invoice); err != nil {
		return nil, err
	}

	invoice.ID = docSnap.Ref.ID

	return &invoice, nil
}
