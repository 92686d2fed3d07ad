package dal

import (
	"context"
	"math"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gettupp/backoffice/clients/domain"
	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
	leads "github.com/gettupp/backoffice/leads/domain"
	payments "github.com/gettupp/backoffice/payments/domain"
)

type ClientsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

func NewClientsFirestore(ctx context.Context, projectID string) (*ClientsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewClientsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewClientsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ClientsFirestore {
	return &ClientsFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *ClientsFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.ClientsCollection)
}

func (d *ClientsFirestore) GetRef(ctx context.Context, clientID string) *firestore.DocumentRef {
	return d.collection(ctx).Doc(clientID)
}

func (d *ClientsFirestore) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	if clientID == "" {
		return nil, domain.ErrClientNotFound
	}

	docSnap, err := d.GetRef(ctx, clientID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	return fromSnapshot(docSnap)
}

func (d *ClientsFirestore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Client, error) {
	query := d.collection(ctx).OrderBy("createdAt", firestore.Desc)

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if filter.Tier != "" {
		query = query.Where("tier", "==", filter.Tier)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return d.getAll(ctx, query)
}

// FindByStripeCustomerID returns the client linked to a Stripe customer.
func (d *ClientsFirestore) FindByStripeCustomerID(ctx context.Context, customerID string) (*domain.Client, error) {
	if customerID == "" {
		return nil, domain.ErrClientNotFound
	}

	clients, err := d.getAll(ctx, d.collection(ctx).Where("stripeCustomerId", "==", customerID).Limit(1))
	if err != nil {
		return nil, err
	}

	if len(clients) == 0 {
		return nil, domain.ErrClientNotFound
	}

	return clients[0], nil
}

func (d *ClientsFirestore) Create(ctx context.Context, client *domain.Client) (string, error) {
	now := d.timeFunc()
	client.CreatedAt = now
	client.UpdatedAt = now

	ref, _, err := d.collection(ctx).Add(ctx, client)
	if err != nil {
		return "", err
	}

	client.ID = ref.ID

	return ref.ID, nil
}

// CreateFromLead creates the client and marks the lead converted in one transaction.
// Neither write happens when the lead is missing or was already converted.
func (d *ClientsFirestore) CreateFromLead(ctx context.Context, client *domain.Client, leadID string) (string, error) {
	fs := d.firestoreClientFun(ctx)
	leadRef := fs.Collection(common.LeadsCollection).Doc(leadID)
	clientRef := d.collection(ctx).NewDoc()

	now := d.timeFunc()
	client.LeadID = leadID
	client.ConvertedAt = &now
	client.CreatedAt = now
	client.UpdatedAt = now

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		leadSnap, err := tx.Get(leadRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return leads.ErrLeadNotFound
			}

			return err
		}

		if convertedTo, err := leadSnap.DataAt("convertedToClientId"); err == nil && convertedTo != nil && convertedTo != "" {
			return leads.ErrLeadAlreadyConverted
		}

		if err := tx.Create(clientRef, client); err != nil {
			return err
		}

		return tx.Update(leadRef, []firestore.Update{
			{Path: "status", Value: leads.LeadStatusConverted},
			{Path: "convertedToClientId", Value: clientRef.ID},
			{Path: "updatedAt", Value: now},
		})
	})
	if err != nil {
		return "", err
	}

	client.ID = clientRef.ID

	return clientRef.ID, nil
}

func (d *ClientsFirestore) Update(ctx context.Context, clientID string, updates []firestore.Update) (*domain.Client, error) {
	updates = append(updates, firestore.Update{
		Path:  "updatedAt",
		Value: d.timeFunc(),
	})

	docRef := d.GetRef(ctx, clientID)

	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	return fromSnapshot(docSnap)
}

// Settle stores the payment under paymentID and applies its effect on the client
// in one transaction. A payment already stored under paymentID was settled by an
// earlier attempt: nothing is written and settled is false.
func (d *ClientsFirestore) Settle(ctx context.Context, clientID, paymentID string, payment *payments.Payment, effect domain.PaymentEffect) (bool, error) {
	fs := d.firestoreClientFun(ctx)
	paymentRef := fs.Collection(common.PaymentsCollection).Doc(paymentID)
	clientRef := d.GetRef(ctx, clientID)

	var settled bool

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		settled = false

		if _, err := tx.Get(paymentRef); err == nil {
			return nil
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		clientSnap, err := tx.Get(clientRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrClientNotFound
			}

			return err
		}

		var client domain.Client
		if err := clientSnap.DataTo(&client); err != nil {
			return err
		}

		now := d.timeFunc()
		payment.ClientID = clientID
		payment.CreatedAt = now
		payment.UpdatedAt = now

		updates := []firestore.Update{
			{Path: "updatedAt", Value: now},
		}

		if effect.AmountPaid != 0 {
			updates = append(updates, firestore.Update{Path: "amountPaid", Value: math.Max(0, client.AmountPaid+effect.AmountPaid)})
		}

		if effect.Note != "" {
			updates = append(updates, firestore.Update{Path: "notes", Value: domain.AppendNote(client.Notes, effect.Note)})
		}

		if err := tx.Create(paymentRef, payment); err != nil {
			return err
		}

		settled = true

		return tx.Update(clientRef, updates)
	})
	if err != nil {
		return false, err
	}

	if settled {
		payment.ID = paymentID
	}

	return settled, nil
}

func (d *ClientsFirestore) getAll(ctx context.Context, query firestore.Query) ([]*domain.Client, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	clients := make([]*domain.Client, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		client, err := fromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	return clients, nil
}

func fromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Client, error) {
	var client domain.Client
	if err := docSnap.DataTo(&client); err != nil {
		return nil, err
	}

	client.ID = docSnap.Ref.ID

	return &client, nil
}
