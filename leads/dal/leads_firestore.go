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
	"github.com/gettupp/backoffice/leads/domain"
)

type LeadsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

func NewLeadsFirestore(ctx context.Context, projectID string) (*LeadsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewLeadsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewLeadsFirestoreWithClient(fun connection.FirestoreFromContextFun) *LeadsFirestore {
	return &LeadsFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *LeadsFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.LeadsCollection)
}

func (d *LeadsFirestore) GetRef(ctx context.Context, leadID string) *firestore.DocumentRef {
	return d.collection(ctx).Doc(leadID)
}

func (d *LeadsFirestore) Get(ctx context.Context, leadID string) (*domain.Lead, error) {
	if leadID == "" {
		return nil, domain.ErrLeadNotFound
	}

	docSnap, err := d.GetRef(ctx, leadID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrLeadNotFound
		}

		return nil, err
	}

	return FromSnapshot(docSnap)
}

func (d *LeadsFirestore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Lead, error) {
	query := d.collection(ctx).OrderBy("createdAt", firestore.Desc)

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	leads := make([]*domain.Lead, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		lead, err := FromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		leads = append(leads, lead)
	}

	return leads, nil
}

func (d *LeadsFirestore) Create(ctx context.Context, lead *domain.Lead) (string, error) {
	now := d.timeFunc()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	ref, _, err := d.collection(ctx).Add(ctx, lead)
	if err != nil {
		return "", err
	}

	lead.ID = ref.ID

	return ref.ID, nil
}

func (d *LeadsFirestore) Update(ctx context.Context, leadID string, updates []firestore.Update) (*domain.Lead, error) {
	updates = append(updates, firestore.Update{
		Path:  "updatedAt",
		Value: d.timeFunc(),
	})

	docRef := d.GetRef(ctx, leadID)

	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrLeadNotFound
		}

		return nil, err
	}

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	return FromSnapshot(docSnap)
}

// FromSnapshot decodes a lead document.
func FromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Lead, error) {
	var lead domain.Lead
	if err := docSnap.DataTo(&lead); err != nil {
		return nil, err
	}

	lead.ID = docSnap.Ref.ID

	return &lead, nil
}
