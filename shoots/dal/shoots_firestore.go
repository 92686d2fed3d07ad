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
	"github.com/gettupp/backoffice/shoots/domain"
)

type ShootsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

func NewShootsFirestore(ctx context.Context, projectID string) (*ShootsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewShootsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewShootsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ShootsFirestore {
	return &ShootsFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *ShootsFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.ShootsCollection)
}

func (d *ShootsFirestore) Get(ctx context.Context, shootID string) (*domain.Shoot, error) {
	if shootID == "" {
		return nil, domain.ErrShootNotFound
	}

	docSnap, err := d.collection(ctx).Doc(shootID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrShootNotFound
		}

		return nil, err
	}

	return fromSnapshot(docSnap)
}

func (d *ShootsFirestore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Shoot, error) {
	query := d.collection(ctx).Query

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if filter.ClientID != "" {
		query = query.Where("clientId", "==", filter.ClientID)
	}

	if filter.From != nil {
		query = query.Where("scheduledDate", ">=", *filter.From)
	}

	query = query.OrderBy("scheduledDate", firestore.Asc)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	shoots := make([]*domain.Shoot, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		shoot, err := fromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		shoots = append(shoots, shoot)
	}

	return shoots, nil
}

func (d *ShootsFirestore) Create(ctx context.Context, shoot *domain.Shoot) (string, error) {
	now := d.timeFunc()
	shoot.CreatedAt = now
	shoot.UpdatedAt = now

	ref, _, err := d.collection(ctx).Add(ctx, shoot)
	if err != nil {
		return "", err
	}

	shoot.ID = ref.ID

	return ref.ID, nil
}

// Update applies the updates in a transaction. When they move the shoot to a
// finished status and it has never been finished before, completedAt is stamped.
func (d *ShootsFirestore) Update(ctx context.Context, shootID string, updates []firestore.Update) (*domain.Shoot, error) {
	fs := d.firestoreClientFun(ctx)
	docRef := d.collection(ctx).Doc(shootID)

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrShootNotFound
			}

			return err
		}

		current, err := fromSnapshot(docSnap)
		if err != nil {
			return err
		}

		now := d.timeFunc()
		txUpdates := append(append([]firestore.Update{}, updates...), firestore.Update{Path: "updatedAt", Value: now})

		if completes(current, updates) {
			txUpdates = append(txUpdates, firestore.Update{Path: "completedAt", Value: now})
		}

		return tx.Update(docRef, txUpdates)
	})
	if err != nil {
		return nil, err
	}

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	return fromSnapshot(docSnap)
}

// completes reports whether the updates finish a shoot that was never finished.
func completes(current *domain.Shoot, updates []firestore.Update) bool {
	newStatus, ok := statusUpdate(updates)

	return ok && newStatus.Finished() && current.CompletedAt == nil
}

func statusUpdate(updates []firestore.Update) (domain.ShootStatus, bool) {
	for _, u := range updates {
		if u.Path != "status" {
			continue
		}

		switch v := u.Value.(type) {
		case domain.ShootStatus:
			return v, true
		case string:
			return domain.ShootStatus(v), true
		}
	}

	return "", false
}

func fromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Shoot, error) {
	var shoot domain.Shoot
	if err := docSnap.DataTo(&shoot); err != nil {
		return nil, err
	}

	shoot.ID = docSnap.Ref.ID

	return &shoot, nil
}
