package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/firebase"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/knowledge/domain"
)

type KnowledgeFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	timeFunc           func() time.Time
}

func NewKnowledgeFirestore(ctx context.Context, projectID string) (*KnowledgeFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewKnowledgeFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewKnowledgeFirestoreWithClient(fun connection.FirestoreFromContextFun) *KnowledgeFirestore {
	return &KnowledgeFirestore{
		firestoreClientFun: fun,
		timeFunc:           time.Now,
	}
}

func (d *KnowledgeFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(common.KnowledgeCollection)
}

func (d *KnowledgeFirestore) Get(ctx context.Context, nodeID string) (*domain.Node, error) {
	if nodeID == "" {
		return nil, domain.ErrNodeNotFound
	}

	docSnap, err := d.collection(ctx).Doc(nodeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNodeNotFound
		}

		return nil, err
	}

	return fromSnapshot(docSnap)
}

// List returns nodes by descending relevance.
func (d *KnowledgeFirestore) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Node, error) {
	query := d.collection(ctx).OrderBy("relevance_score", firestore.Desc)

	if filter.DomainArea != "" {
		query = query.Where("domain_area", "==", filter.DomainArea)
	}

	if filter.KnowledgeType != "" {
		query = query.Where("knowledge_type", "==", filter.KnowledgeType)
	}

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return d.getAll(ctx, query)
}

// ListAll reads the whole collection in document order.
func (d *KnowledgeFirestore) ListAll(ctx context.Context) ([]*domain.Node, error) {
	return d.getAll(ctx, d.collection(ctx).Query)
}

func (d *KnowledgeFirestore) Create(ctx context.Context, node *domain.Node) (string, error) {
	now := d.timeFunc()
	node.CreatedAt = now
	node.UpdatedAt = now

	ref, _, err := d.collection(ctx).Add(ctx, node)
	if err != nil {
		return "", err
	}

	node.ID = ref.ID

	return ref.ID, nil
}

// Update applies the updates, bumps the version and returns the stored node.
func (d *KnowledgeFirestore) Update(ctx context.Context, nodeID string, updates []firestore.Update) (*domain.Node, error) {
	if nodeID == "" {
		return nil, domain.ErrNodeNotFound
	}

	updates = append(updates,
		firestore.Update{Path: "version", Value: firestore.Increment(1)},
		firestore.Update{Path: "updated_at", Value: d.timeFunc()},
	)

	docRef := d.collection(ctx).Doc(nodeID)

	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNodeNotFound
		}

		return nil, err
	}

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	return fromSnapshot(docSnap)
}

func (d *KnowledgeFirestore) Delete(ctx context.Context, nodeID string) error {
	if nodeID == "" {
		return domain.ErrNodeNotFound
	}

	_, err := d.collection(ctx).Doc(nodeID).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return domain.ErrNodeNotFound
	}

	return err
}

// ExistingIDs returns the ids of every stored node.
func (d *KnowledgeFirestore) ExistingIDs(ctx context.Context) (map[string]bool, error) {
	refs, err := d.collection(ctx).DocumentRefs(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(refs))
	for _, ref := range refs {
		ids[ref.ID] = true
	}

	return ids, nil
}

// Import writes the nodes under their own ids, batchSize writes per commit.
// It returns how many batches were committed; failed batches are reported together.
func (d *KnowledgeFirestore) Import(ctx context.Context, nodes []*domain.Node, batchSize int) (int, error) {
	fs := d.firestoreClientFun(ctx)
	wb := firebase.NewAutomaticWriteBatch(fs, batchSize)
	now := d.timeFunc()

	for _, node := range nodes {
		if node.CreatedAt.IsZero() {
			node.CreatedAt = now
		}

		node.UpdatedAt = now

		wb.Set(fs.Collection(common.KnowledgeCollection).Doc(node.ID), node)
	}

	return wb.Commit(ctx)
}

func (d *KnowledgeFirestore) getAll(ctx context.Context, query firestore.Query) ([]*domain.Node, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	nodes := make([]*domain.Node, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		node, err := fromSnapshot(docSnap)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func fromSnapshot(docSnap *firestore.DocumentSnapshot) (*domain.Node, error) {
	var node domain.Node
	if err := docSnap.DataTo(&node); err != nil {
		return nil, err
	}

	node.ID = docSnap.Ref.ID

	return &node, nil
}
