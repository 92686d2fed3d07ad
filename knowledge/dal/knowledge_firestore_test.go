package dal

import (
	"context"
	"fmt"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gettupp/backoffice/common"
	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/knowledge/domain"
)

func newTestKnowledgeFirestore(t *testing.T) *KnowledgeFirestore {
	testtools.SkipWithoutEmulator(t)

	d, err := NewKnowledgeFirestore(context.Background(), common.TestProjectID)
	require.NoError(t, err)

	return d
}

func TestKnowledgeFirestore_CRUD(t *testing.T) {
	ctx := context.Background()
	d := newTestKnowledgeFirestore(t)

	id, err := d.Create(ctx, &domain.Node{
		DomainArea:     domain.DomainOperations,
		SubTopic:       "Turnaround",
		KnowledgeType:  "policy",
		Content:        "Photos are delivered within 48 hours.",
		RelevanceScore: 0.9,
		Status:         domain.StatusActive,
		Version:        1,
	})
	require.NoError(t, err)

	node, err := d.Update(ctx, id, []firestore.Update{{Path: "content", Value: "Photos are delivered within 24 hours."}})
	require.NoError(t, err)
	assert.Equal(t, 2, node.Version)
	assert.Equal(t, "Photos are delivered within 24 hours.", node.Content)

	require.NoError(t, d.Delete(ctx, id))

	_, err = d.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)

	assert.ErrorIs(t, d.Delete(ctx, id), domain.ErrNodeNotFound)

	_, err = d.Update(ctx, id, []firestore.Update{{Path: "content", Value: "gone"}})
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestKnowledgeFirestore_Import(t *testing.T) {
	ctx := context.Background()
	d := newTestKnowledgeFirestore(t)

	nodes := make([]*domain.Node, 0, 5)
	for i := 0; i < 5; i++ {
		nodes = append(nodes, &domain.Node{
			ID:            fmt.Sprintf("import-test-%d", i),
			DomainArea:    domain.DomainSales,
			SubTopic:      "Script",
			KnowledgeType: "script",
			Content:       fmt.Sprintf("line %d", i),
			Status:        domain.StatusActive,
			Version:       1,
		})
	}

	batches, err := d.Import(ctx, nodes, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, batches)

	ids, err := d.ExistingIDs(ctx)
	require.NoError(t, err)

	for _, n := range nodes {
		assert.True(t, ids[n.ID])
	}

	sales, err := d.List(ctx, domain.ListFilter{DomainArea: domain.DomainSales, KnowledgeType: "script"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(sales), 5)
}
