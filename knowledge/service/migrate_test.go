package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/gettupp/backoffice/knowledge/domain"
)

const migrationFile = `[
	{"id": "kb-1", "domain_area": "offers", "sub_topic": "Pilot", "knowledge_type": "offer",
	 "content": "One night, one venue", "relevance_score": 0.8, "timestamp_added": "2025-10-01T08:00:00Z", "tags": "pilot"},
	{"id": 42, "domain_area": "Operations", "sub_topic": "Turnaround", "knowledge_type": "policy",
	 "content": "72 hour delivery", "legacy_id": null, "status": "draft", "version": 3},
	{"id": "kb-existing", "domain_area": "sales", "sub_topic": "Script", "knowledge_type": "script", "content": "Hey"},
	{"id": "kb-bad", "domain_area": "nightlife", "sub_topic": "x", "knowledge_type": "fact", "content": "y"},
	{"domain_area": "sales", "sub_topic": "No id", "knowledge_type": "fact", "content": "z"},
	{"id": "kb-1", "domain_area": "offers", "sub_topic": "Pilot again", "knowledge_type": "offer", "content": "dup"}
]`

func TestKnowledgeService_Migrate(t *testing.T) {
	ctx := context.Background()

	t.Run("normalises, skips and reports", func(t *testing.T) {
		s, f := newKnowledgeService(t)

		f.knowledgeDal.On("ExistingIDs", ctx).Return(map[string]bool{"kb-existing": true}, nil)
		f.knowledgeDal.On("Import", ctx, mock.MatchedBy(func(nodes []*domain.Node) bool {
			if len(nodes) != 2 {
				return false
			}

			first, second := nodes[0], nodes[1]

			return first.ID == "kb-1" &&
				first.RelevanceScore == 0.8 &&
				first.Status == domain.StatusActive &&
				first.TimestampAdded.Equal(time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)) &&
				first.SourceReference == migrationSource &&
				second.ID == "42" &&
				second.DomainArea == domain.DomainOperations &&
				second.Status == domain.StatusDraft &&
				second.Version == 3 &&
				second.RelevanceScore == domain.DefaultRelevance &&
				second.TimestampAdded.Equal(knowledgeNow)
		}), 100).Return(1, nil)

		res, err := s.Migrate(ctx, strings.NewReader(migrationFile), 100, false)
		assert.NoError(t, err)

		assert.Equal(t, 6, res.Total)
		assert.Equal(t, 2, res.Migrated)
		assert.Equal(t, 2, res.Skipped)
		assert.Equal(t, 2, res.Invalid)
		assert.Equal(t, 1, res.Batches)

		var merr *multierror.Error
		assert.That(t, errors.As(res.Errors, &merr))
		assert.Equal(t, 2, len(merr.Errors))
		assert.That(t, errors.Is(res.Errors, domain.ErrInvalidDomain))
		assert.That(t, errors.Is(res.Errors, domain.ErrMissingNodeID))
	})

	t.Run("dry run never writes", func(t *testing.T) {
		s, f := newKnowledgeService(t)
		f.knowledgeDal.On("ExistingIDs", ctx).Return(map[string]bool{}, nil)

		res, err := s.Migrate(ctx, strings.NewReader(migrationFile), 0, true)
		assert.NoError(t, err)
		assert.That(t, res.DryRun)
		assert.Equal(t, 3, res.Migrated)
		assert.Equal(t, 0, res.Batches)
	})

	t.Run("malformed file", func(t *testing.T) {
		s, _ := newKnowledgeService(t)

		_, err := s.Migrate(ctx, strings.NewReader(`{"id": "not an array"}`), 0, false)
		assert.Error(t, err)
	})

	t.Run("import failure", func(t *testing.T) {
		s, f := newKnowledgeService(t)
		testError := errors.New("batch commit failed")

		f.knowledgeDal.On("ExistingIDs", ctx).Return(map[string]bool{}, nil)
		f.knowledgeDal.On("Import", ctx, mock.Anything, DefaultMigrationBatchSize).Return(0, testError)

		_, err := s.Migrate(ctx, strings.NewReader(migrationFile), 0, false)
		assert.Equal(t, testError, err)
	})
}
