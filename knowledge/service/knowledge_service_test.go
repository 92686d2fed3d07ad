package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/knowledge/cache"
	knowledgeMocks "github.com/gettupp/backoffice/knowledge/dal/mocks"
	"github.com/gettupp/backoffice/knowledge/domain"
	"github.com/gettupp/backoffice/logger"
)

var knowledgeNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

type knowledgeFields struct {
	knowledgeDal *knowledgeMocks.Knowledge
}

func newKnowledgeService(t *testing.T) (*KnowledgeService, *knowledgeFields) {
	f := &knowledgeFields{
		knowledgeDal: knowledgeMocks.NewKnowledge(t),
	}

	s := NewKnowledgeServiceWithDal(logger.FromContext, f.knowledgeDal, cache.New(time.Minute))
	s.timeFunc = func() time.Time {
		return knowledgeNow
	}

	return s, f
}

func TestKnowledgeService_ListNodes(t *testing.T) {
	ctx := context.Background()

	nodes := []*domain.Node{
		{ID: "n1", SubTopic: "Pilot package", Content: "Pilot shoot is $495", Tags: "pricing,pilot"},
		{ID: "n2", SubTopic: "Turnaround", Content: "Photos delivered within 72 hours", Tags: "delivery"},
	}

	tests := []struct {
		name        string
		req         ListNodesRequest
		on          func(*knowledgeFields)
		want        []*domain.Node
		expectedErr error
	}{
		{
			name:        "invalid domain",
			req:         ListNodesRequest{DomainArea: "nightlife"},
			expectedErr: domain.ErrInvalidDomain,
		},
		{
			name:        "invalid type",
			req:         ListNodesRequest{KnowledgeType: "rumour"},
			expectedErr: domain.ErrInvalidType,
		},
		{
			name:        "invalid status",
			req:         ListNodesRequest{Status: "deleted"},
			expectedErr: domain.ErrInvalidStatus,
		},
		{
			name: "filters are passed to the store with the default limit",
			req:  ListNodesRequest{DomainArea: "offers", Status: "active"},
			on: func(f *knowledgeFields) {
				f.knowledgeDal.On("List", ctx, domain.ListFilter{
					DomainArea: domain.DomainOffers,
					Status:     domain.StatusActive,
					Limit:      defaultListLimit,
				}).Return(nodes, nil)
			},
			want: nodes,
		},
		{
			name: "query narrows the result",
			req:  ListNodesRequest{Query: "PILOT", Limit: 20},
			on: func(f *knowledgeFields) {
				f.knowledgeDal.On("List", ctx, domain.ListFilter{Limit: 20}).Return(nodes, nil)
			},
			want: nodes[:1],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newKnowledgeService(t)
			if tt.on != nil {
				tt.on(f)
			}

			got, err := s.ListNodes(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}

			assert.NoError(t, err)
			assert.DeepEqual(t, tt.want, got)
		})
	}
}

func TestKnowledgeService_CreateNode(t *testing.T) {
	ctx := context.Background()
	testError := errors.New("test error")

	valid := CreateNodeRequest{
		DomainArea:    domain.DomainOffers,
		SubTopic:      "VIP package",
		KnowledgeType: "package",
		Content:       "VIP is $2,500 a month with four shoots",
		Tags:          "vip,pricing",
	}

	tests := []struct {
		name        string
		req         CreateNodeRequest
		on          func(*knowledgeFields)
		want        *domain.Node
		expectedErr error
	}{
		{
			name:        "missing content",
			req:         CreateNodeRequest{DomainArea: domain.DomainOffers, SubTopic: "VIP", KnowledgeType: "package"},
			expectedErr: domain.ErrMissingNodeFields,
		},
		{
			name:        "unknown domain",
			req:         CreateNodeRequest{DomainArea: "nightlife", SubTopic: "VIP", KnowledgeType: "package", Content: "x"},
			expectedErr: domain.ErrInvalidDomain,
		},
		{
			name:        "unknown type",
			req:         CreateNodeRequest{DomainArea: domain.DomainOffers, SubTopic: "VIP", KnowledgeType: "rumour", Content: "x"},
			expectedErr: domain.ErrInvalidType,
		},
		{
			name: "unknown status",
			req: CreateNodeRequest{
				DomainArea: domain.DomainOffers, SubTopic: "VIP", KnowledgeType: "package", Content: "x", Status: "deleted",
			},
			expectedErr: domain.ErrInvalidStatus,
		},
		{
			name: "defaults are applied",
			req:  valid,
			on: func(f *knowledgeFields) {
				f.knowledgeDal.On("Create", ctx, &domain.Node{
					DomainArea:      domain.DomainOffers,
					SubTopic:        "VIP package",
					KnowledgeType:   "package",
					Content:         "VIP is $2,500 a month with four shoots",
					SourceReference: domain.DefaultSourceReference,
					TimestampAdded:  knowledgeNow,
					RelevanceScore:  domain.DefaultRelevance,
					Tags:            "vip,pricing",
					Status:          domain.StatusActive,
					Confidentiality: domain.DefaultConfidentiality,
					Version:         1,
				}).Return("node-1", nil)
			},
			want: &domain.Node{
				ID:              "node-1",
				DomainArea:      domain.DomainOffers,
				SubTopic:        "VIP package",
				KnowledgeType:   "package",
				Content:         "VIP is $2,500 a month with four shoots",
				SourceReference: domain.DefaultSourceReference,
				TimestampAdded:  knowledgeNow,
				RelevanceScore:  domain.DefaultRelevance,
				Tags:            "vip,pricing",
				Status:          domain.StatusActive,
				Confidentiality: domain.DefaultConfidentiality,
				Version:         1,
			},
		},
		{
			name: "explicit relevance and status are kept",
			req: CreateNodeRequest{
				DomainArea:     domain.DomainSales,
				SubTopic:       "Objections",
				KnowledgeType:  "script",
				Content:        "When they say it's too expensive...",
				RelevanceScore: common.Float(0.4),
				Status:         domain.StatusDraft,
			},
			on: func(f *knowledgeFields) {
				f.knowledgeDal.On("Create", ctx, mock.MatchedBy(func(n *domain.Node) bool {
					return n.RelevanceScore == 0.4 && n.Status == domain.StatusDraft
				})).Return("node-2", nil)
			},
		},
		{
			name: "store failure",
			req:  valid,
			on: func(f *knowledgeFields) {
				f.knowledgeDal.On("Create", ctx, mock.AnythingOfType("*domain.Node")).Return("", testError)
			},
			expectedErr: testError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newKnowledgeService(t)
			if tt.on != nil {
				tt.on(f)
			}

			got, err := s.CreateNode(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				return
			}

			assert.NoError(t, err)

			if tt.want != nil {
				assert.DeepEqual(t, tt.want, got)
			}
		})
	}
}

func TestKnowledgeService_UpdateNode(t *testing.T) {
	ctx := context.Background()
	bad := domain.KnowledgeType("rumour")
	archived := domain.StatusArchived

	t.Run("invalid type never reaches the store", func(t *testing.T) {
		s, _ := newKnowledgeService(t)

		_, err := s.UpdateNode(ctx, "node-1", UpdateNodeRequest{KnowledgeType: &bad})
		assert.Equal(t, domain.ErrInvalidType, err)
	})

	t.Run("only present fields are updated", func(t *testing.T) {
		s, f := newKnowledgeService(t)
		updated := &domain.Node{ID: "node-1", Status: domain.StatusArchived, Version: 3}

		f.knowledgeDal.On("Update", ctx, "node-1", []firestore.Update{
			{Path: "tags", Value: "vip"},
			{Path: "status", Value: archived},
		}).Return(updated, nil)

		got, err := s.UpdateNode(ctx, "node-1", UpdateNodeRequest{Tags: common.String("vip"), Status: &archived})
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("missing node", func(t *testing.T) {
		s, f := newKnowledgeService(t)
		f.knowledgeDal.On("Update", ctx, "ghost", mock.Anything).Return(nil, domain.ErrNodeNotFound)

		_, err := s.UpdateNode(ctx, "ghost", UpdateNodeRequest{Content: common.String("x")})
		assert.Equal(t, domain.ErrNodeNotFound, err)
	})
}

func TestKnowledgeService_DeleteNode(t *testing.T) {
	ctx := context.Background()

	s, f := newKnowledgeService(t)
	f.knowledgeDal.On("Delete", ctx, "node-1").Return(nil).Once()
	f.knowledgeDal.On("Delete", ctx, "ghost").Return(domain.ErrNodeNotFound).Once()

	assert.NoError(t, s.DeleteNode(ctx, "node-1"))
	assert.Equal(t, domain.ErrNodeNotFound, s.DeleteNode(ctx, "ghost"))
}

func TestKnowledgeService_WritesClearCache(t *testing.T) {
	ctx := context.Background()
	s, f := newKnowledgeService(t)

	before := []*domain.Node{{ID: "n1", DomainArea: domain.DomainOffers, SubTopic: "Pilot", Content: "Pilot is $495"}}
	after := []*domain.Node{{ID: "n1", DomainArea: domain.DomainOffers, SubTopic: "Pilot", Content: "Pilot is $595"}}

	f.knowledgeDal.On("ListAll", mock.Anything).Return(before, nil).Once()
	f.knowledgeDal.On("ListAll", mock.Anything).Return(after, nil).Once()
	f.knowledgeDal.On("Delete", ctx, "old").Return(nil)

	res, err := s.Ask(ctx, AskRequest{Query: "pilot"})
	assert.NoError(t, err)
	assert.That(t, res.Sources[0].ID == "n1")

	res, err = s.Ask(ctx, AskRequest{Query: "$495"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(res.Sources))

	assert.NoError(t, s.DeleteNode(ctx, "old"))

	res, err = s.Ask(ctx, AskRequest{Query: "$495"})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(res.Sources))
}
