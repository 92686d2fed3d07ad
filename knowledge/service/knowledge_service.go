package service

import (
	"context"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/knowledge/cache"
	"github.com/gettupp/backoffice/knowledge/dal"
	"github.com/gettupp/backoffice/knowledge/dal/iface"
	"github.com/gettupp/backoffice/knowledge/domain"
	"github.com/gettupp/backoffice/logger"
)

type KnowledgeService struct {
	loggerProvider logger.Provider
	knowledgeDal   iface.Knowledge
	cache          *cache.Cache
	timeFunc       func() time.Time
}

func NewKnowledgeService(log logger.Provider, conn *connection.Connection) *KnowledgeService {
	return NewKnowledgeServiceWithDal(
		log,
		dal.NewKnowledgeFirestoreWithClient(conn.Firestore),
		cache.New(cacheTTL(log)),
	)
}

func NewKnowledgeServiceWithDal(log logger.Provider, knowledgeDal iface.Knowledge, c *cache.Cache) *KnowledgeService {
	return &KnowledgeService{
		loggerProvider: log,
		knowledgeDal:   knowledgeDal,
		cache:          c,
		timeFunc:       time.Now,
	}
}

func cacheTTL(log logger.Provider) time.Duration {
	v := os.Getenv("KNOWLEDGE_CACHE_TTL")
	if v == "" {
		return cache.DefaultTTL
	}

	ttl, err := time.ParseDuration(v)
	if err != nil || ttl <= 0 {
		log(context.Background()).Warningf("invalid KNOWLEDGE_CACHE_TTL %q, using %s", v, cache.DefaultTTL)
		return cache.DefaultTTL
	}

	return ttl
}

// ListNodes reads the nodes matching the equality filters, then narrows them by q.
func (s *KnowledgeService) ListNodes(ctx context.Context, req ListNodesRequest) ([]*domain.Node, error) {
	filter := domain.ListFilter{
		DomainArea:    domain.DomainArea(req.DomainArea),
		KnowledgeType: domain.KnowledgeType(req.KnowledgeType),
		Status:        domain.NodeStatus(req.Status),
		Limit:         req.Limit,
	}

	if filter.DomainArea != "" && !filter.DomainArea.IsValid() {
		return nil, domain.ErrInvalidDomain
	}

	if filter.KnowledgeType != "" && !filter.KnowledgeType.IsValid() {
		return nil, domain.ErrInvalidType
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	nodes, err := s.knowledgeDal.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Query) == "" {
		return nodes, nil
	}

	return domain.Search(nodes, req.Query, 0), nil
}

func (s *KnowledgeService) CreateNode(ctx context.Context, req CreateNodeRequest) (*domain.Node, error) {
	if req.DomainArea == "" || strings.TrimSpace(req.SubTopic) == "" || req.KnowledgeType == "" || strings.TrimSpace(req.Content) == "" {
		return nil, domain.ErrMissingNodeFields
	}

	if !req.DomainArea.IsValid() {
		return nil, domain.ErrInvalidDomain
	}

	if !req.KnowledgeType.IsValid() {
		return nil, domain.ErrInvalidType
	}

	status := domain.StatusActive
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}

		status = req.Status
	}

	relevance := domain.DefaultRelevance
	if req.RelevanceScore != nil {
		relevance = *req.RelevanceScore
	}

	source := req.SourceReference
	if source == "" {
		source = domain.DefaultSourceReference
	}

	confidentiality := req.Confidentiality
	if confidentiality == "" {
		confidentiality = domain.DefaultConfidentiality
	}

	node := &domain.Node{
		DomainArea:       req.DomainArea,
		SubTopic:         req.SubTopic,
		KnowledgeType:    req.KnowledgeType,
		Content:          req.Content,
		Context:          req.Context,
		SourceReference:  source,
		TimestampAdded:   s.timeFunc(),
		RelevanceScore:   relevance,
		Tags:             req.Tags,
		Owner:            req.Owner,
		Status:           status,
		Confidentiality:  confidentiality,
		ReviewDate:       req.ReviewDate,
		SystemOfRecord:   req.SystemOfRecord,
		Dependencies:     req.Dependencies,
		KPI:              req.KPI,
		AutomationLinked: req.AutomationLinked,
		Version:          1,
	}

	id, err := s.knowledgeDal.Create(ctx, node)
	if err != nil {
		return nil, err
	}

	node.ID = id

	s.cache.Clear()

	return node, nil
}

func (s *KnowledgeService) UpdateNode(ctx context.Context, nodeID string, req UpdateNodeRequest) (*domain.Node, error) {
	if req.DomainArea != nil && !req.DomainArea.IsValid() {
		return nil, domain.ErrInvalidDomain
	}

	if req.KnowledgeType != nil && !req.KnowledgeType.IsValid() {
		return nil, domain.ErrInvalidType
	}

	if req.Status != nil && !req.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	node, err := s.knowledgeDal.Update(ctx, nodeID, getNodeUpdates(req))
	if err != nil {
		return nil, err
	}

	s.cache.Clear()

	return node, nil
}

func (s *KnowledgeService) DeleteNode(ctx context.Context, nodeID string) error {
	if err := s.knowledgeDal.Delete(ctx, nodeID); err != nil {
		return err
	}

	s.cache.Clear()

	s.loggerProvider(ctx).Infof("knowledge node %s deleted", nodeID)

	return nil
}

// ClearCache drops the assistant's cached copy of the knowledge base.
func (s *KnowledgeService) ClearCache() {
	s.cache.Clear()
}

func getNodeUpdates(req UpdateNodeRequest) []firestore.Update {
	var updates []firestore.Update

	add := func(path string, v interface{}) {
		updates = append(updates, firestore.Update{Path: path, Value: v})
	}

	if req.DomainArea != nil {
		add("domain_area", *req.DomainArea)
	}

	if req.SubTopic != nil {
		add("sub_topic", *req.SubTopic)
	}

	if req.KnowledgeType != nil {
		add("knowledge_type", *req.KnowledgeType)
	}

	if req.Content != nil {
		add("content", *req.Content)
	}

	if req.Context != nil {
		add("context", *req.Context)
	}

	if req.SourceReference != nil {
		add("source_reference", *req.SourceReference)
	}

	if req.RelevanceScore != nil {
		add("relevance_score", *req.RelevanceScore)
	}

	if req.Tags != nil {
		add("tags", *req.Tags)
	}

	if req.Owner != nil {
		add("owner", *req.Owner)
	}

	if req.Status != nil {
		add("status", *req.Status)
	}

	if req.Confidentiality != nil {
		add("confidentiality", *req.Confidentiality)
	}

	if req.ReviewDate != nil {
		add("review_date", *req.ReviewDate)
	}

	if req.SystemOfRecord != nil {
		add("system_of_record", *req.SystemOfRecord)
	}

	if req.Dependencies != nil {
		add("dependencies", *req.Dependencies)
	}

	if req.KPI != nil {
		add("kpi", *req.KPI)
	}

	if req.AutomationLinked != nil {
		add("automation_linked", *req.AutomationLinked)
	}

	return updates
}
