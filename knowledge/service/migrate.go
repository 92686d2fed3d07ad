package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"

	"github.com/gettupp/backoffice/knowledge/domain"
)

const (
	DefaultMigrationBatchSize = 400
	migrationSource           = "json_migration"
)

// migrationRecord is one entry of an exported knowledge base file. Ids were
// numeric in older exports.
type migrationRecord struct {
	ID               interface{} `json:"id"`
	LegacyID         interface{} `json:"legacy_id"`
	DomainArea       string      `json:"domain_area"`
	SubTopic         string      `json:"sub_topic"`
	KnowledgeType    string      `json:"knowledge_type"`
	Content          string      `json:"content"`
	Context          string      `json:"context"`
	SourceReference  string      `json:"source_reference"`
	TimestampAdded   string      `json:"timestamp_added"`
	RelevanceScore   *float64    `json:"relevance_score"`
	Tags             string      `json:"tags"`
	Owner            string      `json:"owner"`
	Status           string      `json:"status"`
	Confidentiality  string      `json:"confidentiality"`
	ReviewDate       string      `json:"review_date"`
	SystemOfRecord   string      `json:"system_of_record"`
	Dependencies     string      `json:"dependencies"`
	KPI              string      `json:"kpi"`
	AutomationLinked string      `json:"automation_linked"`
	Version          *int        `json:"version"`
}

type MigrationResult struct {
	Total    int  `json:"total"`
	Migrated int  `json:"migrated"`
	Skipped  int  `json:"skipped"`
	Invalid  int  `json:"invalid"`
	Batches  int  `json:"batches"`
	DryRun   bool `json:"dryRun"`

	// Errors lists the records that could not be migrated.
	Errors error `json:"-"`
}

// Migrate imports a JSON array of knowledge nodes. Records whose id already exists
// are skipped, invalid records are reported in the result and the rest are written
// in batches. Nothing is written on a dry run.
func (s *KnowledgeService) Migrate(ctx context.Context, r io.Reader, batchSize int, dryRun bool) (*MigrationResult, error) {
	l := s.loggerProvider(ctx)

	if batchSize <= 0 {
		batchSize = DefaultMigrationBatchSize
	}

	var records []migrationRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding knowledge file: %w", err)
	}

	existing, err := s.knowledgeDal.ExistingIDs(ctx)
	if err != nil {
		return nil, err
	}

	res := &MigrationResult{Total: len(records), DryRun: dryRun}

	var (
		errs  *multierror.Error
		nodes []*domain.Node
	)

	for i, rec := range records {
		node, err := s.normalize(rec)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("record %d: %w", i, err))
			res.Invalid++

			continue
		}

		if existing[node.ID] {
			res.Skipped++
			continue
		}

		// Duplicate ids inside the file keep the first record.
		existing[node.ID] = true

		nodes = append(nodes, node)
	}

	res.Migrated = len(nodes)
	res.Errors = errs.ErrorOrNil()

	l.Infof("knowledge migration: %d records, %d to write, %d skipped, %d invalid", res.Total, res.Migrated, res.Skipped, res.Invalid)

	if dryRun || len(nodes) == 0 {
		return res, nil
	}

	batches, err := s.knowledgeDal.Import(ctx, nodes, batchSize)
	res.Batches = batches

	if err != nil {
		return res, err
	}

	s.cache.Clear()

	return res, nil
}

func (s *KnowledgeService) normalize(rec migrationRecord) (*domain.Node, error) {
	id := stringify(rec.ID)
	if id == "" {
		return nil, domain.ErrMissingNodeID
	}

	if rec.DomainArea == "" || rec.SubTopic == "" || rec.KnowledgeType == "" || rec.Content == "" {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrMissingNodeFields)
	}

	node := &domain.Node{
		ID:               id,
		LegacyID:         stringify(rec.LegacyID),
		DomainArea:       domain.DomainArea(strings.ToLower(strings.TrimSpace(rec.DomainArea))),
		SubTopic:         strings.TrimSpace(rec.SubTopic),
		KnowledgeType:    domain.KnowledgeType(strings.TrimSpace(rec.KnowledgeType)),
		Content:          rec.Content,
		Context:          rec.Context,
		SourceReference:  rec.SourceReference,
		RelevanceScore:   domain.DefaultRelevance,
		Tags:             rec.Tags,
		Owner:            rec.Owner,
		Status:           domain.NodeStatus(strings.ToLower(rec.Status)),
		Confidentiality:  rec.Confidentiality,
		ReviewDate:       rec.ReviewDate,
		SystemOfRecord:   rec.SystemOfRecord,
		Dependencies:     rec.Dependencies,
		KPI:              rec.KPI,
		AutomationLinked: rec.AutomationLinked,
		Version:          1,
	}

	if !node.DomainArea.IsValid() {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrInvalidDomain)
	}

	if !node.KnowledgeType.IsValid() {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrInvalidType)
	}

	if node.Status == "" {
		node.Status = domain.StatusActive
	} else if !node.Status.IsValid() {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrInvalidStatus)
	}

	if rec.RelevanceScore != nil {
		node.RelevanceScore = *rec.RelevanceScore
	}

	if rec.Version != nil && *rec.Version > 0 {
		node.Version = *rec.Version
	}

	if node.SourceReference == "" {
		node.SourceReference = migrationSource
	}

	if node.Confidentiality == "" {
		node.Confidentiality = domain.DefaultConfidentiality
	}

	node.TimestampAdded = s.timeFunc()
	if t, err := time.Parse(time.RFC3339, rec.TimestampAdded); err == nil {
		node.TimestampAdded = t
	}

	return node, nil
}

func stringify(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}
