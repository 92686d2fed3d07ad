package domain

import (
	"strings"
	"time"

	"github.com/gettupp/backoffice/slice"
)

type DomainArea string

const (
	DomainAnalytics  DomainArea = "analytics"
	DomainAutomation DomainArea = "automation"
	DomainEvents     DomainArea = "events"
	DomainFinance    DomainArea = "finance"
	DomainLegal      DomainArea = "legal"
	DomainMarketing  DomainArea = "marketing"
	DomainOperations DomainArea = "operations"
	DomainOffers     DomainArea = "offers"
	DomainProduct    DomainArea = "product"
	DomainSales      DomainArea = "sales"
	DomainBrand      DomainArea = "brand"
	DomainStrategy   DomainArea = "strategy"
)

var DomainAreas = []DomainArea{
	DomainAnalytics, DomainAutomation, DomainEvents, DomainFinance, DomainLegal, DomainMarketing,
	DomainOperations, DomainOffers, DomainProduct, DomainSales, DomainBrand, DomainStrategy,
}

type KnowledgeType string

var KnowledgeTypes = []KnowledgeType{
	"metric_definition", "procedure", "checklist", "policy", "business_rule", "principle",
	"standard", "schedule", "package", "offer", "menu", "script", "best_practice", "fact",
	"insight", "recommendation", "SOP",
}

type NodeStatus string

const (
	StatusActive   NodeStatus = "active"
	StatusArchived NodeStatus = "archived"
	StatusDraft    NodeStatus = "draft"
)

var NodeStatuses = []NodeStatus{StatusActive, StatusArchived, StatusDraft}

const (
	DefaultRelevance       = 1.0
	DefaultSourceReference = "manual_entry"
	DefaultConfidentiality = "internal"
)

// Node is one entry of the knowledge base.
type Node struct {
	ID               string        `firestore:"-" json:"id"`
	LegacyID         string        `firestore:"legacy_id,omitempty" json:"legacy_id,omitempty"`
	DomainArea       DomainArea    `firestore:"domain_area" json:"domain_area"`
	SubTopic         string        `firestore:"sub_topic" json:"sub_topic"`
	KnowledgeType    KnowledgeType `firestore:"knowledge_type" json:"knowledge_type"`
	Content          string        `firestore:"content" json:"content"`
	Context          string        `firestore:"context,omitempty" json:"context,omitempty"`
	SourceReference  string        `firestore:"source_reference,omitempty" json:"source_reference,omitempty"`
	TimestampAdded   time.Time     `firestore:"timestamp_added" json:"timestamp_added"`
	RelevanceScore   float64       `firestore:"relevance_score" json:"relevance_score"`
	Tags             string        `firestore:"tags" json:"tags"`
	Owner            string        `firestore:"owner,omitempty" json:"owner,omitempty"`
	Status           NodeStatus    `firestore:"status" json:"status"`
	Confidentiality  string        `firestore:"confidentiality,omitempty" json:"confidentiality,omitempty"`
	ReviewDate       string        `firestore:"review_date,omitempty" json:"review_date,omitempty"`
	SystemOfRecord   string        `firestore:"system_of_record,omitempty" json:"system_of_record,omitempty"`
	Dependencies     string        `firestore:"dependencies,omitempty" json:"dependencies,omitempty"`
	KPI              string        `firestore:"kpi,omitempty" json:"kpi,omitempty"`
	AutomationLinked string        `firestore:"automation_linked,omitempty" json:"automation_linked,omitempty"`
	Version          int           `firestore:"version" json:"version"`
	CreatedAt        time.Time     `firestore:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `firestore:"updated_at" json:"updated_at"`
}

type ListFilter struct {
	DomainArea    DomainArea
	KnowledgeType KnowledgeType
	Status        NodeStatus
	Limit         int
}

func (d DomainArea) IsValid() bool {
	return slice.Contains(DomainAreas, d)
}

func (t KnowledgeType) IsValid() bool {
	return slice.Contains(KnowledgeTypes, t)
}

func (s NodeStatus) IsValid() bool {
	return slice.Contains(NodeStatuses, s)
}

// Matches reports whether the lower cased query occurs in the content, sub topic or tags.
func (n *Node) Matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(n.Content), lowerQuery) ||
		strings.Contains(strings.ToLower(n.SubTopic), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Tags), lowerQuery)
}

// Search returns the nodes matching query, case insensitive, keeping at most max.
// A max of zero keeps every match.
func Search(nodes []*Node, query string, max int) []*Node {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	res := make([]*Node, 0)

	for _, n := range nodes {
		if !n.Matches(q) {
			continue
		}

		res = append(res, n)

		if max > 0 && len(res) == max {
			break
		}
	}

	return res
}
