package service

import (
	"github.com/gettupp/backoffice/knowledge/domain"
)

const (
	defaultListLimit = 100
	maxAssistantHits = 10
	fallbackHits     = 2
)

type ListNodesRequest struct {
	DomainArea    string `form:"domain"`
	KnowledgeType string `form:"type"`
	Status        string `form:"status"`
	Query         string `form:"q"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

type CreateNodeRequest struct {
	DomainArea       domain.DomainArea    `json:"domain_area"`
	SubTopic         string               `json:"sub_topic"`
	KnowledgeType    domain.KnowledgeType `json:"knowledge_type"`
	Content          string               `json:"content"`
	Context          string               `json:"context"`
	SourceReference  string               `json:"source_reference"`
	RelevanceScore   *float64             `json:"relevance_score"`
	Tags             string               `json:"tags"`
	Owner            string               `json:"owner"`
	Status           domain.NodeStatus    `json:"status"`
	Confidentiality  string               `json:"confidentiality"`
	ReviewDate       string               `json:"review_date"`
	SystemOfRecord   string               `json:"system_of_record"`
	Dependencies     string               `json:"dependencies"`
	KPI              string               `json:"kpi"`
	AutomationLinked string               `json:"automation_linked"`
}

// UpdateNodeRequest only touches the fields present in the body.
type UpdateNodeRequest struct {
	DomainArea       *domain.DomainArea    `json:"domain_area"`
	SubTopic         *string               `json:"sub_topic"`
	KnowledgeType    *domain.KnowledgeType `json:"knowledge_type"`
	Content          *string               `json:"content"`
	Context          *string               `json:"context"`
	SourceReference  *string               `json:"source_reference"`
	RelevanceScore   *float64              `json:"relevance_score"`
	Tags             *string               `json:"tags"`
	Owner            *string               `json:"owner"`
	Status           *domain.NodeStatus    `json:"status"`
	Confidentiality  *string               `json:"confidentiality"`
	ReviewDate       *string               `json:"review_date"`
	SystemOfRecord   *string               `json:"system_of_record"`
	Dependencies     *string               `json:"dependencies"`
	KPI              *string               `json:"kpi"`
	AutomationLinked *string               `json:"automation_linked"`
}

type AskRequest struct {
	Query   string `json:"query"`
	AgentID string `json:"agentId"`
}

type Source struct {
	ID            string               `json:"id"`
	DomainArea    domain.DomainArea    `json:"domain_area"`
	SubTopic      string               `json:"sub_topic"`
	KnowledgeType domain.KnowledgeType `json:"knowledge_type"`
}

type AskResponse struct {
	Content string        `json:"content"`
	Sources []Source      `json:"sources"`
	Agent   *domain.Agent `json:"agent"`
}
