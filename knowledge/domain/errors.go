package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNodeNotFound      = errors.New("Node not found")
	ErrMissingNodeID     = errors.New("Missing node id")
	ErrMissingNodeFields = errors.New("Missing required fields: domain_area, sub_topic, knowledge_type, content")
	ErrInvalidDomain     = fmt.Errorf("Invalid domain_area. Must be one of: %s", join(DomainAreas))
	ErrInvalidType       = fmt.Errorf("Invalid knowledge_type. Must be one of: %s", join(KnowledgeTypes))
	ErrInvalidStatus     = fmt.Errorf("Invalid status. Must be one of: %s", join(NodeStatuses))
	ErrEmptyQuery        = errors.New("Query is required")
	ErrUnknownAgent      = fmt.Errorf("Invalid agentId. Must be one of: %s", agentIDs())
)

func join[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}

	return strings.Join(s, ", ")
}
