package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gettupp/backoffice/knowledge/domain"
)

const noMatchReply = "I couldn't find anything in the knowledge base about that yet. Try different keywords, or book a call and we'll answer you directly."

// Ask answers a question from the cached knowledge base, limited to the agent's domains.
// When none of the matches belong to the agent, the first two overall matches are used instead.
func (s *KnowledgeService) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	agent, err := domain.AgentByID(req.AgentID)
	if err != nil {
		return nil, err
	}

	nodes, err := s.cache.Get(ctx, s.knowledgeDal.ListAll)
	if err != nil {
		return nil, err
	}

	matches := domain.Search(nodes, query, maxAssistantHits)

	hits := agent.Filter(matches)
	if len(hits) == 0 && len(matches) > 0 {
		hits = matches[:min(fallbackHits, len(matches))]
	}

	s.loggerProvider(ctx).Debugf("assistant %s: %d matches, %d used for %q", agent.ID, len(matches), len(hits), query)

	return &AskResponse{
		Content: reply(agent, query, hits),
		Sources: sources(hits),
		Agent:   agent,
	}, nil
}

func reply(agent *domain.Agent, query string, hits []*domain.Node) string {
	if len(hits) == 0 {
		return fmt.Sprintf("%s %s here. %s", agent.Emoji, agent.Name, noMatchReply)
	}

	return fmt.Sprintf("%s %s here. Here's what we know about %q:\n\n%s", agent.Emoji, agent.Name, query, contextBlock(hits))
}

func contextBlock(hits []*domain.Node) string {
	var b strings.Builder

	for i, n := range hits {
		if i > 0 {
			b.WriteString("\n\n")
		}

		fmt.Fprintf(&b, "[%s / %s] %s", n.DomainArea, n.SubTopic, n.Content)

		if n.Context != "" {
			fmt.Fprintf(&b, "\nContext: %s", n.Context)
		}
	}

	return b.String()
}

func sources(hits []*domain.Node) []Source {
	res := make([]Source, len(hits))
	for i, n := range hits {
		res[i] = Source{
			ID:            n.ID,
			DomainArea:    n.DomainArea,
			SubTopic:      n.SubTopic,
			KnowledgeType: n.KnowledgeType,
		}
	}

	return res
}
