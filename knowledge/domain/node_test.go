package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testNodes() []*Node {
	return []*Node{
		{ID: "n1", DomainArea: DomainOffers, SubTopic: "Pilot Night", Content: "The pilot is a one-time $345 shoot.", Tags: "pilot,pricing"},
		{ID: "n2", DomainArea: DomainOperations, SubTopic: "Turnaround", Content: "Photos are delivered within 48 hours.", Tags: "delivery"},
		{ID: "n3", DomainArea: DomainLegal, SubTopic: "Usage rights", Content: "Venues may post every delivered photo.", Tags: "rights,PILOT"},
		{ID: "n4", DomainArea: DomainBrand, SubTopic: "Voice", Content: "No Excuses. Just Content.", Tags: "brand"},
	}
}

func TestSearch(t *testing.T) {
	nodes := testNodes()

	tests := []struct {
		name  string
		query string
		max   int
		want  []string
	}{
		{"content match", "delivered", 0, []string{"n2", "n3"}},
		{"case insensitive tags", "Pilot", 0, []string{"n1", "n3"}},
		{"sub topic", "usage", 0, []string{"n3"}},
		{"capped", "e", 2, []string{"n1", "n2"}},
		{"no match", "drone", 0, []string{}},
		{"blank query", "   ", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(nodes, tt.query, tt.max)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			ids := make([]string, 0, len(got))
			for _, n := range got {
				ids = append(ids, n.ID)
			}

			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEnums(t *testing.T) {
	assert.True(t, DomainFinance.IsValid())
	assert.False(t, DomainArea("gossip").IsValid())
	assert.True(t, KnowledgeType("SOP").IsValid())
	assert.False(t, KnowledgeType("sop").IsValid())
	assert.True(t, StatusDraft.IsValid())
	assert.False(t, NodeStatus("deleted").IsValid())
}
