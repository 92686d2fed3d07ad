package domain

import (
	"strings"

	"github.com/gettupp/backoffice/slice"
)

const DefaultAgentID = "closer"

// Agent is an assistant persona. It only answers from its allowed domains.
type Agent struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Role           string       `json:"role"`
	Description    string       `json:"description"`
	Tone           string       `json:"tone"`
	Emoji          string       `json:"emoji"`
	AllowedDomains []DomainArea `json:"allowedDomains"`
}

// Agents is the policy table of the assistant.
var Agents = []Agent{
	{
		ID:             "closer",
		Name:           "The Closer",
		Role:           "Sales & Bookings",
		Description:    "Ready to get you on the schedule. Fast, direct, and focused on results.",
		Tone:           "High-energy, professional, persuasive",
		Emoji:          "⚡",
		AllowedDomains: []DomainArea{DomainOffers, DomainSales, DomainFinance, DomainMarketing},
	},
	{
		ID:             "fixer",
		Name:           "The Fixer",
		Role:           "Support & Logistics",
		Description:    "Answers for the details. Policies, turnaround times, and technical specs.",
		Tone:           "Calm, precise, helpful",
		Emoji:          "🛠️",
		AllowedDomains: []DomainArea{DomainOperations, DomainLegal, DomainFinance, DomainAnalytics},
	},
	{
		ID:             "johnny",
		Name:           "Johnny Cage",
		Role:           "Founder & Vision",
		Description:    "The man himself. The vision, the vibe, and the \"why\".",
		Tone:           "Bold, edgy, no-nonsense",
		Emoji:          "🕶️",
		AllowedDomains: []DomainArea{DomainBrand, DomainStrategy, DomainMarketing, DomainOffers},
	},
}

// AgentByID looks an agent up, defaulting to the closer when id is empty.
func AgentByID(id string) (*Agent, error) {
	if id == "" {
		id = DefaultAgentID
	}

	for i := range Agents {
		if Agents[i].ID == id {
			return &Agents[i], nil
		}
	}

	return nil, ErrUnknownAgent
}

func (a *Agent) Allows(d DomainArea) bool {
	return slice.Contains(a.AllowedDomains, d)
}

// Filter keeps the nodes in the agent's domains.
func (a *Agent) Filter(nodes []*Node) []*Node {
	res := make([]*Node, 0, len(nodes))

	for _, n := range nodes {
		if a.Allows(n.DomainArea) {
			res = append(res, n)
		}
	}

	return res
}

func agentIDs() string {
	ids := make([]string, len(Agents))
	for i, a := range Agents {
		ids[i] = a.ID
	}

	return strings.Join(ids, ", ")
}
