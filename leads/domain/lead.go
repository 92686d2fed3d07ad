package domain

import (
	"strings"
	"time"

	tiers "github.com/gettupp/backoffice/tiers/domain"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusBooked    LeadStatus = "Booked"
	LeadStatusDeclined  LeadStatus = "Declined"

	// LeadStatusConverted is only set by the lead to client conversion.
	LeadStatusConverted LeadStatus = "converted"
)

// Statuses an admin may set on a lead.
var Statuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusBooked,
	LeadStatusDeclined,
}

const (
	SourceAdmin   = "admin_manual"
	SourceWebsite = "website_schedule"
	SourceTally   = "tally"

	DefaultQualificationScore = 50

	TagBar  = "Bar"
	TagClub = "Club"
)

type Lead struct {
	ID                  string     `firestore:"-" json:"id"`
	Name                string     `firestore:"name" json:"name"`
	Venue               string     `firestore:"venue" json:"venue"`
	ContactName         string     `firestore:"contactName,omitempty" json:"contactName,omitempty"`
	Email               string     `firestore:"email" json:"email"`
	Phone               string     `firestore:"phone,omitempty" json:"phone,omitempty"`
	Instagram           string     `firestore:"instagram,omitempty" json:"instagram,omitempty"`
	PreferredNight      string     `firestore:"preferredNight,omitempty" json:"preferredNight,omitempty"`
	Tier                tiers.Tier `firestore:"tier,omitempty" json:"tier,omitempty"`
	Status              LeadStatus `firestore:"status" json:"status"`
	QualificationScore  int        `firestore:"qualificationScore" json:"qualificationScore"`
	Source              string     `firestore:"source" json:"source"`
	Notes               string     `firestore:"notes,omitempty" json:"notes,omitempty"`
	Tags                []string   `firestore:"tags,omitempty" json:"tags,omitempty"`
	ConvertedToClientID string     `firestore:"convertedToClientId,omitempty" json:"convertedToClientId,omitempty"`
	TallyResponseID     string     `firestore:"tallyResponseId,omitempty" json:"tallyResponseId,omitempty"`
	ProcessedAt         *time.Time `firestore:"processedAt,omitempty" json:"processedAt,omitempty"`
	CreatedAt           time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

func (s LeadStatus) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}

	return false
}

// NormalizeStatus maps any casing of a status to its stored form, e.g. "qualified" to "Qualified".
func NormalizeStatus(value string) LeadStatus {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.EqualFold(value, string(LeadStatusConverted)) {
		return LeadStatusConverted
	}

	return LeadStatus(strings.ToUpper(value[:1]) + strings.ToLower(value[1:]))
}

// VenueTags classifies a venue by its name.
func VenueTags(venue string) []string {
	venue = strings.ToLower(venue)

	var tags []string

	if strings.Contains(venue, "bar") || strings.Contains(venue, "pub") {
		tags = append(tags, TagBar)
	}

	if strings.Contains(venue, "club") || strings.Contains(venue, "lounge") {
		tags = append(tags, TagClub)
	}

	return tags
}

// ListFilter narrows a lead listing. A zero Limit means no limit.
type ListFilter struct {
	Status LeadStatus
	Limit  int
}
