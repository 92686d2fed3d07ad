package service

import (
	"github.com/gettupp/backoffice/leads/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

const defaultListLimit = 50

type ListLeadsRequest struct {
	Status string `form:"status"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type CreateLeadRequest struct {
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Instagram          string            `json:"instagram"`
	Venue              string            `json:"venue"`
	Tier               tiers.Tier        `json:"tier" binding:"omitempty,tier"`
	Status             domain.LeadStatus `json:"status" binding:"omitempty,leadstatus"`
	QualificationScore *int              `json:"qualificationScore" binding:"omitempty,min=0,max=100"`
	Source             string            `json:"source"`
	Notes              string            `json:"notes"`
}

// BookingRequest is the public schedule form.
type BookingRequest struct {
	Name           string     `json:"name"`
	ContactName    string     `json:"contactName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Instagram      string     `json:"instagram"`
	PreferredNight string     `json:"preferredNight"`
	Tier           tiers.Tier `json:"tier" binding:"omitempty,tier"`
	Notes          string     `json:"notes"`
	Source         string     `json:"source"`
}

// UpdateLeadRequest only touches the fields present in the body.
type UpdateLeadRequest struct {
	Name      *string            `json:"name"`
	Email     *string            `json:"email"`
	Phone     *string            `json:"phone"`
	Instagram *string            `json:"instagram"`
	Venue     *string            `json:"venue"`
	Tier      *tiers.Tier        `json:"tier" binding:"omitempty,tier"`
	Status    *domain.LeadStatus `json:"status" binding:"omitempty,leadstatus"`
	Notes     *string            `json:"notes"`
}
