package service

import (
	"github.com/gettupp/backoffice/clients/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

const defaultListLimit = 50

type ListClientsRequest struct {
	Status string `form:"status"`
	Tier   string `form:"tier"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type CreateClientRequest struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Instagram string     `json:"instagram"`
	Tier      tiers.Tier `json:"tier" binding:"omitempty,tier"`
	LeadID    string     `json:"leadId"`
	Source    string     `json:"source"`
	Notes     string     `json:"notes"`
}

type UpdateClientRequest struct {
	Name                  *string              `json:"name"`
	Email                 *string              `json:"email"`
	Phone                 *string              `json:"phone"`
	Instagram             *string              `json:"instagram"`
	Tier                  *tiers.Tier          `json:"tier" binding:"omitempty,tier"`
	Status                *domain.ClientStatus `json:"status" binding:"omitempty,oneof=pending active completed cancelled"`
	AmountPaid            *float64             `json:"amountPaid" binding:"omitempty,min=0"`
	StripeCustomerID      *string              `json:"stripeCustomerId"`
	StripePaymentIntentID *string              `json:"stripePaymentIntentId"`
	Notes                 *string              `json:"notes"`
}
