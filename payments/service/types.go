package service

import "github.com/gettupp/backoffice/payments/domain"

const defaultListLimit = 100

type ListPaymentsRequest struct {
	ClientID string `form:"clientId"`
	Status   string `form:"status"`
	Type     string `form:"type"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type ListPaymentsResponse struct {
	Payments []*domain.Payment `json:"payments"`
	Totals   domain.Totals     `json:"totals"`
}
