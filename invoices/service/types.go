package service

const defaultListLimit = 100

type ListInvoicesRequest struct {
	Status   string `form:"status"`
	ClientID string `form:"clientId"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
}
