package service

const (
	defaultRefundLimit       = 10
	defaultSubscriptionLimit = 50
)

type CheckoutRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Tier     string `json:"tier" binding:"required"`
}

type PublicCheckoutRequest struct {
	Tier  string `json:"tier"`
	Email string `json:"email" binding:"omitempty,email"`
}

type PortalRequest struct {
	ClientID string `json:"clientId" binding:"required"`
}

type RefundRequest struct {
	PaymentIntentID string   `json:"paymentIntentId" binding:"required"`
	Amount          *float64 `json:"amount" binding:"omitempty,gt=0"`
	Reason          string   `json:"reason"`
}

type ListRefundsRequest struct {
	PaymentIntentID string `form:"paymentIntentId"`
	Limit           int64  `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ListSubscriptionsRequest struct {
	ClientID string `form:"clientId"`
	Status   string `form:"status"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

type CreateSubscriptionRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	PriceID  string `json:"priceId" binding:"required"`
	Tier     string `json:"tier"`
}

type UpdateSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId" binding:"required"`
	Action         string `json:"action" binding:"required"`
	PriceID        string `json:"priceId"`
}
