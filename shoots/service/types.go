package service

import (
	"github.com/gettupp/backoffice/shoots/domain"
)

const defaultListLimit = 50

type ListShootsRequest struct {
	Status   string `form:"status"`
	ClientID string `form:"clientId"`
	Upcoming bool   `form:"upcoming"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// Dates are accepted as RFC 3339 timestamps or plain YYYY-MM-DD days.
type CreateShootRequest struct {
	ClientID         string           `json:"clientId"`
	Type             domain.ShootType `json:"type"`
	ScheduledDate    string           `json:"scheduledDate"`
	Location         string           `json:"location"`
	Duration         int              `json:"duration" binding:"omitempty,min=1"`
	TotalImages      int              `json:"totalImages" binding:"omitempty,min=1"`
	DeliveryDeadline string           `json:"deliveryDeadline"`
	PhotographerID   string           `json:"photographerId"`
	PhotographerName string           `json:"photographerName"`
	Notes            string           `json:"notes"`
	ClientNotes      string           `json:"clientNotes"`
}

type UpdateShootRequest struct {
	Status           *domain.ShootStatus `json:"status"`
	Type             *domain.ShootType   `json:"type"`
	ScheduledDate    *string             `json:"scheduledDate"`
	Location         *string             `json:"location"`
	Duration         *int                `json:"duration" binding:"omitempty,min=1"`
	TotalImages      *int                `json:"totalImages" binding:"omitempty,min=0"`
	DeliveredImages  *int                `json:"deliveredImages" binding:"omitempty,min=0"`
	DeliveryDeadline *string             `json:"deliveryDeadline"`
	PhotographerID   *string             `json:"photographerId"`
	PhotographerName *string             `json:"photographerName"`
	Notes            *string             `json:"notes"`
	ClientNotes      *string             `json:"clientNotes"`
}
