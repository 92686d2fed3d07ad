package domain

import "time"

type ShootType string

const (
	TypePilot    ShootType = "pilot"
	TypeStandard ShootType = "standard"
	TypePremium  ShootType = "premium"
	TypeVIP      ShootType = "vip"
)

var Types = []ShootType{TypePilot, TypeStandard, TypePremium, TypeVIP}

type ShootStatus string

const (
	StatusScheduled  ShootStatus = "scheduled"
	StatusConfirmed  ShootStatus = "confirmed"
	StatusInProgress ShootStatus = "in_progress"
	StatusCompleted  ShootStatus = "completed"
	StatusDelivered  ShootStatus = "delivered"
	StatusCancelled  ShootStatus = "cancelled"
)

var Statuses = []ShootStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusDelivered,
	StatusCancelled,
}

// DeliveryWindow is the default time between a shoot and its delivery deadline.
const DeliveryWindow = 5 * 24 * time.Hour

type typeDefaults struct {
	duration    int
	totalImages int
}

var defaults = map[ShootType]typeDefaults{
	TypePilot:    {duration: 60, totalImages: 10},
	TypeStandard: {duration: 120, totalImages: 25},
	TypePremium:  {duration: 180, totalImages: 50},
	TypeVIP:      {duration: 480, totalImages: 100},
}

type Shoot struct {
	ID               string      `firestore:"-" json:"id"`
	ClientID         string      `firestore:"clientId" json:"clientId"`
	Type             ShootType   `firestore:"type" json:"type"`
	Status           ShootStatus `firestore:"status" json:"status"`
	ScheduledDate    time.Time   `firestore:"scheduledDate" json:"scheduledDate"`
	Location         string      `firestore:"location,omitempty" json:"location,omitempty"`
	Duration         int         `firestore:"duration" json:"duration"`
	TotalImages      int         `firestore:"totalImages" json:"totalImages"`
	DeliveredImages  int         `firestore:"deliveredImages" json:"deliveredImages"`
	DeliveryDeadline time.Time   `firestore:"deliveryDeadline" json:"deliveryDeadline"`
	PhotographerID   string      `firestore:"photographerId,omitempty" json:"photographerId,omitempty"`
	PhotographerName string      `firestore:"photographerName,omitempty" json:"photographerName,omitempty"`
	Notes            string      `firestore:"notes,omitempty" json:"notes,omitempty"`
	ClientNotes      string      `firestore:"clientNotes,omitempty" json:"clientNotes,omitempty"`
	CompletedAt      *time.Time  `firestore:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt        time.Time   `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time   `firestore:"updatedAt" json:"updatedAt"`
}

func (t ShootType) IsValid() bool {
	_, ok := defaults[t]
	return ok
}

// Duration is the default shoot length in minutes.
func (t ShootType) Duration() int {
	return defaults[t].duration
}

func (t ShootType) TotalImages() int {
	return defaults[t].totalImages
}

func (s ShootStatus) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}

	return false
}

// Finished reports whether the status marks the shoot as done.
func (s ShootStatus) Finished() bool {
	return s == StatusCompleted || s == StatusDelivered
}

type ListFilter struct {
	Status   ShootStatus
	ClientID string
	// From only keeps shoots scheduled at or after it when set.
	From  *time.Time
	Limit int
}
