package domain

import "errors"

const (
	HeroDoc      = "hero"
	PricingDoc   = "pricing"
	PortfolioDoc = "portfolio"
)

var ErrContentNotFound = errors.New("Content not found")

type Hero struct {
	Headline    string  `firestore:"headline" json:"headline"`
	Subheadline string  `firestore:"subheadline" json:"subheadline"`
	CTAText     string  `firestore:"ctaText" json:"ctaText"`
	CTALink     string  `firestore:"ctaLink" json:"ctaLink"`
	VenueCount  int     `firestore:"venueCount,omitempty" json:"venueCount,omitempty"`
	ShootCount  int     `firestore:"shootCount,omitempty" json:"shootCount,omitempty"`
	OnTimeRate  float64 `firestore:"onTimeRate,omitempty" json:"onTimeRate,omitempty"`
}

type PricingTier struct {
	ID          string   `firestore:"id,omitempty" json:"id,omitempty"`
	Name        string   `firestore:"name" json:"name"`
	Label       string   `firestore:"label" json:"label"`
	Badge       string   `firestore:"badge,omitempty" json:"badge,omitempty"`
	Price       float64  `firestore:"price" json:"price"`
	Description string   `firestore:"description,omitempty" json:"description,omitempty"`
	Savings     string   `firestore:"savings" json:"savings"`
	Features    []string `firestore:"features" json:"features"`
	CTAText     string   `firestore:"ctaText" json:"ctaText"`
	IsPopular   bool     `firestore:"isPopular,omitempty" json:"isPopular,omitempty"`
	IsPremium   bool     `firestore:"isPremium,omitempty" json:"isPremium,omitempty"`
}

type PortfolioItem struct {
	ID       string `firestore:"id,omitempty" json:"id,omitempty"`
	Title    string `firestore:"title" json:"title"`
	Category string `firestore:"category,omitempty" json:"category,omitempty"`
	Type     string `firestore:"type,omitempty" json:"type,omitempty"`
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`
	VideoURL string `firestore:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Venue    string `firestore:"venue,omitempty" json:"venue,omitempty"`
	Date     string `firestore:"date,omitempty" json:"date,omitempty"`
	Aspect   string `firestore:"aspect,omitempty" json:"aspect,omitempty"`
}

// PricingContent is the layout of the pricing document.
type PricingContent struct {
	Tiers []PricingTier `firestore:"tiers"`
}

// PortfolioContent is the layout of the portfolio document.
type PortfolioContent struct {
	Items []PortfolioItem `firestore:"items"`
}

// SiteContent is everything the public site renders from the CMS.
type SiteContent struct {
	Hero      Hero            `json:"hero"`
	Pricing   []PricingTier   `json:"pricing"`
	Portfolio []PortfolioItem `json:"portfolio"`
}
