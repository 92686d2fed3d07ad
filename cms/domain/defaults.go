package domain

import "strconv"

// Built-in content served when a site_content document has never been written.

func DefaultHero() Hero {
	return Hero{
		Headline:    "OWN THE NIGHT",
		Subheadline: "We don't just post. We pack venues.",
		CTAText:     "Start The Pilot",
		CTALink:     "#pilot",
		VenueCount:  12,
		ShootCount:  500,
		OnTimeRate:  99.2,
	}
}

func DefaultPricing() []PricingTier {
	return []PricingTier{
		{
			Name:     "Friday Nights",
			Label:    "STARTER",
			Badge:    "ENTRY LEVEL",
			Price:    445,
			Savings:  "SAVE $1,200/YR VS FREELANCERS",
			Features: []string{"1 Shoot / Month", "30 Edited Photos", "72h Delivery", "Single-Venue Focus"},
			CTAText:  "Start Friday Nights",
		},
		{
			Name:    "Weekend Warrior",
			Label:   "GROWTH",
			Badge:   "MOST POPULAR",
			Price:   695,
			Savings: "SAVE $2,340/YR VS FREELANCERS",
			Features: []string{
				"2 Shoots / Month", "60 Edited Photos + 2 Reels", "48h Delivery Guarantee",
				"Priority Scheduling", "Route-Batched Efficiency",
			},
			CTAText:   "Go Weekend Warrior",
			IsPopular: true,
		},
		{
			Name:    "VIP Partner",
			Label:   "EMPIRE",
			Badge:   "PREMIUM",
			Price:   995,
			Savings: "SAVE $4,500/YR VS AGENCY",
			Features: []string{
				"3 Shoots / Month", "80 Edited Photos + 3 Reels", "24-48h Delivery",
				"Full Creative Team", "Monthly Strategy Call",
			},
			CTAText:   "Become VIP",
			IsPremium: true,
		},
	}
}

func DefaultPortfolio() []PortfolioItem {
	venues := []struct{ title, date, aspect string }{
		{"The Warehouse", "Nov 14", "tall"},
		{"Vanquish", "Nov 12", "wide"},
		{"Rabbit Hole", "Nov 10", "square"},
		{"Club Nova", "Nov 08", "square"},
		{"The Loft", "Nov 06", "tall"},
		{"First Avenue", "Nov 04", "wide"},
	}

	items := make([]PortfolioItem, len(venues))
	for i, v := range venues {
		id := strconv.Itoa(i + 1)

		items[i] = PortfolioItem{
			ID:       id,
			Title:    v.title,
			Venue:    v.title,
			Date:     v.date,
			ImageURL: "/images/gallery/gallery-" + id + ".jpg",
			Aspect:   v.aspect,
		}
	}

	return items
}

// DefaultContent is the full fallback site content.
func DefaultContent() *SiteContent {
	return &SiteContent{
		Hero:      DefaultHero(),
		Pricing:   DefaultPricing(),
		Portfolio: DefaultPortfolio(),
	}
}
