package domain

import (
	"fmt"
	"os"
	"strings"
)

// Tier is a service package a venue can buy.
type Tier string

const (
	TierPilot Tier = "pilot"
	TierT1    Tier = "t1"
	TierT2    Tier = "t2"
	TierVIP   Tier = "vip"
)

// Product is anything sold through the public checkout: a tier or a merch item.
type Product string

const (
	ProductCropFitted  Product = "crop_fitted"
	ProductCropRelaxed Product = "crop_relaxed"
	ProductCropBundle  Product = "crop_bundle"
)

// Tiers lists the valid tiers, in price order.
var Tiers = []Tier{TierPilot, TierT1, TierT2, TierVIP}

type productInfo struct {
	name         string
	fallbackCent int64
	recurring    bool
}

var products = map[Product]productInfo{
	Product(TierPilot): {"GettUpp Pilot Night - One-Time Photography Session ($345)", 34500, false},
	Product(TierT1):    {"GettUpp Tier 1 - Monthly Retainer (2 Shoots/mo)", 44500, true},
	Product(TierT2):    {"GettUpp Tier 2 - Monthly Retainer (4 Shoots/mo)", 69500, true},
	Product(TierVIP):   {"GettUpp VIP - Monthly Retainer (Unlimited)", 99500, true},
	ProductCropFitted:  {"GettUpp Girls Fitted Crop Top", 3800, false},
	ProductCropRelaxed: {"GettUpp Girls Relaxed Crop Top", 3600, false},
	ProductCropBundle:  {"GettUpp Girls Crop Top Bundle (3)", 9900, false},
}

func (t Tier) IsValid() bool {
	for _, v := range Tiers {
		if t == v {
			return true
		}
	}

	return false
}

// Recurring reports whether the tier is billed monthly. Pilot is a one-time purchase.
func (t Tier) Recurring() bool {
	return Product(t).Recurring()
}

// Title is the capitalised tier name used in invoice descriptions, e.g. "Pilot", "T1".
func (t Tier) Title() string {
	if t == "" {
		return ""
	}

	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// QualificationScore is the lead score heuristic for a tier of interest.
func (t Tier) QualificationScore() int {
	switch t {
	case TierVIP:
		return 90
	case TierT2:
		return 75
	case TierT1:
		return 60
	default:
		return 50
	}
}

// PriceID returns the configured gateway price of the tier, if any.
func (t Tier) PriceID() string {
	return os.Getenv("STRIPE_PRICE_" + strings.ToUpper(string(t)))
}

// TierOrDefault returns the tier, or pilot when none was given.
func TierOrDefault(t Tier) Tier {
	if t == "" {
		return TierPilot
	}

	return t
}

// ParseTier validates a tier value and reports the allowed values when invalid.
func ParseTier(value string) (Tier, error) {
	t := Tier(value)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}

	return t, nil
}

func (p Product) IsValid() bool {
	_, ok := products[p]
	return ok
}

func (p Product) Name() string {
	return products[p].name
}

// FallbackAmount is the price in cents used when no gateway price is configured.
func (p Product) FallbackAmount() int64 {
	return products[p].fallbackCent
}

func (p Product) Recurring() bool {
	return products[p].recurring
}

// PriceID returns the configured gateway price for tier products. Merch items have none.
func (p Product) PriceID() string {
	if t := Tier(p); t.IsValid() {
		return t.PriceID()
	}

	return ""
}

func joinTiers() string {
	values := make([]string, len(Tiers))
	for i, t := range Tiers {
		values[i] = string(t)
	}

	return strings.Join(values, ", ")
}

var ErrInvalidTier = fmt.Errorf("Invalid tier. Must be one of: %s", joinTiers())
