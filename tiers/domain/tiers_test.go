package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		value   string
		want    Tier
		wantErr bool
	}{
		{value: "pilot", want: TierPilot},
		{value: "vip", want: TierVIP},
		{value: "VIP", wantErr: true},
		{value: "platinum", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseTier(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTier)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "Invalid tier. Must be one of: pilot, t1, t2, vip", ErrInvalidTier.Error())
}

func TestTierAttributes(t *testing.T) {
	assert.False(t, TierPilot.Recurring())
	assert.True(t, TierT1.Recurring())
	assert.True(t, TierVIP.Recurring())

	assert.Equal(t, 50, TierPilot.QualificationScore())
	assert.Equal(t, 60, TierT1.QualificationScore())
	assert.Equal(t, 75, TierT2.QualificationScore())
	assert.Equal(t, 90, TierVIP.QualificationScore())
	assert.Equal(t, 50, Tier("").QualificationScore())

	assert.Equal(t, "Pilot", TierPilot.Title())
	assert.Equal(t, "T2", TierT2.Title())
	assert.Equal(t, TierPilot, TierOrDefault(""))
}

func TestProducts(t *testing.T) {
	assert.Equal(t, int64(34500), Product(TierPilot).FallbackAmount())
	assert.Equal(t, int64(9900), ProductCropBundle.FallbackAmount())
	assert.True(t, ProductCropFitted.IsValid())
	assert.False(t, Product("hoodie").IsValid())
	assert.False(t, ProductCropRelaxed.Recurring())
	assert.Equal(t, "", ProductCropBundle.PriceID())

	t.Setenv("STRIPE_PRICE_T1", "price_t1")
	assert.Equal(t, "price_t1", Product(TierT1).PriceID())
}
