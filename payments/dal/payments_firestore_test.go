package dal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gettupp/backoffice/common"
	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/payments/domain"
)

func TestPaymentsFirestore_FindByCharge(t *testing.T) {
	testtools.SkipWithoutEmulator(t)

	ctx := context.Background()

	d, err := NewPaymentsFirestore(ctx, common.TestProjectID)
	require.NoError(t, err)

	id := "evt_test_find"
	_, _ = d.collection(ctx).Doc(id).Delete(ctx)
	_, _ = d.collection(ctx).Doc("evt_test_find_refund").Delete(ctx)

	err = d.CreateWithID(ctx, id, &domain.Payment{
		ClientID:              "client-1",
		StripePaymentIntentID: "pi_test_find",
		Amount:                695,
		Currency:              "usd",
		Status:                domain.StatusSucceeded,
		Type:                  domain.TypeOneTime,
	})
	require.NoError(t, err)

	err = d.CreateWithID(ctx, "evt_test_find_refund", &domain.Payment{
		StripePaymentIntentID: "pi_test_find",
		Amount:                -100,
		Status:                domain.StatusSucceeded,
		Type:                  domain.TypeRefund,
	})
	require.NoError(t, err)

	found, err := d.FindByCharge(ctx, "ch_unknown", "pi_test_find")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)

	_, err = d.FindByCharge(ctx, "ch_unknown", "")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentsFirestore_CreateWithID(t *testing.T) {
	testtools.SkipWithoutEmulator(t)

	ctx := context.Background()

	d, err := NewPaymentsFirestore(ctx, common.TestProjectID)
	require.NoError(t, err)

	id := "evt_test_create_with_id"
	_, _ = d.collection(ctx).Doc(id).Delete(ctx)

	payment := &domain.Payment{Amount: 695, Currency: "usd", Status: domain.StatusSucceeded, Type: domain.TypeOneTime}
	require.NoError(t, d.CreateWithID(ctx, id, payment))
	assert.Equal(t, id, payment.ID)

	err = d.CreateWithID(ctx, id, &domain.Payment{Amount: 695})
	assert.ErrorIs(t, err, domain.ErrPaymentExists)

	got, err := d.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 695.0, got.Amount)
}
