package dal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gettupp/backoffice/common"
	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/stripe/domain"
)

func TestStripeFirestore_ClaimEvent(t *testing.T) {
	testtools.SkipWithoutEmulator(t)

	ctx := context.Background()

	d, err := NewStripeFirestore(ctx, common.TestProjectID)
	require.NoError(t, err)

	event := &domain.ProcessedEvent{ID: "evt_test_claim", Type: "checkout.session.completed"}

	_ = d.ReleaseEvent(ctx, event.ID)

	require.NoError(t, d.ClaimEvent(ctx, event))
	assert.ErrorIs(t, d.ClaimEvent(ctx, event), ErrEventAlreadyProcessed)

	require.NoError(t, d.ReleaseEvent(ctx, event.ID))
	assert.NoError(t, d.ClaimEvent(ctx, event))
}

func TestStripeFirestore_SaveDispute(t *testing.T) {
	testtools.SkipWithoutEmulator(t)

	ctx := context.Background()

	d, err := NewStripeFirestore(ctx, common.TestProjectID)
	require.NoError(t, err)

	dispute := &domain.Dispute{ID: "dp_test", ChargeID: "ch_1", Amount: 345, Currency: "usd", Reason: "fraudulent", Status: "needs_response"}
	require.NoError(t, d.SaveDispute(ctx, dispute))
	assert.False(t, dispute.CreatedAt.IsZero())
}
