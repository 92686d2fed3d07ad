package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	payments := []*Payment{
		{Amount: 695, Status: StatusSucceeded, Type: TypeOneTime},
		{Amount: 445, Status: StatusSucceeded, Type: TypeSubscription},
		{Amount: -100, Status: StatusSucceeded, Type: TypeRefund},
		{Amount: 345, Status: StatusPending, Type: TypeOneTime},
		{Amount: 995, Status: StatusFailed, Type: TypeOneTime},
	}

	assert.Equal(t, Totals{Revenue: 1140, Refunded: 100, Pending: 345, Count: 5}, ComputeTotals(payments))
	assert.Equal(t, Totals{}, ComputeTotals(nil))
}

func TestRefundStatus(t *testing.T) {
	assert.Equal(t, StatusRefunded, RefundStatus(true))
	assert.Equal(t, StatusPartiallyRefunded, RefundStatus(false))
}
