package domain

import (
	"context"
	"fmt"

	"github.com/qmuntal/stateless"
)

const triggerPay = "Pay"

func newLifecycle(status InvoiceStatus) *stateless.StateMachine {
	sm := stateless.NewStateMachine(status)

	for _, s := range []InvoiceStatus{StatusDraft, StatusSent, StatusOverdue} {
		sm.Configure(s).Permit(triggerPay, StatusPaid)
	}

	sm.Configure(StatusPaid).PermitReentry(triggerPay)

	return sm
}

// Pay returns the status of the invoice once paid. Paying a paid invoice is
// allowed so webhook replays stay harmless; cancelled invoices cannot be paid.
func Pay(current InvoiceStatus) (InvoiceStatus, error) {
	sm := newLifecycle(current)

	if err := sm.FireCtx(context.Background(), triggerPay); err != nil {
		return current, fmt.Errorf("%w: %s", ErrNotPayable, current)
	}

	return sm.MustState().(InvoiceStatus), nil
}
