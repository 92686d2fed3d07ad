package domain

import (
	"context"
	"fmt"

	"github.com/qmuntal/stateless"
)

type Trigger string

const (
	TriggerPaymentSucceeded     Trigger = "PaymentSucceeded"
	TriggerPaymentOverdue       Trigger = "PaymentOverdue"
	TriggerSubscriptionCanceled Trigger = "SubscriptionCanceled"
	TriggerComplete             Trigger = "Complete"
)

func newLifecycle(status ClientStatus) *stateless.StateMachine {
	sm := stateless.NewStateMachine(status)

	sm.Configure(StatusPending).
		Permit(TriggerPaymentSucceeded, StatusActive).
		Permit(TriggerPaymentOverdue, StatusPastDue).
		Permit(TriggerSubscriptionCanceled, StatusCancelled)

	sm.Configure(StatusActive).
		PermitReentry(TriggerPaymentSucceeded).
		Permit(TriggerPaymentOverdue, StatusPastDue).
		Permit(TriggerSubscriptionCanceled, StatusCancelled).
		Permit(TriggerComplete, StatusCompleted)

	sm.Configure(StatusPastDue).
		Permit(TriggerPaymentSucceeded, StatusActive).
		PermitReentry(TriggerPaymentOverdue).
		Permit(TriggerSubscriptionCanceled, StatusCancelled)

	sm.Configure(StatusCancelled).
		Permit(TriggerPaymentSucceeded, StatusActive).
		PermitReentry(TriggerSubscriptionCanceled)

	sm.Configure(StatusCompleted).
		Permit(TriggerSubscriptionCanceled, StatusCancelled)

	return sm
}

// NextStatus returns the status a client moves to when trigger fires.
// A client without a status is treated as pending.
func NextStatus(current ClientStatus, trigger Trigger) (ClientStatus, error) {
	if current == "" {
		current = StatusPending
	}

	sm := newLifecycle(current)

	if err := sm.FireCtx(context.Background(), trigger); err != nil {
		return current, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, trigger, current)
	}

	return sm.MustState().(ClientStatus), nil
}
