package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/hashicorp/go-multierror"
	"github.com/stripe/stripe-go/v74"

	clients "github.com/gettupp/backoffice/clients/domain"
	invoices "github.com/gettupp/backoffice/invoices/domain"
	payments "github.com/gettupp/backoffice/payments/domain"
	"github.com/gettupp/backoffice/stripe/dal"
	"github.com/gettupp/backoffice/stripe/domain"
	"github.com/gettupp/backoffice/stripe/utils"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

func (s *StripeWebhookService) constructWebhookEvent(body []byte, signature string) (*stripe.Event, error) {
	event, err := s.gateway.ConstructEvent(body, signature)
	if err != nil {
		if errors.Is(err, domain.ErrMissingWebhookKey) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSignature, err)
	}

	return &event, nil
}

// HandleEvent verifies and applies a Stripe event once. The event id is claimed
// in the ledger before any side effect; a failed event releases its claim so
// Stripe's redelivery is processed again. Handlers keep their writes safe to
// repeat: payment records are keyed by the event id and land in the same
// transaction as the client balance change they describe.
func (s *StripeWebhookService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	l := s.loggerProvider(ctx)

	event, err := s.constructWebhookEvent(body, signature)
	if err != nil {
		return err
	}

	l.SetLabels(map[string]string{
		"eventType": event.Type,
		"eventId":   event.ID,
	})

	l.Infof("event type: %s", event.Type)

	if err := s.stripeDAL.ClaimEvent(ctx, &domain.ProcessedEvent{
		ID:       event.ID,
		Type:     event.Type,
		Livemode: event.Livemode,
	}); err != nil {
		if errors.Is(err, dal.ErrEventAlreadyProcessed) {
			l.Infof("event %s already processed", event.ID)
			return nil
		}

		return err
	}

	if err := s.dispatch(ctx, event); err != nil {
		if releaseErr := s.stripeDAL.ReleaseEvent(ctx, event.ID); releaseErr != nil {
			l.Errorf("failed to release event %s: %s", event.ID, releaseErr)
		}

		return err
	}

	return nil
}

func (s *StripeWebhookService) dispatch(ctx context.Context, event *stripe.Event) error {
	l := s.loggerProvider(ctx)

	// Unmarshal the event data into an appropriate struct depending on its Type
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		return s.handleCheckoutSessionCompleted(ctx, event.ID, &session)
	case "payment_intent.payment_failed":
		var paymentIntent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			return err
		}

		return s.handlePaymentIntentFailedEvent(ctx, event.ID, &paymentIntent)
	case "customer.subscription.created", "customer.subscription.updated":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return err
		}

		return s.handleSubscriptionChanged(ctx, &subscription)
	case "customer.subscription.deleted":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return err
		}

		return s.handleSubscriptionDeleted(ctx, &subscription)
	case "invoice.payment_succeeded":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		return s.handleInvoicePaymentSucceeded(ctx, event.ID, &invoice)
	case "invoice.payment_failed":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		return s.handleInvoicePaymentFailed(ctx, event.ID, &invoice)
	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return err
		}

		return s.handleChargeRefunded(ctx, event.ID, &charge)
	case "charge.dispute.created":
		var dispute stripe.Dispute
		if err := json.Unmarshal(event.Data.Raw, &dispute); err != nil {
			return err
		}

		return s.handleChargeDisputeCreated(ctx, &dispute)
	case "customer.created", "customer.updated":
		var customer stripe.Customer
		if err := json.Unmarshal(event.Data.Raw, &customer); err != nil {
			return err
		}

		return s.handleCustomerUpdated(ctx, &customer)
	default:
		l.Warningf("Unhandled Stripe webhook event type: %s", event.Type)
		return nil
	}
}

func (s *StripeWebhookService) handleCheckoutSessionCompleted(ctx context.Context, eventID string, session *stripe.CheckoutSession) error {
	l := s.loggerProvider(ctx)

	clientID := session.Metadata[domain.MetadataClientID]
	if clientID == "" {
		if session.Metadata[domain.MetadataSource] == domain.SourcePublicCheckout {
			return s.createPublicCheckoutClient(ctx, eventID, session)
		}

		l.Warningf("checkout session %s has no clientId in metadata", session.ID)

		return nil
	}

	client, err := s.clientsDal.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			l.Warningf("checkout session %s references unknown client %s", session.ID, clientID)
			return nil
		}

		return err
	}

	amount := utils.FromCents(session.AmountTotal)

	updates := []firestore.Update{
		{Path: "amountPaid", Value: amount},
	}

	if next, err := clients.NextStatus(client.Status, clients.TriggerPaymentSucceeded); err != nil {
		l.Warningf("client %s: %s", client.ID, err)
	} else {
		updates = append(updates, firestore.Update{Path: "status", Value: next})
	}

	if tier := tiers.Tier(session.Metadata[domain.MetadataTier]); tier.IsValid() {
		updates = append(updates, firestore.Update{Path: "tier", Value: tier})
	}

	if id := customerID(session.Customer); id != "" {
		updates = append(updates, firestore.Update{Path: "stripeCustomerId", Value: id})
	}

	if session.Subscription != nil {
		updates = append(updates, firestore.Update{Path: "stripeSubscriptionId", Value: session.Subscription.ID})
	}

	if session.PaymentIntent != nil {
		updates = append(updates, firestore.Update{Path: "stripePaymentIntentId", Value: session.PaymentIntent.ID})
	}

	if _, err := s.clientsDal.Update(ctx, client.ID, updates); err != nil {
		return err
	}

	var merr *multierror.Error

	if _, err := s.invoicesService.MarkPaidBySession(ctx, session.ID, amount, s.timeFunc()); err != nil {
		if errors.Is(err, invoices.ErrInvoiceNotFound) || errors.Is(err, invoices.ErrNotPayable) {
			l.Warningf("invoice for session %s not settled: %s", session.ID, err)
		} else {
			merr = multierror.Append(merr, err)
		}
	}

	if err := s.paymentsService.RecordOnce(ctx, eventID, checkoutPayment(client.ID, session)); err != nil {
		merr = multierror.Append(merr, err)
	}

	l.Infof("client %s paid %.2f through checkout session %s", client.ID, amount, session.ID)

	return merr.ErrorOrNil()
}

// createPublicCheckoutClient creates an active client for a purchase made without an account.
func (s *StripeWebhookService) createPublicCheckoutClient(ctx context.Context, eventID string, session *stripe.CheckoutSession) error {
	l := s.loggerProvider(ctx)

	product := session.Metadata[domain.MetadataTier]

	client := &clients.Client{
		Name:       "Unknown",
		Email:      session.CustomerEmail,
		Status:     clients.StatusActive,
		AmountPaid: utils.FromCents(session.AmountTotal),
		Source:     clients.SourcePublicCheckout,
	}

	if details := session.CustomerDetails; details != nil {
		if details.Name != "" {
			client.Name = details.Name
		}

		if client.Email == "" {
			client.Email = details.Email
		}

		client.Phone = details.Phone
	}

	if tier := tiers.Tier(product); tier.IsValid() {
		client.Tier = tier
	} else if p := tiers.Product(product); p.IsValid() {
		client.Notes = "Purchased " + p.Name()
	}

	client.StripeCustomerID = customerID(session.Customer)

	if session.PaymentIntent != nil {
		client.StripePaymentIntentID = session.PaymentIntent.ID
	}

	if session.Subscription != nil {
		client.StripeSubscriptionID = session.Subscription.ID
	}

	id, err := s.clientsDal.Create(ctx, client)
	if err != nil {
		return err
	}

	l.Infof("client %s created from public checkout session %s", id, session.ID)

	// the client exists now; a retry would create it twice
	if err := s.paymentsService.RecordOnce(ctx, eventID, checkoutPayment(id, session)); err != nil {
		l.Errorf("failed to record payment of public checkout session %s: %s", session.ID, err)
	}

	return nil
}

func checkoutPayment(clientID string, session *stripe.CheckoutSession) *payments.Payment {
	title := "Purchase"
	if tier := tiers.Tier(session.Metadata[domain.MetadataTier]); tier.IsValid() {
		title = tier.Title()
	}

	payment := &payments.Payment{
		ClientID:        clientID,
		StripeSessionID: session.ID,
		Amount:          utils.FromCents(session.AmountTotal),
		Currency:        string(session.Currency),
		Status:          payments.StatusSucceeded,
		Type:            payments.TypeOneTime,
		Description:     "GettUpp " + title + " - Checkout",
	}

	if session.Mode == stripe.CheckoutSessionModeSubscription {
		payment.Type = payments.TypeSubscription
	}

	if session.PaymentIntent != nil {
		payment.StripePaymentIntentID = session.PaymentIntent.ID
	}

	return payment
}

func (s *StripeWebhookService) handlePaymentIntentFailedEvent(ctx context.Context, eventID string, pi *stripe.PaymentIntent) error {
	l := s.loggerProvider(ctx)

	client, err := s.resolveClient(ctx, pi.Metadata[domain.MetadataClientID], customerID(pi.Customer))
	if err != nil {
		return err
	}

	if client == nil {
		l.Warningf("payment intent %s failed for an unknown client", pi.ID)
		return nil
	}

	message := "Unknown error"
	if pi.LastPaymentError != nil && pi.LastPaymentError.Msg != "" {
		message = pi.LastPaymentError.Msg
	}

	_, err = s.clientsDal.Settle(ctx, client.ID, eventID, &payments.Payment{
		StripePaymentIntentID: pi.ID,
		Amount:                utils.FromCents(pi.Amount),
		Currency:              string(pi.Currency),
		Status:                payments.StatusFailed,
		Type:                  payments.TypeOneTime,
		Description:           "Failed payment: " + message,
		FailureMessage:        message,
	}, clients.PaymentEffect{Note: "Payment failed: " + message})

	return err
}

func (s *StripeWebhookService) handleSubscriptionChanged(ctx context.Context, sub *stripe.Subscription) error {
	l := s.loggerProvider(ctx)

	client, err := s.resolveClient(ctx, sub.Metadata[domain.MetadataClientID], customerID(sub.Customer))
	if err != nil {
		return err
	}

	var clientID string
	if client != nil {
		clientID = client.ID
	}

	record := toSubscription(sub, clientID)

	if err := s.subscriptionsDal.Upsert(ctx, record); err != nil {
		return err
	}

	if client == nil {
		l.Warningf("subscription %s has no matching client", sub.ID)
		return nil
	}

	updates := []firestore.Update{
		{Path: "stripeSubscriptionId", Value: sub.ID},
		{Path: "subscriptionStatus", Value: record.Status},
		{Path: "currentPeriodStart", Value: record.CurrentPeriodStart},
		{Path: "currentPeriodEnd", Value: record.CurrentPeriodEnd},
		{Path: "cancelAtPeriodEnd", Value: record.CancelAtPeriodEnd},
	}

	if trigger, ok := subscriptionTrigger(sub.Status); ok {
		if next, err := clients.NextStatus(client.Status, trigger); err != nil {
			l.Warningf("client %s: %s", client.ID, err)
		} else {
			updates = append(updates, firestore.Update{Path: "status", Value: next})
		}
	}

	if record.Tier != "" {
		updates = append(updates, firestore.Update{Path: "tier", Value: record.Tier})
	}

	_, err = s.clientsDal.Update(ctx, client.ID, updates)

	return err
}

func (s *StripeWebhookService) handleSubscriptionDeleted(ctx context.Context, sub *stripe.Subscription) error {
	l := s.loggerProvider(ctx)

	client, err := s.resolveClient(ctx, sub.Metadata[domain.MetadataClientID], customerID(sub.Customer))
	if err != nil {
		return err
	}

	var clientID string
	if client != nil {
		clientID = client.ID
	}

	record := toSubscription(sub, clientID)
	record.Status = string(stripe.SubscriptionStatusCanceled)

	if record.CanceledAt == nil {
		now := s.timeFunc()
		record.CanceledAt = &now
	}

	if err := s.subscriptionsDal.Upsert(ctx, record); err != nil {
		return err
	}

	if client == nil {
		l.Warningf("deleted subscription %s has no matching client", sub.ID)
		return nil
	}

	next, err := clients.NextStatus(client.Status, clients.TriggerSubscriptionCanceled)
	if err != nil {
		return err
	}

	_, err = s.clientsDal.Update(ctx, client.ID, []firestore.Update{
		{Path: "status", Value: next},
		{Path: "subscriptionStatus", Value: record.Status},
		{Path: "cancelAtPeriodEnd", Value: false},
	})

	return err
}

// subscriptionTrigger maps a Stripe subscription status onto the client lifecycle.
// Statuses such as incomplete leave the client where it is.
func subscriptionTrigger(status stripe.SubscriptionStatus) (clients.Trigger, bool) {
	switch status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing:
		return clients.TriggerPaymentSucceeded, true
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return clients.TriggerPaymentOverdue, true
	case stripe.SubscriptionStatusCanceled:
		return clients.TriggerSubscriptionCanceled, true
	default:
		return "", false
	}
}

func (s *StripeWebhookService) handleInvoicePaymentSucceeded(ctx context.Context, eventID string, inv *stripe.Invoice) error {
	l := s.loggerProvider(ctx)

	if inv.BillingReason == stripe.InvoiceBillingReasonSubscriptionCreate && inv.Subscription != nil {
		sub, err := s.gateway.GetSubscription(inv.Subscription.ID)
		if err != nil {
			return err
		}

		if sub.Metadata[domain.MetadataOrigin] == domain.OriginCheckout {
			l.Infof("invoice %s is the first payment of checkout subscription %s", inv.ID, sub.ID)
			return nil
		}
	}

	client, err := s.resolveClient(ctx, "", customerID(inv.Customer))
	if err != nil {
		return err
	}

	if client == nil {
		l.Warningf("paid invoice %s has no matching client", inv.ID)
		return nil
	}

	amount := utils.FromCents(inv.AmountPaid)
	now := s.timeFunc()

	if next, err := clients.NextStatus(client.Status, clients.TriggerPaymentSucceeded); err != nil {
		l.Warningf("client %s: %s", client.ID, err)
	} else if next != client.Status {
		if _, err := s.clientsDal.Update(ctx, client.ID, []firestore.Update{
			{Path: "status", Value: next},
		}); err != nil {
			return err
		}
	}

	payment := &payments.Payment{
		StripeInvoiceID: inv.ID,
		Amount:          amount,
		Currency:        string(inv.Currency),
		Status:          payments.StatusSucceeded,
		Type:            payments.TypeSubscription,
		Description:     "Subscription payment - " + invoiceLineDescription(inv),
	}

	if inv.PaymentIntent != nil {
		payment.StripePaymentIntentID = inv.PaymentIntent.ID
	}

	if inv.Charge != nil {
		payment.StripeChargeID = inv.Charge.ID
	}

	settled, err := s.clientsDal.Settle(ctx, client.ID, eventID, payment, clients.PaymentEffect{AmountPaid: amount})
	if err != nil {
		return err
	}

	if !settled {
		l.Infof("payment of invoice %s already applied to client %s", inv.ID, client.ID)
	}

	_, err = s.invoicesService.CreatePaid(ctx, &invoices.Invoice{
		ClientID:        client.ID,
		StripeInvoiceID: inv.ID,
		Tier:            client.Tier,
		Amount:          amount,
		Currency:        string(inv.Currency),
		Description:     "Subscription Invoice - " + time.Unix(inv.PeriodStart, 0).UTC().Format("2006-01-02"),
		PaidAt:          &now,
	})

	return err
}

func invoiceLineDescription(inv *stripe.Invoice) string {
	if inv.Lines != nil && len(inv.Lines.Data) > 0 && inv.Lines.Data[0].Description != "" {
		return inv.Lines.Data[0].Description
	}

	return "Monthly"
}

func (s *StripeWebhookService) handleInvoicePaymentFailed(ctx context.Context, eventID string, inv *stripe.Invoice) error {
	l := s.loggerProvider(ctx)

	client, err := s.resolveClient(ctx, "", customerID(inv.Customer))
	if err != nil {
		return err
	}

	if client == nil {
		l.Warningf("failed invoice %s has no matching client", inv.ID)
		return nil
	}

	updates := []firestore.Update{
		{Path: "subscriptionStatus", Value: string(stripe.SubscriptionStatusPastDue)},
	}

	if next, err := clients.NextStatus(client.Status, clients.TriggerPaymentOverdue); err != nil {
		l.Warningf("client %s: %s", client.ID, err)
	} else {
		updates = append(updates, firestore.Update{Path: "status", Value: next})
	}

	if _, err := s.clientsDal.Update(ctx, client.ID, updates); err != nil {
		return err
	}

	_, err = s.clientsDal.Settle(ctx, client.ID, eventID, &payments.Payment{
		StripeInvoiceID: inv.ID,
		Amount:          utils.FromCents(inv.AmountDue),
		Currency:        string(inv.Currency),
		Status:          payments.StatusFailed,
		Type:            payments.TypeSubscription,
		Description:     "Failed subscription payment",
	}, clients.PaymentEffect{Note: "Invoice payment failed: " + inv.ID})

	return err
}

// handleChargeRefunded applies the part of the charge's refunded total not yet
// applied. The original payment's refundedAmount moves last, once the client
// and the refund record are written.
func (s *StripeWebhookService) handleChargeRefunded(ctx context.Context, eventID string, charge *stripe.Charge) error {
	l := s.loggerProvider(ctx)

	var paymentIntentID string
	if charge.PaymentIntent != nil {
		paymentIntentID = charge.PaymentIntent.ID
	}

	total := utils.FromCents(charge.AmountRefunded)
	refunded := total

	var clientID string

	payment, err := s.paymentsService.FindByCharge(ctx, charge.ID, paymentIntentID)

	switch {
	case err == nil:
		refunded = math.Max(0, total-payment.RefundedAmount)
		clientID = payment.ClientID
	case errors.Is(err, payments.ErrPaymentNotFound):
		l.Warningf("refunded charge %s has no recorded payment", charge.ID)
	default:
		return err
	}

	client, err := s.resolveClient(ctx, clientID, customerID(charge.Customer))
	if err != nil {
		return err
	}

	if client == nil {
		l.Warningf("refunded charge %s has no matching client", charge.ID)
	} else if refunded > 0 {
		if _, err := s.clientsDal.Settle(ctx, client.ID, eventID, &payments.Payment{
			StripeChargeID:        charge.ID,
			StripePaymentIntentID: paymentIntentID,
			Amount:                -refunded,
			Currency:              string(charge.Currency),
			Status:                payments.StatusSucceeded,
			Type:                  payments.TypeRefund,
			Description:           "Refund for charge " + charge.ID,
			RefundedAmount:        refunded,
		}, clients.PaymentEffect{
			AmountPaid: -refunded,
			Note:       fmt.Sprintf("Refund processed: $%.2f", refunded),
		}); err != nil {
			return err
		}
	}

	if payment == nil {
		return nil
	}

	return s.paymentsService.MarkRefunded(ctx, payment.ID, total, charge.Refunded)
}

func (s *StripeWebhookService) handleChargeDisputeCreated(ctx context.Context, dispute *stripe.Dispute) error {
	l := s.loggerProvider(ctx)

	record := &domain.Dispute{
		ID:       dispute.ID,
		Amount:   utils.FromCents(dispute.Amount),
		Currency: string(dispute.Currency),
		Reason:   string(dispute.Reason),
		Status:   string(dispute.Status),
	}

	if dispute.PaymentIntent != nil {
		record.PaymentIntentID = dispute.PaymentIntent.ID
	}

	var customer string

	if dispute.Charge != nil {
		record.ChargeID = dispute.Charge.ID
		customer = customerID(dispute.Charge.Customer)

		if customer == "" {
			charge, err := s.gateway.GetCharge(dispute.Charge.ID)
			if err != nil {
				return err
			}

			customer = customerID(charge.Customer)
		}
	}

	client, err := s.resolveClient(ctx, "", customer)
	if err != nil {
		return err
	}

	if client != nil {
		record.ClientID = client.ID
	}

	if err := s.stripeDAL.SaveDispute(ctx, record); err != nil {
		return err
	}

	if client == nil {
		l.Warningf("dispute %s has no matching client", dispute.ID)
		return nil
	}

	note := fmt.Sprintf("DISPUTE: %s - Amount: $%.2f", record.Reason, record.Amount)

	_, err = s.clientsDal.Update(ctx, client.ID, []firestore.Update{
		{Path: "notes", Value: clients.AppendNote(client.Notes, note)},
	})

	return err
}

func (s *StripeWebhookService) handleCustomerUpdated(ctx context.Context, customer *stripe.Customer) error {
	client, err := s.resolveClient(ctx, customer.Metadata[domain.MetadataClientID], customer.ID)
	if err != nil {
		return err
	}

	if client == nil || customer.Email == "" {
		return nil
	}

	updates := []firestore.Update{
		{Path: "email", Value: customer.Email},
	}

	if customer.Name != "" {
		updates = append(updates, firestore.Update{Path: "name", Value: customer.Name})
	}

	_, err = s.clientsDal.Update(ctx, client.ID, updates)

	return err
}

// resolveClient finds the client by metadata id, then by Stripe customer.
// It returns nil without error when neither matches.
func (s *StripeWebhookService) resolveClient(ctx context.Context, clientID, stripeCustomerID string) (*clients.Client, error) {
	if clientID != "" {
		client, err := s.clientsDal.Get(ctx, clientID)
		if err == nil {
			return client, nil
		}

		if !errors.Is(err, clients.ErrClientNotFound) {
			return nil, err
		}
	}

	if stripeCustomerID != "" {
		client, err := s.clientsDal.FindByStripeCustomerID(ctx, stripeCustomerID)
		if err == nil {
			return client, nil
		}

		if !errors.Is(err, clients.ErrClientNotFound) {
			return nil, err
		}
	}

	return nil, nil
}

func customerID(c *stripe.Customer) string {
	if c == nil {
		return ""
	}

	return c.ID
}
