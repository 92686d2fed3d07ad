package service

import (
	"time"

	clientsDal "github.com/gettupp/backoffice/clients/dal"
	clientsIface "github.com/gettupp/backoffice/clients/dal/iface"
	"github.com/gettupp/backoffice/framework/connection"
	invoices "github.com/gettupp/backoffice/invoices/service"
	invoicesIface "github.com/gettupp/backoffice/invoices/service/iface"
	"github.com/gettupp/backoffice/logger"
	payments "github.com/gettupp/backoffice/payments/service"
	paymentsIface "github.com/gettupp/backoffice/payments/service/iface"
	"github.com/gettupp/backoffice/stripe/dal"
	"github.com/gettupp/backoffice/stripe/iface"
	subscriptionsDal "github.com/gettupp/backoffice/subscriptions/dal"
	subscriptionsIface "github.com/gettupp/backoffice/subscriptions/dal/iface"
)

type StripeWebhookService struct {
	loggerProvider   logger.Provider
	gateway          iface.Gateway
	stripeDAL        dal.IStripeFirestore
	clientsDal       clientsIface.Clients
	invoicesService  invoicesIface.InvoicesIface
	paymentsService  paymentsIface.PaymentsIface
	subscriptionsDal subscriptionsIface.Subscriptions
	timeFunc         func() time.Time
}

func NewStripeWebhookService(loggerProvider logger.Provider, conn *connection.Connection, gateway iface.Gateway) *StripeWebhookService {
	return &StripeWebhookService{
		loggerProvider:   loggerProvider,
		gateway:          gateway,
		stripeDAL:        dal.NewStripeFirestoreWithClient(conn.Firestore),
		clientsDal:       clientsDal.NewClientsFirestoreWithClient(conn.Firestore),
		invoicesService:  invoices.NewInvoicesService(loggerProvider, conn),
		paymentsService:  payments.NewPaymentsService(loggerProvider, conn),
		subscriptionsDal: subscriptionsDal.NewSubscriptionsFirestoreWithClient(conn.Firestore),
		timeFunc:         time.Now,
	}
}
