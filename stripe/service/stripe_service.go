package service

import (
	clientsDal "github.com/gettupp/backoffice/clients/dal"
	clientsIface "github.com/gettupp/backoffice/clients/dal/iface"
	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
	invoices "github.com/gettupp/backoffice/invoices/service"
	invoicesIface "github.com/gettupp/backoffice/invoices/service/iface"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/stripe/iface"
	subscriptionsDal "github.com/gettupp/backoffice/subscriptions/dal"
	subscriptionsIface "github.com/gettupp/backoffice/subscriptions/dal/iface"
)

type StripeService struct {
	loggerProvider   logger.Provider
	gateway          iface.Gateway
	clientsDal       clientsIface.Clients
	invoicesService  invoicesIface.InvoicesIface
	subscriptionsDal subscriptionsIface.Subscriptions
	appURL           string
}

func NewStripeService(loggerProvider logger.Provider, conn *connection.Connection, gateway iface.Gateway) *StripeService {
	return &StripeService{
		loggerProvider:   loggerProvider,
		gateway:          gateway,
		clientsDal:       clientsDal.NewClientsFirestoreWithClient(conn.Firestore),
		invoicesService:  invoices.NewInvoicesService(loggerProvider, conn),
		subscriptionsDal: subscriptionsDal.NewSubscriptionsFirestoreWithClient(conn.Firestore),
		appURL:           common.AppURL,
	}
}
