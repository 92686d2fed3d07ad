package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	clientsHandlers "github.com/gettupp/backoffice/clients/handlers"
	"github.com/gettupp/backoffice/cmd/api/handlers"
	cmsHandlers "github.com/gettupp/backoffice/cms/handlers"
	"github.com/gettupp/backoffice/common"
	fb "github.com/gettupp/backoffice/firebase"
	"github.com/gettupp/backoffice/framework/connection"
	"github.com/gettupp/backoffice/framework/mid"
	"github.com/gettupp/backoffice/framework/web"
	invoicesHandlers "github.com/gettupp/backoffice/invoices/handlers"
	knowledgeHandlers "github.com/gettupp/backoffice/knowledge/handlers"
	leadsHandlers "github.com/gettupp/backoffice/leads/handlers"
	"github.com/gettupp/backoffice/logger"
	paymentsHandlers "github.com/gettupp/backoffice/payments/handlers"
	shootsHandlers "github.com/gettupp/backoffice/shoots/handlers"
	stripeHandlers "github.com/gettupp/backoffice/stripe/handlers"
	tallyHandlers "github.com/gettupp/backoffice/tally/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	verifier, err := fb.NewAuthClient(context.Background())
	if err != nil {
		panic(err)
	}

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())
	app.NoRoute()

	leads := leadsHandlers.NewLeads(loggerProvider, a.conn)
	clients := clientsHandlers.NewClients(loggerProvider, a.conn)
	shoots := shootsHandlers.NewShoots(loggerProvider, a.conn)
	invoices := invoicesHandlers.NewInvoices(loggerProvider, a.conn)
	payments := paymentsHandlers.NewPayments(loggerProvider, a.conn)
	stripe := stripeHandlers.NewStripe(loggerProvider, a.conn)
	tally := tallyHandlers.NewTally(loggerProvider, a.conn)
	knowledge := knowledgeHandlers.NewKnowledge(loggerProvider, a.conn)
	content := cmsHandlers.NewContent(loggerProvider, a.conn)

	if common.IsLocalhost {
		app.Get("/boom", handlers.Boom)
	}

	app.Get("/health", handlers.Health)

	// PAGE ROUTES
	app.Get("/admin/*path", func(ctx *gin.Context) error {
		return web.Respond(ctx, gin.H{"path": ctx.Request.URL.Path}, http.StatusOK)
	}, mid.SessionRequired())

	apiGroup := web.NewGroup(app, "/api")
	{
		// PUBLIC
		apiGroup.Post("/booking", leads.Book)
		apiGroup.Post("/public-checkout", stripe.CreatePublicCheckout)
		apiGroup.Post("/assistant", knowledge.Ask)
		apiGroup.Get("/content", content.GetContent)

		// WEBHOOKS, authenticated by their signatures
		webhooksGroup := apiGroup.NewSubgroup("/webhooks")
		{
			webhooksGroup.Post("/stripe", stripe.WebhookHandler)
			webhooksGroup.Post("/tally", tally.WebhookHandler)
			webhooksGroup.Get("/tally", tally.Verify)
		}

		authenticated := mid.AuthRequired(verifier)

		apiGroup.Post("/checkout", stripe.CreateCheckout, authenticated)

		stripeGroup := apiGroup.NewSubgroup("/stripe", authenticated)
		{
			stripeGroup.Post("/portal", stripe.CreatePortalSession)
			stripeGroup.Post("/refunds", stripe.CreateRefund)
			stripeGroup.Get("/refunds", stripe.ListRefunds)
			stripeGroup.Get("/subscriptions", stripe.ListSubscriptions)
			stripeGroup.Post("/subscriptions", stripe.CreateSubscription)
			stripeGroup.Patch("/subscriptions", stripe.UpdateSubscription)
		}

		adminGroup := apiGroup.NewSubgroup("/admin", authenticated)
		{
			idParam := mid.ValidatePathParamNotEmpty("id")

			adminGroup.Get("/leads", leads.ListLeads)
			adminGroup.Post("/leads", leads.CreateLead)
			adminGroup.Get("/leads/:id", leads.GetLead, idParam)
			adminGroup.Put("/leads/:id", leads.UpdateLead, idParam)

			adminGroup.Get("/clients", clients.ListClients)
			adminGroup.Post("/clients", clients.CreateClient)
			adminGroup.Get("/clients/:id", clients.GetClient, idParam)
			adminGroup.Put("/clients/:id", clients.UpdateClient, idParam)
			adminGroup.Delete("/clients/:id", clients.DeleteClient, idParam)

			adminGroup.Get("/shoots", shoots.ListShoots)
			adminGroup.Post("/shoots", shoots.CreateShoot)
			adminGroup.Get("/shoots/:id", shoots.GetShoot, idParam)
			adminGroup.Put("/shoots/:id", shoots.UpdateShoot, idParam)
			adminGroup.Delete("/shoots/:id", shoots.CancelShoot, idParam)

			adminGroup.Get("/invoices", invoices.ListInvoices)
			adminGroup.Get("/invoices/:id", invoices.GetInvoice, idParam)

			adminGroup.Get("/payments", payments.ListPayments)
			adminGroup.Get("/payments/:id", payments.GetPayment, idParam)

			adminGroup.Get("/knowledge", knowledge.ListNodes)
			adminGroup.Post("/knowledge", knowledge.CreateNode)
			adminGroup.Put("/knowledge/:id", knowledge.UpdateNode, idParam)
			adminGroup.Delete("/knowledge/:id", knowledge.DeleteNode, idParam)

			adminGroup.Post("/content/seed", content.SeedContent)
		}
	}

	return app
}
