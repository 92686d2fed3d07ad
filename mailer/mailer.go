package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/gettupp/backoffice/common"
)

const (
	defaultFromEmail = "noreply@gettupp.com"
	defaultFromName  = "GettUpp OS"

	CategoryLeads = "leads"
)

// Config : Sendgrid configuration
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// ConfigFromEnv reads the Sendgrid configuration from the environment.
func ConfigFromEnv() Config {
	return Config{
		APIKey:    common.GetEnv("SENDGRID_API_KEY", ""),
		FromEmail: common.GetEnv("MAIL_FROM_EMAIL", defaultFromEmail),
		FromName:  common.GetEnv("MAIL_FROM_NAME", defaultFromName),
	}
}

// SimpleNotification : Simple notification data. Body is HTML.
type SimpleNotification struct {
	Subject    string
	Preheader  string
	Body       string
	CCs        []string
	Categories []string
}

//go:generate mockery --name Sender --output ./mocks
type Sender interface {
	SendNotification(ctx context.Context, sn *SimpleNotification, to string) error
}

// NewSender returns a Sendgrid mailer, or a mailer that only prints when no API key is configured.
func NewSender(config Config) Sender {
	if config.APIKey == "" {
		return CowardMailer{}
	}

	return NewMailer(config)
}

type Mailer struct {
	config Config
	client *sendgrid.Client
}

func NewMailer(config Config) *Mailer {
	return &Mailer{
		config: config,
		client: sendgrid.NewSendClient(config.APIKey),
	}
}

func (m *Mailer) SendNotification(ctx context.Context, sn *SimpleNotification, to string) error {
	message := buildMessage(m.config, sn, to)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}

	return nil
}

func buildMessage(config Config, sn *SimpleNotification, to string) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(config.FromName, config.FromEmail))
	m.Subject = sn.Subject

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", to))

	if len(sn.CCs) > 0 {
		ccs := make([]*mail.Email, 0)

		for _, cc := range sn.CCs {
			if cc != to {
				ccs = append(ccs, mail.NewEmail("", cc))
			}
		}

		if len(ccs) > 0 {
			personalization.AddCCs(ccs...)
		}
	}

	m.AddPersonalizations(personalization)

	if sn.Preheader != "" {
		m.AddContent(mail.NewContent("text/plain", sn.Preheader))
	}

	m.AddContent(mail.NewContent("text/html", sn.Body))
	m.AddCategories(sn.Categories...)

	return m
}

// CowardMailer prints notifications instead of sending them.
type CowardMailer struct{}

func (CowardMailer) SendNotification(_ context.Context, sn *SimpleNotification, to string) error {
	marshaledNotification, err := json.Marshal(sn)
	if err != nil {
		return err
	}

	fmt.Printf("Coward mailer not sending to %s: %s\n", to, string(marshaledNotification))

	return nil
}
