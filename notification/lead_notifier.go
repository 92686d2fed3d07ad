package notification

import (
	"context"
	"fmt"

	"github.com/gettupp/backoffice/common"
	leads "github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/mailer"
)

//go:generate mockery --name LeadNotifier --output ./mocks
type LeadNotifier interface {
	NotifyNewLead(ctx context.Context, lead *leads.Lead)
}

// LeadAlerts tells the team about new leads over slack and email, whichever is configured.
type LeadAlerts struct {
	loggerProvider  logger.Provider
	notification    *Notification
	slackWebhookURL string
	alertEmail      string
}

func NewLeadAlerts(log logger.Provider) *LeadAlerts {
	return &LeadAlerts{
		loggerProvider:  log,
		notification:    NewNotification(mailer.NewSender(mailer.ConfigFromEnv())),
		slackWebhookURL: common.GetEnv("SLACK_WEBHOOK_URL", ""),
		alertEmail:      common.GetEnv("LEAD_ALERT_EMAIL", ""),
	}
}

func (a *LeadAlerts) targets(lead *leads.Lead) []interface{} {
	var targets []interface{}

	if a.slackWebhookURL != "" {
		targets = append(targets, &SlackNotificationTarget{WebhookURL: a.slackWebhookURL})
	}

	if a.alertEmail != "" {
		targets = append(targets, &MailNotificationTarget{
			To: a.alertEmail,
			SimpleNotification: &mailer.SimpleNotification{
				Subject:    fmt.Sprintf("New lead: %s", lead.Name),
				Preheader:  fmt.Sprintf("%s came in through %s", lead.Name, lead.Source),
				Categories: []string{mailer.CategoryLeads},
			},
		})
	}

	return targets
}

// NotifyNewLead is best effort: failures are logged and never returned.
func (a *LeadAlerts) NotifyNewLead(ctx context.Context, lead *leads.Lead) {
	targets := a.targets(lead)
	if len(targets) == 0 {
		return
	}

	if err := a.notification.SendNotification(ctx, SeverityInfo, leadSummary(lead), targets...); err != nil {
		a.loggerProvider(ctx).Warningf("could not send new lead notification for lead %s: %s", lead.ID, err)
	}
}

func leadSummary(lead *leads.Lead) []string {
	data := []string{
		fmt.Sprintf("New lead **%s** from _%s_  \n", lead.Name, lead.Source),
		fmt.Sprintf("Email: %s  \n", lead.Email),
	}

	if lead.Phone != "" {
		data = append(data, fmt.Sprintf("Phone: %s  \n", lead.Phone))
	}

	if lead.Instagram != "" {
		data = append(data, fmt.Sprintf("Instagram: [@%s](https://instagram.com/%s)  \n", lead.Instagram, lead.Instagram))
	}

	if lead.PreferredNight != "" {
		data = append(data, fmt.Sprintf("Preferred night: %s  \n", lead.PreferredNight))
	}

	data = append(data, fmt.Sprintf("Tier: %s, score %d  \n", lead.Tier, lead.QualificationScore))

	return data
}
