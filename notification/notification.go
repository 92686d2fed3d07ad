package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/slack-go/slack"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/mailer"
)

// Severity represents a notification urgency.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityMedium
	SeverityUrgent

	SeverityInfoColor   = "#4CAF50"
	SeverityMediumColor = "#FDEF19"
	SeverityUrgentColor = "#CC0000"
)

// MailNotificationTarget represents an email target.
type MailNotificationTarget struct {
	// To is the mail recipient.
	To string
	// SimpleNotification is sent without its Body, which SendNotification renders from the data.
	SimpleNotification *mailer.SimpleNotification
}

// SlackNotificationTarget represents a slack incoming webhook.
type SlackNotificationTarget struct {
	WebhookURL string
}

type webhookPoster func(ctx context.Context, url string, msg *slack.WebhookMessage) error

// Notification represents a notification instance.
type Notification struct {
	timeFunc        func() int64
	projectNameFunc func() string
	mailer          mailer.Sender
	postWebhook     webhookPoster
}

// NewNotification returns a new instance of the notification service.
func NewNotification(sender mailer.Sender) *Notification {
	return &Notification{
		timeFunc:        func() int64 { return time.Now().Unix() },
		projectNameFunc: func() string { return common.ProjectID },
		mailer:          sender,
		postWebhook:     slack.PostWebhookContext,
	}
}

// SendNotification sends one or more paragraphs of text to one or more targets.
// Text data is markdown; it is rendered to HTML for mail targets and sent as
// mrkdwn attachment fields to slack targets.
// Example:
//
//	n := notification.NewNotification(mailer.NewSender(mailer.ConfigFromEnv()))
//	data := []string{"New lead **Roxy Bar**  \n", "Tier: pilot  \n"}
//	n.SendNotification(ctx, notification.SeverityInfo, data,
//		&notification.MailNotificationTarget{To: "owner@gettupp.com", SimpleNotification: &mailer.SimpleNotification{Subject: "New lead"}},
//		&notification.SlackNotificationTarget{WebhookURL: os.Getenv("SLACK_WEBHOOK_URL")},
//	)
func (n *Notification) SendNotification(ctx context.Context, severity Severity, data []string, targets ...interface{}) error {
	for _, target := range targets {
		switch target := target.(type) {
		case *MailNotificationTarget:
			sn := *target.SimpleNotification
			sn.Body = n.assembleEmail(data)

			if err := n.mailer.SendNotification(ctx, &sn, target.To); err != nil {
				return err
			}
		case *SlackNotificationTarget:
			if err := n.postWebhook(ctx, target.WebhookURL, n.assembleSlack(data, severity)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported target type %v", reflect.TypeOf(target))
		}
	}

	return nil
}

func (n *Notification) assembleEmail(data []string) string {
	var body string

	for _, f := range n.toHTML(data) {
		body = fmt.Sprintf("%s%s", body, f)
	}

	return body
}

func (n *Notification) assembleSlack(data []string, severity Severity) *slack.WebhookMessage {
	fields := []slack.AttachmentField{
		{
			Title: "Environment",
			Value: n.projectNameFunc(),
			Short: true,
		},
	}

	for _, d := range data {
		fields = append(fields, slack.AttachmentField{Value: d})
	}

	var color string

	switch severity {
	case SeverityMedium:
		color = SeverityMediumColor
	case SeverityUrgent:
		color = SeverityUrgentColor
	default:
		color = SeverityInfoColor
	}

	return &slack.WebhookMessage{
		Attachments: []slack.Attachment{
			{
				Ts:         json.Number(strconv.FormatInt(n.timeFunc(), 10)),
				Color:      color,
				Fields:     fields,
				MarkdownIn: []string{"fields"},
			},
		},
	}
}

func (n *Notification) toHTML(data []string) []string {
	var renderedData []string

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	for _, d := range data {
		html := markdown.ToHTML([]byte(d), nil, renderer)
		renderedData = append(renderedData, string(html))
	}

	return renderedData
}
