package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gettupp/backoffice/common"
	"github.com/gettupp/backoffice/framework/connection"
	leads "github.com/gettupp/backoffice/leads/domain"
	leadsService "github.com/gettupp/backoffice/leads/service"
	leadsIface "github.com/gettupp/backoffice/leads/service/iface"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/tally/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

const secretEnv = "TALLY_WEBHOOK_SECRET"

type TallyService struct {
	loggerProvider logger.Provider
	leadsService   leadsIface.LeadsIface
	secret         []byte
}

func NewTallyService(log logger.Provider, conn *connection.Connection) *TallyService {
	return &TallyService{
		loggerProvider: log,
		leadsService:   leadsService.NewLeadsService(log, conn),
		secret:         []byte(os.Getenv(secretEnv)),
	}
}

// VerifySignature checks the tally-signature header against the raw body.
// Without a configured secret every request passes.
func (s *TallyService) VerifySignature(ctx context.Context, body []byte, signature string) error {
	if len(s.secret) == 0 {
		s.loggerProvider(ctx).Warningf("%s is not set, skipping signature verification", secretEnv)
		return nil
	}

	if !common.VerifySha256HMAC(body, s.secret, signature) {
		return domain.ErrInvalidSignature
	}

	return nil
}

// HandleWebhook turns a verified form submission into a new lead.
func (s *TallyService) HandleWebhook(ctx context.Context, body []byte, signature string) (*domain.WebhookResult, error) {
	l := s.loggerProvider(ctx)

	if err := s.VerifySignature(ctx, body, signature); err != nil {
		return nil, err
	}

	var payload domain.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPayload, err)
	}

	if payload.EventType != domain.EventFormSubmission {
		l.Infof("ignoring tally event type %s", payload.EventType)
		return &domain.WebhookResult{Ignored: true}, nil
	}

	lead := leadFromResponse(&payload.Data)

	l.SetLabels(map[string]string{
		"formId":       payload.Data.FormID,
		"submissionId": payload.Data.SubmissionID,
	})
	l.Infof("tally submission from form %q: venue %q email %q", payload.Data.FormName, lead.Venue, lead.Email)

	id, err := s.leadsService.Intake(ctx, lead)
	if err != nil {
		return nil, err
	}

	return &domain.WebhookResult{
		SubmissionID: payload.Data.SubmissionID,
		LeadID:       id,
	}, nil
}

func leadFromResponse(r *domain.Response) *leads.Lead {
	venue := r.Lookup("venue", "business")
	contactName := r.Lookup("name")

	name := venue
	if name == "" {
		name = contactName
	}

	notes := ""
	if r.FormName != "" {
		notes = "Tally form: " + r.FormName
	}

	return &leads.Lead{
		Name:               name,
		Venue:              venue,
		ContactName:        contactName,
		Email:              r.Lookup("email"),
		Phone:              r.Lookup("phone"),
		Instagram:          r.Lookup("instagram", "ig"),
		PreferredNight:     r.Lookup("night", "preferred"),
		Tier:               tiers.TierPilot,
		Status:             leads.LeadStatusNew,
		QualificationScore: leads.DefaultQualificationScore,
		Source:             leads.SourceTally,
		Notes:              notes,
		TallyResponseID:    r.ResponseID,
	}
}
