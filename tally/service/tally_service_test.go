package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/gettupp/backoffice/common"
	leads "github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/leads/service/mocks"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/tally/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

const formSubmission = `{
	"eventId": "evt-1",
	"eventType": "FORM_SUBMISSION",
	"createdAt": "2024-06-01T22:00:00Z",
	"data": {
		"responseId": "resp-1",
		"submissionId": "sub-1",
		"formId": "form-1",
		"formName": "Pilot Night",
		"fields": [
			{"key": "q1", "label": "Venue name", "type": "INPUT_TEXT", "value": "Blue Lounge"},
			{"key": "q2", "label": "Email", "type": "INPUT_EMAIL", "value": "owner@blue.co"},
			{"key": "q3", "label": "Instagram", "type": "INPUT_TEXT", "value": "@BlueLounge"},
			{"key": "q4", "label": "Preferred night", "type": "INPUT_TEXT", "value": "Friday"},
			{"key": "q5", "label": "Phone number", "type": "INPUT_PHONE_NUMBER", "value": "3055550100"}
		]
	}
}`

func TestTallyService_HandleWebhook(t *testing.T) {
	secret := []byte("tally-secret")
	body := []byte(formSubmission)
	validSignature := hex.EncodeToString(common.Sha256HMAC(body, secret))
	intakeErr := errors.New("write failed")

	tests := []struct {
		name      string
		secret    []byte
		body      []byte
		signature string
		on        func(*mocks.LeadsIface)
		want      *domain.WebhookResult
		wantErr   error
	}{
		{
			name:      "bad signature",
			secret:    secret,
			body:      body,
			signature: "deadbeef",
			wantErr:   domain.ErrInvalidSignature,
		},
		{
			name:    "missing signature",
			secret:  secret,
			body:    body,
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name:      "malformed body",
			secret:    secret,
			body:      []byte("{"),
			signature: hex.EncodeToString(common.Sha256HMAC([]byte("{"), secret)),
			wantErr:   domain.ErrInvalidPayload,
		},
		{
			name: "other events are ignored",
			body: []byte(`{"eventId":"evt-2","eventType":"FORM_UPDATED","data":{}}`),
			want: &domain.WebhookResult{Ignored: true},
		},
		{
			name:      "submission creates a lead",
			secret:    secret,
			body:      body,
			signature: validSignature,
			on: func(m *mocks.LeadsIface) {
				m.On("Intake", mock.Anything, &leads.Lead{
					Name:               "Blue Lounge",
					Venue:              "Blue Lounge",
					ContactName:        "Blue Lounge",
					Email:              "owner@blue.co",
					Phone:              "3055550100",
					Instagram:          "@BlueLounge",
					PreferredNight:     "Friday",
					Tier:               tiers.TierPilot,
					Status:             leads.LeadStatusNew,
					QualificationScore: 50,
					Source:             leads.SourceTally,
					Notes:              "Tally form: Pilot Night",
					TallyResponseID:    "resp-1",
				}).Return("lead-1", nil)
			},
			want: &domain.WebhookResult{SubmissionID: "sub-1", LeadID: "lead-1"},
		},
		{
			name: "unsigned submission without a secret",
			body: body,
			on: func(m *mocks.LeadsIface) {
				m.On("Intake", mock.Anything, mock.Anything).Return("lead-2", nil)
			},
			want: &domain.WebhookResult{SubmissionID: "sub-1", LeadID: "lead-2"},
		},
		{
			name:      "intake failure",
			secret:    secret,
			body:      body,
			signature: validSignature,
			on: func(m *mocks.LeadsIface) {
				m.On("Intake", mock.Anything, mock.Anything).Return("", intakeErr)
			},
			wantErr: intakeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leadsService := mocks.NewLeadsIface(t)
			if tt.on != nil {
				tt.on(leadsService)
			}

			s := &TallyService{
				loggerProvider: logger.FromContext,
				leadsService:   leadsService,
				secret:         tt.secret,
			}

			got, err := s.HandleWebhook(context.Background(), tt.body, tt.signature)
			if tt.wantErr != nil {
				assert.That(t, errors.Is(err, tt.wantErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
