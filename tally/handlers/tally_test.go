package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
	"github.com/gettupp/backoffice/tally/domain"
	"github.com/gettupp/backoffice/tally/service/mocks"
)

func TestTally_WebhookHandler(t *testing.T) {
	body := []byte(`{"eventType":"FORM_SUBMISSION"}`)
	storeErr := errors.New("firestore unavailable")

	tests := []struct {
		name         string
		on           func(*mocks.TallyIface)
		expectedErr  error
		expectedCode int
		expectedBody string
	}{
		{
			name: "invalid signature",
			on: func(m *mocks.TallyIface) {
				m.On("HandleWebhook", mock.Anything, body, "sig").Return(nil, domain.ErrInvalidSignature)
			},
			expectedErr:  domain.ErrInvalidSignature,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid payload",
			on: func(m *mocks.TallyIface) {
				m.On("HandleWebhook", mock.Anything, body, "sig").
					Return(nil, fmt.Errorf("%w: unexpected end of JSON input", domain.ErrInvalidPayload))
			},
			expectedErr:  domain.ErrInvalidPayload,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			on: func(m *mocks.TallyIface) {
				m.On("HandleWebhook", mock.Anything, body, "sig").Return(nil, storeErr)
			},
			expectedErr:  storeErr,
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "ignored event",
			on: func(m *mocks.TallyIface) {
				m.On("HandleWebhook", mock.Anything, body, "sig").Return(&domain.WebhookResult{Ignored: true}, nil)
			},
			expectedBody: `{"received":true}`,
		},
		{
			name: "lead created",
			on: func(m *mocks.TallyIface) {
				m.On("HandleWebhook", mock.Anything, body, "sig").
					Return(&domain.WebhookResult{SubmissionID: "sub-1", LeadID: "lead-1"}, nil)
			},
			expectedBody: `{"success":true,"data":{"submissionId":"sub-1","leadId":"lead-1"},"message":"Webhook processed successfully"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mocks.NewTallyIface(t)
			tt.on(s)

			h := &Tally{loggerProvider: logger.FromContext, service: s}

			ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodPost, body, nil)
			ctx.Request.Header.Set(signatureHeader, "sig")

			respond := h.WebhookHandler(ctx)
			if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
				return
			}

			assert.NoError(t, respond)
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.expectedBody, recorder.Body.String())
		})
	}
}

func TestTally_Verify(t *testing.T) {
	h := &Tally{loggerProvider: logger.FromContext}

	t.Run("challenge echoed", func(t *testing.T) {
		ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodGet, nil, nil)
		ctx.Request.URL.RawQuery = "challenge=abc123"

		assert.NoError(t, h.Verify(ctx))
		assert.Equal(t, `{"challenge":"abc123"}`, recorder.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodGet, nil, nil)

		assert.NoError(t, h.Verify(ctx))
		assert.Equal(t, `{"message":"Tally webhook endpoint active","status":"ok"}`, recorder.Body.String())
	})
}
