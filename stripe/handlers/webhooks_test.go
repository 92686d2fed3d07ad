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
	"github.com/gettupp/backoffice/stripe/domain"
)

func TestStripe_WebhookHandler(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	storeErr := errors.New("firestore unavailable")

	tests := []struct {
		name         string
		signature    string
		on           func(*stripeFields)
		expectedErr  error
		expectedCode int
	}{
		{
			name:         "missing signature",
			expectedErr:  domain.ErrMissingSignature,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "bad signature",
			signature: "t=1,v1=bad",
			on: func(f *stripeFields) {
				f.webhookService.On("HandleEvent", mock.Anything, payload, "t=1,v1=bad").
					Return(fmt.Errorf("%w: %s", domain.ErrInvalidSignature, "no signatures found matching the expected signature"))
			},
			expectedErr:  domain.ErrInvalidSignature,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "missing webhook secret is a server error",
			signature: "t=1,v1=good",
			on: func(f *stripeFields) {
				f.webhookService.On("HandleEvent", mock.Anything, payload, "t=1,v1=good").Return(domain.ErrMissingWebhookKey)
			},
			expectedErr:  domain.ErrMissingWebhookKey,
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:      "processing failure lets stripe retry",
			signature: "t=1,v1=good",
			on: func(f *stripeFields) {
				f.webhookService.On("HandleEvent", mock.Anything, payload, "t=1,v1=good").Return(storeErr)
			},
			expectedErr:  storeErr,
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:      "received",
			signature: "t=1,v1=good",
			on: func(f *stripeFields) {
				f.webhookService.On("HandleEvent", mock.Anything, payload, "t=1,v1=good").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := newStripeHandler(t)
			if tt.on != nil {
				tt.on(f)
			}

			ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodPost, payload, nil)
			if tt.signature != "" {
				ctx.Request.Header.Set("Stripe-Signature", tt.signature)
			}

			respond := h.WebhookHandler(ctx)
			if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
				return
			}

			assert.NoError(t, respond)
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, `{"received":true}`, recorder.Body.String())
		})
	}
}
