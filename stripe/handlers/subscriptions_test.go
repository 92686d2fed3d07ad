package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/stripe/domain"
	"github.com/gettupp/backoffice/stripe/service"
	subscriptions "github.com/gettupp/backoffice/subscriptions/domain"
)

func TestStripe_ListSubscriptions(t *testing.T) {
	h, f := newStripeHandler(t)
	f.service.On("ListSubscriptions", mock.Anything, service.ListSubscriptionsRequest{ClientID: "client-1", Status: "active"}).
		Return([]*subscriptions.Subscription{{ID: "sub_1", ClientID: "client-1", Status: "active"}}, nil)

	ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodGet, nil, nil)
	ctx.Request.URL.RawQuery = "clientId=client-1&status=active"

	assert.NoError(t, h.ListSubscriptions(ctx))

	var res struct {
		Data []subscriptions.Subscription `json:"data"`
	}

	testtools.DecodeResponse(t, recorder, &res)
	assert.Equal(t, 1, len(res.Data))
}

func TestStripe_CreateSubscription(t *testing.T) {
	t.Run("missing price", func(t *testing.T) {
		h, _ := newStripeHandler(t)

		ctx, _ := testtools.GenerateCtxWithJSONAndParams(t, map[string]string{"clientId": "client-1"}, nil)
		assert.Error(t, h.CreateSubscription(ctx))
	})

	t.Run("client secret returned", func(t *testing.T) {
		h, f := newStripeHandler(t)
		f.service.On("CreateSubscription", mock.Anything, service.CreateSubscriptionRequest{ClientID: "client-1", PriceID: "price_t2"}).
			Return(&domain.NewSubscription{SubscriptionID: "sub_1", ClientSecret: "pi_secret", Status: "incomplete"}, nil)

		ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, map[string]string{"clientId": "client-1", "priceId": "price_t2"}, nil)

		assert.NoError(t, h.CreateSubscription(ctx))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestStripe_UpdateSubscription(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]string
		on           func(*stripeFields)
		expectedErr  error
		expectedCode int
	}{
		{
			name: "unknown action",
			body: map[string]string{"subscriptionId": "sub_1", "action": "pause"},
			on: func(f *stripeFields) {
				f.service.On("UpdateSubscription", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidAction)
			},
			expectedErr:  domain.ErrInvalidAction,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "change plan without price",
			body: map[string]string{"subscriptionId": "sub_1", "action": "change_plan"},
			on: func(f *stripeFields) {
				f.service.On("UpdateSubscription", mock.Anything, mock.Anything).Return(nil, domain.ErrMissingPriceID)
			},
			expectedErr:  domain.ErrMissingPriceID,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "cancel at period end",
			body: map[string]string{"subscriptionId": "sub_1", "action": "cancel"},
			on: func(f *stripeFields) {
				f.service.On("UpdateSubscription", mock.Anything, service.UpdateSubscriptionRequest{SubscriptionID: "sub_1", Action: "cancel"}).
					Return(&domain.SubscriptionUpdate{SubscriptionID: "sub_1", Status: "active", CancelAtPeriodEnd: true}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := newStripeHandler(t)
			tt.on(f)

			ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, tt.body, nil)

			respond := h.UpdateSubscription(ctx)
			if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
				return
			}

			assert.NoError(t, respond)
			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}
