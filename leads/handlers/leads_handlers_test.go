package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/leads/domain"
	"github.com/gettupp/backoffice/leads/service"
	"github.com/gettupp/backoffice/leads/service/mocks"
	"github.com/gettupp/backoffice/logger"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

type leadsFields struct {
	loggerProvider logger.Provider
	service        *mocks.LeadsIface
}

func TestLeads_CreateLead(t *testing.T) {
	testError := errors.New("test error")

	tests := []struct {
		name         string
		body         interface{}
		on           func(*leadsFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
	}{
		{
			name: "created",
			body: map[string]interface{}{"name": "Club Space", "email": "a@b.co"},
			on: func(f *leadsFields) {
				f.service.On("CreateLead", mock.Anything, service.CreateLeadRequest{Name: "Club Space", Email: "a@b.co"}).
					Return("lead-1", nil)
			},
		},
		{
			name:    "invalid tier fails binding",
			body:    map[string]interface{}{"name": "Club Space", "email": "a@b.co", "tier": "gold"},
			wantErr: true,
		},
		{
			name:    "body is not an object",
			body:    []string{"nope"},
			wantErr: true,
		},
		{
			name: "missing fields",
			body: map[string]interface{}{"name": "Club Space"},
			on: func(f *leadsFields) {
				f.service.On("CreateLead", mock.Anything, service.CreateLeadRequest{Name: "Club Space"}).
					Return("", domain.ErrMissingLeadFields)
			},
			wantErr:      true,
			expectedErr:  domain.ErrMissingLeadFields,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: map[string]interface{}{"name": "Club Space", "email": "a@b.co"},
			on: func(f *leadsFields) {
				f.service.On("CreateLead", mock.Anything, mock.Anything).Return("", testError)
			},
			wantErr:      true,
			expectedErr:  testError,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := leadsFields{logger.FromContext, mocks.NewLeadsIface(t)}
			h := &Leads{loggerProvider: f.loggerProvider, service: f.service}

			if tt.on != nil {
				tt.on(&f)
			}

			ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, tt.body, nil)

			respond := h.CreateLead(ctx)
			if (respond != nil) != tt.wantErr {
				t.Fatalf("CreateLead() error = %v, wantErr %v", respond, tt.wantErr)
			}

			if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}

			if !tt.wantErr {
				var res web.Response
				testtools.DecodeResponse(t, recorder, &res)

				assert.Equal(t, http.StatusCreated, recorder.Code)
				assert.Equal(t, "Lead created successfully", res.Message)
			}
		})
	}
}

func TestLeads_Book(t *testing.T) {
	f := leadsFields{logger.FromContext, mocks.NewLeadsIface(t)}
	h := &Leads{loggerProvider: f.loggerProvider, service: f.service}

	f.service.On("Book", mock.Anything, service.BookingRequest{Name: "Club Space", Email: "owner@clubspace.com", Tier: tiers.TierT2}).
		Return("lead-9", nil)

	ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{
		"name":  "Club Space",
		"email": "owner@clubspace.com",
		"tier":  "t2",
	}, nil)

	assert.NoError(t, h.Book(ctx))

	var res struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Message string            `json:"message"`
	}
	testtools.DecodeResponse(t, recorder, &res)

	assert.That(t, res.Success)
	assert.Equal(t, "lead-9", res.Data["id"])
	assert.Equal(t, bookingMessage, res.Message)
}

func TestLeads_GetLead(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		on           func(*leadsFields)
		expectedErr  error
		expectedCode int
	}{
		{
			name: "found",
			id:   "lead-1",
			on: func(f *leadsFields) {
				f.service.On("GetLead", mock.Anything, "lead-1").Return(&domain.Lead{ID: "lead-1"}, nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			on: func(f *leadsFields) {
				f.service.On("GetLead", mock.Anything, "missing").Return(nil, domain.ErrLeadNotFound)
			},
			expectedErr:  domain.ErrLeadNotFound,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := leadsFields{logger.FromContext, mocks.NewLeadsIface(t)}
			h := &Leads{loggerProvider: f.loggerProvider, service: f.service}
			tt.on(&f)

			ctx, _ := testtools.GenerateCtxWithBody(t, http.MethodGet, nil, []gin.Param{{Key: "id", Value: tt.id}})

			respond := h.GetLead(ctx)
			if tt.expectedErr == nil {
				assert.NoError(t, respond)
				return
			}

			assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
		})
	}
}

func TestLeads_UpdateLead(t *testing.T) {
	f := leadsFields{logger.FromContext, mocks.NewLeadsIface(t)}
	h := &Leads{loggerProvider: f.loggerProvider, service: f.service}

	status := domain.LeadStatusContacted
	f.service.On("UpdateLead", mock.Anything, "lead-1", service.UpdateLeadRequest{Status: &status}).
		Return(&domain.Lead{ID: "lead-1", Status: status}, nil)

	ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"status": "Contacted"},
		[]gin.Param{{Key: "id", Value: "lead-1"}})

	assert.NoError(t, h.UpdateLead(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)

	ctx, _ = testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"status": "converted"},
		[]gin.Param{{Key: "id", Value: "lead-1"}})

	assert.Error(t, h.UpdateLead(ctx))
}

func TestLeads_ListLeads(t *testing.T) {
	f := leadsFields{logger.FromContext, mocks.NewLeadsIface(t)}
	h := &Leads{loggerProvider: f.loggerProvider, service: f.service}

	f.service.On("ListLeads", mock.Anything, service.ListLeadsRequest{Status: "New", Limit: 10}).
		Return([]*domain.Lead{{ID: "lead-1"}}, nil)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/admin/leads?status=New&limit=10", nil)

	assert.NoError(t, h.ListLeads(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
