package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/knowledge/domain"
	"github.com/gettupp/backoffice/knowledge/service"
	"github.com/gettupp/backoffice/knowledge/service/mocks"
	"github.com/gettupp/backoffice/logger"
)

type knowledgeFields struct {
	loggerProvider logger.Provider
	service        *mocks.KnowledgeIface
}

func newKnowledgeHandler(t *testing.T) (*Knowledge, *knowledgeFields) {
	f := &knowledgeFields{logger.FromContext, mocks.NewKnowledgeIface(t)}

	return &Knowledge{loggerProvider: f.loggerProvider, service: f.service}, f
}

func TestKnowledge_ListNodes(t *testing.T) {
	h, f := newKnowledgeHandler(t)

	f.service.On("ListNodes", mock.Anything, service.ListNodesRequest{DomainArea: "offers", Query: "vip", Limit: 5}).
		Return([]*domain.Node{{ID: "n1"}}, nil)

	ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodGet, nil, nil)
	ctx.Request.URL.RawQuery = "domain=offers&q=vip&limit=5"

	assert.NoError(t, h.ListNodes(ctx))

	var res struct {
		Success bool           `json:"success"`
		Data    []*domain.Node `json:"data"`
	}
	testtools.DecodeResponse(t, recorder, &res)

	assert.That(t, res.Success)
	assert.Equal(t, 1, len(res.Data))
	assert.Equal(t, "n1", res.Data[0].ID)

	ctx, _ = testtools.GenerateCtxWithBody(t, http.MethodGet, nil, nil)
	ctx.Request.URL.RawQuery = "limit=5000"
	assert.Error(t, h.ListNodes(ctx))
}

func TestKnowledge_CreateNode(t *testing.T) {
	testError := errors.New("test error")

	body := map[string]interface{}{
		"domain_area":    "offers",
		"sub_topic":      "VIP package",
		"knowledge_type": "package",
		"content":        "Four shoots a month",
	}
	req := service.CreateNodeRequest{
		DomainArea:    domain.DomainOffers,
		SubTopic:      "VIP package",
		KnowledgeType: "package",
		Content:       "Four shoots a month",
	}

	tests := []struct {
		name         string
		body         interface{}
		on           func(*knowledgeFields)
		wantErr      bool
		expectedErr  error
		expectedCode int
	}{
		{
			name: "created",
			body: body,
			on: func(f *knowledgeFields) {
				f.service.On("CreateNode", mock.Anything, req).Return(&domain.Node{ID: "node-1"}, nil)
			},
		},
		{
			name:    "malformed body",
			body:    []string{"nope"},
			wantErr: true,
		},
		{
			name: "invalid domain",
			body: body,
			on: func(f *knowledgeFields) {
				f.service.On("CreateNode", mock.Anything, req).Return(nil, domain.ErrInvalidDomain)
			},
			wantErr:      true,
			expectedErr:  domain.ErrInvalidDomain,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: body,
			on: func(f *knowledgeFields) {
				f.service.On("CreateNode", mock.Anything, req).Return(nil, testError)
			},
			wantErr:      true,
			expectedErr:  testError,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := newKnowledgeHandler(t)
			if tt.on != nil {
				tt.on(f)
			}

			ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, tt.body, nil)

			respond := h.CreateNode(ctx)
			if (respond != nil) != tt.wantErr {
				t.Fatalf("CreateNode() error = %v, wantErr %v", respond, tt.wantErr)
			}

			if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
			}

			if !tt.wantErr {
				var res web.Response
				testtools.DecodeResponse(t, recorder, &res)

				assert.Equal(t, http.StatusCreated, recorder.Code)
				assert.Equal(t, "Knowledge node created successfully", res.Message)
			}
		})
	}
}

func TestKnowledge_UpdateNode(t *testing.T) {
	h, f := newKnowledgeHandler(t)
	params := []gin.Param{{Key: "id", Value: "node-1"}}

	content := "Updated content"
	f.service.On("UpdateNode", mock.Anything, "node-1", service.UpdateNodeRequest{Content: &content}).
		Return(&domain.Node{ID: "node-1", Content: content, Version: 2}, nil).Once()
	f.service.On("UpdateNode", mock.Anything, "node-1", mock.Anything).
		Return(nil, domain.ErrNodeNotFound).Once()

	ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"content": content}, params)
	assert.NoError(t, h.UpdateNode(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)

	ctx, _ = testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"content": content}, params)
	assert.Equal(t, web.NewRequestError(domain.ErrNodeNotFound, http.StatusNotFound), h.UpdateNode(ctx))
}

func TestKnowledge_DeleteNode(t *testing.T) {
	h, f := newKnowledgeHandler(t)

	f.service.On("DeleteNode", mock.Anything, "node-1").Return(nil)
	f.service.On("DeleteNode", mock.Anything, "ghost").Return(domain.ErrNodeNotFound)

	ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodDelete, nil, []gin.Param{{Key: "id", Value: "node-1"}})
	assert.NoError(t, h.DeleteNode(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)

	ctx, _ = testtools.GenerateCtxWithBody(t, http.MethodDelete, nil, []gin.Param{{Key: "id", Value: "ghost"}})
	assert.Equal(t, web.NewRequestError(domain.ErrNodeNotFound, http.StatusNotFound), h.DeleteNode(ctx))
}

func TestKnowledge_Ask(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		on           func(*knowledgeFields)
		expectedErr  error
		expectedCode int
	}{
		{
			name: "answered",
			body: map[string]interface{}{"query": "pilot", "agentId": "closer"},
			on: func(f *knowledgeFields) {
				agent, _ := domain.AgentByID("closer")
				f.service.On("Ask", mock.Anything, service.AskRequest{Query: "pilot", AgentID: "closer"}).
					Return(&service.AskResponse{Content: "answer", Sources: []service.Source{{ID: "n1"}}, Agent: agent}, nil)
			},
		},
		{
			name: "empty query",
			body: map[string]interface{}{"query": ""},
			on: func(f *knowledgeFields) {
				f.service.On("Ask", mock.Anything, service.AskRequest{}).Return(nil, domain.ErrEmptyQuery)
			},
			expectedErr:  domain.ErrEmptyQuery,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown agent",
			body: map[string]interface{}{"query": "pilot", "agentId": "bouncer"},
			on: func(f *knowledgeFields) {
				f.service.On("Ask", mock.Anything, service.AskRequest{Query: "pilot", AgentID: "bouncer"}).
					Return(nil, domain.ErrUnknownAgent)
			},
			expectedErr:  domain.ErrUnknownAgent,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := newKnowledgeHandler(t)
			tt.on(f)

			ctx, recorder := testtools.GenerateCtxWithJSONAndParams(t, tt.body, nil)

			respond := h.Ask(ctx)
			if tt.expectedErr != nil {
				assert.Equal(t, web.NewRequestError(tt.expectedErr, tt.expectedCode), respond)
				return
			}

			assert.NoError(t, respond)

			var res struct {
				Success bool                `json:"success"`
				Data    service.AskResponse `json:"data"`
			}
			testtools.DecodeResponse(t, recorder, &res)

			assert.That(t, res.Success)
			assert.Equal(t, "answer", res.Data.Content)
			assert.Equal(t, "closer", res.Data.Agent.ID)
		})
	}
}
