package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/gettupp/backoffice/cms/domain"
	"github.com/gettupp/backoffice/cms/service/mocks"
	testtools "github.com/gettupp/backoffice/common/test_tools"
	"github.com/gettupp/backoffice/framework/web"
	"github.com/gettupp/backoffice/logger"
)

func TestContent_GetContent(t *testing.T) {
	s := mocks.NewContentIface(t)
	h := &Content{loggerProvider: logger.FromContext, service: s}

	s.On("Load", mock.Anything).Return(domain.DefaultContent(), nil).Once()

	ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodGet, nil, nil)
	assert.NoError(t, h.GetContent(ctx))

	var res struct {
		Success bool               `json:"success"`
		Data    domain.SiteContent `json:"data"`
	}
	testtools.DecodeResponse(t, recorder, &res)

	assert.That(t, res.Success)
	assert.Equal(t, "OWN THE NIGHT", res.Data.Hero.Headline)
	assert.Equal(t, 3, len(res.Data.Pricing))

	testError := errors.New("firestore unavailable")
	s.On("Load", mock.Anything).Return(nil, testError).Once()

	ctx, _ = testtools.GenerateCtxWithBody(t, http.MethodGet, nil, nil)
	assert.Equal(t, web.NewRequestError(testError, http.StatusInternalServerError), h.GetContent(ctx))
}

func TestContent_SeedContent(t *testing.T) {
	s := mocks.NewContentIface(t)
	h := &Content{loggerProvider: logger.FromContext, service: s}

	s.On("Seed", mock.Anything).Return(domain.DefaultContent(), nil)

	ctx, recorder := testtools.GenerateCtxWithBody(t, http.MethodPost, nil, nil)
	assert.NoError(t, h.SeedContent(ctx))

	var res web.Response
	testtools.DecodeResponse(t, recorder, &res)

	assert.Equal(t, "Site content seeded", res.Message)
}
