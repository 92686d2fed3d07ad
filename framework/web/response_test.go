package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gettupp/backoffice/internal"
)

func newResponseContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	internal.ContextWithData(ctx, &internal.Data{})

	return ctx, recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestRespondWithMessage(t *testing.T) {
	ctx, recorder := newResponseContext()

	err := RespondWithMessage(ctx, map[string]string{"id": "abc"}, "Client created successfully", http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	body := decode(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Client created successfully", body["message"])
	assert.Equal(t, map[string]interface{}{"id": "abc"}, body["data"])
	assert.NotContains(t, body, "error")

	v, _ := internal.DataFromContext(ctx)
	assert.Equal(t, http.StatusCreated, v.StatusCode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "request error keeps its message",
			err:        NewRequestError(errors.New("Invalid tier. Must be one of: pilot, t1, t2, vip"), http.StatusBadRequest),
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid tier. Must be one of: pilot, t1, t2, vip",
		},
		{
			name:       "server error is masked",
			err:        NewRequestError(errors.New("rpc error: code = Unavailable"), http.StatusInternalServerError),
			wantStatus: http.StatusInternalServerError,
			wantError:  internalErrorMessage,
		},
		{
			name:       "plain error is masked",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, recorder := newResponseContext()

			require.NoError(t, RespondError(ctx, tt.err))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			body := decode(t, recorder)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestTranslateError(t *testing.T) {
	errNotFound := errors.New("Shoot not found")
	errInvalid := errors.New("Invalid status")

	mappings := []ErrorMapping{
		{errNotFound, http.StatusNotFound},
		{errInvalid, http.StatusBadRequest},
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"mapped not found", errNotFound, http.StatusNotFound},
		{"wrapped mapped error", fmt.Errorf("update: %w", errInvalid), http.StatusBadRequest},
		{"framework error", ErrUnauthorized, http.StatusUnauthorized},
		{"unknown error", errors.New("firestore down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateError(tt.err, mappings...)

			var webErr *Error
			require.True(t, errors.As(err, &webErr))
			assert.Equal(t, tt.wantStatus, webErr.Status)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.Nil(t, TranslateError(nil))
}
