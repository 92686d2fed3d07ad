package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

const emulatorHostEnv = "FIRESTORE_EMULATOR_HOST"

// GenerateCtxWithJSONAndParams returns a gin test context carrying data as the JSON request body.
func GenerateCtxWithJSONAndParams(t *testing.T, data interface{}, params []gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	return GenerateCtxWithBody(t, http.MethodPost, jsonbytes, params)
}

// GenerateCtxWithBody returns a gin test context carrying the raw body.
func GenerateCtxWithBody(t *testing.T, method string, body []byte, params []gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params
	ctx.Request = httptest.NewRequest(method, "http://localhost:8080", nil)
	ctx.Request.Header.Set("Content-Type", "application/json")
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	return ctx, recorder
}

// DecodeResponse unmarshals the recorded response body into v.
func DecodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("could not decode response body %q: %s", recorder.Body.String(), err)
	}
}

// SkipWithoutEmulator skips tests that need a firestore emulator when none is configured.
func SkipWithoutEmulator(t *testing.T) {
	t.Helper()

	if os.Getenv(emulatorHostEnv) == "" {
		t.Skipf("%s is not set", emulatorHostEnv)
	}
}
