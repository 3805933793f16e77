package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"shaderhub/internal/config"
	handlers "shaderhub/internal/handler"
)

func createTestHandler(auth *MockAuthService, shader *MockShaderService, profile *MockProfileService) *handlers.Handlers {
	cfg := &config.Config{
		SecretKey:     "test-secret-key",
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		Auth:     auth,
		Shader:   shader,
		Profile:  profile,
		Cfg:      cfg,
		Validate: validator.New(),
	}
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// assertJSONMessage checks the successful JSON response with a message
func assertJSONMessage(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, expectedMessage, response["message"])
}

// findCookie ищет cookie в заголовках ответа
func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	res := rr.Result()
	defer res.Body.Close()

	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
