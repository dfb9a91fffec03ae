package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkboard-dev/sparkboard/internal/config"
	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
)

type MockAuthService struct {
	MockRegister func(creds domain.Credentials, profile domain.Profile) (domain.UserId, error)
	MockLogin    func(creds domain.Credentials) (string, error)
	MockMe       func(actor *domain.User) (domain.Profile, error)
}

func (m *MockAuthService) Register(creds domain.Credentials, profile domain.Profile) (domain.UserId, error) {
	if m.MockRegister != nil {
		return m.MockRegister(creds, profile)
	}
	return 1, nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "token", nil
}

func (m *MockAuthService) Me(actor *domain.User) (domain.Profile, error) {
	if m.MockMe != nil {
		return m.MockMe(actor)
	}
	return domain.Profile{}, nil
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{JwtTTL: time.Hour}}
}

func TestRegisterHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	route := "/v1/auth/register"
	router := chi.NewRouter()
	router.Post(route, h.Register)

	t.Run("successful request", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockRegister: func(creds domain.Credentials, profile domain.Profile) (domain.UserId, error) {
				assert.Equal(t, "new@example.com", creds.Email)
				assert.Equal(t, "Sam", profile["firstName"])
				return 1, nil
			},
		}
		body := []byte(`{"email": "new@example.com", "password": "secret123", "profile": {"firstName": "Sam"}}`)
		req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		body := []byte(`{"email": "new@example.com", "password": "short"}`)
		req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		body := []byte(`{"email": "not-an-email", "password": "secret123"}`)
		req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email propagates 409", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockRegister: func(creds domain.Credentials, profile domain.Profile) (domain.UserId, error) {
				return 0, &internal_errors.ErrorWithStatusCode{Message: "Email already registered", StatusCode: http.StatusConflict}
			},
		}
		body := []byte(`{"email": "new@example.com", "password": "secret123"}`)
		req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	route := "/v1/auth/login"
	router := chi.NewRouter()
	router.Post(route, h.Login)

	t.Run("sets cookie and returns token", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, error) {
				return "signed-token", nil
			},
		}
		body := []byte(`{"email": "user@example.com", "password": "secret123"}`)
		req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "accessToken", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		var response map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "signed-token", response["accessToken"])
	})

	t.Run("wrong credentials propagate 401", func(t *testing.T) {
		h.auth = &MockAuthService{
			MockLogin: func(creds domain.Credentials) (string, error) {
				return "", &internal_errors.ErrorWithStatusCode{Message: "Wrong email or password", StatusCode: http.StatusUnauthorized}
			},
		}
		body := []byte(`{"email": "user@example.com", "password": "wrong"}`)
		req := httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	router := chi.NewRouter()
	router.Post("/v1/auth/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "accessToken", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestMeHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}

	router := chi.NewRouter()
	router.Get("/v1/auth/me", h.Me)

	h.auth = &MockAuthService{
		MockMe: func(actor *domain.User) (domain.Profile, error) {
			require.NotNil(t, actor)
			return domain.Profile{"firstName": "Sam"}, nil
		},
	}
	req := withUser(httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil), testUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response struct {
		Id      int64          `json:"id"`
		Profile domain.Profile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Id)
	assert.Equal(t, "Sam", response.Profile["firstName"])
}
