//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/fitcoach/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coach := s.seedProfile(ctx, "coach")

	cases := map[string]struct {
		loginReq           auth.LoginRequest
		expectedStatusCode int
	}{
		"good creds": {
			loginReq:           auth.LoginRequest{Email: coach.Email, Password: testPassword},
			expectedStatusCode: http.StatusOK,
		},
		"bad password": {
			loginReq:           auth.LoginRequest{Email: coach.Email, Password: "bad-password"},
			expectedStatusCode: http.StatusUnauthorized,
		},
		"unknown email": {
			loginReq:           auth.LoginRequest{Email: "nobody@fitcoach.io", Password: testPassword},
			expectedStatusCode: http.StatusUnauthorized,
		},
		"missing password": {
			loginReq:           auth.LoginRequest{Email: coach.Email},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			loginReqJson, err := json.Marshal(tc.loginReq)
			require.NoError(t, err)

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/a/login", serverEndpoint), bytes.NewBuffer(loginReqJson))
			require.NoError(t, err)
			req.Header.Set("User-Agent", "test-agent")
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
		})
	}
}

func (s *IntegrationTestSuite) TestLoginThenLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coach := s.seedProfile(ctx, "coach")
	token := s.doLogin(ctx, coach.Email)

	resp := s.authorizedRequest(ctx, http.MethodGet, "/a/logout", token)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "logged-out", string(body))

	// session is gone
	resp = s.authorizedRequest(ctx, http.MethodGet, "/a/logout", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
