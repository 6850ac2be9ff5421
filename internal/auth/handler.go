package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type loginService interface {
	Login(ctx context.Context, email, password string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	service        loginService
	metricsManager *metrics.Manager
}

func NewHandler(service loginService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers /a/login and /a/logout, wrapped with the given middlewares (rate limiting).
func (h *Handler) SetupRoutes(mainRouter *mux.Router, mws ...mux.MiddlewareFunc) {
	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", h.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", h.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	loginSubrouter.Use(mws...)
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func BearerToken(r *http.Request) string {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var loginReq LoginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			pkg.WriteJSONError(w, http.StatusBadRequest, "Bad request", "invalid login request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			pkg.WriteJSONError(w, http.StatusBadRequest, "Bad request", "invalid login form")
			return
		}
		loginReq = LoginRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Email == "" || loginReq.Password == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Bad request", "email and password are required")
		return
	}

	token, err := h.service.Login(ctx, loginReq.Email, loginReq.Password, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			log.Tracef("failed login attempt for: %s", loginReq.Email)
			h.countLogin("wrong_credentials")
			pkg.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized", "wrong credentials")
			return
		}
		log.Errorf("login failed: %s", err)
		h.countLogin("error")
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error", "login failed")
		return
	}

	log.Tracef("new login success for: %s", loginReq.Email)
	h.countLogin("ok")
	pkg.WriteJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := BearerToken(r)
	if authToken == "" {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
		return
	}

	loggedOut, err := h.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error", "logout failed")
		return
	}
	if !loggedOut {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized", "no such session")
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (h *Handler) countLogin(result string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}
