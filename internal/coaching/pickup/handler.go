package pickup

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=pickup_test

type nextWorkoutService interface {
	NextWorkout(ctx context.Context, clientID string) (*NextWorkout, error)
	CompleteWorkout(ctx context.Context, clientID string) (*NextWorkout, error)
}

type coachAccess interface {
	ValidateCoachAccess(ctx context.Context, profileID, clientID string) (*auth.Profile, error)
}

const clientIDParam = "clientId"

type Handler struct {
	service nextWorkoutService
	access  coachAccess
}

func NewHandler(service nextWorkoutService, access coachAccess) *Handler {
	return &Handler{
		service: service,
		access:  access,
	}
}

func (h *Handler) SetupRoutes(mainRouter *mux.Router) {
	pickupRouter := mainRouter.PathPrefix("/coach/pickup").Subrouter()
	pickupRouter.
		HandleFunc("/next-workout", h.HandleNextWorkout).
		Methods("GET", "OPTIONS").Name("next-workout")
	pickupRouter.
		HandleFunc("/complete-workout", h.HandleCompleteWorkout).
		Methods("POST", "OPTIONS").Name("complete-workout")
}

func (h *Handler) HandleNextWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pickup.nextWorkout")
	defer span.End()

	clientID, ok := h.authorize(ctx, w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("client.id", clientID))

	next, err := h.service.NextWorkout(ctx, clientID)
	if err != nil {
		h.writeServiceError(w, clientID, err)
		return
	}

	pkg.WriteJSON(w, NewResponse(next), http.StatusOK)
}

func (h *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pickup.completeWorkout")
	defer span.End()

	clientID, ok := h.authorize(ctx, w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("client.id", clientID))

	next, err := h.service.CompleteWorkout(ctx, clientID)
	if err != nil {
		h.writeServiceError(w, clientID, err)
		return
	}

	pkg.WriteJSON(w, NewResponse(next), http.StatusOK)
}

// authorize validates the clientId parameter and the caller's right to coach that client.
// On failure the error response is already written.
func (h *Handler) authorize(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	profileID, ok := auth.ProfileIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return "", false
	}

	clientID := r.URL.Query().Get(clientIDParam)
	if clientID == "" {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Missing required parameter: clientId", "")
		return "", false
	}
	if _, err := uuid.Parse(clientID); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "Invalid parameter: clientId", "clientId must be a UUID")
		return "", false
	}

	_, err := h.access.ValidateCoachAccess(ctx, profileID, clientID)
	switch {
	case err == nil:
		return clientID, true
	case errors.Is(err, auth.ErrProfileNotFound):
		pkg.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized", "Profile not found")
	case errors.Is(err, auth.ErrNotCoach):
		pkg.WriteJSONError(w, http.StatusForbidden, "Forbidden", "Coach or admin role required")
	case errors.Is(err, auth.ErrNotClientsCoach):
		pkg.WriteJSONError(w, http.StatusForbidden, "Forbidden", "No active coaching relationship with this client")
	default:
		log.Errorf("validate coach access, profile %s, client %s: %s", profileID, clientID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error", "Failed to validate access")
	}
	return "", false
}

func (h *Handler) writeServiceError(w http.ResponseWriter, clientID string, err error) {
	var invalidProgressErr *InvalidProgressError
	switch {
	case errors.As(err, &invalidProgressErr):
		pkg.WriteJSON(w, newInvalidProgressResponse(clientID, invalidProgressErr), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrScheduleEmpty):
		pkg.WriteJSON(w, ErrorResponse{
			Error:    "Program schedule not configured",
			Message:  "The assigned program has no scheduled workouts",
			ClientID: clientID,
		}, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrTemplateNotFound):
		pkg.WriteJSON(w, ErrorResponse{
			Error:    "Workout template not found",
			Message:  "The scheduled workout template does not exist",
			ClientID: clientID,
		}, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrClientNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "Client not found", "")
	case errors.Is(err, ErrNoActiveProgram):
		pkg.WriteJSONError(w, http.StatusNotFound, "No active program", "Client has no active program assigned")
	case errors.Is(err, ErrProgramCompleted):
		pkg.WriteJSONError(w, http.StatusConflict, "Program completed", "The assigned program is already completed")
	case errors.Is(err, ErrProgressChanged):
		pkg.WriteJSONError(w, http.StatusConflict, "Progress changed", "Progress was updated by another request, reload and retry")
	default:
		log.Errorf("pickup, client %s: %s", clientID, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error", "Failed to load next workout")
	}
}
