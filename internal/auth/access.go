package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNotCoach        = errors.New("profile role may not access client data")
	ErrNotClientsCoach = errors.New("no active coaching relationship with this client")
)

//go:generate mockgen -source=$GOFILE -destination=access_mocks_test.go -package=auth_test

type accessRepo interface {
	ProfileByID(ctx context.Context, id string) (*Profile, error)
	HasActiveClient(ctx context.Context, coachID, clientID string) (bool, error)
}

// Access decides whether a caller may read a given client's coaching data.
type Access struct {
	repo accessRepo
}

func NewAccess(repo accessRepo) *Access {
	return &Access{
		repo: repo,
	}
}

// ValidateCoachAccess checks that profileID exists, has the coach or admin role,
// and (unless admin) actively coaches clientID.
// Errors: ErrProfileNotFound, ErrNotCoach, ErrNotClientsCoach, or a wrapped data access error.
func (a *Access) ValidateCoachAccess(ctx context.Context, profileID, clientID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.validateCoachAccess")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("client.id", clientID),
	)

	profile, err := a.repo.ProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get caller profile: %w", err)
	}

	if !profile.Role.CanCoach() {
		log.Tracef("access denied, profile %s has role [%s]", profileID, profile.Role)
		return nil, ErrNotCoach
	}

	if profile.Role == RoleAdmin {
		return profile, nil
	}

	isClientsCoach, err := a.repo.HasActiveClient(ctx, profileID, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client relationship: %w", err)
	}
	if !isClientsCoach {
		return nil, ErrNotClientsCoach
	}

	return profile, nil
}
