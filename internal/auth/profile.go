package auth

import (
	"context"
	"time"
)

type Role string

const (
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCoach, RoleAdmin, RoleClient:
		return true
	default:
		return false
	}
}

// CanCoach reports whether the role may look into client programs.
func (r Role) CanCoach() bool {
	return r == RoleCoach || r == RoleAdmin
}

type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type profileCtxKey struct{}

// WithProfileID returns a copy of ctx carrying the authenticated caller profile id.
func WithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileCtxKey{}, profileID)
}

func ProfileIDFromContext(ctx context.Context) (string, bool) {
	profileID, ok := ctx.Value(profileCtxKey{}).(string)
	return profileID, ok && profileID != ""
}
