package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile with this email already exists")
)

const profileColumns = `id::text, email, full_name, avatar_url, role, COALESCE(password_hash, ''), created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ProfileByID(ctx context.Context, id string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.profileById")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("profile.id", id))

	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

func (r *Repo) ProfileByEmail(ctx context.Context, email string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.profileByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE lower(email) = lower($1)`, email)
	return scanProfile(row)
}

func (r *Repo) AddProfile(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.addProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !profile.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", profile.Role)
	}

	var passwordHash *string
	if profile.PasswordHash != "" {
		passwordHash = &profile.PasswordHash
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO profiles (email, full_name, avatar_url, role, password_hash)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, created_at`,
		profile.Email, profile.FullName, profile.AvatarURL, string(profile.Role), passwordHash,
	).Scan(&profile.ID, &profile.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	span.SetAttributes(attribute.String("profile.id", profile.ID))
	return &profile, nil
}

// HasActiveClient reports whether coachID coaches clientID through an active relationship.
func (r *Repo) HasActiveClient(ctx context.Context, coachID, clientID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.hasActiveClient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("coach.id", coachID),
		attribute.String("client.id", clientID),
	)

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM clients WHERE coach_id = $1 AND client_id = $2 AND status = 'active'
		)`,
		coachID, clientID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("query client relationship: %w", err)
	}

	return exists, nil
}

// SetClientStatus creates or updates the coaching relationship between coachID and clientID.
func (r *Repo) SetClientStatus(ctx context.Context, coachID, clientID, status string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.setClientStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO clients (coach_id, client_id, status) VALUES ($1, $2, $3)
			ON CONFLICT (coach_id, client_id) DO UPDATE SET status = EXCLUDED.status`,
		coachID, clientID, status,
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("upsert client relationship: %w", err)
	}

	return nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	var role string
	if err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.AvatarURL, &role, &p.PasswordHash, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	p.Role = Role(role)
	return &p, nil
}
