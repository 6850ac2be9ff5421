//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitcoach/internal/coaching/pickup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) decodeActive(resp *http.Response) pickup.ActiveResponse {
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var active pickup.ActiveResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&active))
	return active
}

func (s *IntegrationTestSuite) TestPickup_NextWorkoutAndComplete() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coach := s.seedProfile(ctx, "coach")
	client := s.seedProfile(ctx, "client")
	s.linkClient(ctx, coach.ID, client.ID)
	assignmentID := s.seedProgram(ctx, coach.ID, client.ID)

	token := s.doLogin(ctx, coach.Email)
	nextWorkoutPath := "/coach/pickup/next-workout?clientId=" + client.ID
	completePath := "/coach/pickup/complete-workout?clientId=" + client.ID

	active := s.decodeActive(s.authorizedRequest(ctx, http.MethodGet, nextWorkoutPath, token))
	assert.Equal(t, pickup.StatusActive, active.Status)
	assert.Equal(t, assignmentID, active.ProgramAssignmentID)
	assert.Equal(t, client.Name, active.ClientName)
	assert.Equal(t, "Strength Base", active.ProgramName)
	assert.Equal(t, "Week 1 · Day 1", active.PositionLabel)
	assert.Equal(t, 2, active.TotalWeeks)
	assert.Equal(t, 2, active.DaysInCurrentWeek)
	assert.Equal(t, "Lower Body", active.WorkoutName)
	require.Len(t, active.Blocks, 2)
	require.Len(t, active.Blocks[0].Exercises, 1)
	require.NotNil(t, active.Blocks[0].Exercises[0].WeightKg)
	assert.Equal(t, 100.0, *active.Blocks[0].Exercises[0].WeightKg)
	require.Len(t, active.Blocks[1].Exercises, 1)
	assert.Equal(t, "12 → 10 → 8", *active.Blocks[1].Exercises[0].Reps)

	// a read never moves the cursor
	again := s.decodeActive(s.authorizedRequest(ctx, http.MethodGet, nextWorkoutPath, token))
	assert.Equal(t, active.PositionLabel, again.PositionLabel)

	for _, expectedPosition := range []string{"Week 1 · Day 2", "Week 2 · Day 1", "Week 2 · Day 2"} {
		next := s.decodeActive(s.authorizedRequest(ctx, http.MethodPost, completePath, token))
		assert.Equal(t, expectedPosition, next.PositionLabel)
	}

	resp := s.authorizedRequest(ctx, http.MethodPost, completePath, token)
	var completed pickup.ProgramResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&completed))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pickup.StatusCompleted, completed.Status)
	assert.True(t, completed.IsCompleted)

	resp = s.authorizedRequest(ctx, http.MethodPost, completePath, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestPickup_NoProgram() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coach := s.seedProfile(ctx, "coach")
	client := s.seedProfile(ctx, "client")
	s.linkClient(ctx, coach.ID, client.ID)

	token := s.doLogin(ctx, coach.Email)
	resp := s.authorizedRequest(ctx, http.MethodGet, "/coach/pickup/next-workout?clientId="+client.ID, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var noProgram pickup.NoProgramResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&noProgram))
	assert.Equal(t, pickup.StatusNoProgram, noProgram.Status)
	assert.Equal(t, client.ID, noProgram.ClientID)

	var progressRows int
	require.NoError(t, s.db.QueryRow(ctx,
		`SELECT count(*) FROM program_progress pp
			JOIN program_assignments pa ON pa.id = pp.program_assignment_id
		WHERE pa.client_id = $1`, client.ID,
	).Scan(&progressRows))
	assert.Zero(t, progressRows)
}

func (s *IntegrationTestSuite) TestPickup_Access() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coach := s.seedProfile(ctx, "coach")
	otherCoach := s.seedProfile(ctx, "coach")
	client := s.seedProfile(ctx, "client")
	s.linkClient(ctx, coach.ID, client.ID)
	s.seedProgram(ctx, coach.ID, client.ID)

	path := "/coach/pickup/next-workout?clientId=" + client.ID

	resp := s.authorizedRequest(ctx, http.MethodGet, path, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.authorizedRequest(ctx, http.MethodGet, path, s.doLogin(ctx, otherCoach.Email))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.authorizedRequest(ctx, http.MethodGet, path, s.doLogin(ctx, client.Email))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.authorizedRequest(ctx, http.MethodGet, "/coach/pickup/next-workout?clientId=nope", s.doLogin(ctx, coach.Email))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestHealthz() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.authorizedRequest(ctx, http.MethodGet, "/healthz", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, map[string]string{"postgres": "up", "redis": "up"}, health.Checks)
}
