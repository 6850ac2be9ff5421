package pickup

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitcoach/internal/coaching/blocks"
	"github.com/2beens/fitcoach/internal/coaching/schedule"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=pickup_test

type pickupRepo interface {
	Client(ctx context.Context, clientID string) (*Client, error)
	ActiveAssignments(ctx context.Context, clientID string) ([]Assignment, error)
	GetOrCreateProgress(ctx context.Context, assignmentID string) (*Progress, error)
	UpdateProgress(ctx context.Context, assignmentID string, from, to schedule.Cursor, completed bool) error
	ScheduleEntries(ctx context.Context, programID string) ([]schedule.Entry, error)
	Template(ctx context.Context, templateID string) (*Template, error)
	Blocks(ctx context.Context, templateID string) ([]blocks.Block, error)
	ChildRows(ctx context.Context, blockIDs []string) (*blocks.ChildRows, error)
}

const (
	noProgramMessage = "Client has no active program assigned"
	completedMessage = "Client has completed the assigned program"

	integrityMultipleAssignments = "multiple_active_assignments"
	integrityInvalidProgress     = "invalid_progress"
)

type Service struct {
	repo           pickupRepo
	blocksCache    *blocks.Cache
	metricsManager *metrics.Manager
}

func NewService(
	repo pickupRepo,
	blocksCache *blocks.Cache,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		blocksCache:    blocksCache,
		metricsManager: metricsManager,
	}
}

// NextWorkout finds the workout the client is due to do next.
// An out of bounds progress cursor is reported as *InvalidProgressError.
func (s *Service) NextWorkout(ctx context.Context, clientID string) (_ *NextWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.pickup.nextWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	next, err := s.nextWorkout(ctx, clientID)

	status := lookupStatus(next, err)
	span.SetAttributes(attribute.String("next_workout.status", status))
	if s.metricsManager != nil {
		s.metricsManager.CounterNextWorkoutLookups.WithLabelValues(status).Inc()
	}

	return next, err
}

func (s *Service) nextWorkout(ctx context.Context, clientID string) (*NextWorkout, error) {
	client, err := s.repo.Client(ctx, clientID)
	if err != nil {
		return nil, err
	}

	assignment, warning, err := s.activeAssignment(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		// nothing else is read, and no progress row is created
		return &NextWorkout{
			Status:  StatusNoProgram,
			Message: noProgramMessage,
			Client:  *client,
		}, nil
	}

	progress, err := s.repo.GetOrCreateProgress(ctx, assignment.ID)
	if err != nil {
		return nil, err
	}

	next := &NextWorkout{
		Warning:    warning,
		Client:     *client,
		Assignment: assignment,
		Progress:   progress,
	}

	if progress.IsCompleted {
		next.Status = StatusCompleted
		next.Message = completedMessage
		return next, nil
	}

	structure, err := s.programStructure(ctx, assignment.ProgramID)
	if err != nil {
		return nil, err
	}

	entry := schedule.ResolveCursor(structure, progress.Cursor)
	if entry == nil {
		return nil, s.invalidProgress(assignment, progress, structure)
	}

	template, err := s.repo.Template(ctx, entry.TemplateID)
	if err != nil {
		return nil, err
	}

	next.Status = StatusActive
	next.Structure = structure
	next.Entry = entry
	next.Template = template
	next.Blocks = s.templateBlocks(ctx, template.ID)

	return next, nil
}

// CompleteWorkout marks the current workout as done and moves the client to the next scheduled day.
// Finishing the last day of the last week completes the program.
func (s *Service) CompleteWorkout(ctx context.Context, clientID string) (_ *NextWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.pickup.completeWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	assignment, _, err := s.activeAssignment(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, ErrNoActiveProgram
	}

	progress, err := s.repo.GetOrCreateProgress(ctx, assignment.ID)
	if err != nil {
		return nil, err
	}
	if progress.IsCompleted {
		return nil, ErrProgramCompleted
	}

	structure, err := s.programStructure(ctx, assignment.ProgramID)
	if err != nil {
		return nil, err
	}
	if schedule.ResolveCursor(structure, progress.Cursor) == nil {
		return nil, s.invalidProgress(assignment, progress, structure)
	}

	nextCursor, programDone := schedule.Advance(structure, progress.Cursor)
	if err := s.repo.UpdateProgress(ctx, assignment.ID, progress.Cursor, nextCursor, programDone); err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsCompleted.Inc()
	}
	log.Debugf(
		"workout completed, client %s, assignment %s: %+v -> %+v, program done: %t",
		clientID, assignment.ID, progress.Cursor, nextCursor, programDone,
	)

	return s.NextWorkout(ctx, clientID)
}

// activeAssignment picks the most recently created active assignment. More than one active
// assignment is tolerated and reported through the returned warning.
func (s *Service) activeAssignment(ctx context.Context, clientID string) (*Assignment, string, error) {
	assignments, err := s.repo.ActiveAssignments(ctx, clientID)
	if err != nil {
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", nil
	}

	// ordered by created_at desc
	assignment := assignments[0]
	if len(assignments) == 1 {
		return &assignment, "", nil
	}

	log.Warnf(
		"client %s has %d active program assignments, using the most recent one: %s",
		clientID, len(assignments), assignment.ID,
	)
	s.countIntegrityWarning(integrityMultipleAssignments)
	warning := fmt.Sprintf(
		"Client has %d active program assignments, showing the most recently assigned program (%s)",
		len(assignments), assignment.ProgramName,
	)
	return &assignment, warning, nil
}

func (s *Service) programStructure(ctx context.Context, programID string) (schedule.Structure, error) {
	entries, err := s.repo.ScheduleEntries(ctx, programID)
	if err != nil {
		return schedule.Structure{}, err
	}
	if len(entries) == 0 {
		return schedule.Structure{}, ErrScheduleEmpty
	}
	return schedule.BuildStructure(entries), nil
}

func (s *Service) invalidProgress(assignment *Assignment, progress *Progress, structure schedule.Structure) error {
	log.Warnf(
		"assignment %s: progress %+v outside schedule of %d weeks",
		assignment.ID, progress.Cursor, structure.TotalWeeks(),
	)
	s.countIntegrityWarning(integrityInvalidProgress)
	return &InvalidProgressError{
		AssignmentID: assignment.ID,
		WeekIndex:    progress.Cursor.WeekIndex,
		DayIndex:     progress.Cursor.DayIndex,
		TotalWeeks:   structure.TotalWeeks(),
		DaysInWeek:   structure.DaysInWeek(progress.Cursor.WeekIndex),
	}
}

// templateBlocks never fails: block fetch errors degrade to an empty block list.
func (s *Service) templateBlocks(ctx context.Context, templateID string) []blocks.NormalizedBlock {
	if s.blocksCache.Enabled() {
		cached, found, err := s.blocksCache.Get(templateID)
		switch {
		case err != nil:
			log.Warnf("blocks cache get, template %s: %s", templateID, err)
		case found:
			s.countBlocksCache("hit")
			return cached
		default:
			s.countBlocksCache("miss")
		}
	}

	templateBlocks, err := s.repo.Blocks(ctx, templateID)
	if err != nil {
		log.Warnf("get blocks for template %s: %s", templateID, err)
		return []blocks.NormalizedBlock{}
	}
	if len(templateBlocks) == 0 {
		log.Warnf("template %s has no blocks", templateID)
		return []blocks.NormalizedBlock{}
	}

	childRows, err := s.repo.ChildRows(ctx, blocks.BlockIDs(templateBlocks))
	if err != nil {
		log.Warnf("get block exercises for template %s: %s", templateID, err)
		return []blocks.NormalizedBlock{}
	}

	assembled := blocks.Assemble(templateBlocks, childRows)
	if err := s.blocksCache.Set(templateID, assembled); err != nil {
		log.Warnf("blocks cache set, template %s: %s", templateID, err)
	}
	return assembled
}

func (s *Service) countIntegrityWarning(kind string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterIntegrityWarnings.WithLabelValues(kind).Inc()
	}
}

func (s *Service) countBlocksCache(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterBlocksCache.WithLabelValues(result).Inc()
	}
}

func lookupStatus(next *NextWorkout, err error) string {
	var invalidProgressErr *InvalidProgressError
	switch {
	case err == nil && next != nil:
		return string(next.Status)
	case errors.As(err, &invalidProgressErr):
		return string(StatusInvalidProgress)
	case errors.Is(err, ErrScheduleEmpty):
		return "schedule_empty"
	case errors.Is(err, ErrTemplateNotFound):
		return "template_not_found"
	case errors.Is(err, ErrClientNotFound):
		return "client_not_found"
	default:
		return "error"
	}
}
