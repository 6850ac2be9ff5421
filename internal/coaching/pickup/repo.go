package pickup

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitcoach/internal/coaching/blocks"
	"github.com/2beens/fitcoach/internal/coaching/schedule"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Client(ctx context.Context, clientID string) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.client")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	var c Client
	if err := r.db.QueryRow(
		ctx,
		`SELECT id::text, full_name, avatar_url FROM profiles WHERE id = $1`,
		clientID,
	).Scan(&c.ID, &c.FullName, &c.AvatarURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// ActiveAssignments returns the client's active assignments, most recently created first.
func (r *Repo) ActiveAssignments(ctx context.Context, clientID string) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.activeAssignments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				pa.id::text, pa.program_id::text, wp.name, pa.client_id::text, pa.coach_id::text,
				pa.status, pa.start_date, pa.created_at
			FROM program_assignments pa
			JOIN workout_programs wp ON wp.id = pa.program_id
			WHERE pa.client_id = $1 AND pa.status = 'active'
			ORDER BY pa.created_at DESC, pa.id DESC;`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}

	assignments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Assignment, error) {
		var a Assignment
		err := row.Scan(
			&a.ID, &a.ProgramID, &a.ProgramName, &a.ClientID, &a.CoachID,
			&a.Status, &a.StartDate, &a.CreatedAt,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect assignments: %w", err)
	}

	span.SetAttributes(attribute.Int("assignments.count", len(assignments)))
	return assignments, nil
}

// GetOrCreateProgress returns the progress row of the assignment, creating a zeroed one if missing.
// Concurrent callers are serialized by the unique program_assignment_id constraint.
func (r *Repo) GetOrCreateProgress(ctx context.Context, assignmentID string) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.getOrCreateProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("assignment.id", assignmentID))

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO program_progress (program_assignment_id)
			VALUES ($1)
		ON CONFLICT (program_assignment_id) DO NOTHING;`,
		assignmentID,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrNoActiveProgram
		}
		return nil, fmt.Errorf("create progress: %w", err)
	}
	span.SetAttributes(attribute.Bool("progress.created", tag.RowsAffected() > 0))

	var p Progress
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT id, program_assignment_id::text, current_week_index, current_day_index, is_completed, updated_at
			FROM program_progress
			WHERE program_assignment_id = $1;`,
		assignmentID,
	).Scan(&p.ID, &p.AssignmentID, &p.Cursor.WeekIndex, &p.Cursor.DayIndex, &p.IsCompleted, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	return &p, nil
}

// UpdateProgress moves the cursor from -> to. It fails with ErrProgressChanged when the
// stored cursor is no longer at from, or the program was completed in the meantime.
func (r *Repo) UpdateProgress(
	ctx context.Context,
	assignmentID string,
	from, to schedule.Cursor,
	completed bool,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.updateProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("assignment.id", assignmentID))

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE program_progress
			SET current_week_index = $1, current_day_index = $2, is_completed = $3, updated_at = now()
			WHERE program_assignment_id = $4
				AND current_week_index = $5 AND current_day_index = $6
				AND NOT is_completed;`,
		to.WeekIndex, to.DayIndex, completed, assignmentID, from.WeekIndex, from.DayIndex,
	)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProgressChanged
	}
	return nil
}

func (r *Repo) ScheduleEntries(ctx context.Context, programID string) (_ []schedule.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.scheduleEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", programID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id::text, program_id::text, week_number, day_of_week, template_id::text
			FROM program_schedule
			WHERE program_id = $1;`,
		programID,
	)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (schedule.Entry, error) {
		var e schedule.Entry
		err := row.Scan(&e.ID, &e.ProgramID, &e.WeekNumber, &e.DayOfWeek, &e.TemplateID)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect schedule: %w", err)
	}
	return entries, nil
}

func (r *Repo) Template(ctx context.Context, templateID string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", templateID))

	var t Template
	if err := r.db.QueryRow(
		ctx,
		`SELECT id::text, name, description, estimated_duration FROM workout_templates WHERE id = $1`,
		templateID,
	).Scan(&t.ID, &t.Name, &t.Description, &t.EstimatedDuration); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

func (r *Repo) Blocks(ctx context.Context, templateID string) (_ []blocks.Block, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.blocks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", templateID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id::text, template_id::text, block_type, block_order, block_name,
				total_sets, reps_per_set, rest_seconds, duration_seconds, block_notes
			FROM workout_blocks
			WHERE template_id = $1
			ORDER BY block_order;`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}

	templateBlocks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (blocks.Block, error) {
		var b blocks.Block
		var blockType string
		err := row.Scan(
			&b.ID, &b.TemplateID, &blockType, &b.BlockOrder, &b.BlockName,
			&b.TotalSets, &b.RepsPerSet, &b.RestSeconds, &b.DurationSeconds, &b.BlockNotes,
		)
		b.BlockType = blocks.BlockType(blockType)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect blocks: %w", err)
	}
	return templateBlocks, nil
}

const exerciseRefColumns = `c.id::text, c.block_id::text, c.exercise_id::text, e.name, c.exercise_order`

func childRowsQuery(table, columns string) string {
	return `SELECT ` + exerciseRefColumns + `, ` + columns + `
		FROM ` + table + ` c
		JOIN exercises e ON e.id = c.exercise_id
		WHERE c.block_id = ANY($1::uuid[])
		ORDER BY c.block_id, c.exercise_order;`
}

func refTargets(ref *blocks.ExerciseRef, rest ...any) []any {
	return append([]any{&ref.ID, &ref.BlockID, &ref.ExerciseID, &ref.ExerciseName, &ref.ExerciseOrder}, rest...)
}

// ChildRows fetches the rows of every block-type child table for the given blocks, one query per table,
// concurrently. Any failing query fails the whole fetch.
func (r *Repo) ChildRows(ctx context.Context, blockIDs []string) (_ *blocks.ChildRows, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.pickup.childRows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("blocks.count", len(blockIDs)))

	rows := &blocks.ChildRows{}
	if len(blockIDs) == 0 {
		return rows, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows.Exercises, err = collectChildRows(gctx, r.db,
			childRowsQuery("workout_block_exercises", `c.sets, c.reps, c.weight_kg::float8, c.rest_seconds, c.notes`),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.StraightSetRow, error) {
				var s blocks.StraightSetRow
				err := row.Scan(refTargets(&s.ExerciseRef, &s.Sets, &s.Reps, &s.WeightKg, &s.RestSeconds, &s.Notes)...)
				return s, err
			},
		)
		return err
	})
	g.Go(func() (err error) {
		rows.TimeProtocols, err = collectChildRows(gctx, r.db,
			childRowsQuery("workout_time_protocols", `c.rounds, c.work_seconds, c.rest_seconds, c.notes`),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.TimeProtocolRow, error) {
				var t blocks.TimeProtocolRow
				err := row.Scan(refTargets(&t.ExerciseRef, &t.Rounds, &t.WorkSeconds, &t.RestSeconds, &t.Notes)...)
				return t, err
			},
		)
		return err
	})
	g.Go(func() (err error) {
		rows.DropSets, err = collectChildRows(gctx, r.db,
			childRowsQuery("workout_drop_sets", `c.drop_order, c.weight_kg::float8, c.reps`),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.DropSetRow, error) {
				var d blocks.DropSetRow
				err := row.Scan(refTargets(&d.ExerciseRef, &d.DropOrder, &d.WeightKg, &d.Reps)...)
				return d, err
			},
		)
		return err
	})
	g.Go(func() (err error) {
		rows.ClusterSets, err = collectChildRows(gctx, r.db,
			childRowsQuery(
				"workout_cluster_sets",
				`c.reps_per_cluster, c.clusters_per_set, c.intra_cluster_rest, c.inter_set_rest, c.weight_kg::float8`,
			),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.ClusterSetRow, error) {
				var c blocks.ClusterSetRow
				err := row.Scan(refTargets(
					&c.ExerciseRef, &c.RepsPerCluster, &c.ClustersPerSet, &c.IntraClusterRest, &c.InterSetRest, &c.WeightKg,
				)...)
				return c, err
			},
		)
		return err
	})
	g.Go(func() (err error) {
		rows.RestPauseSets, err = collectChildRows(gctx, r.db,
			childRowsQuery("workout_rest_pause_sets", `c.weight_kg::float8, c.reps, c.rest_pause_duration`),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.RestPauseRow, error) {
				var rp blocks.RestPauseRow
				err := row.Scan(refTargets(&rp.ExerciseRef, &rp.WeightKg, &rp.Reps, &rp.RestPauseDuration)...)
				return rp, err
			},
		)
		return err
	})
	g.Go(func() (err error) {
		rows.PyramidSets, err = collectChildRows(gctx, r.db,
			childRowsQuery("workout_pyramid_sets", `c.pyramid_order, c.weight_kg::float8, c.reps`),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.PyramidSetRow, error) {
				var p blocks.PyramidSetRow
				err := row.Scan(refTargets(&p.ExerciseRef, &p.PyramidOrder, &p.WeightKg, &p.Reps)...)
				return p, err
			},
		)
		return err
	})
	g.Go(func() (err error) {
		rows.LadderSets, err = collectChildRows(gctx, r.db,
			childRowsQuery("workout_ladder_sets", `c.ladder_order, c.weight_kg::float8, c.reps`),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.LadderSetRow, error) {
				var l blocks.LadderSetRow
				err := row.Scan(refTargets(&l.ExerciseRef, &l.LadderOrder, &l.WeightKg, &l.Reps)...)
				return l, err
			},
		)
		return err
	})
	g.Go(func() (err error) {
		rows.HRSets, err = collectChildRows(gctx, r.db,
			childRowsQuery("workout_hr_sets", `c.target_hr_min, c.target_hr_max, c.hr_zone, c.duration_seconds`),
			blockIDs,
			func(row pgx.CollectableRow) (blocks.HRSetRow, error) {
				var h blocks.HRSetRow
				err := row.Scan(refTargets(&h.ExerciseRef, &h.TargetHRMin, &h.TargetHRMax, &h.HRZone, &h.DurationSeconds)...)
				return h, err
			},
		)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func collectChildRows[T any](
	ctx context.Context,
	db *pgxpool.Pool,
	query string,
	blockIDs []string,
	scan func(row pgx.CollectableRow) (T, error),
) ([]T, error) {
	rows, err := db.Query(ctx, query, blockIDs)
	if err != nil {
		return nil, fmt.Errorf("query child rows: %w", err)
	}
	collected, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("collect child rows: %w", err)
	}
	return collected, nil
}
