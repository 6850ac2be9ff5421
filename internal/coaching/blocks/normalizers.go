package blocks

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	pyramidRepsSeparator = " → "
	ladderRepsSeparator  = ", "
)

func normalizeFlat(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.Exercises, block.ID, nil)
	exercises := make([]Exercise, 0, len(blockRows))
	for _, r := range blockRows {
		e := baseExercise(r.ExerciseRef)
		e.Sets = firstNonNil(r.Sets, block.TotalSets)
		e.Reps = firstNonNil(r.Reps, block.RepsPerSet)
		e.WeightKg = r.WeightKg
		e.RestSeconds = firstNonNil(r.RestSeconds, block.RestSeconds)
		e.Notes = r.Notes
		exercises = append(exercises, e)
	}
	return exercises
}

func normalizeTimeProtocol(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.TimeProtocols, block.ID, nil)
	exercises := make([]Exercise, 0, len(blockRows))
	for _, r := range blockRows {
		e := baseExercise(r.ExerciseRef)
		e.Rounds = firstNonNil(r.Rounds, block.TotalSets)
		e.WorkSeconds = r.WorkSeconds
		e.RestSeconds = firstNonNil(r.RestSeconds, block.RestSeconds)
		e.Notes = r.Notes
		exercises = append(exercises, e)
	}
	return exercises
}

func normalizeDropSet(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.DropSets, block.ID, func(r DropSetRow) int { return r.DropOrder })
	groups := groupRows(blockRows)
	exercises := make([]Exercise, 0, len(groups))
	for _, g := range groups {
		first := g.rows[0]
		e := baseExercise(first.ExerciseRef)
		// every row is one drop of the same set, the number of sets lives on the block
		e.Sets = block.TotalSets
		if first.Reps != nil {
			e.Reps = strPtr(strconv.Itoa(*first.Reps))
		}
		e.WeightKg = first.WeightKg
		e.RestSeconds = block.RestSeconds
		e.Notes = strPtr(fmt.Sprintf("Drop set (%d drops)", len(g.rows)))
		exercises = append(exercises, e)
	}
	return exercises
}

func normalizeRestPause(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.RestPauseSets, block.ID, nil)
	groups := groupRows(blockRows)
	exercises := make([]Exercise, 0, len(groups))
	for _, g := range groups {
		first := g.rows[0]
		e := baseExercise(first.ExerciseRef)
		e.Sets = block.TotalSets
		if first.Reps != nil {
			e.Reps = strPtr(strconv.Itoa(*first.Reps))
		}
		e.WeightKg = first.WeightKg
		e.RestSeconds = block.RestSeconds

		notes := fmt.Sprintf("Rest-pause (%d rounds", len(g.rows))
		if first.RestPauseDuration != nil {
			notes += fmt.Sprintf(", %ds rest", *first.RestPauseDuration)
		}
		e.Notes = strPtr(notes + ")")
		exercises = append(exercises, e)
	}
	return exercises
}

func normalizeClusterSet(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.ClusterSets, block.ID, nil)
	exercises := make([]Exercise, 0, len(blockRows))
	for _, r := range blockRows {
		e := baseExercise(r.ExerciseRef)
		e.Sets = block.TotalSets
		e.Reps = strPtr(strconv.Itoa(r.RepsPerCluster))
		e.WeightKg = r.WeightKg
		e.RestSeconds = firstNonNil(r.InterSetRest, block.RestSeconds)
		e.Notes = strPtr(fmt.Sprintf(
			"Cluster: %d x %d reps, %ds intra-cluster rest",
			r.ClustersPerSet, r.RepsPerCluster, r.IntraClusterRest,
		))
		exercises = append(exercises, e)
	}
	return exercises
}

func normalizePyramid(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.PyramidSets, block.ID, func(r PyramidSetRow) int { return r.PyramidOrder })
	groups := groupRows(blockRows)
	exercises := make([]Exercise, 0, len(groups))
	for _, g := range groups {
		reps := make([]int, 0, len(g.rows))
		for _, r := range g.rows {
			reps = append(reps, r.Reps)
		}
		e := baseExercise(g.rows[0].ExerciseRef)
		e.Sets = intPtr(len(g.rows))
		e.Reps = strPtr(joinReps(reps, pyramidRepsSeparator))
		e.WeightKg = g.rows[0].WeightKg
		e.RestSeconds = block.RestSeconds
		e.Notes = strPtr(fmt.Sprintf("Pyramid (%d steps)", len(g.rows)))
		exercises = append(exercises, e)
	}
	return exercises
}

func normalizeLadder(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.LadderSets, block.ID, func(r LadderSetRow) int { return r.LadderOrder })
	groups := groupRows(blockRows)
	exercises := make([]Exercise, 0, len(groups))
	for _, g := range groups {
		reps := make([]int, 0, len(g.rows))
		for _, r := range g.rows {
			reps = append(reps, r.Reps)
		}
		e := baseExercise(g.rows[0].ExerciseRef)
		e.Sets = intPtr(len(g.rows))
		e.Reps = strPtr(joinReps(reps, ladderRepsSeparator))
		e.WeightKg = g.rows[0].WeightKg
		e.RestSeconds = block.RestSeconds
		e.Notes = strPtr(fmt.Sprintf("Ladder (%d rungs)", len(g.rows)))
		exercises = append(exercises, e)
	}
	return exercises
}

func normalizeHRSets(block Block, rows *ChildRows) []Exercise {
	blockRows := rowsForBlock(rows.HRSets, block.ID, nil)
	exercises := make([]Exercise, 0, len(blockRows))
	for _, r := range blockRows {
		e := baseExercise(r.ExerciseRef)
		notes := fmt.Sprintf(
			"Target HR %d-%d bpm for %s",
			r.TargetHRMin, r.TargetHRMax, formatDuration(r.DurationSeconds),
		)
		if r.HRZone != nil {
			notes = fmt.Sprintf("Zone %d: %s", *r.HRZone, notes)
		}
		e.Notes = strPtr(notes)
		exercises = append(exercises, e)
	}
	return exercises
}

func joinReps(reps []int, sep string) string {
	parts := make([]string, 0, len(reps))
	for _, r := range reps {
		parts = append(parts, strconv.Itoa(r))
	}
	return strings.Join(parts, sep)
}

func formatDuration(seconds int) string {
	if seconds > 0 && seconds%60 == 0 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%ds", seconds)
}
