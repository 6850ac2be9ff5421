package blocks

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// normalizer turns the child rows belonging to one block into normalized exercises.
type normalizer interface {
	normalize(block Block, rows *ChildRows) []Exercise
}

type normalizerFunc func(block Block, rows *ChildRows) []Exercise

func (f normalizerFunc) normalize(block Block, rows *ChildRows) []Exercise {
	return f(block, rows)
}

var normalizers = map[BlockType]normalizer{
	// flat pass-through
	BlockTypeStraightSet:   normalizerFunc(normalizeFlat),
	BlockTypeSuperset:      normalizerFunc(normalizeFlat),
	BlockTypeGiantSet:      normalizerFunc(normalizeFlat),
	BlockTypePreExhaustion: normalizerFunc(normalizeFlat),

	// time protocol pass-through
	BlockTypeAMRAP:   normalizerFunc(normalizeTimeProtocol),
	BlockTypeEMOM:    normalizerFunc(normalizeTimeProtocol),
	BlockTypeForTime: normalizerFunc(normalizeTimeProtocol),
	BlockTypeTabata:  normalizerFunc(normalizeTimeProtocol),
	BlockTypeCircuit: normalizerFunc(normalizeTimeProtocol),

	// grouped, summarized
	BlockTypeDropSet:   normalizerFunc(normalizeDropSet),
	BlockTypeRestPause: normalizerFunc(normalizeRestPause),

	// grouped, sequence preserving
	BlockTypeClusterSet: normalizerFunc(normalizeClusterSet),
	BlockTypePyramidSet: normalizerFunc(normalizePyramid),
	BlockTypeLadder:     normalizerFunc(normalizeLadder),

	// annotation only
	BlockTypeHRSets: normalizerFunc(normalizeHRSets),
}

// Assemble produces exactly one NormalizedBlock per input block, ordered by block_order.
// Blocks of an unknown type, or without matching child rows, get an empty exercise list.
func Assemble(blocks []Block, rows *ChildRows) []NormalizedBlock {
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BlockOrder < sorted[j].BlockOrder
	})

	if rows == nil {
		rows = &ChildRows{}
	}

	assembled := make([]NormalizedBlock, 0, len(sorted))
	for _, block := range sorted {
		var exercises []Exercise
		if n, ok := normalizers[block.BlockType]; ok {
			exercises = n.normalize(block, rows)
		} else {
			log.Warnf("assemble blocks: unknown block type [%s] for block %s", block.BlockType, block.ID)
		}
		if exercises == nil {
			exercises = make([]Exercise, 0)
		}

		assembled = append(assembled, NormalizedBlock{
			ID:              block.ID,
			BlockType:       block.BlockType,
			BlockOrder:      block.BlockOrder,
			BlockName:       block.BlockName,
			TotalSets:       block.TotalSets,
			RestSeconds:     block.RestSeconds,
			DurationSeconds: block.DurationSeconds,
			Notes:           block.BlockNotes,
			Exercises:       exercises,
		})
	}

	return assembled
}

// BlockIDs returns the ids of the given blocks, in input order.
func BlockIDs(blocks []Block) []string {
	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.ID)
	}
	return ids
}

type exerciseRow interface {
	ref() ExerciseRef
}

func (r ExerciseRef) ref() ExerciseRef {
	return r
}

// rowsForBlock filters rows down to the given block and sorts them by exercise_order,
// then by the optional secondary step key.
func rowsForBlock[T exerciseRow](rows []T, blockID string, stepKey func(T) int) []T {
	var filtered []T
	for _, r := range rows {
		if r.ref().BlockID == blockID {
			filtered = append(filtered, r)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		oi, oj := filtered[i].ref().ExerciseOrder, filtered[j].ref().ExerciseOrder
		if oi != oj {
			return oi < oj
		}
		if stepKey != nil {
			return stepKey(filtered[i]) < stepKey(filtered[j])
		}
		return false
	})
	return filtered
}

type group[T exerciseRow] struct {
	key  string
	rows []T
}

// groupRows groups rows by GroupKey, keeping groups in first-appearance order
// and rows in input order within each group.
func groupRows[T exerciseRow](rows []T) []group[T] {
	var groups []group[T]
	index := make(map[string]int)
	for _, r := range rows {
		key := r.ref().GroupKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, group[T]{key: key})
		}
		groups[i].rows = append(groups[i].rows, r)
	}
	return groups
}

func baseExercise(ref ExerciseRef) Exercise {
	return Exercise{
		ID:            ref.ID,
		ExerciseID:    ref.ExerciseID,
		ExerciseName:  ref.ExerciseName,
		ExerciseOrder: ref.ExerciseOrder,
	}
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

// firstNonNil returns the first non-nil pointer.
func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
