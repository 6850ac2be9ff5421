package blocks

import "strconv"

// BlockType can be one of the block types a workout template is built from.
// The set is closed; anything else is assembled as a block without exercises.
type BlockType string

const (
	BlockTypeStraightSet   BlockType = "straight_set"
	BlockTypeSuperset      BlockType = "superset"
	BlockTypeGiantSet      BlockType = "giant_set"
	BlockTypePreExhaustion BlockType = "pre_exhaustion"
	BlockTypeAMRAP         BlockType = "amrap"
	BlockTypeEMOM          BlockType = "emom"
	BlockTypeForTime       BlockType = "for_time"
	BlockTypeTabata        BlockType = "tabata"
	BlockTypeCircuit       BlockType = "circuit"
	BlockTypeDropSet       BlockType = "drop_set"
	BlockTypeClusterSet    BlockType = "cluster_set"
	BlockTypeRestPause     BlockType = "rest_pause"
	BlockTypePyramidSet    BlockType = "pyramid_set"
	BlockTypeLadder        BlockType = "ladder"
	BlockTypeHRSets        BlockType = "hr_sets"
)

func (bt BlockType) String() string {
	return string(bt)
}

func (bt BlockType) IsValid() bool {
	_, ok := normalizers[bt]
	return ok
}

// Block is one workout_blocks row.
type Block struct {
	ID              string
	TemplateID      string
	BlockType       BlockType
	BlockOrder      int
	BlockName       *string
	TotalSets       *int
	RepsPerSet      *string
	RestSeconds     *int
	DurationSeconds *int
	BlockNotes      *string
}

// ExerciseRef is the part every block-type child row shares.
type ExerciseRef struct {
	ID            string
	BlockID       string
	ExerciseID    string
	ExerciseName  string
	ExerciseOrder int
}

// GroupKey identifies one logical exercise occurrence within a block.
// The same exercise may appear at several positions of one block.
func (r ExerciseRef) GroupKey() string {
	return r.ExerciseID + ":" + strconv.Itoa(r.ExerciseOrder)
}

// StraightSetRow is a workout_block_exercises row, used by straight sets, supersets,
// giant sets and pre-exhaustion blocks.
type StraightSetRow struct {
	ExerciseRef
	Sets        *int
	Reps        *string
	WeightKg    *float64
	RestSeconds *int
	Notes       *string
}

// TimeProtocolRow is a workout_time_protocols row (amrap, emom, for_time, tabata, circuit).
type TimeProtocolRow struct {
	ExerciseRef
	Rounds      *int
	WorkSeconds *int
	RestSeconds *int
	Notes       *string
}

type DropSetRow struct {
	ExerciseRef
	DropOrder int
	WeightKg  *float64
	Reps      *int
}

type ClusterSetRow struct {
	ExerciseRef
	RepsPerCluster   int
	ClustersPerSet   int
	IntraClusterRest int
	InterSetRest     *int
	WeightKg         *float64
}

// RestPauseRow is one mini-set of a rest-pause exercise.
type RestPauseRow struct {
	ExerciseRef
	WeightKg          *float64
	Reps              *int
	RestPauseDuration *int
}

type PyramidSetRow struct {
	ExerciseRef
	PyramidOrder int
	WeightKg     *float64
	Reps         int
}

type LadderSetRow struct {
	ExerciseRef
	LadderOrder int
	WeightKg    *float64
	Reps        int
}

type HRSetRow struct {
	ExerciseRef
	TargetHRMin     int
	TargetHRMax     int
	HRZone          *int
	DurationSeconds int
}

// ChildRows bundles the candidate rows of every block-type child table for one template.
// Rows are matched to blocks by BlockID during assembly.
type ChildRows struct {
	Exercises     []StraightSetRow
	TimeProtocols []TimeProtocolRow
	DropSets      []DropSetRow
	ClusterSets   []ClusterSetRow
	RestPauseSets []RestPauseRow
	PyramidSets   []PyramidSetRow
	LadderSets    []LadderSetRow
	HRSets        []HRSetRow
}

// Exercise is the uniform, display-ready projection of any child row.
type Exercise struct {
	ID            string   `json:"id"`
	ExerciseID    string   `json:"exercise_id"`
	ExerciseName  string   `json:"exercise_name"`
	ExerciseOrder int      `json:"exercise_order"`
	Sets          *int     `json:"sets,omitempty"`
	Reps          *string  `json:"reps,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	RestSeconds   *int     `json:"rest_seconds,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	Rounds        *int     `json:"rounds,omitempty"`
	WorkSeconds   *int     `json:"work_seconds,omitempty"`
}

type NormalizedBlock struct {
	ID              string     `json:"id"`
	BlockType       BlockType  `json:"block_type"`
	BlockOrder      int        `json:"block_order"`
	BlockName       *string    `json:"block_name,omitempty"`
	TotalSets       *int       `json:"total_sets,omitempty"`
	RestSeconds     *int       `json:"rest_seconds,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Exercises       []Exercise `json:"exercises"`
}
