package pickup

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/coaching/blocks"
	"github.com/2beens/fitcoach/internal/coaching/schedule"
)

type Status string

const (
	StatusNoProgram Status = "no_program"
	StatusCompleted Status = "completed"
	StatusActive    Status = "active"
	// StatusInvalidProgress is never part of a NextWorkout, it is reported through InvalidProgressError.
	StatusInvalidProgress Status = "invalid_progress"
)

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrScheduleEmpty    = errors.New("program schedule is empty")
	ErrTemplateNotFound = errors.New("workout template not found")
	ErrNoActiveProgram  = errors.New("no active program")
	ErrProgramCompleted = errors.New("program already completed")
	ErrProgressChanged  = errors.New("progress changed concurrently")
)

// InvalidProgressError reports a progress cursor that points outside the program schedule.
type InvalidProgressError struct {
	AssignmentID string
	WeekIndex    int
	DayIndex     int
	TotalWeeks   int
	// DaysInWeek is 0 when WeekIndex itself is out of bounds.
	DaysInWeek int
}

func (e *InvalidProgressError) Error() string {
	return fmt.Sprintf(
		"progress [week index %d, day index %d] outside schedule of %d weeks",
		e.WeekIndex, e.DayIndex, e.TotalWeeks,
	)
}

type Client struct {
	ID        string
	FullName  string
	AvatarURL *string
}

type Assignment struct {
	ID          string
	ProgramID   string
	ProgramName string
	ClientID    string
	CoachID     string
	Status      string
	StartDate   *time.Time
	CreatedAt   time.Time
}

// Progress is the program_progress row of one assignment.
type Progress struct {
	ID           int64
	AssignmentID string
	Cursor       schedule.Cursor
	IsCompleted  bool
	UpdatedAt    time.Time
}

type Template struct {
	ID                string
	Name              string
	Description       *string
	EstimatedDuration *int
}

// NextWorkout is the outcome of a next-workout lookup for one client.
// Assignment and Progress are nil for StatusNoProgram; Entry, Template and Blocks are set for StatusActive only.
type NextWorkout struct {
	Status     Status
	Message    string
	Warning    string
	Client     Client
	Assignment *Assignment
	Progress   *Progress

	Structure schedule.Structure
	Entry     *schedule.Entry
	Template  *Template
	Blocks    []blocks.NormalizedBlock
}
