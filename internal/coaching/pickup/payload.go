package pickup

import (
	"github.com/2beens/fitcoach/internal/coaching/blocks"
	"github.com/2beens/fitcoach/internal/coaching/schedule"
)

type NoProgramResponse struct {
	Status     Status `json:"status"`
	Message    string `json:"message"`
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name"`
}

// ProgramResponse carries the identity fields shared by the completed and active payloads.
type ProgramResponse struct {
	Status              Status  `json:"status"`
	Message             string  `json:"message,omitempty"`
	ClientID            string  `json:"client_id"`
	ClientName          string  `json:"client_name"`
	ClientAvatarURL     *string `json:"client_avatar_url"`
	ProgramAssignmentID string  `json:"program_assignment_id"`
	ProgramID           string  `json:"program_id"`
	ProgramName         string  `json:"program_name"`
	CurrentWeekIndex    int     `json:"current_week_index"`
	CurrentDayIndex     int     `json:"current_day_index"`
	IsCompleted         bool    `json:"is_completed"`
	Warning             string  `json:"warning,omitempty"`
}

type ActiveResponse struct {
	ProgramResponse
	WeekLabel          string                   `json:"week_label"`
	DayLabel           string                   `json:"day_label"`
	PositionLabel      string                   `json:"position_label"`
	TotalWeeks         int                      `json:"total_weeks"`
	DaysInCurrentWeek  int                      `json:"days_in_current_week"`
	TemplateID         string                   `json:"template_id"`
	WorkoutName        string                   `json:"workout_name"`
	WorkoutDescription *string                  `json:"workout_description"`
	EstimatedDuration  *int                     `json:"estimated_duration"`
	Blocks             []blocks.NormalizedBlock `json:"blocks"`
}

// ErrorResponse is the JSON body of every failed pickup request.
// Diagnostic fields are only set for invalid progress.
type ErrorResponse struct {
	Error               string `json:"error"`
	Message             string `json:"message"`
	Status              Status `json:"status,omitempty"`
	ClientID            string `json:"client_id,omitempty"`
	ProgramAssignmentID string `json:"program_assignment_id,omitempty"`
	CurrentWeekIndex    *int   `json:"current_week_index,omitempty"`
	CurrentDayIndex     *int   `json:"current_day_index,omitempty"`
	TotalWeeks          *int   `json:"total_weeks,omitempty"`
	DaysInCurrentWeek   *int   `json:"days_in_current_week,omitempty"`
}

// NewResponse turns a lookup result into the payload for its status.
func NewResponse(next *NextWorkout) any {
	if next.Status == StatusNoProgram || next.Assignment == nil || next.Progress == nil {
		return NoProgramResponse{
			Status:     StatusNoProgram,
			Message:    next.Message,
			ClientID:   next.Client.ID,
			ClientName: next.Client.FullName,
		}
	}

	program := ProgramResponse{
		Status:              next.Status,
		Message:             next.Message,
		ClientID:            next.Client.ID,
		ClientName:          next.Client.FullName,
		ClientAvatarURL:     next.Client.AvatarURL,
		ProgramAssignmentID: next.Assignment.ID,
		ProgramID:           next.Assignment.ProgramID,
		ProgramName:         next.Assignment.ProgramName,
		CurrentWeekIndex:    next.Progress.Cursor.WeekIndex,
		CurrentDayIndex:     next.Progress.Cursor.DayIndex,
		IsCompleted:         next.Progress.IsCompleted,
		Warning:             next.Warning,
	}
	if next.Status != StatusActive || next.Entry == nil || next.Template == nil {
		return program
	}

	nextBlocks := next.Blocks
	if nextBlocks == nil {
		nextBlocks = make([]blocks.NormalizedBlock, 0)
	}

	entry := *next.Entry
	return ActiveResponse{
		ProgramResponse:    program,
		WeekLabel:          schedule.WeekLabel(entry),
		DayLabel:           next.Structure.DayLabel(entry),
		PositionLabel:      next.Structure.PositionLabel(entry),
		TotalWeeks:         next.Structure.TotalWeeks(),
		DaysInCurrentWeek:  next.Structure.DaysInWeek(next.Progress.Cursor.WeekIndex),
		TemplateID:         next.Template.ID,
		WorkoutName:        next.Template.Name,
		WorkoutDescription: next.Template.Description,
		EstimatedDuration:  next.Template.EstimatedDuration,
		Blocks:             nextBlocks,
	}
}

func newInvalidProgressResponse(clientID string, e *InvalidProgressError) ErrorResponse {
	return ErrorResponse{
		Error:               "Invalid progress",
		Message:             "Progress position is outside of the program schedule",
		Status:              StatusInvalidProgress,
		ClientID:            clientID,
		ProgramAssignmentID: e.AssignmentID,
		CurrentWeekIndex:    &e.WeekIndex,
		CurrentDayIndex:     &e.DayIndex,
		TotalWeeks:          &e.TotalWeeks,
		DaysInCurrentWeek:   &e.DaysInWeek,
	}
}
