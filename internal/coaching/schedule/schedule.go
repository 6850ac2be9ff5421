package schedule

import (
	"fmt"
	"sort"
)

// Entry is a single program_schedule row: one (week_number, day_of_week) -> template mapping.
// WeekNumber and DayOfWeek are stored values and may contain gaps.
type Entry struct {
	ID         string `json:"id"`
	ProgramID  string `json:"programId"`
	WeekNumber int    `json:"weekNumber"`
	DayOfWeek  int    `json:"dayOfWeek"`
	TemplateID string `json:"templateId"`
}

// Cursor is a zero-based position inside a Structure.
// WeekIndex is an offset into Structure.WeekNumbers, never a week_number,
// DayIndex is an offset into that week's day list, never a day_of_week.
type Cursor struct {
	WeekIndex int `json:"weekIndex"`
	DayIndex  int `json:"dayIndex"`
}

// Structure is the in-memory view of one program schedule.
type Structure struct {
	// WeekNumbers holds the distinct week numbers, ascending.
	WeekNumbers []int
	// DaysByWeek holds each week's entries, ascending by DayOfWeek.
	DaysByWeek map[int][]Entry
}

// BuildStructure groups schedule rows by week. The result does not depend on the order of rows.
func BuildStructure(rows []Entry) Structure {
	daysByWeek := make(map[int][]Entry)
	for _, row := range rows {
		daysByWeek[row.WeekNumber] = append(daysByWeek[row.WeekNumber], row)
	}

	weekNumbers := make([]int, 0, len(daysByWeek))
	for weekNumber, days := range daysByWeek {
		weekNumbers = append(weekNumbers, weekNumber)
		sort.SliceStable(days, func(i, j int) bool {
			if days[i].DayOfWeek != days[j].DayOfWeek {
				return days[i].DayOfWeek < days[j].DayOfWeek
			}
			// duplicates violate the schedule's unique key, keep the output deterministic anyway
			return days[i].ID < days[j].ID
		})
	}
	sort.Ints(weekNumbers)

	return Structure{
		WeekNumbers: weekNumbers,
		DaysByWeek:  daysByWeek,
	}
}

// Resolve returns the entry at the given cursor position, or nil when either index is out of bounds.
func Resolve(s Structure, weekIndex, dayIndex int) *Entry {
	if weekIndex < 0 || weekIndex >= len(s.WeekNumbers) {
		return nil
	}
	days := s.DaysByWeek[s.WeekNumbers[weekIndex]]
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil
	}
	entry := days[dayIndex]
	return &entry
}

// ResolveCursor is Resolve for a Cursor value.
func ResolveCursor(s Structure, c Cursor) *Entry {
	return Resolve(s, c.WeekIndex, c.DayIndex)
}

// Advance moves the cursor to the next scheduled day. The returned bool is true
// when the cursor was already on the last day of the last week.
func Advance(s Structure, c Cursor) (Cursor, bool) {
	if ResolveCursor(s, c) == nil {
		return c, false
	}

	if c.DayIndex+1 < s.DaysInWeek(c.WeekIndex) {
		return Cursor{WeekIndex: c.WeekIndex, DayIndex: c.DayIndex + 1}, false
	}
	if c.WeekIndex+1 < s.TotalWeeks() {
		return Cursor{WeekIndex: c.WeekIndex + 1, DayIndex: 0}, false
	}
	return c, true
}

func (s Structure) TotalWeeks() int {
	return len(s.WeekNumbers)
}

// DaysInWeek returns the number of scheduled days for the week at weekIndex, 0 if out of bounds.
func (s Structure) DaysInWeek(weekIndex int) int {
	if weekIndex < 0 || weekIndex >= len(s.WeekNumbers) {
		return 0
	}
	return len(s.DaysByWeek[s.WeekNumbers[weekIndex]])
}

// DayPosition returns the 1-based position of the entry within its week, or 0 if the entry is not part of s.
func (s Structure) DayPosition(e Entry) int {
	for i, day := range s.DaysByWeek[e.WeekNumber] {
		if day.ID == e.ID && day.DayOfWeek == e.DayOfWeek {
			return i + 1
		}
	}
	return 0
}

// WeekLabel is derived from the stored week number, so gaps stay visible.
func WeekLabel(e Entry) string {
	return fmt.Sprintf("Week %d", e.WeekNumber)
}

// DayLabel is the entry's 1-based position within its week, independent of day_of_week.
func (s Structure) DayLabel(e Entry) string {
	return fmt.Sprintf("Day %d", s.DayPosition(e))
}

func (s Structure) PositionLabel(e Entry) string {
	return fmt.Sprintf("%s · %s", WeekLabel(e), s.DayLabel(e))
}
