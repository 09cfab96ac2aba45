package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen       = "open"
	StatusClaimed    = "claimed"
	StatusInProgress = "in_progress"
	StatusPaused     = "paused"
	StatusCompleted  = "completed"

	defaultRating = 3
)

type Task struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Title           string     `gorm:"column:title;size:200;not null"`
	Description     string     `gorm:"column:description"`
	CreatedBy       uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`
	AssignedTo      *uuid.UUID `gorm:"column:assigned_to;type:uuid"`
	Status          string     `gorm:"column:status;size:16;not null"`
	EstimateMinutes *int       `gorm:"column:estimate_minutes"`
	ActiveMinutes   int        `gorm:"column:active_minutes;not null;default:0"`
	Rating          *int       `gorm:"column:rating"`
	ClaimedAt       *time.Time `gorm:"column:claimed_at"`
	StartedAt       *time.Time `gorm:"column:started_at"`
	ResumedAt       *time.Time `gorm:"column:resumed_at"`
	PausedAt        *time.Time `gorm:"column:paused_at"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "employee_tasks"
}

func (t Task) IsAssignedTo(employeeID uuid.UUID) bool {
	return t.AssignedTo != nil && *t.AssignedTo == employeeID
}

// closeSegment folds the running work segment into ActiveMinutes.
func (t *Task) closeSegment(now time.Time) {
	if t.ResumedAt == nil {
		return
	}
	if d := now.Sub(*t.ResumedAt); d > 0 {
		t.ActiveMinutes += int(d.Round(time.Minute) / time.Minute)
	}
	t.ResumedAt = nil
}

// Rate scores a finished task by how its active time compares to the
// claimed estimate.
func Rate(activeMinutes int, estimateMinutes *int, started bool) int {
	if !started || estimateMinutes == nil || *estimateMinutes <= 0 {
		return defaultRating
	}
	percent := float64(activeMinutes) / float64(*estimateMinutes) * 100
	switch {
	case percent <= 75:
		return 5
	case percent <= 100:
		return 4
	case percent <= 130:
		return 3
	case percent < 150:
		return 2
	default:
		return 1
	}
}
