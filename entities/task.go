package entities

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type Task struct {
	TaskID         string      `gorm:"primaryKey" json:"task_id"`
	FarmID         string      `json:"farm_id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	DueDate        time.Time   `json:"due_date"`
	Status         TaskStatus  `json:"status"`
	AssignedTo     string      `json:"assigned_to,omitempty"` // labor id
	RelatedKind    RelatedKind `json:"related_kind,omitempty"`
	RelatedID      string      `json:"related_id,omitempty"`
	OrganizationID string      `json:"organization_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

func (t *Task) Validate() error {
	if !ValidTaskStatus(t.Status) {
		return fmt.Errorf("invalid task status %q", t.Status)
	}
	return validateRelated(t.RelatedKind, t.RelatedID, RelatedCrop, RelatedLivestock)
}
