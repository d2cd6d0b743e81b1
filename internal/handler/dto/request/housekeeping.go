package request

import (
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	RoomID     uuid.UUID `json:"roomId" binding:"required"`
	TaskType   string    `json:"taskType" binding:"required"`
	Priority   string    `json:"priority"`
	AssignedTo string    `json:"assignedTo"`
	Notes      string    `json:"notes"`
}

func (r *CreateTaskRequest) ToInput() commands.CreateTaskInput {
	return commands.CreateTaskInput{
		RoomID:     r.RoomID,
		TaskType:   r.TaskType,
		Priority:   r.Priority,
		AssignedTo: r.AssignedTo,
		Notes:      r.Notes,
	}
}

type UpdateTaskRequest struct {
	Priority   *string `json:"priority,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpdateTaskRequest) ToInput() commands.UpdateTaskInput {
	return commands.UpdateTaskInput{
		Priority:   r.Priority,
		AssignedTo: r.AssignedTo,
		Notes:      r.Notes,
	}
}

type AdvanceTaskRequest struct {
	Status string `json:"status" binding:"required"`
}
