package response

import (
	"time"

	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	RoomID      uuid.UUID  `json:"roomId"`
	RoomNumber  string     `json:"roomNumber"`
	TaskType    string     `json:"taskType"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func FromTaskView(v *queries.TaskView) *TaskResponse {
	return &TaskResponse{
		ID:          v.ID,
		RoomID:      v.RoomID,
		RoomNumber:  v.RoomNumber,
		TaskType:    v.TaskType,
		Status:      v.Status,
		Priority:    v.Priority,
		AssignedTo:  v.AssignedTo,
		Notes:       v.Notes,
		CreatedBy:   v.CreatedBy,
		CreatedAt:   v.CreatedAt,
		CompletedAt: v.CompletedAt,
	}
}

func FromTaskViews(vs []*queries.TaskView) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromTaskView(v))
	}
	return out
}

func FromTaskSnapshot(s *commands.TaskSnapshot) *TaskResponse {
	return &TaskResponse{
		ID:          s.ID,
		RoomID:      s.RoomID,
		RoomNumber:  s.RoomNumber,
		TaskType:    s.TaskType,
		Status:      s.Status,
		Priority:    s.Priority,
		AssignedTo:  s.AssignedTo,
		Notes:       s.Notes,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		CompletedAt: s.CompletedAt,
	}
}
