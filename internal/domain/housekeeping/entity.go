package housekeeping

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("illegal task status transition")
	ErrMissingRoom       = errors.New("cleaning task must reference a room")
	ErrInvalidTaskType   = errors.New("invalid task type")
	ErrInvalidPriority   = errors.New("invalid priority")
)

type Task struct {
	id          uuid.UUID
	roomID      uuid.UUID
	roomNumber  string
	taskType    TaskType
	status      Status
	priority    Priority
	assignedTo  string
	notes       string
	createdBy   uuid.UUID
	createdAt   time.Time
	completedAt *time.Time
}

func NewTask(roomID uuid.UUID, roomNumber string, taskType TaskType, priority Priority, assignedTo, notes string, createdBy uuid.UUID) (*Task, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if !taskType.IsValid() {
		return nil, ErrInvalidTaskType
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	return &Task{
		id:         uuid.New(),
		roomID:     roomID,
		roomNumber: roomNumber,
		taskType:   taskType,
		status:     StatusPending,
		priority:   priority,
		assignedTo: assignedTo,
		notes:      notes,
		createdBy:  createdBy,
	}, nil
}

func Reconstruct(
	id, roomID uuid.UUID,
	roomNumber string,
	taskType TaskType,
	status Status,
	priority Priority,
	assignedTo, notes string,
	createdBy uuid.UUID,
	createdAt time.Time,
	completedAt *time.Time,
) *Task {
	return &Task{
		id:          id,
		roomID:      roomID,
		roomNumber:  roomNumber,
		taskType:    taskType,
		status:      status,
		priority:    priority,
		assignedTo:  assignedTo,
		notes:       notes,
		createdBy:   createdBy,
		createdAt:   createdAt,
		completedAt: completedAt,
	}
}

// Advance moves the task along pending -> in-progress -> completed.
// Reaching completed stamps completedAt with now.
func (t *Task) Advance(next Status, now time.Time) error {
	if !next.IsValid() || !t.status.CanTransition(next) {
		return ErrInvalidTransition
	}
	t.status = next
	if next == StatusCompleted {
		completed := now
		t.completedAt = &completed
	}
	return nil
}

func (t *Task) IsOpen() bool {
	return t.status != StatusCompleted
}

func (t *Task) Assign(assignee string) {
	t.assignedTo = assignee
}

func (t *Task) SetNotes(notes string) {
	t.notes = notes
}

func (t *Task) ID() uuid.UUID           { return t.id }
func (t *Task) RoomID() uuid.UUID       { return t.roomID }
func (t *Task) RoomNumber() string      { return t.roomNumber }
func (t *Task) Type() TaskType          { return t.taskType }
func (t *Task) Status() Status          { return t.status }
func (t *Task) Priority() Priority      { return t.priority }
func (t *Task) AssignedTo() string      { return t.assignedTo }
func (t *Task) Notes() string           { return t.notes }
func (t *Task) CreatedBy() uuid.UUID    { return t.createdBy }
func (t *Task) CreatedAt() time.Time    { return t.createdAt }
func (t *Task) CompletedAt() *time.Time { return t.completedAt }
