package commands

import (
	"context"
	"log/slog"

	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound          = errs.New("cleaning task not found")
	ErrIllegalTaskTransition = errs.New("illegal task status transition")
)

type CreateTaskInput struct {
	RoomID     uuid.UUID
	TaskType   string
	Priority   string
	AssignedTo string
	Notes      string
}

type UpdateTaskInput struct {
	Priority   *string
	AssignedTo *string
	Notes      *string
}

type HousekeepingCommands interface {
	CreateTask(ctx context.Context, input CreateTaskInput, actorID uuid.UUID, role user.Role) (*TaskSnapshot, error)
	UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput, actorID uuid.UUID, role user.Role) (*TaskSnapshot, error)
	AdvanceTask(ctx context.Context, id uuid.UUID, next string, actorID uuid.UUID, role user.Role) (*TaskSnapshot, error)
	DeleteTask(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error

	// EnsureTask opens a cleaning task for the room unless one is already
	// open. Called on checkout and room moves; calling it again while the
	// first task is still open is a no-op.
	EnsureTask(ctx context.Context, roomID uuid.UUID, roomNumber string, taskType housekeeping.TaskType, createdBy uuid.UUID) (*TaskSnapshot, error)
}

type housekeepingUseCaseImpl struct {
	taskRepo TaskRepository
	roomRepo RoomRepository
	notifier ChangeNotifier
	clock    clock.Clock
}

func NewHousekeepingUseCase(
	taskRepo TaskRepository,
	roomRepo RoomRepository,
	notifier ChangeNotifier,
	clock clock.Clock,
) HousekeepingCommands {
	return &housekeepingUseCaseImpl{
		taskRepo: taskRepo,
		roomRepo: roomRepo,
		notifier: notifier,
		clock:    clock,
	}
}

func (h *housekeepingUseCaseImpl) CreateTask(
	ctx context.Context,
	input CreateTaskInput,
	actorID uuid.UUID,
	role user.Role,
) (*TaskSnapshot, error) {
	if !user.Can(role, user.OpTaskCreate) {
		return nil, ErrPermissionDenied
	}

	roomSnap, err := h.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	entity, err := housekeeping.NewTask(
		roomSnap.ID,
		roomSnap.RoomNumber,
		housekeeping.TaskType(input.TaskType),
		housekeeping.Priority(input.Priority),
		input.AssignedTo,
		input.Notes,
		actorID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	snap := taskToSnapshot(entity)
	if err := h.taskRepo.Create(ctx, snap); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	h.publish(ctx, snap.ID, "create")
	metrics.IncOperation("task.create", "ok")

	return h.taskRepo.FindByID(ctx, snap.ID)
}

func (h *housekeepingUseCaseImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	input UpdateTaskInput,
	actorID uuid.UUID,
	role user.Role,
) (*TaskSnapshot, error) {
	if !user.Can(role, user.OpTaskAdvance) {
		return nil, ErrPermissionDenied
	}

	current, err := h.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Priority != nil && !housekeeping.Priority(*input.Priority).IsValid() {
		return nil, errs.Mark(housekeeping.ErrInvalidPriority, ErrDomainValidation)
	}

	err = h.taskRepo.Update(ctx, current.ID, TaskPatch{
		Priority:   input.Priority,
		AssignedTo: input.AssignedTo,
		Notes:      input.Notes,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	h.publish(ctx, current.ID, "update")
	metrics.IncOperation("task.update", "ok")

	return h.taskRepo.FindByID(ctx, current.ID)
}

func (h *housekeepingUseCaseImpl) AdvanceTask(
	ctx context.Context,
	id uuid.UUID,
	next string,
	actorID uuid.UUID,
	role user.Role,
) (*TaskSnapshot, error) {
	if !user.Can(role, user.OpTaskAdvance) {
		return nil, ErrPermissionDenied
	}

	current, err := h.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	entity := taskFromSnapshot(current)
	if err := entity.Advance(housekeeping.Status(next), h.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrIllegalTaskTransition)
	}

	status := entity.Status().String()
	taskPatch := TaskPatch{
		Status:      &status,
		CompletedAt: entity.CompletedAt(),
	}
	if err := h.taskRepo.Update(ctx, current.ID, taskPatch); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	// Completing the clean flips the room's cleaningDone flag.
	if entity.Status() == housekeeping.StatusCompleted {
		done := true
		if err := h.roomRepo.Update(ctx, current.RoomID, RoomPatch{CleaningDone: &done}); err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrStoreOperationFailed)
			}
			// Room deleted after the task was opened; the task record alone
			// still completes.
			slog.Warn("completed cleaning task for missing room", "task_id", current.ID, "room_id", current.RoomID)
		}
	}

	h.publish(ctx, current.ID, "update")
	metrics.IncOperation("task.advance", "ok")

	return h.taskRepo.FindByID(ctx, current.ID)
}

func (h *housekeepingUseCaseImpl) DeleteTask(
	ctx context.Context,
	id uuid.UUID,
	actorID uuid.UUID,
	role user.Role,
) error {
	if !user.Can(role, user.OpTaskDelete) {
		return ErrPermissionDenied
	}

	if _, err := h.findTask(ctx, id); err != nil {
		return err
	}

	if err := h.taskRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTaskNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}

	h.publish(ctx, id, "delete")
	metrics.IncOperation("task.delete", "ok")
	return nil
}

func (h *housekeepingUseCaseImpl) EnsureTask(
	ctx context.Context,
	roomID uuid.UUID,
	roomNumber string,
	taskType housekeeping.TaskType,
	createdBy uuid.UUID,
) (*TaskSnapshot, error) {
	open, err := h.taskRepo.ListOpenByRoom(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if len(open) > 0 {
		return &open[0], nil
	}

	entity, err := housekeeping.NewTask(roomID, roomNumber, taskType, housekeeping.PriorityMedium, "", "", createdBy)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	snap := taskToSnapshot(entity)
	if err := h.taskRepo.Create(ctx, snap); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	h.publish(ctx, snap.ID, "create")
	return h.taskRepo.FindByID(ctx, snap.ID)
}

func (h *housekeepingUseCaseImpl) findTask(ctx context.Context, id uuid.UUID) (*TaskSnapshot, error) {
	snap, err := h.taskRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return snap, nil
}

func (h *housekeepingUseCaseImpl) publish(ctx context.Context, id uuid.UUID, op string) {
	event := ChangeEvent{Collection: docstore.CollectionTasks, ID: id, Op: op}
	if err := h.notifier.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish task change", "task_id", id, "error", err)
	}
}

func taskToSnapshot(t *housekeeping.Task) TaskSnapshot {
	return TaskSnapshot{
		ID:          t.ID(),
		RoomID:      t.RoomID(),
		RoomNumber:  t.RoomNumber(),
		TaskType:    string(t.Type()),
		Status:      t.Status().String(),
		Priority:    string(t.Priority()),
		AssignedTo:  t.AssignedTo(),
		Notes:       t.Notes(),
		CreatedBy:   t.CreatedBy(),
		CompletedAt: t.CompletedAt(),
	}
}

func taskFromSnapshot(s *TaskSnapshot) *housekeeping.Task {
	return housekeeping.Reconstruct(
		s.ID,
		s.RoomID,
		s.RoomNumber,
		housekeeping.TaskType(s.TaskType),
		housekeeping.Status(s.Status),
		housekeeping.Priority(s.Priority),
		s.AssignedTo,
		s.Notes,
		s.CreatedBy,
		s.CreatedAt,
		s.CompletedAt,
	)
}
