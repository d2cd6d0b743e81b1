//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTask_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")

	first, err := f.tasks.EnsureTask(ctx, roomSnap.ID, roomSnap.RoomNumber, housekeeping.TaskPostCheckoutClean, f.adminID)
	require.NoError(t, err)

	second, err := f.tasks.EnsureTask(ctx, roomSnap.ID, roomSnap.RoomNumber, housekeeping.TaskPostCheckoutClean, f.adminID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	open, err := f.taskRepo.ListOpenByRoom(ctx, roomSnap.ID)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestEnsureTask_ReopensAfterCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")

	first, err := f.tasks.EnsureTask(ctx, roomSnap.ID, roomSnap.RoomNumber, housekeeping.TaskPostCheckoutClean, f.adminID)
	require.NoError(t, err)

	_, err = f.tasks.AdvanceTask(ctx, first.ID, housekeeping.StatusInProgress.String(), f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	_, err = f.tasks.AdvanceTask(ctx, first.ID, housekeeping.StatusCompleted.String(), f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	// No open task anymore, so ensure opens a fresh one.
	second, err := f.tasks.EnsureTask(ctx, roomSnap.ID, roomSnap.RoomNumber, housekeeping.TaskPostCheckoutClean, f.adminID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, housekeeping.StatusPending.String(), second.Status)
}

func TestAdvanceTask_FullLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	created, err := f.tasks.CreateTask(ctx, commands.CreateTaskInput{
		RoomID:   roomSnap.ID,
		TaskType: string(housekeeping.TaskDeepClean),
		Priority: string(housekeeping.PriorityHigh),
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, housekeeping.StatusPending.String(), created.Status)
	assert.Nil(t, created.CompletedAt)

	inProgress, err := f.tasks.AdvanceTask(ctx, created.ID, housekeeping.StatusInProgress.String(), f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, housekeeping.StatusInProgress.String(), inProgress.Status)

	done, err := f.tasks.AdvanceTask(ctx, created.ID, housekeeping.StatusCompleted.String(), f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, housekeeping.StatusCompleted.String(), done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.True(t, done.CompletedAt.Equal(f.clock.Now()))

	// Completion flips the room's cleaningDone flag.
	cleaned, err := f.roomRepo.FindByID(ctx, roomSnap.ID)
	require.NoError(t, err)
	assert.True(t, cleaned.CleaningDone)
}

func TestAdvanceTask_IllegalTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")

	newPendingTask := func(t *testing.T) *commands.TaskSnapshot {
		snap, err := f.tasks.CreateTask(ctx, commands.CreateTaskInput{
			RoomID:   roomSnap.ID,
			TaskType: string(housekeeping.TaskStandardClean),
		}, f.adminID, user.RoleAdmin)
		require.NoError(t, err)
		return snap
	}

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		task := newPendingTask(t)
		_, err := f.tasks.AdvanceTask(ctx, task.ID, housekeeping.StatusCompleted.String(), f.adminID, user.RoleAdmin)
		require.ErrorIs(t, err, commands.ErrIllegalTaskTransition)
	})

	t.Run("in-progress cannot go back to pending", func(t *testing.T) {
		task := newPendingTask(t)
		_, err := f.tasks.AdvanceTask(ctx, task.ID, housekeeping.StatusInProgress.String(), f.adminID, user.RoleAdmin)
		require.NoError(t, err)
		_, err = f.tasks.AdvanceTask(ctx, task.ID, housekeeping.StatusPending.String(), f.adminID, user.RoleAdmin)
		require.ErrorIs(t, err, commands.ErrIllegalTaskTransition)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		task := newPendingTask(t)
		_, err := f.tasks.AdvanceTask(ctx, task.ID, housekeeping.StatusInProgress.String(), f.adminID, user.RoleAdmin)
		require.NoError(t, err)
		_, err = f.tasks.AdvanceTask(ctx, task.ID, housekeeping.StatusCompleted.String(), f.adminID, user.RoleAdmin)
		require.NoError(t, err)

		for _, next := range []string{
			housekeeping.StatusPending.String(),
			housekeeping.StatusInProgress.String(),
			housekeeping.StatusCompleted.String(),
		} {
			_, err := f.tasks.AdvanceTask(ctx, task.ID, next, f.adminID, user.RoleAdmin)
			require.ErrorIs(t, err, commands.ErrIllegalTaskTransition)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		task := newPendingTask(t)
		_, err := f.tasks.AdvanceTask(ctx, task.ID, "paused", f.adminID, user.RoleAdmin)
		require.ErrorIs(t, err, commands.ErrIllegalTaskTransition)
	})
}

func TestCreateTask_InvalidTypeRejected(t *testing.T) {
	f := newFixture(t)

	roomSnap := f.createRoom(t, "101")
	_, err := f.tasks.CreateTask(context.Background(), commands.CreateTaskInput{
		RoomID:   roomSnap.ID,
		TaskType: "Spring Clean",
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrDomainValidation)
}

func TestDeleteTask_AdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	task, err := f.tasks.CreateTask(ctx, commands.CreateTaskInput{
		RoomID:   roomSnap.ID,
		TaskType: string(housekeeping.TaskStandardClean),
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	for _, role := range []user.Role{user.RoleManager, user.RoleStaff, user.RoleEmployee} {
		err := f.tasks.DeleteTask(ctx, task.ID, f.staffID, role)
		assert.ErrorIs(t, err, commands.ErrPermissionDenied, "role %s", role)
	}

	require.NoError(t, f.tasks.DeleteTask(ctx, task.ID, f.adminID, user.RoleAdmin))

	err = f.tasks.DeleteTask(ctx, task.ID, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrTaskNotFound)
}
