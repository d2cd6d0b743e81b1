//go:build unit

package housekeeping_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/housekeeping"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingTask(t *testing.T) *housekeeping.Task {
	t.Helper()
	task, err := housekeeping.NewTask(
		uuid.New(), "101",
		housekeeping.TaskPostCheckoutClean,
		housekeeping.PriorityMedium,
		"", "", uuid.New(),
	)
	require.NoError(t, err)
	return task
}

func TestNewTask(t *testing.T) {
	t.Run("defaults to pending with medium priority", func(t *testing.T) {
		task, err := housekeeping.NewTask(uuid.New(), "101", housekeeping.TaskStandardClean, "", "", "", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, housekeeping.StatusPending, task.Status())
		assert.Equal(t, housekeeping.PriorityMedium, task.Priority())
		assert.True(t, task.IsOpen())
		assert.Nil(t, task.CompletedAt())
	})

	t.Run("rejects missing room", func(t *testing.T) {
		_, err := housekeeping.NewTask(uuid.Nil, "", housekeeping.TaskStandardClean, "", "", "", uuid.New())
		assert.ErrorIs(t, err, housekeeping.ErrMissingRoom)
	})

	t.Run("rejects unknown task type", func(t *testing.T) {
		_, err := housekeeping.NewTask(uuid.New(), "101", housekeeping.TaskType("Mop Ceiling"), "", "", "", uuid.New())
		assert.ErrorIs(t, err, housekeeping.ErrInvalidTaskType)
	})
}

func TestAdvance(t *testing.T) {
	now := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)

	t.Run("pending to in-progress to completed", func(t *testing.T) {
		task := newPendingTask(t)

		require.NoError(t, task.Advance(housekeeping.StatusInProgress, now))
		assert.Equal(t, housekeeping.StatusInProgress, task.Status())
		assert.Nil(t, task.CompletedAt())

		require.NoError(t, task.Advance(housekeeping.StatusCompleted, now))
		assert.Equal(t, housekeeping.StatusCompleted, task.Status())
		require.NotNil(t, task.CompletedAt())
		assert.Equal(t, now, *task.CompletedAt())
		assert.False(t, task.IsOpen())
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		task := newPendingTask(t)
		err := task.Advance(housekeeping.StatusCompleted, now)
		assert.ErrorIs(t, err, housekeeping.ErrInvalidTransition)
		assert.Equal(t, housekeeping.StatusPending, task.Status())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		task := newPendingTask(t)
		require.NoError(t, task.Advance(housekeeping.StatusInProgress, now))
		require.NoError(t, task.Advance(housekeeping.StatusCompleted, now))

		for _, next := range []housekeeping.Status{
			housekeeping.StatusPending,
			housekeeping.StatusInProgress,
			housekeeping.StatusCompleted,
		} {
			assert.ErrorIs(t, task.Advance(next, now), housekeeping.ErrInvalidTransition)
		}
	})

	t.Run("no backwards transition", func(t *testing.T) {
		task := newPendingTask(t)
		require.NoError(t, task.Advance(housekeeping.StatusInProgress, now))
		assert.ErrorIs(t, task.Advance(housekeeping.StatusPending, now), housekeeping.ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		task := newPendingTask(t)
		assert.ErrorIs(t, task.Advance(housekeeping.Status("paused"), now), housekeeping.ErrInvalidTransition)
	})
}
