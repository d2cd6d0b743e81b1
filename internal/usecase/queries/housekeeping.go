package queries

import (
	"context"

	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrTaskNotFound  = errs.New("cleaning task not found")
	ErrInvalidStatus = errs.New("invalid task status filter")
)

type TaskReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*commands.TaskSnapshot, error)
	ListAll(ctx context.Context) ([]commands.TaskSnapshot, error)
	ListByStatus(ctx context.Context, status string) ([]commands.TaskSnapshot, error)
}

type TaskQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TaskView, error)
	// List returns every task, optionally narrowed to one status. Tasks
	// are visible to all staff regardless of who opened them.
	List(ctx context.Context, status string) ([]*TaskView, error)
}

type taskQueriesImpl struct {
	repo TaskReadRepo
}

func NewTaskQueries(repo TaskReadRepo) TaskQueries {
	return &taskQueriesImpl{repo: repo}
}

func (q *taskQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TaskView, error) {
	snap, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	var view TaskView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return &view, nil
}

func (q *taskQueriesImpl) List(ctx context.Context, status string) ([]*TaskView, error) {
	var (
		snaps []commands.TaskSnapshot
		err   error
	)
	if status == "" {
		snaps, err = q.repo.ListAll(ctx)
	} else {
		if !housekeeping.Status(status).IsValid() {
			return nil, ErrInvalidStatus
		}
		snaps, err = q.repo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := make([]*TaskView, 0, len(snaps))
	for i := range snaps {
		var view TaskView
		if err := copier.Copy(&view, &snaps[i]); err != nil {
			return nil, errs.Mark(err, ErrReadFailed)
		}
		views = append(views, &view)
	}
	return views, nil
}
