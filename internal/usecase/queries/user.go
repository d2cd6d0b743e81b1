package queries

import (
	"context"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrUserNotFound = errs.New("user not found")

type UserReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserReadRepo
}

func NewUserQueries(repo UserReadRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	snap, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	var view AuthorizedUserView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return &view, nil
}
