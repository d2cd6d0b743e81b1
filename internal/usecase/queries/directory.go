package queries

import (
	"context"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrFoodNotFound     = errs.New("food item not found")
)

type CustomerReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error)
	ListAll(ctx context.Context) ([]commands.CustomerSnapshot, error)
}

type FoodReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*commands.FoodSnapshot, error)
	ListAll(ctx context.Context) ([]commands.FoodSnapshot, error)
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type FoodQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FoodView, error)
	List(ctx context.Context) ([]*FoodView, error)
}

type customerQueriesImpl struct {
	repo CustomerReadRepo
}

func NewCustomerQueries(repo CustomerReadRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	snap, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	var view CustomerView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return &view, nil
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	snaps, err := q.repo.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := make([]*CustomerView, 0, len(snaps))
	for i := range snaps {
		var view CustomerView
		if err := copier.Copy(&view, &snaps[i]); err != nil {
			return nil, errs.Mark(err, ErrReadFailed)
		}
		views = append(views, &view)
	}
	return views, nil
}

type foodQueriesImpl struct {
	repo FoodReadRepo
}

func NewFoodQueries(repo FoodReadRepo) FoodQueries {
	return &foodQueriesImpl{repo: repo}
}

func (q *foodQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FoodView, error) {
	snap, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	var view FoodView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return &view, nil
}

func (q *foodQueriesImpl) List(ctx context.Context) ([]*FoodView, error) {
	snaps, err := q.repo.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := make([]*FoodView, 0, len(snaps))
	for i := range snaps {
		var view FoodView
		if err := copier.Copy(&view, &snaps[i]); err != nil {
			return nil, errs.Mark(err, ErrReadFailed)
		}
		views = append(views, &view)
	}
	return views, nil
}
