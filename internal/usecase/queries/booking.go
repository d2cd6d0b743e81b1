package queries

import (
	"context"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("record not visible to caller")
)

type BookingReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error)
	ListAll(ctx context.Context) ([]commands.BookingSnapshot, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]commands.BookingSnapshot, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) (*BookingView, error)
	List(ctx context.Context, actorID uuid.UUID, role user.Role) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadRepo
}

func NewBookingQueries(repo BookingReadRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) (*BookingView, error) {
	snap, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}
	if !role.SeesAllRecords() && snap.CreatedBy != actorID {
		return nil, ErrForbidden
	}

	var view BookingView
	if err := copier.Copy(&view, snap); err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return &view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actorID uuid.UUID, role user.Role) ([]*BookingView, error) {
	var (
		snaps []commands.BookingSnapshot
		err   error
	)
	if role.SeesAllRecords() {
		snaps, err = q.repo.ListAll(ctx)
	} else {
		snaps, err = q.repo.ListByOwner(ctx, actorID)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := make([]*BookingView, 0, len(snaps))
	for i := range snaps {
		var view BookingView
		if err := copier.Copy(&view, &snaps[i]); err != nil {
			return nil, errs.Mark(err, ErrReadFailed)
		}
		views = append(views, &view)
	}
	return views, nil
}
