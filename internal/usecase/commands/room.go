package commands

import (
	"context"
	"log/slog"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound         = errs.New("room not found")
	ErrDuplicateRoomNumber  = errs.New("room number already registered")
	ErrRoomHasActiveBooking = errs.New("room still has an active booking")
)

type CreateRoomInput struct {
	RoomNumber      string
	Type            string
	Price           int64
	PaymentMethod   string
	PaymentReceived bool
}

type UpdateRoomInput struct {
	RoomNumber      *string
	Type            *string
	Price           *int64
	CleaningDone    *bool
	PaymentReceived *bool
	PaymentMethod   *string
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, input CreateRoomInput, actorID uuid.UUID, role user.Role) (*RoomSnapshot, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, input UpdateRoomInput, actorID uuid.UUID, role user.Role) (*RoomSnapshot, error)
	DeleteRoom(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
}

type roomUseCaseImpl struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	notifier    ChangeNotifier
	clock       clock.Clock
}

func NewRoomUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	notifier ChangeNotifier,
	clock clock.Clock,
) RoomCommands {
	return &roomUseCaseImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		clock:       clock,
	}
}

func (r *roomUseCaseImpl) CreateRoom(
	ctx context.Context,
	input CreateRoomInput,
	actorID uuid.UUID,
	role user.Role,
) (*RoomSnapshot, error) {
	if !user.Can(role, user.OpRoomCreate) {
		return nil, ErrPermissionDenied
	}

	entity, err := room.NewRoom(input.RoomNumber, input.Type, input.Price, actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := r.roomRepo.FindByOwnerAndNumber(ctx, actorID, entity.RoomNumber()); err == nil {
		return nil, ErrDuplicateRoomNumber
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	snap := RoomSnapshot{
		ID:              entity.ID(),
		RoomNumber:      entity.RoomNumber(),
		Type:            entity.Type(),
		Price:           entity.PriceCents(),
		CleaningDone:    false,
		PaymentReceived: input.PaymentReceived,
		PaymentMethod:   input.PaymentMethod,
		CreatedBy:       actorID,
		Status:          room.StatusAvailable.String(),
		IsVacant:        true,
	}
	if err := r.roomRepo.Create(ctx, snap); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	r.publish(ctx, snap.ID, "create")
	metrics.IncOperation("room.create", "ok")

	return r.roomRepo.FindByID(ctx, snap.ID)
}

func (r *roomUseCaseImpl) UpdateRoom(
	ctx context.Context,
	id uuid.UUID,
	input UpdateRoomInput,
	actorID uuid.UUID,
	role user.Role,
) (*RoomSnapshot, error) {
	if !user.Can(role, user.OpRoomUpdate) {
		return nil, ErrPermissionDenied
	}

	current, err := r.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !role.SeesAllRecords() && current.CreatedBy != actorID {
		return nil, ErrPermissionDenied
	}

	if input.RoomNumber != nil || input.Price != nil {
		number := current.RoomNumber
		if input.RoomNumber != nil {
			number = *input.RoomNumber
		}
		price := current.Price
		if input.Price != nil {
			price = *input.Price
		}
		if _, err := room.NewRoom(number, current.Type, price, current.CreatedBy); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	err = r.roomRepo.Update(ctx, id, RoomPatch{
		RoomNumber:      input.RoomNumber,
		Type:            input.Type,
		Price:           input.Price,
		CleaningDone:    input.CleaningDone,
		PaymentReceived: input.PaymentReceived,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	r.publish(ctx, id, "update")
	metrics.IncOperation("room.update", "ok")

	return r.roomRepo.FindByID(ctx, id)
}

func (r *roomUseCaseImpl) DeleteRoom(
	ctx context.Context,
	id uuid.UUID,
	actorID uuid.UUID,
	role user.Role,
) error {
	if !user.Can(role, user.OpRoomDelete) {
		return ErrPermissionDenied
	}

	current, err := r.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if !role.SeesAllRecords() && current.CreatedBy != actorID {
		return ErrPermissionDenied
	}

	active, err := r.bookingRepo.ListActiveByRoom(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if len(active) > 0 {
		return ErrRoomHasActiveBooking
	}

	if err := r.roomRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrStoreOperationFailed)
	}

	r.publish(ctx, id, "delete")
	metrics.IncOperation("room.delete", "ok")
	return nil
}

func (r *roomUseCaseImpl) publish(ctx context.Context, id uuid.UUID, op string) {
	event := ChangeEvent{Collection: docstore.CollectionRooms, ID: id, Op: op}
	if err := r.notifier.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish room change", "room_id", id, "error", err)
	}
}
