package commands

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-ops/internal/domain/customer"
	"hotel-ops/internal/domain/food"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrFoodNotFound     = errs.New("food item not found")
)

type CreateCustomerInput struct {
	Name    string
	Aadhaar string
	Mobile  string
	Email   string
}

type UpdateCustomerInput struct {
	Name    *string
	Aadhaar *string
	Mobile  *string
	Email   *string
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput, actorID uuid.UUID, role user.Role) (*CustomerSnapshot, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input UpdateCustomerInput, actorID uuid.UUID, role user.Role) (*CustomerSnapshot, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
}

type customerUseCaseImpl struct {
	customerRepo CustomerRepository
	notifier     ChangeNotifier
}

func NewCustomerUseCase(customerRepo CustomerRepository, notifier ChangeNotifier) CustomerCommands {
	return &customerUseCaseImpl{customerRepo: customerRepo, notifier: notifier}
}

func (c *customerUseCaseImpl) CreateCustomer(
	ctx context.Context,
	input CreateCustomerInput,
	actorID uuid.UUID,
	role user.Role,
) (*CustomerSnapshot, error) {
	if !user.Can(role, user.OpCustomerWrite) {
		return nil, ErrPermissionDenied
	}

	entity, err := customer.NewCustomer(input.Name, input.Aadhaar, input.Mobile, input.Email, actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	snap := CustomerSnapshot{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Aadhaar:   entity.Aadhaar(),
		Mobile:    entity.Mobile(),
		Email:     entity.Email(),
		CreatedBy: actorID,
	}
	if err := c.customerRepo.Create(ctx, snap); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	c.publish(ctx, snap.ID, "create")
	metrics.IncOperation("customer.create", "ok")

	return c.customerRepo.FindByID(ctx, snap.ID)
}

func (c *customerUseCaseImpl) UpdateCustomer(
	ctx context.Context,
	id uuid.UUID,
	input UpdateCustomerInput,
	actorID uuid.UUID,
	role user.Role,
) (*CustomerSnapshot, error) {
	if !user.Can(role, user.OpCustomerWrite) {
		return nil, ErrPermissionDenied
	}

	if _, err := c.findCustomer(ctx, id); err != nil {
		return nil, err
	}
	if input.Name != nil {
		if _, err := customer.NewCustomer(*input.Name, "", "", "", actorID); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	err := c.customerRepo.Update(ctx, id, CustomerPatch{
		Name:    input.Name,
		Aadhaar: input.Aadhaar,
		Mobile:  input.Mobile,
		Email:   input.Email,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	c.publish(ctx, id, "update")
	metrics.IncOperation("customer.update", "ok")

	return c.customerRepo.FindByID(ctx, id)
}

func (c *customerUseCaseImpl) DeleteCustomer(
	ctx context.Context,
	id uuid.UUID,
	actorID uuid.UUID,
	role user.Role,
) error {
	if !user.Can(role, user.OpCustomerWrite) {
		return ErrPermissionDenied
	}

	if _, err := c.findCustomer(ctx, id); err != nil {
		return err
	}
	if err := c.customerRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}

	c.publish(ctx, id, "delete")
	metrics.IncOperation("customer.delete", "ok")
	return nil
}

func (c *customerUseCaseImpl) findCustomer(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error) {
	snap, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return snap, nil
}

func (c *customerUseCaseImpl) publish(ctx context.Context, id uuid.UUID, op string) {
	event := ChangeEvent{Collection: docstore.CollectionCustomers, ID: id, Op: op}
	if err := c.notifier.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish customer change", "customer_id", id, "error", err)
	}
}

type CreateFoodInput struct {
	Name        string
	Price       int64
	Category    string
	Description string
}

type UpdateFoodInput struct {
	Name        *string
	Price       *int64
	Category    *string
	Description *string
}

type FoodCommands interface {
	CreateFood(ctx context.Context, input CreateFoodInput, actorID uuid.UUID, role user.Role) (*FoodSnapshot, error)
	UpdateFood(ctx context.Context, id uuid.UUID, input UpdateFoodInput, actorID uuid.UUID, role user.Role) (*FoodSnapshot, error)
	DeleteFood(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) error
	UploadFoodImage(ctx context.Context, id uuid.UUID, data []byte, contentType string, actorID uuid.UUID, role user.Role) (*FoodSnapshot, error)
}

type foodUseCaseImpl struct {
	foodRepo FoodRepository
	blobs    BlobStore
	notifier ChangeNotifier
}

func NewFoodUseCase(foodRepo FoodRepository, blobs BlobStore, notifier ChangeNotifier) FoodCommands {
	return &foodUseCaseImpl{foodRepo: foodRepo, blobs: blobs, notifier: notifier}
}

func (f *foodUseCaseImpl) CreateFood(
	ctx context.Context,
	input CreateFoodInput,
	actorID uuid.UUID,
	role user.Role,
) (*FoodSnapshot, error) {
	if !user.Can(role, user.OpFoodWrite) {
		return nil, ErrPermissionDenied
	}

	entity, err := food.NewItem(input.Name, input.Price, food.Category(input.Category), input.Description, "", actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	snap := FoodSnapshot{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Price:       entity.PriceCents(),
		Category:    string(entity.Category()),
		Description: entity.Description(),
		CreatedBy:   actorID,
	}
	if err := f.foodRepo.Create(ctx, snap); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	f.publish(ctx, snap.ID, "create")
	metrics.IncOperation("food.create", "ok")

	return f.foodRepo.FindByID(ctx, snap.ID)
}

func (f *foodUseCaseImpl) UpdateFood(
	ctx context.Context,
	id uuid.UUID,
	input UpdateFoodInput,
	actorID uuid.UUID,
	role user.Role,
) (*FoodSnapshot, error) {
	if !user.Can(role, user.OpFoodWrite) {
		return nil, ErrPermissionDenied
	}

	current, err := f.findFood(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil || input.Price != nil || input.Category != nil {
		name := current.Name
		if input.Name != nil {
			name = *input.Name
		}
		price := current.Price
		if input.Price != nil {
			price = *input.Price
		}
		category := current.Category
		if input.Category != nil {
			category = *input.Category
		}
		if _, err := food.NewItem(name, price, food.Category(category), current.Description, "", actorID); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	err = f.foodRepo.Update(ctx, id, FoodPatch{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	f.publish(ctx, id, "update")
	metrics.IncOperation("food.update", "ok")

	return f.foodRepo.FindByID(ctx, id)
}

func (f *foodUseCaseImpl) DeleteFood(
	ctx context.Context,
	id uuid.UUID,
	actorID uuid.UUID,
	role user.Role,
) error {
	if !user.Can(role, user.OpFoodWrite) {
		return ErrPermissionDenied
	}

	current, err := f.findFood(ctx, id)
	if err != nil {
		return err
	}

	if err := f.foodRepo.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	if current.ImageKey != "" {
		if err := f.blobs.Remove(ctx, current.ImageKey); err != nil && !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to remove food image blob", "food_id", id, "key", current.ImageKey, "error", err)
		}
	}

	f.publish(ctx, id, "delete")
	metrics.IncOperation("food.delete", "ok")
	return nil
}

func (f *foodUseCaseImpl) UploadFoodImage(
	ctx context.Context,
	id uuid.UUID,
	data []byte,
	contentType string,
	actorID uuid.UUID,
	role user.Role,
) (*FoodSnapshot, error) {
	if !user.Can(role, user.OpFoodWrite) {
		return nil, ErrPermissionDenied
	}

	if _, err := f.findFood(ctx, id); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("foods/%s", id)
	url, err := f.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	err = f.foodRepo.Update(ctx, id, FoodPatch{ImageKey: &key, ImageURL: &url})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	f.publish(ctx, id, "update")
	metrics.IncOperation("food.upload_image", "ok")

	return f.foodRepo.FindByID(ctx, id)
}

func (f *foodUseCaseImpl) findFood(ctx context.Context, id uuid.UUID) (*FoodSnapshot, error) {
	snap, err := f.foodRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return snap, nil
}

func (f *foodUseCaseImpl) publish(ctx context.Context, id uuid.UUID, op string) {
	event := ChangeEvent{Collection: docstore.CollectionFoods, ID: id, Op: op}
	if err := f.notifier.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish food change", "food_id", id, "error", err)
	}
}
