//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-ops/internal/domain/food"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.custs.CreateCustomer(ctx, commands.CreateCustomerInput{
		Name:    "Asha Verma",
		Aadhaar: "123412341234",
		Mobile:  "9876543210",
		Email:   "asha@example.com",
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", created.Name)

	mobile := "9123456789"
	updated, err := f.custs.UpdateCustomer(ctx, created.ID, commands.UpdateCustomerInput{
		Mobile: &mobile,
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "9123456789", updated.Mobile)
	assert.Equal(t, created.Aadhaar, updated.Aadhaar)

	require.NoError(t, f.custs.DeleteCustomer(ctx, created.ID, f.adminID, user.RoleAdmin))

	err = f.custs.DeleteCustomer(ctx, created.ID, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrCustomerNotFound)
}

func TestCustomer_EmptyNameRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.custs.CreateCustomer(context.Background(), commands.CreateCustomerInput{
		Name: "  ",
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrDomainValidation)
}

func TestCustomer_StaffDenied(t *testing.T) {
	f := newFixture(t)

	_, err := f.custs.CreateCustomer(context.Background(), commands.CreateCustomerInput{
		Name: "Asha Verma",
	}, f.staffID, user.RoleStaff)
	require.ErrorIs(t, err, commands.ErrPermissionDenied)
}

func TestFoodCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.foods.CreateFood(ctx, commands.CreateFoodInput{
		Name:        "Paneer Tikka",
		Price:       32000,
		Category:    string(food.CategoryAppetizer),
		Description: "Char-grilled cottage cheese",
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, string(food.CategoryAppetizer), created.Category)

	price := int64(35000)
	updated, err := f.foods.UpdateFood(ctx, created.ID, commands.UpdateFoodInput{
		Price: &price,
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(35000), updated.Price)
	assert.Equal(t, created.Name, updated.Name)

	require.NoError(t, f.foods.DeleteFood(ctx, created.ID, f.adminID, user.RoleAdmin))
}

func TestFood_InvalidCategoryRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.foods.CreateFood(context.Background(), commands.CreateFoodInput{
		Name:     "Paneer Tikka",
		Price:    32000,
		Category: "Street Food",
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrDomainValidation)
}

func TestUploadFoodImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.foods.CreateFood(ctx, commands.CreateFoodInput{
		Name:     "Masala Chai",
		Price:    5000,
		Category: string(food.CategoryBeverage),
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	updated, err := f.foods.UploadFoodImage(ctx, created.ID, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg", f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "foods/"+created.ID.String(), updated.ImageKey)
	assert.Equal(t, "/api/files/foods/"+created.ID.String(), updated.ImageURL)

	data, contentType, err := f.blobs.Fetch(ctx, updated.ImageKey)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
}

func TestUploadFoodImage_UnknownFood(t *testing.T) {
	f := newFixture(t)

	_, err := f.foods.UploadFoodImage(context.Background(), uuid.New(), []byte{0x1}, "image/png", f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrFoodNotFound)
}
