package response

import (
	"time"

	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Aadhaar   string    `json:"aadhaar,omitempty"`
	Mobile    string    `json:"mobile,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:        v.ID,
		Name:      v.Name,
		Aadhaar:   v.Aadhaar,
		Mobile:    v.Mobile,
		Email:     v.Email,
		CreatedBy: v.CreatedBy,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromCustomerViews(vs []*queries.CustomerView) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromCustomerView(v))
	}
	return out
}

func FromCustomerSnapshot(s *commands.CustomerSnapshot) *CustomerResponse {
	return &CustomerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Aadhaar:   s.Aadhaar,
		Mobile:    s.Mobile,
		Email:     s.Email,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type FoodResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromFoodView(v *queries.FoodView) *FoodResponse {
	return &FoodResponse{
		ID:          v.ID,
		Name:        v.Name,
		Price:       v.Price,
		Category:    v.Category,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		CreatedBy:   v.CreatedBy,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromFoodViews(vs []*queries.FoodView) []*FoodResponse {
	out := make([]*FoodResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromFoodView(v))
	}
	return out
}

func FromFoodSnapshot(s *commands.FoodSnapshot) *FoodResponse {
	return &FoodResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Category:    s.Category,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
