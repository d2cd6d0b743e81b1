package request

import "hotel-ops/internal/usecase/commands"

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Aadhaar string `json:"aadhaar"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
}

func (r *CreateCustomerRequest) ToInput() commands.CreateCustomerInput {
	return commands.CreateCustomerInput{
		Name:    r.Name,
		Aadhaar: r.Aadhaar,
		Mobile:  r.Mobile,
		Email:   r.Email,
	}
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Aadhaar *string `json:"aadhaar,omitempty"`
	Mobile  *string `json:"mobile,omitempty"`
	Email   *string `json:"email,omitempty"`
}

func (r *UpdateCustomerRequest) ToInput() commands.UpdateCustomerInput {
	return commands.UpdateCustomerInput{
		Name:    r.Name,
		Aadhaar: r.Aadhaar,
		Mobile:  r.Mobile,
		Email:   r.Email,
	}
}

type CreateFoodRequest struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
}

func (r *CreateFoodRequest) ToInput() commands.CreateFoodInput {
	return commands.CreateFoodInput{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
	}
}

type UpdateFoodRequest struct {
	Name        *string `json:"name,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateFoodRequest) ToInput() commands.UpdateFoodInput {
	return commands.UpdateFoodInput{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Description: r.Description,
	}
}
