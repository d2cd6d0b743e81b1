package request

import "hotel-ops/internal/usecase/commands"

type CreateRoomRequest struct {
	RoomNumber      string `json:"roomNumber" binding:"required"`
	Type            string `json:"type"`
	Price           int64  `json:"price" binding:"min=0"`
	PaymentMethod   string `json:"paymentMethod"`
	PaymentReceived bool   `json:"paymentReceived"`
}

func (r *CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		RoomNumber:      r.RoomNumber,
		Type:            r.Type,
		Price:           r.Price,
		PaymentMethod:   r.PaymentMethod,
		PaymentReceived: r.PaymentReceived,
	}
}

type UpdateRoomRequest struct {
	RoomNumber      *string `json:"roomNumber,omitempty"`
	Type            *string `json:"type,omitempty"`
	Price           *int64  `json:"price,omitempty"`
	CleaningDone    *bool   `json:"cleaningDone,omitempty"`
	PaymentReceived *bool   `json:"paymentReceived,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
}

func (r *UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{
		RoomNumber:      r.RoomNumber,
		Type:            r.Type,
		Price:           r.Price,
		CleaningDone:    r.CleaningDone,
		PaymentReceived: r.PaymentReceived,
		PaymentMethod:   r.PaymentMethod,
	}
}
