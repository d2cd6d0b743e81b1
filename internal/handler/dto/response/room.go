package response

import (
	"time"

	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomNumber      string    `json:"roomNumber"`
	Type            string    `json:"type"`
	Price           int64     `json:"price"`
	CleaningDone    bool      `json:"cleaningDone"`
	PaymentReceived bool      `json:"paymentReceived"`
	PaymentMethod   string    `json:"paymentMethod"`
	Status          string    `json:"status"`
	IsVacant        bool      `json:"isVacant"`
	CreatedBy       uuid.UUID `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:              v.ID,
		RoomNumber:      v.RoomNumber,
		Type:            v.Type,
		Price:           v.Price,
		CleaningDone:    v.CleaningDone,
		PaymentReceived: v.PaymentReceived,
		PaymentMethod:   v.PaymentMethod,
		Status:          v.Status,
		IsVacant:        v.IsVacant,
		CreatedBy:       v.CreatedBy,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromRoomViews(vs []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromRoomView(v))
	}
	return out
}

func FromRoomSnapshot(s *commands.RoomSnapshot) *RoomResponse {
	return &RoomResponse{
		ID:              s.ID,
		RoomNumber:      s.RoomNumber,
		Type:            s.Type,
		Price:           s.Price,
		CleaningDone:    s.CleaningDone,
		PaymentReceived: s.PaymentReceived,
		PaymentMethod:   s.PaymentMethod,
		Status:          s.Status,
		IsVacant:        s.IsVacant,
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
