package response

import (
	"time"

	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	GuestName    string    `json:"guestName"`
	GuestAadhaar string    `json:"guestAadhaar,omitempty"`
	GuestMobile  string    `json:"guestMobile,omitempty"`
	ExtraGuests  int       `json:"extraGuests"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	RoomPrice    int64     `json:"roomPrice"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       string    `json:"status"`
	DocumentKey  string    `json:"documentKey,omitempty"`
	CreatedBy    uuid.UUID `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		GuestName:    v.GuestName,
		GuestAadhaar: v.GuestAadhaar,
		GuestMobile:  v.GuestMobile,
		ExtraGuests:  v.ExtraGuests,
		RoomID:       v.RoomID,
		RoomNumber:   v.RoomNumber,
		RoomPrice:    v.RoomPrice,
		CheckInDate:  v.CheckInDate,
		CheckOutDate: v.CheckOutDate,
		Status:       v.Status,
		DocumentKey:  v.DocumentKey,
		CreatedBy:    v.CreatedBy,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBookingView(v))
	}
	return out
}

func FromBookingSnapshot(s *commands.BookingSnapshot) *BookingResponse {
	return &BookingResponse{
		ID:           s.ID,
		GuestName:    s.GuestName,
		GuestAadhaar: s.GuestAadhaar,
		GuestMobile:  s.GuestMobile,
		ExtraGuests:  s.ExtraGuests,
		RoomID:       s.RoomID,
		RoomNumber:   s.RoomNumber,
		RoomPrice:    s.RoomPrice,
		CheckInDate:  s.CheckInDate,
		CheckOutDate: s.CheckOutDate,
		Status:       s.Status,
		DocumentKey:  s.DocumentKey,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
