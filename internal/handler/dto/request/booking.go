package request

import (
	"time"

	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID       uuid.UUID `json:"roomId" binding:"required"`
	GuestName    string    `json:"guestName" binding:"required"`
	GuestAadhaar string    `json:"guestAadhaar"`
	GuestMobile  string    `json:"guestMobile"`
	ExtraGuests  int       `json:"extraGuests" binding:"min=0"`
	CheckInDate  time.Time `json:"checkInDate" binding:"required" time_format:"2006-01-02"`
	CheckOutDate time.Time `json:"checkOutDate" binding:"required" time_format:"2006-01-02"`
	DocumentKey  string    `json:"documentKey"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomID:       r.RoomID,
		GuestName:    r.GuestName,
		GuestAadhaar: r.GuestAadhaar,
		GuestMobile:  r.GuestMobile,
		ExtraGuests:  r.ExtraGuests,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		DocumentKey:  r.DocumentKey,
	}
}

type UpdateBookingRequest struct {
	RoomID       *uuid.UUID `json:"roomId,omitempty"`
	GuestName    *string    `json:"guestName,omitempty"`
	GuestAadhaar *string    `json:"guestAadhaar,omitempty"`
	GuestMobile  *string    `json:"guestMobile,omitempty"`
	ExtraGuests  *int       `json:"extraGuests,omitempty"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"`
	DocumentKey  *string    `json:"documentKey,omitempty"`
}

func (r *UpdateBookingRequest) ToInput() commands.UpdateBookingInput {
	return commands.UpdateBookingInput{
		RoomID:       r.RoomID,
		GuestName:    r.GuestName,
		GuestAadhaar: r.GuestAadhaar,
		GuestMobile:  r.GuestMobile,
		ExtraGuests:  r.ExtraGuests,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		DocumentKey:  r.DocumentKey,
	}
}
