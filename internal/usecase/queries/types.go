package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomView struct {
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

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	GuestName    string    `json:"guestName"`
	GuestAadhaar string    `json:"guestAadhaar"`
	GuestMobile  string    `json:"guestMobile"`
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

type TaskView struct {
	ID          uuid.UUID  `json:"id"`
	RoomID      uuid.UUID  `json:"roomId"`
	RoomNumber  string     `json:"roomNumber"`
	TaskType    string     `json:"taskType"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Aadhaar   string    `json:"aadhaar,omitempty"`
	Mobile    string    `json:"mobile,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FoodView struct {
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

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
