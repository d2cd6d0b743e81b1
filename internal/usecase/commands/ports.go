package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots decouple the commands from the store's document
// shape. Field tags mirror the persisted collection fields.

type RoomSnapshot struct {
	ID              uuid.UUID `json:"id"`
	RoomNumber      string    `json:"roomNumber"`
	Type            string    `json:"type"`
	Price           int64     `json:"price"`
	CleaningDone    bool      `json:"cleaningDone"`
	PaymentReceived bool      `json:"paymentReceived"`
	PaymentMethod   string    `json:"paymentMethod"`
	DocumentKey     string    `json:"documentKey,omitempty"`
	CreatedBy       uuid.UUID `json:"createdBy"`
	Status          string    `json:"status"`
	IsVacant        bool      `json:"isVacant"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingSnapshot struct {
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

type TaskSnapshot struct {
	ID          uuid.UUID  `json:"id"`
	RoomID      uuid.UUID  `json:"roomId"`
	RoomNumber  string     `json:"roomNumber"`
	TaskType    string     `json:"taskType"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assignedTo"`
	Notes       string     `json:"notes"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type CustomerSnapshot struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Aadhaar   string    `json:"aadhaar"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FoodSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageKey    string    `json:"imageKey,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UserSnapshot struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"passwordHash"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Typed patches: nil pointer means "leave the stored value alone".

type RoomPatch struct {
	RoomNumber      *string `json:"roomNumber,omitempty"`
	Type            *string `json:"type,omitempty"`
	Price           *int64  `json:"price,omitempty"`
	CleaningDone    *bool   `json:"cleaningDone,omitempty"`
	PaymentReceived *bool   `json:"paymentReceived,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	DocumentKey     *string `json:"documentKey,omitempty"`
	Status          *string `json:"status,omitempty"`
	IsVacant        *bool   `json:"isVacant,omitempty"`
}

type BookingPatch struct {
	GuestName    *string    `json:"guestName,omitempty"`
	GuestAadhaar *string    `json:"guestAadhaar,omitempty"`
	GuestMobile  *string    `json:"guestMobile,omitempty"`
	ExtraGuests  *int       `json:"extraGuests,omitempty"`
	RoomID       *uuid.UUID `json:"roomId,omitempty"`
	RoomNumber   *string    `json:"roomNumber,omitempty"`
	RoomPrice    *int64     `json:"roomPrice,omitempty"`
	CheckInDate  *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `json:"checkOutDate,omitempty"`
	Status       *string    `json:"status,omitempty"`
	DocumentKey  *string    `json:"documentKey,omitempty"`
}

type TaskPatch struct {
	TaskType    *string    `json:"taskType,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type CustomerPatch struct {
	Name    *string `json:"name,omitempty"`
	Aadhaar *string `json:"aadhaar,omitempty"`
	Mobile  *string `json:"mobile,omitempty"`
	Email   *string `json:"email,omitempty"`
}

type FoodPatch struct {
	Name        *string `json:"name,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageKey    *string `json:"imageKey,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// Repositories implemented by internal/infra/repository on top of the
// document store.

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	FindByOwnerAndNumber(ctx context.Context, owner uuid.UUID, roomNumber string) (*RoomSnapshot, error)
	Create(ctx context.Context, snap RoomSnapshot) error
	Update(ctx context.Context, id uuid.UUID, patch RoomPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ListActive(ctx context.Context) ([]BookingSnapshot, error)
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]BookingSnapshot, error)
	Create(ctx context.Context, snap BookingSnapshot) error
	Update(ctx context.Context, id uuid.UUID, patch BookingPatch) error
}

type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TaskSnapshot, error)
	ListOpenByRoom(ctx context.Context, roomID uuid.UUID) ([]TaskSnapshot, error)
	Create(ctx context.Context, snap TaskSnapshot) error
	Update(ctx context.Context, id uuid.UUID, patch TaskPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	Create(ctx context.Context, snap CustomerSnapshot) error
	Update(ctx context.Context, id uuid.UUID, patch CustomerPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FoodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FoodSnapshot, error)
	Create(ctx context.Context, snap FoodSnapshot) error
	Update(ctx context.Context, id uuid.UUID, patch FoodPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// BlobStore stores uploaded guest documents and food images.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Fetch(ctx context.Context, key string) ([]byte, string, error)
	Remove(ctx context.Context, key string) error
}

// ChangeEvent is published after every committed lifecycle write so
// cached views can refresh.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	ID         uuid.UUID `json:"id"`
	Op         string    `json:"op"` // create | update | delete
}

type ChangeNotifier interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// NopNotifier is used where no redis is wired (unit tests).
type NopNotifier struct{}

func (NopNotifier) Publish(context.Context, ChangeEvent) error { return nil }
