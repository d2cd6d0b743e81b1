package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("customer name must not be empty")

// Customer is a plain owned record, no state machine.
type Customer struct {
	id        uuid.UUID
	name      string
	aadhaar   string
	mobile    string
	email     string
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, aadhaar, mobile, email string, createdBy uuid.UUID) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Customer{
		id:        uuid.New(),
		name:      name,
		aadhaar:   strings.TrimSpace(aadhaar),
		mobile:    strings.TrimSpace(mobile),
		email:     strings.TrimSpace(email),
		createdBy: createdBy,
	}, nil
}

func Reconstruct(id uuid.UUID, name, aadhaar, mobile, email string, createdBy uuid.UUID, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		aadhaar:   aadhaar,
		mobile:    mobile,
		email:     email,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Aadhaar() string      { return c.aadhaar }
func (c *Customer) Mobile() string       { return c.mobile }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) CreatedBy() uuid.UUID { return c.createdBy }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
