package food

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("food item name must not be empty")
	ErrNegativePrice   = errors.New("food item price cannot be negative")
	ErrInvalidCategory = errors.New("invalid food category")
)

type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
	CategorySnack      Category = "Snack"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage, CategorySnack:
		return true
	default:
		return false
	}
}

type Item struct {
	id          uuid.UUID
	name        string
	priceCents  int64
	category    Category
	description string
	imageKey    string
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(name string, priceCents int64, category Category, description, imageKey string, createdBy uuid.UUID) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &Item{
		id:          uuid.New(),
		name:        name,
		priceCents:  priceCents,
		category:    category,
		description: strings.TrimSpace(description),
		imageKey:    imageKey,
		createdBy:   createdBy,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, priceCents int64, category Category, description, imageKey string, createdBy uuid.UUID, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		name:        name,
		priceCents:  priceCents,
		category:    category,
		description: description,
		imageKey:    imageKey,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Name() string         { return i.name }
func (i *Item) PriceCents() int64    { return i.priceCents }
func (i *Item) Category() Category   { return i.category }
func (i *Item) Description() string  { return i.description }
func (i *Item) ImageKey() string     { return i.imageKey }
func (i *Item) CreatedBy() uuid.UUID { return i.createdBy }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
