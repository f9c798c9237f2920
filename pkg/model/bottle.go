package model

import (
	"time"

	"github.com/google/uuid"
)

type BottleStatus string

const (
	StatusCellar   BottleStatus = "cellar"
	StatusConsumed BottleStatus = "consumed"
	StatusGifted   BottleStatus = "gifted"
	StatusSold     BottleStatus = "sold"
	StatusDamaged  BottleStatus = "damaged"
	StatusLost     BottleStatus = "lost"
)

func BottleStatuses() []BottleStatus {
	return []BottleStatus{StatusCellar, StatusConsumed, StatusGifted, StatusSold, StatusDamaged, StatusLost}
}

// Terminal reports whether no lifecycle transition leads out of s.
func (s BottleStatus) Terminal() bool {
	return s != StatusCellar
}

// Bottle is one physical bottle. Status, location, value and the
// consumption fields are caches over the bottle's event history; the
// purchase fields are denormalized from the originating purchase
// transaction at creation and never change afterwards.
type Bottle struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WineID  uuid.UUID `gorm:"type:uuid;not null;index" json:"wine_id" validate:"required"`
	Size    string    `gorm:"not null;default:750ml" json:"size"`
	Barcode *string   `json:"barcode"`

	Status       BottleStatus `gorm:"type:text;not null;default:cellar" json:"status" validate:"required,bottlestatus"`
	Location     *string      `json:"location"`
	Bin          *string      `json:"bin"`
	CurrentValue *float64     `json:"current_value" validate:"omitempty,gte=0"`

	PurchasePrice    *float64   `json:"purchase_price" validate:"omitempty,gte=0"`
	PurchaseLocation *string    `json:"purchase_location"`
	PurchaseDate     *time.Time `json:"purchase_date"`

	ConsumedDate *time.Time `json:"consumed_date"`
	MyRating     *int       `json:"my_rating" validate:"omitempty,min=0,max=100"`
	MyNotes      *string    `json:"my_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Wine Wine `gorm:"foreignKey:WineID" json:"-" validate:"-"`
}

// BottleDetails are the optional per-bottle overrides shared by a batch insert.
type BottleDetails struct {
	Size             *string
	Barcode          *string
	Location         *string
	Bin              *string
	CurrentValue     *float64 `validate:"omitempty,gte=0"`
	PurchasePrice    *float64 `validate:"omitempty,gte=0"`
	PurchaseLocation *string
	PurchaseDate     *time.Time
}
