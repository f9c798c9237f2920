package model

import (
	"time"

	"github.com/google/uuid"
)

type WineType string

const (
	WineTypeRed       WineType = "Red"
	WineTypeWhite     WineType = "White"
	WineTypeRose      WineType = "Rosé"
	WineTypeSparkling WineType = "Sparkling"
	WineTypeDessert   WineType = "Dessert"
	WineTypeFortified WineType = "Fortified"
)

func WineTypes() []WineType {
	return []WineType{WineTypeRed, WineTypeWhite, WineTypeRose, WineTypeSparkling, WineTypeDessert, WineTypeFortified}
}

type Wine struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name" validate:"required"`
	Producer       *string   `json:"producer"`
	Vintage        *int      `json:"vintage" validate:"omitempty,min=1800,max=2100"`
	Type           *WineType `gorm:"type:text" json:"type" validate:"omitempty,winetype"`
	Varietal       *string   `json:"varietal"`
	MasterVarietal *string   `json:"master_varietal"`
	Country        *string   `json:"country"`
	Region         *string   `json:"region"`
	SubRegion      *string   `json:"sub_region"`
	Appellation    *string   `json:"appellation"`
	ABV            *float64  `json:"abv" validate:"omitempty,gte=0,lte=100"`
	RatingMin      *int      `json:"rating_min" validate:"omitempty,min=0,max=100"`
	RatingMax      *int      `json:"rating_max" validate:"omitempty,min=0,max=100"`
	RatingNotes    *string   `json:"rating_notes"`
	FoodPairing    *string   `json:"food_pairing"`
	BeginConsume   *int      `json:"begin_consume" validate:"omitempty,min=1800,max=2200"`
	EndConsume     *int      `json:"end_consume" validate:"omitempty,min=1800,max=2200"`
	ImageURL       *string   `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Bottles []Bottle `gorm:"constraint:OnDelete:RESTRICT;" json:"-"`
}

// WineUpdate carries a partial update; nil fields are left untouched.
type WineUpdate struct {
	Name           *string   `json:"name" validate:"omitempty,min=1"`
	Producer       *string   `json:"producer"`
	Vintage        *int      `json:"vintage" validate:"omitempty,min=1800,max=2100"`
	Type           *WineType `json:"type" validate:"omitempty,winetype"`
	Varietal       *string   `json:"varietal"`
	MasterVarietal *string   `json:"master_varietal"`
	Country        *string   `json:"country"`
	Region         *string   `json:"region"`
	SubRegion      *string   `json:"sub_region"`
	Appellation    *string   `json:"appellation"`
	ABV            *float64  `json:"abv" validate:"omitempty,gte=0,lte=100"`
	RatingMin      *int      `json:"rating_min" validate:"omitempty,min=0,max=100"`
	RatingMax      *int      `json:"rating_max" validate:"omitempty,min=0,max=100"`
	RatingNotes    *string   `json:"rating_notes"`
	FoodPairing    *string   `json:"food_pairing"`
	BeginConsume   *int      `json:"begin_consume" validate:"omitempty,min=1800,max=2200"`
	EndConsume     *int      `json:"end_consume" validate:"omitempty,min=1800,max=2200"`
	ImageURL       *string   `json:"image_url"`
}

// WineStats is derived per wine by folding over its bottles; it is never stored.
type WineStats struct {
	Total       int      `json:"total"`
	InCellar    int      `json:"in_cellar"`
	Consumed    int      `json:"consumed"`
	Gifted      int      `json:"gifted"`
	Sold        int      `json:"sold"`
	Damaged     int      `json:"damaged"`
	Lost        int      `json:"lost"`
	CellarValue float64  `json:"cellar_value"`
	AvgRating   *float64 `json:"avg_rating"`
}

// CollectionSummary aggregates across every bottle in the store.
type CollectionSummary struct {
	BottleCount   uint64  `json:"bottle_count"`
	CellarCount   uint64  `json:"cellar_count"`
	ConsumedCount uint64  `json:"consumed_count"`
	GiftedCount   uint64  `json:"gifted_count"`
	SoldCount     uint64  `json:"sold_count"`
	DamagedCount  uint64  `json:"damaged_count"`
	LostCount     uint64  `json:"lost_count"`
	CellarValue   float64 `json:"cellar_value"`
	WineCount     uint64  `json:"wine_count"`
	AverageRating float64 `json:"average_rating"`
}
