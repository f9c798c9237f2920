package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionPurchase     TransactionType = "purchase"
	TransactionSale         TransactionType = "sale"
	TransactionGiftReceived TransactionType = "gift_received"
	TransactionGiftGiven    TransactionType = "gift_given"
	TransactionValuation    TransactionType = "valuation"
	TransactionDamage       TransactionType = "damage"
	TransactionLoss         TransactionType = "loss"
)

func TransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionPurchase, TransactionSale, TransactionGiftReceived,
		TransactionGiftGiven, TransactionValuation, TransactionDamage, TransactionLoss,
	}
}

type TastingStage string

const (
	// StageSample records a tasting that does not end the bottle's life.
	StageSample TastingStage = "sample"
	// StageConsumed is the tasting that accompanies full consumption.
	StageConsumed TastingStage = "consumed"
)

func TastingStages() []TastingStage {
	return []TastingStage{StageSample, StageConsumed}
}

// The three event tables are append-only: rows are created exactly once
// and never updated or deleted while their bottle exists.

type BottleTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BottleID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"bottle_id" validate:"required"`
	Type            TransactionType `gorm:"column:transaction_type;type:text;not null" json:"type" validate:"required,transactiontype"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	Price           *float64        `json:"price" validate:"omitempty,gte=0"`
	Counterparty    *string         `json:"counterparty"`
	Notes           *string         `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

type BottleMovement struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BottleID     uuid.UUID `gorm:"type:uuid;not null;index" json:"bottle_id" validate:"required"`
	FromLocation *string   `json:"from_location"`
	FromBin      *string   `json:"from_bin"`
	ToLocation   string    `gorm:"not null" json:"to_location" validate:"required"`
	ToBin        *string   `json:"to_bin"`
	MovedAt      time.Time `gorm:"not null" json:"moved_at"`
	Reason       *string   `json:"reason"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

type BottleTasting struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BottleID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"bottle_id" validate:"required"`
	TastedAt    time.Time    `gorm:"not null" json:"tasted_at"`
	Rating      *int         `json:"rating" validate:"omitempty,min=0,max=100"`
	Notes       *string      `json:"notes"`
	FoodPairing *string      `json:"food_pairing"`
	Occasion    *string      `json:"occasion"`
	Stage       TastingStage `gorm:"column:tasting_stage;type:text;not null" json:"stage" validate:"required,tastingstage"`
	CreatedAt   time.Time    `json:"created_at"`
}

// BottleHistory is a bottle with its full event streams loaded.
type BottleHistory struct {
	Bottle       Bottle              `json:"bottle"`
	Transactions []BottleTransaction `json:"transactions"`
	Movements    []BottleMovement    `json:"movements"`
	Tastings     []BottleTasting     `json:"tastings"`
}

type EventKind string

const (
	EventKindTransaction EventKind = "transaction"
	EventKindMovement    EventKind = "movement"
	EventKindTasting     EventKind = "tasting"
)

// TimelineEvent is one entry in the merged, date-ordered view of a
// bottle's three event streams.
type TimelineEvent struct {
	ID       uuid.UUID `json:"id"`
	BottleID uuid.UUID `json:"bottle_id"`
	Kind     EventKind `json:"kind"`
	Date     time.Time `json:"date"`
	Summary  string    `json:"summary"`
}
