package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is the gateway's ledger entry for one successful charge.
type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID  int64     `gorm:"not null;index"`
	Amount     int       `gorm:"not null"`
	Method     string    `gorm:"not null"`
	Status     string    `gorm:"not null;default:'paid'"`
	ExternalID string    `gorm:"not null;unique"`
	InvoiceID  *string
	InvoiceURL *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (payment *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	return
}
