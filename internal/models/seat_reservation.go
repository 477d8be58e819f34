package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeatReservation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID int64     `gorm:"not null;index"`
	Seats     int       `gorm:"not null"`
	CreatedAt time.Time
}

func (reservation *SeatReservation) BeforeCreate(tx *gorm.DB) (err error) {
	if reservation.ID == uuid.Nil {
		reservation.ID = uuid.New()
	}
	return
}
