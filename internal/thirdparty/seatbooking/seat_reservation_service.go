package seatbooking

import (
	"context"
	"errors"
	"fmt"

	"github.com/farellandr/ticketservice/internal/logger"
	"github.com/farellandr/ticketservice/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidArguments = errors.New("seatbooking: account id must be positive and seat count must not be negative")

// SeatReservationService is the default seat collaborator. Reservations are
// written to the database when one is configured and logged otherwise.
type SeatReservationService struct {
	db  *gorm.DB
	log *logger.Logger
}

type Option func(*SeatReservationService)

func WithDatabase(db *gorm.DB) Option {
	return func(s *SeatReservationService) {
		s.db = db
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *SeatReservationService) {
		s.log = log
	}
}

func NewSeatReservationService(opts ...Option) *SeatReservationService {
	s := &SeatReservationService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	return s
}

func (s *SeatReservationService) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error {
	if accountID <= 0 || totalSeatsToAllocate < 0 {
		return ErrInvalidArguments
	}

	if s.db == nil {
		s.log.Info("seats reserved", "account_id", accountID, "seats", totalSeatsToAllocate)
		return nil
	}

	reservation := models.SeatReservation{
		AccountID: accountID,
		Seats:     totalSeatsToAllocate,
	}
	if err := s.db.WithContext(ctx).Create(&reservation).Error; err != nil {
		s.log.Error("failed to record seat reservation", "account_id", accountID, "error", err)
		return fmt.Errorf("record seat reservation: %w", err)
	}

	s.log.Info("seats reserved", "account_id", accountID, "seats", totalSeatsToAllocate, "reservation_id", reservation.ID)
	return nil
}
