package services

import "context"

// PaymentService charges an account. Errors are returned to the purchase caller as-is.
type PaymentService interface {
	MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error
}

// SeatReservationService reserves seats for an account.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeatsToAllocate int) error
}
