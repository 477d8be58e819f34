package services

import (
	"context"

	"github.com/farellandr/ticketservice/internal/logger"
	"github.com/farellandr/ticketservice/internal/models"
	"github.com/farellandr/ticketservice/internal/thirdparty/paymentgateway"
	"github.com/farellandr/ticketservice/internal/thirdparty/seatbooking"
)

// TicketService validates ticket purchases, charges the account and reserves seats.
// It holds no per-purchase state and is safe for concurrent use as long as its
// collaborators are.
type TicketService struct {
	paymentService PaymentService
	seatService    SeatReservationService
	prices         PriceList
	log            *logger.Logger
}

type Option func(*TicketService)

func WithPaymentService(paymentService PaymentService) Option {
	return func(s *TicketService) {
		s.paymentService = paymentService
	}
}

func WithSeatReservationService(seatService SeatReservationService) Option {
	return func(s *TicketService) {
		s.seatService = seatService
	}
}

func WithPriceList(prices PriceList) Option {
	return func(s *TicketService) {
		s.prices = prices
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *TicketService) {
		s.log = log
	}
}

// NewTicketService falls back to the default gateway adapters for any
// collaborator not supplied through an option.
func NewTicketService(opts ...Option) *TicketService {
	s := &TicketService{prices: DefaultPriceList()}
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.NewNop()
	}
	if s.paymentService == nil {
		s.paymentService = paymentgateway.NewTicketPaymentService(paymentgateway.WithLogger(s.log))
	}
	if s.seatService == nil {
		s.seatService = seatbooking.NewSeatReservationService(seatbooking.WithLogger(s.log))
	}

	return s
}

func (s *TicketService) Prices() PriceList {
	return s.prices
}

// Quote is the validated outcome of a purchase before any collaborator is called.
type Quote struct {
	AccountID   int64        `json:"account_id"`
	Counts      TicketCounts `json:"counts"`
	TotalAmount int          `json:"total_amount"`
	Seats       int          `json:"seats"`
}

// Quote runs the account and request checks and prices the purchase without
// charging or reserving anything.
func (s *TicketService) Quote(accountID int64, requests []models.TicketTypeRequest) (Quote, error) {
	if err := ValidateAccountID(accountID); err != nil {
		return Quote{}, err
	}

	counts, err := validateAndCount(requests)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		AccountID:   accountID,
		Counts:      counts,
		TotalAmount: s.prices.Total(counts),
		Seats:       counts.Seats(),
	}, nil
}

// PurchaseTickets charges the account and then reserves its seats. Seats are
// only reserved when the payment succeeded; a completed payment is never
// reversed here. Collaborator errors are returned unchanged.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID int64, requests []models.TicketTypeRequest) error {
	_, err := s.Purchase(ctx, accountID, requests)
	return err
}

// Purchase is PurchaseTickets returning the quote that was charged and reserved.
func (s *TicketService) Purchase(ctx context.Context, accountID int64, requests []models.TicketTypeRequest) (Quote, error) {
	quote, err := s.Quote(accountID, requests)
	if err != nil {
		return Quote{}, err
	}

	if err := s.paymentService.MakePayment(ctx, accountID, quote.TotalAmount); err != nil {
		return Quote{}, err
	}

	if err := s.seatService.ReserveSeat(ctx, accountID, quote.Seats); err != nil {
		return Quote{}, err
	}

	s.log.Debug("tickets purchased",
		"account_id", accountID,
		"total_amount", quote.TotalAmount,
		"seats", quote.Seats,
	)
	return quote, nil
}

func ValidateAccountID(accountID int64) error {
	if accountID <= 0 {
		return models.NewInvalidPurchaseError(models.RuleAccountID)
	}
	return nil
}

func validateAndCount(requests []models.TicketTypeRequest) (TicketCounts, error) {
	if len(requests) == 0 {
		return TicketCounts{}, models.NewInvalidPurchaseError(models.RuleNoTickets)
	}

	for _, req := range requests {
		if !req.Valid() {
			return TicketCounts{}, models.NewInvalidPurchaseError(models.RuleInvalidRequest)
		}
	}

	var counts TicketCounts
	for _, req := range requests {
		// checked before adding so huge quantities cannot overflow the sum
		if req.NoOfTickets() > models.MaxTicketsPerPurchase-counts.Total {
			return TicketCounts{}, models.NewInvalidPurchaseError(models.RuleMaxTickets)
		}

		switch req.TicketType() {
		case models.Adult:
			counts.Adult += req.NoOfTickets()
		case models.Child:
			counts.Child += req.NoOfTickets()
		case models.Infant:
			counts.Infant += req.NoOfTickets()
		}
		counts.Total += req.NoOfTickets()
	}

	if (counts.Child > 0 || counts.Infant > 0) && counts.Adult == 0 {
		return TicketCounts{}, models.NewInvalidPurchaseError(models.RuleAdultRequired)
	}

	if counts.Infant > counts.Adult {
		return TicketCounts{}, models.NewInvalidPurchaseError(models.RuleInfantLimit)
	}

	return counts, nil
}
