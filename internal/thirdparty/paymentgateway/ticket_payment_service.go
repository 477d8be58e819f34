package paymentgateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/farellandr/ticketservice/internal/logger"
	"github.com/farellandr/ticketservice/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidArguments = errors.New("paymentgateway: account id must be positive and amount must not be negative")

// Invoice is what the gateway keeps from a created provider invoice.
type Invoice struct {
	ID  string
	URL string
}

// InvoiceCreator issues a provider invoice for an amount.
type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, externalID string, amount int) (Invoice, error)
}

// TicketPaymentService is the default payment collaborator. With no invoice
// creator and no database it runs in sandbox mode and only logs the charge.
type TicketPaymentService struct {
	invoices InvoiceCreator
	db       *gorm.DB
	log      *logger.Logger
}

type Option func(*TicketPaymentService)

func WithInvoiceCreator(invoices InvoiceCreator) Option {
	return func(s *TicketPaymentService) {
		s.invoices = invoices
	}
}

func WithDatabase(db *gorm.DB) Option {
	return func(s *TicketPaymentService) {
		s.db = db
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *TicketPaymentService) {
		s.log = log
	}
}

func NewTicketPaymentService(opts ...Option) *TicketPaymentService {
	s := &TicketPaymentService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	return s
}

func (s *TicketPaymentService) MakePayment(ctx context.Context, accountID int64, totalAmountToPay int) error {
	if accountID <= 0 || totalAmountToPay < 0 {
		return ErrInvalidArguments
	}

	externalID := fmt.Sprintf("TKT-%d-%s", accountID, uuid.New().String())
	payment := models.Payment{
		AccountID:  accountID,
		Amount:     totalAmountToPay,
		Method:     "sandbox",
		Status:     "paid",
		ExternalID: externalID,
	}

	if s.invoices != nil {
		invoice, err := s.invoices.CreateInvoice(ctx, externalID, totalAmountToPay)
		if err != nil {
			s.log.Error("invoice creation failed", "account_id", accountID, "external_id", externalID, "error", err)
			return fmt.Errorf("create invoice: %w", err)
		}
		payment.Method = "xendit_invoice"
		payment.Status = "pending"
		payment.InvoiceID = &invoice.ID
		payment.InvoiceURL = &invoice.URL
	}

	if s.db == nil {
		s.log.Info("payment taken", "account_id", accountID, "amount", totalAmountToPay, "method", payment.Method)
		return nil
	}

	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		s.log.Error("failed to record payment", "account_id", accountID, "external_id", externalID, "error", err)
		return fmt.Errorf("record payment: %w", err)
	}

	s.log.Info("payment recorded", "account_id", accountID, "amount", totalAmountToPay, "payment_id", payment.ID)
	return nil
}
