package services

import (
	"errors"

	"github.com/farellandr/ticketservice/internal/models"
)

// PriceList holds the unit price of each ticket type in whole currency units.
type PriceList struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Infant int `json:"infant"`
}

func DefaultPriceList() PriceList {
	return PriceList{Adult: 25, Child: 15, Infant: 0}
}

func (p PriceList) Validate() error {
	if p.Infant < 0 {
		return errors.New("infant price cannot be negative")
	}
	if p.Child <= p.Infant {
		return errors.New("child price must be greater than infant price")
	}
	if p.Adult <= p.Child {
		return errors.New("adult price must be greater than child price")
	}
	return nil
}

func (p PriceList) PriceOf(ticketType models.TicketType) int {
	switch ticketType {
	case models.Adult:
		return p.Adult
	case models.Child:
		return p.Child
	case models.Infant:
		return p.Infant
	default:
		return 0
	}
}

func (p PriceList) Total(counts TicketCounts) int {
	return counts.Adult*p.Adult + counts.Child*p.Child + counts.Infant*p.Infant
}

// TicketCounts are the per-type totals of one purchase.
type TicketCounts struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Infant int `json:"infant"`
	Total  int `json:"total"`
}

// Seats is the number of seats to reserve. Infants sit on an adult's lap.
func (c TicketCounts) Seats() int {
	return c.Adult + c.Child
}
