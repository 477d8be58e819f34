package models

import (
	"errors"
	"fmt"
)

// MaxTicketsPerPurchase is the largest number of tickets a single purchase may contain.
const MaxTicketsPerPurchase = 25

var (
	ErrInvalidTicketRequest = errors.New("invalid ticket request")
	ErrInvalidPurchase      = errors.New("invalid purchase")
)

const (
	MsgInvalidTicketType  = "type must be ADULT, CHILD, or INFANT"
	MsgInvalidTicketCount = "noOfTickets must be a positive integer"
)

// TicketRequestError is returned when a TicketTypeRequest cannot be built.
type TicketRequestError struct {
	Field   string
	Message string
}

func (e *TicketRequestError) Error() string {
	return e.Message
}

func (e *TicketRequestError) Is(target error) bool {
	return target == ErrInvalidTicketRequest
}

// PurchaseRule identifies the business rule a purchase broke.
type PurchaseRule int

const (
	RuleAccountID PurchaseRule = iota + 1
	RuleNoTickets
	RuleInvalidRequest
	RuleMaxTickets
	RuleAdultRequired
	RuleInfantLimit
)

var purchaseRuleMessages = map[PurchaseRule]string{
	RuleAccountID:      "Account ID must be a valid integer greater than zero",
	RuleNoTickets:      "At least one ticket must be purchased",
	RuleInvalidRequest: "Invalid ticket type request",
	RuleMaxTickets:     fmt.Sprintf("Cannot purchase more than %d tickets at a time", MaxTicketsPerPurchase),
	RuleAdultRequired:  "Child and Infant tickets cannot be purchased without an Adult ticket",
	RuleInfantLimit:    "Number of infant tickets cannot exceed number of adult tickets",
}

func (r PurchaseRule) Message() string {
	return purchaseRuleMessages[r]
}

// InvalidPurchaseError is returned for every purchase-level rule violation.
type InvalidPurchaseError struct {
	Rule    PurchaseRule
	Message string
}

func NewInvalidPurchaseError(rule PurchaseRule) *InvalidPurchaseError {
	return &InvalidPurchaseError{Rule: rule, Message: rule.Message()}
}

func (e *InvalidPurchaseError) Error() string {
	return e.Message
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}
