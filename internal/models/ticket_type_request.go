package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// TicketType is the closed set of ticket categories that can be purchased.
type TicketType string

const (
	Adult  TicketType = "ADULT"
	Child  TicketType = "CHILD"
	Infant TicketType = "INFANT"
)

func TicketTypes() []TicketType {
	return []TicketType{Adult, Child, Infant}
}

func (t TicketType) Valid() bool {
	switch t {
	case Adult, Child, Infant:
		return true
	default:
		return false
	}
}

// TicketTypeRequest pairs a ticket type with a number of tickets. It can only
// be obtained through NewTicketTypeRequest (or JSON decoding, which calls it),
// so a value with Valid() == true always holds a known type and a positive count.
type TicketTypeRequest struct {
	ticketType  TicketType
	noOfTickets int
	valid       bool
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) (TicketTypeRequest, error) {
	if !ticketType.Valid() {
		return TicketTypeRequest{}, &TicketRequestError{Field: "type", Message: MsgInvalidTicketType}
	}
	if noOfTickets <= 0 {
		return TicketTypeRequest{}, &TicketRequestError{Field: "noOfTickets", Message: MsgInvalidTicketCount}
	}

	return TicketTypeRequest{
		ticketType:  ticketType,
		noOfTickets: noOfTickets,
		valid:       true,
	}, nil
}

// MustTicketTypeRequest is NewTicketTypeRequest for fixed arguments known to be valid.
func MustTicketTypeRequest(ticketType TicketType, noOfTickets int) TicketTypeRequest {
	req, err := NewTicketTypeRequest(ticketType, noOfTickets)
	if err != nil {
		panic(err)
	}
	return req
}

func (r TicketTypeRequest) TicketType() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) NoOfTickets() int {
	return r.noOfTickets
}

// Valid reports whether r was produced by NewTicketTypeRequest.
func (r TicketTypeRequest) Valid() bool {
	return r.valid
}

type ticketTypeRequestJSON struct {
	Type        json.RawMessage `json:"type"`
	NoOfTickets json.RawMessage `json:"noOfTickets"`
}

func (r TicketTypeRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        TicketType `json:"type"`
		NoOfTickets int        `json:"noOfTickets"`
	}{r.ticketType, r.noOfTickets})
}

// UnmarshalJSON only accepts a string type and an integer literal count.
// Strings, null, fractions and missing values are rejected the same way the
// constructor rejects a bad count. Anything other than an object is not a
// ticket request at all.
func (r *TicketTypeRequest) UnmarshalJSON(data []byte) error {
	var raw ticketTypeRequestJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewInvalidPurchaseError(RuleInvalidRequest)
	}

	var ticketType string
	if err := json.Unmarshal(raw.Type, &ticketType); err != nil {
		return &TicketRequestError{Field: "type", Message: MsgInvalidTicketType}
	}

	count, ok := parseTicketCount(raw.NoOfTickets)
	if !ok && TicketType(ticketType).Valid() {
		return &TicketRequestError{Field: "noOfTickets", Message: MsgInvalidTicketCount}
	}

	req, err := NewTicketTypeRequest(TicketType(ticketType), count)
	if err != nil {
		return err
	}
	*r = req
	return nil
}

func parseTicketCount(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return 0, false
	}
	n, err := strconv.ParseInt(string(raw), 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
