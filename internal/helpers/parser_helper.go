package helpers

import (
	"encoding/json"

	"github.com/farellandr/ticketservice/internal/models"
	"github.com/farellandr/ticketservice/internal/services"
)

// PurchasePayload is the body of the purchase and quote endpoints. Fields stay
// raw so the account id is checked before any ticket request is decoded.
type PurchasePayload struct {
	AccountID          json.RawMessage   `json:"account_id"`
	TicketTypeRequests []json.RawMessage `json:"ticket_type_requests"`
}

func ParsePurchasePayload(payload PurchasePayload) (int64, []models.TicketTypeRequest, error) {
	accountID, err := services.ParseAccountID(payload.AccountID)
	if err != nil {
		return 0, nil, err
	}

	requests, err := ParseTicketTypeRequests(payload.TicketTypeRequests)
	if err != nil {
		return 0, nil, err
	}

	return accountID, requests, nil
}

func ParseTicketTypeRequests(raws []json.RawMessage) ([]models.TicketTypeRequest, error) {
	requests := make([]models.TicketTypeRequest, 0, len(raws))
	for _, raw := range raws {
		var req models.TicketTypeRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
