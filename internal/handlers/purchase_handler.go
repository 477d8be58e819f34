package handlers

import (
	"net/http"

	"github.com/farellandr/ticketservice/internal/helpers"
	"github.com/farellandr/ticketservice/internal/middleware"
	"github.com/farellandr/ticketservice/internal/models"
	"github.com/farellandr/ticketservice/internal/services"
	"github.com/gin-gonic/gin"
)

func bindPurchase(c *gin.Context) (*services.TicketService, int64, []models.TicketTypeRequest, bool) {
	var payload helpers.PurchasePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return nil, 0, nil, false
	}

	ticketService := middleware.GetTicketService(c)
	if ticketService == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Ticket service not configured.")
		return nil, 0, nil, false
	}

	accountID, requests, err := helpers.ParsePurchasePayload(payload)
	if err != nil {
		helpers.RespondWithPurchaseError(c, err)
		return nil, 0, nil, false
	}

	if tokenAccount, exists := c.Get("account_id"); exists && tokenAccount.(int64) != accountID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to purchase for this account.")
		return nil, 0, nil, false
	}

	return ticketService, accountID, requests, true
}

func PurchaseTickets(c *gin.Context) {
	ticketService, accountID, requests, ok := bindPurchase(c)
	if !ok {
		return
	}

	quote, err := ticketService.Purchase(c.Request.Context(), accountID, requests)
	if err != nil {
		helpers.RespondWithPurchaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Tickets purchased successfully.",
		"account_id":   accountID,
		"total_amount": quote.TotalAmount,
		"seats":        quote.Seats,
	})
}

func QuotePurchase(c *gin.Context) {
	ticketService, accountID, requests, ok := bindPurchase(c)
	if !ok {
		return
	}

	quote, err := ticketService.Quote(accountID, requests)
	if err != nil {
		helpers.RespondWithPurchaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account_id":   quote.AccountID,
		"adult":        quote.Counts.Adult,
		"child":        quote.Counts.Child,
		"infant":       quote.Counts.Infant,
		"total":        quote.Counts.Total,
		"total_amount": quote.TotalAmount,
		"seats":        quote.Seats,
	})
}
