package handlers

import (
	"net/http"

	"github.com/farellandr/ticketservice/internal/helpers"
	"github.com/farellandr/ticketservice/internal/middleware"
	"github.com/farellandr/ticketservice/internal/models"
	"github.com/gin-gonic/gin"
)

func ListPrices(c *gin.Context) {
	ticketService := middleware.GetTicketService(c)
	if ticketService == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Ticket service not configured.")
		return
	}

	prices := ticketService.Prices()
	items := make([]gin.H, 0, len(models.TicketTypes()))
	for _, ticketType := range models.TicketTypes() {
		items = append(items, gin.H{
			"type":  ticketType,
			"price": prices.PriceOf(ticketType),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"prices":      items,
		"max_tickets": models.MaxTicketsPerPurchase,
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
