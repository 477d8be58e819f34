package middleware

import (
	"github.com/farellandr/ticketservice/internal/services"
	"github.com/gin-gonic/gin"
)

func TicketServiceMiddleware(ticketService *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("ticket_service", ticketService)
		c.Next()
	}
}

func GetTicketService(c *gin.Context) *services.TicketService {
	svc, exists := c.Get("ticket_service")
	if !exists {
		return nil
	}
	return svc.(*services.TicketService)
}
