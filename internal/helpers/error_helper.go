package helpers

import (
	"errors"
	"net/http"

	"github.com/farellandr/ticketservice/internal/models"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithPurchaseError maps validation errors to 400 and anything else,
// which can only come from a payment or seat collaborator, to 502.
func RespondWithPurchaseError(c *gin.Context, err error) {
	var purchaseErr *models.InvalidPurchaseError
	var requestErr *models.TicketRequestError

	switch {
	case errors.As(err, &purchaseErr):
		RespondWithError(c, http.StatusBadRequest, purchaseErr.Message)
	case errors.As(err, &requestErr):
		RespondWithError(c, http.StatusBadRequest, requestErr.Message)
	default:
		RespondWithError(c, http.StatusBadGateway, "Ticket purchase could not be completed.")
	}
}
