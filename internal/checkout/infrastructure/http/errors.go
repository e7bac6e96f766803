package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Message: message,
		Error:   true,
		Status:  status,
	})
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.PurchaseNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}),
		errors.Is(err, &domain.UserNotFoundError{}):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.InvalidStateError{}),
		errors.Is(err, &domain.InsufficientStockError{}),
		errors.Is(err, &domain.DivisionByZeroError{}):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, &domain.CheckoutInProgressError{}):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
