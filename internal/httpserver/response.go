package httpserver

import (
	"errors"
	"net/http"

	"shop-api/internal/domain"
	authsvc "shop-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// Success responses carry {message, data}; errors carry {message, errors?}.

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string, errs interface{}) {
	body := gin.H{"message": message}
	if errs != nil {
		body["errors"] = errs
	}
	c.JSON(status, body)
}

// respondDomainError maps domain errors to HTTP codes. Unexpected errors are
// reported as a generic 500 without leaking internals.
func respondDomainError(c *gin.Context, err error, fallback string) {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		respondError(c, http.StatusConflict, stockErr.Error(), nil)
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, domain.ErrForbidden):
		respondError(c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, domain.ErrAlreadyPaid):
		respondError(c, http.StatusConflict, "this order has already been paid", nil)
	case errors.Is(err, domain.ErrEmptyCart):
		respondError(c, http.StatusBadRequest, "cannot create order with an empty cart", nil)
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "the provided credentials do not match our records", nil)
	case errors.Is(err, authsvc.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, "the email already exists", gin.H{"email": "the email already exists"})
	default:
		respondError(c, http.StatusInternalServerError, fallback, nil)
	}
}
