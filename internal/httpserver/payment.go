package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type paymentRequest struct {
	OrderID int64 `json:"order_id" binding:"required"`
}

func createPaymentHandler(payments PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "payment creation failed", gin.H{"binding": err.Error()})
			return
		}
		pay, err := payments.Settle(c.Request.Context(), currentUser(c), req.OrderID)
		if err != nil {
			respondDomainError(c, err, "payment creation failed")
			return
		}
		respondSuccess(c, http.StatusCreated, "payment created successfully", pay)
	}
}
