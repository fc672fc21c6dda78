package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func createOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ord, err := orders.CreateFromCart(c.Request.Context(), currentUser(c))
		if err != nil {
			respondDomainError(c, err, "order creation failed")
			return
		}
		respondSuccess(c, http.StatusCreated, "order created successfully", ord)
	}
}

func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid order id", nil)
			return
		}
		ord, err := orders.Get(c.Request.Context(), currentUser(c), id)
		if err != nil {
			respondDomainError(c, err, "order fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "order fetched successfully", ord)
	}
}
