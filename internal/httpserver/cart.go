package httpserver

import (
	"net/http"
	"strconv"

	cartsvc "shop-api/internal/service/cart"
	"github.com/gin-gonic/gin"
)

func getCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := cartOwner(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "session or login required", nil)
			return
		}
		items, err := carts.Get(c.Request.Context(), owner)
		if err != nil {
			respondDomainError(c, err, "cart fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "cart fetched successfully", items)
	}
}

func addCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := cartOwner(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "session or login required", nil)
			return
		}
		var req cartsvc.ItemInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "cart storage failed", gin.H{"binding": err.Error()})
			return
		}
		item, err := carts.Add(c.Request.Context(), owner, req)
		if err != nil {
			respondDomainError(c, err, "cart storage failed")
			return
		}
		respondSuccess(c, http.StatusOK, "cart item added successfully", item)
	}
}

func updateCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := cartOwner(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "session or login required", nil)
			return
		}
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid cart item id", nil)
			return
		}
		var req cartsvc.ItemInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "cart update failed", gin.H{"binding": err.Error()})
			return
		}
		item, err := carts.Update(c.Request.Context(), owner, itemID, req)
		if err != nil {
			respondDomainError(c, err, "cart update failed")
			return
		}
		respondSuccess(c, http.StatusOK, "cart item updated successfully", item)
	}
}

func removeCartItemHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := cartOwner(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "session or login required", nil)
			return
		}
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid cart item id", nil)
			return
		}
		if err := carts.Remove(c.Request.Context(), owner, itemID); err != nil {
			respondDomainError(c, err, "cart item removal failed")
			return
		}
		respondSuccess(c, http.StatusOK, "cart item removed successfully", nil)
	}
}

func clearCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := cartOwner(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "session or login required", nil)
			return
		}
		if err := carts.Clear(c.Request.Context(), owner); err != nil {
			respondDomainError(c, err, "cart clearing failed")
			return
		}
		respondSuccess(c, http.StatusOK, "cart cleared successfully", nil)
	}
}

// migrateCartHandler merges the guest session cart into the authenticated
// user's cart. Missing session cart is a successful no-op.
func migrateCartHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		sessionID := ""
		if v, exists := c.Get(sessionIDKey); exists {
			sessionID, _ = v.(string)
		}
		if err := carts.Migrate(c.Request.Context(), sessionID, user.ID); err != nil {
			respondDomainError(c, err, "cart migration failed")
			return
		}
		respondSuccess(c, http.StatusOK, "session cart migrated successfully", nil)
	}
}
