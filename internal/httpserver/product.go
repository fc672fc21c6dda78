package httpserver

import (
	"net/http"
	"strconv"

	productsvc "shop-api/internal/service/product"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			respondDomainError(c, err, "products fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "products fetched successfully", list)
	}
}

func getProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid product id", nil)
			return
		}
		p, err := products.Get(c.Request.Context(), id)
		if err != nil {
			respondDomainError(c, err, "product fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "product fetched successfully", p)
	}
}

func createProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productsvc.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "product creation failed", gin.H{"binding": err.Error()})
			return
		}
		p, err := products.Create(c.Request.Context(), req)
		if err != nil {
			respondDomainError(c, err, "product creation failed")
			return
		}
		respondSuccess(c, http.StatusCreated, "product created successfully", p)
	}
}

func updateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid product id", nil)
			return
		}
		var req productsvc.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "product update failed", gin.H{"binding": err.Error()})
			return
		}
		p, err := products.Update(c.Request.Context(), id, req)
		if err != nil {
			respondDomainError(c, err, "product update failed")
			return
		}
		respondSuccess(c, http.StatusOK, "product updated successfully", p)
	}
}

func deleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid product id", nil)
			return
		}
		if err := products.Delete(c.Request.Context(), id); err != nil {
			respondDomainError(c, err, "product deletion failed")
			return
		}
		respondSuccess(c, http.StatusOK, "product deleted successfully", nil)
	}
}
