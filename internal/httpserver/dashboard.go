package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	return page, perPage
}

func dashboardOverviewHandler(dash DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := dash.Overview(c.Request.Context())
		if err != nil {
			respondDomainError(c, err, "dashboard fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "dashboard fetched successfully", overview)
	}
}

func dashboardUsersHandler(dash DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)
		result, err := dash.Users(c.Request.Context(), page, perPage)
		if err != nil {
			respondDomainError(c, err, "users fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "users fetched successfully", result)
	}
}

func dashboardProductsHandler(dash DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)
		result, err := dash.Products(c.Request.Context(), page, perPage)
		if err != nil {
			respondDomainError(c, err, "products fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "products fetched successfully", result)
	}
}

func dashboardOrdersHandler(dash DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)
		result, err := dash.Orders(c.Request.Context(), page, perPage)
		if err != nil {
			respondDomainError(c, err, "orders fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "orders fetched successfully", result)
	}
}

func dashboardPaymentsHandler(dash DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)
		result, err := dash.Payments(c.Request.Context(), page, perPage)
		if err != nil {
			respondDomainError(c, err, "payments fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "payments fetched successfully", result)
	}
}

func dashboardTopProductsHandler(dash DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		result, err := dash.TopProducts(c.Request.Context(), limit)
		if err != nil {
			respondDomainError(c, err, "top products fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "top products fetched successfully", result)
	}
}

func dashboardSellStatsHandler(dash DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
		result, err := dash.SellStats(c.Request.Context(), days)
		if err != nil {
			respondDomainError(c, err, "sell stats fetch failed")
			return
		}
		respondSuccess(c, http.StatusOK, "sell stats fetched successfully", result)
	}
}
