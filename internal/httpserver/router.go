package httpserver

import (
	"log"

	"shop-api/internal/authz"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", SessionHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/register", registerHandler(deps.AuthSvc))
	router.POST("/login", loginHandler(deps.AuthSvc))
	router.POST("/logout", authMiddleware(deps.AuthSvc, true), logoutHandler(deps.AuthSvc))
	router.POST("/session", sessionStartHandler(deps.SessionSvc))

	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))

	// Cart routes serve both guests (session header) and users (bearer token).
	cartGroup := router.Group("/cart",
		authMiddleware(deps.AuthSvc, false),
		sessionMiddleware(deps.SessionSvc),
	)
	{
		cartGroup.GET("", getCartHandler(deps.CartSvc))
		cartGroup.POST("", addCartItemHandler(deps.CartSvc))
		cartGroup.PUT("/:id", updateCartItemHandler(deps.CartSvc))
		cartGroup.DELETE("/:id", removeCartItemHandler(deps.CartSvc))
		cartGroup.DELETE("", clearCartHandler(deps.CartSvc))
	}

	authed := router.Group("", authMiddleware(deps.AuthSvc, true))
	{
		authed.POST("/cart/migrate", sessionMiddleware(deps.SessionSvc), migrateCartHandler(deps.CartSvc))
		authed.POST("/orders", createOrderHandler(deps.OrderSvc))
		authed.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
		authed.POST("/payments", createPaymentHandler(deps.PaymentSvc))
	}

	admin := router.Group("",
		authMiddleware(deps.AuthSvc, true),
		requireAuthz(deps.Authz, authz.ActionManageProducts),
	)
	{
		admin.POST("/products", createProductHandler(deps.ProductSvc))
		admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
		admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))
	}

	dashboard := router.Group("/dashboard",
		authMiddleware(deps.AuthSvc, true),
		requireAuthz(deps.Authz, authz.ActionViewDashboard),
	)
	{
		dashboard.GET("", dashboardOverviewHandler(deps.DashboardSvc))
		dashboard.GET("/users", dashboardUsersHandler(deps.DashboardSvc))
		dashboard.GET("/products", dashboardProductsHandler(deps.DashboardSvc))
		dashboard.GET("/orders", dashboardOrdersHandler(deps.DashboardSvc))
		dashboard.GET("/payments", dashboardPaymentsHandler(deps.DashboardSvc))
		dashboard.GET("/top-products", dashboardTopProductsHandler(deps.DashboardSvc))
		dashboard.GET("/sell-stats", dashboardSellStatsHandler(deps.DashboardSvc))
	}

	return router, nil
}
