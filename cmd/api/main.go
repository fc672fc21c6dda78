package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shop-api/internal/authz"
	"shop-api/internal/config"
	"shop-api/internal/db"
	"shop-api/internal/httpserver"
	cartrepo "shop-api/internal/repository/cart"
	orderrepo "shop-api/internal/repository/order"
	paymentrepo "shop-api/internal/repository/payment"
	productrepo "shop-api/internal/repository/product"
	statsrepo "shop-api/internal/repository/stats"
	tokenrepo "shop-api/internal/repository/token"
	userrepo "shop-api/internal/repository/user"
	authsvc "shop-api/internal/service/auth"
	cartsvc "shop-api/internal/service/cart"
	dashboardsvc "shop-api/internal/service/dashboard"
	ordersvc "shop-api/internal/service/order"
	paymentsvc "shop-api/internal/service/payment"
	productsvc "shop-api/internal/service/product"
	sessionsvc "shop-api/internal/service/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	paymentRepo := paymentrepo.NewPostgres(dbpool, productRepo, logger)
	statsRepo := statsrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, tokenRepo)
	sessionService := sessionsvc.New()
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo)
	paymentService := paymentsvc.New(paymentRepo, orderRepo)
	productService := productsvc.New(productRepo)
	dashboardService := dashboardsvc.New(statsRepo, userRepo, productRepo, orderRepo, paymentRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:      authService,
		SessionSvc:   sessionService,
		CartSvc:      cartService,
		OrderSvc:     orderService,
		PaymentSvc:   paymentService,
		ProductSvc:   productService,
		DashboardSvc: dashboardService,
		Authz:        authz.NewPolicy(),
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
