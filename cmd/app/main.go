package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/YOBOUEARNAUD/e-commerce/external/abstractapi"
	"github.com/YOBOUEARNAUD/e-commerce/external/resend"

	"github.com/YOBOUEARNAUD/e-commerce/internal/db"
	"github.com/YOBOUEARNAUD/e-commerce/internal/middleware"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"
	"github.com/YOBOUEARNAUD/e-commerce/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// ======================
	// INFRA
	// ======================
	mongoDB, err := db.ConnectMongo(ctx)
	if err != nil {
		log.Fatal(err)
	}

	redisClient, err := db.ConnectRedis(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer redisClient.Close()

	// ======================
	// EXTERNALS
	// ======================
	var emailValidator services.EmailValidator
	if abstractapi.Enabled() {
		emailValidator, err = abstractapi.NewReputationValidator()
		if err != nil {
			log.Fatal(err)
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	var mailer services.OrderMailer
	if os.Getenv("USE_ORDER_EMAILS") == "true" {
		m, err := resend.NewResendMailer("Boutique<orders@resend.dev>")
		if err != nil {
			log.Fatal(err)
		}
		mailer = m
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(mongoDB)
	if err := userRepo.CreateIndexes(ctx); err != nil {
		log.Fatal(err)
	}
	productRepo := repository.NewProductRepository(mongoDB)
	orderRepo := repository.NewOrderRepository(mongoDB)
	cartStore := repository.NewRedisCartStore(redisClient)

	// ======================
	// SERVICES
	// ======================
	tokens := middleware.NewTokenManager(jwtSecret(), jwtExpiry())
	authSvc := services.NewAuthService(userRepo, emailValidator)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartStore, productRepo)
	orderSvc := services.NewOrderService(orderRepo, cartSvc, mailer)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, tokens)
	registerProductRoutes(api, productSvc, authSvc, tokens)
	registerCartRoutes(api, cartSvc, tokens)
	registerOrderRoutes(api, orderSvc, authSvc, tokens)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-please-change"
	}
	return secret
}

func jwtExpiry() time.Duration {
	hours := 24
	if v := os.Getenv("JWT_EXPIRE_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return time.Duration(hours) * time.Hour
}
