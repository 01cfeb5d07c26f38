package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/configs"
	authController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/auth"
	cartController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/cart"
	orderController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/orders"
	paymentController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/payment"
	productsController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/products"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/middlewares"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/payments"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/routes"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal(err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := configs.ConnectDB(connectCtx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Connected to MongoDB")

	db := client.Database(cfg.MongoDatabase)
	users := stores.NewMongoUserStore(db)
	products := stores.NewMongoProductStore(db)
	carts := stores.NewMongoCartStore(db)
	orders := stores.NewMongoOrderStore(db)

	processor := payments.NewStripeProcessor(cfg.StripeSecretKey)
	validate := validation.New()

	app := fiber.New(fiber.Config{AppName: "croxora-api"})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	auth := middlewares.Auth(users, cfg.JWTSecret)
	admin := middlewares.AdminOnly()

	routes.AuthRoutes(app, &authController.Controller{
		Users:     users,
		JWTSecret: cfg.JWTSecret,
		Validate:  validate,
	}, auth)
	routes.ProductsRoutes(app, &productsController.Controller{
		Products: products,
		Validate: validate,
	}, auth, admin)
	routes.CartRoutes(app, &cartController.Controller{
		Carts:    carts,
		Products: products,
		Validate: validate,
	}, auth)
	routes.OrderRoutes(app, &orderController.Controller{
		Orders:   orders,
		Products: products,
		Carts:    carts,
		Validate: validate,
	}, auth, admin)
	routes.PaymentRoutes(app, &paymentController.Controller{
		Orders:    orders,
		Processor: processor,
		Validate:  validate,
	}, auth)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(disconnectCtx); err != nil {
		log.Printf("mongodb disconnect: %v", err)
	}
}
