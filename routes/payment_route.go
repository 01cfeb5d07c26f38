package routes

import (
	"github.com/gofiber/fiber/v2"

	paymentController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/payment"
)

func PaymentRoutes(app *fiber.App, ctl *paymentController.Controller, auth fiber.Handler) {
	router := app.Group("/api/payment", auth)

	router.Post("/create-intent", ctl.CreatePaymentIntent)
	router.Post("/confirm", ctl.ConfirmPayment)
	router.Get("/status/:orderId", ctl.GetPaymentStatus)
}
