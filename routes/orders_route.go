package routes

import (
	"github.com/gofiber/fiber/v2"

	orderController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/orders"
)

func OrderRoutes(app *fiber.App, ctl *orderController.Controller, auth, admin fiber.Handler) {
	router := app.Group("/api/orders", auth)

	router.Post("/", ctl.CreateOrder)
	router.Get("/", ctl.GetOrders)
	router.Get("/:id", ctl.GetOrderById)
	router.Put("/:id/status", admin, ctl.UpdateOrderStatus)
}
