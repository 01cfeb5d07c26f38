package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/cart"
)

func CartRoutes(app *fiber.App, ctl *cartController.Controller, auth fiber.Handler) {
	router := app.Group("/api/cart", auth)

	router.Get("/", ctl.GetCart)
	router.Post("/", ctl.AddToCart)
	router.Put("/:itemId", ctl.UpdateCartItem)
	router.Delete("/:itemId", ctl.RemoveFromCart)
	router.Delete("/", ctl.ClearCart)
}
