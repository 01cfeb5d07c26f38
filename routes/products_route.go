package routes

import (
	"github.com/gofiber/fiber/v2"

	productsController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/products"
)

func ProductsRoutes(app *fiber.App, ctl *productsController.Controller, auth, admin fiber.Handler) {
	router := app.Group("/api/products")

	router.Get("/", ctl.GetProducts)
	router.Get("/featured", ctl.GetFeaturedProducts)
	router.Get("/:id", ctl.GetProductById)

	router.Post("/", auth, admin, ctl.CreateProduct)
	router.Put("/:id", auth, admin, ctl.UpdateProduct)
	router.Delete("/:id", auth, admin, ctl.DeleteProduct)
}
