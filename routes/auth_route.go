package routes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/auth"
)

func AuthRoutes(app *fiber.App, ctl *authController.Controller, auth fiber.Handler) {
	router := app.Group("/api/auth")

	router.Post("/register", ctl.Register)
	router.Post("/login", ctl.Login)
	router.Post("/logout", ctl.Logout)
	router.Get("/profile", auth, ctl.GetProfile)
	router.Put("/profile", auth, ctl.UpdateProfile)
}
