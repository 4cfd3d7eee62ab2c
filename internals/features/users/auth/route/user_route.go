// file: internals/features/users/auth/route/user_route.go
package route

import (
	authService "gymtrack_backend/internals/features/users/auth/service"
	authMw "gymtrack_backend/internals/middlewares/auth"
	rateLimiter "gymtrack_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	// ==========================
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.LoginGoogle(db, c)
	})
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	baseAuth.Post("/refresh-token", func(c *fiber.Ctx) error {
		return authService.RefreshToken(db, c)
	})

	// 🔒 Butuh login
	secured := baseAuth.Group("", authMw.AuthMiddleware(db))
	secured.Get("/me", func(c *fiber.Ctx) error {
		return authService.Me(db, c)
	})
	secured.Post("/logout", func(c *fiber.Ctx) error {
		return authService.Logout(db, c)
	})
	secured.Post("/change-password", func(c *fiber.Ctx) error {
		return authService.ChangePassword(db, c)
	})
}
