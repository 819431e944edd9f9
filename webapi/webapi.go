// Package webapi provides the HTTP surface of the reconciliation service.
// It is organized into sub-packages:
// - webhook: signed gateway notifications
// - payment: outbound charge and transfer initiation
// - transaction: operator lookups and manual verification
package webapi

import (
	"errors"
	"strings"
	"time"

	_ "github.com/amirasaad/payrecon/docs"
	"github.com/amirasaad/payrecon/pkg/app"
	"github.com/amirasaad/payrecon/webapi/common"
	paymentweb "github.com/amirasaad/payrecon/webapi/payment"
	transactionweb "github.com/amirasaad/payrecon/webapi/transaction"
	webhookweb "github.com/amirasaad/payrecon/webapi/webhook"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	maxRequests, window := 100, time.Minute
	if rl := a.Config.RateLimit; rl != nil {
		maxRequests, window = rl.MaxRequests, rl.Window
	}
	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Payment reconciliation API is running! 🚀")
	})

	webhookweb.Routes(fiberApp, a.Ingestor, a.Deps.Gateways)
	paymentweb.Routes(fiberApp, a.Payments, a.Config)
	transactionweb.Routes(fiberApp, a.Deps.Uow, a.Reconciler, a.Config)
	return fiberApp
}
