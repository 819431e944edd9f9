// Package payment exposes outbound charge and transfer initiation.
package payment

import (
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/middleware"
	authsvc "github.com/amirasaad/payrecon/pkg/service/auth"
	paymentsvc "github.com/amirasaad/payrecon/pkg/service/payment"
	"github.com/amirasaad/payrecon/webapi/common"
	transactionweb "github.com/amirasaad/payrecon/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

// Routes registers HTTP routes for payment initiation.
func Routes(app *fiber.App, paymentSvc *paymentsvc.Service, cfg *config.App) {
	app.Post(
		"/api/v1/payments",
		middleware.JwtProtected(cfg.Auth.Jwt),
		Initiate(paymentSvc),
	)
}

// Initiate creates a charge or transfer at the gateway and records it as Pending.
// @Summary Initiate a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body paymentsvc.InitiateRequest true "Payment request"
// @Success 201 {object} common.Response "Payment initiated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 409 {object} common.ProblemDetails "Reference already recorded"
// @Failure 502 {object} common.ProblemDetails "Gateway rejected the request"
// @Failure 503 {object} common.ProblemDetails "Gateway unavailable"
// @Router /api/v1/payments [post]
// @Security Bearer
func Initiate(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		actor, err := authsvc.Subject(token)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}

		input, err := common.BindAndValidate[paymentsvc.InitiateRequest](c)
		if input == nil {
			return err
		}
		input.Actor = actor

		resp, err := paymentSvc.Initiate(c.UserContext(), *input)
		if err != nil {
			log.Errorf("Failed to initiate payment: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to initiate payment", err)
		}
		dto := InitiateResponseDTO{Transaction: transactionweb.ToDTO(resp.Transaction)}
		if resp.Gateway != nil {
			dto.AuthorizationURL = resp.Gateway.AuthorizationURL
			dto.AccessCode = resp.Gateway.AccessCode
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Payment initiated", dto)
	}
}
