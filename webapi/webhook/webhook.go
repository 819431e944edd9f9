// Package webhook exposes the gateway notification endpoint.
package webhook

import (
	"errors"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/provider/payment"
	webhooksvc "github.com/amirasaad/payrecon/pkg/service/webhook"
	"github.com/amirasaad/payrecon/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the webhook route. Deliveries are authenticated by
// gateway signature, not by JWT.
func Routes(app *fiber.App, ingestor *webhooksvc.Ingestor, gateways *payment.Registry) {
	app.Post("/webhooks/:gateway", Receive(ingestor, gateways))
}

// Receive handles one signed gateway delivery.
//
// Status codes tell the gateway whether to redeliver: only a bad signature,
// an unknown gateway and a transient verification failure are non-2xx.
// @Summary Receive a gateway webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param gateway path string true "Gateway name"
// @Success 200 {object} common.Response "Delivery acknowledged"
// @Failure 401 {object} common.ProblemDetails "Invalid signature"
// @Failure 404 {object} common.ProblemDetails "Unknown gateway"
// @Failure 503 {object} common.ProblemDetails "Gateway unavailable, retry later"
// @Router /webhooks/{gateway} [post]
func Receive(ingestor *webhooksvc.Ingestor, gateways *payment.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("gateway")
		gw, err := gateways.Get(name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unknown gateway", err)
		}
		header := gw.SignatureHeader()
		signature := c.Get(header)
		if signature == "" {
			return common.ProblemDetailsJSON(
				c,
				"Invalid signature",
				domain.ErrInvalidSignature,
				"missing "+header+" header",
			)
		}
		// fasthttp reuses the body buffer after the handler returns.
		payload := append([]byte(nil), c.Body()...)

		res, err := ingestor.Ingest(c.UserContext(), name, payload, signature)
		switch {
		case err == nil:
			ack := AckDTO{Status: StatusProcessed, Outcome: string(res.Outcome), Reason: res.Reason}
			if res.Transaction != nil {
				ack.Reference = res.Transaction.PaymentReferenceID
			}
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Webhook processed", ack)
		case errors.Is(err, webhooksvc.ErrDuplicate):
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Webhook already processed",
				AckDTO{Status: StatusDuplicate, Reason: err.Error()})
		case errors.Is(err, webhooksvc.ErrIgnored), errors.Is(err, domain.ErrValidation):
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Webhook ignored",
				AckDTO{Status: StatusIgnored, Reason: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Unknown reference",
				AckDTO{Status: StatusNotFound, Reason: err.Error()})
		case errors.Is(err, domain.ErrInvalidSignature):
			return common.ProblemDetailsJSON(c, "Invalid signature", err)
		default:
			log.Errorf("webhook %s processing failed: %v", name, err)
			return common.ProblemDetailsJSON(c, "Webhook processing failed", err)
		}
	}
}
