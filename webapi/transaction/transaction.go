// Package transaction exposes operator lookups and manual verification.
package transaction

import (
	"errors"

	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/middleware"
	"github.com/amirasaad/payrecon/pkg/repository"
	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/amirasaad/payrecon/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for transaction lookups.
func Routes(
	app *fiber.App,
	uow repository.UnitOfWork,
	reconciler *reconcile.Service,
	cfg *config.App,
) {
	app.Get(
		"/api/v1/transactions/:reference",
		middleware.JwtProtected(cfg.Auth.Jwt),
		GetTransaction(uow),
	)
	app.Post(
		"/api/v1/transactions/:reference/verify",
		middleware.JwtProtected(cfg.Auth.Jwt),
		VerifyTransaction(reconciler),
	)
}

// GetTransaction returns a transaction by payment reference.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} common.Response "Transaction fetched"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Router /api/v1/transactions/{reference} [get]
// @Security Bearer
func GetTransaction(uow repository.UnitOfWork) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store, err := uow.TransactionStore()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, fiber.StatusInternalServerError)
		}
		tx, err := store.FindByReference(c.UserContext(), c.Params("reference"))
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				log.Errorf("Failed to load transaction: %v", err)
			}
			return common.ProblemDetailsJSON(c, "Failed to get transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction fetched", ToDTO(tx))
	}
}

// VerifyTransaction verifies a reference with its gateway and reconciles it now.
// @Summary Verify and reconcile a transaction
// @Tags transactions
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} common.Response "Reconciliation attempted"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Not found"
// @Failure 503 {object} common.ProblemDetails "Gateway unavailable"
// @Router /api/v1/transactions/{reference}/verify [post]
// @Security Bearer
func VerifyTransaction(reconciler *reconcile.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := reconciler.ReconcileReference(c.UserContext(), c.Params("reference"), events.SourceManual)
		if err != nil {
			log.Errorf("Manual verification failed: %v", err)
			return common.ProblemDetailsJSON(c, "Verification failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Reconciliation attempted", ReconcileDTO{
			Outcome:     string(res.Outcome),
			Reason:      res.Reason,
			Transaction: ToDTO(res.Transaction),
		})
	}
}
