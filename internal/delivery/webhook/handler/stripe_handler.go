// Package handler receives payment-provider webhook deliveries.
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const signatureHeader = "Stripe-Signature"

// StripeHandler terminates the provider's webhook push. Verification
// fails closed: a delivery with a bad signature is rejected with 400 and
// nothing is recorded. Verified deliveries are acknowledged with 200
// regardless of type so the provider stops retrying.
type StripeHandler struct {
	verifier service.WebhookVerifier
	uc       usecase.BillingUsecase
	metrics  *metrics.WebhookMetrics
	logger   *slog.Logger
}

// NewStripeHandler is the constructor for StripeHandler, injected by Fx.
func NewStripeHandler(verifier service.WebhookVerifier, uc usecase.BillingUsecase, m *metrics.WebhookMetrics, logger *slog.Logger) *StripeHandler {
	return &StripeHandler{
		verifier: verifier,
		uc:       uc,
		metrics:  m,
		logger:   logger,
	}
}

// webhookEnvelope is the minimal outer shape of a provider event.
type webhookEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// HandleEvent processes one webhook delivery.
func (h *StripeHandler) HandleEvent(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.verifier.VerifySignature(body, c.Request().Header.Get(signatureHeader)); err != nil {
		h.metrics.Rejected.WithLabelValues("bad_signature").Inc()
		logger.Warn("Rejected webhook delivery with invalid signature",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid signature"})
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.ID == "" || envelope.Type == "" {
		h.metrics.Rejected.WithLabelValues("bad_payload").Inc()
		logger.Warn("Rejected webhook delivery with malformed payload")

		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed event payload"})
	}

	outcome, err := h.uc.ProcessEvent(ctx, &usecase.WebhookEventInput{
		ProviderEventID: envelope.ID,
		Type:            envelope.Type,
		Payload:         body,
	})
	if err != nil {
		// A non-2xx makes the provider redeliver; dedup by event id
		// keeps the retry safe.
		logger.Error("Webhook processing failed",
			slog.String("event_id", envelope.ID),
			slog.String("event_type", envelope.Type),
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	h.metrics.Deliveries.WithLabelValues(envelope.Type, string(outcome)).Inc()
	logger.Info("Webhook delivery acknowledged",
		slog.String("event_id", envelope.ID),
		slog.String("event_type", envelope.Type),
		slog.String("outcome", string(outcome)),
	)

	return c.JSON(http.StatusOK, map[string]string{"received": "true", "outcome": string(outcome)})
}
